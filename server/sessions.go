package server

import (
	"context"
	"sync"
	"time"

	"github.com/brettbedarf/webshell"
	"github.com/brettbedarf/webshell/internal/util"
	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v4"
)

// ConsoleFactory builds a fresh interpreter for a new session
type ConsoleFactory func() webshell.Console

// sessionEntry serializes access to one console; consoles are single-threaded
type sessionEntry struct {
	mu       sync.Mutex
	console  webshell.Console
	lastUsed time.Time // Protected by mu
}

// Sessions is a concurrent registry of interpreter sessions keyed by UUID.
// Commands for one session run one at a time; different sessions run in parallel.
type Sessions struct {
	newConsole ConsoleFactory
	entries    *xsync.Map[string, *sessionEntry]
	now        func() time.Time

	mu   sync.Mutex
	done chan struct{} // Closed when the sweeper exits; nil if never started
}

func NewSessions(factory ConsoleFactory) *Sessions {
	return &Sessions{
		newConsole: factory,
		entries:    xsync.NewMap[string, *sessionEntry](),
		now:        time.Now,
	}
}

// Create registers a new session and returns its ID
func (s *Sessions) Create() string {
	id := uuid.New().String()
	s.entries.Store(id, &sessionEntry{console: s.newConsole(), lastUsed: s.now()})
	return id
}

// With runs fn with exclusive access to the session's console.
// Returns false if the session does not exist.
func (s *Sessions) With(id string, fn func(c webshell.Console)) bool {
	e, ok := s.entries.Load(id)
	if !ok {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastUsed = s.now()
	fn(e.console)
	return true
}

// Delete drops the session; returns false if it did not exist
func (s *Sessions) Delete(id string) bool {
	_, ok := s.entries.LoadAndDelete(id)
	return ok
}

func (s *Sessions) Len() int {
	return s.entries.Size()
}

// Sweep drops sessions idle for longer than ttl and returns how many were dropped
func (s *Sessions) Sweep(ttl time.Duration) int {
	cutoff := s.now().Add(-ttl)
	dropped := 0
	s.entries.Range(func(id string, e *sessionEntry) bool {
		e.mu.Lock()
		idle := e.lastUsed.Before(cutoff)
		e.mu.Unlock()
		if idle {
			s.entries.Delete(id)
			dropped++
		}
		return true
	})
	return dropped
}

// StartSweeper runs Sweep every interval until ctx is cancelled.
// Use [Sessions.Wait] to block until it has stopped.
func (s *Sessions) StartSweeper(ctx context.Context, ttl, interval time.Duration) {
	logger := util.GetLogger("Sessions.Sweeper")
	done := make(chan struct{})
	s.mu.Lock()
	s.done = done
	s.mu.Unlock()
	logger.Info().Dur("ttl", ttl).Dur("interval", interval).Msg("Session sweeper started")

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if n := s.Sweep(ttl); n > 0 {
					logger.Info().Int("dropped", n).Int("remaining", s.Len()).Msg("Dropped idle sessions")
				}
			case <-ctx.Done():
				logger.Info().Msg("Session sweeper stopping")
				return
			}
		}
	}()
}

// Wait blocks until the sweeper has fully stopped; it returns at once if it never started
func (s *Sessions) Wait() {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done != nil {
		<-done
	}
}
