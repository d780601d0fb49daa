package shell

import (
	"github.com/brettbedarf/webshell"
	"github.com/brettbedarf/webshell/config"
	"github.com/brettbedarf/webshell/filesystem"
	"github.com/brettbedarf/webshell/history"
	"github.com/brettbedarf/webshell/internal/util"
)

// Session is one interpreter: a tree, its command history and the grammar.
// Sessions are independent of each other.
//
// NOTE: Session is **not** thread-safe. One command is fully processed before
// the next may be submitted; hosts serving concurrent callers must serialize
// access per session.
type Session struct {
	cfg        *config.Config
	tree       *filesystem.FileSystem
	history    *history.History
	registry   *Registry
	dispatcher *Dispatcher
}

// NewSession builds a session with a fresh root-only tree, an empty history
// and the builtin grammar
func NewSession(cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	return NewSessionWithRegistry(cfg, NewBuiltinRegistry(cfg.Banner))
}

// NewSessionWithRegistry is [NewSession] with a caller-supplied grammar, which
// may be shared between sessions
func NewSessionWithRegistry(cfg *config.Config, registry *Registry) *Session {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	return &Session{
		cfg:        cfg,
		tree:       filesystem.NewFS(cfg),
		history:    history.New(),
		registry:   registry,
		dispatcher: NewDispatcher(registry),
	}
}

// Submit records raw in the history, then tokenizes, validates and executes it
func (s *Session) Submit(raw string) webshell.Result {
	logger := util.GetLogger("Session.Submit")

	s.history.Record(raw)

	tokens := Tokenize(raw, s.cfg.CollapseSpaces)
	if err := s.registry.Validate(tokens); err != nil {
		logger.Debug().Err(err).Str("input", raw).Msg("Rejected input")
		return webshell.NewFailed(err.Error())
	}

	res := s.dispatcher.Execute(tokens, s.tree)
	logger.Debug().Str("input", raw).Stringer("kind", res.Kind).Str("cwd", s.tree.PrintWorkingDirectory()).Msg("Submitted")
	return res
}

func (s *Session) HistoryPrevious() (string, bool) {
	return s.history.Previous()
}

func (s *Session) HistoryNext() (string, bool) {
	return s.history.Next()
}

func (s *Session) Cwd() string {
	return s.tree.PrintWorkingDirectory()
}

// Banner is the text the display starts with and resets to
func (s *Session) Banner() string {
	return s.cfg.Banner
}

// Tree exposes the underlying file system, mainly for inspection
func (s *Session) Tree() *filesystem.FileSystem {
	return s.tree
}

// History exposes the recorded input
func (s *Session) History() *history.History {
	return s.history
}

var _ webshell.Console = (*Session)(nil)
