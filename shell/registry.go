package shell

import (
	"fmt"
	"sync"

	"github.com/brettbedarf/webshell"
)

// Handler runs a validated command against the tree. Returned errors are
// turned into failed results by the [Dispatcher].
type Handler func(tree Tree, args []string) (webshell.Result, error)

// Command is one row of the grammar table
type Command struct {
	Name  string
	Arity int    // exact number of arguments after the command name
	Usage string // i.e. "touch <name>"
	Run   Handler
}

// Registry is the command grammar. It is safe to share one Registry between
// sessions once registration is done.
type Registry struct {
	mu    sync.RWMutex
	cmds  map[string]Command
	order []string // registration order, used for listing supported commands
}

func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]Command)}
}

// Register ties a command name to its arity and handler.
// Registering the same name twice is an error.
func (r *Registry) Register(cmd Command) error {
	if cmd.Name == "" {
		return fmt.Errorf("command name must not be empty")
	}
	if cmd.Run == nil {
		return fmt.Errorf("command %q has no handler", cmd.Name)
	}
	if cmd.Arity < 0 {
		return fmt.Errorf("command %q has negative arity %d", cmd.Name, cmd.Arity)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.cmds[cmd.Name]; exists {
		return fmt.Errorf("command %q already registered", cmd.Name)
	}
	r.cmds[cmd.Name] = cmd
	r.order = append(r.order, cmd.Name)
	return nil
}

// Lookup returns the command registered under name
func (r *Registry) Lookup(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// Names returns the registered command names in registration order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}
