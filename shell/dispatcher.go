package shell

import (
	"iter"

	"github.com/brettbedarf/webshell"
	"github.com/brettbedarf/webshell/filesystem"
	"github.com/brettbedarf/webshell/internal/util"
)

// Tree is the set of tree operations the builtins drive.
// [*filesystem.FileSystem] implements it.
type Tree interface {
	List() iter.Seq[string]
	MakeFile(name string) (*filesystem.Node, error)
	MakeDirectory(name string) (*filesystem.Node, error)
	ChangeDirectory(path string) error
	PrintWorkingDirectory() string
	Remove(name string) error
	ClearDisplay()
}

var _ Tree = (*filesystem.FileSystem)(nil)

// Dispatcher maps validated tokens to a command handler
type Dispatcher struct {
	registry *Registry
}

func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Execute runs tokens[0] against tree with the remaining tokens as arguments.
// It never fails: handler errors and unknown commands become failed results.
func (d *Dispatcher) Execute(tokens []string, tree Tree) webshell.Result {
	logger := util.GetLogger("Dispatcher.Execute")

	if len(tokens) == 0 {
		return webshell.NewFailed("invalid command: ")
	}
	cmd, ok := d.registry.Lookup(tokens[0])
	if !ok {
		logger.Debug().Str("command", tokens[0]).Msg("Unregistered command reached dispatch")
		return webshell.NewFailed("invalid command: " + tokens[0])
	}

	res, err := cmd.Run(tree, tokens[1:])
	if err != nil {
		logger.Debug().Err(err).Strs("tokens", tokens).Msg("Command failed")
		return webshell.NewFailed(err.Error())
	}
	logger.Trace().Strs("tokens", tokens).Stringer("kind", res.Kind).Msg("Command executed")
	return res
}
