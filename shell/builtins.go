package shell

import (
	"fmt"
	"slices"
	"strings"

	"github.com/brettbedarf/webshell"
)

// Builtin command names
const (
	CmdLs    = "ls"
	CmdPwd   = "pwd"
	CmdTouch = "touch"
	CmdMkdir = "mkdir"
	CmdCd    = "cd"
	CmdRm    = "rm"
	CmdClear = "clear"
)

// BuiltinNames lists the builtins in the order they are offered to users
var BuiltinNames = []string{CmdLs, CmdPwd, CmdTouch, CmdMkdir, CmdCd, CmdRm, CmdClear}

// RegisterBuiltins registers all builtin commands by default, or only the
// specific ones if names are provided. banner is what clear resets the
// display to.
func RegisterBuiltins(r *Registry, banner string, names ...string) error {
	if len(names) == 0 {
		names = BuiltinNames
	}

	for _, name := range names {
		cmd, ok := builtin(name, banner)
		if !ok {
			return fmt.Errorf("unknown builtin: %s", name)
		}
		if err := r.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}

// NewBuiltinRegistry returns a Registry holding every builtin
func NewBuiltinRegistry(banner string) *Registry {
	r := NewRegistry()
	// builtins are fixed and distinct, registration cannot fail
	_ = RegisterBuiltins(r, banner)
	return r
}

func builtin(name, banner string) (Command, bool) {
	switch name {
	case CmdLs:
		return Command{Name: CmdLs, Usage: "ls", Run: runLs}, true
	case CmdPwd:
		return Command{Name: CmdPwd, Usage: "pwd", Run: runPwd}, true
	case CmdTouch:
		return Command{Name: CmdTouch, Arity: 1, Usage: "touch <name>", Run: runTouch}, true
	case CmdMkdir:
		return Command{Name: CmdMkdir, Arity: 1, Usage: "mkdir <name>", Run: runMkdir}, true
	case CmdCd:
		return Command{Name: CmdCd, Arity: 1, Usage: "cd <name|..>", Run: runCd}, true
	case CmdRm:
		return Command{Name: CmdRm, Arity: 1, Usage: "rm <name>", Run: runRm}, true
	case CmdClear:
		return Command{Name: CmdClear, Usage: "clear", Run: clearWith(banner)}, true
	}
	return Command{}, false
}

// arg returns args[i] or "" when the dispatcher was handed too few tokens
func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func runLs(tree Tree, _ []string) (webshell.Result, error) {
	names := slices.Collect(tree.List())
	if len(names) == 0 {
		return webshell.NewEchoed(), nil
	}
	return webshell.NewRendered(strings.Join(names, "\n")), nil
}

func runPwd(tree Tree, _ []string) (webshell.Result, error) {
	return webshell.NewRendered(tree.PrintWorkingDirectory()), nil
}

func runTouch(tree Tree, args []string) (webshell.Result, error) {
	if _, err := tree.MakeFile(arg(args, 0)); err != nil {
		return webshell.Result{}, err
	}
	return webshell.NewEchoed(), nil
}

func runMkdir(tree Tree, args []string) (webshell.Result, error) {
	if _, err := tree.MakeDirectory(arg(args, 0)); err != nil {
		return webshell.Result{}, err
	}
	return webshell.NewEchoed(), nil
}

func runCd(tree Tree, args []string) (webshell.Result, error) {
	if err := tree.ChangeDirectory(arg(args, 0)); err != nil {
		return webshell.Result{}, err
	}
	return webshell.NewEchoed(), nil
}

func runRm(tree Tree, args []string) (webshell.Result, error) {
	if err := tree.Remove(arg(args, 0)); err != nil {
		return webshell.Result{}, err
	}
	return webshell.NewEchoed(), nil
}

func clearWith(banner string) Handler {
	return func(tree Tree, _ []string) (webshell.Result, error) {
		tree.ClearDisplay()
		return webshell.NewResetDisplay(banner), nil
	}
}
