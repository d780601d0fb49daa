package filesystem

import (
	"iter"

	"github.com/brettbedarf/webshell"
	"github.com/brettbedarf/webshell/config"
	"github.com/brettbedarf/webshell/internal/util"
)

// ParentDir is the path token that moves the current node to its parent
const ParentDir = ".."

// FileSystem owns the node tree and the current-directory cursor.
//
// NOTE: FileSystem is **not** thread-safe. It is meant to be owned by a single
// interpreter session; concurrent callers must serialize access themselves.
type FileSystem struct {
	cfg     *config.Config
	root    *Node // Root of node tree
	current *Node // Working directory; may be a file when file traversal is allowed
}

// NewFS returns a root-only tree with the root as current node
func NewFS(cfg *config.Config) *FileSystem {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	root := NewNode(RootName, webshell.DirKind)
	return &FileSystem{cfg: cfg, root: root, current: root}
}

func (fs *FileSystem) Root() *Node {
	return fs.root
}

func (fs *FileSystem) Current() *Node {
	return fs.current
}

// List returns the names of the current node's direct children in insertion
// order. The sequence is lazy and may be ranged over repeatedly. It is empty
// when the current node is a file.
func (fs *FileSystem) List() iter.Seq[string] {
	children := fs.current.Children()
	if children == nil {
		return func(func(string) bool) {}
	}
	return children.Names()
}

// MakeFile creates a file as a child of the current node
func (fs *FileSystem) MakeFile(name string) (*Node, error) {
	return fs.addNode("touch", name, webshell.FileKind)
}

// MakeDirectory creates an empty directory as a child of the current node
func (fs *FileSystem) MakeDirectory(name string) (*Node, error) {
	return fs.addNode("mkdir", name, webshell.DirKind)
}

func (fs *FileSystem) addNode(op, name string, kind webshell.NodeKind) (*Node, error) {
	logger := util.GetLogger("FS.addNode")

	parent := fs.current
	if !parent.IsDir() {
		err := &OpError{Op: op, Name: name, Err: ErrInvalidLocation}
		logger.Debug().Err(err).Str("cwd", parent.Path()).Msg("Refused to create node under a file")
		return nil, err
	}
	if !fs.cfg.AllowDuplicateNames {
		if _, exists := parent.GetChild(name); exists {
			err := &OpError{Op: op, Name: name, Err: ErrAlreadyExists}
			logger.Debug().Err(err).Str("cwd", parent.Path()).Msg("Refused duplicate sibling name")
			return nil, err
		}
	}

	node := NewNode(name, kind)
	parent.AddChild(node)
	logger.Debug().Str("path", node.Path()).Str("kind", string(kind)).Str("id", node.ID()).Msg("Added new node")
	return node, nil
}

// ChangeDirectory moves the current node.
// An empty path is a no-op; ".." moves to the parent and stays put at the root;
// any other token must name a direct child of the current node.
func (fs *FileSystem) ChangeDirectory(path string) error {
	logger := util.GetLogger("FS.ChangeDirectory")

	switch path {
	case "":
		return nil
	case ParentDir:
		if p := fs.current.Parent(); p != nil {
			fs.current = p
		} else {
			fs.current = fs.root
		}
		logger.Trace().Str("cwd", fs.current.Path()).Msg("Moved to parent")
		return nil
	}

	target, ok := fs.current.GetChild(path)
	if !ok {
		err := &OpError{Op: "cd", Name: path, Err: ErrNotFound}
		logger.Debug().Err(err).Str("cwd", fs.current.Path()).Msg("No such child")
		return err
	}
	if !target.IsDir() && !fs.cfg.AllowFileTraversal {
		err := &OpError{Op: "cd", Name: path, Err: ErrNotADirectory}
		logger.Debug().Err(err).Msg("Refused to enter a file")
		return err
	}
	fs.current = target
	logger.Trace().Str("cwd", fs.current.Path()).Msg("Changed directory")
	return nil
}

// PrintWorkingDirectory returns the absolute path of the current node
func (fs *FileSystem) PrintWorkingDirectory() string {
	return fs.current.Path()
}

// Remove unlinks the named direct child of the current node together with its
// subtree. The remaining children keep their order.
func (fs *FileSystem) Remove(name string) error {
	logger := util.GetLogger("FS.Remove")

	removed, ok := fs.current.RemoveChild(name)
	if !ok {
		err := &OpError{Op: "rm", Name: name, Err: ErrNotFound}
		logger.Debug().Err(err).Str("cwd", fs.current.Path()).Msg("No such child")
		return err
	}
	logger.Debug().Str("name", name).Str("id", removed.ID()).Str("kind", string(removed.Kind())).Msg("Removed node")
	return nil
}

// ClearDisplay is a rendering hint for the presentation layer; the tree is untouched
func (fs *FileSystem) ClearDisplay() {
	logger := util.GetLogger("FS.ClearDisplay")
	logger.Trace().Msg("Display reset requested")
}
