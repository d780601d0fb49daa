package filesystem

import (
	"io/fs"
	"time"

	"github.com/brettbedarf/webshell"
)

// Default permission bits reported for new nodes. Permissions are not enforced.
const (
	DefaultDirPerm  fs.FileMode = 0o755
	DefaultFilePerm fs.FileMode = 0o644
)

// Attr holds informational node metadata
type Attr struct {
	Mode  fs.FileMode // type bit plus permission bits
	Ctime time.Time   // Created at
	Mtime time.Time   // Last modified at; for directories, the last child change
}

// newDefaultAttr returns the default attributes for a new node of kind
func newDefaultAttr(kind webshell.NodeKind) Attr {
	now := time.Now()
	mode := DefaultFilePerm
	if kind == webshell.DirKind {
		mode = fs.ModeDir | DefaultDirPerm
	}
	return Attr{
		Mode:  mode,
		Ctime: now,
		Mtime: now,
	}
}

// touch bumps the modification time
func (a *Attr) touch() {
	a.Mtime = time.Now()
}
