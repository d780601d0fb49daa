package webshell

import "time"

// NodeKind valid kinds are FileKind "file", DirKind "dir"
type NodeKind string

const (
	FileKind NodeKind = "file"
	DirKind  NodeKind = "dir"
)

// NodeInfo provides read-only access to node information for external consumers
type NodeInfo interface {
	// ID returns the node's unique identifier
	ID() string

	// Name returns the node's name (last path component)
	Name() string

	// Kind reports whether the node is a file or a directory
	Kind() NodeKind

	// Path returns the absolute path of the node; root is "/"
	Path() string

	// CreatedAt is informational only
	CreatedAt() time.Time
}
