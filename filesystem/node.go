package filesystem

import (
	"strings"
	"time"

	"github.com/brettbedarf/webshell"
	"github.com/google/uuid"
)

// RootName is the name given to the root node; it never appears inside a path
const RootName = "/"

// Node is a file or directory entry in the tree.
//
// The parent owns its children; parent is a non-owning back reference used
// only for "cd .." and path reconstruction.
type Node struct {
	id       uuid.UUID
	name     string
	kind     webshell.NodeKind
	parent   *Node     // nil for the root and for detached nodes
	children *Children // nil for files
	attr     Attr
}

// NewNode creates a detached Node of the given kind.
// Directories get an empty children collection; files get none.
//
// NOTE: Parent node is responsible for adding itself to the returned Node's
// parent ref when linking as its child
func NewNode(name string, kind webshell.NodeKind) *Node {
	n := &Node{
		id:   uuid.New(),
		name: name,
		kind: kind,
		attr: newDefaultAttr(kind),
	}
	if kind == webshell.DirKind {
		n.children = newChildren()
	}
	return n
}

func (n *Node) ID() string {
	return n.id.String()
}

func (n *Node) Name() string {
	return n.name
}

func (n *Node) Kind() webshell.NodeKind {
	return n.kind
}

func (n *Node) IsDir() bool {
	return n.kind == webshell.DirKind
}

func (n *Node) CreatedAt() time.Time {
	return n.attr.Ctime
}

// Attr returns a copy of the node's attributes
func (n *Node) Attr() Attr {
	return n.attr
}

// Parent returns the owning directory; nil for the root or a detached node
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child collection; nil for files
func (n *Node) Children() *Children {
	return n.children
}

func (n *Node) IsRoot() bool {
	return n.parent == nil && n.name == RootName
}

// Path returns the absolute path of the node by walking parent links.
// The root renders as "/". A detached node renders relative to its
// topmost reachable ancestor.
func (n *Node) Path() string {
	var parts []string
	cur := n
	for cur.parent != nil {
		parts = append(parts, cur.name)
		cur = cur.parent
	}
	if !cur.IsRoot() {
		// detached subtree
		parts = append(parts, cur.name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return "/" + strings.Join(parts, "/")
}

// AddChild appends child to the node's children and sets the child's parent
// to this node. Returns false if the node is a file.
func (n *Node) AddChild(child *Node) bool {
	if n.children == nil {
		return false
	}
	n.children.Append(child)
	child.parent = n
	n.attr.touch()
	return true
}

// GetChild returns the first child with the given name
func (n *Node) GetChild(name string) (child *Node, ok bool) {
	if n.children == nil {
		return nil, false
	}
	return n.children.Find(name)
}

// RemoveChild detaches the first child with the given name
func (n *Node) RemoveChild(name string) (*Node, bool) {
	if n.children == nil {
		return nil, false
	}
	child, ok := n.children.Remove(name)
	if !ok {
		return nil, false
	}
	child.parent = nil
	n.attr.touch()
	return child, true
}

var _ webshell.NodeInfo = (*Node)(nil)
