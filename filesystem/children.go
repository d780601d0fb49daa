package filesystem

import (
	"iter"
	"slices"
)

// Children is the ordered collection of a directory's direct child nodes.
// Insertion order is preserved and removal never reorders the remaining nodes.
type Children struct {
	nodes []*Node
}

func newChildren() *Children {
	return &Children{}
}

// Len returns the number of children
func (c *Children) Len() int {
	return len(c.nodes)
}

// Append adds n after the last child
func (c *Children) Append(n *Node) {
	c.nodes = append(c.nodes, n)
}

// Find returns the first child named name
func (c *Children) Find(name string) (child *Node, ok bool) {
	if i := c.index(name); i >= 0 {
		return c.nodes[i], true
	}
	return nil, false
}

// Remove unlinks the first child named name and returns it
func (c *Children) Remove(name string) (removed *Node, ok bool) {
	i := c.index(name)
	if i < 0 {
		return nil, false
	}
	removed = c.nodes[i]
	c.nodes = slices.Delete(c.nodes, i, i+1)
	return removed, true
}

// Names yields the child names in insertion order.
// The sequence can be ranged over any number of times.
func (c *Children) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, n := range c.nodes {
			if !yield(n.name) {
				return
			}
		}
	}
}

// All yields the child nodes in insertion order
func (c *Children) All() iter.Seq[*Node] {
	return slices.Values(c.nodes)
}

func (c *Children) index(name string) int {
	return slices.IndexFunc(c.nodes, func(n *Node) bool { return n.name == name })
}
