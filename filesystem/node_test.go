package filesystem

import (
	"slices"
	"testing"

	"github.com/brettbedarf/webshell"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNode_Kinds(t *testing.T) {
	t.Parallel()

	dir := NewNode("dir", webshell.DirKind)
	require.NotNil(t, dir.Children(), "directories always have a children collection")
	assert.Equal(t, 0, dir.Children().Len())
	assert.True(t, dir.IsDir())
	assert.True(t, dir.Attr().Mode.IsDir())

	file := NewNode("file.txt", webshell.FileKind)
	assert.Nil(t, file.Children(), "files never have a children collection")
	assert.False(t, file.IsDir())
	assert.True(t, file.Attr().Mode.IsRegular())
}

func TestNewNode_UniqueIDs(t *testing.T) {
	t.Parallel()

	a := NewNode("same", webshell.FileKind)
	b := NewNode("same", webshell.FileKind)

	_, err := uuid.Parse(a.ID())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID())
	assert.False(t, a.CreatedAt().IsZero())
}

func TestNode_AddChild(t *testing.T) {
	t.Parallel()

	parent := NewNode("parent", webshell.DirKind)
	child := NewNode("child.txt", webshell.FileKind)

	require.True(t, parent.AddChild(child))

	retrievedChild, exists := parent.GetChild("child.txt")
	require.True(t, exists)
	assert.Same(t, child, retrievedChild)
	assert.Same(t, parent, child.Parent())
}

func TestNode_AddChild_ToFile(t *testing.T) {
	t.Parallel()

	file := NewNode("file.txt", webshell.FileKind)
	child := NewNode("nested", webshell.FileKind)

	assert.False(t, file.AddChild(child))
	assert.Nil(t, child.Parent())
	_, ok := file.GetChild("nested")
	assert.False(t, ok)
}

func TestNode_RemoveChild(t *testing.T) {
	t.Parallel()

	parent := NewNode("parent", webshell.DirKind)
	child := NewNode("child.txt", webshell.FileKind)
	parent.AddChild(child)

	removed, ok := parent.RemoveChild("child.txt")
	require.True(t, ok)
	assert.Same(t, child, removed)

	_, exists := parent.GetChild("child.txt")
	assert.False(t, exists)
	assert.Nil(t, child.Parent(), "removed child must be detached")

	_, ok = parent.RemoveChild("nonexistent.txt")
	assert.False(t, ok)

	file := NewNode("f", webshell.FileKind)
	_, ok = file.RemoveChild("anything")
	assert.False(t, ok)
}

func TestNode_RemoveChild_KeepsSubtree(t *testing.T) {
	t.Parallel()

	root := NewNode(RootName, webshell.DirKind)
	dir := NewNode("dir", webshell.DirKind)
	leaf := NewNode("leaf", webshell.FileKind)
	root.AddChild(dir)
	dir.AddChild(leaf)

	_, ok := root.RemoveChild("dir")
	require.True(t, ok)

	// the subtree is unreachable from root but internally intact
	assert.Same(t, dir, leaf.Parent())
	assert.Equal(t, []string{"leaf"}, slices.Collect(dir.Children().Names()))
}

func TestNode_Path(t *testing.T) {
	t.Parallel()

	root := NewNode(RootName, webshell.DirKind)
	dir := NewNode("dir", webshell.DirKind)
	nested := NewNode("nested", webshell.DirKind)
	file := NewNode("file.txt", webshell.FileKind)
	root.AddChild(dir)
	dir.AddChild(nested)
	nested.AddChild(file)

	tests := []struct {
		node *Node
		want string
	}{
		{root, "/"},
		{dir, "/dir"},
		{nested, "/dir/nested"},
		{file, "/dir/nested/file.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.Path())
		})
	}
	assert.True(t, root.IsRoot())
	assert.False(t, dir.IsRoot())
}

func TestNode_Path_DetachedNode(t *testing.T) {
	t.Parallel()

	orphan := NewNode("orphan", webshell.DirKind)
	child := NewNode("child", webshell.FileKind)
	orphan.AddChild(child)

	assert.Equal(t, "/orphan/child", child.Path())
	assert.False(t, orphan.IsRoot())
}

func TestNode_MtimeBumpsOnChildChange(t *testing.T) {
	t.Parallel()

	dir := NewNode("dir", webshell.DirKind)
	before := dir.Attr().Mtime

	dir.AddChild(NewNode("a", webshell.FileKind))
	afterAdd := dir.Attr().Mtime
	assert.False(t, afterAdd.Before(before))

	dir.RemoveChild("a")
	assert.False(t, dir.Attr().Mtime.Before(afterAdd))
	assert.Equal(t, before, dir.Attr().Ctime, "ctime never changes")
}
