package ast

import (
	"github.com/MrShwhale/ftml/internal/source"
)

type Hints struct{ Nodes uint }

// Tree owns the nodes of one parsed document.
type Tree struct {
	Nodes *Arena[Node]
	Root  NodeID
	File  source.FileID
}

// Builder allocates nodes; the tree is append-only while it is being built.
type Builder struct {
	tree *Tree
}

func NewBuilder(file source.FileID, hints Hints) *Builder {
	if hints.Nodes == 0 {
		hints.Nodes = 1 << 8
	}
	return &Builder{tree: &Tree{Nodes: NewArena[Node](hints.Nodes), File: file}}
}

// New allocates a node of the given kind.
func (b *Builder) New(kind NodeKind, sp source.Span) NodeID {
	return NodeID(b.tree.Nodes.Allocate(Node{Kind: kind, Span: sp}))
}

// NewText allocates a text node.
func (b *Builder) NewText(sp source.Span, text string) NodeID {
	return NodeID(b.tree.Nodes.Allocate(Node{Kind: NodeText, Span: sp, Text: text}))
}

// Add allocates a fully populated node.
func (b *Builder) Add(n Node) NodeID {
	return NodeID(b.tree.Nodes.Allocate(n))
}

func (b *Builder) Get(id NodeID) *Node {
	return b.tree.Get(id)
}

// Finish sets the root and hands over the tree.
func (b *Builder) Finish(root NodeID) *Tree {
	b.tree.Root = root
	return b.tree
}

func (t *Tree) Get(id NodeID) *Node {
	return t.Nodes.Get(uint32(id))
}

// Walk visits the subtree rooted at id in pre-order. When visit returns false
// the children of that node are skipped.
func (t *Tree) Walk(id NodeID, visit func(id NodeID, n *Node) bool) {
	n := t.Get(id)
	if n == nil {
		return
	}
	if !visit(id, n) {
		return
	}
	for _, child := range n.Children {
		t.Walk(child, visit)
	}
}

// Len returns the number of allocated nodes.
func (t *Tree) Len() int {
	return int(t.Nodes.Len())
}
