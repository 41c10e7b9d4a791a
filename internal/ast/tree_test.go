package ast

import (
	"testing"

	"github.com/MrShwhale/ftml/internal/source"
)

func TestArenaOneBased(t *testing.T) {
	a := NewArena[int](0)
	if a.Get(0) != nil || a.Get(1) != nil {
		t.Fatal("empty arena must return nil")
	}
	id := a.Allocate(42)
	if id != 1 || *a.Get(id) != 42 || a.Len() != 1 {
		t.Fatalf("unexpected arena state: id=%d len=%d", id, a.Len())
	}
}

func TestWalkPreOrder(t *testing.T) {
	b := NewBuilder(0, Hints{})
	leafA := b.NewText(source.Span{Start: 0, End: 1}, "a")
	leafB := b.NewText(source.Span{Start: 1, End: 2}, "b")
	inner := b.New(NodeContainer, source.Span{Start: 0, End: 2})
	b.Get(inner).Children = []NodeID{leafA, leafB}
	leafC := b.NewText(source.Span{Start: 2, End: 3}, "c")
	root := b.New(NodeDocument, source.Span{Start: 0, End: 3})
	b.Get(root).Children = []NodeID{inner, leafC}
	tree := b.Finish(root)

	var order []NodeID
	tree.Walk(tree.Root, func(id NodeID, n *Node) bool {
		order = append(order, id)
		return true
	})
	want := []NodeID{root, inner, leafA, leafB, leafC}
	if len(order) != len(want) {
		t.Fatalf("visited %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("visited %v, want %v", order, want)
		}
	}

	var skipped []NodeID
	tree.Walk(tree.Root, func(id NodeID, n *Node) bool {
		skipped = append(skipped, id)
		return n.Kind != NodeContainer
	})
	if len(skipped) != 3 {
		t.Fatalf("skipping children failed: %v", skipped)
	}
}

func TestNodeAttr(t *testing.T) {
	n := Node{Attrs: []Attr{{Key: "css", Bare: true}, {Key: "class", Value: "x"}}}
	if v, ok := n.Attr("class"); !ok || v != "x" {
		t.Errorf("Attr(class) = %q, %v", v, ok)
	}
	if _, ok := n.Attr("css"); ok {
		t.Error("bare words are not key/value attributes")
	}
}
