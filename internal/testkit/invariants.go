// Package testkit holds structural checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/MrShwhale/ftml/internal/ast"
	"github.com/MrShwhale/ftml/internal/source"
)

// CheckSpanInvariants runs the span invariants on a parsed tree:
// 1) the root spans the whole input
// 2) every span is well-formed and points into sf
// 3) every child span is contained in its parent's span
func CheckSpanInvariants(tree *ast.Tree, sf *source.File) error {
	if tree == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	root := tree.Get(tree.Root)
	if root == nil {
		return fmt.Errorf("root node not found")
	}
	if root.Kind != ast.NodeDocument {
		return fmt.Errorf("root is %s, want Document", root.Kind)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if root.Span.Start != 0 || root.Span.End != lenContent {
		return fmt.Errorf("root span %v does not cover input of %d bytes", root.Span, lenContent)
	}
	return checkNode(tree, tree.Root, sf.ID, lenContent, 0)
}

const maxDepth = 1 << 12

func checkNode(tree *ast.Tree, id ast.NodeID, file source.FileID, n uint32, depth int) error {
	if depth > maxDepth {
		return fmt.Errorf("tree deeper than %d, cycle?", maxDepth)
	}
	node := tree.Get(id)
	sp := node.Span
	if sp.File != file {
		return fmt.Errorf("%s span file mismatch: got=%d want=%d", node.Kind, sp.File, file)
	}
	if sp.Start > sp.End || sp.End > n {
		return fmt.Errorf("%s span %v out of range (len %d)", node.Kind, sp, n)
	}
	for _, c := range node.Children {
		child := tree.Get(c)
		if child == nil {
			return fmt.Errorf("nil child %d of %s", c, node.Kind)
		}
		if child.Span.Start < sp.Start || child.Span.End > sp.End {
			return fmt.Errorf("%s span %v is outside parent %s span %v", child.Kind, child.Span, node.Kind, sp)
		}
		if err := checkNode(tree, c, file, n, depth+1); err != nil {
			return err
		}
	}
	return nil
}
