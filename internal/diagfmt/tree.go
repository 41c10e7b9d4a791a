package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MrShwhale/ftml/internal/ast"
	"github.com/MrShwhale/ftml/internal/source"
)

type treeNode struct {
	label    string
	children []*treeNode
}

// buildTreeNode описывает узел и его поддерево.
func buildTreeNode(tree *ast.Tree, id ast.NodeID, fs *source.FileSet) *treeNode {
	n := tree.Get(id)
	if n == nil {
		return &treeNode{label: fmt.Sprintf("Node[%d]: <nil>", id)}
	}
	out := &treeNode{label: fmt.Sprintf("%s (span: %s)%s", describe(n), formatSpan(n.Span, fs), formatFlags(n))}
	for _, a := range n.Attrs {
		label := "Attr " + a.Key
		if !a.Bare {
			label += fmt.Sprintf("=%q", a.Value)
		}
		out.children = append(out.children, &treeNode{label: label})
	}
	for _, child := range n.Children {
		out.children = append(out.children, buildTreeNode(tree, child, fs))
	}
	return out
}

func describe(n *ast.Node) string {
	label := n.Kind.String()
	switch n.Kind {
	case ast.NodeText, ast.NodeRaw:
		label += fmt.Sprintf(" %q", n.Text)
	case ast.NodeContainer:
		label += " " + n.Block.String()
		if n.Delimited {
			label += " (delimited)"
		}
	case ast.NodeModule, ast.NodeUser:
		label += " " + n.Name
	case ast.NodeInput:
		label += " " + n.Block.String()
		if n.Name != "" {
			label += " " + n.Name
		}
	case ast.NodeLink:
		label += " " + n.Target
	case ast.NodeHeading, ast.NodeList, ast.NodeListItem:
		label += fmt.Sprintf(" depth=%d", n.Depth)
		if n.Ordered {
			label += " ordered"
		}
	case ast.NodeFootnote:
		if n.Index > 0 {
			label += fmt.Sprintf(" #%d", n.Index)
		}
	}
	return label
}

func formatFlags(n *ast.Node) string {
	var flags []string
	if n.Has(ast.FlagUnclosed) {
		flags = append(flags, "unclosed")
	}
	if n.Has(ast.FlagRemoved) {
		flags = append(flags, "removed")
	}
	if n.Has(ast.FlagNeutralized) {
		flags = append(flags, "neutralized")
	}
	if n.Has(ast.FlagStarred) {
		flags = append(flags, "starred")
	}
	if len(flags) == 0 {
		return ""
	}
	return " [" + strings.Join(flags, ",") + "]"
}

func formatSpan(sp source.Span, fs *source.FileSet) string {
	if fs == nil {
		return fmt.Sprintf("%d..%d", sp.Start, sp.End)
	}
	start, end := fs.Resolve(sp)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

func writeTree(b *strings.Builder, node *treeNode, prefix string, last, root bool) {
	switch {
	case root:
		b.WriteString(node.label)
	case last:
		b.WriteString(prefix + "└── " + node.label)
	default:
		b.WriteString(prefix + "├── " + node.label)
	}
	b.WriteByte('\n')

	childPrefix := prefix
	if !root {
		if last {
			childPrefix += "    "
		} else {
			childPrefix += "│   "
		}
	}
	for i, child := range node.children {
		writeTree(b, child, childPrefix, i == len(node.children)-1, false)
	}
}

// FormatTreePretty prints the document tree with box-drawing guides.
func FormatTreePretty(w io.Writer, tree *ast.Tree, fs *source.FileSet) error {
	if tree == nil {
		return nil
	}
	var b strings.Builder
	writeTree(&b, buildTreeNode(tree, tree.Root, fs), "", true, true)
	_, err := io.WriteString(w, b.String())
	return err
}

// NodeJSON is one node of the JSON tree dump.
type NodeJSON struct {
	Kind     string            `json:"kind"`
	Block    string            `json:"block,omitempty"`
	Text     string            `json:"text,omitempty"`
	Target   string            `json:"target,omitempty"`
	Name     string            `json:"name,omitempty"`
	Depth    int               `json:"depth,omitempty"`
	Index    int               `json:"index,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Start    uint32            `json:"start"`
	End      uint32            `json:"end"`
	Flags    string            `json:"flags,omitempty"`
	Children []NodeJSON        `json:"children,omitempty"`
}

// BuildNodeJSON converts the subtree rooted at id.
func BuildNodeJSON(tree *ast.Tree, id ast.NodeID) NodeJSON {
	n := tree.Get(id)
	if n == nil {
		return NodeJSON{Kind: "nil"}
	}
	out := NodeJSON{
		Kind:   n.Kind.String(),
		Text:   n.Text,
		Target: n.Target,
		Name:   n.Name,
		Depth:  n.Depth,
		Index:  n.Index,
		Start:  n.Span.Start,
		End:    n.Span.End,
		Flags:  strings.Trim(formatFlags(n), " []"),
	}
	if n.Kind == ast.NodeContainer {
		out.Block = n.Block.String()
	}
	if len(n.Attrs) > 0 {
		out.Attrs = make(map[string]string, len(n.Attrs))
		for _, a := range n.Attrs {
			out.Attrs[a.Key] = a.Value
		}
	}
	for _, child := range n.Children {
		out.Children = append(out.Children, BuildNodeJSON(tree, child))
	}
	return out
}

// FormatTreeJSON prints the document tree as indented JSON.
func FormatTreeJSON(w io.Writer, tree *ast.Tree) error {
	if tree == nil {
		return nil
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildNodeJSON(tree, tree.Root))
}
