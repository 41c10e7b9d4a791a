package parser

import (
	"github.com/MrShwhale/ftml/internal/ast"
)

type openList struct {
	id    ast.NodeID
	depth int
}

// groupLists folds runs of consecutive list items into (possibly nested) lists
// and runs of definition items into definition lists.
// A deeper item opens a sublist inside the previous item.
func (p *Parser) groupLists(children []ast.NodeID) []ast.NodeID {
	out := make([]ast.NodeID, 0, len(children))
	var stack []openList
	dl := ast.NoNodeID

	for _, id := range children {
		item := *p.b.Get(id)
		if item.Kind == ast.NodeDefinitionItem {
			stack = stack[:0]
			if !dl.IsValid() {
				dl = p.b.Add(ast.Node{Kind: ast.NodeDefinitionList, Span: item.Span})
				out = append(out, dl)
			}
			list := p.b.Get(dl)
			list.Children = append(list.Children, id)
			list.Span = list.Span.Cover(item.Span)
			continue
		}
		dl = ast.NoNodeID
		if item.Kind != ast.NodeListItem {
			stack = stack[:0]
			out = append(out, id)
			continue
		}

		for len(stack) > 0 && stack[len(stack)-1].depth > item.Depth {
			stack = stack[:len(stack)-1]
		}
		// смена типа списка на том же уровне начинает новый список
		if k := len(stack); k > 0 && stack[k-1].depth == item.Depth && p.b.Get(stack[k-1].id).Ordered != item.Ordered {
			stack = stack[:k-1]
		}

		if len(stack) == 0 || stack[len(stack)-1].depth < item.Depth {
			list := p.b.Add(ast.Node{Kind: ast.NodeList, Span: item.Span, Depth: item.Depth, Ordered: item.Ordered})
			if len(stack) == 0 {
				out = append(out, list)
			} else {
				parent := p.b.Get(stack[len(stack)-1].id)
				last := p.b.Get(parent.Children[len(parent.Children)-1])
				last.Children = append(last.Children, list)
			}
			stack = append(stack, openList{id: list, depth: item.Depth})
		}

		top := stack[len(stack)-1]
		list := p.b.Get(top.id)
		list.Children = append(list.Children, id)
		list.Span = list.Span.Cover(item.Span)
		// внешние списки и их последние элементы накрывают вложенный
		for _, o := range stack[:len(stack)-1] {
			outer := p.b.Get(o.id)
			outer.Span = outer.Span.Cover(item.Span)
			last := p.b.Get(outer.Children[len(outer.Children)-1])
			last.Span = last.Span.Cover(item.Span)
		}
	}
	return out
}
