package testkit

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CheckHTML parses body as an HTML fragment and rejects anything a page
// must never carry: script or style elements, event handler attributes
// and javascript: URLs.
func CheckHTML(body string) error {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(body), ctx)
	if err != nil {
		return fmt.Errorf("parse body: %w", err)
	}
	for _, n := range nodes {
		if err := checkHTMLNode(n); err != nil {
			return err
		}
	}
	return nil
}

func checkHTMLNode(n *html.Node) error {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Iframe, atom.Object, atom.Embed:
			return fmt.Errorf("forbidden element <%s>", n.Data)
		}
		for _, a := range n.Attr {
			key := strings.ToLower(a.Key)
			if strings.HasPrefix(key, "on") {
				return fmt.Errorf("event handler %s on <%s>", a.Key, n.Data)
			}
			if (key == "href" || key == "src") &&
				strings.HasPrefix(strings.ToLower(strings.TrimSpace(a.Val)), "javascript:") {
				return fmt.Errorf("javascript URL in <%s %s>", n.Data, a.Key)
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := checkHTMLNode(c); err != nil {
			return err
		}
	}
	return nil
}
