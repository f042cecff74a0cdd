package elapsed

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
)

// HTMLDocument adapts a parsed HTML tree to the Document interface.
// Scans and renders may run from different goroutines.
type HTMLDocument struct {
	mu   sync.Mutex
	root *html.Node
}

var _ Document = &HTMLDocument{}

// ParseHTML reads a complete HTML document.
func ParseHTML(r io.Reader) (*HTMLDocument, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("elapsed: parse html: %w", err)
	}
	return &HTMLDocument{root: root}, nil
}

// Elements returns elements whose class attribute contains class as a token.
func (d *HTMLDocument) Elements(class string) []Element {
	if d == nil || d.root == nil || class == "" {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	var found []Element
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, class) {
			found = append(found, &htmlElement{doc: d, node: n})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)

	return found
}

// Render writes the current tree.
func (d *HTMLDocument) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return html.Render(w, d.root)
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Namespace != "" || attr.Key != "class" {
			continue
		}
		for _, token := range strings.Fields(attr.Val) {
			if token == class {
				return true
			}
		}
	}
	return false
}

type htmlElement struct {
	doc  *HTMLDocument
	node *html.Node
}

// Attr matches names case-insensitively since the parser lowercases keys.
func (e *htmlElement) Attr(name string) (string, bool) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	for _, attr := range e.node.Attr {
		if attr.Namespace == "" && strings.EqualFold(attr.Key, name) {
			return attr.Val, true
		}
	}
	return "", false
}

func (e *htmlElement) SetText(text string) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}
