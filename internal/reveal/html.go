package reveal

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FromHTML parses an HTML fragment, as found inside <body>, into a List.
// Comments and doctypes are dropped.
func FromHTML(fragment string) (*List, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return nil, err
	}

	list := &List{}
	for _, n := range nodes {
		if converted := fromHTMLNode(n); converted != nil {
			list.Items = append(list.Items, converted)
		}
	}
	return list, nil
}

func fromHTMLNode(n *html.Node) Node {
	switch n.Type {
	case html.TextNode:
		return &Text{Value: n.Data}
	case html.ElementNode:
		el := &Element{Tag: n.Data}
		for _, a := range n.Attr {
			el.Attrs = append(el.Attrs, Attr{Key: a.Key, Val: a.Val})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if converted := fromHTMLNode(c); converted != nil {
				el.Children = append(el.Children, converted)
			}
		}
		return el
	}
	return nil
}

// RenderHTML renders a tree as HTML. Fragments and lists contribute only
// their children; keys are not rendered.
func RenderHTML(n Node) (string, error) {
	var sb strings.Builder
	for _, hn := range toHTMLNodes(n) {
		if err := html.Render(&sb, hn); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func toHTMLNodes(n Node) []*html.Node {
	switch v := n.(type) {
	case *Text:
		if v == nil {
			return nil
		}
		return []*html.Node{{Type: html.TextNode, Data: v.Value}}

	case *Element:
		if v == nil {
			return nil
		}
		if v.IsFragment() {
			return childrenToHTML(v.Children)
		}
		hn := &html.Node{
			Type:     html.ElementNode,
			Data:     v.Tag,
			DataAtom: atom.Lookup([]byte(v.Tag)),
		}
		for _, a := range v.Attrs {
			hn.Attr = append(hn.Attr, html.Attribute{Key: a.Key, Val: a.Val})
		}
		for _, c := range childrenToHTML(v.Children) {
			hn.AppendChild(c)
		}
		return []*html.Node{hn}

	case *List:
		if v == nil {
			return nil
		}
		return childrenToHTML(v.Items)
	}
	return nil
}

func childrenToHTML(children []Node) []*html.Node {
	var out []*html.Node
	for _, c := range children {
		out = append(out, toHTMLNodes(c)...)
	}
	return out
}
