// Package reveal renders answer markup as a node tree whose text can be
// revealed two words at a time while an answer is streaming.
package reveal

import "strings"

// Node is one of *Text, *Element or *List.
type Node interface {
	node()
}

// Text is a string leaf.
type Text struct {
	Value string
}

// Attr is an element attribute.
type Attr struct {
	Key string
	Val string
}

// Element is a tagged node with attributes and children.
// An empty Tag marks a fragment: it groups children without markup of its own.
type Element struct {
	Tag      string
	Key      string
	Attrs    []Attr
	Children []Node
}

// List is an ordered sequence of nodes.
type List struct {
	Items []Node
}

func (*Text) node()    {}
func (*Element) node() {}
func (*List) node()    {}

// NewText returns a text leaf.
func NewText(value string) *Text {
	return &Text{Value: value}
}

// NewElement returns an element with the given children.
func NewElement(tag string, attrs []Attr, children ...Node) *Element {
	return &Element{Tag: tag, Attrs: attrs, Children: children}
}

// NewList returns a list of nodes.
func NewList(items ...Node) *List {
	return &List{Items: items}
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasClass reports whether the element's class attribute contains class.
func (e *Element) HasClass(class string) bool {
	v, ok := e.Attr("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// IsFragment reports whether the element only groups its children.
func (e *Element) IsFragment() bool {
	return e.Tag == ""
}

// Walk visits n and its descendants depth-first in document order.
// Returning false from fn skips the node's children.
func Walk(n Node, fn func(Node) bool) {
	switch v := n.(type) {
	case *Text:
		if v != nil {
			fn(v)
		}
	case *Element:
		if v == nil || !fn(v) {
			return
		}
		for _, c := range v.Children {
			Walk(c, fn)
		}
	case *List:
		if v == nil || !fn(v) {
			return
		}
		for _, item := range v.Items {
			Walk(item, fn)
		}
	}
}

// Texts returns every text leaf value in document order.
func Texts(n Node) []string {
	var out []string
	Walk(n, func(n Node) bool {
		if t, ok := n.(*Text); ok {
			out = append(out, t.Value)
		}
		return true
	})
	return out
}

// CountReveal returns the number of reveal spans in the tree.
func CountReveal(n Node) int {
	count := 0
	Walk(n, func(n Node) bool {
		if isRevealSpan(n) {
			count++
		}
		return true
	})
	return count
}

func isRevealSpan(n Node) bool {
	e, ok := n.(*Element)
	return ok && e != nil && e.Tag == "span" && e.HasClass(RevealClass)
}
