package generator

import (
	"fmt"
	"strings"
)

// Attr is a single name="value" pair. Values are written verbatim.
type Attr struct {
	Name  string
	Value string
}

// Element is a node of the manifest tree. Elements without children are
// written self-closing.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
}

// NewElement creates an element with the given attributes.
func NewElement(name string, attrs ...Attr) *Element {
	return &Element{Name: name, Attrs: attrs}
}

// Add appends children and returns the receiver for chaining.
func (e *Element) Add(children ...*Element) *Element {
	e.Children = append(e.Children, children...)
	return e
}

const xmlIndent = "    "

// XMLDocument renders the declaration followed by the element tree.
func XMLDocument(root *Element) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="utf-8"?>` + "\n")
	root.write(&b, 0)
	return b.String()
}

func (e *Element) write(b *strings.Builder, depth int) {
	indent := strings.Repeat(xmlIndent, depth)
	b.WriteString(indent)
	b.WriteString("<")
	b.WriteString(e.Name)
	for _, a := range e.Attrs {
		fmt.Fprintf(b, ` %s="%s"`, a.Name, a.Value)
	}

	if len(e.Children) == 0 {
		b.WriteString(" />\n")
		return
	}

	b.WriteString(">\n")
	for _, child := range e.Children {
		child.write(b, depth+1)
	}
	fmt.Fprintf(b, "%s</%s>\n", indent, e.Name)
}
