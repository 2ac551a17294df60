// Package dom defines the document tree produced by the markup parser.
package dom

import (
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"sonata/utils/debug"
)

// Node is either *Text or *Element. The set of implementations is closed.
type Node interface {
	node()
	// String returns readable indented dump of the subtree.
	String() string
}

// Text is a run of character data.
type Text struct {
	Data string
}

// Element is a tag with attributes and ordered children. Attribute names are
// unique.
type Element struct {
	Tag      string
	Attrs    map[string]string
	Children []Node
}

func (*Text) node()    {}
func (*Element) node() {}

// NewText creates text node.
func NewText(data string) *Text {
	return &Text{Data: data}
}

// NewElement creates element node. Attrs may be nil.
func NewElement(tag string, attrs map[string]string, children ...Node) *Element {
	if attrs == nil {
		attrs = make(map[string]string)
	}
	return &Element{Tag: tag, Attrs: attrs, Children: children}
}

// Attr returns value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

// ID returns value of the "id" attribute.
func (e *Element) ID() (string, bool) {
	return e.Attr("id")
}

// Classes returns set of names from the "class" attribute. Names are
// separated by single spaces, empty names are dropped. Result is never nil.
func (e *Element) Classes() map[string]struct{} {
	set := make(map[string]struct{})
	list, ok := e.Attrs["class"]
	if !ok {
		return set
	}
	for name := range strings.SplitSeq(list, " ") {
		if len(name) > 0 {
			set[name] = struct{}{}
		}
	}
	return set
}

// HasClass reports whether name is among element classes.
func (e *Element) HasClass(name string) bool {
	_, ok := e.Classes()[name]
	return ok
}

// String returns readable tree of the text node.
func (t *Text) String() string {
	tw := debug.NewTreeWriter()
	writeNode(tw, 0, t)
	return tw.String()
}

// String returns readable tree of the element subtree, attributes are listed
// in natural order.
func (e *Element) String() string {
	tw := debug.NewTreeWriter()
	writeNode(tw, 0, e)
	return tw.String()
}

func writeNode(tw *debug.TreeWriter, depth int, n Node) {
	switch n := n.(type) {
	case *Text:
		tw.TextBlock(depth, "#text", n.Data)
	case *Element:
		tw.Line(depth, "<%s>", n.Tag)
		for _, name := range SortedAttrNames(n) {
			tw.Attr(depth+1, name, n.Attrs[name])
		}
		for _, c := range n.Children {
			writeNode(tw, depth+1, c)
		}
	}
}

// SortedAttrNames returns attribute names of e in natural order.
func SortedAttrNames(e *Element) []string {
	names := slices.Collect(maps.Keys(e.Attrs))
	sort.Sort(natural.StringSlice(names))
	return names
}
