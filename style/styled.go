// Package style matches style rules against document tree and computes
// specified values for every node.
package style

import (
	"maps"
	"slices"
	"sort"

	"github.com/maruel/natural"

	"sonata/css"
	"sonata/dom"
	"sonata/utils/debug"
)

// StyledNode pairs document node with its specified values. Node is shared
// with the document tree and must be treated as read-only.
type StyledNode struct {
	Node     dom.Node
	Values   map[string]css.Value
	Children []*StyledNode
}

// Value returns specified value of the property.
func (n *StyledNode) Value(name string) (css.Value, bool) {
	v, ok := n.Values[name]
	return v, ok
}

// Lookup returns value of the first property present or fallback.
func (n *StyledNode) Lookup(fallback css.Value, names ...string) css.Value {
	for _, name := range names {
		if v, ok := n.Values[name]; ok {
			return v
		}
	}
	return fallback
}

// Element returns underlying element, nil for text nodes.
func (n *StyledNode) Element() *dom.Element {
	el, _ := n.Node.(*dom.Element)
	return el
}

// Walk visits n and its descendants depth first, stopping when fn returns
// false.
func (n *StyledNode) Walk(fn func(sn *StyledNode, depth int) bool) {
	n.walk(fn, 0)
}

func (n *StyledNode) walk(fn func(*StyledNode, int) bool, depth int) bool {
	if !fn(n, depth) {
		return false
	}
	for _, c := range n.Children {
		if !c.walk(fn, depth+1) {
			return false
		}
	}
	return true
}

// PropertyNames returns names of specified values in natural order.
func (n *StyledNode) PropertyNames() []string {
	names := slices.Collect(maps.Keys(n.Values))
	sort.Sort(natural.StringSlice(names))
	return names
}

// String returns a readable tree of the styled nodes.
func (n *StyledNode) String() string {
	tw := debug.NewTreeWriter()
	n.Walk(func(sn *StyledNode, depth int) bool {
		switch node := sn.Node.(type) {
		case *dom.Text:
			tw.TextBlock(depth, "#text", node.Data)
		case *dom.Element:
			tw.Line(depth, "<%s>", node.Tag)
			for _, name := range dom.SortedAttrNames(node) {
				tw.Attr(depth+1, name, node.Attrs[name])
			}
			for _, name := range sn.PropertyNames() {
				tw.Line(depth+1, "%s: %s", name, sn.Values[name])
			}
		}
		return true
	})
	return tw.String()
}
