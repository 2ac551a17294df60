package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/xlab/treeprint"

	"sonata/dom"
	"sonata/page"
	"sonata/style"
)

func writeText(w io.Writer, p *page.Page) error {
	tree := treeprint.New()
	addTextNode(tree, p.Styled)
	_, err := io.WriteString(w, tree.String())
	return err
}

func addTextNode(parent treeprint.Tree, sn *style.StyledNode) {
	switch n := sn.Node.(type) {
	case *dom.Text:
		parent.AddMetaNode("text", strconv.Quote(n.Data))
	case *dom.Element:
		branch := parent.AddBranch(openTag(n))
		for _, name := range sn.PropertyNames() {
			branch.AddMetaNode("style", name+": "+sn.Values[name].String())
		}
		for _, c := range sn.Children {
			addTextNode(branch, c)
		}
	}
}

func openTag(el *dom.Element) string {
	var b strings.Builder
	b.WriteString("<" + el.Tag)
	for _, kv := range sortedAttrs(el) {
		b.WriteString(" " + kv[0] + "=" + strconv.Quote(kv[1]))
	}
	b.WriteString(">")
	return b.String()
}
