package render

import (
	"io"
	"strings"

	"github.com/beevik/etree"

	"sonata/dom"
	"sonata/page"
	"sonata/style"
)

func writeXML(w io.Writer, p *page.Page) error {
	doc := etree.NewDocument()
	doc.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("styled-tree")
	if title := p.Title(); title != "" {
		root.CreateAttr("title", xmlText(title))
	}
	addXMLNode(root, p.Styled)

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

func addXMLNode(parent *etree.Element, sn *style.StyledNode) {
	switch n := sn.Node.(type) {
	case *dom.Text:
		parent.CreateElement("text").SetText(xmlText(n.Data))
	case *dom.Element:
		el := parent.CreateElement("element")
		el.CreateAttr("tag", xmlText(n.Tag))
		for _, kv := range sortedAttrs(n) {
			attr := el.CreateElement("attr")
			attr.CreateAttr("name", xmlText(kv[0]))
			attr.CreateAttr("value", xmlText(kv[1]))
		}
		for _, name := range sn.PropertyNames() {
			v := sn.Values[name]
			prop := el.CreateElement("property")
			prop.CreateAttr("name", xmlText(name))
			prop.CreateAttr("kind", valueKind(v))
			prop.CreateAttr("value", xmlText(v.String()))
		}
		for _, c := range sn.Children {
			addXMLNode(el, c)
		}
	}
}

// xmlText drops characters XML 1.0 cannot carry even escaped. Everything
// taken from the document is written as attribute value or text.
func xmlText(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return r
		case r < 0x20, r >= 0xd800 && r <= 0xdfff, r == 0xfffe || r == 0xffff:
			return -1
		}
		return r
	}, s)
}
