package render

import (
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v3"

	"sonata/dom"
	"sonata/page"
	"sonata/style"
)

func writeYAML(w io.Writer, p *page.Page) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlNode(p.Styled)); err != nil {
		return fmt.Errorf("unable to encode styled tree: %w", err)
	}
	return enc.Close()
}

func yamlNode(sn *style.StyledNode) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	switch n := sn.Node.(type) {
	case *dom.Text:
		addPair(m, "text", scalar(n.Data))
	case *dom.Element:
		addPair(m, "tag", scalar(n.Tag))
		if len(n.Attrs) > 0 {
			attrs := &yaml.Node{Kind: yaml.MappingNode}
			for _, kv := range sortedAttrs(n) {
				addPair(attrs, kv[0], scalar(kv[1]))
			}
			addPair(m, "attrs", attrs)
		}
		if len(sn.Values) > 0 {
			values := &yaml.Node{Kind: yaml.MappingNode}
			for _, name := range sn.PropertyNames() {
				addPair(values, name, scalar(sn.Values[name].String()))
			}
			addPair(m, "style", values)
		}
		if len(sn.Children) > 0 {
			children := &yaml.Node{Kind: yaml.SequenceNode}
			for _, c := range sn.Children {
				children.Content = append(children.Content, yamlNode(c))
			}
			addPair(m, "children", children)
		}
	}
	return m
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func addPair(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, scalar(key), value)
}
