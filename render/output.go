package render

import (
	"fmt"
	"io"

	"sonata/config"
	"sonata/css"
	"sonata/dom"
	"sonata/page"
)

// Write outputs styled tree of the page in requested format.
func Write(w io.Writer, p *page.Page, format config.OutputFmt) error {
	switch format {
	case config.OutputFmtText:
		return writeText(w, p)
	case config.OutputFmtYaml:
		return writeYAML(w, p)
	case config.OutputFmtXml:
		return writeXML(w, p)
	case config.OutputFmtIon:
		return writeIon(w, p)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// valueKind names the variant of a specified value.
func valueKind(v css.Value) string {
	switch v.(type) {
	case css.ColorValue:
		return "color"
	case css.Length:
		return "length"
	case css.Keyword:
		return "keyword"
	default:
		return "unknown"
	}
}

// sortedAttrs returns attribute name/value pairs in natural name order.
func sortedAttrs(el *dom.Element) [][2]string {
	names := dom.SortedAttrNames(el)
	out := make([][2]string, 0, len(names))
	for _, n := range names {
		out = append(out, [2]string{n, el.Attrs[n]})
	}
	return out
}
