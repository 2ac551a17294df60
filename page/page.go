// Package page ties markup and style sheets together: it parses the
// document, collects its style sheets and resolves the styled tree.
package page

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"sonata/css"
	"sonata/dom"
	"sonata/html"
	"sonata/style"
)

//go:embed default.css
var defaultStylesheet []byte

// DefaultStylesheet returns copy of the built-in user agent style sheet.
func DefaultStylesheet() []byte {
	return bytes.Clone(defaultStylesheet)
}

// Page is a fully processed document.
type Page struct {
	Document   *dom.Element
	Stylesheet *css.Stylesheet
	Styled     *style.StyledNode
}

type source struct {
	name string
	text []byte
}

type options struct {
	log      *zap.Logger
	defaults []byte
	extra    []source
}

type Option func(*options)

func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithDefaultStylesheet replaces built-in user agent sheet, nil disables it.
func WithDefaultStylesheet(data []byte) Option {
	return func(o *options) { o.defaults = data }
}

// WithExtraStylesheet adds sheet which is cascaded after document's own
// styles. Sheets are applied in the order options are given.
func WithExtraStylesheet(name string, data []byte) Option {
	return func(o *options) { o.extra = append(o.extra, source{name: name, text: data}) }
}

// Load parses text and resolves styles. Rule order in resulting sheet is:
// user agent defaults, document style element, extra sheets.
func Load(text string, opts ...Option) (*Page, error) {
	o := &options{log: zap.NewNop(), defaults: defaultStylesheet}
	for _, opt := range opts {
		opt(o)
	}
	log := o.log.Named("page")

	doc, err := html.NewParser(o.log).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("unable to parse document: %w", err)
	}

	parser := css.NewParser(o.log)
	sheet := &css.Stylesheet{Rules: make([]css.Rule, 0)}

	sources := make([]source, 0, len(o.extra)+2)
	if len(o.defaults) > 0 {
		sources = append(sources, source{name: "user agent", text: o.defaults})
	}
	sources = append(sources, source{name: "document", text: []byte(dom.StyleText(doc))})
	sources = append(sources, o.extra...)

	for _, src := range sources {
		part, err := parser.Parse(string(src.text), src.name)
		if err != nil {
			return nil, fmt.Errorf("unable to parse %s stylesheet: %w", src.name, err)
		}
		sheet.Append(part)
	}

	styled := style.Resolve(doc, sheet)
	log.Debug("Page loaded", zap.Int("rules", len(sheet.Rules)), zap.Int("sheets", len(sources)))

	return &Page{Document: doc, Stylesheet: sheet, Styled: styled}, nil
}

// Title returns text of the first title element, or empty string.
func (p *Page) Title() string {
	var title string
	p.Styled.Walk(func(sn *style.StyledNode, _ int) bool {
		el := sn.Element()
		if el == nil || el.Tag != "title" {
			return true
		}
		for _, c := range el.Children {
			if t, ok := c.(*dom.Text); ok {
				title = strings.TrimSpace(t.Data)
				break
			}
		}
		return false
	})
	return title
}

// Nodes counts nodes in the styled tree.
func (p *Page) Nodes() int {
	n := 0
	p.Styled.Walk(func(*style.StyledNode, int) bool {
		n++
		return true
	})
	return n
}
