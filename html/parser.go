// Package html parses a small subset of markup into dom tree.
package html

import (
	"go.uber.org/zap"

	"sonata/cursor"
	"sonata/dom"
)

// RootTag names synthetic element wrapping several top-level nodes.
const RootTag = "html"

// Parser turns markup text into dom tree. It is stateless between calls and
// safe for concurrent use.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new markup parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("html-parser")}
}

// Parse parses text with nop logger.
func Parse(text string) (*dom.Element, error) {
	return NewParser(nil).Parse(text)
}

// Parse parses text into element tree. When input yields exactly one
// top-level element it is returned as is, anything else is wrapped into
// synthetic RootTag element. Any malformed construct aborts parsing and no
// tree is returned.
func (p *Parser) Parse(text string) (*dom.Element, error) {
	p.log.Debug("Parsing markup", zap.Int("bytes", len(text)))

	s := &state{cur: cursor.New(text)}
	nodes, err := s.nodes()
	if err != nil {
		p.log.Debug("Markup parsing failed", zap.Error(err))
		return nil, err
	}
	if !s.cur.AtEnd() {
		err := s.cur.Errorf("unexpected closing tag at top level")
		p.log.Debug("Markup parsing failed", zap.Error(err))
		return nil, err
	}

	if len(nodes) == 1 {
		if el, ok := nodes[0].(*dom.Element); ok {
			return el, nil
		}
	}
	return dom.NewElement(RootTag, nil, nodes...), nil
}

type state struct {
	cur *cursor.Cursor
}

// nodes := node* stopping at end of input or "</".
func (s *state) nodes() ([]dom.Node, error) {
	var out []dom.Node
	for {
		s.cur.SkipWhitespace()
		if s.cur.AtEnd() || s.cur.StartsWith("</") {
			return out, nil
		}
		if s.cur.StartsWith("<!--") {
			if err := s.comment(); err != nil {
				return nil, err
			}
			continue
		}
		n, err := s.node()
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
}

func (s *state) node() (dom.Node, error) {
	r, err := s.cur.Peek()
	if err != nil {
		return nil, err
	}
	if r == '<' {
		return s.element()
	}
	return s.text(), nil
}

func (s *state) text() *dom.Text {
	return dom.NewText(s.cur.ConsumeWhile(func(r rune) bool { return r != '<' }))
}

func (s *state) comment() error {
	start := s.cur.Offset()
	s.cur.Skip("<!--")
	if _, ok := s.cur.ConsumeUntil("-->"); !ok {
		return cursor.NewError(s.cur.Text(), start, cursor.ErrEndOfInput, "unterminated comment")
	}
	s.cur.Skip("-->")
	return nil
}

// element := '<' tag-name attribute* '>' nodes '</' tag-name '>'.
func (s *state) element() (*dom.Element, error) {
	if err := s.cur.Expect('<'); err != nil {
		return nil, err
	}
	tag, err := s.tagName()
	if err != nil {
		return nil, err
	}
	attrs, err := s.attributes()
	if err != nil {
		return nil, err
	}
	if err := s.cur.Expect('>'); err != nil {
		return nil, err
	}

	var children []dom.Node
	if tag == "style" {
		children = s.rawText(tag)
	} else if children, err = s.nodes(); err != nil {
		return nil, err
	}

	at := s.cur.Offset()
	if !s.cur.Skip("</") {
		return nil, cursor.NewError(s.cur.Text(), at, cursor.ErrEndOfInput, "element <%s> is not closed", tag)
	}
	closing, err := s.tagName()
	if err != nil {
		return nil, err
	}
	if closing != tag {
		return nil, cursor.NewError(s.cur.Text(), at, nil, "closing tag </%s> does not match <%s>", closing, tag)
	}
	if err := s.cur.Expect('>'); err != nil {
		return nil, err
	}
	return dom.NewElement(tag, attrs, children...), nil
}

// rawText consumes element content verbatim up to its closing tag. A missing
// closing tag is reported by the caller.
func (s *state) rawText(tag string) []dom.Node {
	s.cur.SkipWhitespace()
	data, _ := s.cur.ConsumeUntil("</" + tag)
	if len(data) == 0 {
		return nil
	}
	return []dom.Node{dom.NewText(data)}
}

func (s *state) tagName() (string, error) {
	name := s.cur.ConsumeWhile(cursor.IsTagNameChar)
	if len(name) == 0 {
		if s.cur.AtEnd() {
			return "", s.cur.Wrap(cursor.ErrEndOfInput, "expected tag name")
		}
		return "", s.cur.Errorf("expected tag name")
	}
	return name, nil
}

func (s *state) attributes() (map[string]string, error) {
	attrs := make(map[string]string)
	for {
		s.cur.SkipWhitespace()
		r, err := s.cur.Peek()
		if err != nil {
			return nil, err
		}
		if r == '>' {
			return attrs, nil
		}
		name, value, err := s.attribute()
		if err != nil {
			return nil, err
		}
		// last occurrence wins
		attrs[name] = value
	}
}

// attribute := name '=' quote value quote.
func (s *state) attribute() (string, string, error) {
	name := s.cur.ConsumeWhile(func(r rune) bool {
		return r != '=' && r != '>' && r != '<' && !cursor.IsWhitespace(r)
	})
	if len(name) == 0 {
		return "", "", s.cur.Errorf("expected attribute name")
	}
	if err := s.cur.Expect('='); err != nil {
		return "", "", err
	}

	at := s.cur.Offset()
	quote, err := s.cur.Advance()
	if err != nil {
		return "", "", err
	}
	if quote != '"' && quote != '\'' {
		return "", "", cursor.NewError(s.cur.Text(), at, nil, "attribute %q value must be quoted", name)
	}
	value := s.cur.ConsumeWhile(func(r rune) bool { return r != quote })
	if s.cur.AtEnd() {
		return "", "", cursor.NewError(s.cur.Text(), at, cursor.ErrEndOfInput, "attribute %q value is not terminated", name)
	}
	if err := s.cur.Expect(quote); err != nil {
		return "", "", err
	}
	return name, value, nil
}
