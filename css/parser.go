package css

import (
	"strings"

	"go.uber.org/zap"

	"sonata/cursor"
)

// Properties which values are interpreted as colors first.
var colorProperties = map[string]struct{}{
	"background-color":    {},
	"border-color":        {},
	"border-top-color":    {},
	"border-right-color":  {},
	"border-bottom-color": {},
	"border-left-color":   {},
	"color":               {},
	"outline-color":       {},
}

// IsColorProperty reports whether name is a color-bearing property.
func IsColorProperty(name string) bool {
	_, ok := colorProperties[name]
	return ok
}

// Parser parses style sheets into rules.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses text with nop logger.
func Parse(text string) (*Stylesheet, error) {
	return NewParser(nil).Parse(text)
}

// Parse parses CSS text into a Stylesheet. The optional source parameter
// identifies what's being parsed (for debug logging). Structural errors abort
// parsing, unrecognized values never do - they are kept as keywords.
func (p *Parser) Parse(text string, source ...string) (*Stylesheet, error) {
	log := p.log
	if len(source) > 0 && source[0] != "" {
		log = log.With(zap.String("source", source[0]))
	}
	log.Debug("Parsing CSS", zap.Int("bytes", len(text)))

	s := &sheetState{cur: cursor.New(text), log: log}
	sheet, err := s.rules()
	if err != nil {
		log.Debug("CSS parsing failed", zap.Error(err))
		return nil, err
	}
	log.Debug("Parsed CSS", zap.Int("rules", len(sheet.Rules)), zap.Int("declarations", sheet.Declarations()))
	return sheet, nil
}

type sheetState struct {
	cur *cursor.Cursor
	log *zap.Logger
}

// skipMarkers skips whitespace, comments and <!-- --> markers found between
// rules of a sheet embedded into a document.
func (s *sheetState) skipMarkers() error {
	for {
		if err := s.skipSpace(); err != nil {
			return err
		}
		if !s.cur.Skip("<!--") && !s.cur.Skip("-->") {
			return nil
		}
	}
}

// skipSpace skips whitespace and comments.
func (s *sheetState) skipSpace() error {
	for {
		s.cur.SkipWhitespace()
		if !s.cur.StartsWith("/*") {
			return nil
		}
		start := s.cur.Offset()
		s.cur.Skip("/*")
		if _, ok := s.cur.ConsumeUntil("*/"); !ok {
			return cursor.NewError(s.cur.Text(), start, cursor.ErrEndOfInput, "unterminated comment")
		}
		s.cur.Skip("*/")
	}
}

func (s *sheetState) rules() (*Stylesheet, error) {
	sheet := &Stylesheet{Rules: make([]Rule, 0)}
	for {
		if err := s.skipMarkers(); err != nil {
			return nil, err
		}
		if s.cur.AtEnd() {
			return sheet, nil
		}
		rule, err := s.rule()
		if err != nil {
			return nil, err
		}
		sheet.Rules = append(sheet.Rules, rule)
	}
}

// rule := selector (',' selector)* '{' declaration* '}'.
func (s *sheetState) rule() (Rule, error) {
	selectors, err := s.selectors()
	if err != nil {
		return Rule{}, err
	}
	declarations, err := s.declarations()
	if err != nil {
		return Rule{}, err
	}
	return NewRule(selectors, declarations), nil
}

func (s *sheetState) selectors() ([]Selector, error) {
	var list []Selector
	for {
		sel, err := s.selector()
		if err != nil {
			return nil, err
		}
		list = append(list, sel)

		if err := s.skipSpace(); err != nil {
			return nil, err
		}
		r, err := s.cur.Peek()
		if err != nil {
			return nil, err
		}
		switch r {
		case ',':
			_, _ = s.cur.Advance()
			if err := s.skipSpace(); err != nil {
				return nil, err
			}
		case '{':
			return list, nil
		default:
			return nil, s.cur.Errorf("unexpected character %q in selector list", r)
		}
	}
}

// selector := ('*' | tag-name)? ('#' id)? ('.' class)* with components in
// any order.
func (s *sheetState) selector() (SimpleSelector, error) {
	var (
		sel   SimpleSelector
		empty = true
	)
	for !s.cur.AtEnd() {
		r, _ := s.cur.Peek()
		switch {
		case r == '*':
			_, _ = s.cur.Advance()
		case r == '#':
			_, _ = s.cur.Advance()
			id, err := s.ident("id")
			if err != nil {
				return sel, err
			}
			sel.ID = id
		case r == '.':
			_, _ = s.cur.Advance()
			class, err := s.ident("class name")
			if err != nil {
				return sel, err
			}
			sel.Classes = append(sel.Classes, class)
		case cursor.IsIdentChar(r):
			sel.TagName = s.cur.ConsumeWhile(cursor.IsIdentChar)
		default:
			if empty {
				return sel, s.cur.Errorf("expected selector, found %q", r)
			}
			return sel, nil
		}
		empty = false
	}
	if empty {
		return sel, s.cur.Wrap(cursor.ErrEndOfInput, "expected selector")
	}
	return sel, nil
}

func (s *sheetState) ident(what string) (string, error) {
	name := s.cur.ConsumeWhile(cursor.IsIdentChar)
	if len(name) > 0 {
		return name, nil
	}
	if s.cur.AtEnd() {
		return "", s.cur.Wrap(cursor.ErrEndOfInput, "expected %s", what)
	}
	return "", s.cur.Errorf("expected %s", what)
}

func (s *sheetState) declarations() ([]Declaration, error) {
	if err := s.cur.Expect('{'); err != nil {
		return nil, err
	}
	list := make([]Declaration, 0)
	for {
		if err := s.skipSpace(); err != nil {
			return nil, err
		}
		r, err := s.cur.Peek()
		if err != nil {
			return nil, err
		}
		if r == '}' {
			_, _ = s.cur.Advance()
			return list, nil
		}
		d, err := s.declaration()
		if err != nil {
			return nil, err
		}
		list = append(list, d)
	}
}

// declaration := property-name ':' raw-value-text ';'.
func (s *sheetState) declaration() (Declaration, error) {
	name, err := s.ident("property name")
	if err != nil {
		return Declaration{}, err
	}
	if err := s.skipSpace(); err != nil {
		return Declaration{}, err
	}
	if err := s.cur.Expect(':'); err != nil {
		return Declaration{}, err
	}
	raw := s.cur.ConsumeWhile(func(r rune) bool { return r != ';' && r != '}' })
	if err := s.cur.Expect(';'); err != nil {
		return Declaration{}, err
	}
	raw = strings.ToLower(strings.TrimSpace(raw))
	return Declaration{Name: name, Value: s.value(name, raw)}, nil
}

// value tries color (for color properties), then length, then keeps raw text.
func (s *sheetState) value(name, raw string) Value {
	if IsColorProperty(name) {
		c, err := ParseColor(raw)
		if err == nil {
			return ColorValue{Color: c}
		}
		s.log.Debug("Not a color", zap.String("property", name), zap.String("value", raw), zap.Error(err))
	}
	if l, ok := ParseLength(raw); ok {
		return l
	}
	return Keyword(raw)
}
