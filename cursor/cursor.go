// Package cursor provides the forward-only scanner shared by the document and
// style-sheet parsers.
package cursor

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Cursor walks over text one character at a time. Offset is a byte index and
// always sits on a character boundary.
type Cursor struct {
	text string
	pos  int
}

func New(text string) *Cursor {
	return &Cursor{text: text}
}

// Offset returns current byte position.
func (c *Cursor) Offset() int {
	return c.pos
}

// Text returns complete input the cursor was created over.
func (c *Cursor) Text() string {
	return c.text
}

func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.text)
}

// Peek returns character at current position without consuming it.
func (c *Cursor) Peek() (rune, error) {
	if c.AtEnd() {
		return 0, c.errEnd()
	}
	r, _ := utf8.DecodeRuneInString(c.text[c.pos:])
	return r, nil
}

// StartsWith reports whether remaining input begins with s.
func (c *Cursor) StartsWith(s string) bool {
	return strings.HasPrefix(c.text[c.pos:], s)
}

// Advance consumes and returns one character.
func (c *Cursor) Advance() (rune, error) {
	if c.AtEnd() {
		return 0, c.errEnd()
	}
	r, size := utf8.DecodeRuneInString(c.text[c.pos:])
	c.pos += size
	return r, nil
}

// ConsumeWhile consumes characters as long as pred holds and returns them.
// Stops quietly at the end of input.
func (c *Cursor) ConsumeWhile(pred func(rune) bool) string {
	start := c.pos
	for c.pos < len(c.text) {
		r, size := utf8.DecodeRuneInString(c.text[c.pos:])
		if !pred(r) {
			break
		}
		c.pos += size
	}
	return c.text[start:c.pos]
}

// ConsumeUntil consumes everything up to (not including) the first
// occurrence of stop. When stop is absent the rest of the input is consumed
// and false is returned.
func (c *Cursor) ConsumeUntil(stop string) (string, bool) {
	rest := c.text[c.pos:]
	idx := strings.Index(rest, stop)
	if idx < 0 {
		c.pos = len(c.text)
		return rest, false
	}
	c.pos += idx
	return rest[:idx], true
}

func (c *Cursor) SkipWhitespace() {
	c.ConsumeWhile(IsWhitespace)
}

// Skip consumes s if remaining input starts with it.
func (c *Cursor) Skip(s string) bool {
	if !c.StartsWith(s) {
		return false
	}
	c.pos += len(s)
	return true
}

// Expect consumes next character and fails unless it is want.
func (c *Cursor) Expect(want rune) error {
	at := c.pos
	r, err := c.Advance()
	if err != nil {
		return c.errorAt(at, err, "expected %q", want)
	}
	if r != want {
		return c.errorAt(at, nil, "expected %q, found %q", want, r)
	}
	return nil
}

// Errorf returns positioned error for current offset.
func (c *Cursor) Errorf(format string, args ...any) *ParseError {
	return c.errorAt(c.pos, nil, format, args...)
}

// Wrap returns positioned error for current offset carrying err as its cause.
func (c *Cursor) Wrap(err error, format string, args ...any) *ParseError {
	return c.errorAt(c.pos, err, format, args...)
}

func (c *Cursor) errorAt(offset int, err error, format string, args ...any) *ParseError {
	return NewError(c.text, offset, err, format, args...)
}

func (c *Cursor) errEnd() *ParseError {
	return c.errorAt(c.pos, ErrEndOfInput, "nothing left to read")
}

func IsWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

// IsTagNameChar matches characters allowed in tag names: [A-Za-z0-9].
func IsTagNameChar(r rune) bool {
	return r < utf8.RuneSelf && (isASCIILetter(r) || isASCIIDigit(r))
}

// IsIdentChar matches characters allowed in identifiers: [A-Za-z0-9_-].
func IsIdentChar(r rune) bool {
	return IsTagNameChar(r) || r == '_' || r == '-'
}

func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
