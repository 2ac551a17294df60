package cursor

import (
	"errors"
	"fmt"
	"strings"

	parse "github.com/tdewolff/parse/v2"
)

// ErrEndOfInput is the cause of any error raised by reading past the end.
var ErrEndOfInput = errors.New("unexpected end of input")

// ParseError describes malformed input together with where it was found.
type ParseError struct {
	Msg     string
	Offset  int
	Line    int
	Column  int
	Context string
	Err     error
}

// NewError builds ParseError for byte offset in text. Line, column and
// context line are computed from the text itself.
func NewError(text string, offset int, err error, format string, args ...any) *ParseError {
	offset = min(max(offset, 0), len(text))
	line, col, context := parse.Position(strings.NewReader(text), offset)
	return &ParseError{
		Msg:     fmt.Sprintf(format, args...),
		Offset:  offset,
		Line:    line,
		Column:  col,
		Context: context,
		Err:     err,
	}
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.Msg)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	fmt.Fprintf(&b, " (line %d, column %d)", e.Line, e.Column)
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
