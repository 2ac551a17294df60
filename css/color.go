package css

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/image/colornames"

	"sonata/cursor"
)

var (
	ErrInvalidColor     = errors.New("invalid color")
	ErrUnknownColorName = errors.New("unknown color name")
	ErrEmptyColor       = errors.New("empty color")
)

// Color is RGBA with 8 bits per channel, comparable with ==.
type Color struct {
	R, G, B, A uint8
}

var (
	Transparent = Color{}
	Black       = Color{A: 0xff}
	White       = Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// String returns color in #rrggbbaa form.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// LookupColorName finds color by case-insensitive CSS extended color keyword
// or "transparent".
func LookupColorName(name string) (Color, bool) {
	name = strings.ToLower(name)
	if name == "transparent" {
		return Transparent, true
	}
	c, ok := colornames.Map[name]
	if !ok {
		return Color{}, false
	}
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}, true
}

// ParseColor interprets text as color: "#rgb", "#rrggbb", "#rrggbbaa",
// "rgb(r,g,b)", "rgba(r,g,b,a)" or color name. Whitespace is ignored and
// case does not matter. Returned errors are *cursor.ParseError wrapping one of
// ErrInvalidColor, ErrUnknownColorName or ErrEmptyColor.
func ParseColor(text string) (Color, error) {
	s := strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text))

	switch {
	case len(s) == 0:
		return Color{}, cursor.NewError(text, 0, ErrEmptyColor, "no color value")
	case s[0] == '#':
		return parseHex(s)
	case strings.HasPrefix(s, "rgba("):
		return parseRGB(s, "rgba(", 4)
	case strings.HasPrefix(s, "rgb("):
		return parseRGB(s, "rgb(", 3)
	}

	if c, ok := LookupColorName(s); ok {
		return c, nil
	}
	return Color{}, cursor.NewError(s, 0, ErrUnknownColorName, "%q", s)
}

func parseHex(s string) (Color, error) {
	digits := s[1:]

	var (
		pairs []string
		step  = 2
	)
	switch len(digits) {
	case 3:
		step = 1
		// each nibble is replicated
		pairs = []string{
			strings.Repeat(digits[0:1], 2),
			strings.Repeat(digits[1:2], 2),
			strings.Repeat(digits[2:3], 2),
		}
	case 6, 8:
		for i := 0; i < len(digits); i += 2 {
			pairs = append(pairs, digits[i:i+2])
		}
	default:
		return Color{}, cursor.NewError(s, 0, ErrInvalidColor, "hex color must have 3, 6 or 8 digits, got %d", len(digits))
	}

	c := Color{A: 0xff}
	channels := []*uint8{&c.R, &c.G, &c.B, &c.A}
	for i, p := range pairs {
		v, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return Color{}, cursor.NewError(s, 1+i*step, fmt.Errorf("%w: %w", ErrInvalidColor, err), "bad hex component %q", p)
		}
		*channels[i] = uint8(v)
	}
	return c, nil
}

func parseRGB(s, prefix string, want int) (Color, error) {
	if !strings.HasSuffix(s, ")") {
		return Color{}, cursor.NewError(s, len(s), ErrInvalidColor, "missing closing parenthesis")
	}
	args := strings.Split(s[len(prefix):len(s)-1], ",")
	if len(args) != want {
		return Color{}, cursor.NewError(s, len(prefix), ErrInvalidColor, "%s) needs %d components, got %d", strings.TrimSuffix(prefix, "("), want, len(args))
	}

	c := Color{A: 0xff}
	channels := []*uint8{&c.R, &c.G, &c.B}
	offset := len(prefix)
	for i, ch := range channels {
		v, err := strconv.ParseUint(args[i], 10, 8)
		if err != nil {
			return Color{}, cursor.NewError(s, offset, fmt.Errorf("%w: %w", ErrInvalidColor, err), "bad color component %q", args[i])
		}
		*ch = uint8(v)
		offset += len(args[i]) + 1
	}

	if want == 4 {
		a, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return Color{}, cursor.NewError(s, offset, fmt.Errorf("%w: %w", ErrInvalidColor, err), "bad alpha component %q", args[3])
		}
		if !(a >= 0 && a <= 1) {
			return Color{}, cursor.NewError(s, offset, ErrInvalidColor, "alpha %v is out of [0,1]", a)
		}
		// truncated, 0.1 gives 25
		c.A = uint8(a * 255)
	}
	return c, nil
}
