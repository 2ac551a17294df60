package css

import (
	"fmt"
)

// Value is a typed declaration value: Keyword, Length or ColorValue.
type Value interface {
	value()
	String() string
}

// Keyword keeps raw value text when nothing else could be recognized.
type Keyword string

func (Keyword) value() {}

func (k Keyword) String() string {
	return string(k)
}

// LengthValue is either a single number or four sides in top, right, bottom,
// left order. Single values carry the same number in all four fields.
type LengthValue struct {
	Kind                     LengthKind
	Top, Right, Bottom, Left int
}

// SingleLength makes LengthValue of one number.
func SingleLength(n int) LengthValue {
	return LengthValue{Kind: LengthKindSingle, Top: n, Right: n, Bottom: n, Left: n}
}

// AllLengths makes LengthValue of four sides.
func AllLengths(top, right, bottom, left int) LengthValue {
	return LengthValue{Kind: LengthKindAll, Top: top, Right: right, Bottom: bottom, Left: left}
}

// Sides returns numbers for top, right, bottom and left.
func (l LengthValue) Sides() [4]int {
	return [4]int{l.Top, l.Right, l.Bottom, l.Left}
}

// Length is a number (or four) with unit.
type Length struct {
	Value LengthValue
	Unit  Unit
}

func (Length) value() {}

func (l Length) String() string {
	if l.Value.Kind == LengthKindSingle {
		return fmt.Sprintf("%d%s", l.Value.Top, l.Unit)
	}
	return fmt.Sprintf("%[1]d%[5]s %[2]d%[5]s %[3]d%[5]s %[4]d%[5]s", l.Value.Top, l.Value.Right, l.Value.Bottom, l.Value.Left, l.Unit)
}

// ColorValue is a recognized color.
type ColorValue struct {
	Color Color
}

func (ColorValue) value() {}

func (c ColorValue) String() string {
	return c.Color.String()
}
