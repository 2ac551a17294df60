// Package css parses a reduced style-sheet language and defines rules,
// selectors and typed values produced by it.
package css

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Selector is a pattern tested against elements. SimpleSelector is the only
// implementation.
type Selector interface {
	selector()
	Specificity() Specificity
	String() string
}

// SimpleSelector matches on tag, id and classes. Empty TagName or ID means the
// component is absent and matches anything.
type SimpleSelector struct {
	TagName string
	ID      string
	Classes []string
}

func (SimpleSelector) selector() {}

// Specificity of the simple selector.
func (s SimpleSelector) Specificity() Specificity {
	var sp Specificity
	if len(s.ID) > 0 {
		sp[0] = 1
	}
	sp[1] = len(s.Classes)
	if len(s.TagName) > 0 {
		sp[2] = 1
	}
	return sp
}

// String returns selector in source form, universal selector is "*".
func (s SimpleSelector) String() string {
	var b strings.Builder
	b.WriteString(s.TagName)
	if len(s.ID) > 0 {
		b.WriteByte('#')
		b.WriteString(s.ID)
	}
	for _, c := range s.Classes {
		b.WriteByte('.')
		b.WriteString(c)
	}
	if b.Len() == 0 {
		return "*"
	}
	return b.String()
}

// Specificity is (ids, classes, tags) compared lexicographically.
type Specificity [3]int

// Compare returns -1, 0 or +1 depending on whether s is lower, equal or higher
// than o.
func (s Specificity) Compare(o Specificity) int {
	for i := range s {
		if c := cmp.Compare(s[i], o[i]); c != 0 {
			return c
		}
	}
	return 0
}

func (s Specificity) Less(o Specificity) bool {
	return s.Compare(o) < 0
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s[0], s[1], s[2])
}

// Declaration is a single "name: value" pair.
type Declaration struct {
	Name  string
	Value Value
}

func (d Declaration) String() string {
	return d.Name + ": " + d.Value.String()
}

// Rule is selector list with declaration block. Selectors are ordered by
// descending specificity, equal ones keep source order.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

// NewRule creates rule sorting selectors by descending specificity.
func NewRule(selectors []Selector, declarations []Declaration) Rule {
	sorted := slices.Clone(selectors)
	slices.SortStableFunc(sorted, func(a, b Selector) int {
		return b.Specificity().Compare(a.Specificity())
	})
	return Rule{Selectors: sorted, Declarations: declarations}
}

// WriteTo writes rule in source form.
func (r Rule) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	for i, s := range r.Selectors {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s.String())
	}
	b.WriteString(" {\n")
	for _, d := range r.Declarations {
		b.WriteString("  ")
		b.WriteString(d.String())
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func (r Rule) String() string {
	var b strings.Builder
	_, _ = r.WriteTo(&b)
	return b.String()
}

// Stylesheet keeps rules in source order.
type Stylesheet struct {
	Rules []Rule
}

// Append adds rules of other sheets after rules of s, so that on equal
// specificity they take precedence.
func (s *Stylesheet) Append(others ...*Stylesheet) {
	for _, o := range others {
		if o != nil {
			s.Rules = append(s.Rules, o.Rules...)
		}
	}
}

// Declarations counts declarations over all rules.
func (s *Stylesheet) Declarations() int {
	n := 0
	for _, r := range s.Rules {
		n += len(r.Declarations)
	}
	return n
}

// WriteTo serializes stylesheet back into text which parses to equivalent
// rules.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, r := range s.Rules {
		if i > 0 {
			n, err := io.WriteString(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		n, err := r.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (s *Stylesheet) String() string {
	var b strings.Builder
	_, _ = s.WriteTo(&b)
	return b.String()
}
