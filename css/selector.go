package css

import (
	"sonata/dom"
)

// Matches reports whether every present component of the selector matches
// the element exactly. Matching is case-sensitive.
func (s SimpleSelector) Matches(el *dom.Element) bool {
	if el == nil {
		return false
	}
	if len(s.TagName) > 0 && s.TagName != el.Tag {
		return false
	}
	if len(s.ID) > 0 {
		if id, ok := el.ID(); !ok || id != s.ID {
			return false
		}
	}
	if len(s.Classes) == 0 {
		return true
	}
	classes := el.Classes()
	for _, c := range s.Classes {
		if _, ok := classes[c]; !ok {
			return false
		}
	}
	return true
}

// Match returns specificity of the first selector in the rule matching el.
// Since selectors are ordered by descending specificity this is the highest
// one available.
func (r Rule) Match(el *dom.Element) (Specificity, bool) {
	for _, sel := range r.Selectors {
		switch s := sel.(type) {
		case SimpleSelector:
			if s.Matches(el) {
				return s.Specificity(), true
			}
		}
	}
	return Specificity{}, false
}
