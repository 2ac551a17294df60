package style

import (
	"slices"

	"sonata/css"
	"sonata/dom"
)

type matchedRule struct {
	specificity css.Specificity
	rule        *css.Rule
}

// Resolve builds styled tree isomorphic to root. Inputs are only read, so
// several resolutions may run over the same tree concurrently.
func Resolve(root dom.Node, sheet *css.Stylesheet) *StyledNode {
	if root == nil {
		return nil
	}
	if sheet == nil {
		sheet = &css.Stylesheet{}
	}
	return resolve(root, sheet)
}

func resolve(n dom.Node, sheet *css.Stylesheet) *StyledNode {
	sn := &StyledNode{Node: n, Values: make(map[string]css.Value)}

	el, ok := n.(*dom.Element)
	if !ok {
		return sn
	}
	sn.Values = SpecifiedValues(el, sheet)
	sn.Children = make([]*StyledNode, 0, len(el.Children))
	for _, c := range el.Children {
		sn.Children = append(sn.Children, resolve(c, sheet))
	}
	return sn
}

// SpecifiedValues applies declarations of all matching rules in ascending
// specificity order, so later ones overwrite earlier ones. Rules of equal
// specificity are applied in stylesheet order.
func SpecifiedValues(el *dom.Element, sheet *css.Stylesheet) map[string]css.Value {
	values := make(map[string]css.Value)
	for _, m := range matchingRules(el, sheet) {
		for _, d := range m.rule.Declarations {
			values[d.Name] = d.Value
		}
	}
	return values
}

func matchingRules(el *dom.Element, sheet *css.Stylesheet) []matchedRule {
	var matched []matchedRule
	for i := range sheet.Rules {
		if sp, ok := sheet.Rules[i].Match(el); ok {
			matched = append(matched, matchedRule{specificity: sp, rule: &sheet.Rules[i]})
		}
	}
	slices.SortStableFunc(matched, func(a, b matchedRule) int {
		return a.specificity.Compare(b.specificity)
	})
	return matched
}
