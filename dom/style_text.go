package dom

import "strings"

// StyleText returns text content of the first <style> element found among
// direct children of root, or empty string. Text children are joined in order,
// anything else is skipped. Nested style elements are not searched for.
func StyleText(root *Element) string {
	if root == nil {
		return ""
	}
	for _, c := range root.Children {
		el, ok := c.(*Element)
		if !ok || el.Tag != "style" {
			continue
		}
		var b strings.Builder
		for _, sc := range el.Children {
			if txt, ok := sc.(*Text); ok {
				b.WriteString(txt.Data)
			}
		}
		return b.String()
	}
	return ""
}
