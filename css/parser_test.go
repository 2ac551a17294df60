package css_test

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"sonata/cursor"
	"sonata/css"
)

func mustParse(t *testing.T, text string) *css.Stylesheet {
	t.Helper()
	sheet, err := css.NewParser(zap.NewNop()).Parse(text, "test")
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", text, err)
	}
	return sheet
}

func simple(t *testing.T, sel css.Selector) css.SimpleSelector {
	t.Helper()
	s, ok := sel.(css.SimpleSelector)
	if !ok {
		t.Fatalf("expected SimpleSelector, got %T", sel)
	}
	return s
}

func TestParser_ElementSelector(t *testing.T) {
	sheet := mustParse(t, `p { margin: 1em; }`)

	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(sheet.Rules))
	}
	rule := sheet.Rules[0]
	if len(rule.Selectors) != 1 {
		t.Fatalf("expected 1 selector, got %d", len(rule.Selectors))
	}
	if sel := simple(t, rule.Selectors[0]); sel.TagName != "p" {
		t.Errorf("expected tag 'p', got %q", sel.TagName)
	}
	if len(rule.Declarations) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(rule.Declarations))
	}
	d := rule.Declarations[0]
	if d.Name != "margin" {
		t.Errorf("expected property 'margin', got %q", d.Name)
	}
	want := css.Length{Value: css.SingleLength(1), Unit: css.UnitEm}
	if d.Value != want {
		t.Errorf("expected %v, got %v", want, d.Value)
	}
}

func TestParser_CompoundSelector(t *testing.T) {
	tests := []struct {
		input string
		want  css.SimpleSelector
	}{
		{"div#main.a.b", css.SimpleSelector{TagName: "div", ID: "main", Classes: []string{"a", "b"}}},
		{".a#main.b", css.SimpleSelector{ID: "main", Classes: []string{"a", "b"}}},
		{"*", css.SimpleSelector{}},
		{"*.note", css.SimpleSelector{Classes: []string{"note"}}},
		{"#x", css.SimpleSelector{ID: "x"}},
		{"h1", css.SimpleSelector{TagName: "h1"}},
		{".under_score-dash", css.SimpleSelector{Classes: []string{"under_score-dash"}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			sheet := mustParse(t, tt.input+" {}")
			got := simple(t, sheet.Rules[0].Selectors[0])
			if got.TagName != tt.want.TagName || got.ID != tt.want.ID {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
			if strings.Join(got.Classes, ",") != strings.Join(tt.want.Classes, ",") {
				t.Errorf("classes = %v, want %v", got.Classes, tt.want.Classes)
			}
		})
	}
}

func TestParser_SelectorsSortedBySpecificity(t *testing.T) {
	sheet := mustParse(t, `div, .note, #x { color: red; }`)

	var got []string
	for _, s := range sheet.Rules[0].Selectors {
		got = append(got, s.String())
	}
	want := []string{"#x", ".note", "div"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("selectors = %v, want %v", got, want)
	}
}

func TestParser_SelectorSortIsStable(t *testing.T) {
	sheet := mustParse(t, `p, .b, h1, .a, em { }`)

	var got []string
	for _, s := range sheet.Rules[0].Selectors {
		got = append(got, s.String())
	}
	want := []string{".b", ".a", "p", "h1", "em"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("selectors = %v, want %v", got, want)
	}
}

func TestParser_Values(t *testing.T) {
	tests := []struct {
		decl string
		want css.Value
	}{
		{"color: #fff", css.ColorValue{Color: css.White}},
		{"color: WHITE", css.ColorValue{Color: css.White}},
		{"background-color: rgba(45, 21, 100, 0.1)", css.ColorValue{Color: css.Color{R: 45, G: 21, B: 100, A: 25}}},
		{"border-left-color: transparent", css.ColorValue{Color: css.Transparent}},
		{"color: #12345", css.Keyword("#12345")},
		{"color: inherit", css.Keyword("inherit")},
		{"padding: 10px 20px", css.Length{Value: css.AllLengths(10, 20, 10, 20), Unit: css.UnitPx}},
		{"margin: 1px 2px 3px 4px", css.Length{Value: css.AllLengths(1, 2, 3, 4), Unit: css.UnitPx}},
		{"margin: 1px 2px 3px", css.Keyword("1px 2px 3px")},
		{"display:  Block  ", css.Keyword("block")},
		{"width: auto", css.Keyword("auto")},
		{"font-size: 2EM", css.Length{Value: css.SingleLength(2), Unit: css.UnitEm}},
		{"background: white", css.Keyword("white")},
		{"content: ", css.Keyword("")},
	}

	for _, tt := range tests {
		t.Run(tt.decl, func(t *testing.T) {
			sheet := mustParse(t, "p { "+tt.decl+"; }")
			got := sheet.Rules[0].Declarations[0].Value
			if got != tt.want {
				t.Errorf("value = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParser_MultipleRules(t *testing.T) {
	text := `
/* page */
h1, h2, h3 { margin: auto; color: #cc0000; }
div.note { margin-bottom: 20px; padding: 10px; }
#answer { display: none; }
`
	sheet := mustParse(t, text)

	if len(sheet.Rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(sheet.Rules))
	}
	if n := sheet.Declarations(); n != 5 {
		t.Errorf("expected 5 declarations, got %d", n)
	}
	if got := sheet.Rules[0].Declarations[1].Value; got != (css.ColorValue{Color: css.Color{R: 0xcc, A: 0xff}}) {
		t.Errorf("color = %v", got)
	}
	if got := sheet.Rules[2].Declarations[0].Name; got != "display" {
		t.Errorf("expected 'display', got %q", got)
	}
}

func TestParser_Comments(t *testing.T) {
	sheet := mustParse(t, "/* a */ p /* b */ { /* c */ color: red; /* d */ } /* e */")
	if len(sheet.Rules) != 1 || len(sheet.Rules[0].Declarations) != 1 {
		t.Fatalf("unexpected result:\n%s", sheet)
	}
}

func TestParser_MarkupCommentMarkers(t *testing.T) {
	sheet := mustParse(t, "<!-- p { color: red; } --> <!-- div { color: blue; } -->")
	if len(sheet.Rules) != 2 {
		t.Fatalf("rules = %d, want 2:\n%s", len(sheet.Rules), sheet)
	}
	if got := simple(t, sheet.Rules[1].Selectors[0]).TagName; got != "div" {
		t.Errorf("got %q, want div", got)
	}
}

func TestParser_Empty(t *testing.T) {
	for _, text := range []string{"", "   \n", "/* only */", "<!-- -->"} {
		sheet := mustParse(t, text)
		if len(sheet.Rules) != 0 {
			t.Errorf("Parse(%q) expected no rules, got %d", text, len(sheet.Rules))
		}
	}
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		eoi   bool
	}{
		{"bad selector character", "p > a { color: red; }", false},
		{"descendant combinator", "div p { color: red; }", false},
		{"missing open brace", "p color: red; }", false},
		{"missing close brace", "p { color: red;", true},
		{"missing colon", "p { color red; }", false},
		{"missing semicolon", "p { color: red }", false},
		{"missing semicolon at end", "p { color: red", true},
		{"empty selector", "{ color: red; }", false},
		{"trailing comma", "p, { color: red; }", false},
		{"empty id", "# { }", false},
		{"empty property", "p { : red; }", false},
		{"selector only", "p", true},
		{"unterminated comment", "p { } /* x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, err := css.Parse(tt.input)
			if err == nil {
				t.Fatalf("expected error, got:\n%s", sheet)
			}
			if sheet != nil {
				t.Error("expected no partial stylesheet")
			}
			var pe *cursor.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *cursor.ParseError, got %T", err)
			}
			if got := errors.Is(err, cursor.ErrEndOfInput); got != tt.eoi {
				t.Errorf("errors.Is(err, ErrEndOfInput) = %v, want %v (%v)", got, tt.eoi, err)
			}
		})
	}
}

func TestStylesheet_RoundTrip(t *testing.T) {
	sheet := mustParse(t, `div, #x.a { color: #ff0000; margin: 1px 2px; float: left; }`)

	again := mustParse(t, sheet.String())
	if again.String() != sheet.String() {
		t.Errorf("serialized form is not stable:\n%s\n---\n%s", sheet, again)
	}
	if again.Rules[0].Declarations[0].Value != sheet.Rules[0].Declarations[0].Value {
		t.Error("color did not survive serialization")
	}
}

func TestStylesheet_Append(t *testing.T) {
	a := mustParse(t, "p { color: red; }")
	b := mustParse(t, "h1 { color: blue; } h2 { color: green; }")

	a.Append(b, nil)
	if len(a.Rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(a.Rules))
	}
	if a.Rules[2].Selectors[0].String() != "h2" {
		t.Errorf("expected appended rules at the end, got %s", a.Rules[2].Selectors[0])
	}
}
