package html_test

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"sonata/cursor"
	"sonata/dom"
	"sonata/html"
)

func mustParse(t *testing.T, text string) *dom.Element {
	t.Helper()
	root, err := html.NewParser(zap.NewNop()).Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", text, err)
	}
	return root
}

func TestParse_SingleElement(t *testing.T) {
	root := mustParse(t, `<div id='x' class='a b'>t</div>`)

	if root.Tag != "div" {
		t.Fatalf("expected root <div>, got <%s>", root.Tag)
	}
	if id, ok := root.ID(); !ok || id != "x" {
		t.Errorf("ID() = %q, %v, want \"x\", true", id, ok)
	}
	classes := root.Classes()
	if len(classes) != 2 || !root.HasClass("a") || !root.HasClass("b") {
		t.Errorf("Classes() = %v, want {a, b}", classes)
	}
	if len(root.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(root.Children))
	}
	if txt, ok := root.Children[0].(*dom.Text); !ok || txt.Data != "t" {
		t.Errorf("expected text child \"t\", got %#v", root.Children[0])
	}
}

func TestParse_ChildrenInSourceOrder(t *testing.T) {
	root := mustParse(t, `<ul><li>one</li><li>two</li><li>three</li></ul>`)

	want := []string{"one", "two", "three"}
	if len(root.Children) != len(want) {
		t.Fatalf("expected %d children, got %d", len(want), len(root.Children))
	}
	for i, c := range root.Children {
		li, ok := c.(*dom.Element)
		if !ok || li.Tag != "li" {
			t.Fatalf("child %d: expected <li>, got %#v", i, c)
		}
		if txt := li.Children[0].(*dom.Text).Data; txt != want[i] {
			t.Errorf("child %d text = %q, want %q", i, txt, want[i])
		}
	}
}

func TestParse_Whitespace(t *testing.T) {
	root := mustParse(t, "  <p   title=\"x\"  >\n  Hello world  </p>  ")

	if len(root.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(root.Children))
	}
	// leading whitespace is skipped, trailing is kept
	if got := root.Children[0].(*dom.Text).Data; got != "Hello world  " {
		t.Errorf("text = %q, want %q", got, "Hello world  ")
	}
	if v, _ := root.Attr("title"); v != "x" {
		t.Errorf("title = %q, want \"x\"", v)
	}
}

func TestParse_SyntheticRoot(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		children int
	}{
		{"empty", "", 0},
		{"blank", "  \n ", 0},
		{"two elements", "<p>a</p><p>b</p>", 2},
		{"single text", "just text", 1},
		{"element and text", "<b>x</b> tail", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := mustParse(t, tt.input)
			if root.Tag != html.RootTag {
				t.Errorf("root tag = %q, want %q", root.Tag, html.RootTag)
			}
			if len(root.Attrs) != 0 {
				t.Errorf("synthetic root has attributes: %v", root.Attrs)
			}
			if len(root.Children) != tt.children {
				t.Errorf("expected %d children, got %d", tt.children, len(root.Children))
			}
		})
	}
}

func TestParse_Nested(t *testing.T) {
	root := mustParse(t, `<html><head><style>p { color: red; }</style></head><body><div class="box"><p>Hi</p></div></body></html>`)

	if root.Tag != "html" || len(root.Children) != 2 {
		t.Fatalf("unexpected root: %s", root)
	}
	body := root.Children[1].(*dom.Element)
	div := body.Children[0].(*dom.Element)
	if !div.HasClass("box") {
		t.Error("expected div.box")
	}
	p := div.Children[0].(*dom.Element)
	if p.Tag != "p" {
		t.Errorf("expected <p>, got <%s>", p.Tag)
	}
}

func TestParse_Attributes(t *testing.T) {
	root := mustParse(t, `<a href="x.html" title='He said "hi"' data-n="1" href="y.html"></a>`)

	if v, _ := root.Attr("href"); v != "y.html" {
		t.Errorf("href = %q, want last occurrence \"y.html\"", v)
	}
	if v, _ := root.Attr("title"); v != `He said "hi"` {
		t.Errorf("title = %q", v)
	}
	if v, _ := root.Attr("data-n"); v != "1" {
		t.Errorf("data-n = %q, want \"1\"", v)
	}
	if _, ok := root.ID(); ok {
		t.Error("ID() should be absent")
	}
	if len(root.Classes()) != 0 {
		t.Errorf("Classes() = %v, want empty", root.Classes())
	}
	if len(root.Children) != 0 {
		t.Errorf("expected no children, got %d", len(root.Children))
	}
}

func TestParse_Comments(t *testing.T) {
	root := mustParse(t, `<div><!-- note --><p>x</p></div>`)
	if len(root.Children) != 1 {
		t.Fatalf("expected comment to be dropped, got %d children", len(root.Children))
	}
}

func TestParse_StyleIsRawText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"comment kept", `<style>p { color: red; } <!-- note --> div { color: blue; }</style>`, `p { color: red; } <!-- note --> div { color: blue; }`},
		{"legacy wrapper", "<style><!-- div { color: blue; } --></style>", "<!-- div { color: blue; } -->"},
		{"markup kept", "<style>a<b>c</style>", "a<b>c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := mustParse(t, tt.input)
			if root.Tag != "style" || len(root.Children) != 1 {
				t.Fatalf("unexpected tree:\n%s", root)
			}
			txt, ok := root.Children[0].(*dom.Text)
			if !ok {
				t.Fatalf("expected text child, got %T", root.Children[0])
			}
			if txt.Data != tt.want {
				t.Errorf("got %q, want %q", txt.Data, tt.want)
			}
		})
	}

	if root := mustParse(t, "<style> </style>"); len(root.Children) != 0 {
		t.Errorf("empty style has %d children", len(root.Children))
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		eoi   bool
	}{
		{"mismatched closing tag", "<p>text</div>", false},
		{"unclosed element", "<p>text", true},
		{"unterminated open tag", "<p", true},
		{"unterminated attribute", `<p class="x>text</p>`, true},
		{"unquoted attribute", "<p class=x>text</p>", false},
		{"attribute without value", "<p hidden>text</p>", false},
		{"missing tag name", "<>text</>", false},
		{"stray closing tag", "</p>", false},
		{"unterminated closing tag", "<p>x</p", true},
		{"unterminated comment", "<!-- x", true},
		{"unclosed style", "<style>p { color: red; }", true},
		{"style closed by other tag", "<style>p{}</styles>", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := html.Parse(tt.input)
			if err == nil {
				t.Fatalf("expected error, got tree:\n%s", root)
			}
			if root != nil {
				t.Error("expected no partial tree")
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

func TestParse_ErrorPosition(t *testing.T) {
	_, err := html.Parse("<div>\n  <p>x</b>\n</div>")
	var pe *cursor.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *cursor.ParseError, got %v", err)
	}
	if pe.Line != 2 {
		t.Errorf("Line = %d, want 2", pe.Line)
	}
}
