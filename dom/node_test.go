package dom

import (
	"strings"
	"testing"
)

func TestElement_Classes(t *testing.T) {
	tests := []struct {
		name  string
		attrs map[string]string
		want  []string
	}{
		{"absent", nil, nil},
		{"empty", map[string]string{"class": ""}, nil},
		{"single", map[string]string{"class": "note"}, []string{"note"}},
		{"several", map[string]string{"class": "a b c"}, []string{"a", "b", "c"}},
		{"double space", map[string]string{"class": "a  b"}, []string{"a", "b"}},
		{"duplicates", map[string]string{"class": "a a"}, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := NewElement("div", tt.attrs)
			got := el.Classes()
			if got == nil {
				t.Fatal("Classes() returned nil set")
			}
			if len(got) != len(tt.want) {
				t.Errorf("Classes() = %v, want %v", got, tt.want)
			}
			for _, c := range tt.want {
				if !el.HasClass(c) {
					t.Errorf("expected class %q", c)
				}
			}
		})
	}
}

func TestElement_ID(t *testing.T) {
	el := NewElement("p", map[string]string{"id": "main"})
	if id, ok := el.ID(); !ok || id != "main" {
		t.Errorf("ID() = %q, %v, want \"main\", true", id, ok)
	}
	if _, ok := NewElement("p", nil).ID(); ok {
		t.Error("ID() should be absent")
	}
}

func TestElement_String(t *testing.T) {
	el := NewElement("div", map[string]string{"id": "x", "class": "a"},
		NewText("Hello"),
		NewElement("span", nil, NewText("")),
	)

	want := strings.Join([]string{
		"<div>",
		`  @class="a"`,
		`  @id="x"`,
		`  #text: "Hello"`,
		"  <span>",
		"    #text: ",
		"",
	}, "\n")
	if got := el.String(); got != want {
		t.Errorf("String():\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestSortedAttrNames(t *testing.T) {
	el := NewElement("td", map[string]string{"data-10": "", "data-2": "", "abbr": ""})
	got := SortedAttrNames(el)
	want := []string{"abbr", "data-2", "data-10"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SortedAttrNames() = %v, want %v", got, want)
		}
	}
}

func TestStyleText(t *testing.T) {
	tests := []struct {
		name string
		root *Element
		want string
	}{
		{"nil", nil, ""},
		{"no style", NewElement("html", nil, NewElement("body", nil)), ""},
		{
			"direct child",
			NewElement("html", nil, NewText(" "), NewElement("style", nil, NewText("p{color:red;}"))),
			"p{color:red;}",
		},
		{
			"first of several",
			NewElement("html", nil,
				NewElement("style", nil, NewText("a{}")),
				NewElement("style", nil, NewText("b{}"))),
			"a{}",
		},
		{
			"nested is ignored",
			NewElement("html", nil, NewElement("head", nil, NewElement("style", nil, NewText("p{}")))),
			"",
		},
		{"empty style", NewElement("html", nil, NewElement("style", nil)), ""},
		{
			"text children joined",
			NewElement("html", nil, NewElement("style", nil,
				NewText("p{} "), NewElement("b", nil), NewText("div{}"))),
			"p{} div{}",
		},
		{
			"element child",
			NewElement("html", nil, NewElement("style", nil, NewElement("b", nil)), NewElement("style", nil, NewText("p{}"))),
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StyleText(tt.root); got != tt.want {
				t.Errorf("StyleText() = %q, want %q", got, tt.want)
			}
		})
	}
}
