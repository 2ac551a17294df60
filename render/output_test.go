package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/amazon-ion/ion-go/ion"
	"github.com/beevik/etree"
	yaml "gopkg.in/yaml.v3"

	"sonata/config"
	"sonata/page"
)

const sampleDoc = `<div id="x" class="note"><style>div { color: red; margin: 10px 20px; } .note { display: block; }</style>hello</div>`

func loadSample(t *testing.T) *page.Page {
	t.Helper()
	p, err := page.Load(sampleDoc, page.WithDefaultStylesheet(nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return p
}

func render(t *testing.T, p *page.Page, format config.OutputFmt) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Write(&buf, p, format); err != nil {
		t.Fatalf("Write(%s) error = %v", format, err)
	}
	return buf.String()
}

func TestWrite_Text(t *testing.T) {
	out := render(t, loadSample(t), config.OutputFmtText)

	for _, want := range []string{
		`<div class="note" id="x">`,
		"[style]  color: #ff0000ff",
		"[style]  display: block",
		"[style]  margin: 10px 20px 10px 20px",
		`[text]  "hello"`,
		"<style>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output does not contain %q:\n%s", want, out)
		}
	}
	// natural order of properties
	if strings.Index(out, "color:") > strings.Index(out, "display:") {
		t.Errorf("properties are not sorted:\n%s", out)
	}
}

type yamlTestNode struct {
	Tag      string            `yaml:"tag"`
	Text     string            `yaml:"text"`
	Attrs    map[string]string `yaml:"attrs"`
	Style    map[string]string `yaml:"style"`
	Children []yamlTestNode    `yaml:"children"`
}

func TestWrite_YAML(t *testing.T) {
	out := render(t, loadSample(t), config.OutputFmtYaml)

	var root yamlTestNode
	if err := yaml.Unmarshal([]byte(out), &root); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, out)
	}
	if root.Tag != "div" || root.Attrs["id"] != "x" || root.Attrs["class"] != "note" {
		t.Errorf("root = %+v", root)
	}
	if root.Style["color"] != "#ff0000ff" || root.Style["margin"] != "10px 20px 10px 20px" {
		t.Errorf("root style = %v", root.Style)
	}
	if len(root.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(root.Children))
	}
	if root.Children[0].Tag != "style" || root.Children[1].Text != "hello" {
		t.Errorf("children = %+v", root.Children)
	}
}

func TestWrite_XML(t *testing.T) {
	out := render(t, loadSample(t), config.OutputFmtXml)

	doc := etree.NewDocument()
	if err := doc.ReadFromString(out); err != nil {
		t.Fatalf("output is not valid XML: %v\n%s", err, out)
	}
	el := doc.FindElement("/styled-tree/element")
	if el == nil || el.SelectAttrValue("tag", "") != "div" {
		t.Fatalf("root element missing:\n%s", out)
	}
	color := el.FindElement("property[@name='color']")
	if color == nil {
		t.Fatalf("color property missing:\n%s", out)
	}
	if color.SelectAttrValue("kind", "") != "color" || color.SelectAttrValue("value", "") != "#ff0000ff" {
		t.Errorf("color property = %v", color.Attr)
	}
	if margin := el.FindElement("property[@name='margin']"); margin == nil || margin.SelectAttrValue("kind", "") != "length" {
		t.Errorf("margin property missing or wrong kind:\n%s", out)
	}
	if text := el.FindElement("text"); text == nil || text.Text() != "hello" {
		t.Errorf("text child missing:\n%s", out)
	}
	if attr := el.FindElement("attr[@name='id']"); attr == nil || attr.SelectAttrValue("value", "") != "x" {
		t.Errorf("id attribute missing:\n%s", out)
	}
}

func TestWrite_XMLUnusualInput(t *testing.T) {
	p, err := page.Load("<p a\"b='<&>' c='x\x01y'>t\x02ext</p>", page.WithDefaultStylesheet(nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	out := render(t, p, config.OutputFmtXml)

	doc := etree.NewDocument()
	if err := doc.ReadFromString(out); err != nil {
		t.Fatalf("output is not valid XML: %v\n%s", err, out)
	}
	el := doc.FindElement("/styled-tree/element")
	if el == nil {
		t.Fatalf("root element missing:\n%s", out)
	}
	attrs := make(map[string]string)
	for _, a := range el.SelectElements("attr") {
		attrs[a.SelectAttrValue("name", "")] = a.SelectAttrValue("value", "")
	}
	if got := attrs[`a"b`]; got != "<&>" {
		t.Errorf("got %q, want %q (%v)", got, "<&>", attrs)
	}
	if got := attrs["c"]; got != "xy" {
		t.Errorf("got %q, want %q", got, "xy")
	}
	if text := el.FindElement("text"); text == nil || text.Text() != "text" {
		t.Errorf("text child missing or not cleaned:\n%s", out)
	}
}

type ionNode struct {
	Tag      string            `ion:"tag"`
	Text     string            `ion:"text"`
	Attrs    map[string]string `ion:"attrs"`
	Style    map[string]string `ion:"style"`
	Children []ionNode         `ion:"children"`
}

func TestWrite_Ion(t *testing.T) {
	out := render(t, loadSample(t), config.OutputFmtIon)

	if !strings.Contains(out, `color::"#ff0000ff"`) {
		t.Errorf("value kind annotation missing:\n%s", out)
	}

	var root ionNode
	if err := ion.Unmarshal([]byte(out), &root); err != nil {
		t.Fatalf("output is not valid Ion: %v\n%s", err, out)
	}
	if root.Tag != "div" || root.Attrs["id"] != "x" {
		t.Errorf("root = %+v", root)
	}
	if root.Style["display"] != "block" {
		t.Errorf("root style = %v", root.Style)
	}
	if len(root.Children) != 2 || root.Children[1].Text != "hello" {
		t.Errorf("children = %+v", root.Children)
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, loadSample(t), config.OutputFmt(42)); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestWrite_Deterministic(t *testing.T) {
	p := loadSample(t)
	for _, f := range []config.OutputFmt{config.OutputFmtText, config.OutputFmtYaml, config.OutputFmtXml, config.OutputFmtIon} {
		if render(t, p, f) != render(t, p, f) {
			t.Errorf("%s output is not deterministic", f)
		}
	}
}
