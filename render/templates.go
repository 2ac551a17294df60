package render

import (
	"bytes"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"sonata/config"
	"sonata/page"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context string
	Source  string
	Name    string
	Host    string
	Title   string
	Format  string
	Rules   int
	Nodes   int
}

// sourceName splits source location into host (empty for local files) and
// base name without extension.
func sourceName(src string) (host, name string) {
	if u, err := url.Parse(src); err == nil && len(u.Scheme) > 1 && u.Scheme != "file" {
		host = u.Hostname()
		name = strings.TrimSuffix(path.Base(u.Path), path.Ext(u.Path))
		if name == "" || name == "/" || name == "." {
			name = host
		}
		return host, name
	}
	src = strings.TrimPrefix(src, "file://")
	return "", strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
}

func expandTemplate(p *page.Page, name config.TemplateFieldName, field, src string, format config.OutputFmt) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	host, base := sourceName(src)
	values := Values{
		Context: string(name),
		Source:  src,
		Name:    base,
		Host:    host,
		Title:   p.Title(),
		Format:  format.String(),
		Rules:   len(p.Stylesheet.Rules),
		Nodes:   p.Nodes(),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
