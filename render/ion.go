package render

import (
	"fmt"
	"io"

	"github.com/amazon-ion/ion-go/ion"

	"sonata/dom"
	"sonata/page"
	"sonata/style"
)

type ionWriter struct {
	w ion.Writer
}

func writeIon(w io.Writer, p *page.Page) error {
	iw := &ionWriter{w: ion.NewTextWriter(w)}
	if err := iw.node(p.Styled); err != nil {
		return fmt.Errorf("unable to encode styled tree: %w", err)
	}
	return iw.w.Finish()
}

func (iw *ionWriter) field(name string) error {
	return iw.w.FieldName(ion.NewSymbolTokenFromString(name))
}

func (iw *ionWriter) stringField(name, value string) error {
	if err := iw.field(name); err != nil {
		return err
	}
	return iw.w.WriteString(value)
}

func (iw *ionWriter) node(sn *style.StyledNode) error {
	if err := iw.w.BeginStruct(); err != nil {
		return err
	}
	switch n := sn.Node.(type) {
	case *dom.Text:
		if err := iw.stringField("text", n.Data); err != nil {
			return err
		}
	case *dom.Element:
		if err := iw.element(n, sn); err != nil {
			return err
		}
	}
	return iw.w.EndStruct()
}

func (iw *ionWriter) element(el *dom.Element, sn *style.StyledNode) error {
	if err := iw.stringField("tag", el.Tag); err != nil {
		return err
	}

	if len(el.Attrs) > 0 {
		if err := iw.field("attrs"); err != nil {
			return err
		}
		if err := iw.w.BeginStruct(); err != nil {
			return err
		}
		for _, kv := range sortedAttrs(el) {
			if err := iw.stringField(kv[0], kv[1]); err != nil {
				return err
			}
		}
		if err := iw.w.EndStruct(); err != nil {
			return err
		}
	}

	if len(sn.Values) > 0 {
		if err := iw.field("style"); err != nil {
			return err
		}
		if err := iw.w.BeginStruct(); err != nil {
			return err
		}
		for _, name := range sn.PropertyNames() {
			v := sn.Values[name]
			if err := iw.field(name); err != nil {
				return err
			}
			// value kind goes into annotation
			if err := iw.w.Annotations(ion.NewSymbolTokenFromString(valueKind(v))); err != nil {
				return err
			}
			if err := iw.w.WriteString(v.String()); err != nil {
				return err
			}
		}
		if err := iw.w.EndStruct(); err != nil {
			return err
		}
	}

	if len(sn.Children) > 0 {
		if err := iw.field("children"); err != nil {
			return err
		}
		if err := iw.w.BeginList(); err != nil {
			return err
		}
		for _, c := range sn.Children {
			if err := iw.node(c); err != nil {
				return err
			}
		}
		if err := iw.w.EndList(); err != nil {
			return err
		}
	}
	return nil
}
