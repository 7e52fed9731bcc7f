package govuk

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
)

// Element is a markup fragment: a tag name, an attribute bag, and either
// child content or nothing at all for void elements. It is what root
// components hand back to the pipeline once their context is populated.
type Element struct {
	Tag      string
	Attrs    Attributes
	Children []templ.Component
	Void     bool
}

// El builds a paired element.
func El(tag string, attrs Attributes, children ...templ.Component) Element {
	return Element{Tag: tag, Attrs: attrs, Children: children}
}

// VoidEl builds a self-closing element such as <input>.
func VoidEl(tag string, attrs Attributes) Element {
	return Element{Tag: tag, Attrs: attrs, Void: true}
}

// Render implements templ.Component.
func (e Element) Render(ctx context.Context, w io.Writer) error {
	if _, err := io.WriteString(w, "<"+e.Tag); err != nil {
		return err
	}
	if err := e.Attrs.Render(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if e.Void {
		return nil
	}
	for _, child := range e.Children {
		if child == nil {
			continue
		}
		if err := child.Render(ctx, w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+e.Tag+">")
	return err
}

// Join renders components one after another, skipping nils.
func Join(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range components {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// If returns c when cond holds and an empty component otherwise.
func If(cond bool, c templ.Component) templ.Component {
	if !cond || c == nil {
		return templ.NopComponent
	}
	return c
}

// RenderString renders c into a string. A traversal is created by the first
// component that needs one unless ctx already carries it.
func RenderString(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
