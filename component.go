package govuk

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
)

type traversalKey struct{}

// WithTraversal returns a context carrying t. Components rendered with this
// context join t instead of starting their own pass. Middleware installs one
// per request so that options and model state reach every component.
func WithTraversal(ctx context.Context, t *Traversal) context.Context {
	return context.WithValue(ctx, traversalKey{}, t)
}

// TraversalFrom returns the traversal carried by ctx, or nil.
func TraversalFrom(ctx context.Context) *Traversal {
	t, _ := ctx.Value(traversalKey{}).(*Traversal)
	return t
}

// Component adapts a Node to templ.
//
// templ is the host pipeline: it calls Render in document order and hands a
// component its children through the context. The adapter is the only place
// that reads the traversal from context.Context; from here on it is passed
// explicitly to Process and to Children.
//
//	templ Page() {
//	    @govuk.Component(myNode) {
//	        <p>child content</p>
//	    }
//	}
//
// A component rendered without a traversal in ctx starts a new one, so a
// tree rendered from a bare context.Background() still validates correctly.
func Component(n Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		t := TraversalFrom(ctx)
		if t == nil {
			t = NewTraversal()
			ctx = WithTraversal(ctx, t)
		}

		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		out, err := n.Process(t, childrenOf(ctx, children))
		if err != nil {
			return err
		}
		if out == nil {
			return nil
		}
		return out.Render(ctx, w)
	})
}

// childrenOf renders templ children into a buffer under the traversal the
// caller passes, which may be a nested scope of the one in ctx.
func childrenOf(ctx context.Context, children templ.Component) Children {
	return func(t *Traversal) (Content, error) {
		if children == nil {
			return Content{}, nil
		}
		var buf bytes.Buffer
		if err := children.Render(WithTraversal(ctx, t), &buf); err != nil {
			return Content{}, err
		}
		return TrustedHTML(buf.String()), nil
	}
}

// With renders parent with children as its templ children. It is the Go
// equivalent of a templ call with a child block:
//
//	govuk.With(components.Input(components.InputProps{Name: "email"}),
//	    govuk.With(components.Label(components.LabelProps{}), govuk.Text("Email")),
//	)
func With(parent templ.Component, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return parent.Render(templ.WithChildren(ctx, Join(children...)), w)
	})
}
