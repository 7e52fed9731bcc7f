package govuk

import "github.com/a-h/templ"

// Node is implemented by every component. Process is called once, in
// document order, with the traversal passed explicitly.
//
// Child elements look up their parent's context, register a Contribution and
// return templ.NopComponent. Composite roots create a Context, call
// Traversal.Collect so their children can contribute, and return the fully
// rendered fragment. Leaf components render directly.
//
//	func (n hintNode) Process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
//	    parent, err := t.Require(KeyFormGroup, "govuk-hint", "govuk-input")
//	    if err != nil {
//	        return nil, err
//	    }
//	    content, err := children(t)
//	    ...
//	    if err := parent.Set(SlotHint, c).Err(); err != nil {
//	        return nil, t.Fail(err)
//	    }
//	    return templ.NopComponent, nil
//	}
type Node interface {
	TagName() string
	Process(t *Traversal, children Children) (templ.Component, error)
}

// Children renders a node's child content within t. It is the single point
// at which a node yields to its descendants; call it at most once.
type Children func(t *Traversal) (Content, error)

// NoChildren is a Children with nothing to render.
func NoChildren(*Traversal) (Content, error) {
	return Content{}, nil
}

// StaticChildren returns a Children that yields fixed content.
func StaticChildren(c Content) Children {
	return func(*Traversal) (Content, error) {
		return c, nil
	}
}
