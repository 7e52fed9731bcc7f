// Package govuk provides the composition protocol behind server-rendered
// GOV.UK Design System components written with Go and Templ.
//
// A component tree is processed once, depth-first, in document order. Some
// components are composites: they own a Context that their descendants fill
// in. Others are children: they look up the nearest Context of the right
// kind and contribute exactly one piece to it, such as a label, a hint or a
// list item. Once its children have run, the composite renders the whole
// fragment from what was contributed.
//
// # Traversal and Registry
//
// A Traversal is one rendering pass. It owns the Registry that makes
// composite contexts discoverable, along with the render Options, the
// ModelState of the submitted form and a zap logger. It is passed explicitly
// to every Node:
//
//	type Node interface {
//	    TagName() string
//	    Process(t *Traversal, children Children) (templ.Component, error)
//	}
//
// Only the templ bridge (Component) reads the traversal from a
// context.Context. Middleware installs one per request with WithTraversal;
// a tree rendered without one starts its own.
//
// Boundaries that accept arbitrary content, such as a conditional reveal or
// an accordion section body, open a nested Scope that masks the keys allowed
// to appear again inside them.
//
// # Contexts and Schemas
//
// Every composite uses the same Context type, configured by a Schema: the
// composite's tag, its single slots with their ordering, and the item kinds
// it accepts. Mutators return a Result instead of panicking:
//
//	res := parent.Set(SlotHint, govuk.Contribution{Content: content})
//	if err := res.Err(); err != nil {
//	    return nil, t.Fail(err)
//	}
//
// Setting a slot twice fails with DuplicateElementError. Setting a slot after
// one that must follow it fails with OrderingError. Identified items derive
// their ids from the composite's prefix, and fail with MissingIdentifierError
// when there is none to derive from.
//
// # Errors
//
// Composition errors are authoring bugs. They abort the render and surface
// from templ's Render; nothing is dropped. Each wraps a sentinel so it can be
// matched with errors.Is, and ErrorKind classifies it for logs and metrics.
//
// # Model State
//
// ModelState holds the validation errors and attempted values of a
// submitted form. Form groups render error messages and redisplay values
// from it by field name. StateCodec carries it across a post/redirect/get
// cycle in a signed or sealed cookie.
package govuk
