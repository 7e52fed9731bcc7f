package govuk

import (
	"fmt"
	"strconv"
)

// Slot declares a single-slot child of a composite: a part that may be
// specified at most once, such as a label or a hint.
type Slot struct {
	// Name is the slot's key within the schema ("hint").
	Name string
	// Tag is the child element's tag name, used in error messages.
	Tag string
	// Before lists slot or item-kind names that must not have been set yet
	// when this slot is set. Once one of them is set the layout is frozen
	// for this slot.
	Before []string
}

// ItemKind declares a repeatable child. All kinds of a schema share one
// ordered sequence.
type ItemKind struct {
	Name string
	Tag  string
	// Identified kinds take part in identifier derivation.
	Identified bool
	// RequireID rejects id-less items outright when no prefix is configured.
	RequireID bool
}

// Schema is the rule table for one composite: its tag, its slots and their
// ordering, and the item kinds it accepts.
type Schema struct {
	Tag   string
	Slots []Slot
	Items []ItemKind
}

// Sequence returns slots with Before filled in so that each slot must be
// specified before every slot after it, and before every name in then
// (typically item kinds). Existing Before entries are kept.
//
//	govuk.Sequence([]govuk.Slot{label, hint, errorMessage, value})
func Sequence(slots []Slot, then ...string) []Slot {
	out := make([]Slot, len(slots))
	for i, s := range slots {
		before := append([]string(nil), s.Before...)
		for _, later := range slots[i+1:] {
			before = append(before, later.Name)
		}
		before = append(before, then...)
		s.Before = before
		out[i] = s
	}
	return out
}

func (s *Schema) slot(name string) (Slot, bool) {
	for _, slot := range s.Slots {
		if slot.Name == name {
			return slot, true
		}
	}
	return Slot{}, false
}

func (s *Schema) item(name string) (ItemKind, bool) {
	for _, kind := range s.Items {
		if kind.Name == name {
			return kind, true
		}
	}
	return ItemKind{}, false
}

// TagOf returns the element tag declared for a slot or item kind name, or a
// tag derived from the schema tag when the name is unknown.
func (s *Schema) TagOf(name string) string {
	if slot, ok := s.slot(name); ok && slot.Tag != "" {
		return slot.Tag
	}
	if kind, ok := s.item(name); ok && kind.Tag != "" {
		return kind.Tag
	}
	return s.Tag + "-" + name
}

// Contribution is the data a child element registers with its parent. It is
// created once, by the child, and never modified after registration.
type Contribution struct {
	// Kind is the slot or item-kind name it was registered under.
	Kind string
	// Tag is the contributing element's tag name.
	Tag string
	// ID is the explicit or derived identifier, if any.
	ID      string
	Content Content
	Attrs   Attributes
	// Value carries component-specific metadata (LabelData, LinkData, ...).
	Value any
}

// ValueAs returns c.Value as T, or the zero T.
func ValueAs[T any](c Contribution) T {
	v, _ := c.Value.(T)
	return v
}

// Context accumulates the contributions of one composite instance while its
// children are processed. It is created on entry to the composite, mutated by
// children in document order, closed, and then read once to render.
type Context struct {
	schema   *Schema
	idPrefix string
	slots    map[string]Contribution
	items    []Contribution
	implicit bool
	closed   bool
}

// NewContext creates a context for schema. idPrefix is the shared prefix
// from which identified items without an explicit id derive one; it may be
// empty.
func NewContext(schema *Schema, idPrefix string) *Context {
	return &Context{
		schema:   schema,
		idPrefix: idPrefix,
		slots:    make(map[string]Contribution),
	}
}

// Tag returns the composite's tag name.
func (c *Context) Tag() string { return c.schema.Tag }

// Schema returns the rule table.
func (c *Context) Schema() *Schema { return c.schema }

// IDPrefix returns the shared item prefix.
func (c *Context) IDPrefix() string { return c.idPrefix }

// Set fills a single slot. A slot can move from unset to set exactly once,
// and only while none of the names in its Before list has been set.
//
// Errors name elements by the tag they were written as: v.Tag when the
// child supplied one, else the tag the schema declares for the slot.
func (c *Context) Set(name string, v Contribution) Result[Contribution] {
	element := c.tagFor(v, name)
	slot, ok := c.schema.slot(name)
	if !ok {
		return Err[Contribution](&MissingParentContextError{Element: element})
	}
	if c.closed {
		return Err[Contribution](fmt.Errorf("%w: <%s> after <%s> finished", ErrContextClosed, element, c.schema.Tag))
	}
	if _, dup := c.slots[name]; dup {
		return Err[Contribution](&DuplicateElementError{Element: element, Parent: c.schema.Tag})
	}
	for _, later := range slot.Before {
		if tag, ok := c.storedTag(later); ok {
			return Err[Contribution](&OrderingError{Element: element, Before: tag})
		}
	}

	v.Kind = name
	v.Tag = element
	c.slots[name] = v
	return OK(v)
}

// Add appends an item of the given kind. Identified items without an id get
// one derived from the shared prefix: the first is the prefix itself, later
// ones are prefix-2, prefix-3 and so on. Without a prefix a single id-less
// item is accepted (it takes the composite's own identifier when rendered);
// any further one fails with MissingIdentifierError.
func (c *Context) Add(kind string, v Contribution) Result[Contribution] {
	element := c.tagFor(v, kind)
	k, ok := c.schema.item(kind)
	if !ok {
		return Err[Contribution](&MissingParentContextError{Element: element})
	}
	if c.closed {
		return Err[Contribution](fmt.Errorf("%w: <%s> after <%s> finished", ErrContextClosed, element, c.schema.Tag))
	}

	if k.Identified && v.ID == "" {
		switch {
		case c.idPrefix != "":
			v.ID = DeriveID(c.idPrefix, c.countIdentified())
		case k.RequireID || c.implicit:
			return Err[Contribution](&MissingIdentifierError{Element: element, Parent: c.schema.Tag, Index: len(c.items) + 1})
		default:
			c.implicit = true
		}
	}

	v.Kind = kind
	v.Tag = element
	c.items = append(c.items, v)
	return OK(v)
}

// DeriveID returns the identifier for the index'th item under prefix.
func DeriveID(prefix string, index int) string {
	if index == 0 {
		return prefix
	}
	return prefix + "-" + strconv.Itoa(index+1)
}

// Close moves the context into its terminal state. Later mutations fail
// with ErrContextClosed.
func (c *Context) Close() { c.closed = true }

// Closed reports whether Close has been called.
func (c *Context) Closed() bool { return c.closed }

// Get returns the contribution in a slot.
func (c *Context) Get(name string) (Contribution, bool) {
	v, ok := c.slots[name]
	return v, ok
}

// Has reports whether a slot is set.
func (c *Context) Has(name string) bool {
	_, ok := c.slots[name]
	return ok
}

// Items returns a copy of all items in insertion order.
func (c *Context) Items() []Contribution {
	out := make([]Contribution, len(c.items))
	copy(out, c.items)
	return out
}

// ItemsOf returns the items of one kind in insertion order.
func (c *Context) ItemsOf(kind string) []Contribution {
	var out []Contribution
	for _, item := range c.items {
		if item.Kind == kind {
			out = append(out, item)
		}
	}
	return out
}

// Len returns the number of items.
func (c *Context) Len() int { return len(c.items) }

// storedTag returns the tag of the contribution already stored under name,
// if there is one.
func (c *Context) storedTag(name string) (string, bool) {
	if v, ok := c.slots[name]; ok {
		return v.Tag, true
	}
	for _, item := range c.items {
		if item.Kind == name {
			return item.Tag, true
		}
	}
	return "", false
}

func (c *Context) countIdentified() int {
	n := 0
	for _, item := range c.items {
		if k, ok := c.schema.item(item.Kind); ok && k.Identified {
			n++
		}
	}
	return n
}

func (c *Context) tagFor(v Contribution, name string) string {
	if v.Tag != "" {
		return v.Tag
	}
	return c.schema.TagOf(name)
}
