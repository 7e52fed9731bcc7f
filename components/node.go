package components

import (
	"github.com/a-h/templ"
	"github.com/pthm/govuk"
)

// Context keys. Every form group kind shares KeyFormGroup so that Label,
// Hint and ErrorMessage work under any of them.
const (
	KeyFormGroup          govuk.ContextKey = "form-group"
	KeyFieldset           govuk.ContextKey = "fieldset"
	KeyChoiceItem         govuk.ContextKey = "choice-item"
	KeyErrorSummary       govuk.ContextKey = "error-summary"
	KeyAccordion          govuk.ContextKey = "accordion"
	KeyAccordionItem      govuk.ContextKey = "accordion-item"
	KeyBreadcrumbs        govuk.ContextKey = "breadcrumbs"
	KeySummaryList        govuk.ContextKey = "summary-list"
	KeySummaryListRow     govuk.ContextKey = "summary-list-row"
	KeyTabs               govuk.ContextKey = "tabs"
	KeyDetails            govuk.ContextKey = "details"
	KeyPanel              govuk.ContextKey = "panel"
	KeyPhaseBanner        govuk.ContextKey = "phase-banner"
	KeyNotificationBanner govuk.ContextKey = "notification-banner"
	KeyForm               govuk.ContextKey = "form"
)

// Slot and item-kind names.
const (
	SlotLabel        = "label"
	SlotHint         = "hint"
	SlotErrorMessage = "error-message"
	SlotValue        = "value"
	SlotFieldset     = "fieldset"
	SlotLegend       = "legend"
	SlotConditional  = "conditional"
	SlotTitle        = "title"
	SlotDescription  = "description"
	SlotHeading      = "heading"
	SlotSummary      = "summary"
	SlotText         = "text"
	SlotBody         = "body"
	SlotKey          = "key"
	SlotTag          = "tag"
	SlotErrorSummary = "error-summary"

	ItemItem    = "item"
	ItemDivider = "divider"
	ItemRow     = "row"
	ItemAction  = "action"
	ItemError   = "error"
)

// nodeFunc adapts a props method to govuk.Node.
type nodeFunc struct {
	tag string
	fn  func(*govuk.Traversal, govuk.Children) (templ.Component, error)
}

func (n nodeFunc) TagName() string { return n.tag }

func (n nodeFunc) Process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	return n.fn(t, children)
}

func component(tag string, fn func(*govuk.Traversal, govuk.Children) (templ.Component, error)) templ.Component {
	return govuk.Component(nodeFunc{tag: tag, fn: fn})
}

// contribute fills a slot on parent and suppresses the child's own output.
func contribute(t *govuk.Traversal, parent *govuk.Context, slot string, c govuk.Contribution) (templ.Component, error) {
	if err := parent.Set(slot, c).Err(); err != nil {
		return nil, t.Fail(err)
	}
	return templ.NopComponent, nil
}

// appendItem adds an item to parent and suppresses the child's own output.
func appendItem(t *govuk.Traversal, parent *govuk.Context, kind string, c govuk.Contribution) (templ.Component, error) {
	if err := parent.Add(kind, c).Err(); err != nil {
		return nil, t.Fail(err)
	}
	return templ.NopComponent, nil
}

// requireAttr fails with MissingRequiredAttributeError when value is empty.
func requireAttr(t *govuk.Traversal, element, attribute, value string) error {
	if value == "" {
		return t.Fail(&govuk.MissingRequiredAttributeError{Element: element, Attribute: attribute})
	}
	return nil
}

// lookupFirst returns the first context found under keys, in order.
func lookupFirst(t *govuk.Traversal, element string, parents []string, keys ...govuk.ContextKey) (*govuk.Context, error) {
	for _, key := range keys {
		if ctx, ok := t.Registry().Lookup(key); ok {
			return ctx, nil
		}
	}
	return nil, t.Fail(&govuk.MissingParentContextError{Element: element, Parents: parents})
}

// schemaSlots declares the named form group slots of tag. The shared
// children keep their own tags; a fieldset is named after its group.
func schemaSlots(tag string, names ...string) []govuk.Slot {
	slots := make([]govuk.Slot, len(names))
	for i, name := range names {
		slots[i] = govuk.Slot{Name: name, Tag: slotTag(tag, name)}
	}
	return slots
}

func slotTag(tag, name string) string {
	switch name {
	case SlotLabel:
		return TagLabel
	case SlotHint:
		return TagHint
	case SlotErrorMessage:
		return TagErrorMessage
	case SlotValue:
		return TagValue
	}
	return tag + "-" + name
}

func joinNonEmpty(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += p
	}
	return out
}
