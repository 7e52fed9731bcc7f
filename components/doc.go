// Package components implements the GOV.UK Design System components on top
// of the govuk composition protocol.
//
// Composite components (Input, Radios, Accordion, SummaryList, ...) create a
// context, let their children contribute to it, and then render the whole
// fragment. Child components (Label, Hint, RadiosItem, ...) render nothing
// themselves; they contribute to the nearest parent of the right kind and
// fail with a descriptive error when used in the wrong place or order:
//
//	@components.Textarea(components.TextareaProps{Name: "more-detail"}) {
//	    @components.Label(components.LabelProps{}) { Can you provide more detail? }
//	    @components.Hint(components.HintProps{}) { Do not include personal information }
//	}
//
// A Hint after a Value fails with
// "<govuk-hint> must be specified before <govuk-value>."
//
// Every constructor takes a Props struct whose fields carry an `attr` tag.
// The tags name the attributes used by declarative documents (see
// lib/document); `attr:",remain"` receives any attribute not otherwise mapped.
package components
