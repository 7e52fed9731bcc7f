package govuk

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for composition failures. Every typed error below wraps
// exactly one of these so callers can match with errors.Is.
var (
	ErrDuplicateElement         = errors.New("govuk: duplicate element")
	ErrOrdering                 = errors.New("govuk: element out of order")
	ErrMissingParentContext     = errors.New("govuk: missing parent context")
	ErrMissingRequiredAttribute = errors.New("govuk: missing required attribute")
	ErrMissingIdentifier        = errors.New("govuk: missing identifier")
	ErrMissingContent           = errors.New("govuk: missing content")
	ErrContextAlreadyRegistered = errors.New("govuk: context already registered")
	ErrContextClosed            = errors.New("govuk: context closed")
)

// DuplicateElementError is returned when a single-slot child is specified
// more than once within the same parent.
type DuplicateElementError struct {
	Element string
	Parent  string
}

func (e *DuplicateElementError) Error() string {
	return fmt.Sprintf("Only one <%s> element is permitted within each <%s>.", e.Element, e.Parent)
}

func (e *DuplicateElementError) Unwrap() error { return ErrDuplicateElement }

// OrderingError is returned when Element is specified after Before, which
// has already frozen the parent's layout.
type OrderingError struct {
	Element string
	Before  string
}

func (e *OrderingError) Error() string {
	return fmt.Sprintf("<%s> must be specified before <%s>.", e.Element, e.Before)
}

func (e *OrderingError) Unwrap() error { return ErrOrdering }

// MissingParentContextError is returned when a child element is processed
// without one of its permitted parents.
type MissingParentContextError struct {
	Element string
	Parents []string
}

func (e *MissingParentContextError) Error() string {
	if len(e.Parents) == 0 {
		return fmt.Sprintf("<%s> is not permitted here.", e.Element)
	}
	parents := make([]string, len(e.Parents))
	for i, p := range e.Parents {
		parents[i] = "<" + p + ">"
	}
	return fmt.Sprintf("<%s> must be inside %s.", e.Element, strings.Join(parents, " or "))
}

func (e *MissingParentContextError) Unwrap() error { return ErrMissingParentContext }

// MissingRequiredAttributeError is returned when a component is missing an
// attribute it cannot render without.
type MissingRequiredAttributeError struct {
	Element   string
	Attribute string
}

func (e *MissingRequiredAttributeError) Error() string {
	return fmt.Sprintf("The '%s' attribute must be specified on <%s>.", e.Attribute, e.Element)
}

func (e *MissingRequiredAttributeError) Unwrap() error { return ErrMissingRequiredAttribute }

// MissingIdentifierError is returned when a repeatable item has no id and
// its parent has no shared prefix to derive one from.
type MissingIdentifierError struct {
	Element string
	Parent  string
	Index   int
}

func (e *MissingIdentifierError) Error() string {
	return fmt.Sprintf("Item %d: <%s> must have an 'id' attribute when <%s> has no 'id-prefix'.", e.Index, e.Element, e.Parent)
}

func (e *MissingIdentifierError) Unwrap() error { return ErrMissingIdentifier }

// MissingContentError is returned when a composite finishes processing with a
// required part still unset.
type MissingContentError struct {
	Element string
	Part    string
}

func (e *MissingContentError) Error() string {
	if e.Part == "" {
		return fmt.Sprintf("<%s> must have content.", e.Element)
	}
	return fmt.Sprintf("<%s> must have a <%s>.", e.Element, e.Part)
}

func (e *MissingContentError) Unwrap() error { return ErrMissingContent }

// ContextAlreadyRegisteredError is returned when a composite is nested
// directly inside another composite of the same kind.
type ContextAlreadyRegisteredError struct {
	Key     ContextKey
	Element string
}

func (e *ContextAlreadyRegisteredError) Error() string {
	return fmt.Sprintf("<%s> cannot be nested inside another %q context.", e.Element, string(e.Key))
}

func (e *ContextAlreadyRegisteredError) Unwrap() error { return ErrContextAlreadyRegistered }

// IsDuplicateElement checks if err is a duplicate element error.
func IsDuplicateElement(err error) bool {
	return errors.Is(err, ErrDuplicateElement)
}

// IsOrdering checks if err is an ordering error.
func IsOrdering(err error) bool {
	return errors.Is(err, ErrOrdering)
}

// IsMissingParentContext checks if err reports a child used outside its parent.
func IsMissingParentContext(err error) bool {
	return errors.Is(err, ErrMissingParentContext)
}

// IsMissingIdentifier checks if err is a missing identifier error.
func IsMissingIdentifier(err error) bool {
	return errors.Is(err, ErrMissingIdentifier)
}

// IsCompositionError reports whether err is any markup composition failure.
// These indicate an authoring bug rather than a runtime fault.
func IsCompositionError(err error) bool {
	return ErrorKind(err) != ""
}

// ErrorKind returns a stable, metric-friendly name for the composition error
// wrapped by err, or "" when err is not a composition error.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDuplicateElement):
		return "duplicate_element"
	case errors.Is(err, ErrOrdering):
		return "ordering"
	case errors.Is(err, ErrMissingParentContext):
		return "missing_parent_context"
	case errors.Is(err, ErrMissingRequiredAttribute):
		return "missing_required_attribute"
	case errors.Is(err, ErrMissingIdentifier):
		return "missing_identifier"
	case errors.Is(err, ErrMissingContent):
		return "missing_content"
	case errors.Is(err, ErrContextAlreadyRegistered):
		return "context_already_registered"
	case errors.Is(err, ErrContextClosed):
		return "context_closed"
	default:
		return ""
	}
}
