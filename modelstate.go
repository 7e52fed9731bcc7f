package govuk

import (
	"sort"
	"strings"
)

// ModelState is the validation outcome of a submitted form: error messages
// and attempted values keyed by field name. Form group components read it to
// render error messages and redisplay values without explicit children.
//
// Read methods treat a nil *ModelState as an empty, valid state.
type ModelState struct {
	Errors map[string][]string `msgpack:"e,omitempty"`
	Values map[string]string   `msgpack:"v,omitempty"`
}

// NewModelState creates an empty model state.
func NewModelState() *ModelState {
	return &ModelState{
		Errors: make(map[string][]string),
		Values: make(map[string]string),
	}
}

// AddError records a message against field. Blank messages are ignored.
func (m *ModelState) AddError(field, message string) *ModelState {
	message = strings.TrimSpace(message)
	if message == "" {
		return m
	}
	if m.Errors == nil {
		m.Errors = make(map[string][]string)
	}
	m.Errors[field] = append(m.Errors[field], message)
	return m
}

// SetValue records the attempted value for field.
func (m *ModelState) SetValue(field, value string) *ModelState {
	if m.Values == nil {
		m.Values = make(map[string]string)
	}
	m.Values[field] = value
	return m
}

// ErrorsFor returns the messages recorded against field.
func (m *ModelState) ErrorsFor(field string) []string {
	if m == nil || field == "" {
		return nil
	}
	return m.Errors[field]
}

// FirstError returns the first message recorded against field.
func (m *ModelState) FirstError(field string) (string, bool) {
	errs := m.ErrorsFor(field)
	if len(errs) == 0 {
		return "", false
	}
	return errs[0], true
}

// Value returns the attempted value for field.
func (m *ModelState) Value(field string) (string, bool) {
	if m == nil || field == "" {
		return "", false
	}
	v, ok := m.Values[field]
	return v, ok
}

// IsValid reports whether no errors have been recorded.
func (m *ModelState) IsValid() bool {
	if m == nil {
		return true
	}
	for _, errs := range m.Errors {
		if len(errs) > 0 {
			return false
		}
	}
	return true
}

// Fields returns the names of fields with errors, sorted.
func (m *ModelState) Fields() []string {
	if m == nil {
		return nil
	}
	fields := make([]string, 0, len(m.Errors))
	for f, errs := range m.Errors {
		if len(errs) > 0 {
			fields = append(fields, f)
		}
	}
	sort.Strings(fields)
	return fields
}
