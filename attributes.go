package govuk

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// Attribute is a single HTML attribute. Boolean attributes render as a bare
// name (checked, disabled, open).
type Attribute struct {
	Name    string
	Value   string
	Boolean bool
}

// Attributes is an ordered, immutable attribute bag. Every mutator returns a
// copy, so an Attributes value held by a Contribution never changes after the
// contribution has been registered.
//
// Names that could not be written as a single attribute (empty, or holding
// whitespace, quotes, '=', '/', '<' or '>') are dropped by every mutator.
type Attributes struct {
	list []Attribute
}

// Attrs builds an attribute bag from name/value pairs. A trailing odd name is
// ignored.
//
//	govuk.Attrs("class", "govuk-hint", "id", id)
func Attrs(pairs ...string) Attributes {
	var a Attributes
	for i := 0; i+1 < len(pairs); i += 2 {
		a = a.Set(pairs[i], pairs[i+1])
	}
	return a
}

// FromTempl converts templ.Attributes (as written in .templ files) into an
// ordered bag. Keys are sorted so output is deterministic. Boolean true
// renders as a bare attribute and false is dropped.
func FromTempl(attrs templ.Attributes) Attributes {
	if len(attrs) == 0 {
		return Attributes{}
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var a Attributes
	for _, k := range keys {
		switch v := attrs[k].(type) {
		case bool:
			a = a.SetBool(k, v)
		case string:
			a = a.Set(k, v)
		case nil:
		default:
			a = a.Set(k, fmt.Sprint(v))
		}
	}
	return a
}

func (a Attributes) index(name string) int {
	for i, attr := range a.list {
		if attr.Name == name {
			return i
		}
	}
	return -1
}

func (a Attributes) with(attr Attribute) Attributes {
	if !ValidAttributeName(attr.Name) {
		return a
	}
	out := make([]Attribute, len(a.list), len(a.list)+1)
	copy(out, a.list)
	if i := a.index(attr.Name); i >= 0 {
		out[i] = attr
	} else {
		out = append(out, attr)
	}
	return Attributes{list: out}
}

// Set returns a copy with name set to value, keeping its original position
// if it was already present.
func (a Attributes) Set(name, value string) Attributes {
	return a.with(Attribute{Name: name, Value: value})
}

// SetNonEmpty is Set, skipped when value is empty.
func (a Attributes) SetNonEmpty(name, value string) Attributes {
	if value == "" {
		return a
	}
	return a.Set(name, value)
}

// SetBool adds a bare boolean attribute when on, and removes it otherwise.
func (a Attributes) SetBool(name string, on bool) Attributes {
	if !on {
		return a.Remove(name)
	}
	return a.with(Attribute{Name: name, Boolean: true})
}

// Remove returns a copy without name.
func (a Attributes) Remove(name string) Attributes {
	i := a.index(name)
	if i < 0 {
		return a
	}
	out := make([]Attribute, 0, len(a.list)-1)
	out = append(out, a.list[:i]...)
	out = append(out, a.list[i+1:]...)
	return Attributes{list: out}
}

// Get returns the value of name.
func (a Attributes) Get(name string) (string, bool) {
	if i := a.index(name); i >= 0 {
		return a.list[i].Value, true
	}
	return "", false
}

// Has reports whether name is present.
func (a Attributes) Has(name string) bool {
	return a.index(name) >= 0
}

// Len returns the number of attributes.
func (a Attributes) Len() int {
	return len(a.list)
}

// All returns a copy of the attributes in order.
func (a Attributes) All() []Attribute {
	out := make([]Attribute, len(a.list))
	copy(out, a.list)
	return out
}

// AddClass appends classes to the class attribute, skipping empty and
// already-present names.
func (a Attributes) AddClass(classes ...string) Attributes {
	existing, _ := a.Get("class")
	fields := strings.Fields(existing)
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		seen[f] = struct{}{}
	}
	changed := false
	for _, c := range classes {
		for _, f := range strings.Fields(c) {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			fields = append(fields, f)
			changed = true
		}
	}
	if !changed {
		return a
	}
	return a.Set("class", strings.Join(fields, " "))
}

// Merge overlays other onto a. Classes are combined; every other attribute
// in other replaces the one in a.
func (a Attributes) Merge(other Attributes) Attributes {
	out := a
	for _, attr := range other.list {
		if attr.Name == "class" {
			out = out.AddClass(attr.Value)
			continue
		}
		out = out.with(attr)
	}
	return out
}

// ValidAttributeName reports whether name is a well-formed HTML attribute
// name.
func ValidAttributeName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r <= ' ' || (r >= 0x7f && r <= 0x9f) || strings.ContainsRune(`"'<>/=`, r) {
			return false
		}
	}
	return true
}

// Render writes the attributes with a leading space before each one.
func (a Attributes) Render(w io.Writer) error {
	for _, attr := range a.list {
		var err error
		if attr.Boolean {
			_, err = io.WriteString(w, " "+attr.Name)
		} else {
			_, err = io.WriteString(w, " "+attr.Name+`="`+html.EscapeString(attr.Value)+`"`)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// String renders the attributes as they would appear inside a start tag.
func (a Attributes) String() string {
	var sb strings.Builder
	_ = a.Render(&sb)
	return sb.String()
}
