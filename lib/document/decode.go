package document

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"github.com/go-viper/mapstructure/v2"
)

// ErrUnknownAttribute is returned for an attribute the element does not
// accept.
var ErrUnknownAttribute = errors.New("unknown attribute")

// AttributeError reports an attribute that could not be decoded.
type AttributeError struct {
	Tag       string
	Attribute string
	Err       error
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("<%s> attribute '%s': %v", e.Tag, e.Attribute, e.Err)
}

func (e *AttributeError) Unwrap() error { return e.Err }

// bare marks an attribute written without a value (`disabled:`).
type bare struct{}

// Decode copies attrs into the struct pointed to by dst. Fields are matched
// exactly by their `attr` tag and untagged fields are left alone. A map field
// tagged `attr:",remain"` receives the attributes no other field claims;
// without one, unclaimed attributes are an error.
//
// Strings convert to booleans and integers. A bare attribute, or an empty
// string, sets a boolean field to true.
func Decode(attrs map[string]any, dst any) error {
	in := make(map[string]any, len(attrs))
	for name, v := range attrs {
		if v == nil {
			v = bare{}
		}
		in[name] = v
	}

	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:              "attr",
		WeaklyTypedInput:     true,
		IgnoreUntaggedFields: true,
		MatchName:            func(key, field string) bool { return key == field },
		DecodeHook:           mapstructure.DecodeHookFuncType(attributeHook),
		Metadata:             &md,
		Result:               dst,
	})
	if err != nil {
		return fmt.Errorf("decode attributes: %w", err)
	}

	if err := dec.Decode(in); err != nil {
		var de *mapstructure.DecodeError
		if errors.As(err, &de) {
			return &AttributeError{Attribute: de.Name(), Err: de.Unwrap()}
		}
		return fmt.Errorf("decode attributes: %w", err)
	}
	if len(md.Unused) > 0 {
		slices.Sort(md.Unused)
		return &AttributeError{Attribute: md.Unused[0], Err: ErrUnknownAttribute}
	}
	return nil
}

// attributeHook adapts YAML scalars to attribute semantics before
// mapstructure's weak conversion runs.
func attributeHook(_, to reflect.Type, data any) (any, error) {
	if to.Kind() == reflect.Pointer {
		to = to.Elem()
	}
	switch v := data.(type) {
	case bare:
		switch to.Kind() {
		case reflect.Bool, reflect.Interface:
			return true, nil
		case reflect.String:
			return "", nil
		}
		return nil, errors.New("needs a value")
	case string:
		if v == "" && to.Kind() == reflect.Bool {
			return true, nil
		}
	case bool:
		if to.Kind() == reflect.String {
			return strconv.FormatBool(v), nil
		}
	}
	return data, nil
}
