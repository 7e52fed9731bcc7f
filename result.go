package govuk

// Result[T] is returned from every Context mutator. It carries either the
// value that was stored (with any derived fields filled in, such as an item
// identifier) or the composition error that rejected it.
//
// Mutators never panic and never abort the render themselves; the node that
// called them decides what to do:
//
//	res := parent.Set(SlotHint, c)
//	if err := res.Err(); err != nil {
//	    return nil, t.Fail(err)
//	}
//
// Unwrap is the short form when the caller just propagates:
//
//	item, err := parent.Add(ItemKindItem, c).Unwrap()
type Result[T any] struct {
	value T
	err   error
}

// OK creates a successful result.
func OK[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err creates a failed result.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsOK reports whether the mutation was accepted.
func (r Result[T]) IsOK() bool {
	return r.err == nil
}

// Value returns the stored value. It is the zero value when the result failed.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the rejection, or nil.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap returns the value and error as a Go pair.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}
