package govuk

import "sort"

// ContextKey identifies a kind of composite context in a Registry.
type ContextKey string

// Registry holds the contexts of composites that are currently being
// processed in one traversal. Descendants find their parent by key instead of
// receiving it as a parameter.
//
// A Registry is owned by a single traversal and is not safe for concurrent
// use. Scopes created with Scope share the traversal and are discarded when
// the boundary that opened them has finished rendering.
type Registry struct {
	parent  *Registry
	masked  map[ContextKey]struct{}
	entries map[ContextKey]*Context
}

// NewRegistry creates an empty root registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[ContextKey]*Context)}
}

// Scope opens a nested registry. Lookups fall through to the parent scope
// except for masked keys, which become invisible and so may be registered
// again. Boundaries that accept arbitrary content (a fieldset body, a
// conditional reveal) mask the composites that are allowed to appear again
// inside them.
func (r *Registry) Scope(masked ...ContextKey) *Registry {
	s := &Registry{
		parent:  r,
		entries: make(map[ContextKey]*Context),
	}
	if len(masked) > 0 {
		s.masked = make(map[ContextKey]struct{}, len(masked))
		for _, k := range masked {
			s.masked[k] = struct{}{}
		}
	}
	return s
}

// Register installs ctx under key. It fails when a context for key is
// already visible from this scope, which means a composite has been nested
// inside another of the same kind without a boundary between them.
func (r *Registry) Register(key ContextKey, ctx *Context) error {
	if _, ok := r.Lookup(key); ok {
		element := ""
		if ctx != nil {
			element = ctx.Tag()
		}
		return &ContextAlreadyRegisteredError{Key: key, Element: element}
	}
	r.entries[key] = ctx
	return nil
}

// Unregister removes key from this scope. It does not touch parent scopes.
func (r *Registry) Unregister(key ContextKey) {
	delete(r.entries, key)
}

// Lookup finds the nearest context registered under key.
func (r *Registry) Lookup(key ContextKey) (*Context, bool) {
	for s := r; s != nil; s = s.parent {
		if ctx, ok := s.entries[key]; ok {
			return ctx, true
		}
		if _, ok := s.masked[key]; ok {
			return nil, false
		}
	}
	return nil, false
}

// Require is Lookup for child elements: a missing context becomes a
// MissingParentContextError naming the element and its permitted parents.
func (r *Registry) Require(key ContextKey, element string, parents ...string) (*Context, error) {
	ctx, ok := r.Lookup(key)
	if !ok {
		return nil, &MissingParentContextError{Element: element, Parents: parents}
	}
	return ctx, nil
}

// Keys returns the keys visible from this scope, sorted.
func (r *Registry) Keys() []ContextKey {
	seen := make(map[ContextKey]struct{})
	masked := make(map[ContextKey]struct{})
	var keys []ContextKey
	for s := r; s != nil; s = s.parent {
		for k := range s.entries {
			if _, ok := masked[k]; ok {
				continue
			}
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
		for k := range s.masked {
			masked[k] = struct{}{}
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
