package govuk

import (
	"go.uber.org/zap"
)

// Traversal is one depth-first rendering pass over a component tree. It owns
// the context registry for that pass along with the read-only inputs every
// node may consult: options, model state and a logger.
//
// A Traversal is confined to the goroutine rendering it. Concurrent requests
// must each use their own.
type Traversal struct {
	registry *Registry
	options  Options
	state    *ModelState
	logger   *zap.Logger
	pass     *passState
}

// passState is shared by every scope of one traversal.
type passState struct {
	errorSummary bool
}

// TraversalOption configures NewTraversal.
type TraversalOption func(*Traversal)

// WithOptions sets the render options. Empty strings fall back to
// DefaultOptions.
func WithOptions(o Options) TraversalOption {
	return func(t *Traversal) {
		t.options = o.withDefaults()
	}
}

// WithModelState sets the model state consulted by form groups.
func WithModelState(state *ModelState) TraversalOption {
	return func(t *Traversal) {
		if state != nil {
			t.state = state
		}
	}
}

// WithLogger sets the logger that composition failures are reported to.
func WithLogger(logger *zap.Logger) TraversalOption {
	return func(t *Traversal) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewTraversal starts a pass with an empty registry.
func NewTraversal(opts ...TraversalOption) *Traversal {
	t := &Traversal{
		registry: NewRegistry(),
		options:  DefaultOptions(),
		state:    NewModelState(),
		logger:   zap.NewNop(),
		pass:     &passState{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Registry returns the registry of the current scope.
func (t *Traversal) Registry() *Registry { return t.registry }

// Options returns the render options.
func (t *Traversal) Options() Options { return t.options }

// ModelState returns the model state. It is never nil.
func (t *Traversal) ModelState() *ModelState { return t.state }

// Logger returns the traversal's logger.
func (t *Traversal) Logger() *zap.Logger { return t.logger }

// MarkErrorSummaryRendered records that an error summary has been rendered
// in this pass.
func (t *Traversal) MarkErrorSummaryRendered() { t.pass.errorSummary = true }

// ErrorSummaryRendered reports whether an error summary has been rendered
// so far in this pass, in any scope.
func (t *Traversal) ErrorSummaryRendered() bool { return t.pass.errorSummary }

// Scope returns a traversal sharing everything with t except the registry,
// which is a nested scope masking the given keys.
func (t *Traversal) Scope(masked ...ContextKey) *Traversal {
	s := *t
	s.registry = t.registry.Scope(masked...)
	return &s
}

// Fail reports a composition failure and returns it unchanged so it can be
// propagated in one statement.
func (t *Traversal) Fail(err error) error {
	if err == nil {
		return nil
	}
	if kind := ErrorKind(err); kind != "" {
		t.logger.Debug("component composition rejected",
			zap.String("kind", kind),
			zap.Error(err),
		)
	}
	return err
}

// Collect runs the composite protocol for ctx: register it under key, render
// children so they can contribute, then unregister and close it. The
// returned content is whatever the children rendered directly.
func (t *Traversal) Collect(key ContextKey, ctx *Context, children Children) (Content, error) {
	if err := t.registry.Register(key, ctx); err != nil {
		return Content{}, t.Fail(err)
	}
	t.logger.Debug("context registered",
		zap.String("key", string(key)),
		zap.String("element", ctx.Tag()),
	)

	var content Content
	var err error
	if children != nil {
		content, err = children(t)
	}

	t.registry.Unregister(key)
	ctx.Close()
	if err != nil {
		return Content{}, err
	}
	return content, nil
}

// Require looks up the parent context of a child element.
func (t *Traversal) Require(key ContextKey, element string, parents ...string) (*Context, error) {
	ctx, err := t.registry.Require(key, element, parents...)
	if err != nil {
		return nil, t.Fail(err)
	}
	return ctx, nil
}
