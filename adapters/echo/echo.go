// Package govukecho provides Echo framework integration for govuk components.
//
// Mount installs middleware that starts a traversal for every request and
// loads the model state left by a previous POST:
//
//	e := echo.New()
//	govukecho.Mount(e, govukecho.WithKey(key))
//
//	e.GET("/contact", func(c echo.Context) error {
//	    return govukecho.Render(c, contactPage())
//	})
//	e.POST("/contact", func(c echo.Context) error {
//	    state := validate(c)
//	    if !state.IsValid() {
//	        if err := govukecho.SaveModelState(c, state); err != nil {
//	            return err
//	        }
//	        return c.Redirect(http.StatusSeeOther, "/contact")
//	    }
//	    ...
//	})
//
// Or mount on a group with middleware:
//
//	g := e.Group("/apply", authMiddleware)
//	govukecho.MountGroup(g)
package govukecho

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/pthm/govuk"
	"go.uber.org/zap"
)

// ErrNotMounted is returned by SaveModelState outside mounted routes.
var ErrNotMounted = errors.New("govukecho: adapter is not mounted on this route")

const adapterKey = "govukecho.adapter"

// Observer is told about every render. *metrics.Metrics satisfies it.
type Observer interface {
	ObserveRender(err error, d time.Duration)
}

// Option configures the Mount and MountGroup functions.
type Option func(*options)

type options struct {
	key      []byte
	sealed   bool
	render   *govuk.Options
	logger   *zap.Logger
	observer Observer
}

// WithKey sets the key that signs or seals model state cookies.
// The key should be at least 32 bytes of cryptographically random data.
// If not provided, a random key is generated (suitable for development only).
func WithKey(key []byte) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithSealedState encrypts model state cookies instead of signing them.
func WithSealedState(sealed bool) Option {
	return func(o *options) {
		o.sealed = sealed
	}
}

// WithOptions sets the render options used by every request.
func WithOptions(opts govuk.Options) Option {
	return func(o *options) {
		o.render = &opts
	}
}

// WithLogger sets the logger for composition and render failures.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithObserver reports every render to obs.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// Adapter holds what mounted routes share.
type Adapter struct {
	codec    *govuk.StateCodec
	render   govuk.Options
	logger   *zap.Logger
	observer Observer
}

// Mount creates an adapter and installs its middleware on an Echo instance.
//
//	e := echo.New()
//	govukecho.Mount(e)
//
//	// With options:
//	govukecho.Mount(e, govukecho.WithKey(key), govukecho.WithLogger(logger))
func Mount(e *echo.Echo, opts ...Option) *Adapter {
	a := newAdapter(opts)
	e.Use(a.Middleware)
	return a
}

// MountGroup creates an adapter and installs its middleware on an Echo group.
// This allows pages to share middleware with the group (auth, logging, etc.).
func MountGroup(g *echo.Group, opts ...Option) *Adapter {
	a := newAdapter(opts)
	g.Use(a.Middleware)
	return a
}

func newAdapter(opts []Option) *Adapter {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	key := o.key
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("govukecho: failed to generate random key: %v", err))
		}
	}

	codec, err := govuk.NewStateCodec(key, o.sealed)
	if err != nil {
		panic(fmt.Sprintf("govukecho: failed to create state codec: %v", err))
	}

	a := &Adapter{
		codec:    codec,
		render:   govuk.DefaultOptions(),
		logger:   o.logger,
		observer: o.observer,
	}
	if o.render != nil {
		a.render = *o.render
	}
	if a.logger == nil {
		a.logger = zap.NewNop()
	}
	return a
}

// Middleware loads the pending model state and puts a fresh traversal on the
// request context.
func (a *Adapter) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		state, err := a.codec.Load(c.Response(), req)
		if err != nil {
			a.logger.Warn("discarding model state cookie", zap.String("path", req.URL.Path), zap.Error(err))
		}

		t := govuk.NewTraversal(
			govuk.WithOptions(a.render),
			govuk.WithModelState(state),
			govuk.WithLogger(a.logger),
		)
		c.SetRequest(req.WithContext(govuk.WithTraversal(req.Context(), t)))
		c.Set(adapterKey, a)
		return next(c)
	}
}

func (a *Adapter) observe(c echo.Context, err error, d time.Duration) {
	if a.observer != nil {
		a.observer.ObserveRender(err, d)
	}
	if err != nil {
		a.logger.Error("render failed",
			zap.String("path", c.Request().URL.Path),
			zap.String("kind", govuk.ErrorKind(err)),
			zap.Error(err),
		)
	}
}

func adapterFrom(c echo.Context) *Adapter {
	a, _ := c.Get(adapterKey).(*Adapter)
	return a
}

// Render writes a component to the Echo response with status 200.
//
//	func handler(c echo.Context) error {
//	    return govukecho.Render(c, myPage())
//	}
func Render(c echo.Context, component templ.Component) error {
	return RenderStatus(c, http.StatusOK, component)
}

// RenderStatus renders component into a buffer and writes it with code. A
// composition error writes nothing and is returned as an *echo.HTTPError
// wrapping the cause.
func RenderStatus(c echo.Context, code int, component templ.Component) error {
	ctx := c.Request().Context()
	if govuk.TraversalFrom(ctx) == nil {
		ctx = govuk.WithTraversal(ctx, govuk.NewTraversal())
	}

	start := time.Now()
	var buf bytes.Buffer
	err := component.Render(ctx, &buf)
	if a := adapterFrom(c); a != nil {
		a.observe(c, err, time.Since(start))
	}
	if err != nil {
		return echo.NewHTTPError(govuk.StatusFor(err)).SetInternal(err)
	}
	return c.HTMLBlob(code, buf.Bytes())
}

// SaveModelState stores state for the next request, typically before a
// redirect back to the form.
func SaveModelState(c echo.Context, state *govuk.ModelState) error {
	a := adapterFrom(c)
	if a == nil {
		return ErrNotMounted
	}
	return a.codec.Save(c.Response(), state)
}

// Traversal returns the request's traversal, or nil outside mounted routes.
func Traversal(c echo.Context) *govuk.Traversal {
	return govuk.TraversalFrom(c.Request().Context())
}

// ModelState returns the model state loaded for this request. It is empty
// when nothing was pending.
func ModelState(c echo.Context) *govuk.ModelState {
	if t := Traversal(c); t != nil {
		return t.ModelState()
	}
	return govuk.NewModelState()
}
