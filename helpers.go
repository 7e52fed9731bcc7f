package govuk

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
)

// Render writes a component tree to the HTTP response.
//
// The tree is rendered into a buffer first: a composition error aborts the
// whole render and nothing is written, so the caller can respond with an
// error page instead of half a form.
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    if err := govuk.Render(w, r, page()); err != nil {
//	        http.Error(w, "Internal error", http.StatusInternalServerError)
//	    }
//	}
//
// A traversal already installed on the request context (see WithTraversal)
// is reused; otherwise one is created with opts.
func Render(w http.ResponseWriter, r *http.Request, component templ.Component, opts ...TraversalOption) error {
	ctx := r.Context()
	if TraversalFrom(ctx) == nil {
		ctx = WithTraversal(ctx, NewTraversal(opts...))
	}

	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}

// StatusFor maps a render error to an HTTP status. Composition errors are
// authoring bugs and map to 500 like any other failure; the distinction is
// kept for logging and metrics.
func StatusFor(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return http.StatusInternalServerError
}
