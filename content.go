package govuk

import (
	"context"
	"html"
	"io"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	htmlPolicyOnce sync.Once
	htmlPolicy     *bluemonday.Policy
)

// Content is a fragment of HTML that is safe to write as-is. Build it with
// Text for plain strings, HTML for untrusted markup, or TrustedHTML for
// markup produced by the render pipeline itself.
type Content struct {
	html string
}

// Text escapes s.
func Text(s string) Content {
	return Content{html: html.EscapeString(s)}
}

// HTML sanitises markup supplied from outside the template (CMS copy, stored
// help text). Scripts, event handlers and unknown elements are stripped.
func HTML(s string) Content {
	return Content{html: contentSanitizer().Sanitize(s)}
}

// TrustedHTML wraps markup that was already produced by templ or by this
// package and must not be altered.
func TrustedHTML(s string) Content {
	return Content{html: s}
}

// Render implements templ.Component.
func (c Content) Render(ctx context.Context, w io.Writer) error {
	if c.html == "" {
		return nil
	}
	_, err := io.WriteString(w, c.html)
	return err
}

// String returns the HTML.
func (c Content) String() string {
	return c.html
}

// IsEmpty reports whether the content is blank once whitespace is ignored.
func (c Content) IsEmpty() bool {
	return strings.TrimSpace(c.html) == ""
}

// Or returns c, or fallback when c is empty.
func (c Content) Or(fallback Content) Content {
	if c.IsEmpty() {
		return fallback
	}
	return c
}

// Trim removes surrounding whitespace that templ emits between elements.
func (c Content) Trim() Content {
	return Content{html: strings.TrimSpace(c.html)}
}

func contentSanitizer() *bluemonday.Policy {
	htmlPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Globally()
		policy.AllowAttrs("aria-hidden", "aria-label").Globally()
		policy.AllowElements("span", "strong", "p", "ul", "ol", "li", "br")
		htmlPolicy = policy
	})
	return htmlPolicy
}
