package govuk

import (
	"bytes"
	"context"
	"strings"

	"github.com/a-h/templ"
)

// TestResult holds the output of rendering a component for testing.
type TestResult struct {
	HTML      string
	Traversal *Traversal
}

// TestRender renders a component tree with a fresh traversal and returns
// its output.
//
//	result, err := govuk.TestRender(components.BackLink(components.BackLinkProps{Href: "/"}))
//	if !result.HTMLContains(">Back</a>") {
//	    t.Fatal("missing default content")
//	}
func TestRender(component templ.Component, opts ...TraversalOption) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), component, opts...)
}

// TestRenderWithContext renders with a custom context. A traversal already in
// ctx is reused and opts are ignored.
func TestRenderWithContext(ctx context.Context, component templ.Component, opts ...TraversalOption) (*TestResult, error) {
	t := TraversalFrom(ctx)
	if t == nil {
		t = NewTraversal(opts...)
		ctx = WithTraversal(ctx, t)
	}

	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return nil, err
	}

	return &TestResult{
		HTML:      buf.String(),
		Traversal: t,
	}, nil
}

// TestProcess runs a single node outside templ, with content as its
// rendered children. Use it to unit test a node's contribution.
func TestProcess(n Node, t *Traversal, content Content) (string, error) {
	out, err := n.Process(t, StaticChildren(content))
	if err != nil {
		return "", err
	}
	if out == nil {
		return "", nil
	}
	var buf bytes.Buffer
	if err := out.Render(WithTraversal(context.Background(), t), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLContainsAny checks if the HTML contains any of the given substrings.
func (r *TestResult) HTMLContainsAny(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(r.HTML, s) {
			return true
		}
	}
	return false
}

// Count returns the number of non-overlapping occurrences of substr.
func (r *TestResult) Count(substr string) int {
	return strings.Count(r.HTML, substr)
}

// Index returns the position of substr in the HTML, or -1. Tests use it to
// assert document order.
func (r *TestResult) Index(substr string) int {
	return strings.Index(r.HTML, substr)
}
