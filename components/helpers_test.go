package components

import (
	"testing"

	"github.com/a-h/templ"
	"github.com/pthm/govuk"
	"github.com/stretchr/testify/require"
)

// w is shorthand for govuk.With.
func w(parent templ.Component, children ...templ.Component) templ.Component {
	return govuk.With(parent, children...)
}

func text(s string) templ.Component { return govuk.Text(s) }

func mustRender(t *testing.T, c templ.Component, opts ...govuk.TraversalOption) *govuk.TestResult {
	t.Helper()
	result, err := govuk.TestRender(c, opts...)
	require.NoError(t, err)
	return result
}

func renderErr(c templ.Component, opts ...govuk.TraversalOption) error {
	_, err := govuk.TestRender(c, opts...)
	return err
}
