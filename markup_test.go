package govuk

import (
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementRender(t *testing.T) {
	el := El("div", Attrs("class", "govuk-hint", "id", "h"), Text("Hint & tip"), nil, El("span", Attributes{}))
	out, err := RenderString(context.Background(), el)
	require.NoError(t, err)
	assert.Equal(t, `<div class="govuk-hint" id="h">Hint &amp; tip<span></span></div>`, out)
}

func TestVoidElement(t *testing.T) {
	out, err := RenderString(context.Background(), VoidEl("input", Attrs("name", "email").SetBool("disabled", true)))
	require.NoError(t, err)
	assert.Equal(t, `<input name="email" disabled>`, out)
}

func TestJoinAndIf(t *testing.T) {
	out, err := RenderString(context.Background(), Join(
		Text("a"),
		nil,
		If(false, Text("hidden")),
		If(true, Text("b")),
		If(true, nil),
		templ.NopComponent,
	))
	require.NoError(t, err)
	assert.Equal(t, "ab", out)
}
