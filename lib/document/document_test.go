package document

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/pthm/govuk"
	"github.com/pthm/govuk/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contactDocument = `
title: Contact preference
validation:
  contact: Select how you would like to be contacted
next: /done
body:
  - tag: govuk-form
    attrs: {action: /contact}
    children:
      - tag: govuk-radios
        attrs: {name: contact}
        children:
          - tag: govuk-radios-fieldset
            children:
              - tag: govuk-fieldset-legend
                attrs: {is-page-heading: true}
                children: [How would you like to be contacted?]
          - tag: govuk-radios-item
            attrs: {value: email}
            children: [Email]
          - tag: govuk-radios-item
            attrs: {value: phone}
            text: Phone
      - tag: govuk-button
        children: [Continue]
`

func renderTree(t *testing.T, c templ.Component, opts ...govuk.TraversalOption) string {
	t.Helper()
	res, err := govuk.TestRender(c, opts...)
	require.NoError(t, err)
	return res.HTML
}

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(contactDocument))
	require.NoError(t, err)

	assert.Equal(t, "Contact preference", doc.Title)
	assert.Equal(t, "/done", doc.Next)
	assert.Equal(t, map[string]string{"contact": "Select how you would like to be contacted"}, doc.Validation)
	require.Len(t, doc.Body, 1)

	radios := doc.Body[0].Children[0]
	assert.Equal(t, "govuk-radios", radios.Tag)
	assert.Equal(t, map[string]any{"name": "contact"}, radios.Attrs)
	assert.Equal(t, []Node{{Text: "Email"}}, radios.Children[1].Children)
	assert.Equal(t, "Phone", radios.Children[2].Text)
}

func TestParseRejectsEmptyBody(t *testing.T) {
	_, err := Parse([]byte("title: Nothing\n"))
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = Parse([]byte("body: [\n"))
	assert.ErrorContains(t, err, "parse document")
}

func TestBuildMatchesComponents(t *testing.T) {
	doc, err := Parse([]byte(contactDocument))
	require.NoError(t, err)

	built, err := doc.Component(DefaultRegistry())
	require.NoError(t, err)

	want := govuk.With(components.Form(components.FormProps{Action: "/contact"}),
		govuk.With(components.Radios(components.ChoicesProps{Name: "contact"}),
			govuk.With(components.RadiosFieldset(components.FormGroupFieldsetProps{}),
				govuk.With(components.Legend(components.LegendProps{IsPageHeading: true}), govuk.Text("How would you like to be contacted?")),
			),
			govuk.With(components.RadiosItem(components.ChoiceItemProps{Value: "email"}), govuk.Text("Email")),
			govuk.With(components.RadiosItem(components.ChoiceItemProps{Value: "phone"}), govuk.Text("Phone")),
		),
		govuk.With(components.Button(components.ButtonProps{}), govuk.Text("Continue")),
	)

	state := govuk.NewModelState().AddError("contact", "Select how you would like to be contacted")
	assert.Equal(t, renderTree(t, want), renderTree(t, built))
	assert.Equal(t,
		renderTree(t, want, govuk.WithModelState(state)),
		renderTree(t, built, govuk.WithModelState(state)))
}

func TestBuildCompositionErrorsSurfaceAtRender(t *testing.T) {
	doc, err := Parse([]byte(`
body:
  - tag: govuk-textarea
    attrs: {name: detail}
    children:
      - tag: govuk-label
        children: [Detail]
      - tag: govuk-value
        children: [text]
      - tag: govuk-hint
        children: [Too late]
`))
	require.NoError(t, err)

	c, err := doc.Component(DefaultRegistry())
	require.NoError(t, err)

	_, err = govuk.TestRender(c)
	var ordering *govuk.OrderingError
	require.ErrorAs(t, err, &ordering)
	assert.Equal(t, "<govuk-hint> must be specified before <govuk-value>.", err.Error())

	for _, tag := range []string{ordering.Element, ordering.Before} {
		_, ok := DefaultRegistry().Lookup(tag)
		assert.True(t, ok, "error names <%s>, which no document can contain", tag)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
		message string
	}{
		{
			name:    "unknown tag",
			doc:     "body:\n  - tag: govuk-carousel\n",
			wantErr: ErrUnknownElement,
			message: "unknown element: <govuk-carousel>",
		},
		{
			name:    "unknown attribute without passthrough",
			doc:     "body:\n  - tag: govuk-value\n    attrs: {class: wide}\n",
			wantErr: ErrUnknownAttribute,
			message: "<govuk-value> attribute 'class': unknown attribute",
		},
		{
			name:    "bad integer",
			doc:     "body:\n  - tag: govuk-textarea\n    attrs: {rows: many}\n",
			message: "<govuk-textarea> attribute 'rows'",
		},
		{
			name:    "nested unknown tag",
			doc:     "body:\n  - tag: govuk-details\n    children:\n      - tag: marquee\n",
			wantErr: ErrUnknownElement,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.doc))
			require.NoError(t, err)

			_, err = doc.Component(DefaultRegistry())
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("x-note", Props(components.InsetText)))
	assert.ErrorIs(t, reg.Register("x-note", Bare(components.Value)), ErrDuplicateTag)
	assert.Equal(t, []string{"x-note"}, reg.Tags())

	_, ok := reg.Lookup("govuk-input")
	assert.False(t, ok)

	c, err := reg.Build([]Node{{Tag: "x-note", Text: "Note"}})
	require.NoError(t, err)
	assert.Equal(t, `<div class="govuk-inset-text">Note</div>`, renderTree(t, c))
}

func TestDefaultRegistryCoversComponents(t *testing.T) {
	tags := DefaultRegistry().Tags()
	for _, tag := range []string{
		components.TagInput, components.TagRadiosFieldset, components.TagDateInputItem,
		components.TagSummaryListRowAction, components.TagNotificationBannerTitle, components.TagButtonLink,
	} {
		assert.Contains(t, tags, tag)
	}
}

func TestValidate(t *testing.T) {
	doc := &Document{Validation: map[string]string{
		"contact": "Select how you would like to be contacted",
		"name":    "Enter your name",
		"topics":  "Select a topic",
	}}

	state := doc.Validate(map[string][]string{
		"name":   {"  "},
		"topics": {"tax", "benefits"},
		"email":  {"a@example.com"},
	})

	assert.Equal(t, []string{"contact", "name"}, state.Fields())
	v, _ := state.Value("topics")
	assert.Equal(t, "tax,benefits", v)
	v, _ = state.Value("email")
	assert.Equal(t, "a@example.com", v)
}

func TestRenderPage(t *testing.T) {
	doc, err := Parse([]byte(contactDocument))
	require.NoError(t, err)
	doc.ModelState = govuk.NewModelState().AddError("contact", "Select how you would like to be contacted")

	var buf bytes.Buffer
	require.NoError(t, Render(context.Background(), &buf, doc, DefaultRegistry(), true))
	html := buf.String()

	assert.True(t, strings.HasPrefix(html, `<!DOCTYPE html><html lang="en" class="govuk-template">`))
	assert.Contains(t, html, `<title>Error: Contact preference</title>`)
	assert.Contains(t, html, `<link rel="stylesheet" href="/assets/govuk-frontend.min.css">`)
	assert.Contains(t, html, `<a class="govuk-skip-link" href="#main-content" data-module="govuk-skip-link">Skip to main content</a>`)
	assert.Contains(t, html, `<main class="govuk-main-wrapper" id="main-content" role="main">`)
	assert.Contains(t, html, `<a href="#contact">Select how you would like to be contacted</a>`)
}

func TestRenderFragment(t *testing.T) {
	doc := &Document{Body: []Node{{Tag: components.TagBackLink, Attrs: map[string]any{"href": "/start"}}}}

	var buf bytes.Buffer
	require.NoError(t, Render(context.Background(), &buf, doc, DefaultRegistry(), false))
	assert.Equal(t, `<a class="govuk-back-link" href="/start">Back</a>`, buf.String())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contact.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contactDocument), 0o600))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Contact preference", doc.Title)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("title: x\n"), 0o600))
	_, err = Load(empty)
	assert.ErrorIs(t, err, ErrEmptyDocument)
	assert.Contains(t, err.Error(), empty)
}
