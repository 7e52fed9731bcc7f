package components

import (
	"testing"

	"github.com/pthm/govuk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormPrependsErrorSummary(t *testing.T) {
	state := govuk.NewModelState().
		AddError("email", "Enter an email address").
		AddError("detail", "Enter more detail")

	result := mustRender(t, w(Form(FormProps{Action: "/contact", NoValidate: true}),
		w(Input(InputProps{Name: "email"}), w(Label(LabelProps{}), text("Email"))),
		w(Textarea(TextareaProps{Name: "detail"}), w(Label(LabelProps{}), text("Detail"))),
		w(Button(ButtonProps{}), text("Send")),
	), govuk.WithModelState(state))

	assert.True(t, result.HTMLContainsAll(
		`<form method="post" action="/contact" novalidate><div class="govuk-error-summary" data-module="govuk-error-summary"><div role="alert"><h2 class="govuk-error-summary__title">There is a problem</h2>`,
		`<ul class="govuk-list govuk-error-summary__list"><li><a href="#email">Enter an email address</a></li><li><a href="#detail">Enter more detail</a></li></ul>`,
	), result.HTML)
	assert.Less(t, result.Index("govuk-error-summary"), result.Index(`id="email"`))
}

func TestFormWithoutErrorsHasNoSummary(t *testing.T) {
	result := mustRender(t, w(Form(FormProps{Method: "get"}),
		w(Input(InputProps{Name: "q"}), w(Label(LabelProps{}), text("Search"))),
	))
	assert.False(t, result.HTMLContains("govuk-error-summary"))
	assert.True(t, result.HTMLContains(`<form method="get">`))
}

func TestFormPrependDisabled(t *testing.T) {
	state := govuk.NewModelState().AddError("q", "Enter a search term")
	result := mustRender(t, w(Form(FormProps{}),
		w(Input(InputProps{Name: "q"}), w(Label(LabelProps{}), text("Search"))),
	), govuk.WithModelState(state), govuk.WithOptions(govuk.Options{PrependErrorSummary: false}))

	assert.False(t, result.HTMLContains("govuk-error-summary"))
	assert.True(t, result.HTMLContains("govuk-form-group--error"))
}

func TestFormOwnErrorSummaryWins(t *testing.T) {
	state := govuk.NewModelState().AddError("email", "Enter an email address")
	result := mustRender(t, w(Form(FormProps{}),
		w(Input(InputProps{Name: "email"}), w(Label(LabelProps{}), text("Email"))),
		w(ErrorSummary(ErrorSummaryProps{}),
			w(ErrorSummaryItem(ErrorSummaryItemProps{Href: "#email"}), text("Custom message")),
		),
	), govuk.WithModelState(state))

	assert.Equal(t, 1, result.Count(`class="govuk-error-summary"`))
	assert.True(t, result.HTMLContains(`<a href="#email">Custom message</a>`), result.HTML)
}

func TestFormAfterPageErrorSummary(t *testing.T) {
	state := govuk.NewModelState().AddError("email", "Enter an email address")
	result := mustRender(t, govuk.Join(
		w(ErrorSummary(ErrorSummaryProps{}),
			w(ErrorSummaryItem(ErrorSummaryItemProps{Href: "#email"}), text("Enter an email address")),
		),
		w(Form(FormProps{}),
			w(Input(InputProps{Name: "email"}), w(Label(LabelProps{}), text("Email"))),
		),
	), govuk.WithModelState(state))

	assert.Equal(t, 1, result.Count(`class="govuk-error-summary"`), result.HTML)
	assert.Less(t, result.Index("govuk-error-summary"), result.Index("<form"))
	assert.True(t, result.HTMLContains("govuk-form-group--error"))
	assert.True(t, result.Traversal.ErrorSummaryRendered())
}

func TestFormBeforeErrorSummaryStillPrepends(t *testing.T) {
	state := govuk.NewModelState().AddError("email", "Enter an email address")
	result := mustRender(t, govuk.Join(
		w(Form(FormProps{}),
			w(Input(InputProps{Name: "email"}), w(Label(LabelProps{}), text("Email"))),
		),
		w(ErrorSummary(ErrorSummaryProps{}),
			w(ErrorSummaryItem(ErrorSummaryItemProps{Href: "#email"}), text("Enter an email address")),
		),
	), govuk.WithModelState(state))

	assert.Equal(t, 2, result.Count(`class="govuk-error-summary"`), result.HTML)
}

func TestFormConditionalErrorsReachForm(t *testing.T) {
	state := govuk.NewModelState().AddError("phone-number", "Enter a phone number")
	result := mustRender(t, w(Form(FormProps{}),
		w(Radios(ChoicesProps{Name: "contact", Value: "phone"}),
			w(RadiosItem(ChoiceItemProps{Value: "phone"}), text("Phone"),
				w(Conditional(ConditionalProps{}),
					w(Input(InputProps{Name: "phone-number"}), w(Label(LabelProps{}), text("Phone number"))),
				),
			),
		),
	), govuk.WithModelState(state))

	assert.True(t, result.HTMLContainsAll(
		`<a href="#phone-number">Enter a phone number</a>`,
		`<div class="govuk-radios__conditional" id="conditional-contact">`,
	), result.HTML)
}

func TestErrorSummary(t *testing.T) {
	result := mustRender(t, w(ErrorSummary(ErrorSummaryProps{DisableAutoFocus: true}),
		w(ErrorSummaryTitle(ErrorSummaryTitleProps{}), text("Fix these")),
		w(ErrorSummaryDescription(ErrorSummaryDescriptionProps{}), text("Check the form")),
		w(ErrorSummaryItem(ErrorSummaryItemProps{Href: "#name"}), text("Enter your name")),
		w(ErrorSummaryItem(ErrorSummaryItemProps{}), text("Plain")),
	))

	assert.Equal(t, `<div class="govuk-error-summary" data-module="govuk-error-summary" data-disable-auto-focus="true">`+
		`<div role="alert"><h2 class="govuk-error-summary__title">Fix these</h2>`+
		`<div class="govuk-error-summary__body"><p>Check the form</p>`+
		`<ul class="govuk-list govuk-error-summary__list"><li><a href="#name">Enter your name</a></li><li>Plain</li></ul>`+
		`</div></div></div>`, result.HTML)
}

func TestErrorSummaryErrors(t *testing.T) {
	err := renderErr(w(ErrorSummary(ErrorSummaryProps{}), w(ErrorSummaryItem(ErrorSummaryItemProps{}))))
	assert.EqualError(t, err, "<govuk-error-summary-item> must have content.")

	err = renderErr(w(ErrorSummaryTitle(ErrorSummaryTitleProps{}), text("x")))
	assert.EqualError(t, err, "<govuk-error-summary-title> must be inside <govuk-error-summary>.")

	err = renderErr(w(Form(FormProps{}), ErrorSummary(ErrorSummaryProps{}), ErrorSummary(ErrorSummaryProps{})))
	assert.EqualError(t, err, "Only one <govuk-error-summary> element is permitted within each <govuk-form>.")

	err = renderErr(w(Form(FormProps{}), Form(FormProps{})))
	assert.ErrorIs(t, err, govuk.ErrContextAlreadyRegistered)
}

func TestPageTitle(t *testing.T) {
	invalid := govuk.NewModelState().AddError("x", "y")

	result := mustRender(t, w(PageTitle(PageTitleProps{}), text(" Apply for a licence ")), govuk.WithModelState(invalid))
	assert.Equal(t, "<title>Error: Apply for a licence</title>", result.HTML)

	result = mustRender(t, w(PageTitle(PageTitleProps{}), text("Apply for a licence")))
	assert.Equal(t, "<title>Apply for a licence</title>", result.HTML)

	result = mustRender(t, w(PageTitle(PageTitleProps{}), text("Apply")),
		govuk.WithModelState(invalid), govuk.WithOptions(govuk.Options{PrependErrorSummary: true}))
	assert.Equal(t, "<title>Apply</title>", result.HTML)

	_, err := govuk.TestRender(PageTitle(PageTitleProps{}))
	require.Error(t, err)
	assert.EqualError(t, err, "<govuk-page-title> must have content.")
}
