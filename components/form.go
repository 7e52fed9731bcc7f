package components

import (
	"github.com/a-h/templ"
	"github.com/pthm/govuk"
	"go.uber.org/zap"
)

const (
	TagForm      = "govuk-form"
	TagPageTitle = "govuk-page-title"
)

var formSchema = &govuk.Schema{
	Tag:   TagForm,
	Slots: []govuk.Slot{{Name: SlotErrorSummary, Tag: TagErrorSummary}},
	Items: []govuk.ItemKind{{Name: ItemError, Tag: TagErrorMessage}},
}

// FormError is the metadata of an error a form group reported to its form.
type FormError struct {
	Field string
	Href  string
}

// FormProps configures a form.
type FormProps struct {
	Action string `attr:"action"`
	// Method defaults to "post".
	Method     string           `attr:"method"`
	NoValidate bool             `attr:"novalidate"`
	Attributes templ.Attributes `attr:",remain"`
}

// Form renders a <form>. Form groups inside it report their errors to it;
// when Options.PrependErrorSummary is set and no ErrorSummary has been
// rendered before or inside it, one listing those errors is rendered at the
// top.
func Form(p FormProps) templ.Component {
	return component(TagForm, p.process)
}

func (p FormProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	ctx := govuk.NewContext(formSchema, "")
	body, err := t.Collect(KeyForm, ctx, children)
	if err != nil {
		return nil, err
	}

	method := p.Method
	if method == "" {
		method = "post"
	}
	attrs := govuk.Attrs("method", method).
		SetNonEmpty("action", p.Action).
		SetBool("novalidate", p.NoValidate).
		Merge(govuk.FromTempl(p.Attributes))

	var summary templ.Component
	errs := ctx.ItemsOf(ItemError)
	if t.Options().PrependErrorSummary && !ctx.Has(SlotErrorSummary) && !t.ErrorSummaryRendered() && len(errs) > 0 {
		items := make([]govuk.Contribution, len(errs))
		for i, e := range errs {
			items[i] = govuk.Contribution{Content: e.Content, Value: LinkData{Href: govuk.ValueAs[FormError](e).Href}}
		}
		summary = renderErrorSummary(govuk.Text(t.Options().ErrorSummaryTitle), govuk.Attributes{}, nil, items, false, govuk.Attributes{})
	}
	return govuk.El("form", attrs, summary, body), nil
}

// reportFormError records a form group error with the enclosing form, if
// there is one.
func reportFormError(t *govuk.Traversal, field, href string, content govuk.Content) {
	form, ok := t.Registry().Lookup(KeyForm)
	if !ok {
		return
	}
	res := form.Add(ItemError, govuk.Contribution{
		Content: content,
		Value:   FormError{Field: field, Href: href},
	})
	if err := res.Err(); err != nil {
		t.Logger().Debug("form error not collected", zap.String("field", field), zap.Error(err))
	}
}

// PageTitleProps configures the document title.
type PageTitleProps struct {
	Attributes templ.Attributes `attr:",remain"`
}

// PageTitle renders <title>. When Options.PrependErrorToTitle is set and
// the model state has errors, the title is prefixed with
// Options.TitleErrorPrefix.
func PageTitle(p PageTitleProps) templ.Component {
	return component(TagPageTitle, p.process)
}

func (p PageTitleProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	content, err := children(t)
	if err != nil {
		return nil, err
	}
	if content.IsEmpty() {
		return nil, t.Fail(&govuk.MissingContentError{Element: TagPageTitle})
	}
	var prefix templ.Component
	if opts := t.Options(); opts.PrependErrorToTitle && !t.ModelState().IsValid() {
		prefix = govuk.Text(opts.TitleErrorPrefix)
	}
	return govuk.El("title", govuk.FromTempl(p.Attributes), prefix, content.Trim()), nil
}
