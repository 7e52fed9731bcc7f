package document

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/pthm/govuk"
	"github.com/pthm/govuk/components"
)

// DefaultStylesheet is linked when a document names none.
const DefaultStylesheet = "/assets/govuk-frontend.min.css"

// Page wraps body in the GOV.UK page template.
func Page(doc *Document, body templ.Component) templ.Component {
	stylesheet := doc.Stylesheet
	if stylesheet == "" {
		stylesheet = DefaultStylesheet
	}
	var title templ.Component
	if doc.Title != "" {
		title = govuk.With(components.PageTitle(components.PageTitleProps{}), govuk.Text(doc.Title))
	}

	return govuk.Join(
		govuk.TrustedHTML("<!DOCTYPE html>"),
		govuk.El("html", govuk.Attrs("lang", "en", "class", "govuk-template"),
			govuk.El("head", govuk.Attrs(),
				govuk.VoidEl("meta", govuk.Attrs("charset", "utf-8")),
				govuk.VoidEl("meta", govuk.Attrs("name", "viewport", "content", "width=device-width, initial-scale=1")),
				title,
				govuk.VoidEl("link", govuk.Attrs("rel", "stylesheet", "href", stylesheet)),
			),
			govuk.El("body", govuk.Attrs("class", "govuk-template__body"),
				components.SkipLink(components.SkipLinkProps{}),
				govuk.El("div", govuk.Attrs("class", "govuk-width-container"),
					govuk.El("main", govuk.Attrs("class", "govuk-main-wrapper", "id", "main-content", "role", "main"), body),
				),
			),
		),
	)
}

// Component builds the document body with reg.
func (d *Document) Component(reg *Registry) (templ.Component, error) {
	return reg.Build(d.Body)
}

// Render writes the document to w. With page set the body is wrapped in the
// page template. The document's own model state is used unless opts supply
// one.
func Render(ctx context.Context, w io.Writer, doc *Document, reg *Registry, page bool, opts ...govuk.TraversalOption) error {
	body, err := doc.Component(reg)
	if err != nil {
		return err
	}
	c := body
	if page {
		c = Page(doc, body)
	}

	if govuk.TraversalFrom(ctx) == nil {
		if doc.ModelState != nil {
			opts = append([]govuk.TraversalOption{govuk.WithModelState(doc.ModelState)}, opts...)
		}
		ctx = govuk.WithTraversal(ctx, govuk.NewTraversal(opts...))
	}

	html, err := govuk.RenderString(ctx, c)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, html)
	return err
}
