package components

import (
	"github.com/a-h/templ"
	"github.com/pthm/govuk"
)

const (
	TagErrorSummary            = "govuk-error-summary"
	TagErrorSummaryTitle       = "govuk-error-summary-title"
	TagErrorSummaryDescription = "govuk-error-summary-description"
	TagErrorSummaryItem        = "govuk-error-summary-item"
)

var errorSummarySchema = &govuk.Schema{
	Tag: TagErrorSummary,
	Slots: []govuk.Slot{
		{Name: SlotTitle, Tag: TagErrorSummaryTitle},
		{Name: SlotDescription, Tag: TagErrorSummaryDescription},
	},
	Items: []govuk.ItemKind{{Name: ItemItem, Tag: TagErrorSummaryItem}},
}

// LinkData is the metadata of a contribution that renders as a link.
type LinkData struct {
	Href string
}

// ErrorSummaryProps configures an error summary.
type ErrorSummaryProps struct {
	DisableAutoFocus bool             `attr:"disable-auto-focus"`
	Attributes       templ.Attributes `attr:",remain"`
}

// ErrorSummary lists the errors on a page. A Form rendered after it, or
// containing it, does not prepend a summary of its own.
func ErrorSummary(p ErrorSummaryProps) templ.Component {
	return component(TagErrorSummary, p.process)
}

func (p ErrorSummaryProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	if form, ok := t.Registry().Lookup(KeyForm); ok {
		if err := form.Set(SlotErrorSummary, govuk.Contribution{Tag: TagErrorSummary}).Err(); err != nil {
			return nil, t.Fail(err)
		}
	}

	ctx := govuk.NewContext(errorSummarySchema, "")
	if _, err := t.Collect(KeyErrorSummary, ctx, children); err != nil {
		return nil, err
	}

	title := govuk.Text(t.Options().ErrorSummaryTitle)
	var titleAttrs govuk.Attributes
	if c, ok := ctx.Get(SlotTitle); ok {
		title, titleAttrs = c.Content.Or(title), c.Attrs
	}
	var description *govuk.Contribution
	if c, ok := ctx.Get(SlotDescription); ok {
		description = &c
	}
	t.MarkErrorSummaryRendered()
	return renderErrorSummary(title, titleAttrs, description, ctx.ItemsOf(ItemItem), p.DisableAutoFocus, govuk.FromTempl(p.Attributes)), nil
}

func renderErrorSummary(title govuk.Content, titleAttrs govuk.Attributes, description *govuk.Contribution, items []govuk.Contribution, disableAutoFocus bool, extra govuk.Attributes) govuk.Element {
	body := make([]templ.Component, 0, 2)
	if description != nil {
		body = append(body, govuk.El("p", govuk.Attrs().Merge(description.Attrs), description.Content))
	}
	if len(items) > 0 {
		list := make([]templ.Component, len(items))
		for i, item := range items {
			href := govuk.ValueAs[LinkData](item).Href
			var inner templ.Component = item.Content
			if href != "" {
				inner = govuk.El("a", govuk.Attrs("href", href).Merge(item.Attrs), item.Content)
			}
			list[i] = govuk.El("li", govuk.Attrs(), inner)
		}
		body = append(body, govuk.El("ul", govuk.Attrs("class", "govuk-list govuk-error-summary__list"), list...))
	}

	attrs := govuk.Attrs("class", "govuk-error-summary", "data-module", "govuk-error-summary")
	if disableAutoFocus {
		attrs = attrs.Set("data-disable-auto-focus", "true")
	}
	return govuk.El("div", attrs.Merge(extra),
		govuk.El("div", govuk.Attrs("role", "alert"),
			govuk.El("h2", govuk.Attrs("class", "govuk-error-summary__title").Merge(titleAttrs), title),
			govuk.El("div", govuk.Attrs("class", "govuk-error-summary__body"), body...),
		),
	)
}

// ErrorSummaryTitleProps configures the summary title.
type ErrorSummaryTitleProps struct {
	Attributes templ.Attributes `attr:",remain"`
}

// ErrorSummaryTitle replaces the default summary title.
func ErrorSummaryTitle(p ErrorSummaryTitleProps) templ.Component {
	return component(TagErrorSummaryTitle, func(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
		return contributeContent(t, children, KeyErrorSummary, TagErrorSummaryTitle, TagErrorSummary, SlotTitle, p.Attributes)
	})
}

// ErrorSummaryDescriptionProps configures the summary description.
type ErrorSummaryDescriptionProps struct {
	Attributes templ.Attributes `attr:",remain"`
}

// ErrorSummaryDescription adds a paragraph above the error list.
func ErrorSummaryDescription(p ErrorSummaryDescriptionProps) templ.Component {
	return component(TagErrorSummaryDescription, func(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
		return contributeContent(t, children, KeyErrorSummary, TagErrorSummaryDescription, TagErrorSummary, SlotDescription, p.Attributes)
	})
}

// ErrorSummaryItemProps configures a summary entry.
type ErrorSummaryItemProps struct {
	// Href links the entry to the field in error, usually "#" + its id.
	Href       string           `attr:"href"`
	Attributes templ.Attributes `attr:",remain"`
}

// ErrorSummaryItem adds an entry to the summary.
func ErrorSummaryItem(p ErrorSummaryItemProps) templ.Component {
	return component(TagErrorSummaryItem, p.process)
}

func (p ErrorSummaryItemProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	parent, err := t.Require(KeyErrorSummary, TagErrorSummaryItem, TagErrorSummary)
	if err != nil {
		return nil, err
	}
	content, err := children(t)
	if err != nil {
		return nil, err
	}
	if content.IsEmpty() {
		return nil, t.Fail(&govuk.MissingContentError{Element: TagErrorSummaryItem})
	}
	return appendItem(t, parent, ItemItem, govuk.Contribution{
		Content: content.Trim(),
		Attrs:   govuk.FromTempl(p.Attributes),
		Value:   LinkData{Href: p.Href},
	})
}

// contributeContent is the common child whose whole contribution is its
// content and attributes.
func contributeContent(t *govuk.Traversal, children govuk.Children, key govuk.ContextKey, tag, parentTag, slot string, attrs templ.Attributes) (templ.Component, error) {
	parent, err := t.Require(key, tag, parentTag)
	if err != nil {
		return nil, err
	}
	content, err := children(t)
	if err != nil {
		return nil, err
	}
	return contribute(t, parent, slot, govuk.Contribution{
		Tag:     tag,
		Content: content.Trim(),
		Attrs:   govuk.FromTempl(attrs),
	})
}
