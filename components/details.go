package components

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/pthm/govuk"
)

const (
	TagDetails        = "govuk-details"
	TagDetailsSummary = "govuk-details-summary"
	TagDetailsText    = "govuk-details-text"
	TagPanel          = "govuk-panel"
	TagPanelTitle     = "govuk-panel-title"
	TagPanelBody      = "govuk-panel-body"
)

var (
	detailsSchema = &govuk.Schema{
		Tag: TagDetails,
		Slots: govuk.Sequence([]govuk.Slot{
			{Name: SlotSummary, Tag: TagDetailsSummary},
			{Name: SlotText, Tag: TagDetailsText},
		}),
	}
	panelSchema = &govuk.Schema{
		Tag: TagPanel,
		Slots: govuk.Sequence([]govuk.Slot{
			{Name: SlotTitle, Tag: TagPanelTitle},
			{Name: SlotBody, Tag: TagPanelBody},
		}),
	}
)

// DetailsProps configures a details disclosure.
type DetailsProps struct {
	Open       bool             `attr:"open"`
	Attributes templ.Attributes `attr:",remain"`
}

// Details renders an expandable disclosure. Both DetailsSummary and
// DetailsText are required, in that order.
func Details(p DetailsProps) templ.Component {
	return component(TagDetails, p.process)
}

func (p DetailsProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	ctx := govuk.NewContext(detailsSchema, "")
	if _, err := t.Collect(KeyDetails, ctx, children); err != nil {
		return nil, err
	}
	summary, ok := ctx.Get(SlotSummary)
	if !ok {
		return nil, t.Fail(&govuk.MissingContentError{Element: TagDetails, Part: TagDetailsSummary})
	}
	text, ok := ctx.Get(SlotText)
	if !ok {
		return nil, t.Fail(&govuk.MissingContentError{Element: TagDetails, Part: TagDetailsText})
	}

	attrs := govuk.Attrs("class", "govuk-details").SetBool("open", p.Open).Merge(govuk.FromTempl(p.Attributes))
	return govuk.El("details", attrs,
		govuk.El("summary", govuk.Attrs("class", "govuk-details__summary").Merge(summary.Attrs),
			govuk.El("span", govuk.Attrs("class", "govuk-details__summary-text"), summary.Content)),
		govuk.El("div", govuk.Attrs("class", "govuk-details__text").Merge(text.Attrs), text.Content),
	), nil
}

// DetailsSummaryProps configures the disclosure summary.
type DetailsSummaryProps struct {
	Attributes templ.Attributes `attr:",remain"`
}

// DetailsSummary contributes the always-visible summary.
func DetailsSummary(p DetailsSummaryProps) templ.Component {
	return component(TagDetailsSummary, func(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
		return contributeContent(t, children, KeyDetails, TagDetailsSummary, TagDetails, SlotSummary, p.Attributes)
	})
}

// DetailsTextProps configures the disclosed text.
type DetailsTextProps struct {
	Attributes templ.Attributes `attr:",remain"`
}

// DetailsText contributes the disclosed content, which may hold further
// details components.
func DetailsText(p DetailsTextProps) templ.Component {
	return component(TagDetailsText, p.process)
}

func (p DetailsTextProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	parent, err := t.Require(KeyDetails, TagDetailsText, TagDetails)
	if err != nil {
		return nil, err
	}
	content, err := children(t.Scope(KeyDetails))
	if err != nil {
		return nil, err
	}
	return contribute(t, parent, SlotText, govuk.Contribution{
		Content: content.Trim(),
		Attrs:   govuk.FromTempl(p.Attributes),
	})
}

// PanelProps configures a confirmation panel.
type PanelProps struct {
	HeadingLevel int              `attr:"heading-level"`
	Attributes   templ.Attributes `attr:",remain"`
}

// Panel renders a confirmation panel with a required PanelTitle and an
// optional PanelBody.
func Panel(p PanelProps) templ.Component {
	return component(TagPanel, p.process)
}

func (p PanelProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	ctx := govuk.NewContext(panelSchema, "")
	if _, err := t.Collect(KeyPanel, ctx, children); err != nil {
		return nil, err
	}
	title, ok := ctx.Get(SlotTitle)
	if !ok {
		return nil, t.Fail(&govuk.MissingContentError{Element: TagPanel, Part: TagPanelTitle})
	}
	var body templ.Component
	if c, ok := ctx.Get(SlotBody); ok {
		body = govuk.El("div", govuk.Attrs("class", "govuk-panel__body").Merge(c.Attrs), c.Content)
	}
	level := headingLevel(p.HeadingLevel, 1)
	attrs := govuk.Attrs("class", "govuk-panel govuk-panel--confirmation").Merge(govuk.FromTempl(p.Attributes))
	return govuk.El("div", attrs,
		govuk.El("h"+strconv.Itoa(level), govuk.Attrs("class", "govuk-panel__title").Merge(title.Attrs), title.Content),
		body,
	), nil
}

// PanelTitleProps configures the panel title.
type PanelTitleProps struct {
	Attributes templ.Attributes `attr:",remain"`
}

// PanelTitle contributes the panel heading.
func PanelTitle(p PanelTitleProps) templ.Component {
	return component(TagPanelTitle, func(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
		return contributeContent(t, children, KeyPanel, TagPanelTitle, TagPanel, SlotTitle, p.Attributes)
	})
}

// PanelBodyProps configures the panel body.
type PanelBodyProps struct {
	Attributes templ.Attributes `attr:",remain"`
}

// PanelBody contributes the text under the panel heading.
func PanelBody(p PanelBodyProps) templ.Component {
	return component(TagPanelBody, func(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
		return contributeContent(t, children, KeyPanel, TagPanelBody, TagPanel, SlotBody, p.Attributes)
	})
}
