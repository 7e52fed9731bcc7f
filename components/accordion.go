package components

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/pthm/govuk"
)

const (
	TagAccordion            = "govuk-accordion"
	TagAccordionItem        = "govuk-accordion-item"
	TagAccordionItemHeading = "govuk-accordion-item-heading"
	TagAccordionItemSummary = "govuk-accordion-item-summary"
)

var (
	accordionSchema = &govuk.Schema{
		Tag:   TagAccordion,
		Items: []govuk.ItemKind{{Name: ItemItem, Tag: TagAccordionItem, Identified: true}},
	}
	accordionItemSchema = &govuk.Schema{
		Tag: TagAccordionItem,
		Slots: govuk.Sequence([]govuk.Slot{
			{Name: SlotHeading, Tag: TagAccordionItemHeading},
			{Name: SlotSummary, Tag: TagAccordionItemSummary},
		}),
	}
)

// AccordionItemData is the metadata of an accordion section.
type AccordionItemData struct {
	Expanded bool
	Heading  govuk.Contribution
	Summary  *govuk.Contribution
}

// AccordionProps configures an accordion.
type AccordionProps struct {
	ID string `attr:"id"`
	// IDPrefix is the prefix section ids are derived from. It defaults to ID.
	IDPrefix     string           `attr:"id-prefix"`
	HeadingLevel int              `attr:"heading-level"`
	Attributes   templ.Attributes `attr:",remain"`
}

// Accordion renders a list of expandable sections.
func Accordion(p AccordionProps) templ.Component {
	return component(TagAccordion, p.process)
}

func (p AccordionProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	if err := requireAttr(t, TagAccordion, "id", p.ID); err != nil {
		return nil, err
	}
	prefix := p.IDPrefix
	if prefix == "" {
		prefix = p.ID
	}
	ctx := govuk.NewContext(accordionSchema, prefix)
	if _, err := t.Collect(KeyAccordion, ctx, children); err != nil {
		return nil, err
	}

	level := headingLevel(p.HeadingLevel, 2)
	items := ctx.ItemsOf(ItemItem)
	sections := make([]templ.Component, len(items))
	for i, item := range items {
		data := govuk.ValueAs[AccordionItemData](item)
		id := item.ID
		if id == "" {
			id = p.ID
		}
		header := []templ.Component{
			govuk.El("h"+strconv.Itoa(level), govuk.Attrs("class", "govuk-accordion__section-heading"),
				govuk.El("span", govuk.Attrs("class", "govuk-accordion__section-button", "id", id+"-heading").Merge(data.Heading.Attrs), data.Heading.Content),
			),
		}
		if data.Summary != nil {
			header = append(header, govuk.El("div",
				govuk.Attrs("class", "govuk-accordion__section-summary govuk-body", "id", id+"-summary").Merge(data.Summary.Attrs),
				data.Summary.Content))
		}
		attrs := govuk.Attrs("class", "govuk-accordion__section")
		if data.Expanded {
			attrs = attrs.AddClass("govuk-accordion__section--expanded")
		}
		sections[i] = govuk.El("div", attrs.Merge(item.Attrs),
			govuk.El("div", govuk.Attrs("class", "govuk-accordion__section-header"), header...),
			govuk.El("div", govuk.Attrs("class", "govuk-accordion__section-content", "id", id+"-content"), item.Content),
		)
	}

	attrs := govuk.Attrs("class", "govuk-accordion", "data-module", "govuk-accordion", "id", p.ID).Merge(govuk.FromTempl(p.Attributes))
	return govuk.El("div", attrs, sections...), nil
}

// AccordionItemProps configures an accordion section.
type AccordionItemProps struct {
	ID         string           `attr:"id"`
	Expanded   bool             `attr:"expanded"`
	Attributes templ.Attributes `attr:",remain"`
}

// AccordionItem contributes a section. AccordionItemHeading is required and
// AccordionItemSummary optional; other content is the section body.
func AccordionItem(p AccordionItemProps) templ.Component {
	return component(TagAccordionItem, p.process)
}

func (p AccordionItemProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	parent, err := t.Require(KeyAccordion, TagAccordionItem, TagAccordion)
	if err != nil {
		return nil, err
	}
	ctx := govuk.NewContext(accordionItemSchema, "")
	body, err := t.Scope(KeyAccordion, KeyAccordionItem).Collect(KeyAccordionItem, ctx, children)
	if err != nil {
		return nil, err
	}
	heading, ok := ctx.Get(SlotHeading)
	if !ok {
		return nil, t.Fail(&govuk.MissingContentError{Element: TagAccordionItem, Part: TagAccordionItemHeading})
	}
	data := AccordionItemData{Expanded: p.Expanded, Heading: heading}
	if c, ok := ctx.Get(SlotSummary); ok {
		data.Summary = &c
	}
	return appendItem(t, parent, ItemItem, govuk.Contribution{
		ID:      p.ID,
		Content: body.Trim(),
		Attrs:   govuk.FromTempl(p.Attributes),
		Value:   data,
	})
}

// AccordionItemHeadingProps configures a section heading.
type AccordionItemHeadingProps struct {
	Attributes templ.Attributes `attr:",remain"`
}

// AccordionItemHeading contributes the heading of the enclosing section.
func AccordionItemHeading(p AccordionItemHeadingProps) templ.Component {
	return component(TagAccordionItemHeading, func(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
		return contributeContent(t, children, KeyAccordionItem, TagAccordionItemHeading, TagAccordionItem, SlotHeading, p.Attributes)
	})
}

// AccordionItemSummaryProps configures a section summary.
type AccordionItemSummaryProps struct {
	Attributes templ.Attributes `attr:",remain"`
}

// AccordionItemSummary contributes the summary line under a section heading.
func AccordionItemSummary(p AccordionItemSummaryProps) templ.Component {
	return component(TagAccordionItemSummary, func(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
		return contributeContent(t, children, KeyAccordionItem, TagAccordionItemSummary, TagAccordionItem, SlotSummary, p.Attributes)
	})
}

func headingLevel(level, fallback int) int {
	if level < 1 || level > 6 {
		return fallback
	}
	return level
}
