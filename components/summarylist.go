package components

import (
	"github.com/a-h/templ"
	"github.com/pthm/govuk"
)

const (
	TagSummaryList          = "govuk-summary-list"
	TagSummaryListRow       = "govuk-summary-list-row"
	TagSummaryListRowKey    = "govuk-summary-list-row-key"
	TagSummaryListRowValue  = "govuk-summary-list-row-value"
	TagSummaryListRowAction = "govuk-summary-list-row-action"
)

var (
	summaryListSchema = &govuk.Schema{
		Tag:   TagSummaryList,
		Items: []govuk.ItemKind{{Name: ItemRow, Tag: TagSummaryListRow}},
	}
	summaryListRowSchema = &govuk.Schema{
		Tag: TagSummaryListRow,
		Slots: govuk.Sequence([]govuk.Slot{
			{Name: SlotKey, Tag: TagSummaryListRowKey},
			{Name: SlotValue, Tag: TagSummaryListRowValue},
		}, ItemAction),
		Items: []govuk.ItemKind{{Name: ItemAction, Tag: TagSummaryListRowAction}},
	}
)

// SummaryRowData is the metadata of a summary list row.
type SummaryRowData struct {
	Key     govuk.Contribution
	Value   *govuk.Contribution
	Actions []govuk.Contribution
}

// ActionData is the metadata of a row action.
type ActionData struct {
	Href               string
	VisuallyHiddenText string
}

// SummaryListProps configures a summary list.
type SummaryListProps struct {
	NoBorder   bool             `attr:"no-border"`
	Attributes templ.Attributes `attr:",remain"`
}

// SummaryList renders key/value rows with optional actions.
func SummaryList(p SummaryListProps) templ.Component {
	return component(TagSummaryList, p.process)
}

func (p SummaryListProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	ctx := govuk.NewContext(summaryListSchema, "")
	if _, err := t.Collect(KeySummaryList, ctx, children); err != nil {
		return nil, err
	}

	rows := ctx.ItemsOf(ItemRow)
	anyActions := false
	for _, row := range rows {
		if len(govuk.ValueAs[SummaryRowData](row).Actions) > 0 {
			anyActions = true
			break
		}
	}

	rendered := make([]templ.Component, len(rows))
	for i, row := range rows {
		rendered[i] = renderSummaryRow(row, anyActions)
	}

	attrs := govuk.Attrs("class", "govuk-summary-list")
	if p.NoBorder {
		attrs = attrs.AddClass("govuk-summary-list--no-border")
	}
	return govuk.El("dl", attrs.Merge(govuk.FromTempl(p.Attributes)), rendered...), nil
}

func renderSummaryRow(row govuk.Contribution, anyActions bool) templ.Component {
	data := govuk.ValueAs[SummaryRowData](row)
	attrs := govuk.Attrs("class", "govuk-summary-list__row")
	if anyActions && len(data.Actions) == 0 {
		attrs = attrs.AddClass("govuk-summary-list__row--no-actions")
	}

	parts := []templ.Component{
		govuk.El("dt", govuk.Attrs("class", "govuk-summary-list__key").Merge(data.Key.Attrs), data.Key.Content),
	}
	value := govuk.El("dd", govuk.Attrs("class", "govuk-summary-list__value"))
	if data.Value != nil {
		value.Attrs = value.Attrs.Merge(data.Value.Attrs)
		value.Children = []templ.Component{data.Value.Content}
	}
	parts = append(parts, value)

	switch len(data.Actions) {
	case 0:
	case 1:
		parts = append(parts, govuk.El("dd", govuk.Attrs("class", "govuk-summary-list__actions"), renderAction(data.Actions[0])))
	default:
		list := make([]templ.Component, len(data.Actions))
		for i, action := range data.Actions {
			list[i] = govuk.El("li", govuk.Attrs("class", "govuk-summary-list__actions-list-item"), renderAction(action))
		}
		parts = append(parts, govuk.El("dd", govuk.Attrs("class", "govuk-summary-list__actions"),
			govuk.El("ul", govuk.Attrs("class", "govuk-summary-list__actions-list"), list...)))
	}
	return govuk.El("div", attrs.Merge(row.Attrs), parts...)
}

func renderAction(c govuk.Contribution) templ.Component {
	data := govuk.ValueAs[ActionData](c)
	var hidden templ.Component
	if data.VisuallyHiddenText != "" {
		hidden = govuk.El("span", govuk.Attrs("class", "govuk-visually-hidden"), govuk.Text(" "+data.VisuallyHiddenText))
	}
	return govuk.El("a", govuk.Attrs("class", "govuk-link", "href", data.Href).Merge(c.Attrs), c.Content, hidden)
}

// SummaryListRowProps configures a row.
type SummaryListRowProps struct {
	Attributes templ.Attributes `attr:",remain"`
}

// SummaryListRow contributes a row. Children are SummaryListRowKey,
// SummaryListRowValue and any SummaryListRowAction, in that order.
func SummaryListRow(p SummaryListRowProps) templ.Component {
	return component(TagSummaryListRow, p.process)
}

func (p SummaryListRowProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	parent, err := t.Require(KeySummaryList, TagSummaryListRow, TagSummaryList)
	if err != nil {
		return nil, err
	}
	ctx := govuk.NewContext(summaryListRowSchema, "")
	if _, err := t.Collect(KeySummaryListRow, ctx, children); err != nil {
		return nil, err
	}
	key, ok := ctx.Get(SlotKey)
	if !ok {
		return nil, t.Fail(&govuk.MissingContentError{Element: TagSummaryListRow, Part: TagSummaryListRowKey})
	}
	data := SummaryRowData{Key: key, Actions: ctx.ItemsOf(ItemAction)}
	if c, ok := ctx.Get(SlotValue); ok {
		data.Value = &c
	}
	return appendItem(t, parent, ItemRow, govuk.Contribution{
		Attrs: govuk.FromTempl(p.Attributes),
		Value: data,
	})
}

// SummaryListRowKeyProps configures a row key.
type SummaryListRowKeyProps struct {
	Attributes templ.Attributes `attr:",remain"`
}

// SummaryListRowKey contributes the key of the enclosing row.
func SummaryListRowKey(p SummaryListRowKeyProps) templ.Component {
	return component(TagSummaryListRowKey, func(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
		return contributeContent(t, children, KeySummaryListRow, TagSummaryListRowKey, TagSummaryListRow, SlotKey, p.Attributes)
	})
}

// SummaryListRowValueProps configures a row value.
type SummaryListRowValueProps struct {
	Attributes templ.Attributes `attr:",remain"`
}

// SummaryListRowValue contributes the value of the enclosing row. The value
// may contain another summary list.
func SummaryListRowValue(p SummaryListRowValueProps) templ.Component {
	return component(TagSummaryListRowValue, p.process)
}

func (p SummaryListRowValueProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	parent, err := t.Require(KeySummaryListRow, TagSummaryListRowValue, TagSummaryListRow)
	if err != nil {
		return nil, err
	}
	content, err := children(t.Scope(KeySummaryList, KeySummaryListRow))
	if err != nil {
		return nil, err
	}
	return contribute(t, parent, SlotValue, govuk.Contribution{
		Content: content.Trim(),
		Attrs:   govuk.FromTempl(p.Attributes),
	})
}

// SummaryListRowActionProps configures a row action.
type SummaryListRowActionProps struct {
	Href string `attr:"href"`
	// VisuallyHiddenText completes the link text for screen readers,
	// as in "Change" + " name".
	VisuallyHiddenText string           `attr:"visually-hidden-text"`
	Attributes         templ.Attributes `attr:",remain"`
}

// SummaryListRowAction contributes an action link to the enclosing row.
func SummaryListRowAction(p SummaryListRowActionProps) templ.Component {
	return component(TagSummaryListRowAction, p.process)
}

func (p SummaryListRowActionProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	parent, err := t.Require(KeySummaryListRow, TagSummaryListRowAction, TagSummaryListRow)
	if err != nil {
		return nil, err
	}
	if err := requireAttr(t, TagSummaryListRowAction, "href", p.Href); err != nil {
		return nil, err
	}
	content, err := children(t)
	if err != nil {
		return nil, err
	}
	if content.IsEmpty() {
		return nil, t.Fail(&govuk.MissingContentError{Element: TagSummaryListRowAction})
	}
	return appendItem(t, parent, ItemAction, govuk.Contribution{
		Content: content.Trim(),
		Attrs:   govuk.FromTempl(p.Attributes),
		Value:   ActionData{Href: p.Href, VisuallyHiddenText: p.VisuallyHiddenText},
	})
}
