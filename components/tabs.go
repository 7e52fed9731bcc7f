package components

import (
	"github.com/a-h/templ"
	"github.com/pthm/govuk"
)

const (
	TagTabs     = "govuk-tabs"
	TagTabsItem = "govuk-tabs-item"
)

var tabsSchema = &govuk.Schema{
	Tag:   TagTabs,
	Items: []govuk.ItemKind{{Name: ItemItem, Tag: TagTabsItem, Identified: true, RequireID: true}},
}

// TabsItemData is the metadata of a tab.
type TabsItemData struct {
	Label string
}

// TabsProps configures tabs.
type TabsProps struct {
	ID string `attr:"id"`
	// IDPrefix is the prefix panel ids are derived from. Without it every
	// TabsItem needs an id.
	IDPrefix   string           `attr:"id-prefix"`
	Title      string           `attr:"title"`
	Attributes templ.Attributes `attr:",remain"`
}

// Tabs renders tabbed panels. The first panel is selected.
func Tabs(p TabsProps) templ.Component {
	return component(TagTabs, p.process)
}

func (p TabsProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	ctx := govuk.NewContext(tabsSchema, p.IDPrefix)
	if _, err := t.Collect(KeyTabs, ctx, children); err != nil {
		return nil, err
	}

	items := ctx.ItemsOf(ItemItem)
	tabs := make([]templ.Component, len(items))
	panels := make([]templ.Component, len(items))
	for i, item := range items {
		label := govuk.ValueAs[TabsItemData](item).Label
		li := govuk.Attrs("class", "govuk-tabs__list-item")
		panel := govuk.Attrs("class", "govuk-tabs__panel", "id", item.ID)
		if i == 0 {
			li = li.AddClass("govuk-tabs__list-item--selected")
		} else {
			panel = panel.AddClass("govuk-tabs__panel--hidden")
		}
		tabs[i] = govuk.El("li", li, govuk.El("a", govuk.Attrs("class", "govuk-tabs__tab", "href", "#"+item.ID), govuk.Text(label)))
		panels[i] = govuk.El("div", panel.Merge(item.Attrs), item.Content)
	}

	title := p.Title
	if title == "" {
		title = "Contents"
	}
	attrs := govuk.Attrs("class", "govuk-tabs", "data-module", "govuk-tabs").
		SetNonEmpty("id", p.ID).
		Merge(govuk.FromTempl(p.Attributes))
	parts := append([]templ.Component{
		govuk.El("h2", govuk.Attrs("class", "govuk-tabs__title"), govuk.Text(title)),
		govuk.El("ul", govuk.Attrs("class", "govuk-tabs__list"), tabs...),
	}, panels...)
	return govuk.El("div", attrs, parts...), nil
}

// TabsItemProps configures a tab.
type TabsItemProps struct {
	ID         string           `attr:"id"`
	Label      string           `attr:"label"`
	Attributes templ.Attributes `attr:",remain"`
}

// TabsItem contributes a tab; its content is the panel.
func TabsItem(p TabsItemProps) templ.Component {
	return component(TagTabsItem, p.process)
}

func (p TabsItemProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	parent, err := t.Require(KeyTabs, TagTabsItem, TagTabs)
	if err != nil {
		return nil, err
	}
	if err := requireAttr(t, TagTabsItem, "label", p.Label); err != nil {
		return nil, err
	}
	content, err := children(t.Scope(KeyTabs))
	if err != nil {
		return nil, err
	}
	return appendItem(t, parent, ItemItem, govuk.Contribution{
		ID:      p.ID,
		Content: content.Trim(),
		Attrs:   govuk.FromTempl(p.Attributes),
		Value:   TabsItemData{Label: p.Label},
	})
}
