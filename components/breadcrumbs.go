package components

import (
	"github.com/a-h/templ"
	"github.com/pthm/govuk"
)

const (
	TagBreadcrumbs     = "govuk-breadcrumbs"
	TagBreadcrumbsItem = "govuk-breadcrumbs-item"
)

var breadcrumbsSchema = &govuk.Schema{
	Tag:   TagBreadcrumbs,
	Items: []govuk.ItemKind{{Name: ItemItem, Tag: TagBreadcrumbsItem}},
}

// BreadcrumbsProps configures breadcrumbs.
type BreadcrumbsProps struct {
	CollapseOnMobile bool             `attr:"collapse-on-mobile"`
	Attributes       templ.Attributes `attr:",remain"`
}

// Breadcrumbs renders a trail of links. An item without an href is the
// current page.
func Breadcrumbs(p BreadcrumbsProps) templ.Component {
	return component(TagBreadcrumbs, p.process)
}

func (p BreadcrumbsProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	ctx := govuk.NewContext(breadcrumbsSchema, "")
	if _, err := t.Collect(KeyBreadcrumbs, ctx, children); err != nil {
		return nil, err
	}

	items := ctx.ItemsOf(ItemItem)
	list := make([]templ.Component, len(items))
	for i, item := range items {
		href := govuk.ValueAs[LinkData](item).Href
		if href == "" {
			list[i] = govuk.El("li", govuk.Attrs("class", "govuk-breadcrumbs__list-item", "aria-current", "page"), item.Content)
			continue
		}
		link := govuk.El("a", govuk.Attrs("class", "govuk-breadcrumbs__link", "href", href).Merge(item.Attrs), item.Content)
		list[i] = govuk.El("li", govuk.Attrs("class", "govuk-breadcrumbs__list-item"), link)
	}

	attrs := govuk.Attrs("class", "govuk-breadcrumbs", "aria-label", "Breadcrumb")
	if p.CollapseOnMobile {
		attrs = attrs.AddClass("govuk-breadcrumbs--collapse-on-mobile")
	}
	return govuk.El("nav", attrs.Merge(govuk.FromTempl(p.Attributes)),
		govuk.El("ol", govuk.Attrs("class", "govuk-breadcrumbs__list"), list...),
	), nil
}

// BreadcrumbsItemProps configures a breadcrumb.
type BreadcrumbsItemProps struct {
	Href       string           `attr:"href"`
	Attributes templ.Attributes `attr:",remain"`
}

// BreadcrumbsItem contributes a breadcrumb. It must have content.
func BreadcrumbsItem(p BreadcrumbsItemProps) templ.Component {
	return component(TagBreadcrumbsItem, p.process)
}

func (p BreadcrumbsItemProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	parent, err := t.Require(KeyBreadcrumbs, TagBreadcrumbsItem, TagBreadcrumbs)
	if err != nil {
		return nil, err
	}
	content, err := children(t)
	if err != nil {
		return nil, err
	}
	if content.IsEmpty() {
		return nil, t.Fail(&govuk.MissingContentError{Element: TagBreadcrumbsItem})
	}
	return appendItem(t, parent, ItemItem, govuk.Contribution{
		Content: content.Trim(),
		Attrs:   govuk.FromTempl(p.Attributes),
		Value:   LinkData{Href: p.Href},
	})
}
