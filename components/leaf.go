package components

import (
	"github.com/a-h/templ"
	"github.com/pthm/govuk"
)

const (
	TagTag         = "govuk-tag"
	TagBackLink    = "govuk-back-link"
	TagSkipLink    = "govuk-skip-link"
	TagInsetText   = "govuk-inset-text"
	TagWarningText = "govuk-warning-text"
	TagButton      = "govuk-button"
	TagButtonLink  = "govuk-button-link"
)

// TagProps configures a tag.
type TagProps struct {
	Attributes templ.Attributes `attr:",remain"`
}

// Tag renders a status tag.
func Tag(p TagProps) templ.Component {
	return component(TagTag, func(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
		content, err := children(t)
		if err != nil {
			return nil, err
		}
		return govuk.El("strong", govuk.Attrs("class", "govuk-tag").Merge(govuk.FromTempl(p.Attributes)), content.Trim()), nil
	})
}

// BackLinkProps configures a back link.
type BackLinkProps struct {
	Href       string           `attr:"href"`
	Attributes templ.Attributes `attr:",remain"`
}

// BackLink renders a back link. Its content defaults to "Back".
func BackLink(p BackLinkProps) templ.Component {
	return component(TagBackLink, func(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
		content, err := children(t)
		if err != nil {
			return nil, err
		}
		attrs := govuk.Attrs("class", "govuk-back-link").SetNonEmpty("href", p.Href).Merge(govuk.FromTempl(p.Attributes))
		return govuk.El("a", attrs, content.Trim().Or(govuk.Text("Back"))), nil
	})
}

// SkipLinkProps configures a skip link.
type SkipLinkProps struct {
	// Href defaults to "#main-content".
	Href       string           `attr:"href"`
	Attributes templ.Attributes `attr:",remain"`
}

// SkipLink renders a skip link. Its content defaults to "Skip to main
// content".
func SkipLink(p SkipLinkProps) templ.Component {
	return component(TagSkipLink, func(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
		content, err := children(t)
		if err != nil {
			return nil, err
		}
		href := p.Href
		if href == "" {
			href = "#main-content"
		}
		attrs := govuk.Attrs("class", "govuk-skip-link", "href", href, "data-module", "govuk-skip-link").Merge(govuk.FromTempl(p.Attributes))
		return govuk.El("a", attrs, content.Trim().Or(govuk.Text("Skip to main content"))), nil
	})
}

// InsetTextProps configures inset text.
type InsetTextProps struct {
	ID         string           `attr:"id"`
	Attributes templ.Attributes `attr:",remain"`
}

// InsetText renders indented text.
func InsetText(p InsetTextProps) templ.Component {
	return component(TagInsetText, func(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
		content, err := children(t)
		if err != nil {
			return nil, err
		}
		attrs := govuk.Attrs("class", "govuk-inset-text").SetNonEmpty("id", p.ID).Merge(govuk.FromTempl(p.Attributes))
		return govuk.El("div", attrs, content.Trim()), nil
	})
}

// WarningTextProps configures warning text.
type WarningTextProps struct {
	// IconFallbackText is read by screen readers in place of the icon.
	IconFallbackText string           `attr:"icon-fallback-text"`
	Attributes       templ.Attributes `attr:",remain"`
}

// WarningText renders a warning with an icon. IconFallbackText is required.
func WarningText(p WarningTextProps) templ.Component {
	return component(TagWarningText, func(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
		if err := requireAttr(t, TagWarningText, "icon-fallback-text", p.IconFallbackText); err != nil {
			return nil, err
		}
		content, err := children(t)
		if err != nil {
			return nil, err
		}
		return govuk.El("div", govuk.Attrs("class", "govuk-warning-text").Merge(govuk.FromTempl(p.Attributes)),
			govuk.El("span", govuk.Attrs("class", "govuk-warning-text__icon", "aria-hidden", "true"), govuk.Text("!")),
			govuk.El("strong", govuk.Attrs("class", "govuk-warning-text__text"),
				govuk.El("span", govuk.Attrs("class", "govuk-visually-hidden"), govuk.Text(p.IconFallbackText)),
				govuk.Text(" "),
				content.Trim(),
			),
		), nil
	})
}

// ButtonProps configures a button.
type ButtonProps struct {
	// Type defaults to "submit".
	Type               string           `attr:"type"`
	Name               string           `attr:"name"`
	Value              string           `attr:"value"`
	Disabled           bool             `attr:"disabled"`
	IsStartButton      bool             `attr:"is-start-button"`
	PreventDoubleClick bool             `attr:"prevent-double-click"`
	Attributes         templ.Attributes `attr:",remain"`
}

// Button renders a <button>.
func Button(p ButtonProps) templ.Component {
	return component(TagButton, func(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
		content, err := children(t)
		if err != nil {
			return nil, err
		}
		typ := p.Type
		if typ == "" {
			typ = "submit"
		}
		attrs := buttonAttrs(p.IsStartButton, p.Disabled).
			Set("type", typ).
			SetNonEmpty("name", p.Name).
			SetNonEmpty("value", p.Value).
			SetBool("disabled", p.Disabled)
		if p.Disabled {
			attrs = attrs.Set("aria-disabled", "true")
		}
		if p.PreventDoubleClick {
			attrs = attrs.Set("data-prevent-double-click", "true")
		}
		attrs = attrs.Merge(govuk.FromTempl(p.Attributes))
		return govuk.El("button", attrs, content.Trim(), startIcon(p.IsStartButton)), nil
	})
}

// ButtonLinkProps configures a link styled as a button.
type ButtonLinkProps struct {
	Href          string           `attr:"href"`
	IsStartButton bool             `attr:"is-start-button"`
	Disabled      bool             `attr:"disabled"`
	Attributes    templ.Attributes `attr:",remain"`
}

// ButtonLink renders an <a> styled as a button.
func ButtonLink(p ButtonLinkProps) templ.Component {
	return component(TagButtonLink, func(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
		if err := requireAttr(t, TagButtonLink, "href", p.Href); err != nil {
			return nil, err
		}
		content, err := children(t)
		if err != nil {
			return nil, err
		}
		attrs := buttonAttrs(p.IsStartButton, p.Disabled).
			Set("href", p.Href).
			Set("role", "button").
			Set("draggable", "false").
			Merge(govuk.FromTempl(p.Attributes))
		return govuk.El("a", attrs, content.Trim(), startIcon(p.IsStartButton)), nil
	})
}

func buttonAttrs(start, disabled bool) govuk.Attributes {
	attrs := govuk.Attrs("class", "govuk-button", "data-module", "govuk-button")
	if start {
		attrs = attrs.AddClass("govuk-button--start")
	}
	if disabled {
		attrs = attrs.AddClass("govuk-button--disabled")
	}
	return attrs
}

func startIcon(start bool) templ.Component {
	if !start {
		return nil
	}
	return govuk.TrustedHTML(`<svg class="govuk-button__start-icon" xmlns="http://www.w3.org/2000/svg" width="17.5" height="19" viewBox="0 0 33 40" aria-hidden="true" focusable="false"><path fill="currentColor" d="M0 0h13l20 20-20 20H0l20-20z"/></svg>`)
}
