package components

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/pthm/govuk"
)

const (
	TagPhaseBanner             = "govuk-phase-banner"
	TagPhaseBannerTag          = "govuk-phase-banner-tag"
	TagNotificationBanner      = "govuk-notification-banner"
	TagNotificationBannerTitle = "govuk-notification-banner-title"
)

var (
	phaseBannerSchema = &govuk.Schema{
		Tag:   TagPhaseBanner,
		Slots: []govuk.Slot{{Name: SlotTag, Tag: TagPhaseBannerTag}},
	}
	notificationBannerSchema = &govuk.Schema{
		Tag:   TagNotificationBanner,
		Slots: []govuk.Slot{{Name: SlotTitle, Tag: TagNotificationBannerTitle}},
	}
)

// PhaseBannerProps configures a phase banner.
type PhaseBannerProps struct {
	Attributes templ.Attributes `attr:",remain"`
}

// PhaseBanner renders a phase banner. A PhaseBannerTag child is required;
// the remaining content is the banner text.
func PhaseBanner(p PhaseBannerProps) templ.Component {
	return component(TagPhaseBanner, p.process)
}

func (p PhaseBannerProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	ctx := govuk.NewContext(phaseBannerSchema, "")
	text, err := t.Collect(KeyPhaseBanner, ctx, children)
	if err != nil {
		return nil, err
	}
	tag, ok := ctx.Get(SlotTag)
	if !ok {
		return nil, t.Fail(&govuk.MissingContentError{Element: TagPhaseBanner, Part: TagPhaseBannerTag})
	}
	return govuk.El("div", govuk.Attrs("class", "govuk-phase-banner").Merge(govuk.FromTempl(p.Attributes)),
		govuk.El("p", govuk.Attrs("class", "govuk-phase-banner__content"),
			govuk.El("strong", govuk.Attrs("class", "govuk-tag govuk-phase-banner__content__tag").Merge(tag.Attrs), tag.Content),
			govuk.El("span", govuk.Attrs("class", "govuk-phase-banner__text"), text.Trim()),
		),
	), nil
}

// PhaseBannerTagProps configures the phase tag.
type PhaseBannerTagProps struct {
	Attributes templ.Attributes `attr:",remain"`
}

// PhaseBannerTag contributes the phase name, such as "Alpha".
func PhaseBannerTag(p PhaseBannerTagProps) templ.Component {
	return component(TagPhaseBannerTag, func(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
		return contributeContent(t, children, KeyPhaseBanner, TagPhaseBannerTag, TagPhaseBanner, SlotTag, p.Attributes)
	})
}

// NotificationBannerProps configures a notification banner.
type NotificationBannerProps struct {
	// Type "success" renders a success banner with role="alert".
	Type         string           `attr:"type"`
	Role         string           `attr:"role"`
	TitleID      string           `attr:"title-id"`
	HeadingLevel int              `attr:"heading-level"`
	Attributes   templ.Attributes `attr:",remain"`
}

// NotificationBanner renders a notification banner. The title defaults to
// "Important", or "Success" for success banners.
func NotificationBanner(p NotificationBannerProps) templ.Component {
	return component(TagNotificationBanner, p.process)
}

func (p NotificationBannerProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	ctx := govuk.NewContext(notificationBannerSchema, "")
	body, err := t.Scope(KeyNotificationBanner).Collect(KeyNotificationBanner, ctx, children)
	if err != nil {
		return nil, err
	}

	success := p.Type == "success"
	title := govuk.Text("Important")
	role := "region"
	if success {
		title, role = govuk.Text("Success"), "alert"
	}
	if p.Role != "" {
		role = p.Role
	}
	var titleAttrs govuk.Attributes
	if c, ok := ctx.Get(SlotTitle); ok {
		title, titleAttrs = c.Content.Or(title), c.Attrs
	}
	titleID := p.TitleID
	if titleID == "" {
		titleID = "govuk-notification-banner-title"
	}

	attrs := govuk.Attrs("class", "govuk-notification-banner", "role", role, "aria-labelledby", titleID, "data-module", "govuk-notification-banner")
	if success {
		attrs = attrs.AddClass("govuk-notification-banner--success")
	}
	return govuk.El("div", attrs.Merge(govuk.FromTempl(p.Attributes)),
		govuk.El("div", govuk.Attrs("class", "govuk-notification-banner__header"),
			govuk.El("h"+strconv.Itoa(headingLevel(p.HeadingLevel, 2)), govuk.Attrs("class", "govuk-notification-banner__title", "id", titleID).Merge(titleAttrs), title),
		),
		govuk.El("div", govuk.Attrs("class", "govuk-notification-banner__content"), body.Trim()),
	), nil
}

// NotificationBannerTitleProps configures the banner title.
type NotificationBannerTitleProps struct {
	Attributes templ.Attributes `attr:",remain"`
}

// NotificationBannerTitle replaces the default banner title.
func NotificationBannerTitle(p NotificationBannerTitleProps) templ.Component {
	return component(TagNotificationBannerTitle, func(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
		return contributeContent(t, children, KeyNotificationBanner, TagNotificationBannerTitle, TagNotificationBanner, SlotTitle, p.Attributes)
	})
}
