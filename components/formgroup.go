package components

import (
	"github.com/a-h/templ"
	"github.com/pthm/govuk"
)

// Tags of the shared form group children.
const (
	TagLabel        = "govuk-label"
	TagHint         = "govuk-hint"
	TagErrorMessage = "govuk-error-message"
	TagValue        = "govuk-value"
)

var formGroupTags = []string{
	TagInput, TagTextarea, TagCharacterCount, TagFileUpload,
	TagSelect, TagRadios, TagCheckboxes, TagDateInput,
}

// LabelData is the metadata of a label contribution.
type LabelData struct {
	IsPageHeading bool
}

// ErrorMessageData is the metadata of an error message contribution.
type ErrorMessageData struct {
	VisuallyHiddenText string
}

// LabelProps configures a form group label.
type LabelProps struct {
	IsPageHeading bool             `attr:"is-page-heading"`
	Attributes    templ.Attributes `attr:",remain"`
}

// Label contributes the label of the enclosing form group.
func Label(p LabelProps) templ.Component {
	return component(TagLabel, p.process)
}

func (p LabelProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	parent, err := t.Require(KeyFormGroup, TagLabel, formGroupTags...)
	if err != nil {
		return nil, err
	}
	content, err := children(t)
	if err != nil {
		return nil, err
	}
	return contribute(t, parent, SlotLabel, govuk.Contribution{
		Tag:     TagLabel,
		Content: content.Trim(),
		Attrs:   govuk.FromTempl(p.Attributes),
		Value:   LabelData{IsPageHeading: p.IsPageHeading},
	})
}

// HintProps configures a hint.
type HintProps struct {
	Attributes templ.Attributes `attr:",remain"`
}

// Hint contributes hint text to the enclosing choice item or, outside one,
// to the enclosing form group.
func Hint(p HintProps) templ.Component {
	return component(TagHint, p.process)
}

func (p HintProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	parent, err := lookupFirst(t, TagHint, append(formGroupTags, TagRadiosItem, TagCheckboxesItem), KeyChoiceItem, KeyFormGroup)
	if err != nil {
		return nil, err
	}
	content, err := children(t)
	if err != nil {
		return nil, err
	}
	return contribute(t, parent, SlotHint, govuk.Contribution{
		Tag:     TagHint,
		Content: content.Trim(),
		Attrs:   govuk.FromTempl(p.Attributes),
	})
}

// ErrorMessageProps configures an error message.
type ErrorMessageProps struct {
	// VisuallyHiddenText replaces the "Error" prefix read by screen readers.
	VisuallyHiddenText string           `attr:"visually-hidden-text"`
	Attributes         templ.Attributes `attr:",remain"`
}

// ErrorMessage contributes an explicit error message to the enclosing form
// group. Without one, the form group falls back to the model state.
func ErrorMessage(p ErrorMessageProps) templ.Component {
	return component(TagErrorMessage, p.process)
}

func (p ErrorMessageProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	parent, err := t.Require(KeyFormGroup, TagErrorMessage, formGroupTags...)
	if err != nil {
		return nil, err
	}
	content, err := children(t)
	if err != nil {
		return nil, err
	}
	return contribute(t, parent, SlotErrorMessage, govuk.Contribution{
		Tag:     TagErrorMessage,
		Content: content.Trim(),
		Attrs:   govuk.FromTempl(p.Attributes),
		Value:   ErrorMessageData{VisuallyHiddenText: p.VisuallyHiddenText},
	})
}

// Value contributes the initial value of a textarea or character count. Its
// content is used as-is; specify it after every other child.
func Value() templ.Component {
	return component(TagValue, processValue)
}

func processValue(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	parent, err := t.Require(KeyFormGroup, TagValue, TagTextarea, TagCharacterCount)
	if err != nil {
		return nil, err
	}
	content, err := children(t)
	if err != nil {
		return nil, err
	}
	return contribute(t, parent, SlotValue, govuk.Contribution{Tag: TagValue, Content: content})
}

// formGroup renders the parts shared by every form group kind once its
// context has been collected.
type formGroup struct {
	t    *govuk.Traversal
	ctx  *govuk.Context
	id   string
	name string
}

func formGroupSchema(tag string, slots []string, items ...govuk.ItemKind) *govuk.Schema {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return &govuk.Schema{
		Tag:   tag,
		Slots: govuk.Sequence(schemaSlots(tag, slots...), names...),
		Items: items,
	}
}

// collectFormGroup registers a form group context and renders children into
// it. The returned content is whatever the children rendered directly.
func collectFormGroup(t *govuk.Traversal, schema *govuk.Schema, idPrefix, id, name string, children govuk.Children) (*formGroup, govuk.Content, error) {
	ctx := govuk.NewContext(schema, idPrefix)
	content, err := t.Collect(KeyFormGroup, ctx, children)
	if err != nil {
		return nil, govuk.Content{}, err
	}
	return &formGroup{t: t, ctx: ctx, id: id, name: name}, content, nil
}

func (fg *formGroup) hintID() string  { return fg.id + "-hint" }
func (fg *formGroup) errorID() string { return fg.id + "-error" }

// label renders the label for the control with id forID, or nil.
func (fg *formGroup) label(forID string, classes ...string) templ.Component {
	c, ok := fg.ctx.Get(SlotLabel)
	if !ok {
		return nil
	}
	attrs := govuk.Attrs("class", "govuk-label").AddClass(classes...).SetNonEmpty("for", forID).Merge(c.Attrs)
	data := govuk.ValueAs[LabelData](c)
	label := govuk.El("label", attrs, c.Content)
	if data.IsPageHeading {
		return govuk.El("h1", govuk.Attrs("class", "govuk-label-wrapper"), label)
	}
	return label
}

// hint renders the hint, or nil.
func (fg *formGroup) hint() templ.Component {
	c, ok := fg.ctx.Get(SlotHint)
	if !ok {
		return nil
	}
	return renderHint(fg.hintID(), c)
}

func renderHint(id string, c govuk.Contribution) templ.Component {
	attrs := govuk.Attrs("class", "govuk-hint", "id", id).Merge(c.Attrs)
	return govuk.El("div", attrs, c.Content)
}

// errorMessage resolves the error for the group: an explicit ErrorMessage
// child wins, then the first model state error for the field name. The
// error is reported to an enclosing form so it can be summarised.
func (fg *formGroup) errorMessage(href string) (templ.Component, bool) {
	opts := fg.t.Options()
	prefix := opts.VisuallyHiddenErrorPrefix

	var content govuk.Content
	var attrs govuk.Attributes
	if c, ok := fg.ctx.Get(SlotErrorMessage); ok {
		content, attrs = c.Content, c.Attrs
		if data := govuk.ValueAs[ErrorMessageData](c); data.VisuallyHiddenText != "" {
			prefix = data.VisuallyHiddenText
		}
	} else if msg, ok := fg.t.ModelState().FirstError(fg.name); ok {
		content = govuk.Text(msg)
	} else {
		return nil, false
	}

	if href == "" {
		href = "#" + fg.id
	}
	reportFormError(fg.t, fg.name, href, content)

	el := govuk.El("p",
		govuk.Attrs("class", "govuk-error-message", "id", fg.errorID()).Merge(attrs),
		govuk.El("span", govuk.Attrs("class", "govuk-visually-hidden"), govuk.Text(prefix+":")),
		govuk.Text(" "),
		content,
	)
	return el, true
}

// describedBy joins the hint and error ids onto extra.
func (fg *formGroup) describedBy(extra string, hasError bool) string {
	out := extra
	if fg.ctx.Has(SlotHint) {
		out = joinNonEmpty(out, fg.hintID())
	}
	if hasError {
		out = joinNonEmpty(out, fg.errorID())
	}
	return out
}

// wrap renders the outer form group div.
func (fg *formGroup) wrap(classes string, hasError bool, children ...templ.Component) govuk.Element {
	attrs := govuk.Attrs("class", "govuk-form-group").AddClass(classes)
	if hasError {
		attrs = attrs.AddClass("govuk-form-group--error")
	}
	return govuk.El("div", attrs, children...)
}

// value returns the explicit value, else the model state value for the field.
func (fg *formGroup) value(explicit string) string {
	if explicit != "" {
		return explicit
	}
	v, _ := fg.t.ModelState().Value(fg.name)
	return v
}
