package components

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/pthm/govuk"
)

const (
	TagRadios            = "govuk-radios"
	TagRadiosItem        = "govuk-radios-item"
	TagRadiosDivider     = "govuk-radios-divider"
	TagCheckboxes        = "govuk-checkboxes"
	TagCheckboxesItem    = "govuk-checkboxes-item"
	TagCheckboxesDivider = "govuk-checkboxes-divider"
	TagConditional       = "govuk-conditional"
)

var (
	radiosSchema     = choicesSchema(TagRadios, TagRadiosItem, TagRadiosDivider)
	checkboxesSchema = choicesSchema(TagCheckboxes, TagCheckboxesItem, TagCheckboxesDivider)

	radiosItemSchema     = choiceItemSchema(TagRadiosItem)
	checkboxesItemSchema = choiceItemSchema(TagCheckboxesItem)
)

func choicesSchema(tag, itemTag, dividerTag string) *govuk.Schema {
	return formGroupSchema(tag, []string{SlotFieldset, SlotHint, SlotErrorMessage},
		govuk.ItemKind{Name: ItemItem, Tag: itemTag, Identified: true},
		govuk.ItemKind{Name: ItemDivider, Tag: dividerTag},
	)
}

func choiceItemSchema(tag string) *govuk.Schema {
	return &govuk.Schema{
		Tag: tag,
		Slots: govuk.Sequence([]govuk.Slot{
			{Name: SlotHint, Tag: TagHint},
			{Name: SlotConditional, Tag: TagConditional},
		}),
	}
}

// ChoiceItemData is the metadata of a radios or checkboxes item.
type ChoiceItemData struct {
	Name        string
	Value       string
	Checked     bool
	Disabled    bool
	Exclusive   bool
	Hint        *govuk.Contribution
	Conditional *govuk.Contribution
}

// ChoicesProps configures a radios or checkboxes group.
type ChoicesProps struct {
	Name string `attr:"name"`
	// IDPrefix is the prefix item ids are derived from. It defaults to Name.
	IDPrefix string `attr:"id-prefix"`
	// Value is the checked value. Checkboxes accept a comma-separated list.
	Value      string           `attr:"value"`
	Class      string           `attr:"class"`
	Attributes templ.Attributes `attr:",remain"`
}

// Radios renders a group of radio buttons. Children are an optional
// RadiosFieldset, Hint and ErrorMessage, then RadiosItem and Divider
// children in display order.
func Radios(p ChoicesProps) templ.Component {
	return component(TagRadios, func(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
		return processChoices(t, children, p, choiceKind{tag: TagRadios, class: "govuk-radios", inputType: "radio", schema: radiosSchema})
	})
}

// Checkboxes renders a group of checkboxes.
func Checkboxes(p ChoicesProps) templ.Component {
	return component(TagCheckboxes, func(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
		return processChoices(t, children, p, choiceKind{tag: TagCheckboxes, class: "govuk-checkboxes", inputType: "checkbox", schema: checkboxesSchema})
	})
}

type choiceKind struct {
	tag       string
	class     string
	inputType string
	schema    *govuk.Schema
}

func processChoices(t *govuk.Traversal, children govuk.Children, p ChoicesProps, kind choiceKind) (templ.Component, error) {
	if err := requireAttr(t, kind.tag, "name", p.Name); err != nil {
		return nil, err
	}
	prefix := p.IDPrefix
	if prefix == "" {
		prefix = p.Name
	}
	fg, _, err := collectFormGroup(t, kind.schema, prefix, prefix, p.Name, children)
	if err != nil {
		return nil, err
	}

	items := fg.ctx.Items()
	href := ""
	for _, item := range items {
		if item.Kind == ItemItem {
			href = "#" + itemID(fg, item)
			break
		}
	}
	errMsg, hasError := fg.errorMessage(href)

	current := fg.value(p.Value)
	checked := map[string]bool{}
	if current != "" {
		if kind.inputType == "checkbox" {
			for _, v := range strings.Split(current, ",") {
				checked[strings.TrimSpace(v)] = true
			}
		} else {
			checked[current] = true
		}
	}

	rendered := make([]templ.Component, 0, len(items))
	conditional := false
	for _, item := range items {
		if item.Kind == ItemDivider {
			rendered = append(rendered, govuk.El("div", govuk.Attrs("class", kind.class+"__divider").Merge(item.Attrs), item.Content.Or(govuk.Text("or"))))
			continue
		}
		data := govuk.ValueAs[ChoiceItemData](item)
		if data.Conditional != nil {
			conditional = true
		}
		rendered = append(rendered, renderChoiceItem(fg, kind, item, data, checked[data.Value])...)
	}

	group := govuk.Attrs("class", kind.class, "data-module", kind.class).AddClass(p.Class).Merge(govuk.FromTempl(p.Attributes))
	if conditional {
		group = group.AddClass(kind.class + "--conditional")
	}
	body := []templ.Component{fg.hint(), errMsg, govuk.El("div", group, rendered...)}

	if c, ok := fg.ctx.Get(SlotFieldset); ok {
		data := govuk.ValueAs[FieldsetData](c)
		fieldset := renderFieldset(data.Legend, fg.describedBy(data.DescribedBy, hasError), data.Role, c.Attrs, body...)
		return fg.wrap("", hasError, fieldset), nil
	}
	return fg.wrap("", hasError, body...), nil
}

func itemID(fg *formGroup, item govuk.Contribution) string {
	if item.ID != "" {
		return item.ID
	}
	return fg.id
}

func renderChoiceItem(fg *formGroup, kind choiceKind, item govuk.Contribution, data ChoiceItemData, fromState bool) []templ.Component {
	id := itemID(fg, item)
	name := data.Name
	if name == "" {
		name = fg.name
	}
	conditionalID := "conditional-" + id

	input := govuk.Attrs("class", kind.class+"__input", "id", id, "name", name, "type", kind.inputType, "value", data.Value).
		SetBool("checked", data.Checked || fromState).
		SetBool("disabled", data.Disabled).
		Merge(item.Attrs)
	if data.Conditional != nil {
		input = input.Set("aria-controls", conditionalID)
	}
	if data.Hint != nil {
		input = input.Set("aria-describedby", id+"-item-hint")
	}
	if data.Exclusive {
		input = input.Set("data-behaviour", "exclusive")
	}

	parts := []templ.Component{
		govuk.VoidEl("input", input),
		govuk.El("label", govuk.Attrs("class", "govuk-label "+kind.class+"__label", "for", id), item.Content),
	}
	if data.Hint != nil {
		attrs := govuk.Attrs("class", "govuk-hint "+kind.class+"__hint", "id", id+"-item-hint").Merge(data.Hint.Attrs)
		parts = append(parts, govuk.El("div", attrs, data.Hint.Content))
	}
	out := []templ.Component{govuk.El("div", govuk.Attrs("class", kind.class+"__item"), parts...)}

	if data.Conditional != nil {
		attrs := govuk.Attrs("class", kind.class+"__conditional", "id", conditionalID)
		if !(data.Checked || fromState) {
			attrs = attrs.AddClass(kind.class + "__conditional--hidden")
		}
		out = append(out, govuk.El("div", attrs.Merge(data.Conditional.Attrs), data.Conditional.Content))
	}
	return out
}

// ChoiceItemProps configures a radios or checkboxes item.
type ChoiceItemProps struct {
	ID    string `attr:"id"`
	Value string `attr:"value"`
	// Name overrides the group name. Only checkboxes use it.
	Name     string `attr:"name"`
	Checked  bool   `attr:"checked"`
	Disabled bool   `attr:"disabled"`
	// Exclusive unchecks every other checkbox when this one is checked.
	Exclusive  bool             `attr:"exclusive"`
	Attributes templ.Attributes `attr:",remain"`
}

// RadiosItem contributes a radio button. Its content is the label; Hint and
// Conditional may appear as children.
func RadiosItem(p ChoiceItemProps) templ.Component {
	return component(TagRadiosItem, func(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
		return processChoiceItem(t, children, p, TagRadiosItem, TagRadios, radiosItemSchema)
	})
}

// CheckboxesItem contributes a checkbox.
func CheckboxesItem(p ChoiceItemProps) templ.Component {
	return component(TagCheckboxesItem, func(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
		return processChoiceItem(t, children, p, TagCheckboxesItem, TagCheckboxes, checkboxesItemSchema)
	})
}

func processChoiceItem(t *govuk.Traversal, children govuk.Children, p ChoiceItemProps, tag, parentTag string, schema *govuk.Schema) (templ.Component, error) {
	parent, err := requireParentTag(t, KeyFormGroup, tag, parentTag)
	if err != nil {
		return nil, err
	}
	ctx := govuk.NewContext(schema, "")
	content, err := t.Collect(KeyChoiceItem, ctx, children)
	if err != nil {
		return nil, err
	}
	data := ChoiceItemData{
		Name:      p.Name,
		Value:     p.Value,
		Checked:   p.Checked,
		Disabled:  p.Disabled,
		Exclusive: p.Exclusive,
	}
	if c, ok := ctx.Get(SlotHint); ok {
		data.Hint = &c
	}
	if c, ok := ctx.Get(SlotConditional); ok {
		data.Conditional = &c
	}
	return appendItem(t, parent, ItemItem, govuk.Contribution{
		Tag:     tag,
		ID:      p.ID,
		Content: content.Trim(),
		Attrs:   govuk.FromTempl(p.Attributes),
		Value:   data,
	})
}

// requireParentTag is Traversal.Require restricted to parents with a given
// tag, for keys shared by several composites.
func requireParentTag(t *govuk.Traversal, key govuk.ContextKey, element string, parentTags ...string) (*govuk.Context, error) {
	parent, err := t.Require(key, element, parentTags...)
	if err != nil {
		return nil, err
	}
	for _, tag := range parentTags {
		if parent.Tag() == tag {
			return parent, nil
		}
	}
	return nil, t.Fail(&govuk.MissingParentContextError{Element: element, Parents: parentTags})
}

// DividerProps configures a divider between choice items.
type DividerProps struct {
	Attributes templ.Attributes `attr:",remain"`
}

// RadiosDivider separates radio items. Its content defaults to "or".
func RadiosDivider(p DividerProps) templ.Component {
	return component(TagRadiosDivider, func(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
		return processDivider(t, children, p, TagRadiosDivider, TagRadios)
	})
}

// CheckboxesDivider separates checkbox items.
func CheckboxesDivider(p DividerProps) templ.Component {
	return component(TagCheckboxesDivider, func(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
		return processDivider(t, children, p, TagCheckboxesDivider, TagCheckboxes)
	})
}

func processDivider(t *govuk.Traversal, children govuk.Children, p DividerProps, tag, parentTag string) (templ.Component, error) {
	parent, err := requireParentTag(t, KeyFormGroup, tag, parentTag)
	if err != nil {
		return nil, err
	}
	content, err := children(t)
	if err != nil {
		return nil, err
	}
	return appendItem(t, parent, ItemDivider, govuk.Contribution{
		Tag:     tag,
		Content: content.Trim(),
		Attrs:   govuk.FromTempl(p.Attributes),
	})
}

// ConditionalProps configures conditionally revealed content.
type ConditionalProps struct {
	Attributes templ.Attributes `attr:",remain"`
}

// Conditional contributes content revealed when the enclosing item is
// checked. The content may hold further form groups, which report their
// errors to the enclosing form as usual.
func Conditional(p ConditionalProps) templ.Component {
	return component(TagConditional, p.process)
}

func (p ConditionalProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	parent, err := t.Require(KeyChoiceItem, TagConditional, TagRadiosItem, TagCheckboxesItem)
	if err != nil {
		return nil, err
	}
	content, err := children(t.Scope(KeyFormGroup, KeyChoiceItem, KeyFieldset))
	if err != nil {
		return nil, err
	}
	return contribute(t, parent, SlotConditional, govuk.Contribution{
		Content: content.Trim(),
		Attrs:   govuk.FromTempl(p.Attributes),
	})
}
