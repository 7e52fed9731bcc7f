package components

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/pthm/govuk"
)

const (
	TagTextarea       = "govuk-textarea"
	TagCharacterCount = "govuk-character-count"
)

var (
	textareaSchema       = formGroupSchema(TagTextarea, []string{SlotLabel, SlotHint, SlotErrorMessage, SlotValue})
	characterCountSchema = formGroupSchema(TagCharacterCount, []string{SlotLabel, SlotHint, SlotErrorMessage, SlotValue})
)

// TextareaProps configures a textarea.
type TextareaProps struct {
	ID           string           `attr:"id"`
	Name         string           `attr:"name"`
	Rows         int              `attr:"rows"`
	Autocomplete string           `attr:"autocomplete"`
	Disabled     bool             `attr:"disabled"`
	DescribedBy  string           `attr:"described-by"`
	Attributes   templ.Attributes `attr:",remain"`
}

// Textarea renders a multi-line text form group. Its initial value comes
// from a Value child or, failing that, the model state.
func Textarea(p TextareaProps) templ.Component {
	return component(TagTextarea, p.process)
}

func (p TextareaProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	if err := requireAttr(t, TagTextarea, "name", p.Name); err != nil {
		return nil, err
	}
	id := p.ID
	if id == "" {
		id = p.Name
	}
	fg, _, err := collectFormGroup(t, textareaSchema, "", id, p.Name, children)
	if err != nil {
		return nil, err
	}
	if !fg.ctx.Has(SlotLabel) {
		return nil, t.Fail(&govuk.MissingContentError{Element: TagTextarea, Part: TagTextarea + "-label"})
	}
	errMsg, hasError := fg.errorMessage("")
	area := textareaControl(fg, id, p.Name, p.Rows, p.Autocomplete, p.Disabled, fg.describedBy(p.DescribedBy, hasError), hasError, p.Attributes)
	return fg.wrap("", hasError, fg.label(id), fg.hint(), errMsg, area), nil
}

func textareaControl(fg *formGroup, id, name string, rows int, autocomplete string, disabled bool, describedBy string, hasError bool, extra templ.Attributes) govuk.Element {
	if rows <= 0 {
		rows = 5
	}
	attrs := govuk.Attrs("class", "govuk-textarea", "id", id, "name", name, "rows", strconv.Itoa(rows)).
		SetNonEmpty("autocomplete", autocomplete).
		SetNonEmpty("aria-describedby", describedBy).
		SetBool("disabled", disabled)
	if hasError {
		attrs = attrs.AddClass("govuk-textarea--error")
	}
	attrs = attrs.Merge(govuk.FromTempl(extra))

	var value govuk.Content
	if c, ok := fg.ctx.Get(SlotValue); ok {
		value = c.Content
	} else {
		value = govuk.Text(fg.value(""))
	}
	return govuk.El("textarea", attrs, value)
}

// CharacterCountProps configures a character count. Exactly one of
// MaxLength and MaxWords is expected.
type CharacterCountProps struct {
	ID          string           `attr:"id"`
	Name        string           `attr:"name"`
	Rows        int              `attr:"rows"`
	MaxLength   int              `attr:"max-length"`
	MaxWords    int              `attr:"max-words"`
	Threshold   int              `attr:"threshold"`
	Disabled    bool             `attr:"disabled"`
	DescribedBy string           `attr:"described-by"`
	Attributes  templ.Attributes `attr:",remain"`
}

// CharacterCount renders a textarea with a live length counter.
func CharacterCount(p CharacterCountProps) templ.Component {
	return component(TagCharacterCount, p.process)
}

func (p CharacterCountProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	if err := requireAttr(t, TagCharacterCount, "name", p.Name); err != nil {
		return nil, err
	}
	if p.MaxLength <= 0 && p.MaxWords <= 0 {
		return nil, t.Fail(&govuk.MissingRequiredAttributeError{Element: TagCharacterCount, Attribute: "max-length"})
	}
	id := p.ID
	if id == "" {
		id = p.Name
	}
	fg, _, err := collectFormGroup(t, characterCountSchema, "", id, p.Name, children)
	if err != nil {
		return nil, err
	}
	if !fg.ctx.Has(SlotLabel) {
		return nil, t.Fail(&govuk.MissingContentError{Element: TagCharacterCount, Part: TagCharacterCount + "-label"})
	}
	errMsg, hasError := fg.errorMessage("")
	infoID := id + "-info"
	describedBy := joinNonEmpty(fg.describedBy(p.DescribedBy, hasError), infoID)
	area := textareaControl(fg, id, p.Name, p.Rows, "", p.Disabled, describedBy, hasError, p.Attributes)
	area.Attrs = area.Attrs.AddClass("govuk-js-character-count")

	limit, unit := p.MaxLength, "characters"
	if p.MaxWords > 0 {
		limit, unit = p.MaxWords, "words"
	}
	info := govuk.El("div", govuk.Attrs("class", "govuk-hint govuk-character-count__message", "id", infoID),
		govuk.Text("You can enter up to "+strconv.Itoa(limit)+" "+unit))

	wrapper := govuk.Attrs("class", "govuk-form-group govuk-character-count", "data-module", "govuk-character-count").
		SetNonEmpty("data-maxlength", positive(p.MaxLength)).
		SetNonEmpty("data-maxwords", positive(p.MaxWords)).
		SetNonEmpty("data-threshold", positive(p.Threshold))
	group := fg.wrap("govuk-character-count", hasError, fg.label(id), fg.hint(), errMsg, area, info)
	group.Attrs = wrapper.Merge(group.Attrs)
	return group, nil
}

func positive(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}
