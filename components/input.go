package components

import (
	"github.com/a-h/templ"
	"github.com/pthm/govuk"
)

const TagInput = "govuk-input"

var inputSchema = formGroupSchema(TagInput, []string{SlotLabel, SlotHint, SlotErrorMessage})

// InputProps configures a text input.
type InputProps struct {
	ID           string           `attr:"id"`
	Name         string           `attr:"name"`
	Type         string           `attr:"type"`
	Value        string           `attr:"value"`
	Autocomplete string           `attr:"autocomplete"`
	InputMode    string           `attr:"inputmode"`
	Spellcheck   *bool            `attr:"spellcheck"`
	Disabled     bool             `attr:"disabled"`
	DescribedBy  string           `attr:"described-by"`
	Prefix       string           `attr:"prefix"`
	Suffix       string           `attr:"suffix"`
	Class        string           `attr:"class"`
	Attributes   templ.Attributes `attr:",remain"`
}

// Input renders a text input form group. Label, Hint and ErrorMessage may
// appear as children, in that order.
//
//	@components.Input(components.InputProps{Name: "email", Type: "email"}) {
//	    @components.Label(components.LabelProps{}) { Email address }
//	    @components.Hint(components.HintProps{}) { We'll only use this to contact you }
//	}
func Input(p InputProps) templ.Component {
	return component(TagInput, p.process)
}

func (p InputProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	if err := requireAttr(t, TagInput, "name", p.Name); err != nil {
		return nil, err
	}
	id := p.ID
	if id == "" {
		id = p.Name
	}

	fg, _, err := collectFormGroup(t, inputSchema, "", id, p.Name, children)
	if err != nil {
		return nil, err
	}
	if !fg.ctx.Has(SlotLabel) {
		return nil, t.Fail(&govuk.MissingContentError{Element: TagInput, Part: TagInput + "-label"})
	}

	errMsg, hasError := fg.errorMessage("")
	inputType := p.Type
	if inputType == "" {
		inputType = "text"
	}

	attrs := govuk.Attrs("class", "govuk-input", "id", id, "name", p.Name, "type", inputType).
		AddClass(p.Class).
		SetNonEmpty("value", fg.value(p.Value)).
		SetNonEmpty("autocomplete", p.Autocomplete).
		SetNonEmpty("inputmode", p.InputMode).
		SetNonEmpty("aria-describedby", fg.describedBy(p.DescribedBy, hasError)).
		SetBool("disabled", p.Disabled)
	if p.Spellcheck != nil {
		attrs = attrs.Set("spellcheck", boolString(*p.Spellcheck))
	}
	if hasError {
		attrs = attrs.AddClass("govuk-input--error")
	}
	attrs = attrs.Merge(govuk.FromTempl(p.Attributes))

	var control templ.Component = govuk.VoidEl("input", attrs)
	if p.Prefix != "" || p.Suffix != "" {
		control = govuk.El("div", govuk.Attrs("class", "govuk-input__wrapper"),
			govuk.If(p.Prefix != "", govuk.El("div", govuk.Attrs("class", "govuk-input__prefix", "aria-hidden", "true"), govuk.Text(p.Prefix))),
			control,
			govuk.If(p.Suffix != "", govuk.El("div", govuk.Attrs("class", "govuk-input__suffix", "aria-hidden", "true"), govuk.Text(p.Suffix))),
		)
	}

	return fg.wrap("", hasError, fg.label(id), fg.hint(), errMsg, control), nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
