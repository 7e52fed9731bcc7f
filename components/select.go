package components

import (
	"github.com/a-h/templ"
	"github.com/pthm/govuk"
)

const (
	TagFileUpload = "govuk-file-upload"
	TagSelect     = "govuk-select"
	TagSelectItem = "govuk-select-item"
)

var (
	fileUploadSchema = formGroupSchema(TagFileUpload, []string{SlotLabel, SlotHint, SlotErrorMessage})
	selectSchema     = formGroupSchema(TagSelect, []string{SlotLabel, SlotHint, SlotErrorMessage},
		govuk.ItemKind{Name: ItemItem, Tag: TagSelectItem})
)

// FileUploadProps configures a file upload.
type FileUploadProps struct {
	ID          string           `attr:"id"`
	Name        string           `attr:"name"`
	Accept      string           `attr:"accept"`
	Multiple    bool             `attr:"multiple"`
	Disabled    bool             `attr:"disabled"`
	DescribedBy string           `attr:"described-by"`
	Attributes  templ.Attributes `attr:",remain"`
}

// FileUpload renders a file input form group.
func FileUpload(p FileUploadProps) templ.Component {
	return component(TagFileUpload, p.process)
}

func (p FileUploadProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	if err := requireAttr(t, TagFileUpload, "name", p.Name); err != nil {
		return nil, err
	}
	id := p.ID
	if id == "" {
		id = p.Name
	}
	fg, _, err := collectFormGroup(t, fileUploadSchema, "", id, p.Name, children)
	if err != nil {
		return nil, err
	}
	if !fg.ctx.Has(SlotLabel) {
		return nil, t.Fail(&govuk.MissingContentError{Element: TagFileUpload, Part: TagFileUpload + "-label"})
	}
	errMsg, hasError := fg.errorMessage("")
	attrs := govuk.Attrs("class", "govuk-file-upload", "id", id, "name", p.Name, "type", "file").
		SetNonEmpty("accept", p.Accept).
		SetNonEmpty("aria-describedby", fg.describedBy(p.DescribedBy, hasError)).
		SetBool("multiple", p.Multiple).
		SetBool("disabled", p.Disabled)
	if hasError {
		attrs = attrs.AddClass("govuk-file-upload--error")
	}
	attrs = attrs.Merge(govuk.FromTempl(p.Attributes))
	return fg.wrap("", hasError, fg.label(id), fg.hint(), errMsg, govuk.VoidEl("input", attrs)), nil
}

// SelectProps configures a select.
type SelectProps struct {
	ID          string           `attr:"id"`
	Name        string           `attr:"name"`
	Value       string           `attr:"value"`
	Disabled    bool             `attr:"disabled"`
	DescribedBy string           `attr:"described-by"`
	Attributes  templ.Attributes `attr:",remain"`
}

// SelectItemData is the metadata of a select option.
type SelectItemData struct {
	Value    string
	Selected bool
	Disabled bool
}

// Select renders a drop-down form group. Options are SelectItem children,
// specified after the label, hint and error message.
func Select(p SelectProps) templ.Component {
	return component(TagSelect, p.process)
}

func (p SelectProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	if err := requireAttr(t, TagSelect, "name", p.Name); err != nil {
		return nil, err
	}
	id := p.ID
	if id == "" {
		id = p.Name
	}
	fg, _, err := collectFormGroup(t, selectSchema, "", id, p.Name, children)
	if err != nil {
		return nil, err
	}
	if !fg.ctx.Has(SlotLabel) {
		return nil, t.Fail(&govuk.MissingContentError{Element: TagSelect, Part: TagSelect + "-label"})
	}
	errMsg, hasError := fg.errorMessage("")
	current := fg.value(p.Value)

	items := fg.ctx.ItemsOf(ItemItem)
	options := make([]templ.Component, len(items))
	for i, item := range items {
		data := govuk.ValueAs[SelectItemData](item)
		attrs := govuk.Attrs("value", data.Value).
			SetBool("selected", data.Selected || (current != "" && current == data.Value)).
			SetBool("disabled", data.Disabled).
			Merge(item.Attrs)
		options[i] = govuk.El("option", attrs, item.Content)
	}

	attrs := govuk.Attrs("class", "govuk-select", "id", id, "name", p.Name).
		SetNonEmpty("aria-describedby", fg.describedBy(p.DescribedBy, hasError)).
		SetBool("disabled", p.Disabled)
	if hasError {
		attrs = attrs.AddClass("govuk-select--error")
	}
	attrs = attrs.Merge(govuk.FromTempl(p.Attributes))
	return fg.wrap("", hasError, fg.label(id), fg.hint(), errMsg, govuk.El("select", attrs, options...)), nil
}

// SelectItemProps configures an option.
type SelectItemProps struct {
	Value      string           `attr:"value"`
	Selected   bool             `attr:"selected"`
	Disabled   bool             `attr:"disabled"`
	Attributes templ.Attributes `attr:",remain"`
}

// SelectItem contributes an option to the enclosing Select.
func SelectItem(p SelectItemProps) templ.Component {
	return component(TagSelectItem, p.process)
}

func (p SelectItemProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	parent, err := t.Require(KeyFormGroup, TagSelectItem, TagSelect)
	if err != nil {
		return nil, err
	}
	content, err := children(t)
	if err != nil {
		return nil, err
	}
	return appendItem(t, parent, ItemItem, govuk.Contribution{
		Tag:     TagSelectItem,
		Content: content.Trim(),
		Attrs:   govuk.FromTempl(p.Attributes),
		Value:   SelectItemData{Value: p.Value, Selected: p.Selected, Disabled: p.Disabled},
	})
}
