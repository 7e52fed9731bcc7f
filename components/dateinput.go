package components

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/pthm/govuk"
)

const (
	TagDateInput     = "govuk-date-input"
	TagDateInputItem = "govuk-date-input-item"
)

var dateInputSchema = formGroupSchema(TagDateInput, []string{SlotFieldset, SlotHint, SlotErrorMessage},
	govuk.ItemKind{Name: ItemItem, Tag: TagDateInputItem})

// DateInputItemData is the metadata of a date part.
type DateInputItemData struct {
	Name  string
	Value string
	Width int
}

// DateInputProps configures a date input.
type DateInputProps struct {
	ID string `attr:"id"`
	// Name prefixes the name of every part: "dob" gives "dob-day".
	Name       string           `attr:"name"`
	Attributes templ.Attributes `attr:",remain"`
}

var defaultDateParts = []DateInputItemData{
	{Name: "day", Width: 2},
	{Name: "month", Width: 2},
	{Name: "year", Width: 4},
}

// DateInput renders day, month and year inputs. DateInputItem children
// replace the default parts.
func DateInput(p DateInputProps) templ.Component {
	return component(TagDateInput, p.process)
}

func (p DateInputProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	if err := requireAttr(t, TagDateInput, "name", p.Name); err != nil {
		return nil, err
	}
	id := p.ID
	if id == "" {
		id = p.Name
	}
	fg, _, err := collectFormGroup(t, dateInputSchema, "", id, p.Name, children)
	if err != nil {
		return nil, err
	}

	items := fg.ctx.ItemsOf(ItemItem)
	if len(items) == 0 {
		for _, part := range defaultDateParts {
			items = append(items, govuk.Contribution{
				Content: govuk.Text(capitalise(part.Name)),
				Value:   part,
			})
		}
	}

	errMsg, hasError := fg.errorMessage("#" + id + "-" + govuk.ValueAs[DateInputItemData](items[0]).Name)

	parts := make([]templ.Component, len(items))
	for i, item := range items {
		data := govuk.ValueAs[DateInputItemData](item)
		partID := id + "-" + data.Name
		partName := p.Name + "-" + data.Name
		value := data.Value
		if value == "" {
			value, _ = t.ModelState().Value(partName)
		}
		width := data.Width
		if width <= 0 {
			width = 2
		}
		attrs := govuk.Attrs(
			"class", "govuk-input govuk-date-input__input govuk-input--width-"+strconv.Itoa(width),
			"id", partID,
			"name", partName,
			"type", "text",
			"inputmode", "numeric",
		).SetNonEmpty("value", value)
		if hasError {
			attrs = attrs.AddClass("govuk-input--error")
		}
		attrs = attrs.Merge(item.Attrs)
		parts[i] = govuk.El("div", govuk.Attrs("class", "govuk-date-input__item"),
			govuk.El("div", govuk.Attrs("class", "govuk-form-group"),
				govuk.El("label", govuk.Attrs("class", "govuk-label govuk-date-input__label", "for", partID), item.Content),
				govuk.VoidEl("input", attrs),
			),
		)
	}

	group := govuk.Attrs("class", "govuk-date-input", "id", id).Merge(govuk.FromTempl(p.Attributes))
	body := []templ.Component{fg.hint(), errMsg, govuk.El("div", group, parts...)}

	if c, ok := fg.ctx.Get(SlotFieldset); ok {
		data := govuk.ValueAs[FieldsetData](c)
		role := data.Role
		if role == "" {
			role = "group"
		}
		fieldset := renderFieldset(data.Legend, fg.describedBy(data.DescribedBy, hasError), role, c.Attrs, body...)
		return fg.wrap("", hasError, fieldset), nil
	}
	return fg.wrap("", hasError, body...), nil
}

// DateInputItemProps configures one date part.
type DateInputItemProps struct {
	// Name is the part name appended to the date input's name.
	Name       string           `attr:"name"`
	Value      string           `attr:"value"`
	Width      int              `attr:"width"`
	Attributes templ.Attributes `attr:",remain"`
}

// DateInputItem contributes a date part. Its content is the part's label
// and defaults to the capitalised name.
func DateInputItem(p DateInputItemProps) templ.Component {
	return component(TagDateInputItem, p.process)
}

func (p DateInputItemProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	parent, err := requireParentTag(t, KeyFormGroup, TagDateInputItem, TagDateInput)
	if err != nil {
		return nil, err
	}
	if err := requireAttr(t, TagDateInputItem, "name", p.Name); err != nil {
		return nil, err
	}
	content, err := children(t)
	if err != nil {
		return nil, err
	}
	return appendItem(t, parent, ItemItem, govuk.Contribution{
		Tag:     TagDateInputItem,
		Content: content.Trim().Or(govuk.Text(capitalise(p.Name))),
		Attrs:   govuk.FromTempl(p.Attributes),
		Value:   DateInputItemData{Name: p.Name, Value: p.Value, Width: p.Width},
	})
}

func capitalise(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
