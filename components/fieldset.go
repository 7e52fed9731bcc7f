package components

import (
	"github.com/a-h/templ"
	"github.com/pthm/govuk"
)

const (
	TagFieldset           = "govuk-fieldset"
	TagLegend             = "govuk-fieldset-legend"
	TagRadiosFieldset     = "govuk-radios-fieldset"
	TagCheckboxesFieldset = "govuk-checkboxes-fieldset"
	TagDateInputFieldset  = "govuk-date-input-fieldset"
)

// LegendData is the metadata of a legend contribution.
type LegendData struct {
	IsPageHeading bool
}

// FieldsetData is the metadata a form group fieldset contributes.
type FieldsetData struct {
	Legend      *govuk.Contribution
	DescribedBy string
	Role        string
}

func fieldsetSchema(tag string) *govuk.Schema {
	return &govuk.Schema{
		Tag:   tag,
		Slots: []govuk.Slot{{Name: SlotLegend, Tag: TagLegend}},
	}
}

var standaloneFieldsetSchema = fieldsetSchema(TagFieldset)

// LegendProps configures a legend.
type LegendProps struct {
	IsPageHeading bool             `attr:"is-page-heading"`
	Attributes    templ.Attributes `attr:",remain"`
}

// Legend contributes the legend of the enclosing fieldset.
func Legend(p LegendProps) templ.Component {
	return component(TagLegend, p.process)
}

func (p LegendProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	parent, err := t.Require(KeyFieldset, TagLegend, TagFieldset, TagRadiosFieldset, TagCheckboxesFieldset, TagDateInputFieldset)
	if err != nil {
		return nil, err
	}
	content, err := children(t)
	if err != nil {
		return nil, err
	}
	return contribute(t, parent, SlotLegend, govuk.Contribution{
		Tag:     TagLegend,
		Content: content.Trim(),
		Attrs:   govuk.FromTempl(p.Attributes),
		Value:   LegendData{IsPageHeading: p.IsPageHeading},
	})
}

// FieldsetProps configures a fieldset.
type FieldsetProps struct {
	DescribedBy string           `attr:"described-by"`
	Role        string           `attr:"role"`
	Attributes  templ.Attributes `attr:",remain"`
}

// Fieldset groups related inputs under a legend. Its body may contain any
// content, including other fieldsets.
func Fieldset(p FieldsetProps) templ.Component {
	return component(TagFieldset, p.process)
}

func (p FieldsetProps) process(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
	ctx := govuk.NewContext(standaloneFieldsetSchema, "")
	body, err := t.Scope(KeyFieldset).Collect(KeyFieldset, ctx, children)
	if err != nil {
		return nil, err
	}
	var legend *govuk.Contribution
	if c, ok := ctx.Get(SlotLegend); ok {
		legend = &c
	}
	return renderFieldset(legend, p.DescribedBy, p.Role, govuk.FromTempl(p.Attributes), body.Trim()), nil
}

func renderFieldset(legend *govuk.Contribution, describedBy, role string, extra govuk.Attributes, body ...templ.Component) govuk.Element {
	attrs := govuk.Attrs("class", "govuk-fieldset").
		SetNonEmpty("aria-describedby", describedBy).
		SetNonEmpty("role", role).
		Merge(extra)
	children := make([]templ.Component, 0, len(body)+1)
	if legend != nil {
		children = append(children, renderLegend(*legend))
	}
	children = append(children, body...)
	return govuk.El("fieldset", attrs, children...)
}

func renderLegend(c govuk.Contribution) templ.Component {
	attrs := govuk.Attrs("class", "govuk-fieldset__legend").Merge(c.Attrs)
	if govuk.ValueAs[LegendData](c).IsPageHeading {
		return govuk.El("legend", attrs, govuk.El("h1", govuk.Attrs("class", "govuk-fieldset__heading"), c.Content))
	}
	return govuk.El("legend", attrs, c.Content)
}

// FormGroupFieldsetProps configures the fieldset of a radios, checkboxes or
// date input group.
type FormGroupFieldsetProps struct {
	DescribedBy string           `attr:"described-by"`
	Role        string           `attr:"role"`
	Attributes  templ.Attributes `attr:",remain"`
}

// RadiosFieldset wraps the enclosing Radios in a fieldset. Its only child
// is a Legend.
func RadiosFieldset(p FormGroupFieldsetProps) templ.Component {
	return formGroupFieldset(TagRadiosFieldset, TagRadios, p)
}

// CheckboxesFieldset wraps the enclosing Checkboxes in a fieldset.
func CheckboxesFieldset(p FormGroupFieldsetProps) templ.Component {
	return formGroupFieldset(TagCheckboxesFieldset, TagCheckboxes, p)
}

// DateInputFieldset wraps the enclosing DateInput in a fieldset.
func DateInputFieldset(p FormGroupFieldsetProps) templ.Component {
	return formGroupFieldset(TagDateInputFieldset, TagDateInput, p)
}

func formGroupFieldset(tag, parentTag string, p FormGroupFieldsetProps) templ.Component {
	schema := fieldsetSchema(tag)
	return component(tag, func(t *govuk.Traversal, children govuk.Children) (templ.Component, error) {
		parent, err := requireParentTag(t, KeyFormGroup, tag, parentTag)
		if err != nil {
			return nil, err
		}
		ctx := govuk.NewContext(schema, "")
		if _, err := t.Scope(KeyFieldset).Collect(KeyFieldset, ctx, children); err != nil {
			return nil, err
		}
		data := FieldsetData{DescribedBy: p.DescribedBy, Role: p.Role}
		if c, ok := ctx.Get(SlotLegend); ok {
			data.Legend = &c
		}
		return contribute(t, parent, SlotFieldset, govuk.Contribution{
			Tag:   tag,
			Attrs: govuk.FromTempl(p.Attributes),
			Value: data,
		})
	})
}
