package govuk

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formGroupTestSchema() *Schema {
	return &Schema{
		Tag: "govuk-textarea",
		Slots: Sequence([]Slot{
			{Name: "label", Tag: "govuk-label"},
			{Name: "hint", Tag: "govuk-hint"},
			{Name: "error-message", Tag: "govuk-error-message"},
			{Name: "value", Tag: "govuk-value"},
		}),
	}
}

func listTestSchema(requireID bool) *Schema {
	return &Schema{
		Tag: "govuk-tabs",
		Items: []ItemKind{
			{Name: "item", Tag: "govuk-tabs-item", Identified: true, RequireID: requireID},
			{Name: "divider", Tag: "govuk-tabs-divider"},
		},
	}
}

func TestSequence(t *testing.T) {
	slots := Sequence([]Slot{{Name: "a"}, {Name: "b", Before: []string{"x"}}, {Name: "c"}}, "item")

	got := make([][]string, len(slots))
	for i, s := range slots {
		got[i] = s.Before
	}
	want := [][]string{
		{"b", "c", "item"},
		{"x", "c", "item"},
		{"item"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sequence() Before mismatch (-want +got):\n%s", diff)
	}
}

func TestSchemaTagOf(t *testing.T) {
	s := listTestSchema(false)
	assert.Equal(t, "govuk-tabs-item", s.TagOf("item"))
	assert.Equal(t, "govuk-tabs-label", s.TagOf("label"))
}

func TestContextSetInOrder(t *testing.T) {
	ctx := NewContext(formGroupTestSchema(), "")

	for _, slot := range []string{"label", "hint", "value"} {
		res := ctx.Set(slot, Contribution{Content: Text(slot)})
		require.NoError(t, res.Err(), slot)
		assert.Equal(t, slot, res.Value().Kind)
		assert.Equal(t, "govuk-"+slot, res.Value().Tag)
	}

	hint, ok := ctx.Get("hint")
	require.True(t, ok)
	assert.Equal(t, "hint", hint.Content.String())
	assert.False(t, ctx.Has("error-message"))
}

func TestContextDuplicateSlot(t *testing.T) {
	ctx := NewContext(formGroupTestSchema(), "")
	require.NoError(t, ctx.Set("hint", Contribution{Content: Text("first")}).Err())

	err := ctx.Set("hint", Contribution{Content: Text("second")}).Err()
	var dup *DuplicateElementError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "govuk-hint", dup.Element)
	assert.Equal(t, "govuk-textarea", dup.Parent)

	got, _ := ctx.Get("hint")
	assert.Equal(t, "first", got.Content.String(), "rejected contribution must not replace the stored one")
}

func TestContextHintAfterValue(t *testing.T) {
	ctx := NewContext(formGroupTestSchema(), "")
	require.NoError(t, ctx.Set("value", Contribution{Content: Text("v")}).Err())

	err := ctx.Set("hint", Contribution{Content: Text("h")}).Err()
	require.Error(t, err)
	assert.True(t, IsOrdering(err))
	assert.Equal(t, "<govuk-hint> must be specified before <govuk-value>.", err.Error())
	assert.False(t, ctx.Has("hint"))
}

func TestContextErrorsNameContributedTags(t *testing.T) {
	schema := &Schema{
		Tag:   "govuk-character-count",
		Slots: Sequence([]Slot{{Name: "hint"}, {Name: "value"}}, "item"),
		Items: []ItemKind{{Name: "item"}},
	}
	ctx := NewContext(schema, "")
	require.NoError(t, ctx.Set("value", Contribution{Tag: "govuk-value"}).Err())

	err := ctx.Set("hint", Contribution{Tag: "govuk-hint"}).Err()
	assert.EqualError(t, err, "<govuk-hint> must be specified before <govuk-value>.")

	err = ctx.Set("value", Contribution{Tag: "govuk-value"}).Err()
	assert.EqualError(t, err, "Only one <govuk-value> element is permitted within each <govuk-character-count>.")

	require.NoError(t, ctx.Add("item", Contribution{Tag: "govuk-select-item"}).Err())
	err = ctx.Set("hint", Contribution{}).Err()
	assert.EqualError(t, err, "<govuk-character-count-hint> must be specified before <govuk-value>.")
}

func TestContextSlotBeforeItems(t *testing.T) {
	schema := &Schema{
		Tag:   "govuk-radios",
		Slots: Sequence([]Slot{{Name: "hint", Tag: "govuk-hint"}}, "item"),
		Items: []ItemKind{{Name: "item", Tag: "govuk-radios-item"}},
	}
	ctx := NewContext(schema, "")
	require.NoError(t, ctx.Add("item", Contribution{}).Err())

	err := ctx.Set("hint", Contribution{}).Err()
	assert.EqualError(t, err, "<govuk-hint> must be specified before <govuk-radios-item>.")
}

func TestContextUnknownSlot(t *testing.T) {
	ctx := NewContext(formGroupTestSchema(), "")

	err := ctx.Set("fieldset", Contribution{}).Err()
	assert.True(t, IsMissingParentContext(err))
	assert.EqualError(t, err, "<govuk-textarea-fieldset> is not permitted here.")

	err = ctx.Add("item", Contribution{Tag: "govuk-select-item"}).Err()
	assert.EqualError(t, err, "<govuk-select-item> is not permitted here.")
}

func TestContextClosed(t *testing.T) {
	ctx := NewContext(formGroupTestSchema(), "")
	ctx.Close()
	assert.True(t, ctx.Closed())

	err := ctx.Set("label", Contribution{}).Err()
	assert.ErrorIs(t, err, ErrContextClosed)
	assert.Equal(t, "context_closed", ErrorKind(err))
}

func TestContextItemsPreserveOrder(t *testing.T) {
	ctx := NewContext(listTestSchema(false), "tab")
	for _, label := range []string{"one", "two", "three"} {
		require.NoError(t, ctx.Add("item", Contribution{Content: Text(label)}).Err())
	}
	require.NoError(t, ctx.Add("divider", Contribution{Content: Text("or")}).Err())

	var got []string
	for _, item := range ctx.Items() {
		got = append(got, item.Kind+":"+item.Content.String())
	}
	want := []string{"item:one", "item:two", "item:three", "divider:or"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Items() order mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, ctx.ItemsOf("item"), 3)
	assert.Equal(t, 4, ctx.Len())
}

func TestContextItemsReturnsCopy(t *testing.T) {
	ctx := NewContext(listTestSchema(false), "tab")
	require.NoError(t, ctx.Add("item", Contribution{Content: Text("one")}).Err())

	items := ctx.Items()
	items[0].Content = Text("changed")
	assert.Equal(t, "one", ctx.Items()[0].Content.String())
}

func TestContextDerivesIdentifiersFromPrefix(t *testing.T) {
	ctx := NewContext(listTestSchema(false), "section")

	first := ctx.Add("item", Contribution{}).Value()
	divider := ctx.Add("divider", Contribution{}).Value()
	second := ctx.Add("item", Contribution{}).Value()
	explicit := ctx.Add("item", Contribution{ID: "custom"}).Value()
	fourth := ctx.Add("item", Contribution{}).Value()

	assert.Equal(t, "section", first.ID)
	assert.Equal(t, "", divider.ID, "dividers are not identified")
	assert.Equal(t, "section-2", second.ID)
	assert.Equal(t, "custom", explicit.ID)
	assert.Equal(t, "section-4", fourth.ID)
}

func TestContextMissingIdentifierWithoutPrefix(t *testing.T) {
	ctx := NewContext(listTestSchema(false), "")

	require.NoError(t, ctx.Add("item", Contribution{}).Err(), "first id-less item takes the composite's identifier")
	require.NoError(t, ctx.Add("item", Contribution{ID: "explicit"}).Err())

	err := ctx.Add("item", Contribution{}).Err()
	var missing *MissingIdentifierError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, 3, missing.Index)
	assert.Equal(t, "Item 3: <govuk-tabs-item> must have an 'id' attribute when <govuk-tabs> has no 'id-prefix'.", err.Error())
	assert.Equal(t, 2, ctx.Len())
}

func TestContextRequireID(t *testing.T) {
	ctx := NewContext(listTestSchema(true), "")
	err := ctx.Add("item", Contribution{}).Err()
	assert.True(t, IsMissingIdentifier(err))

	ctx = NewContext(listTestSchema(true), "panel")
	assert.NoError(t, ctx.Add("item", Contribution{}).Err())
}

func TestDeriveID(t *testing.T) {
	assert.Equal(t, "p", DeriveID("p", 0))
	assert.Equal(t, "p-2", DeriveID("p", 1))
	assert.Equal(t, "p-10", DeriveID("p", 9))
}

func TestValueAs(t *testing.T) {
	type meta struct{ Href string }
	c := Contribution{Value: meta{Href: "/a"}}
	assert.Equal(t, "/a", ValueAs[meta](c).Href)
	assert.Equal(t, "", ValueAs[string](c))
}
