package govuk

import (
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var noteSchema = &Schema{
	Tag: "test-note",
	Slots: Sequence([]Slot{
		{Name: "title", Tag: "test-note-title"},
		{Name: "body", Tag: "test-note-body"},
	}),
}

// noteNode is a minimal composite: it renders its title and body slots.
type noteNode struct{}

func (noteNode) TagName() string { return "test-note" }

func (noteNode) Process(t *Traversal, children Children) (templ.Component, error) {
	ctx := NewContext(noteSchema, "")
	rest, err := t.Collect("note", ctx, children)
	if err != nil {
		return nil, err
	}
	title, _ := ctx.Get("title")
	body, _ := ctx.Get("body")
	return El("section", Attrs("class", "note"),
		El("h2", Attributes{}, title.Content),
		El("p", Attributes{}, body.Content),
		rest.Trim(),
	), nil
}

// notePart is a child that contributes one slot.
type notePart struct{ slot string }

func (n notePart) TagName() string { return "test-note-" + n.slot }

func (n notePart) Process(t *Traversal, children Children) (templ.Component, error) {
	parent, err := t.Require("note", n.TagName(), "test-note")
	if err != nil {
		return nil, err
	}
	content, err := children(t)
	if err != nil {
		return nil, err
	}
	if err := parent.Set(n.slot, Contribution{Content: content.Trim()}).Err(); err != nil {
		return nil, t.Fail(err)
	}
	return templ.NopComponent, nil
}

func note(children ...templ.Component) templ.Component {
	return With(Component(noteNode{}), children...)
}

func part(slot, text string) templ.Component {
	return With(Component(notePart{slot: slot}), Text(text))
}

func TestComponentCollectsChildren(t *testing.T) {
	result, err := TestRender(note(part("title", "Title"), Text(" extra "), part("body", "Body & more")))
	require.NoError(t, err)
	assert.Equal(t, `<section class="note"><h2>Title</h2><p>Body &amp; more</p>extra</section>`, result.HTML)
	assert.Empty(t, result.Traversal.Registry().Keys(), "contexts are unregistered once rendered")
}

func TestComponentMissingParent(t *testing.T) {
	_, err := TestRender(part("title", "orphan"))
	require.Error(t, err)
	assert.True(t, IsMissingParentContext(err))
	assert.EqualError(t, err, "<test-note-title> must be inside <test-note>.")
}

func TestComponentOrderingAbortsRender(t *testing.T) {
	_, err := TestRender(note(part("body", "B"), part("title", "T")))
	assert.True(t, IsOrdering(err))
	assert.EqualError(t, err, "<test-note-title> must be specified before <test-note-body>.")
}

func TestComponentDuplicateAbortsRender(t *testing.T) {
	_, err := TestRender(note(part("title", "A"), part("title", "B")))
	assert.True(t, IsDuplicateElement(err))
}

func TestComponentNestingSameKind(t *testing.T) {
	_, err := TestRender(note(note()))
	assert.ErrorIs(t, err, ErrContextAlreadyRegistered)
}

func TestComponentReusesTraversalFromContext(t *testing.T) {
	tr := NewTraversal()
	result, err := TestRenderWithContext(WithTraversal(context.Background(), tr), note(part("title", "T")))
	require.NoError(t, err)
	assert.Same(t, tr, result.Traversal)
}

func TestFailLogsCompositionErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := TestRender(note(part("title", "A"), part("title", "B")), WithLogger(zap.New(core)))
	require.Error(t, err)

	rejected := logs.FilterMessage("component composition rejected").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, "duplicate_element", rejected[0].ContextMap()["kind"])
	assert.NotEmpty(t, logs.FilterMessage("context registered").All())
}

func TestTestProcess(t *testing.T) {
	tr := NewTraversal()
	ctx := NewContext(noteSchema, "")
	require.NoError(t, tr.Registry().Register("note", ctx))

	out, err := TestProcess(notePart{slot: "title"}, tr, Text("Hello"))
	require.NoError(t, err)
	assert.Empty(t, out)

	title, ok := ctx.Get("title")
	require.True(t, ok)
	assert.Equal(t, "Hello", title.Content.String())
}

func TestTraversalDefaults(t *testing.T) {
	tr := NewTraversal()
	assert.Equal(t, DefaultOptions(), tr.Options())
	assert.NotNil(t, tr.ModelState())
	assert.True(t, tr.ModelState().IsValid())
	assert.NotNil(t, tr.Logger())

	custom := NewTraversal(WithOptions(Options{PrependErrorSummary: false}), WithModelState(nil), WithLogger(nil))
	assert.False(t, custom.Options().PrependErrorSummary)
	assert.Equal(t, "There is a problem", custom.Options().ErrorSummaryTitle)
	assert.NotNil(t, custom.ModelState())
}

func TestTraversalScopeSharesInputs(t *testing.T) {
	state := NewModelState().AddError("email", "Enter an email address")
	tr := NewTraversal(WithModelState(state))
	s := tr.Scope("note")

	assert.Same(t, state, s.ModelState())
	assert.NotSame(t, tr.Registry(), s.Registry())
}
