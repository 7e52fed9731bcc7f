package govuk

import (
	"testing"

	"github.com/a-h/templ"
)

// spyNode hands its traversal to fn and renders nothing.
type spyNode struct {
	fn func(*Traversal)
}

func (spyNode) TagName() string { return "test-spy" }

func (p spyNode) Process(t *Traversal, _ Children) (templ.Component, error) {
	p.fn(t)
	return templ.NopComponent, nil
}

func TestTestResultMatchers(t *testing.T) {
	result, err := TestRender(note(part("title", "Title"), part("body", "Body")))
	if err != nil {
		t.Fatal(err)
	}

	if !result.HTMLContains("<h2>Title</h2>") {
		t.Error("HTMLContains missed the title")
	}
	if !result.HTMLContainsAll("<h2>Title</h2>", "<p>Body</p>") {
		t.Error("HTMLContainsAll missed a fragment")
	}
	if result.HTMLContainsAll("<h2>Title</h2>", "<aside>") {
		t.Error("HTMLContainsAll matched a missing fragment")
	}
	if !result.HTMLContainsAny("<aside>", "<p>Body</p>") {
		t.Error("HTMLContainsAny missed a fragment")
	}
	if result.HTMLContainsAny("<aside>", "<nav>") {
		t.Error("HTMLContainsAny matched missing fragments")
	}
	if got := result.Count("<"); got != 6 {
		t.Errorf("Count = %d, want 6", got)
	}
	if result.Index("<h2>") > result.Index("<p>") {
		t.Error("title should render before body")
	}
	if result.Index("<aside>") != -1 {
		t.Error("Index should be -1 for a missing fragment")
	}
}

func TestTestRenderAppliesOptions(t *testing.T) {
	state := NewModelState().SetValue("name", "Ada")
	var seen *Traversal

	result, err := TestRender(Component(spyNode{fn: func(tr *Traversal) { seen = tr }}), WithModelState(state))
	if err != nil {
		t.Fatal(err)
	}
	if result.HTML != "" {
		t.Errorf("HTML = %q, want empty", result.HTML)
	}
	if seen != result.Traversal {
		t.Error("component saw a different traversal from the one returned")
	}
	if v, _ := seen.ModelState().Value("name"); v != "Ada" {
		t.Errorf("model state value = %q", v)
	}
}
