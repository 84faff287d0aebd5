package ui

import (
	"testing"

	"github.com/fttower/orbit/internal/layout"
	"github.com/fttower/orbit/internal/model"
	"github.com/fttower/orbit/internal/viewport"
)

// noMarks satisfies Marks with everything off
type noMarks struct{}

func (noMarks) Active() bool                { return false }
func (noMarks) NodeMarked(string) bool      { return false }
func (noMarks) EdgeMarked(_, _ string) bool { return false }
func (noMarks) Current() string             { return "" }

func mapFixture() (*MapView, *layout.Result) {
	root := model.NewRoot("r")
	a := root.AddChild("A", model.TypeFolder)
	a.AddChild("one.md", model.TypeFile)
	root.AddChild("B", model.TypeFolder)

	open := model.NewOpenSet()
	open.Add("A")
	res := layout.Compute(root, open, layout.DefaultOptions())

	view := viewport.New(viewport.DefaultLimits())
	m := NewMapView(view, open, noMarks{})
	m.SetLayout(res)
	return m, res
}

func TestNodeAtHitsNodeCenter(t *testing.T) {
	m, res := mapFixture()
	area := Rect{X: 0, Y: 0, W: 200, H: 60}

	entry := res.Entry("A")
	path, ok := m.NodeAt(area, int(entry.X), int(entry.Y))
	if !ok || path != "A" {
		t.Errorf("NodeAt center = (%q, %v), want A", path, ok)
	}

	// A few cells to the side still hits the label.
	path, ok = m.NodeAt(area, int(entry.X)+3, int(entry.Y))
	if !ok || path != "A" {
		t.Errorf("NodeAt offset = (%q, %v), want A", path, ok)
	}
}

func TestNodeAtMissesEmptySpace(t *testing.T) {
	m, _ := mapFixture()
	area := Rect{X: 0, Y: 0, W: 200, H: 60}

	if path, ok := m.NodeAt(area, 0, 0); ok {
		t.Errorf("NodeAt empty corner = %q, want miss", path)
	}
}

func TestNodeAtRespectsTransform(t *testing.T) {
	m, res := mapFixture()
	area := Rect{X: 0, Y: 0, W: 200, H: 60}

	// Pan the map and hit-test through the new transform.
	m.view.Pan(17, 3)
	entry := res.Entry("B")
	sx, sy := m.view.CanvasToScreen(entry.X, entry.Y)

	path, ok := m.NodeAt(area, int(sx), int(sy))
	if !ok || path != "B" {
		t.Errorf("NodeAt after pan = (%q, %v), want B", path, ok)
	}
}

func TestNodeAtNilLayout(t *testing.T) {
	view := viewport.New(viewport.DefaultLimits())
	m := NewMapView(view, model.NewOpenSet(), noMarks{})
	if _, ok := m.NodeAt(Rect{W: 10, H: 10}, 5, 5); ok {
		t.Error("NodeAt with no layout should miss")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 10, H: 5}
	if !r.Contains(2, 3) || !r.Contains(11, 7) {
		t.Error("Contains rejected in-bounds cells")
	}
	if r.Contains(1, 3) || r.Contains(12, 3) || r.Contains(2, 8) {
		t.Error("Contains accepted out-of-bounds cells")
	}
}
