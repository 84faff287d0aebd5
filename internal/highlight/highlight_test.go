package highlight

import (
	"testing"
	"time"

	"github.com/fttower/orbit/internal/layout"
	"github.com/fttower/orbit/internal/model"
)

// manualScheduler collects callbacks so tests control execution
type manualScheduler struct {
	delays []time.Duration
	fns    []func()
}

func (s *manualScheduler) Schedule(delay time.Duration, fn func()) {
	s.delays = append(s.delays, delay)
	s.fns = append(s.fns, fn)
}

func (s *manualScheduler) runAll() {
	fns := s.fns
	s.fns = nil
	s.delays = nil
	for _, fn := range fns {
		fn()
	}
}

// fakeCamera records the last framing request
type fakeCamera struct {
	tx, ty, scale float64
	duration      time.Duration
	calls         int
}

func (c *fakeCamera) AnimateTo(tx, ty, scale float64, duration time.Duration) {
	c.tx, c.ty, c.scale = tx, ty, scale
	c.duration = duration
	c.calls++
}

type fixture struct {
	root   *model.Node
	open   *model.OpenSet
	sched  *manualScheduler
	camera *fakeCamera
	hl     *Highlighter
	last   *layout.Result
}

func newFixture() *fixture {
	root := model.NewRoot("r")
	a := root.AddChild("A", model.TypeFolder)
	b := a.AddChild("B", model.TypeFolder)
	b.AddChild("C.md", model.TypeFile)
	a.AddChild("other.md", model.TypeFile)

	f := &fixture{
		root:   root,
		open:   model.NewOpenSet(),
		sched:  &manualScheduler{},
		camera: &fakeCamera{},
	}
	relayout := func() *layout.Result {
		f.last = layout.Compute(f.root, f.open, layout.DefaultOptions())
		return f.last
	}
	viewSize := func() (float64, float64) { return 160, 48 }
	f.hl = New(f.open, relayout, f.sched, f.camera, viewSize, DefaultOptions())
	return f
}

func TestHighlightExpandsAncestorsAndMarksChain(t *testing.T) {
	f := newFixture()
	f.hl.HighlightPath("A/B/C.md")

	// Ancestors A and A/B are expanded, the leaf is not.
	if !f.open.Contains("A") || !f.open.Contains("A/B") {
		t.Error("ancestors not expanded")
	}
	if f.open.Contains("A/B/C.md") {
		t.Error("leaf should not enter the open set")
	}
	if f.last.Entry("A/B/C.md") == nil {
		t.Fatal("target not visible after relayout")
	}

	// One step per chain element, staggered by the step delay.
	if len(f.sched.delays) != 3 {
		t.Fatalf("scheduled steps = %d, want 3", len(f.sched.delays))
	}
	step := DefaultOptions().StepDelay
	for i, d := range f.sched.delays {
		if d != time.Duration(i)*step {
			t.Errorf("step %d delay = %v, want %v", i, d, time.Duration(i)*step)
		}
	}

	// Marks appear only when the steps run.
	if f.hl.NodeMarked("A") {
		t.Error("node marked before its step ran")
	}
	f.sched.runAll()
	for _, path := range []string{"A", "A/B", "A/B/C.md"} {
		if !f.hl.NodeMarked(path) {
			t.Errorf("node %q not marked", path)
		}
	}
	if !f.hl.EdgeMarked("A", "A/B") || !f.hl.EdgeMarked("A/B", "A/B/C.md") {
		t.Error("chain edges not marked")
	}
	if f.hl.EdgeMarked("A", "A/other.md") {
		t.Error("off-chain edge marked")
	}

	if f.hl.Current() != "A/B/C.md" || !f.hl.Active() {
		t.Error("session state wrong after highlight")
	}
}

func TestHighlightFramesChain(t *testing.T) {
	f := newFixture()
	f.hl.HighlightPath("A/B/C.md")

	if f.camera.calls != 1 {
		t.Fatalf("camera calls = %d, want 1", f.camera.calls)
	}
	if f.camera.scale > 1.0 {
		t.Errorf("framing scale = %v, must never exceed 1.0", f.camera.scale)
	}
	if f.camera.duration != DefaultOptions().AnimDuration {
		t.Errorf("framing duration = %v, want %v", f.camera.duration, DefaultOptions().AnimDuration)
	}
}

func TestNewHighlightSupersedesPending(t *testing.T) {
	f := newFixture()
	f.hl.HighlightPath("A/B/C.md")

	// A second request arrives before the first finishes its steps.
	pending := f.sched.fns
	f.sched.fns = nil
	f.hl.HighlightPath("A/other.md")

	// Stale steps run but must not mark anything.
	for _, fn := range pending {
		fn()
	}
	if f.hl.NodeMarked("A/B/C.md") {
		t.Error("superseded step still marked its node")
	}

	f.sched.runAll()
	if !f.hl.NodeMarked("A/other.md") {
		t.Error("current session steps did not mark")
	}
	if f.hl.Current() != "A/other.md" {
		t.Errorf("Current = %q, want A/other.md", f.hl.Current())
	}
}

func TestClearEndsSession(t *testing.T) {
	f := newFixture()
	f.hl.HighlightPath("A/B/C.md")
	pending := f.sched.fns
	f.sched.fns = nil

	f.hl.SetPinned(true)
	f.hl.Clear()

	if f.hl.Active() || f.hl.Current() != "" || f.hl.Pinned() {
		t.Error("Clear left session state")
	}
	// Pending steps from before Clear are discarded.
	for _, fn := range pending {
		fn()
	}
	if f.hl.NodeMarked("A") {
		t.Error("cleared session step still marked")
	}
	// Folders stay expanded: clearing the highlight never collapses.
	if !f.open.Contains("A") {
		t.Error("Clear collapsed an expanded folder")
	}
}

func TestHighlightSkipsMissingChainNodes(t *testing.T) {
	f := newFixture()
	f.hl.HighlightPath("A/missing/nope.md")

	// "A" exists and is framed; the bogus tail is skipped without
	// aborting the sequence.
	if f.camera.calls != 1 {
		t.Errorf("camera calls = %d, want 1", f.camera.calls)
	}
	if len(f.sched.fns) != 1 {
		t.Fatalf("scheduled steps = %d, want 1 for the found node", len(f.sched.fns))
	}
	f.sched.runAll()
	if !f.hl.NodeMarked("A") {
		t.Error("existing chain node not marked")
	}
	if f.hl.NodeMarked("A/missing/nope.md") {
		t.Error("missing node marked")
	}
}

func TestHighlightEmptyTarget(t *testing.T) {
	f := newFixture()
	f.hl.HighlightPath("")
	if f.camera.calls != 0 || len(f.sched.fns) != 0 {
		t.Error("empty target should be a no-op")
	}
}

func TestFitTransformCentersBox(t *testing.T) {
	entries := []*layout.Entry{
		{X: 10, Y: 10},
		{X: 50, Y: 30},
	}
	tx, ty, scale := FitTransform(entries, 200, 100, 0)

	if scale != 1.0 {
		t.Errorf("scale = %v, want 1.0 for a box smaller than the view", scale)
	}
	// Box center (30, 20) maps to view center (100, 50).
	if cx := 30*scale + tx; cx != 100 {
		t.Errorf("box center X maps to %v, want 100", cx)
	}
	if cy := 20*scale + ty; cy != 50 {
		t.Errorf("box center Y maps to %v, want 50", cy)
	}
}

func TestFitTransformShrinksLargeBox(t *testing.T) {
	entries := []*layout.Entry{
		{X: 0, Y: 0},
		{X: 400, Y: 50},
	}
	_, _, scale := FitTransform(entries, 200, 100, 0)
	if scale != 0.5 {
		t.Errorf("scale = %v, want 0.5", scale)
	}
}

func TestFitTransformNeverZoomsIn(t *testing.T) {
	entries := []*layout.Entry{{X: 5, Y: 5}, {X: 6, Y: 6}}
	_, _, scale := FitTransform(entries, 1000, 1000, 2)
	if scale > 1.0 {
		t.Errorf("scale = %v, must be capped at 1.0", scale)
	}
}

func TestOverviewTransformFitsCanvas(t *testing.T) {
	res := &layout.Result{CanvasW: 400, CanvasH: 100}
	tx, ty, scale := OverviewTransform(res, 200, 100)

	if scale != 0.5 {
		t.Errorf("scale = %v, want 0.5", scale)
	}
	// Canvas center maps to view center.
	if cx := 200*scale + tx; cx != 100 {
		t.Errorf("canvas center X maps to %v, want 100", cx)
	}
	if cy := 50*scale + ty; cy != 50 {
		t.Errorf("canvas center Y maps to %v, want 50", cy)
	}
}
