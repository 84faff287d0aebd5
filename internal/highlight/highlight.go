// Package highlight expands, marks, and frames the ancestor chain of a
// target node. Staggered mark activation runs on scheduled callbacks
// guarded by a generation id, so superseded sequences discard
// themselves instead of corrupting the new one.
package highlight

import (
	"log"
	"time"

	"github.com/fttower/orbit/internal/layout"
	"github.com/fttower/orbit/internal/model"
	"github.com/fttower/orbit/internal/sched"
)

// Camera is the viewport seam the highlighter frames through
type Camera interface {
	AnimateTo(tx, ty, scale float64, duration time.Duration)
}

// Options tunes the highlight sequence and framing
type Options struct {
	StepDelay    time.Duration // delay between successive chain marks
	AnimDuration time.Duration // duration of the framing transition
	Padding      float64       // canvas padding around the framed chain
}

// DefaultOptions returns the standard highlight timing
func DefaultOptions() Options {
	return Options{
		StepDelay:    120 * time.Millisecond,
		AnimDuration: 600 * time.Millisecond,
		Padding:      6,
	}
}

// Highlighter owns the current highlight session: the highlighted path,
// the node and edge mark sets, the manual-pin flag, and the generation
// counter that invalidates superseded sequences.
type Highlighter struct {
	open     *model.OpenSet
	relayout func() *layout.Result
	sched    sched.Scheduler
	camera   Camera
	viewSize func() (w, h float64)
	opts     Options

	generation uint64
	current    string
	pinned     bool
	nodes      map[string]bool
	edges      map[layout.EdgeKey]bool
}

// New creates a highlighter. relayout must apply the current open set
// and return the fresh layout; viewSize reports the viewport extent in
// screen units.
func New(open *model.OpenSet, relayout func() *layout.Result, s sched.Scheduler, camera Camera, viewSize func() (float64, float64), opts Options) *Highlighter {
	return &Highlighter{
		open:     open,
		relayout: relayout,
		sched:    s,
		camera:   camera,
		viewSize: viewSize,
		opts:     opts,
		nodes:    make(map[string]bool),
		edges:    make(map[layout.EdgeKey]bool),
	}
}

// HighlightPath expands the target's ancestors, recomputes the layout,
// runs the staggered mark sequence, and frames the chain.
func (h *Highlighter) HighlightPath(target string) {
	chain := model.AncestorChain(target)
	if len(chain) == 0 {
		return
	}

	// Expansion only: highlighting never collapses folders.
	for _, ancestor := range chain[:len(chain)-1] {
		if !h.open.Contains(ancestor) {
			h.open.Add(ancestor)
		}
	}

	res := h.relayout()

	// A fresh generation supersedes any in-flight sequence; prior marks
	// are cleared immediately.
	h.generation++
	gen := h.generation
	h.clearMarks()
	h.current = target

	var framed []*layout.Entry
	for i, path := range chain {
		entry := res.Entry(path)
		if entry == nil {
			// Should not happen after expansion, but a missing node must
			// not abort the rest of the chain.
			log.Printf("highlight: node not found in layout: %s", path)
			continue
		}
		framed = append(framed, entry)

		path := path
		step := i
		h.sched.Schedule(time.Duration(i)*h.opts.StepDelay, func() {
			if h.generation != gen {
				return
			}
			h.nodes[path] = true
			if step > 0 {
				h.edges[layout.EdgeKey{From: chain[step-1], To: path}] = true
			}
		})
	}

	if len(framed) == 0 {
		return
	}
	vw, vh := h.viewSize()
	tx, ty, scale := FitTransform(framed, vw, vh, h.opts.Padding)
	h.camera.AnimateTo(tx, ty, scale, h.opts.AnimDuration)
}

// Clear ends the session: marks removed, ambient mode restored, pin
// dropped. The generation bump discards any still-pending steps.
func (h *Highlighter) Clear() {
	h.generation++
	h.clearMarks()
	h.current = ""
	h.pinned = false
}

func (h *Highlighter) clearMarks() {
	h.nodes = make(map[string]bool)
	h.edges = make(map[layout.EdgeKey]bool)
}

// Active reports whether a highlight session is running. When inactive
// every rendered edge takes the ambient visual state.
func (h *Highlighter) Active() bool {
	return h.current != ""
}

// Current returns the highlighted path, or "" with no session
func (h *Highlighter) Current() string {
	return h.current
}

// NodeMarked reports whether the node at path is highlighted
func (h *Highlighter) NodeMarked(path string) bool {
	return h.nodes[path]
}

// EdgeMarked reports whether the edge (from, to) is highlighted
func (h *Highlighter) EdgeMarked(from, to string) bool {
	return h.edges[layout.EdgeKey{From: from, To: to}]
}

// Pinned reports whether the user manually pinned the current file.
// While pinned, top-result changes do not steal the highlight.
func (h *Highlighter) Pinned() bool {
	return h.pinned
}

// SetPinned sets the manual-pin flag
func (h *Highlighter) SetPinned(pinned bool) {
	h.pinned = pinned
}
