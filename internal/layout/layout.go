// Package layout computes absolute positions for the visible subset of
// the map tree. Compute is a pure function of (tree, open set, options):
// identical inputs always produce identical output, which highlighting
// and framing rely on.
package layout

import (
	"github.com/fttower/orbit/internal/model"
)

// Options controls spacing and canvas sizing
type Options struct {
	MinSpacing  float64 // horizontal footprint of a leaf node
	LevelHeight float64 // vertical distance between depths
	Margin      float64 // padding around the root footprint
	MinCanvasW  float64 // floor for the canvas width
	MinCanvasH  float64 // floor for the canvas height
}

// DefaultOptions returns spacing tuned for terminal cells
func DefaultOptions() Options {
	return Options{
		MinSpacing:  18,
		LevelHeight: 5,
		Margin:      10,
		MinCanvasW:  120,
		MinCanvasH:  40,
	}
}

// Entry is the computed position of one visible node. Entries are
// produced fresh on every recompute and never mutated in place.
type Entry struct {
	Node       *model.Node
	X, Y       float64 // absolute canvas coordinates of the node center
	Depth      int
	ParentPath string
}

// Edge connects a visible parent to a visible child, identified by the
// (FromPath, ToPath) pair.
type Edge struct {
	FromPath string
	ToPath   string
	X1, Y1   float64
	X2, Y2   float64
}

// Result holds one complete layout. Order lists paths parents-first in
// sibling order so rendering and tests are deterministic.
type Result struct {
	Entries map[string]*Entry
	Order   []string
	Edges   []Edge
	CanvasW float64
	CanvasH float64
}

// Entry returns the layout entry for path, or nil if the node is not
// currently visible.
func (r *Result) Entry(path string) *Entry {
	return r.Entries[path]
}

// EdgeKey identifies an edge for mark lookups
type EdgeKey struct {
	From string
	To   string
}

type frame struct {
	node       *model.Node
	depth      int
	parentPath string
}

// Compute lays out the currently-visible subset of the tree. A node's
// children are visible iff the node is the root or its path is in the
// open set. Both passes run on explicit stacks so arbitrarily deep
// trees cannot exhaust the call stack.
func Compute(root *model.Node, open *model.OpenSet, opts Options) *Result {
	if root == nil {
		return &Result{Entries: map[string]*Entry{}}
	}

	visible := collectVisible(root, open)

	// Width pass, bottom-up: iterate the pre-order list in reverse so
	// every child footprint exists before its parent is computed.
	width := make(map[string]float64, len(visible))
	for i := len(visible) - 1; i >= 0; i-- {
		f := visible[i]
		if !expandable(f.node, open) || len(f.node.Children) == 0 {
			width[f.node.Path] = opts.MinSpacing
			continue
		}
		var sum float64
		for _, child := range f.node.Children {
			sum += width[child.Path]
		}
		// A parent never shrinks below its own minimum but grows to
		// contain its visible children.
		if sum < opts.MinSpacing {
			sum = opts.MinSpacing
		}
		width[f.node.Path] = sum
	}

	canvasW := width[root.Path] + 2*opts.Margin
	if canvasW < opts.MinCanvasW {
		canvasW = opts.MinCanvasW
	}

	res := &Result{
		Entries: make(map[string]*Entry, len(visible)),
		Order:   make([]string, 0, len(visible)),
		CanvasW: canvasW,
	}

	// Position pass, top-down: the root is centered at the top of the
	// canvas, each visible child is centered in its allotted slice of
	// the parent footprint one level below.
	maxDepth := 0
	res.place(root, canvasW/2, opts.Margin, 0, "")
	stack := []frame{{root, 0, ""}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > maxDepth {
			maxDepth = f.depth
		}
		if !expandable(f.node, open) {
			continue
		}
		parent := res.Entries[f.node.Path]
		left := parent.X - width[f.node.Path]/2
		offset := 0.0
		for _, child := range f.node.Children {
			w := width[child.Path]
			cx := left + offset + w/2
			cy := parent.Y + opts.LevelHeight
			offset += w
			res.place(child, cx, cy, f.depth+1, f.node.Path)
			res.Edges = append(res.Edges, Edge{
				FromPath: f.node.Path,
				ToPath:   child.Path,
				X1:       parent.X,
				Y1:       parent.Y,
				X2:       cx,
				Y2:       cy,
			})
		}
		// Push children in reverse so deeper levels pop in sibling order.
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.node.Children[i], f.depth + 1, f.node.Path})
		}
	}

	res.CanvasH = opts.Margin*2 + float64(maxDepth)*opts.LevelHeight
	if res.CanvasH < opts.MinCanvasH {
		res.CanvasH = opts.MinCanvasH
	}

	return res
}

func (r *Result) place(n *model.Node, x, y float64, depth int, parentPath string) {
	r.Entries[n.Path] = &Entry{Node: n, X: x, Y: y, Depth: depth, ParentPath: parentPath}
	r.Order = append(r.Order, n.Path)
}

// expandable reports whether a node's children participate in layout.
// A closed folder or a file is a unit-width leaf regardless of how many
// descendants it logically has.
func expandable(n *model.Node, open *model.OpenSet) bool {
	if !n.IsFolder() {
		return false
	}
	return n.Path == "" || open.Contains(n.Path)
}

// collectVisible gathers visible nodes pre-order in sibling order using
// an explicit stack.
func collectVisible(root *model.Node, open *model.OpenSet) []frame {
	visible := make([]frame, 0, 64)
	stack := []frame{{root, 0, ""}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visible = append(visible, f)
		if !expandable(f.node, open) {
			continue
		}
		// Push children in reverse so they pop in sibling order.
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			child := f.node.Children[i]
			stack = append(stack, frame{child, f.depth + 1, f.node.Path})
		}
	}
	return visible
}
