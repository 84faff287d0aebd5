package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/fttower/orbit/internal/layout"
	"github.com/fttower/orbit/internal/model"
	"github.com/fttower/orbit/internal/viewport"
)

// Marks is the highlight state the map renders from. Keeping it as an
// interface means the layout/highlight logic never touches the screen.
type Marks interface {
	Active() bool
	NodeMarked(path string) bool
	EdgeMarked(from, to string) bool
	Current() string
}

// Rect is a screen region in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside the region
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// MapView draws the laid-out tree through the viewport transform
type MapView struct {
	res   *layout.Result
	view  *viewport.Viewport
	open  *model.OpenSet
	marks Marks
}

// NewMapView creates a map view over the given viewport and open set
func NewMapView(view *viewport.Viewport, open *model.OpenSet, marks Marks) *MapView {
	return &MapView{view: view, open: open, marks: marks}
}

// SetLayout swaps in a freshly computed layout
func (m *MapView) SetLayout(res *layout.Result) {
	m.res = res
}

// Layout returns the current layout result
func (m *MapView) Layout() *layout.Result {
	return m.res
}

// Render draws edges then nodes into the given screen region
func (m *MapView) Render(screen *Screen, area Rect) {
	if m.res == nil {
		return
	}

	maxDepth := 1
	for _, path := range m.res.Order {
		if d := m.res.Entries[path].Depth; d > maxDepth {
			maxDepth = d
		}
	}

	for _, edge := range m.res.Edges {
		style := m.edgeStyle(screen, edge, maxDepth)
		x1, y1 := m.view.CanvasToScreen(edge.X1, edge.Y1)
		x2, y2 := m.view.CanvasToScreen(edge.X2, edge.Y2)
		drawLine(screen, area,
			float64(area.X)+x1, float64(area.Y)+y1,
			float64(area.X)+x2, float64(area.Y)+y2, style)
	}

	for _, path := range m.res.Order {
		m.renderNode(screen, area, m.res.Entries[path])
	}
}

// edgeStyle picks the visual state of one edge. With no active session
// every edge takes the ambient state; during a session unmarked edges
// recede and marked edges ramp from the start color at the root to the
// end color at the leaf.
func (m *MapView) edgeStyle(screen *Screen, edge layout.Edge, maxDepth int) tcell.Style {
	if !m.marks.Active() {
		return screen.EdgeAmbientStyle()
	}
	if m.marks.EdgeMarked(edge.FromPath, edge.ToPath) {
		to := m.res.Entries[edge.ToPath]
		t := 0.0
		if to != nil && maxDepth > 0 {
			t = float64(to.Depth) / float64(maxDepth)
		}
		return screen.EdgeHighlightStyle(t)
	}
	return screen.EdgeAmbientStyle().Dim(true)
}

func (m *MapView) renderNode(screen *Screen, area Rect, entry *layout.Entry) {
	sx, sy := m.view.CanvasToScreen(entry.X, entry.Y)
	cx := area.X + int(sx)
	cy := area.Y + int(sy)
	if cy < area.Y || cy >= area.Y+area.H {
		return
	}

	node := entry.Node
	label := node.Name
	if node.Path == "" {
		label = "/" + label
	}

	glyph, glyphStyle := m.nodeGlyph(screen, node)
	style := m.nodeStyle(screen, node)
	if m.marks.NodeMarked(node.Path) {
		style = screen.NodeHighlightStyle()
		glyphStyle = style
	}

	// At low zoom there is no room for labels, only markers.
	labelWidth := int(m.view.Scale * 14)
	if labelWidth < 4 {
		if area.Contains(cx, cy) {
			screen.SetCell(cx, cy, glyph, glyphStyle)
		}
		return
	}

	label = TruncateToWidthWithEllipsis(label, labelWidth)
	total := StringWidth(label) + 2
	startX := cx - total/2
	if startX+total <= area.X || startX >= area.X+area.W {
		return
	}

	if area.Contains(startX, cy) {
		screen.SetCell(startX, cy, glyph, glyphStyle)
	}
	col := startX + 2
	for _, r := range label {
		if area.Contains(col, cy) {
			screen.SetCell(col, cy, r, style)
		}
		col += RuneWidth(r)
	}
}

func (m *MapView) nodeGlyph(screen *Screen, node *model.Node) (rune, tcell.Style) {
	if !node.IsFolder() {
		return '◦', screen.NodeFileStyle()
	}
	if node.Path == "" || m.open.Contains(node.Path) {
		return '▾', screen.ArrowOpenStyle()
	}
	return '▸', screen.ArrowClosedStyle()
}

func (m *MapView) nodeStyle(screen *Screen, node *model.Node) tcell.Style {
	if node.IsFolder() {
		return screen.NodeFolderStyle()
	}
	return screen.NodeFileStyle()
}

// NodeAt hit-tests a screen cell against the rendered node labels and
// returns the matching node path, or ok=false.
func (m *MapView) NodeAt(area Rect, x, y int) (string, bool) {
	if m.res == nil {
		return "", false
	}
	halfW := m.view.Scale * 9
	if halfW < 3 {
		halfW = 3
	}
	// Later entries draw on top, so scan in reverse.
	for i := len(m.res.Order) - 1; i >= 0; i-- {
		entry := m.res.Entries[m.res.Order[i]]
		sx, sy := m.view.CanvasToScreen(entry.X, entry.Y)
		cx := float64(area.X) + sx
		cy := area.Y + int(sy)
		if y == cy && float64(x) >= cx-halfW && float64(x) <= cx+halfW {
			return entry.Node.Path, true
		}
	}
	return "", false
}

// drawLine steps along a segment one cell at a time, picking a glyph
// from the segment direction.
func drawLine(screen *Screen, area Rect, x1, y1, x2, y2 float64, style tcell.Style) {
	dx := x2 - x1
	dy := y2 - y1
	steps := int(max(abs(dx), abs(dy)))
	if steps == 0 {
		return
	}
	glyph := lineGlyph(dx, dy)
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		x := int(x1 + dx*t)
		y := int(y1 + dy*t)
		if area.Contains(x, y) {
			screen.SetCell(x, y, glyph, style)
		}
	}
}

func lineGlyph(dx, dy float64) rune {
	adx, ady := abs(dx), abs(dy)
	switch {
	case adx < ady/2:
		return '│'
	case ady < adx/2:
		return '─'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
