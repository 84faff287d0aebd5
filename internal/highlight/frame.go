package highlight

import "github.com/fttower/orbit/internal/layout"

// FitTransform computes the viewport transform that frames the given
// entries: the bounding box over their positions, grown by padding, is
// scaled to fit the view (never zooming in past native scale) and
// centered.
func FitTransform(entries []*layout.Entry, viewW, viewH, padding float64) (tx, ty, scale float64) {
	if len(entries) == 0 {
		return 0, 0, 1
	}

	minX, maxX := entries[0].X, entries[0].X
	minY, maxY := entries[0].Y, entries[0].Y
	for _, e := range entries[1:] {
		if e.X < minX {
			minX = e.X
		}
		if e.X > maxX {
			maxX = e.X
		}
		if e.Y < minY {
			minY = e.Y
		}
		if e.Y > maxY {
			maxY = e.Y
		}
	}
	minX -= padding
	maxX += padding
	minY -= padding
	maxY += padding

	boxW := maxX - minX
	boxH := maxY - minY

	scale = 1.0
	if boxW > 0 && viewW/boxW < scale {
		scale = viewW / boxW
	}
	if boxH > 0 && viewH/boxH < scale {
		scale = viewH / boxH
	}

	centerX := (minX + maxX) / 2
	centerY := (minY + maxY) / 2
	tx = viewW/2 - centerX*scale
	ty = viewH/2 - centerY*scale
	return tx, ty, scale
}

// OverviewTransform frames the whole canvas, used when no search is
// active.
func OverviewTransform(res *layout.Result, viewW, viewH float64) (tx, ty, scale float64) {
	scale = 1.0
	if res.CanvasW > 0 && viewW/res.CanvasW < scale {
		scale = viewW / res.CanvasW
	}
	if res.CanvasH > 0 && viewH/res.CanvasH < scale {
		scale = viewH / res.CanvasH
	}
	tx = viewW/2 - res.CanvasW/2*scale
	ty = viewH/2 - res.CanvasH/2*scale
	return tx, ty, scale
}
