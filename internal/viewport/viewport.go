// Package viewport owns the pan/zoom transform between canvas space and
// screen space, including eased animated transitions.
package viewport

import (
	"time"
)

// Limits bounds the zoom scale. Every mutating path clamps to these.
type Limits struct {
	MinScale float64
	MaxScale float64
}

// DefaultLimits returns the standard zoom range
func DefaultLimits() Limits {
	return Limits{MinScale: 0.2, MaxScale: 3.0}
}

// Viewport holds the affine transform applied to the canvas:
// screen = canvas*Scale + T.
type Viewport struct {
	Scale float64
	TX    float64
	TY    float64

	limits Limits
	anim   *animation
}

// New creates a viewport at native scale with no translation
func New(limits Limits) *Viewport {
	return &Viewport{Scale: 1, limits: limits}
}

// Pan applies a drag delta 1:1 to the translation
func (v *Viewport) Pan(dx, dy float64) {
	v.TX += dx
	v.TY += dy
}

// ZoomAt applies a scale factor anchored at a screen position: the
// canvas-space point under (px, py) maps to the same screen position
// before and after the zoom.
func (v *Viewport) ZoomAt(px, py, factor float64) {
	// Convert the pointer to canvas space with the current transform
	// before touching the scale.
	cx := (px - v.TX) / v.Scale
	cy := (py - v.TY) / v.Scale

	v.Scale = v.clampScale(v.Scale * factor)

	// Recompute the translation so the same canvas point maps back to
	// the pointer.
	v.TX = px - cx*v.Scale
	v.TY = py - cy*v.Scale
}

// ScreenToCanvas converts a screen position to canvas coordinates
func (v *Viewport) ScreenToCanvas(sx, sy float64) (float64, float64) {
	return (sx - v.TX) / v.Scale, (sy - v.TY) / v.Scale
}

// CanvasToScreen converts a canvas position to screen coordinates
func (v *Viewport) CanvasToScreen(cx, cy float64) (float64, float64) {
	return cx*v.Scale + v.TX, cy*v.Scale + v.TY
}

// SetTransform overwrites the transform directly, clamping scale
func (v *Viewport) SetTransform(tx, ty, scale float64) {
	v.TX = tx
	v.TY = ty
	v.Scale = v.clampScale(scale)
}

func (v *Viewport) clampScale(s float64) float64 {
	if s < v.limits.MinScale {
		return v.limits.MinScale
	}
	if s > v.limits.MaxScale {
		return v.limits.MaxScale
	}
	return s
}

type animation struct {
	startTX, startTY, startScale float64
	endTX, endTY, endScale       float64
	startTime                    time.Time
	duration                     time.Duration
}

// AnimateTo starts an eased transition toward the target transform. A
// new call overwrites any in-flight animation: last request wins, there
// is no queue and no blending of two transitions.
func (v *Viewport) AnimateTo(tx, ty, scale float64, duration time.Duration, now time.Time) {
	if duration <= 0 {
		v.SetTransform(tx, ty, scale)
		v.anim = nil
		return
	}
	v.anim = &animation{
		startTX:    v.TX,
		startTY:    v.TY,
		startScale: v.Scale,
		endTX:      tx,
		endTY:      ty,
		endScale:   v.clampScale(scale),
		startTime:  now,
		duration:   duration,
	}
}

// Animating reports whether a transition is in flight
func (v *Viewport) Animating() bool {
	return v.anim != nil
}

// StopAnimation abandons any in-flight transition, freezing the
// viewport at its current transform.
func (v *Viewport) StopAnimation() {
	v.anim = nil
}

// Tick advances the in-flight animation. Each of scale and the two
// translation components is interpolated independently with a cubic
// ease-out. Returns true while the animation is still running.
func (v *Viewport) Tick(now time.Time) bool {
	if v.anim == nil {
		return false
	}
	a := v.anim

	progress := float64(now.Sub(a.startTime)) / float64(a.duration)
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	eased := easeOutCubic(progress)

	if progress >= 1 {
		// lerp(a, b, 1) is exactly b; assign directly to avoid
		// floating-point drift from a + (b-a)*1.
		v.TX = a.endTX
		v.TY = a.endTY
		v.Scale = v.clampScale(a.endScale)
		v.anim = nil
		return false
	}

	v.TX = lerp(a.startTX, a.endTX, eased)
	v.TY = lerp(a.startTY, a.endTY, eased)
	v.Scale = v.clampScale(lerp(a.startScale, a.endScale, eased))
	return true
}

func easeOutCubic(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
