package viewport

import (
	"math"
	"testing"
	"time"

	"pgregory.net/rapid"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestPanIsOneToOne(t *testing.T) {
	v := New(DefaultLimits())
	v.Pan(10, -4)
	v.Pan(2, 2)
	if v.TX != 12 || v.TY != -2 {
		t.Errorf("translation = (%v, %v), want (12, -2)", v.TX, v.TY)
	}
	if v.Scale != 1 {
		t.Errorf("pan changed scale to %v", v.Scale)
	}
}

func TestZoomAtKeepsPointerAnchored(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := New(DefaultLimits())
		v.SetTransform(
			rapid.Float64Range(-200, 200).Draw(t, "tx"),
			rapid.Float64Range(-200, 200).Draw(t, "ty"),
			rapid.Float64Range(0.2, 3.0).Draw(t, "scale"),
		)
		px := rapid.Float64Range(0, 160).Draw(t, "px")
		py := rapid.Float64Range(0, 50).Draw(t, "py")
		factor := rapid.Float64Range(0.5, 2.0).Draw(t, "factor")

		cx, cy := v.ScreenToCanvas(px, py)
		v.ZoomAt(px, py, factor)
		sx, sy := v.CanvasToScreen(cx, cy)

		if !almostEqual(sx, px) || !almostEqual(sy, py) {
			t.Fatalf("anchor moved: (%v, %v) -> (%v, %v)", px, py, sx, sy)
		}
	})
}

func TestZoomAtClampsScale(t *testing.T) {
	v := New(Limits{MinScale: 0.5, MaxScale: 2.0})

	v.ZoomAt(0, 0, 100)
	if v.Scale != 2.0 {
		t.Errorf("scale = %v, want clamped to 2.0", v.Scale)
	}
	v.ZoomAt(0, 0, 0.001)
	if v.Scale != 0.5 {
		t.Errorf("scale = %v, want clamped to 0.5", v.Scale)
	}
}

func TestAnimateToZeroDurationAppliesImmediately(t *testing.T) {
	v := New(DefaultLimits())
	v.AnimateTo(5, 7, 2, 0, time.Now())
	if v.TX != 5 || v.TY != 7 || v.Scale != 2 {
		t.Errorf("transform = (%v, %v, %v), want (5, 7, 2)", v.TX, v.TY, v.Scale)
	}
	if v.Animating() {
		t.Error("zero-duration animate left an animation in flight")
	}
}

func TestTickEasesToTarget(t *testing.T) {
	v := New(DefaultLimits())
	start := time.Unix(0, 0)
	v.AnimateTo(100, 50, 2, time.Second, start)

	// Halfway: eased progress is 1 - 0.5^3 = 0.875.
	running := v.Tick(start.Add(500 * time.Millisecond))
	if !running {
		t.Fatal("animation ended early")
	}
	if !almostEqual(v.TX, 87.5) {
		t.Errorf("TX at halfway = %v, want 87.5", v.TX)
	}
	if !almostEqual(v.Scale, 1.875) {
		t.Errorf("Scale at halfway = %v, want 1.875", v.Scale)
	}

	// Past the end: lands exactly on target and stops.
	running = v.Tick(start.Add(2 * time.Second))
	if running {
		t.Error("animation still running past its duration")
	}
	if v.TX != 100 || v.TY != 50 || v.Scale != 2 {
		t.Errorf("final transform = (%v, %v, %v), want (100, 50, 2)", v.TX, v.TY, v.Scale)
	}
	if v.Animating() {
		t.Error("Animating() true after completion")
	}
}

func TestAnimateToOverwritesInFlight(t *testing.T) {
	v := New(DefaultLimits())
	start := time.Unix(0, 0)
	v.AnimateTo(100, 0, 1, time.Second, start)
	v.Tick(start.Add(200 * time.Millisecond))

	// The second request wins; the first target is never reached.
	mid := v.TX
	v.AnimateTo(-50, 0, 1, time.Second, start.Add(200*time.Millisecond))
	v.Tick(start.Add(2 * time.Second))

	if v.TX != -50 {
		t.Errorf("TX = %v, want the second target -50", v.TX)
	}
	if mid == 0 {
		t.Error("first animation should have progressed before being replaced")
	}
}

func TestStopAnimationFreezes(t *testing.T) {
	v := New(DefaultLimits())
	start := time.Unix(0, 0)
	v.AnimateTo(100, 0, 1, time.Second, start)
	v.Tick(start.Add(300 * time.Millisecond))
	frozen := v.TX
	v.StopAnimation()

	if v.Tick(start.Add(time.Second)) {
		t.Error("Tick reported running after StopAnimation")
	}
	if v.TX != frozen {
		t.Errorf("TX moved after stop: %v -> %v", frozen, v.TX)
	}
}
