package theme

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

func fromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// HexToColor converts #RRGGBB or #RGB to a tcell color. Malformed
// input maps to the terminal default.
func HexToColor(s string) tcell.Color {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = strings.Repeat(string(s[0]), 2) +
			strings.Repeat(string(s[1]), 2) +
			strings.Repeat(string(s[2]), 2)
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return tcell.ColorDefault
	}
	return fromColorful(c)
}

// ParseColorString accepts #RRGGBB, #RGB, or rgb(r,g,b).
func ParseColorString(s string) tcell.Color {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return HexToColor(s)
	}

	var r, g, b int
	if n, err := fmt.Sscanf(s, "rgb(%d,%d,%d)", &r, &g, &b); err == nil && n == 3 {
		if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
			return tcell.ColorDefault
		}
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.ColorDefault
}

// ColorPairToStyle creates a style with specific foreground and
// background colors.
func ColorPairToStyle(fgColor, bgColor tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fgColor).Background(bgColor)
}

// Blend interpolates between two colors in HCL space. t runs from 0
// (from) to 1 (to). Terminal-default colors cannot be interpolated and
// are returned as-is.
func Blend(from, to tcell.Color, t float64) tcell.Color {
	if from == tcell.ColorDefault || to == tcell.ColorDefault {
		return from
	}
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}

	fr, fg, fb := from.RGB()
	tr, tg, tb := to.RGB()
	a := colorful.Color{R: float64(fr) / 255, G: float64(fg) / 255, B: float64(fb) / 255}
	b := colorful.Color{R: float64(tr) / 255, G: float64(tg) / 255, B: float64(tb) / 255}

	r, g, bl := a.BlendHcl(b, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}
