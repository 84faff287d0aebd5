package theme

import (
	"github.com/gdamore/tcell/v2"
)

// Colors holds all the color definitions for the theme
type Colors struct {
	Background tcell.Color

	// Map node colors
	NodeText        tcell.Color
	NodeFolder      tcell.Color
	NodeFile        tcell.Color
	NodeHighlight   tcell.Color
	NodeHighlightBg tcell.Color
	ArrowOpen       tcell.Color
	ArrowClosed     tcell.Color

	// Edge colors; highlighted edges ramp between start and end by depth
	EdgeAmbient        tcell.Color
	EdgeHighlightStart tcell.Color
	EdgeHighlightEnd   tcell.Color

	// Tag bar colors
	TagLabel       tcell.Color
	TagText        tcell.Color
	TagCursor      tcell.Color
	TagResultCount tcell.Color

	// Results panel colors
	ResultTitle    tcell.Color
	ResultScore    tcell.Color
	ResultSelected tcell.Color

	// Detail overlay colors
	DetailBackground tcell.Color
	DetailBorder     tcell.Color
	DetailTitle      tcell.Color
	DetailContent    tcell.Color

	// Status line colors
	StatusMode    tcell.Color
	StatusMessage tcell.Color
	StatusPinned  tcell.Color

	// Header colors
	HeaderTitle tcell.Color
}

// Theme represents a complete color theme
type Theme struct {
	Name   string
	Colors Colors
}

// Default returns a default theme using terminal defaults for text and
// a dim/bright split for ambient versus highlighted edges.
func Default() *Theme {
	return &Theme{
		Name: "default",
		Colors: Colors{
			Background:         tcell.ColorDefault,
			NodeText:           tcell.ColorDefault,
			NodeFolder:         tcell.ColorDefault,
			NodeFile:           tcell.ColorDefault,
			NodeHighlight:      tcell.ColorDefault,
			NodeHighlightBg:    tcell.ColorDefault,
			ArrowOpen:          tcell.ColorDefault,
			ArrowClosed:        tcell.ColorDefault,
			EdgeAmbient:        tcell.ColorDefault,
			EdgeHighlightStart: tcell.ColorDefault,
			EdgeHighlightEnd:   tcell.ColorDefault,
			TagLabel:           tcell.ColorDefault,
			TagText:            tcell.ColorDefault,
			TagCursor:          tcell.ColorDefault,
			TagResultCount:     tcell.ColorDefault,
			ResultTitle:        tcell.ColorDefault,
			ResultScore:        tcell.ColorDefault,
			ResultSelected:     tcell.ColorDefault,
			DetailBackground:   tcell.ColorDefault,
			DetailBorder:       tcell.ColorDefault,
			DetailTitle:        tcell.ColorDefault,
			DetailContent:      tcell.ColorDefault,
			StatusMode:         tcell.ColorDefault,
			StatusMessage:      tcell.ColorDefault,
			StatusPinned:       tcell.ColorDefault,
			HeaderTitle:        tcell.ColorDefault,
		},
	}
}

// TokyoNight returns the Tokyo Night theme
func TokyoNight() *Theme {
	return &Theme{
		Name: "tokyo-night",
		Colors: Colors{
			// Tokyo Night palette
			Background:         HexToColor("#1a1b26"), // Dark background
			NodeText:           HexToColor("#c0caf5"), // Light gray-blue
			NodeFolder:         HexToColor("#7aa2f7"), // Blue
			NodeFile:           HexToColor("#c0caf5"), // Light gray-blue
			NodeHighlight:      HexToColor("#1a1b26"), // Dark text on bright bg
			NodeHighlightBg:    HexToColor("#e0af68"), // Amber
			ArrowOpen:          HexToColor("#7dcfff"), // Cyan
			ArrowClosed:        HexToColor("#7dcfff"), // Cyan
			EdgeAmbient:        HexToColor("#565f89"), // Comment gray
			EdgeHighlightStart: HexToColor("#7aa2f7"), // Blue
			EdgeHighlightEnd:   HexToColor("#e0af68"), // Amber
			TagLabel:           HexToColor("#bb9af7"), // Magenta
			TagText:            HexToColor("#c0caf5"), // Light gray-blue
			TagCursor:          HexToColor("#7aa2f7"), // Blue
			TagResultCount:     HexToColor("#9ece6a"), // Green
			ResultTitle:        HexToColor("#c0caf5"), // Light gray-blue
			ResultScore:        HexToColor("#9ece6a"), // Green
			ResultSelected:     HexToColor("#7aa2f7"), // Blue
			DetailBackground:   HexToColor("#1a1b26"), // Dark background
			DetailBorder:       HexToColor("#7dcfff"), // Cyan
			DetailTitle:        HexToColor("#bb9af7"), // Magenta
			DetailContent:      HexToColor("#c0caf5"), // Light gray-blue
			StatusMode:         HexToColor("#bb9af7"), // Magenta
			StatusMessage:      HexToColor("#9ece6a"), // Green
			StatusPinned:       HexToColor("#f7768e"), // Red
			HeaderTitle:        HexToColor("#bb9af7"), // Magenta
		},
	}
}
