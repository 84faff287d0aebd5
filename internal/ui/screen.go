// Package ui renders the map, tag bar, results panel, and overlays on
// a tcell screen.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/fttower/orbit/internal/config"
	"github.com/fttower/orbit/internal/theme"
)

// Screen manages the tcell screen and rendering
type Screen struct {
	tcellScreen tcell.Screen
	width       int
	height      int
	Theme       *theme.Theme
}

// NewScreen creates a new Screen instance with the configured theme
func NewScreen() (*Screen, error) {
	// Load config to get the theme name
	cfg, err := config.Load()
	if err != nil {
		// If config fails to load, use Default as fallback
		return NewScreenWithTheme(theme.Default())
	}

	// Try to load from TOML files first, fall back to built-ins
	t := theme.LoadThemeOrDefault(cfg.Theme)
	return NewScreenWithTheme(t)
}

// NewScreenWithTheme creates a new Screen instance with a specific theme
func NewScreenWithTheme(t *theme.Theme) (*Screen, error) {
	tcellScreen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	if err := tcellScreen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}

	width, height := tcellScreen.Size()
	return &Screen{
		tcellScreen: tcellScreen,
		width:       width,
		height:      height,
		Theme:       t,
	}, nil
}

// Close closes the screen
func (s *Screen) Close() error {
	s.tcellScreen.Fini()
	return nil
}

// Clear clears the entire screen
func (s *Screen) Clear() {
	s.tcellScreen.Fill(' ', s.BackgroundStyle())
}

// SetCell sets a cell at the given position
func (s *Screen) SetCell(x, y int, r rune, style tcell.Style) {
	if x >= 0 && x < s.width && y >= 0 && y < s.height {
		s.tcellScreen.SetContent(x, y, r, nil, style)
	}
}

// DrawString draws a string at the given position with the given style
func (s *Screen) DrawString(x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		s.SetCell(col, y, r, style)
		col += RuneWidth(r)
	}
}

// DrawStringLimited draws a string, truncating it if it exceeds maxWidth
func (s *Screen) DrawStringLimited(x, y int, text string, maxWidth int, style tcell.Style) {
	if maxWidth <= 0 {
		return
	}
	s.DrawString(x, y, TruncateToWidth(text, maxWidth), style)
}

// PollEvent polls for the next event (key press, mouse, etc.)
func (s *Screen) PollEvent() tcell.Event {
	return s.tcellScreen.PollEvent()
}

// Show shows the screen
func (s *Screen) Show() {
	s.tcellScreen.Show()
}

// Size returns the width and height of the screen
func (s *Screen) Size() (int, int) {
	w, h := s.tcellScreen.Size()
	s.width = w
	s.height = h
	return w, h
}

// GetWidth returns the width of the screen
func (s *Screen) GetWidth() int {
	s.width, _ = s.tcellScreen.Size()
	return s.width
}

// GetHeight returns the height of the screen
func (s *Screen) GetHeight() int {
	_, s.height = s.tcellScreen.Size()
	return s.height
}

// EnableMouse enables mouse support on the screen
func (s *Screen) EnableMouse() {
	s.tcellScreen.EnableMouse()
}

// Theme-aware style methods

// BackgroundStyle returns the default background style for the application
func (s *Screen) BackgroundStyle() tcell.Style {
	return tcell.StyleDefault.Background(s.Theme.Colors.Background)
}

// NodeTextStyle returns the style for node labels
func (s *Screen) NodeTextStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.NodeText, s.Theme.Colors.Background)
}

// NodeFolderStyle returns the style for folder glyphs and boxes
func (s *Screen) NodeFolderStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.NodeFolder, s.Theme.Colors.Background).Bold(true)
}

// NodeFileStyle returns the style for file glyphs and boxes
func (s *Screen) NodeFileStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.NodeFile, s.Theme.Colors.Background)
}

// NodeHighlightStyle returns the style for highlighted nodes
func (s *Screen) NodeHighlightStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.NodeHighlight, s.Theme.Colors.NodeHighlightBg).Bold(true)
}

// ArrowOpenStyle returns the style for expanded folder arrows
func (s *Screen) ArrowOpenStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.ArrowOpen, s.Theme.Colors.Background)
}

// ArrowClosedStyle returns the style for collapsed folder arrows
func (s *Screen) ArrowClosedStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.ArrowClosed, s.Theme.Colors.Background)
}

// EdgeAmbientStyle returns the low-emphasis style for edges with no
// active highlight session
func (s *Screen) EdgeAmbientStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.EdgeAmbient, s.Theme.Colors.Background).Dim(true)
}

// EdgeHighlightStyle returns the style for a highlighted edge, ramped
// between the highlight start and end colors by t in [0, 1].
func (s *Screen) EdgeHighlightStyle(t float64) tcell.Style {
	c := theme.Blend(s.Theme.Colors.EdgeHighlightStart, s.Theme.Colors.EdgeHighlightEnd, t)
	return theme.ColorPairToStyle(c, s.Theme.Colors.Background).Bold(true)
}

// TagLabelStyle returns the style for the tag bar label
func (s *Screen) TagLabelStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.TagLabel, s.Theme.Colors.Background)
}

// TagTextStyle returns the style for tag bar text
func (s *Screen) TagTextStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.TagText, s.Theme.Colors.Background)
}

// TagCursorStyle returns the style for the tag bar cursor
func (s *Screen) TagCursorStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.TagCursor, s.Theme.Colors.Background).Reverse(true)
}

// TagResultCountStyle returns the style for the result count
func (s *Screen) TagResultCountStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.TagResultCount, s.Theme.Colors.Background)
}

// ResultTitleStyle returns the style for result panel titles
func (s *Screen) ResultTitleStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.ResultTitle, s.Theme.Colors.Background)
}

// ResultScoreStyle returns the style for result panel scores
func (s *Screen) ResultScoreStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.ResultScore, s.Theme.Colors.Background)
}

// ResultSelectedStyle returns the style for the selected result row
func (s *Screen) ResultSelectedStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.ResultSelected, s.Theme.Colors.Background).Reverse(true)
}

// DetailStyle returns the style for detail overlay content background
func (s *Screen) DetailStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.DetailContent, s.Theme.Colors.DetailBackground)
}

// DetailBorderStyle returns the style for detail overlay borders
func (s *Screen) DetailBorderStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.DetailBorder, s.Theme.Colors.DetailBackground)
}

// DetailTitleStyle returns the style for the detail overlay title
func (s *Screen) DetailTitleStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.DetailTitle, s.Theme.Colors.DetailBackground).Bold(true)
}

// CommandPromptStyle returns the style for command prompt
func (s *Screen) CommandPromptStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.TagLabel, s.Theme.Colors.Background)
}

// CommandTextStyle returns the style for command text
func (s *Screen) CommandTextStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.TagText, s.Theme.Colors.Background)
}

// CommandCursorStyle returns the style for command cursor
func (s *Screen) CommandCursorStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.TagCursor, s.Theme.Colors.Background).Reverse(true)
}

// StatusModeStyle returns the style for the mode indicator
func (s *Screen) StatusModeStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.StatusMode, s.Theme.Colors.Background).Bold(true)
}

// StatusMessageStyle returns the style for status messages
func (s *Screen) StatusMessageStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.StatusMessage, s.Theme.Colors.Background)
}

// StatusPinnedStyle returns the style for the pin indicator
func (s *Screen) StatusPinnedStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.StatusPinned, s.Theme.Colors.Background).Bold(true)
}

// HeaderStyle returns the style for the header title
func (s *Screen) HeaderStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.HeaderTitle, s.Theme.Colors.Background).Bold(true)
}
