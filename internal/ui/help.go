package ui

// HelpScreen manages the keybinding overlay
type HelpScreen struct {
	visible bool
}

// NewHelpScreen creates a hidden help screen
func NewHelpScreen() *HelpScreen {
	return &HelpScreen{}
}

// Toggle toggles the help screen visibility
func (h *HelpScreen) Toggle() {
	h.visible = !h.visible
}

// IsVisible returns whether the help screen is visible
func (h *HelpScreen) IsVisible() bool {
	return h.visible
}

// helpLines is the static keybinding reference
var helpLines = []string{
	"Navigation:",
	"  h/j/k/l     - Pan the map (arrow keys work too)",
	"  +/-         - Zoom in / out at center",
	"  wheel       - Zoom at pointer",
	"  drag        - Pan with the mouse",
	"  0           - Fit the whole map on screen",
	"",
	"Tree:",
	"  click       - Toggle a folder / open a file",
	"  Enter       - Open detail for the highlighted file",
	"  c           - Collapse everything",
	"",
	"Search:",
	"  /           - Enter tag mode (Enter adds, Esc leaves)",
	"  Backspace   - Remove the last tag (in tag mode, on empty input)",
	"  Tab         - Cycle through ranked results (pins the camera)",
	"  p           - Toggle the camera pin",
	"  x           - Clear all tags",
	"",
	"Other:",
	"  :           - Command mode (reindex, theme, debug, q)",
	"  r           - Rebuild the index",
	"  ?           - Toggle this help",
	"  q           - Quit",
}

// Render draws the help overlay centered on the screen
func (h *HelpScreen) Render(screen *Screen) {
	if !h.visible {
		return
	}

	screenW := screen.GetWidth()
	screenH := screen.GetHeight()

	boxWidth := 0
	for _, line := range helpLines {
		if w := StringWidth(line); w > boxWidth {
			boxWidth = w
		}
	}
	boxWidth += 4
	boxHeight := len(helpLines) + 4
	if boxWidth > screenW-2 {
		boxWidth = screenW - 2
	}
	if boxHeight > screenH-2 {
		boxHeight = screenH - 2
	}

	startX := (screenW - boxWidth) / 2
	startY := (screenH - boxHeight) / 2

	borderStyle := screen.DetailBorderStyle()
	contentStyle := screen.DetailStyle()
	titleStyle := screen.DetailTitleStyle()

	screen.SetCell(startX, startY, '┌', borderStyle)
	for i := 1; i < boxWidth-1; i++ {
		screen.SetCell(startX+i, startY, '─', borderStyle)
	}
	screen.SetCell(startX+boxWidth-1, startY, '┐', borderStyle)

	screen.SetCell(startX, startY+1, '│', borderStyle)
	for i := 1; i < boxWidth-1; i++ {
		screen.SetCell(startX+i, startY+1, ' ', contentStyle)
	}
	screen.DrawStringLimited(startX+2, startY+1, "Keybindings", boxWidth-4, titleStyle)
	screen.SetCell(startX+boxWidth-1, startY+1, '│', borderStyle)

	screen.SetCell(startX, startY+2, '├', borderStyle)
	for i := 1; i < boxWidth-1; i++ {
		screen.SetCell(startX+i, startY+2, '─', borderStyle)
	}
	screen.SetCell(startX+boxWidth-1, startY+2, '┤', borderStyle)

	for row := 0; row < boxHeight-4; row++ {
		y := startY + 3 + row
		screen.SetCell(startX, y, '│', borderStyle)
		for i := 1; i < boxWidth-1; i++ {
			screen.SetCell(startX+i, y, ' ', contentStyle)
		}
		screen.SetCell(startX+boxWidth-1, y, '│', borderStyle)
		if row < len(helpLines) {
			screen.DrawStringLimited(startX+2, y, helpLines[row], boxWidth-4, contentStyle)
		}
	}

	screen.SetCell(startX, startY+boxHeight-1, '└', borderStyle)
	for i := 1; i < boxWidth-1; i++ {
		screen.SetCell(startX+i, startY+boxHeight-1, '─', borderStyle)
	}
	screen.SetCell(startX+boxWidth-1, startY+boxHeight-1, '┘', borderStyle)
}
