package ui

import (
	"fmt"
	"strings"

	"github.com/fttower/orbit/internal/index"
)

// DetailView shows the metadata and content preview of a single file
// in a centered overlay box.
type DetailView struct {
	file    *index.File
	visible bool
	scroll  int
}

// NewDetailView creates a hidden detail view
func NewDetailView() *DetailView {
	return &DetailView{}
}

// Show displays the overlay for the given file
func (d *DetailView) Show(file *index.File) {
	d.file = file
	d.visible = true
	d.scroll = 0
}

// Hide closes the overlay
func (d *DetailView) Hide() {
	d.visible = false
	d.file = nil
}

// IsVisible returns whether the overlay is shown
func (d *DetailView) IsVisible() bool {
	return d.visible
}

// ScrollDown moves the content window down one line
func (d *DetailView) ScrollDown() {
	d.scroll++
}

// ScrollUp moves the content window up one line
func (d *DetailView) ScrollUp() {
	if d.scroll > 0 {
		d.scroll--
	}
}

// lines builds the display lines for the current file
func (d *DetailView) lines(width int) []string {
	f := d.file
	var out []string

	out = append(out, "Path: "+f.Path)
	out = append(out, fmt.Sprintf("Size: %d bytes", f.Size))
	if f.GithubURL != "" {
		out = append(out, "URL: "+f.GithubURL)
	}
	if len(f.Headers) > 0 {
		out = append(out, "")
		out = append(out, "Sections:")
		for _, h := range f.Headers {
			out = append(out, "  "+h)
		}
	}
	if len(f.Keywords) > 0 {
		out = append(out, "")
		out = append(out, "Keywords: "+strings.Join(f.Keywords, ", "))
	}
	if f.Content != "" {
		out = append(out, "")
		out = append(out, strings.Repeat("─", width))
		for _, line := range strings.Split(f.Content, "\n") {
			for StringWidth(line) > width {
				cut := FindRuneIndexAtWidth(line, width)
				out = append(out, line[:cut])
				line = line[cut:]
			}
			out = append(out, line)
		}
	}
	return out
}

// Render draws the overlay centered on the screen
func (d *DetailView) Render(screen *Screen) {
	if !d.visible || d.file == nil {
		return
	}

	screenW := screen.GetWidth()
	screenH := screen.GetHeight()

	boxWidth := screenW * 3 / 4
	if boxWidth > 90 {
		boxWidth = 90
	}
	if boxWidth < 20 {
		boxWidth = screenW - 2
	}
	boxHeight := screenH * 3 / 4
	if boxHeight < 8 {
		boxHeight = screenH - 2
	}

	startX := (screenW - boxWidth) / 2
	startY := (screenH - boxHeight) / 2

	borderStyle := screen.DetailBorderStyle()
	contentStyle := screen.DetailStyle()
	titleStyle := screen.DetailTitleStyle()

	// Top border
	screen.SetCell(startX, startY, '┌', borderStyle)
	for i := 1; i < boxWidth-1; i++ {
		screen.SetCell(startX+i, startY, '─', borderStyle)
	}
	screen.SetCell(startX+boxWidth-1, startY, '┐', borderStyle)

	// Title row
	title := d.file.Title
	if title == "" {
		title = d.file.Name
	}
	screen.SetCell(startX, startY+1, '│', borderStyle)
	screen.DrawStringLimited(startX+2, startY+1, TruncateToWidthWithEllipsis(title, boxWidth-4), boxWidth-4, titleStyle)
	for i := StringWidth(title) + 2; i < boxWidth-1; i++ {
		screen.SetCell(startX+i, startY+1, ' ', contentStyle)
	}
	screen.SetCell(startX+boxWidth-1, startY+1, '│', borderStyle)

	// Separator
	screen.SetCell(startX, startY+2, '├', borderStyle)
	for i := 1; i < boxWidth-1; i++ {
		screen.SetCell(startX+i, startY+2, '─', borderStyle)
	}
	screen.SetCell(startX+boxWidth-1, startY+2, '┤', borderStyle)

	contentHeight := boxHeight - 4
	contentWidth := boxWidth - 4
	lines := d.lines(contentWidth)

	maxScroll := len(lines) - contentHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if d.scroll > maxScroll {
		d.scroll = maxScroll
	}

	for row := 0; row < contentHeight; row++ {
		y := startY + 3 + row
		screen.SetCell(startX, y, '│', borderStyle)
		for i := 1; i < boxWidth-1; i++ {
			screen.SetCell(startX+i, y, ' ', contentStyle)
		}
		screen.SetCell(startX+boxWidth-1, y, '│', borderStyle)

		idx := d.scroll + row
		if idx >= 0 && idx < len(lines) {
			screen.DrawStringLimited(startX+2, y, lines[idx], contentWidth, contentStyle)
		}
	}

	// Bottom border with hint
	screen.SetCell(startX, startY+boxHeight-1, '└', borderStyle)
	for i := 1; i < boxWidth-1; i++ {
		screen.SetCell(startX+i, startY+boxHeight-1, '─', borderStyle)
	}
	screen.SetCell(startX+boxWidth-1, startY+boxHeight-1, '┘', borderStyle)

	hint := " j/k scroll · Esc close "
	if StringWidth(hint) < boxWidth-2 {
		screen.DrawString(startX+boxWidth-2-StringWidth(hint), startY+boxHeight-1, hint, borderStyle)
	}
}
