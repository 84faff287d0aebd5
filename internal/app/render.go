package app

import (
	"fmt"
	"time"
)

// render draws the current state to the screen
func (a *App) render() {
	a.screen.Clear()

	width := a.screen.GetWidth()
	height := a.screen.GetHeight()
	area := a.mapArea()

	// Header
	header := fmt.Sprintf(" orbit · %d files · %d folders · %d protocols · %s ",
		a.stats.TotalFiles, a.stats.TotalFolders, a.stats.TotalProtocols, formatSize(a.stats.TotalSize))
	a.screen.DrawString(0, 0, header, a.screen.HeaderStyle())

	a.mapView.Render(a.screen, area)
	a.results.Render(a.screen, area)

	// Tag bar sits above the status line whenever a query is active
	row := height - 2
	if a.command.IsActive() {
		a.command.Render(a.screen, row)
		row--
	}
	if a.tagBar.IsActive() || len(a.agg.Tags()) > 0 {
		a.tagBar.Render(a.screen, row, len(a.agg.Entries()))
	}

	a.renderStatus(width, height)

	// Overlays draw on top of everything
	a.detail.Render(a.screen)
	a.help.Render(a.screen)

	a.screen.Show()
}

// renderStatus draws the bottom mode-and-message line
func (a *App) renderStatus(width, height int) {
	mode := "MAP"
	switch {
	case a.detail.IsVisible():
		mode = "DETAIL"
	case a.command.IsActive():
		mode = "COMMAND"
	case a.tagBar.IsActive():
		mode = "TAGS"
	}
	status := fmt.Sprintf("-- %s --", mode)
	a.screen.DrawString(0, height-1, status, a.screen.StatusModeStyle())

	x := len(status) + 1
	if a.hl.Pinned() {
		pinned := "[pinned]"
		a.screen.DrawString(x, height-1, pinned, a.screen.StatusPinnedStyle())
		x += len(pinned) + 1
	}

	if a.statusMsg != "Ready" && time.Since(a.statusTime) <= 3*time.Second {
		a.screen.DrawStringLimited(x, height-1, a.statusMsg, width-x, a.screen.StatusMessageStyle())
	}

	zoom := fmt.Sprintf(" %d%% ", int(a.view.Scale*100))
	a.screen.DrawString(width-len(zoom), height-1, zoom, a.screen.StatusModeStyle())
}

// formatSize renders a byte count in a compact human form
func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
