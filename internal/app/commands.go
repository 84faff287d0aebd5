package app

import (
	"log"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fttower/orbit/internal/theme"
)

// handleCommand processes a command from command mode
func (a *App) handleCommand(cmd string) {
	if cmd == "" {
		return
	}

	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return
	}

	switch parts[0] {
	case "q", "quit":
		a.quit = true
	case "reindex":
		a.reindex()
	case "theme":
		if len(parts) < 2 {
			a.SetStatus("Usage: theme <name>")
			return
		}
		a.setTheme(parts[1])
	case "debug":
		a.debugMode = !a.debugMode
		if a.debugMode {
			a.SetStatus("Debug mode ON")
		} else {
			a.SetStatus("Debug mode OFF")
		}
	case "dump":
		a.dumpState()
		a.SetStatus("State dumped to log")
	case "help":
		a.help.Toggle()
	default:
		a.SetStatus("Unknown command: " + parts[0])
	}
}

// setTheme loads a theme by name and applies it to the screen
func (a *App) setTheme(name string) {
	t, err := theme.LoadTheme(name)
	if err != nil {
		log.Printf("theme load failed: %v", err)
		a.SetStatus("Theme not found: " + name)
		return
	}
	a.screen.Theme = t
	a.cfg.Set("theme", name)
	a.SetStatus("Theme: " + name)
}

// dumpState writes the layout, viewport, and query state to the log
// for offline inspection.
func (a *App) dumpState() {
	log.Printf("viewport: %s", spew.Sdump(a.view))
	log.Printf("tags: %s entries: %s", spew.Sdump(a.agg.Tags()), spew.Sdump(a.agg.Entries()))
	if res := a.mapView.Layout(); res != nil {
		log.Printf("layout: %d entries, canvas %.0fx%.0f", len(res.Order), res.CanvasW, res.CanvasH)
		for _, path := range res.Order {
			e := res.Entries[path]
			log.Printf("  %-40s x=%.1f y=%.1f depth=%d", path, e.X, e.Y, e.Depth)
		}
	}
	for _, msg := range a.log.GetMessagesReverse() {
		log.Printf("status %s: %s", msg.Timestamp.Format("15:04:05"), msg.Text)
	}
}
