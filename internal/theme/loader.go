package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

// ThemeConfig represents the raw TOML theme configuration
type ThemeConfig struct {
	Name   string `toml:"name"`
	Colors struct {
		Background         string `toml:"background"`
		NodeText           string `toml:"node_text"`
		NodeFolder         string `toml:"node_folder"`
		NodeFile           string `toml:"node_file"`
		NodeHighlight      string `toml:"node_highlight"`
		NodeHighlightBg    string `toml:"node_highlight_bg"`
		ArrowOpen          string `toml:"arrow_open"`
		ArrowClosed        string `toml:"arrow_closed"`
		EdgeAmbient        string `toml:"edge_ambient"`
		EdgeHighlightStart string `toml:"edge_highlight_start"`
		EdgeHighlightEnd   string `toml:"edge_highlight_end"`
		TagLabel           string `toml:"tag_label"`
		TagText            string `toml:"tag_text"`
		TagCursor          string `toml:"tag_cursor"`
		TagResultCount     string `toml:"tag_result_count"`
		ResultTitle        string `toml:"result_title"`
		ResultScore        string `toml:"result_score"`
		ResultSelected     string `toml:"result_selected"`
		DetailBackground   string `toml:"detail_background"`
		DetailBorder       string `toml:"detail_border"`
		DetailTitle        string `toml:"detail_title"`
		DetailContent      string `toml:"detail_content"`
		StatusMode         string `toml:"status_mode"`
		StatusMessage      string `toml:"status_message"`
		StatusPinned       string `toml:"status_pinned"`
		HeaderTitle        string `toml:"header_title"`
	} `toml:"colors"`
}

// getThemePaths returns the search paths for theme files
func getThemePaths() []string {
	paths := []string{}

	// User config directory
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "orbit", "themes"))
	}

	// User local share directory
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".local", "share", "orbit", "themes"))
	}

	return paths
}

// findThemeFile searches for a theme file in standard locations
func findThemeFile(themeName string) (string, error) {
	filename := themeName + ".toml"

	for _, dir := range getThemePaths() {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("theme file not found: %s", filename)
}

// LoadThemeFromFile loads a theme from a TOML file
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var config ThemeConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	return configToTheme(config), nil
}

// LoadTheme loads a theme by name, searching standard theme directories
func LoadTheme(themeName string) (*Theme, error) {
	filePath, err := findThemeFile(themeName)
	if err != nil {
		return nil, err
	}

	return LoadThemeFromFile(filePath)
}

// LoadThemeOrDefault loads a theme by name, falling back to built-ins.
// "tokyo-night" always resolves to the built-in palette; unknown names
// resolve to the terminal-default theme.
func LoadThemeOrDefault(themeName string) *Theme {
	if t, err := LoadTheme(themeName); err == nil {
		return t
	}
	if themeName == "tokyo-night" {
		return TokyoNight()
	}
	return Default()
}

// configToTheme converts a ThemeConfig to a Theme, with fallback to
// Tokyo Night for missing colors
func configToTheme(config ThemeConfig) *Theme {
	// Start with Tokyo Night as base
	t := TokyoNight()
	if config.Name != "" {
		t.Name = config.Name
	}

	c := config.Colors
	setColor(&t.Colors.Background, c.Background)
	setColor(&t.Colors.NodeText, c.NodeText)
	setColor(&t.Colors.NodeFolder, c.NodeFolder)
	setColor(&t.Colors.NodeFile, c.NodeFile)
	setColor(&t.Colors.NodeHighlight, c.NodeHighlight)
	setColor(&t.Colors.NodeHighlightBg, c.NodeHighlightBg)
	setColor(&t.Colors.ArrowOpen, c.ArrowOpen)
	setColor(&t.Colors.ArrowClosed, c.ArrowClosed)
	setColor(&t.Colors.EdgeAmbient, c.EdgeAmbient)
	setColor(&t.Colors.EdgeHighlightStart, c.EdgeHighlightStart)
	setColor(&t.Colors.EdgeHighlightEnd, c.EdgeHighlightEnd)
	setColor(&t.Colors.TagLabel, c.TagLabel)
	setColor(&t.Colors.TagText, c.TagText)
	setColor(&t.Colors.TagCursor, c.TagCursor)
	setColor(&t.Colors.TagResultCount, c.TagResultCount)
	setColor(&t.Colors.ResultTitle, c.ResultTitle)
	setColor(&t.Colors.ResultScore, c.ResultScore)
	setColor(&t.Colors.ResultSelected, c.ResultSelected)
	setColor(&t.Colors.DetailBackground, c.DetailBackground)
	setColor(&t.Colors.DetailBorder, c.DetailBorder)
	setColor(&t.Colors.DetailTitle, c.DetailTitle)
	setColor(&t.Colors.DetailContent, c.DetailContent)
	setColor(&t.Colors.StatusMode, c.StatusMode)
	setColor(&t.Colors.StatusMessage, c.StatusMessage)
	setColor(&t.Colors.StatusPinned, c.StatusPinned)
	setColor(&t.Colors.HeaderTitle, c.HeaderTitle)

	return t
}

// setColor overrides dst when the config supplied a value
func setColor(dst *tcell.Color, value string) {
	if value != "" {
		*dst = ParseColorString(value)
	}
}
