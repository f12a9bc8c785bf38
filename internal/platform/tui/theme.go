package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/t2048/internal/core"
)

// Theme holds the lipgloss styles used to draw the board and the help line.
type Theme struct {
	Name    string
	Palette map[core.Color]lipgloss.Style

	// Help line
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style
}

// tileStyle is a colored tile: dark or light digits on a filled background.
func tileStyle(fg, bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Bold(true)
}

// ClassicTheme returns the warm 2048 palette.
func ClassicTheme() Theme {
	return Theme{
		Name: "classic",
		Palette: map[core.Color]lipgloss.Style{
			core.ColorDefault:    lipgloss.NewStyle(),
			core.ColorGray:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			core.ColorDim:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			core.ColorWhite:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			core.ColorTile2:      tileStyle("236", "255"),
			core.ColorTile4:      tileStyle("236", "230"),
			core.ColorTile8:      tileStyle("231", "215"),
			core.ColorTile16:     tileStyle("231", "209"),
			core.ColorTile32:     tileStyle("231", "203"),
			core.ColorTile64:     tileStyle("231", "196"),
			core.ColorTile128:    tileStyle("236", "228"),
			core.ColorTile256:    tileStyle("236", "227"),
			core.ColorTile512:    tileStyle("236", "226"),
			core.ColorTile1024:   tileStyle("236", "220"),
			core.ColorTile2048:   tileStyle("231", "214"),
			core.ColorTileSuper:  tileStyle("231", "93"),
			core.ColorBannerWin:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
			core.ColorBannerLose: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		},
		HelpKey:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		HelpDesc:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		HelpSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals with poor color
// support. Tiles are drawn in reverse video.
func MonochromeTheme() Theme {
	theme := ClassicTheme()
	theme.Name = "mono"

	tile := lipgloss.NewStyle().Reverse(true)
	big := tile.Bold(true)
	for c := core.ColorTile2; c <= core.ColorTileSuper; c++ {
		if c >= core.ColorTile128 {
			theme.Palette[c] = big
		} else {
			theme.Palette[c] = tile
		}
	}
	theme.Palette[core.ColorBannerWin] = lipgloss.NewStyle().Bold(true)
	theme.Palette[core.ColorBannerLose] = lipgloss.NewStyle().Bold(true)
	return theme
}

// ThemeByName looks up a built-in theme.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", "classic":
		return ClassicTheme(), nil
	case "mono":
		return MonochromeTheme(), nil
	default:
		return Theme{}, fmt.Errorf("tui: unknown theme %q", name)
	}
}

// ThemeNames lists the built-in theme names.
func ThemeNames() []string {
	return []string{"classic", "mono"}
}
