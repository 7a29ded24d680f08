package tui

import (
	"github.com/charmbracelet/lipgloss"

	"geopoint/internal/config"
)

type styles struct {
	app   lipgloss.Style
	box   lipgloss.Style
	title lipgloss.Style
	dim   lipgloss.Style
}

// newStyles builds the style set; accent and dim colors come from config.
func newStyles(cfg *config.Config) styles {
	var (
		baseFg    = lipgloss.Color("#E6E6E6")
		baseDimFg = lipgloss.AdaptiveColor{Light: cfg.Viewer.DimColor, Dark: cfg.Viewer.DimColor}
		accentFg  = lipgloss.Color(cfg.Viewer.AccentColor)
		borderCol = lipgloss.Color("#243141")
	)
	return styles{
		app:   lipgloss.NewStyle().Foreground(baseFg),
		box:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1),
		title: lipgloss.NewStyle().Foreground(accentFg).Bold(true),
		dim:   lipgloss.NewStyle().Foreground(baseDimFg),
	}
}
