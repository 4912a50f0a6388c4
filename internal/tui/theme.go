package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/pwfield/internal/strength"
)

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette (subset in use)
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorAccent      = colorBlue
	colorFocus       = colorLavender
	colorBlurred     = colorSurface2
	colorMuted       = colorSubtext0
	colorSuccess     = colorGreen
	colorSlotUnused  = colorSurface1
	colorSlotWeak    = colorRed
	colorSlotMedium  = colorPeach
	colorSlotStrong  = colorGreen
	colorFooterBg    = colorMantle
	colorStatusBarBg = colorSurface0
)

// slotColor is the color an indicator slot takes when active.
func slotColor(level strength.Level) lipgloss.Color {
	switch level {
	case strength.Weak:
		return colorSlotWeak
	case strength.Medium:
		return colorSlotMedium
	case strength.Strong:
		return colorSlotStrong
	default:
		return colorSlotUnused
	}
}

// SlotColors returns the rendered color of each indicator slot for level.
func SlotColors(level strength.Level) [strength.SlotCount]lipgloss.Color {
	var out [strength.SlotCount]lipgloss.Color
	for i, s := range strength.Indicators(level) {
		if s.Active {
			out[i] = slotColor(s.Level)
		} else {
			out[i] = colorSlotUnused
		}
	}
	return out
}
