package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultColor is the swatch color used for unknown or absent color labels.
const DefaultColor = lipgloss.Color("7")

// colorCodes maps the known map color names to ANSI-256 terminal colors.
var colorCodes = map[string]lipgloss.Color{
	"black":   "0",
	"blue":    "4",
	"brown":   "94",
	"crimson": "197",
	"cyan":    "6",
	"darkred": "88",
	"gold":    "220",
	"green":   "2",
	"lime":    "118",
	"magenta": "5",
	"maroon":  "1",
	"orange":  "208",
	"purple":  "93",
	"red":     "1",
	"violet":  "177",
	"yellow":  "3",
}

// ColorCode resolves a map color label to a terminal color, falling back to
// DefaultColor for unknown names. The label itself is never rejected: the
// parser preserves unknown colors verbatim and display degrades gracefully.
func ColorCode(name string) lipgloss.Color {
	if c, ok := colorCodes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}

	return DefaultColor
}
