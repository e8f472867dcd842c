// Package ui renders terminal output for wr-ai: styled lists, the catalog
// box, merge reports, and a progress spinner.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Accent highlights item names and paths.
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA"))

	// Muted is for secondary text: counts, tree glyphs, hints.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	Bold = lipgloss.NewStyle().Bold(true)

	// Heading styles category titles inside the catalog box.
	Heading = lipgloss.NewStyle().Foreground(lipgloss.Color("#89DCEB")).Bold(true)

	// Box frames the catalog listing.
	Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#6C7086")).
		Padding(0, 1)
)

// Status symbols.
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
	SymbolBullet  = "•"
)

// Success returns msg prefixed with a check mark.
func Success(msg string) string {
	return SymbolSuccess + " " + msg
}

// Error returns msg prefixed with a cross.
func Error(msg string) string {
	return SymbolError + " " + msg
}

// Warning returns msg prefixed with a warning sign.
func Warning(msg string) string {
	return SymbolWarning + " " + msg
}

// Info returns msg prefixed with an info sign.
func Info(msg string) string {
	return SymbolInfo + " " + msg
}

// Hint returns muted hint text.
func Hint(msg string) string {
	return Muted.Render(msg)
}
