package output

import "github.com/charmbracelet/lipgloss"

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	colorGreen = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	colorCyan  = lipgloss.AdaptiveColor{Dark: "#66D9E8", Light: "#0B7285"}
	colorRed   = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	colorGray  = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
)

type styles struct {
	success  lipgloss.Style
	command  lipgloss.Style
	header   lipgloss.Style
	farewell lipgloss.Style
	err      lipgloss.Style
	hint     lipgloss.Style
	prompt   lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain, plain}
	}
	return styles{
		success:  lipgloss.NewStyle().Foreground(colorGreen),
		command:  lipgloss.NewStyle().Foreground(colorGreen),
		header:   lipgloss.NewStyle().Underline(true),
		farewell: lipgloss.NewStyle().Foreground(colorCyan),
		err:      lipgloss.NewStyle().Foreground(colorRed),
		hint:     lipgloss.NewStyle().Foreground(colorGray).Italic(true),
		prompt:   lipgloss.NewStyle().Foreground(colorGreen).Bold(true),
	}
}
