package render

import (
	"github.com/charmbracelet/lipgloss"

	"task-manager/internal/domain"
)

// Priority tag colors. Unknown priorities use the low color.
const (
	ColorHigh   = "#ef4444"
	ColorMedium = "#f59e0b"
	ColorLow    = "#10b981"
)

// Theme is the palette for one appearance mode
type Theme struct {
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Danger lipgloss.Color
	Border lipgloss.Color
}

// LightTheme is used unless dark mode is on
func LightTheme() Theme {
	return Theme{
		Text:   lipgloss.Color("#1f2937"),
		Muted:  lipgloss.Color("#6b7280"),
		Accent: lipgloss.Color("#2563eb"),
		Danger: lipgloss.Color(ColorHigh),
		Border: lipgloss.Color("#d1d5db"),
	}
}

// DarkTheme is used in dark mode
func DarkTheme() Theme {
	return Theme{
		Text:   lipgloss.Color("#e5e7eb"),
		Muted:  lipgloss.Color("#9ca3af"),
		Accent: lipgloss.Color("#60a5fa"),
		Danger: lipgloss.Color("#f87171"),
		Border: lipgloss.Color("#374151"),
	}
}

// PriorityColor returns the tag color for p
func PriorityColor(p domain.Priority) lipgloss.Color {
	switch p {
	case domain.PriorityHigh:
		return lipgloss.Color(ColorHigh)
	case domain.PriorityMedium:
		return lipgloss.Color(ColorMedium)
	default:
		return lipgloss.Color(ColorLow)
	}
}

type styles struct {
	title     lipgloss.Style
	done      lipgloss.Style
	desc      lipgloss.Style
	meta      lipgloss.Style
	overdue   lipgloss.Style
	action    lipgloss.Style
	cursor    lipgloss.Style
	greeting  lipgloss.Style
	counters  lipgloss.Style
	barFull   lipgloss.Style
	barEmpty  lipgloss.Style
	status    lipgloss.Style
	errorLine lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, theme Theme) styles {
	return styles{
		title:     r.NewStyle().Foreground(theme.Text).Bold(true),
		done:      r.NewStyle().Foreground(theme.Muted).Strikethrough(true),
		desc:      r.NewStyle().Foreground(theme.Text),
		meta:      r.NewStyle().Foreground(theme.Muted),
		overdue:   r.NewStyle().Foreground(theme.Danger),
		action:    r.NewStyle().Foreground(theme.Accent),
		cursor:    r.NewStyle().Foreground(theme.Accent).Bold(true),
		greeting:  r.NewStyle().Foreground(theme.Accent).Bold(true),
		counters:  r.NewStyle().Foreground(theme.Muted),
		barFull:   r.NewStyle().Foreground(theme.Accent),
		barEmpty:  r.NewStyle().Foreground(theme.Border),
		status:    r.NewStyle().Foreground(theme.Muted).Italic(true),
		errorLine: r.NewStyle().Foreground(theme.Danger),
	}
}
