package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	HeadingColor = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	TextColor    = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#DDDDDD"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)
