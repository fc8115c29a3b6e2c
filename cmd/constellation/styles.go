package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/constellation/animation"
	"github.com/katalvlaran/constellation/core"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	considerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFCB05"))
	acceptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF94")).Bold(true)
	rejectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B9D"))
	visitStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3399FF"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B9D")).Bold(true)
)

// categoryStyle colours a node by its category accent.
func categoryStyle(c core.Category) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color()))
}

// eventStyle picks the colour of a replay line.
func eventStyle(k animation.EventKind) lipgloss.Style {
	switch k {
	case animation.EventConsider:
		return considerStyle
	case animation.EventAccepted:
		return acceptStyle
	case animation.EventRejected:
		return rejectStyle
	case animation.EventVisit:
		return visitStyle
	default:
		return titleStyle
	}
}
