package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Base   lipgloss.Style
	Title  lipgloss.Style
	Digit  lipgloss.Style
	Edit   lipgloss.Style
	Label  lipgloss.Style
	Banner lipgloss.Style
	Status lipgloss.Style
	Dim    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Base:   lipgloss.NewStyle().Margin(1, 2),
		Title:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Digit:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true).Padding(0, 1),
		Edit:   lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("252")).Bold(true).Padding(0, 1),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Banner: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("203")).Bold(true).Padding(0, 1),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
