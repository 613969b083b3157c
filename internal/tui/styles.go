package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the view.
type Styles struct {
	Title    lipgloss.Style
	Heading  lipgloss.Style
	Option   lipgloss.Style
	Selected lipgloss.Style
	Match    lipgloss.Style
	Section  lipgloss.Style
	Dim      lipgloss.Style
	Status   lipgloss.Style
	Help     lipgloss.Style
	Bad      lipgloss.Style
	Good     lipgloss.Style
	Code     lipgloss.Style
}

// NewStyles returns the default palette.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241")).MarginTop(1),
		Option:   lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
		Match:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Section:  lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Dim:      lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("78")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true).MarginTop(1),
		Bad:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")), // red
		Good: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),  // green
		Code: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
	}
}
