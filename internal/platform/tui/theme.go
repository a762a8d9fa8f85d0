package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all visual styles of the sandbox.
type Theme struct {
	// World cells
	SolidTile lipgloss.Style
	WallTile  lipgloss.Style
	EmptyCell lipgloss.Style
	Selected  lipgloss.Style // cell inside the selection
	Corner    lipgloss.Style // placed first corner
	Cursor    lipgloss.Style

	// Menu
	MenuTitle      lipgloss.Style
	MenuItemNormal lipgloss.Style
	MenuItemActive lipgloss.Style
	MenuHint       lipgloss.Style

	// Announcement panel
	PanelBorder  lipgloss.Style
	PanelTitle   lipgloss.Style
	SpokenMenu   lipgloss.Style
	SpokenBuild  lipgloss.Style
	SpokenForced lipgloss.Style
	SpokenMeta   lipgloss.Style

	// Status line
	Status lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		SolidTile: lipgloss.NewStyle().Foreground(lipgloss.Color("136")), // Dirt brown
		WallTile:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")), // Dim gray
		EmptyCell: lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		Selected:  lipgloss.NewStyle().Background(lipgloss.Color("24")),
		Corner:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),

		MenuTitle:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuHint:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		PanelBorder:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		PanelTitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		SpokenMenu:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		SpokenBuild:  lipgloss.NewStyle().Foreground(lipgloss.Color("118")),
		SpokenForced: lipgloss.NewStyle().Bold(true),
		SpokenMeta:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")),

		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals without color.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.SolidTile = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	theme.Selected = lipgloss.NewStyle().Reverse(true)
	theme.SpokenBuild = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.PanelTitle = lipgloss.NewStyle().Bold(true)
	return theme
}
