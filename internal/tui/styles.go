package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(colorPrimary).
				Padding(0, 1)

	// Result table
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			PaddingRight(2)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	SelectedLabelStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				PaddingRight(2)

	SelectedValueStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(colorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)

// Helper functions
func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}

func RenderError(err string) string {
	return ErrorMessageStyle.Render("Error: " + err)
}

func RenderHelp(help string) string {
	return HelpStyle.Render(help)
}

// RenderTable renders a header and rows as aligned columns inside a box.
// The row at selected is highlighted; pass -1 for none.
func RenderTable(header []string, rows [][]string, selected int) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, renderRow(header, widths, HeaderStyle.PaddingRight(2), HeaderStyle))
	for i, row := range rows {
		label, value := LabelStyle, ValueStyle
		if i == selected {
			label, value = SelectedLabelStyle, SelectedValueStyle
		}
		lines = append(lines, renderRow(row, widths, label, value))
	}

	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderRow styles the first cell with first and all others with rest.
func renderRow(cells []string, widths []int, first, rest lipgloss.Style) string {
	rendered := make([]string, len(cells))
	for i, cell := range cells {
		style := rest
		if i == 0 {
			style = first
		}
		if i < len(cells)-1 && i < len(widths) {
			style = style.Width(widths[i] + style.GetHorizontalPadding())
		}
		rendered[i] = style.Render(cell)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
