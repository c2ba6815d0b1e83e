package output

import "github.com/charmbracelet/lipgloss"

const (
	labelWidth = 56
	valueWidth = 16
)

var (
	primaryColor = lipgloss.Color("#005F87")
	mutedColor   = lipgloss.Color("#808080")
	warnColor    = lipgloss.Color("#D7875F")
	refundColor  = lipgloss.Color("#5F8700")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 2)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().Width(labelWidth)

	valueStyle = lipgloss.NewStyle().Width(valueWidth).Align(lipgloss.Right)

	totalStyle = lipgloss.NewStyle().Bold(true)

	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)

	warnStyle = lipgloss.NewStyle().Foreground(warnColor)

	refundStyle = lipgloss.NewStyle().Bold(true).Foreground(refundColor)
)

// row renders a label/value line with the value right-aligned.
func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}
