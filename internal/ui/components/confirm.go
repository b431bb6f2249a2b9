package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepdeck/internal/ui/theme"
)

// RenderConfirm renders a yes/no confirmation card centered in the given
// area. Used for the early-submit gate.
func RenderConfirm(question, detail string, width, height int) string {
	body := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(question)
	if detail != "" {
		body += "\n\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)
	}
	body += "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("[Y]") +
		lipgloss.NewStyle().Foreground(theme.Text).Render(" Submit   ") +
		lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("[N]") +
		lipgloss.NewStyle().Foreground(theme.Text).Render(" Keep going")

	card := theme.Card.Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
