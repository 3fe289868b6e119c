package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/saravenpi/parley/internal/models"
)

const callingLabel = "Calling…"

func callTitle(kind models.CallKind) string {
	switch kind {
	case models.CallVideo:
		return "Video call"
	case models.CallConference:
		return "Starting conference"
	default:
		return "Audio call"
	}
}

// renderCallDialog draws the call overlay for the active conversation. It
// never changes over time: there is no connection behind it.
func renderCallDialog(call models.CallState, c models.Conversation) string {
	controls := []string{hangUpStyle.Render("[h] hang up")}
	if call.Kind == models.CallVideo {
		controls = append(controls, normalStyle.Render("[ ] camera off"))
	}
	controls = append(controls, normalStyle.Render("[ ] mic"))

	body := strings.Join([]string{
		titleStyle.Render(callTitle(call.Kind)),
		"",
		avatarStyle.Padding(1, 3).Bold(true).Render(c.Initials()),
		"",
		normalStyle.Bold(true).Render(c.DisplayName),
		helpStyle.Render(callingLabel),
		"",
		strings.Join(controls, "   "),
	}, "\n")

	return dialogStyle.Render(body)
}

// placeOverlay centers the dialog on a screen of the given size.
func placeOverlay(width, height int, dialog string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, dialog,
		lipgloss.WithWhitespaceChars(" "))
}
