package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/saravenpi/parley/internal/models"
)

const todayLabel = "Today"

func newComposer() textinput.Model {
	ta := textinput.New()
	ta.Placeholder = "Message"
	ta.Prompt = "› "
	ta.CharLimit = 1000
	ta.Width = 40
	return ta
}

func newSearchInput() textinput.Model {
	si := textinput.New()
	si.Placeholder = "Search"
	si.Prompt = "⌕ "
	si.CharLimit = 100
	si.Width = 24
	return si
}

// renderThreadHeader shows who the thread is with and the call controls.
func renderThreadHeader(c models.Conversation, width int, narrow bool) string {
	left := avatarStyle.Render(c.Initials()) + " " + titleStyle.Render(c.DisplayName)
	presence := helpStyle.Render(c.Presence())
	if c.Online {
		presence = onlineStyle.Render(c.Presence())
	}
	if narrow {
		left = helpStyle.Render("esc ←") + " " + left
	}

	controls := statusStyle.Render("☎ alt+a  ▶ alt+v")
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(controls), 1)
	return left + strings.Repeat(" ", gap) + controls + "\n" + presence
}

// renderThread lays out messages as bubbles, outgoing ones on the right,
// under a day divider.
func renderThread(messages []models.Message, width int) string {
	if width <= 0 {
		width = 80
	}
	bubbleWidth := max(width*7/10, 10)

	var content strings.Builder
	divider := dividerStyle.Render(todayLabel)
	content.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider) + "\n")

	for _, message := range messages {
		content.WriteString("\n")

		text := wordwrap.String(message.Text, bubbleWidth-2)
		if message.Outgoing {
			bubble := messageFromMeStyle.Render(text)
			stamp := messageHeaderStyle.Render(message.Time)
			content.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Right, bubble) + "\n")
			content.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Right, stamp) + "\n")
		} else {
			content.WriteString(messageFromOtherStyle.Render(text) + "\n")
			content.WriteString(messageHeaderStyle.Render(message.Time) + "\n")
		}
	}

	return content.String()
}

func renderComposer(input textinput.Model, focused bool) string {
	label := helpStyle.Render("Message:")
	if focused {
		label = inputStyle.Render("Message:")
	}
	return label + " " + input.View()
}
