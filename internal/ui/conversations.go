package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/saravenpi/parley/internal/chat"
	"github.com/saravenpi/parley/internal/models"
)

const (
	profileName     = "My Profile"
	profileInitials = "MP"
)

var tabLabels = [models.TabCount]string{"Chats", "Calls", "Conf", "Settings"}

type chatItem struct {
	conversation models.Conversation
}

func (i chatItem) FilterValue() string { return i.conversation.DisplayName }

func chatItems(conversations []models.Conversation) []list.Item {
	items := make([]list.Item, len(conversations))
	for i, c := range conversations {
		items[i] = chatItem{conversation: c}
	}
	return items
}

// chatDelegate draws a conversation row: avatar, name and activity label on
// the first line, preview and unread badge on the second.
type chatDelegate struct {
	state *chat.State
}

func (d chatDelegate) Height() int  { return 2 }
func (d chatDelegate) Spacing() int { return 1 }

func (d chatDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d chatDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(chatItem)
	if !ok {
		return
	}
	c := entry.conversation
	width := max(m.Width(), 20)

	cursor := "  "
	nameStyle := normalStyle
	if index == m.Index() {
		cursor = selectedStyle.Render("> ")
		nameStyle = selectedStyle
	}

	dot := " "
	if c.Online {
		dot = onlineStyle.Render("●")
	}
	avatar := avatarStyle.Render(c.Initials()) + dot

	used := lipgloss.Width(cursor) + lipgloss.Width(avatar) + 1
	timeLabel := helpStyle.Render(c.LastActivity)
	nameWidth := max(width-used-lipgloss.Width(timeLabel)-1, 1)
	name := nameStyle.Render(truncate.StringWithTail(c.DisplayName, uint(nameWidth), "…"))
	gap := max(width-used-lipgloss.Width(name)-lipgloss.Width(timeLabel), 1)
	top := cursor + avatar + " " + name + strings.Repeat(" ", gap) + timeLabel

	badge := ""
	if c.UnreadCount > 0 {
		badge = badgeStyle.Render(fmt.Sprint(c.UnreadCount))
	}
	indent := strings.Repeat(" ", used)
	previewWidth := max(width-used-lipgloss.Width(badge)-1, 1)
	preview := helpStyle.Render(truncate.StringWithTail(c.LastMessage, uint(previewWidth), "…"))
	gap = max(width-used-lipgloss.Width(preview)-lipgloss.Width(badge), 1)
	bottom := indent + preview + strings.Repeat(" ", gap) + badge

	row := top + "\n" + bottom
	if c.ID == d.state.Active().ID {
		row = activeRowStyle.Width(width).Render(row)
	}
	fmt.Fprint(w, row)
}

func newConversationList(state *chat.State) list.Model {
	l := list.New(chatItems(state.Visible()), chatDelegate{state: state}, 30, 20)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return l
}

// selectedConversation returns the conversation under the list cursor.
func selectedConversation(l list.Model) (models.Conversation, bool) {
	item, ok := l.SelectedItem().(chatItem)
	if !ok {
		return models.Conversation{}, false
	}
	return item.conversation, true
}

func renderProfileHeader() string {
	return avatarStyle.Render(profileInitials) + " " + titleStyle.Render(profileName)
}

func renderTabBar(active models.Tab, width int) string {
	tabs := make([]string, 0, len(tabLabels))
	for i, label := range tabLabels {
		if models.Tab(i) == active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(bar) > width {
		return truncate.String(bar, uint(width))
	}
	return bar
}
