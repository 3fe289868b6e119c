package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/saravenpi/parley/internal/models"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Search    key.Binding
	Focus     key.Binding
	Send      key.Binding
	Back      key.Binding
	AudioCall key.Binding
	VideoCall key.Binding
	Tabs      [models.TabCount]key.Binding
	HangUp    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Send:      key.NewBinding(key.WithKeys("enter", "ctrl+s"), key.WithHelp("enter", "send")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		AudioCall: key.NewBinding(key.WithKeys("alt+a"), key.WithHelp("alt+a", "call")),
		VideoCall: key.NewBinding(key.WithKeys("alt+v"), key.WithHelp("alt+v", "video")),
		Tabs: [models.TabCount]key.Binding{
			key.NewBinding(key.WithKeys("alt+1"), key.WithHelp("alt+1", "chats")),
			key.NewBinding(key.WithKeys("alt+2"), key.WithHelp("alt+2", "calls")),
			key.NewBinding(key.WithKeys("alt+3"), key.WithHelp("alt+3", "conference")),
			key.NewBinding(key.WithKeys("alt+4"), key.WithHelp("alt+4", "settings")),
		},
		HangUp:    key.NewBinding(key.WithKeys("esc", "enter", "h"), key.WithHelp("esc/h", "hang up")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// helpFor returns the bindings worth listing for the current focus.
func (k keyMap) helpFor(f focus, callOpen bool) []key.Binding {
	if callOpen {
		return []key.Binding{k.HangUp}
	}

	switch f {
	case focusComposer:
		return []key.Binding{k.Send, k.Focus, k.Back, k.AudioCall, k.VideoCall}
	case focusSearch:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter/esc", "done")),
		}
	default:
		return []key.Binding{k.Up, k.Down, k.Select, k.Search, k.Focus, k.AudioCall, k.VideoCall, k.Tabs[models.TabConferences], k.Quit}
	}
}
