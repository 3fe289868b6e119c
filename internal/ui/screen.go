package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/saravenpi/parley/internal/chat"
	"github.com/saravenpi/parley/internal/models"
)

const DefaultNarrowWidth = 80

type focus int

const (
	focusList focus = iota
	focusSearch
	focusComposer
)

// ChatScreen is the single screen of the app: conversation list, thread and
// call overlay over one chat.State.
type ChatScreen struct {
	state        *chat.State
	list         list.Model
	search       textinput.Model
	composer     textinput.Model
	viewport     viewport.Model
	help         help.Model
	keys         keyMap
	focus        focus
	narrowWidth  int
	windowWidth  int
	windowHeight int
}

// NewChatScreen builds the screen over state. Layouts narrower than
// narrowWidth columns show one pane at a time.
func NewChatScreen(state *chat.State, narrowWidth int) ChatScreen {
	if narrowWidth <= 0 {
		narrowWidth = DefaultNarrowWidth
	}

	m := ChatScreen{
		state:        state,
		list:         newConversationList(state),
		search:       newSearchInput(),
		composer:     newComposer(),
		viewport:     viewport.New(80, 20),
		help:         help.New(),
		keys:         defaultKeyMap(),
		focus:        focusList,
		narrowWidth:  narrowWidth,
		windowWidth:  120,
		windowHeight: 30,
	}
	m.resize()
	return m
}

func (m ChatScreen) Init() tea.Cmd {
	return nil
}

func (m ChatScreen) narrow() bool {
	return m.windowWidth < m.narrowWidth
}

func (m ChatScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}

		if m.state.Call().Open {
			if key.Matches(msg, m.keys.HangUp) {
				m.state.HangUp()
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.AudioCall):
			m.state.OpenCall(models.CallAudio)
			return m, nil
		case key.Matches(msg, m.keys.VideoCall):
			m.state.OpenCall(models.CallVideo)
			return m, nil
		}
		for i, binding := range m.keys.Tabs {
			if key.Matches(msg, binding) {
				m.state.SelectTab(models.Tab(i))
				return m, nil
			}
		}

		switch m.focus {
		case focusComposer:
			return m.updateComposer(msg)
		case focusSearch:
			return m.updateSearch(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m ChatScreen) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Select):
		c, ok := selectedConversation(m.list)
		if !ok || !m.state.Select(c.ID) {
			return m, nil
		}
		m.refreshThread()
		cmd := m.focusComposer()
		return m, cmd

	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Focus):
		if m.narrow() && m.state.Pane() != models.PaneThread {
			return m, nil
		}
		cmd := m.focusComposer()
		return m, cmd

	case key.Matches(msg, m.keys.Back):
		if m.narrow() {
			m.state.BackToList()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m ChatScreen) updateComposer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Send):
		m.state.SetComposer(m.composer.Value())
		if _, ok := m.state.Send(); ok {
			m.composer.Reset()
			m.refreshThread()
		}
		return m, nil

	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Focus):
		m.composer.Blur()
		m.focus = focusList
		if m.narrow() {
			m.state.BackToList()
		}
		return m, nil

	case msg.String() == "up", msg.String() == "down", msg.String() == "pgup", msg.String() == "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	m.state.SetComposer(m.composer.Value())
	return m, cmd
}

func (m ChatScreen) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" || msg.String() == "esc" {
		m.search.Blur()
		m.focus = focusList
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.state.Search() {
		m.state.SetSearch(m.search.Value())
		cmd = tea.Batch(cmd, m.list.SetItems(chatItems(m.state.Visible())))
	}
	return m, cmd
}

func (m *ChatScreen) focusComposer() tea.Cmd {
	m.search.Blur()
	m.focus = focusComposer
	return m.composer.Focus()
}

// paneWidths splits the window between list and thread. A narrow layout
// gives the whole width to whichever pane is shown.
func (m ChatScreen) paneWidths() (int, int) {
	if m.narrow() {
		return m.windowWidth, m.windowWidth
	}
	listWidth := max(m.windowWidth*30/100, 28)
	return listWidth, m.windowWidth - listWidth
}

func (m *ChatScreen) resize() {
	// a narrow layout only shows the thread while the composer has focus
	if m.narrow() && m.focus != focusComposer {
		m.state.BackToList()
	}

	listWidth, threadWidth := m.paneWidths()
	paneHeight := max(m.windowHeight-3, 6)

	// border (2) + profile header, search, tab bar and spacing (5)
	m.list.SetSize(max(listWidth-2, 10), max(paneHeight-7, 3))
	m.search.Width = max(listWidth-6, 4)

	// border (2) + header (2) + composer (2)
	m.viewport.Width = max(threadWidth-4, 10)
	m.viewport.Height = max(paneHeight-6, 3)
	m.composer.Width = max(threadWidth-16, 4)

	m.help.Width = m.windowWidth
	m.refreshThread()
}

func (m *ChatScreen) refreshThread() {
	m.viewport.SetContent(renderThread(m.state.Thread(), m.viewport.Width))
	m.viewport.GotoBottom()
}

func (m ChatScreen) listPane(width int) string {
	body := strings.Join([]string{
		renderProfileHeader(),
		m.search.View(),
		"",
		m.list.View(),
		renderTabBar(m.state.Tab(), width-2),
	}, "\n")

	style := paneStyle
	if m.focus != focusComposer {
		style = focusedPaneStyle
	}
	return style.Width(width - 2).Render(body)
}

func (m ChatScreen) threadPane(width int) string {
	inner := width - 4
	body := strings.Join([]string{
		renderThreadHeader(m.state.Active(), inner, m.narrow()),
		m.viewport.View(),
		renderComposer(m.composer, m.focus == focusComposer),
	}, "\n")

	style := paneStyle
	if m.focus == focusComposer {
		style = focusedPaneStyle
	}
	return style.Width(width - 2).Padding(0, 1).Render(body)
}

func (m ChatScreen) View() string {
	callState := m.state.Call()
	if callState.Open {
		dialog := renderCallDialog(callState, m.state.Active())
		return placeOverlay(m.windowWidth, m.windowHeight-1, dialog) + "\n" +
			m.help.ShortHelpView(m.keys.helpFor(m.focus, true))
	}

	listWidth, threadWidth := m.paneWidths()
	var screen string
	switch {
	case !m.narrow():
		screen = lipgloss.JoinHorizontal(lipgloss.Top, m.listPane(listWidth), m.threadPane(threadWidth))
	case m.state.Pane() == models.PaneThread:
		screen = m.threadPane(threadWidth)
	default:
		screen = m.listPane(listWidth)
	}

	return screen + "\n" + m.help.ShortHelpView(m.keys.helpFor(m.focus, false))
}
