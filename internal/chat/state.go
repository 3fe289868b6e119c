// Package chat holds the view state behind the chat screen: which
// conversation is active, the thread and composer, the tab bar and the call
// overlay. It has no terminal dependencies; internal/ui renders it.
package chat

import (
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/saravenpi/parley/internal/models"
	"github.com/saravenpi/parley/internal/seed"
)

const DefaultTimeFormat = "15:04"

// Options tune behaviors the seeded screen leaves open.
type Options struct {
	// PerConversationThreads gives every conversation its own thread instead
	// of one thread shared by all of them.
	PerConversationThreads bool
	// SearchFilter makes the search query filter the conversation list.
	SearchFilter bool
	// SearchMaxDistance is the Levenshtein tolerance for word matches.
	SearchMaxDistance int
	// TimeFormat is the layout for the time label of sent messages.
	TimeFormat string
	Now        func() time.Time
	Logger     *slog.Logger
}

// State is the whole screen state. All methods are synchronous and must be
// called from a single goroutine.
type State struct {
	conversations []models.Conversation
	active        int
	threads       threadStore
	composer      string
	search        string
	tab           models.Tab
	pane          models.Pane
	call          models.CallState

	searchFilter bool
	maxDistance  int
	timeFormat   string
	now          func() time.Time
	log          *slog.Logger
}

// New builds the screen state from seed data. The first seeded conversation
// starts active.
func New(data seed.Data, opts Options) *State {
	if opts.TimeFormat == "" {
		opts.TimeFormat = DefaultTimeFormat
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &State{
		conversations: slices.Clone(data.Conversations),
		tab:           models.TabMessages,
		pane:          models.PaneList,
		searchFilter:  opts.SearchFilter,
		maxDistance:   opts.SearchMaxDistance,
		timeFormat:    opts.TimeFormat,
		now:           opts.Now,
		log:           opts.Logger,
	}

	if opts.PerConversationThreads && len(s.conversations) > 0 {
		s.threads = newConversationThreads(s.conversations[0].ID, data.Messages)
	} else {
		s.threads = newSharedThread(data.Messages)
	}

	return s
}

// Conversations returns every seeded conversation in seed order.
func (s *State) Conversations() []models.Conversation {
	return slices.Clone(s.conversations)
}

// Visible returns the conversations the list pane shows. Without the search
// filter enabled this is every conversation, whatever the query.
func (s *State) Visible() []models.Conversation {
	if !s.searchFilter {
		return s.Conversations()
	}

	var out []models.Conversation
	for _, c := range s.conversations {
		if matchesQuery(c, s.search, s.maxDistance) {
			out = append(out, c)
		}
	}
	return out
}

// Active returns the active conversation.
func (s *State) Active() models.Conversation {
	return s.conversations[s.active]
}

// Select makes the conversation with the given id active and moves a narrow
// layout to the thread pane. Unknown ids leave the state untouched.
func (s *State) Select(id int) bool {
	idx := slices.IndexFunc(s.conversations, func(c models.Conversation) bool {
		return c.ID == id
	})
	if idx < 0 {
		return false
	}

	s.active = idx
	s.pane = models.PaneThread
	s.log.Debug("conversation selected", "id", id, "name", s.conversations[idx].DisplayName)
	return true
}

// Pane reports which pane a narrow layout shows.
func (s *State) Pane() models.Pane {
	return s.pane
}

// BackToList returns a narrow layout to the conversation list.
func (s *State) BackToList() {
	s.pane = models.PaneList
}

// Thread returns the messages shown for the active conversation.
func (s *State) Thread() []models.Message {
	return s.threads.Thread(s.Active().ID)
}

func (s *State) Composer() string {
	return s.composer
}

func (s *State) SetComposer(text string) {
	s.composer = text
}

// Send appends the composer text as an outgoing message and clears the
// composer. Blank text is ignored and the composer is left as is.
func (s *State) Send() (models.Message, bool) {
	if strings.TrimSpace(s.composer) == "" {
		return models.Message{}, false
	}

	active := s.Active()
	msg := models.Message{
		ID:       nextMessageID(s.threads.Thread(active.ID)),
		Text:     s.composer,
		Time:     s.now().Format(s.timeFormat),
		Outgoing: true,
	}
	s.threads.Append(active.ID, msg)
	s.composer = ""

	s.log.Debug("message sent", "conversation", active.ID, "message", msg.ID)
	return msg, true
}

func (s *State) Search() string {
	return s.search
}

// SetSearch stores the search query. It only narrows Visible when the
// search filter is enabled.
func (s *State) SetSearch(query string) {
	s.search = query
}

func (s *State) Tab() models.Tab {
	return s.tab
}

// SelectTab switches the tab bar. Selecting conferences also opens the call
// overlay in conference mode.
func (s *State) SelectTab(tab models.Tab) {
	if tab < 0 || tab >= models.TabCount {
		return
	}

	s.tab = tab
	s.log.Debug("tab selected", "tab", tab.String())

	if tab == models.TabConferences {
		s.OpenCall(models.CallConference)
	}
}

func (s *State) Call() models.CallState {
	return s.call
}

// OpenCall shows the call overlay for the given kind, replacing any call
// already shown.
func (s *State) OpenCall(kind models.CallKind) {
	s.call = models.CallState{Open: true, Kind: kind}
	s.log.Debug("call opened", "kind", kind.String(), "conversation", s.Active().ID)
}

// HangUp closes the call overlay.
func (s *State) HangUp() {
	if s.call.Open {
		s.log.Debug("call closed", "kind", s.call.Kind.String())
	}
	s.call = models.CallState{}
}
