package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saravenpi/parley/internal/models"
	"github.com/saravenpi/parley/internal/seed"
)

var fixedNow = time.Date(2026, 3, 4, 9, 7, 0, 0, time.UTC)

func newTestState(t *testing.T, opts Options) *State {
	t.Helper()
	data, err := seed.Load()
	require.NoError(t, err)
	if opts.Now == nil {
		opts.Now = func() time.Time { return fixedNow }
	}
	return New(data, opts)
}

func TestNewDefaults(t *testing.T) {
	s := newTestState(t, Options{})

	assert.Len(t, s.Conversations(), 7)
	assert.Equal(t, 1, s.Active().ID)
	assert.Len(t, s.Thread(), 5)
	assert.Equal(t, "", s.Composer())
	assert.Equal(t, models.TabMessages, s.Tab())
	assert.Equal(t, models.PaneList, s.Pane())
	assert.Equal(t, models.CallState{}, s.Call())
	assert.Equal(t, "closed", s.Call().String())
}

func TestSelectEverySeededConversation(t *testing.T) {
	s := newTestState(t, Options{})

	for _, c := range s.Conversations() {
		require.True(t, s.Select(c.ID))
		assert.Equal(t, c, s.Active())

		activeCount := 0
		for _, other := range s.Conversations() {
			if other.ID == s.Active().ID {
				activeCount++
			}
		}
		assert.Equal(t, 1, activeCount)
	}
}

func TestSelectConversationThree(t *testing.T) {
	s := newTestState(t, Options{})

	require.True(t, s.Select(3))
	assert.Equal(t, 3, s.Active().ID)
	assert.Equal(t, "Dmitry Petrov", s.Active().DisplayName)
	assert.Equal(t, models.PaneThread, s.Pane())

	s.BackToList()
	assert.Equal(t, models.PaneList, s.Pane())
	assert.Equal(t, 3, s.Active().ID, "going back keeps the selection")
}

func TestSelectUnknownIsNoop(t *testing.T) {
	s := newTestState(t, Options{})

	assert.False(t, s.Select(42))
	assert.Equal(t, 1, s.Active().ID)
	assert.Equal(t, models.PaneList, s.Pane())
}

func TestSendScenario(t *testing.T) {
	s := newTestState(t, Options{})

	s.SetComposer("test")
	msg, ok := s.Send()
	require.True(t, ok)
	assert.Equal(t, 6, msg.ID)
	assert.Equal(t, "test", msg.Text)
	assert.True(t, msg.Outgoing)
	assert.Equal(t, "09:07", msg.Time)
	assert.Equal(t, "", s.Composer())

	thread := s.Thread()
	require.Len(t, thread, 6)
	assert.Equal(t, msg, thread[5])

	s.SetComposer("")
	_, ok = s.Send()
	assert.False(t, ok)
	assert.Len(t, s.Thread(), 6)
}

func TestSendBlankLeavesComposer(t *testing.T) {
	for _, text := range []string{"", " ", "\t\n", "   \t  "} {
		s := newTestState(t, Options{})
		s.SetComposer(text)

		_, ok := s.Send()
		assert.False(t, ok, "%q", text)
		assert.Equal(t, text, s.Composer())
		assert.Len(t, s.Thread(), 5)
	}
}

func TestSendKeepsTextAsTyped(t *testing.T) {
	s := newTestState(t, Options{})
	s.SetComposer("  hello  ")

	msg, ok := s.Send()
	require.True(t, ok)
	assert.Equal(t, "  hello  ", msg.Text)
}

func TestSendIDsStayUnique(t *testing.T) {
	s := newTestState(t, Options{})
	for i := 0; i < 10; i++ {
		s.SetComposer("x")
		_, ok := s.Send()
		require.True(t, ok)
	}

	seen := map[int]bool{}
	for _, m := range s.Thread() {
		assert.False(t, seen[m.ID], "duplicate id %d", m.ID)
		seen[m.ID] = true
	}
	assert.Len(t, seen, 15)
}

func TestSendTimeFormat(t *testing.T) {
	s := newTestState(t, Options{TimeFormat: "3:04 PM"})
	s.SetComposer("hi")

	msg, ok := s.Send()
	require.True(t, ok)
	assert.Equal(t, "9:07 AM", msg.Time)
}

func TestSendDoesNotTouchConversationSummary(t *testing.T) {
	s := newTestState(t, Options{})
	before := s.Active()

	s.SetComposer("new text")
	_, ok := s.Send()
	require.True(t, ok)

	assert.Equal(t, before, s.Active())
}

func TestSharedThreadAcrossConversations(t *testing.T) {
	s := newTestState(t, Options{})

	s.SetComposer("from one")
	_, ok := s.Send()
	require.True(t, ok)

	require.True(t, s.Select(4))
	thread := s.Thread()
	require.Len(t, thread, 6)
	assert.Equal(t, "from one", thread[5].Text)
}

func TestPerConversationThreads(t *testing.T) {
	s := newTestState(t, Options{PerConversationThreads: true})

	assert.Len(t, s.Thread(), 5)

	require.True(t, s.Select(2))
	assert.Empty(t, s.Thread())

	s.SetComposer("hello team")
	msg, ok := s.Send()
	require.True(t, ok)
	assert.Equal(t, 1, msg.ID)
	assert.Len(t, s.Thread(), 1)

	require.True(t, s.Select(1))
	assert.Len(t, s.Thread(), 5)
}

func TestCallStateMachine(t *testing.T) {
	kinds := []models.CallKind{models.CallAudio, models.CallVideo, models.CallConference}
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			s := newTestState(t, Options{})

			s.OpenCall(k)
			assert.Equal(t, models.CallState{Open: true, Kind: k}, s.Call())
			assert.Equal(t, "open("+k.String()+")", s.Call().String())

			s.HangUp()
			assert.False(t, s.Call().Open)
		})
	}
}

func TestOpenCallReplacesKind(t *testing.T) {
	s := newTestState(t, Options{})

	s.OpenCall(models.CallAudio)
	s.OpenCall(models.CallVideo)
	assert.Equal(t, models.CallState{Open: true, Kind: models.CallVideo}, s.Call())
}

func TestHangUpWhenClosed(t *testing.T) {
	s := newTestState(t, Options{})
	s.HangUp()
	assert.False(t, s.Call().Open)
}

func TestSelectConferencesOpensConferenceCall(t *testing.T) {
	s := newTestState(t, Options{})

	s.OpenCall(models.CallVideo)
	s.SelectTab(models.TabConferences)
	assert.Equal(t, models.TabConferences, s.Tab())
	assert.Equal(t, models.CallState{Open: true, Kind: models.CallConference}, s.Call())

	s.HangUp()
	s.SelectTab(models.TabConferences)
	assert.Equal(t, models.CallState{Open: true, Kind: models.CallConference}, s.Call())
}

func TestSelectOtherTabsLeaveCallAlone(t *testing.T) {
	s := newTestState(t, Options{})

	for _, tab := range []models.Tab{models.TabMessages, models.TabCalls, models.TabSettings} {
		s.SelectTab(tab)
		assert.Equal(t, tab, s.Tab())
		assert.False(t, s.Call().Open)
	}
}

func TestSelectTabOutOfRange(t *testing.T) {
	s := newTestState(t, Options{})
	s.SelectTab(models.TabCount)
	s.SelectTab(-1)
	assert.Equal(t, models.TabMessages, s.Tab())
}

func TestSearchIsCosmeticByDefault(t *testing.T) {
	s := newTestState(t, Options{})

	s.SetSearch("anna")
	assert.Equal(t, "anna", s.Search())
	assert.Len(t, s.Visible(), 7)
}

func TestSearchFilter(t *testing.T) {
	s := newTestState(t, Options{SearchFilter: true, SearchMaxDistance: 1})

	s.SetSearch("")
	assert.Len(t, s.Visible(), 7)

	s.SetSearch("PETROV")
	visible := s.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, 3, visible[0].ID)

	s.SetSearch("olge")
	assert.Empty(t, s.Visible(), "transposition costs two edits")

	s.SetSearch("oleh")
	visible = s.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, 6, visible[0].ID)

	s.SetSearch("start")
	visible = s.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, 5, visible[0].ID)

	assert.Equal(t, 1, s.Active().ID, "filtering never changes the selection")
}
