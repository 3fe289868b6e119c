package chat

import (
	"slices"

	"github.com/saravenpi/parley/internal/models"
)

// threadStore holds the messages shown in the thread pane.
type threadStore interface {
	Thread(conversationID int) []models.Message
	Append(conversationID int, msg models.Message)
}

// sharedThread shows the same messages whichever conversation is active.
type sharedThread struct {
	messages []models.Message
}

func newSharedThread(seeded []models.Message) *sharedThread {
	return &sharedThread{messages: slices.Clone(seeded)}
}

func (t *sharedThread) Thread(int) []models.Message {
	return slices.Clone(t.messages)
}

func (t *sharedThread) Append(_ int, msg models.Message) {
	t.messages = append(t.messages, msg)
}

// conversationThreads keys messages by conversation. The seeded messages
// belong to the owner conversation; every other thread starts empty.
type conversationThreads struct {
	threads map[int][]models.Message
}

func newConversationThreads(owner int, seeded []models.Message) *conversationThreads {
	return &conversationThreads{
		threads: map[int][]models.Message{owner: slices.Clone(seeded)},
	}
}

func (t *conversationThreads) Thread(conversationID int) []models.Message {
	return slices.Clone(t.threads[conversationID])
}

func (t *conversationThreads) Append(conversationID int, msg models.Message) {
	t.threads[conversationID] = append(t.threads[conversationID], msg)
}

// nextMessageID numbers a new message after the existing ones, skipping
// past any seeded ID that would otherwise collide.
func nextMessageID(thread []models.Message) int {
	id := len(thread) + 1
	maxID := 0
	taken := false
	for _, m := range thread {
		if m.ID == id {
			taken = true
		}
		maxID = max(maxID, m.ID)
	}
	if taken {
		return maxID + 1
	}
	return id
}
