package seed

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/saravenpi/parley/internal/models"
)

//go:embed seed.yaml
var defaultSeed []byte

var (
	ErrNoConversations = errors.New("seed has no conversations")
	ErrDuplicateID     = errors.New("duplicate id in seed")
	ErrNegativeUnread  = errors.New("negative unread count in seed")
)

// Data is the sample content the screen starts from.
type Data struct {
	Conversations []models.Conversation `yaml:"conversations"`
	Messages      []models.Message      `yaml:"messages"`
}

// Load returns the compiled-in sample data.
func Load() (Data, error) {
	return Parse(defaultSeed)
}

// Parse decodes and validates seed YAML.
func Parse(raw []byte) (Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("failed to parse seed: %w", err)
	}

	if err := data.Validate(); err != nil {
		return Data{}, err
	}

	return data, nil
}

// Validate checks the invariants the screen relies on.
func (d Data) Validate() error {
	if len(d.Conversations) == 0 {
		return ErrNoConversations
	}

	seen := make(map[int]bool, len(d.Conversations))
	for _, c := range d.Conversations {
		if seen[c.ID] {
			return fmt.Errorf("conversation %d: %w", c.ID, ErrDuplicateID)
		}
		seen[c.ID] = true

		if c.UnreadCount < 0 {
			return fmt.Errorf("conversation %d: %w", c.ID, ErrNegativeUnread)
		}
	}

	seen = make(map[int]bool, len(d.Messages))
	for _, m := range d.Messages {
		if seen[m.ID] {
			return fmt.Errorf("message %d: %w", m.ID, ErrDuplicateID)
		}
		seen[m.ID] = true
	}

	return nil
}
