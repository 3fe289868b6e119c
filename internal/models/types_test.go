package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Anna Smirnova", "AS"},
		{"Support", "S"},
		{"Project \"Start\"", "P\""},
		{"Анна  Смирнова", "АС"},
		{" Oleg   Ivanov ", "OI"},
		{"Élodie Ünal", "ÉÜ"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Initials(tt.name))
		})
	}
}

func TestPresence(t *testing.T) {
	assert.Equal(t, "online", Conversation{Online: true}.Presence())
	assert.Equal(t, "last seen recently", Conversation{}.Presence())
}
