package chat

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/saravenpi/parley/internal/models"
)

// matchesQuery reports whether a conversation name contains the query, or
// has a word within maxDistance edits of it. Comparison ignores case.
func matchesQuery(c models.Conversation, query string, maxDistance int) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	name := strings.ToLower(c.DisplayName)
	if strings.Contains(name, query) {
		return true
	}

	for _, word := range strings.Fields(name) {
		word = strings.Trim(word, `"'.,`)
		if levenshtein.ComputeDistance(word, query) <= maxDistance {
			return true
		}
	}
	return false
}
