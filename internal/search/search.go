package search

import (
	"github.com/nikbrunner/vscroll/internal/model"
	"github.com/sahilm/fuzzy"
)

// SearchResult represents a fuzzy search match.
type SearchResult struct {
	Index          int // row position in the dataset
	User           *model.User
	MatchedIndexes []int // positions in Key()
	Score          int
}

// Key returns the text a user is matched against.
func Key(u *model.User) string {
	return u.Username + " " + u.Email
}

// userKeys implements fuzzy.Source for a user slice.
type userKeys []*model.User

func (uk userKeys) String(i int) string {
	return Key(uk[i])
}

func (uk userKeys) Len() int {
	return len(uk)
}

// FuzzySearchUsers searches usernames and emails using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzySearchUsers(dataset *model.Dataset, query string) []SearchResult {
	if query == "" {
		return nil
	}

	users := make(userKeys, len(dataset.Users))
	for i := range dataset.Users {
		users[i] = &dataset.Users[i]
	}

	matches := fuzzy.FindFrom(query, users)

	results := make([]SearchResult, len(matches))
	for i, m := range matches {
		results[i] = SearchResult{
			Index:          m.Index,
			User:           users[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
