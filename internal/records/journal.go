package records

import (
	"strings"

	"github.com/rkeller/levelup/internal/models"
)

// JournalStore holds the journal entries
type JournalStore struct {
	collection[models.JournalEntry]
}

// NewJournalStore loads the journal stored under key
func NewJournalStore(deps Deps, key string) *JournalStore {
	return &JournalStore{newCollection[models.JournalEntry](deps, key)}
}

// ParseTags splits a comma-separated tag draft, trimming blanks. Duplicates
// are kept as entered.
func ParseTags(input string) []string {
	var tags []string
	for _, tag := range strings.Split(input, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Add creates an entry from draft input. An entry with both title and content
// blank is rejected. A blank title alone defaults to the current date, e.g.
// "January 5, 2024".
func (s *JournalStore) Add(title, content, tagsInput string) bool {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" && content == "" {
		return false
	}
	now := s.deps.Now()
	if title == "" {
		title = now.Format("January 2, 2006")
	}
	s.set(prepend(s.items, models.JournalEntry{
		ID:        s.deps.NewID(),
		Title:     title,
		Content:   content,
		Tags:      ParseTags(tagsInput),
		CreatedAt: now,
		UpdatedAt: now,
	}))
	return true
}

// Save replaces the mutable fields of the entry matching id and refreshes its
// updatedAt stamp. A blank title falls back to "Untitled".
func (s *JournalStore) Save(id, title, content, tagsInput string) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "Untitled"
	}
	s.set(update(s.items, id, func(e models.JournalEntry) models.JournalEntry {
		e.Title = title
		e.Content = strings.TrimSpace(content)
		e.Tags = ParseTags(tagsInput)
		e.UpdatedAt = s.deps.Now()
		return e
	}))
}

// Remove deletes the entry matching id
func (s *JournalStore) Remove(id string) {
	s.set(removeByID(s.items, id))
}

// Search filters entries by a case-insensitive substring match over title,
// content, and tags. A blank query returns the full list.
func (s *JournalStore) Search(query string) []models.JournalEntry {
	return searchFilter(s.items, query, func(e models.JournalEntry) string {
		return e.Title + " " + e.Content + " " + strings.Join(e.Tags, " ")
	})
}
