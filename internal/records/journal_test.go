package records

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalAdd(t *testing.T) {
	deps, _, clock := testDeps()
	s := NewJournalStore(deps, KeyJournal)

	require.True(t, s.Add("First entry", "some thoughts", "ideas, school"))

	entries := s.Items()
	require.Len(t, entries, 1)
	assert.Equal(t, "First entry", entries[0].Title)
	assert.Equal(t, "some thoughts", entries[0].Content)
	assert.Equal(t, []string{"ideas", "school"}, entries[0].Tags)
	assert.Equal(t, clock.Now(), entries[0].CreatedAt)
	assert.Equal(t, entries[0].CreatedAt, entries[0].UpdatedAt)
}

func TestJournalAddBlankTitleDefaultsToDate(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewJournalStore(deps, KeyJournal)

	require.True(t, s.Add("  ", "hello", ""))

	// testDeps pins the clock to 2024-01-05
	assert.Equal(t, "January 5, 2024", s.Items()[0].Title)
}

func TestJournalAddRejectsEmptyEntry(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewJournalStore(deps, KeyJournal)

	assert.False(t, s.Add("", "", "tag"))
	assert.False(t, s.Add("  ", "\t", ""))
	assert.Empty(t, s.Items())
}

func TestJournalSaveRefreshesUpdatedAt(t *testing.T) {
	deps, _, clock := testDeps()
	s := NewJournalStore(deps, KeyJournal)
	s.Add("Title", "content", "")
	id := s.Items()[0].ID
	created := s.Items()[0].CreatedAt

	clock.Advance(2 * time.Hour)
	s.Save(id, "New title", "new content", "a, b")

	entry := s.Items()[0]
	assert.Equal(t, "New title", entry.Title)
	assert.Equal(t, "new content", entry.Content)
	assert.Equal(t, []string{"a", "b"}, entry.Tags)
	assert.Equal(t, created, entry.CreatedAt)
	assert.Equal(t, created.Add(2*time.Hour), entry.UpdatedAt)
}

func TestJournalSaveBlankTitleFallsBack(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewJournalStore(deps, KeyJournal)
	s.Add("Title", "content", "")
	id := s.Items()[0].ID

	s.Save(id, "  ", "still here", "")
	assert.Equal(t, "Untitled", s.Items()[0].Title)
}

func TestJournalSaveMissingIDIsNoOp(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewJournalStore(deps, KeyJournal)
	s.Add("Title", "content", "")
	before := s.Items()

	s.Save("missing", "x", "y", "z")
	assert.Equal(t, before, s.Items())
}

func TestJournalSearch(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewJournalStore(deps, KeyJournal)
	s.Add("Trip plan", "pack the tent", "travel, summer")
	s.Add("Budget", "cut the streaming bill", "finance")

	// Title match
	require.Len(t, s.Search("trip"), 1)
	// Content match
	require.Len(t, s.Search("STREAMING"), 1)
	// Tag match
	results := s.Search("finance")
	require.Len(t, results, 1)
	assert.Equal(t, "Budget", results[0].Title)
	// Blank query preserves order
	assert.Equal(t, s.Items(), s.Search(""))
}

func TestParseTags(t *testing.T) {
	assert.Nil(t, ParseTags(""))
	assert.Equal(t, []string{"a"}, ParseTags("a"))
	assert.Equal(t, []string{"a", "b"}, ParseTags(" a , b ,, "))
	// Duplicates are kept as entered
	assert.Equal(t, []string{"a", "a"}, ParseTags("a,a"))
}
