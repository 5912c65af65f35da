package records

import (
	"sort"
	"strings"
	"time"

	"github.com/rkeller/levelup/internal/models"
)

// ScheduleStore holds the daily schedule, kept in ascending time order
// regardless of insertion order.
type ScheduleStore struct {
	collection[models.ScheduleBlock]
}

// NewScheduleStore loads the schedule stored under key
func NewScheduleStore(deps Deps, key string) *ScheduleStore {
	s := &ScheduleStore{newCollection[models.ScheduleBlock](deps, key)}
	// Older persisted data may be unordered.
	if !sort.SliceIsSorted(s.items, func(i, j int) bool { return s.items[i].Time < s.items[j].Time }) {
		s.set(sortedByTime(s.items))
	}
	return s
}

// ValidTime reports whether t is a zero-padded 24-hour "HH:MM" string
func ValidTime(t string) bool {
	if len(t) != 5 {
		return false
	}
	_, err := time.Parse("15:04", t)
	return err == nil
}

// Add inserts a block at its chronological position. Blank activities and
// malformed times are rejected.
func (s *ScheduleStore) Add(timeStr, activity string) bool {
	activity = strings.TrimSpace(activity)
	if activity == "" || !ValidTime(timeStr) {
		return false
	}
	block := models.ScheduleBlock{
		ID:       s.deps.NewID(),
		Time:     timeStr,
		Activity: activity,
	}
	s.set(sortedByTime(prepend(s.items, block)))
	return true
}

// sortedByTime returns a fresh slice in ascending time order. Lexicographic
// comparison of zero-padded "HH:MM" strings is chronological.
func sortedByTime(items []models.ScheduleBlock) []models.ScheduleBlock {
	next := append([]models.ScheduleBlock(nil), items...)
	sort.SliceStable(next, func(i, j int) bool { return next[i].Time < next[j].Time })
	return next
}

// Edit replaces the block activity. Blank replacement text leaves it as is.
func (s *ScheduleStore) Edit(id, activity string) {
	activity = strings.TrimSpace(activity)
	if activity == "" {
		return
	}
	s.set(update(s.items, id, func(b models.ScheduleBlock) models.ScheduleBlock {
		b.Activity = activity
		return b
	}))
}

// Remove deletes the block matching id
func (s *ScheduleStore) Remove(id string) {
	s.set(removeByID(s.items, id))
}
