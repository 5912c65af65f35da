package records

import (
	"strings"

	"github.com/rkeller/levelup/internal/models"
)

// WeeklyStore holds the week-planner to-do list
type WeeklyStore struct {
	collection[models.WeeklyTask]
}

// NewWeeklyStore loads the weekly list stored under key
func NewWeeklyStore(deps Deps, key string) *WeeklyStore {
	return &WeeklyStore{newCollection[models.WeeklyTask](deps, key)}
}

// Add creates a weekly task pinned to day ("any" or "0".."6"). Blank text and
// unknown days are rejected.
func (s *WeeklyStore) Add(text, day string) bool {
	text = strings.TrimSpace(text)
	if text == "" || !validDay(day) {
		return false
	}
	s.set(prepend(s.items, models.WeeklyTask{
		ID:        s.deps.NewID(),
		Text:      text,
		DayOfWeek: day,
		CreatedAt: s.deps.Now(),
	}))
	return true
}

func validDay(day string) bool {
	if day == models.DayAny {
		return true
	}
	return len(day) == 1 && day[0] >= '0' && day[0] <= '6'
}

// Toggle flips the done flag of the task matching id
func (s *WeeklyStore) Toggle(id string) {
	s.set(update(s.items, id, func(t models.WeeklyTask) models.WeeklyTask {
		t.Done = !t.Done
		return t
	}))
}

// Edit replaces the task text. Blank replacement text leaves the task as is.
func (s *WeeklyStore) Edit(id, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	s.set(update(s.items, id, func(t models.WeeklyTask) models.WeeklyTask {
		t.Text = text
		return t
	}))
}

// Remove deletes the task matching id
func (s *WeeklyStore) Remove(id string) {
	s.set(removeByID(s.items, id))
}

// ClearDone removes every completed task
func (s *WeeklyStore) ClearDone() {
	s.set(reject(s.items, func(t models.WeeklyTask) bool { return t.Done }))
}

// Remaining counts tasks not yet done
func (s *WeeklyStore) Remaining() int {
	return countWhere(s.items, func(t models.WeeklyTask) bool { return !t.Done })
}

// Groups partitions the list into the eight day buckets. Every bucket is
// present even when empty; within a bucket the collection order is kept.
func (s *WeeklyStore) Groups() map[string][]models.WeeklyTask {
	groups := make(map[string][]models.WeeklyTask, len(models.DayLabels))
	for _, label := range models.DayLabels {
		groups[label] = nil
	}
	for _, t := range s.items {
		label := t.DayLabel()
		groups[label] = append(groups[label], t)
	}
	return groups
}
