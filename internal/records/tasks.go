package records

import (
	"strings"

	"github.com/rkeller/levelup/internal/models"
)

// TaskStore holds one to-do list. The daily and misc tabs are two instances
// with different keys.
type TaskStore struct {
	collection[models.Task]
}

// NewTaskStore loads the to-do list stored under key
func NewTaskStore(deps Deps, key string) *TaskStore {
	return &TaskStore{newCollection[models.Task](deps, key)}
}

// Add creates a task from the given text. Blank text is rejected and nothing
// is written.
func (s *TaskStore) Add(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	s.set(prepend(s.items, models.Task{
		ID:        s.deps.NewID(),
		Text:      text,
		CreatedAt: s.deps.Now(),
	}))
	return true
}

// Toggle flips the done flag of the task matching id
func (s *TaskStore) Toggle(id string) {
	s.set(update(s.items, id, func(t models.Task) models.Task {
		t.Done = !t.Done
		return t
	}))
}

// Edit replaces the task text. Blank replacement text leaves the task as is.
func (s *TaskStore) Edit(id, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	s.set(update(s.items, id, func(t models.Task) models.Task {
		t.Text = text
		return t
	}))
}

// Remove deletes the task matching id
func (s *TaskStore) Remove(id string) {
	s.set(removeByID(s.items, id))
}

// ClearDone removes every completed task, preserving the order of the rest
func (s *TaskStore) ClearDone() {
	s.set(reject(s.items, func(t models.Task) bool { return t.Done }))
}

// Remaining counts tasks not yet done
func (s *TaskStore) Remaining() int {
	return countWhere(s.items, func(t models.Task) bool { return !t.Done })
}
