// Package records holds the persisted collections behind each tab and the
// operations and derived views over them. Every collection is an ordered
// sequence loaded once at startup and rewritten in full after each mutation.
// A version bump on a key abandons the old data; there is no migration.
package records

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rkeller/levelup/internal/storage"
)

// Persisted collection keys, one per tab.
const (
	KeyDaily    = "dailyTodos_v1"
	KeyWeekly   = "weeklyTodos_v1"
	KeyMisc     = "miscTodos_v1"
	KeyFinances = "finances_v1"
	KeyJournal  = "journal_v1"
	KeySchedule = "schedule_v1"
)

// Deps carries the injected dependencies shared by all stores: the
// persistence medium, a wall clock, and an id generator. Tests substitute
// deterministic Now/NewID implementations.
type Deps struct {
	KV    storage.KV
	Now   func() time.Time
	NewID func() string
	Log   zerolog.Logger
}

// NewDeps returns Deps wired to the real clock and uuid generator
func NewDeps(kv storage.KV, log zerolog.Logger) Deps {
	return Deps{
		KV:    kv,
		Now:   time.Now,
		NewID: uuid.NewString,
		Log:   log,
	}
}

// collection is the generic persistent record store underneath each typed
// store. Load and save fail soft: a missing key, a corrupt value, or a write
// error leaves the in-memory slice authoritative for the session.
type collection[T any] struct {
	deps  Deps
	key   string
	items []T
}

func newCollection[T any](deps Deps, key string) collection[T] {
	c := collection[T]{deps: deps, key: key}
	c.load()
	return c
}

func (c *collection[T]) load() {
	raw, err := c.deps.KV.GetItem(c.key)
	if err != nil {
		c.deps.Log.Warn().Err(err).Str("key", c.key).Msg("load failed, starting empty")
		return
	}
	if raw == "" {
		return
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		c.deps.Log.Warn().Err(err).Str("key", c.key).Msg("corrupt collection, starting empty")
		return
	}
	c.items = items
}

// set replaces the collection and persists it in full
func (c *collection[T]) set(items []T) {
	c.items = items
	raw, err := json.Marshal(items)
	if err != nil {
		c.deps.Log.Warn().Err(err).Str("key", c.key).Msg("encode failed, write skipped")
		return
	}
	if err := c.deps.KV.SetItem(c.key, string(raw)); err != nil {
		c.deps.Log.Warn().Err(err).Str("key", c.key).Msg("write failed, keeping in-memory state")
	}
}

// Items returns the current collection, newest first (schedule stores keep
// time order instead). Callers must not mutate the returned slice.
func (c *collection[T]) Items() []T {
	return c.items
}

// Len returns the number of records in the collection
func (c *collection[T]) Len() int {
	return len(c.items)
}
