package records

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/rkeller/levelup/internal/storage"
)

// testClock is a settable wall clock for deterministic stores
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// testDeps returns deps with an in-memory KV, a fixed clock, and sequential
// ids ("id-1", "id-2", ...)
func testDeps() (Deps, *storage.Memory, *testClock) {
	kv := storage.NewMemory()
	clock := &testClock{now: time.Date(2024, time.January, 5, 10, 30, 0, 0, time.UTC)}
	seq := 0
	deps := Deps{
		KV:  kv,
		Now: clock.Now,
		NewID: func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		},
		Log: zerolog.Nop(),
	}
	return deps, kv, clock
}

// brokenKV fails every operation, for fail-soft coverage
type brokenKV struct{}

func (brokenKV) GetItem(string) (string, error) { return "", errors.New("read failed") }

func (brokenKV) SetItem(string, string) error { return errors.New("write failed") }
