package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkeller/levelup/internal/models"
)

func TestWeeklyAddGroupsIntoSingleBucket(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewWeeklyStore(deps, KeyWeekly)

	require.True(t, s.Add("team sync", "2"))

	groups := s.Groups()
	require.Len(t, groups["Tue"], 1)
	assert.Equal(t, "team sync", groups["Tue"][0].Text)
	for _, label := range models.DayLabels {
		if label != "Tue" {
			assert.Empty(t, groups[label], "bucket %s should be empty", label)
		}
	}
}

func TestWeeklyGroupsIsPartition(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewWeeklyStore(deps, KeyWeekly)
	s.Add("anything", models.DayAny)
	s.Add("sunday chores", "0")
	s.Add("more sunday", "0")
	s.Add("saturday", "6")

	groups := s.Groups()

	// All buckets present even when empty
	assert.Len(t, groups, len(models.DayLabels))

	// Union of buckets equals the collection, each record in exactly one bucket
	seen := make(map[string]int)
	total := 0
	for _, bucket := range groups {
		for _, task := range bucket {
			seen[task.ID]++
			total++
		}
	}
	assert.Equal(t, s.Len(), total)
	for id, n := range seen {
		assert.Equal(t, 1, n, "record %s appears in %d buckets", id, n)
	}
}

func TestWeeklyAddRejectsUnknownDay(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewWeeklyStore(deps, KeyWeekly)

	assert.False(t, s.Add("bad day", "7"))
	assert.False(t, s.Add("bad day", "monday"))
	assert.False(t, s.Add("", "1"))
	assert.Empty(t, s.Items())
}

func TestWeeklyToggleAndClearDone(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewWeeklyStore(deps, KeyWeekly)
	s.Add("stays", "1")
	s.Add("goes", "1")

	before := s.Items()
	s.Toggle(before[0].ID)
	s.Toggle(before[0].ID)
	assert.Equal(t, before, s.Items())

	s.Toggle(before[0].ID)
	assert.Equal(t, 1, s.Remaining())

	s.ClearDone()
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "stays", s.Items()[0].Text)
}

func TestWeeklyEdit(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewWeeklyStore(deps, KeyWeekly)
	s.Add("draft", "3")
	id := s.Items()[0].ID

	s.Edit(id, "polished")
	assert.Equal(t, "polished", s.Items()[0].Text)
	assert.Equal(t, "3", s.Items()[0].DayOfWeek)
}
