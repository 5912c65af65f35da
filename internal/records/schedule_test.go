package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleAddKeepsTimeOrder(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewScheduleStore(deps, KeySchedule)

	require.True(t, s.Add("09:00", "Study"))
	require.True(t, s.Add("07:30", "Workout"))
	require.True(t, s.Add("08:15", "Breakfast"))

	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "07:30", items[0].Time)
	assert.Equal(t, "08:15", items[1].Time)
	assert.Equal(t, "09:00", items[2].Time)
}

func TestScheduleAddRejectsInvalidInput(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewScheduleStore(deps, KeySchedule)

	assert.False(t, s.Add("09:00", "  "))
	assert.False(t, s.Add("9:00", "no zero padding"))
	assert.False(t, s.Add("25:00", "bad hour"))
	assert.False(t, s.Add("09:61", "bad minute"))
	assert.False(t, s.Add("lunch", "not a time"))
	assert.Empty(t, s.Items())
}

func TestScheduleLoadResortsUnorderedData(t *testing.T) {
	deps, kv, _ := testDeps()
	raw := `[{"id":"b","time":"12:00","activity":"Lunch"},{"id":"a","time":"06:45","activity":"Run"}]`
	require.NoError(t, kv.SetItem(KeySchedule, raw))

	s := NewScheduleStore(deps, KeySchedule)

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "06:45", items[0].Time)
	assert.Equal(t, "12:00", items[1].Time)
}

func TestScheduleEditAndRemove(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewScheduleStore(deps, KeySchedule)
	s.Add("10:00", "Reading")
	s.Add("11:00", "Errands")
	id := s.Items()[0].ID

	s.Edit(id, "Deep reading")
	assert.Equal(t, "Deep reading", s.Items()[0].Activity)
	assert.Equal(t, "10:00", s.Items()[0].Time)

	s.Edit(id, "  ")
	assert.Equal(t, "Deep reading", s.Items()[0].Activity)

	s.Remove(id)
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "Errands", s.Items()[0].Activity)
}

func TestValidTime(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"00:00", true},
		{"23:59", true},
		{"07:30", true},
		{"24:00", false},
		{"7:30", false},
		{"07:3", false},
		{"", false},
		{"07-30", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, ValidTime(tt.in), "ValidTime(%q)", tt.in)
	}
}
