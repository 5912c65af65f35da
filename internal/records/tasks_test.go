package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskAdd(t *testing.T) {
	deps, _, clock := testDeps()
	s := NewTaskStore(deps, KeyDaily)

	require.True(t, s.Add("Buy milk"))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Buy milk", items[0].Text)
	assert.False(t, items[0].Done)
	assert.Equal(t, clock.Now(), items[0].CreatedAt)
	assert.Equal(t, 1, s.Remaining())
}

func TestTaskAddPrepends(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewTaskStore(deps, KeyDaily)

	s.Add("first")
	s.Add("second")

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Text)
	assert.Equal(t, "first", items[1].Text)
}

func TestTaskAddRejectsBlank(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewTaskStore(deps, KeyDaily)

	assert.False(t, s.Add(""))
	assert.False(t, s.Add("   \t"))
	assert.Empty(t, s.Items())
}

func TestTaskAddThenRemoveIsIdentity(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewTaskStore(deps, KeyDaily)
	s.Add("keep me")
	before := s.Items()

	require.True(t, s.Add("temporary"))
	s.Remove(s.Items()[0].ID)

	assert.Equal(t, before, s.Items())
}

func TestTaskDoubleToggleIsIdentity(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewTaskStore(deps, KeyDaily)
	s.Add("a")
	s.Add("b")
	before := s.Items()
	id := before[1].ID

	s.Toggle(id)
	assert.True(t, s.Items()[1].Done)
	s.Toggle(id)

	assert.Equal(t, before, s.Items())
}

func TestTaskRemainingPlusDoneEqualsLen(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewTaskStore(deps, KeyDaily)
	for _, text := range []string{"a", "b", "c", "d"} {
		s.Add(text)
	}
	s.Toggle(s.Items()[0].ID)
	s.Toggle(s.Items()[2].ID)

	done := 0
	for _, it := range s.Items() {
		if it.Done {
			done++
		}
	}
	assert.Equal(t, s.Len(), s.Remaining()+done)
}

func TestTaskMissingIDIsNoOp(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewTaskStore(deps, KeyDaily)
	s.Add("a")
	before := s.Items()

	s.Toggle("nope")
	s.Edit("nope", "changed")
	s.Remove("nope")

	assert.Equal(t, before, s.Items())
}

func TestTaskEdit(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewTaskStore(deps, KeyDaily)
	s.Add("draft")
	id := s.Items()[0].ID

	s.Edit(id, "  final  ")
	assert.Equal(t, "final", s.Items()[0].Text)

	// Blank replacement leaves the record untouched
	s.Edit(id, "   ")
	assert.Equal(t, "final", s.Items()[0].Text)
}

func TestTaskClearDoneKeepsPendingOrder(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewTaskStore(deps, KeyDaily)
	s.Add("done one")
	s.Add("pending")
	s.Add("done two")
	s.Toggle(s.Items()[0].ID)
	s.Toggle(s.Items()[2].ID)

	s.ClearDone()

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "pending", items[0].Text)
}

func TestTaskPersistsThroughKV(t *testing.T) {
	deps, kv, _ := testDeps()
	s := NewTaskStore(deps, KeyDaily)
	s.Add("survives reload")

	reloaded := NewTaskStore(Deps{KV: kv, Now: deps.Now, NewID: deps.NewID, Log: deps.Log}, KeyDaily)
	require.Len(t, reloaded.Items(), 1)
	assert.Equal(t, "survives reload", reloaded.Items()[0].Text)
}

func TestTaskCollectionsAreIndependent(t *testing.T) {
	deps, _, _ := testDeps()
	daily := NewTaskStore(deps, KeyDaily)
	misc := NewTaskStore(deps, KeyMisc)

	daily.Add("daily only")

	assert.Len(t, daily.Items(), 1)
	assert.Empty(t, misc.Items())
}

func TestTaskCorruptDataStartsEmpty(t *testing.T) {
	deps, kv, _ := testDeps()
	require.NoError(t, kv.SetItem(KeyDaily, "{not json"))

	s := NewTaskStore(deps, KeyDaily)
	assert.Empty(t, s.Items())

	// The store keeps working after a bad load
	require.True(t, s.Add("fresh start"))
	assert.Len(t, s.Items(), 1)
}

func TestTaskBrokenKVKeepsMemoryState(t *testing.T) {
	deps, _, _ := testDeps()
	deps.KV = brokenKV{}
	s := NewTaskStore(deps, KeyDaily)

	require.True(t, s.Add("in memory only"))
	s.Toggle(s.Items()[0].ID)

	require.Len(t, s.Items(), 1)
	assert.True(t, s.Items()[0].Done)
}
