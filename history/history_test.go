package history_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dsviz/history"
)

// sliceState is a toy structure mutated in place, like the engines' nodes.
type sliceState = *[]int

func cloneSlice(s sliceState) sliceState {
	c := slices.Clone(*s)
	return &c
}

func TestHistory_UndoRedoInverse(t *testing.T) {
	h := history.New(cloneSlice)
	live := &[]int{1, 2}

	h.Commit(live, true, 3)
	*live = append(*live, 3)

	e, ok := h.Undo(live)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, *e.State)
	assert.True(t, e.Insert)
	assert.Equal(t, 3, e.Value)
	live = e.State

	e, ok = h.Redo(live)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, *e.State)
	assert.Equal(t, 3, e.Value)
	assert.Equal(t, 1, h.UndoLen())
	assert.Equal(t, 0, h.RedoLen())
}

func TestHistory_SnapshotsDoNotAlias(t *testing.T) {
	h := history.New(cloneSlice)
	live := &[]int{7}
	h.Commit(live, true, 8)
	(*live)[0] = 99

	e, ok := h.Undo(live)
	require.True(t, ok)
	assert.Equal(t, []int{7}, *e.State)
}

func TestHistory_CommitClearsRedo(t *testing.T) {
	h := history.New(cloneSlice)
	live := &[]int{}
	h.Commit(live, true, 1)
	*live = append(*live, 1)

	e, _ := h.Undo(live)
	live = e.State
	require.True(t, h.CanRedo())

	h.Commit(live, true, 2)
	assert.False(t, h.CanRedo())
	_, ok := h.Redo(live)
	assert.False(t, ok)
}

func TestHistory_EmptyStacksNoop(t *testing.T) {
	h := history.New(cloneSlice)
	_, ok := h.Undo(&[]int{})
	assert.False(t, ok)
	_, ok = h.Redo(&[]int{})
	assert.False(t, ok)
	assert.Equal(t, 0, h.RedoLen())
}

func TestHistory_LimitDropsOldest(t *testing.T) {
	h := history.New(cloneSlice, history.WithLimit(2))
	live := &[]int{}
	for v := 1; v <= 3; v++ {
		h.Commit(live, true, v)
		*live = append(*live, v)
	}
	assert.Equal(t, 2, h.UndoLen())

	e, _ := h.Undo(live)
	assert.Equal(t, 3, e.Value)
	e, _ = h.Undo(e.State)
	assert.Equal(t, 2, e.Value)
	_, ok := h.Undo(e.State)
	assert.False(t, ok)
}

func TestHistory_Clear(t *testing.T) {
	h := history.New(cloneSlice)
	live := &[]int{}
	h.Commit(live, false, 1)
	h.Commit(live, false, 2)
	e, _ := h.Undo(live)
	_ = e

	h.Clear()
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestHistory_NilClonePanics(t *testing.T) {
	assert.Panics(t, func() { history.New[sliceState](nil) })
}
