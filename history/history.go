package history

// Entry is one saved state together with the operation tag that produced the
// state following it.
type Entry[S any] struct {
	// State is an exclusively owned deep copy.
	State S

	// Insert is true for insert-like operations, false for delete-like ones.
	Insert bool

	// Value is the operand of the tagged operation.
	Value int
}

// Option configures a History.
type Option func(*options)

type options struct {
	limit int
}

// WithLimit caps the undo stack at n entries, dropping the oldest first.
// n <= 0 means unlimited, which is the default.
func WithLimit(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.limit = n
	}
}

// History holds two LIFO stacks of entries: undo and redo.
// It is not safe for concurrent use.
type History[S any] struct {
	clone func(S) S
	limit int
	undo  []Entry[S]
	redo  []Entry[S]
}

// New returns an empty History that deep-copies states with clone.
// Panics if clone is nil.
func New[S any](clone func(S) S, opts ...Option) *History[S] {
	if clone == nil {
		panic("history: New(nil clone)")
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	return &History[S]{clone: clone, limit: o.limit}
}

// Commit records current as the state preceding an operation tagged
// (insert, value) and invalidates the redo branch.
// Complexity: O(clone).
func (h *History[S]) Commit(current S, insert bool, value int) {
	h.undo = append(h.undo, Entry[S]{State: h.clone(current), Insert: insert, Value: value})
	if h.limit > 0 && len(h.undo) > h.limit {
		drop := len(h.undo) - h.limit
		clear(h.undo[:drop])
		h.undo = h.undo[drop:]
	}
	clear(h.redo)
	h.redo = h.redo[:0]
}

// Undo pops the most recent entry. A copy of current is pushed onto the redo
// stack under the same tag. The caller installs the returned State.
// Returns false, and changes nothing, if there is nothing to undo.
func (h *History[S]) Undo(current S) (Entry[S], bool) {
	e, ok := pop(&h.undo)
	if !ok {
		return e, false
	}
	h.redo = append(h.redo, Entry[S]{State: h.clone(current), Insert: e.Insert, Value: e.Value})

	return e, true
}

// Redo is the mirror image of Undo.
func (h *History[S]) Redo(current S) (Entry[S], bool) {
	e, ok := pop(&h.redo)
	if !ok {
		return e, false
	}
	h.undo = append(h.undo, Entry[S]{State: h.clone(current), Insert: e.Insert, Value: e.Value})

	return e, true
}

// Clear drops every snapshot in both stacks.
func (h *History[S]) Clear() {
	clear(h.undo)
	clear(h.redo)
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

// CanUndo reports whether Undo would change anything.
func (h *History[S]) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo would change anything.
func (h *History[S]) CanRedo() bool { return len(h.redo) > 0 }

// UndoLen returns the number of undoable entries.
func (h *History[S]) UndoLen() int { return len(h.undo) }

// RedoLen returns the number of redoable entries.
func (h *History[S]) RedoLen() int { return len(h.redo) }

func pop[S any](stack *[]Entry[S]) (Entry[S], bool) {
	s := *stack
	if len(s) == 0 {
		var zero Entry[S]
		return zero, false
	}
	e := s[len(s)-1]
	var zero Entry[S]
	s[len(s)-1] = zero // release the snapshot
	*stack = s[:len(s)-1]

	return e, true
}
