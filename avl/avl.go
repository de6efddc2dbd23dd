package avl

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/dsviz/builder"
	"github.com/katalvlaran/dsviz/command"
	"github.com/katalvlaran/dsviz/history"
	"github.com/katalvlaran/dsviz/loader"
	"github.com/katalvlaran/dsviz/metrics"
	"github.com/katalvlaran/dsviz/playback"
	"github.com/katalvlaran/dsviz/viz"
)

const structure = "avl"

// Tree is the AVL engine. It is not safe for concurrent use; a single frame
// loop owns it.
type Tree struct {
	root *Node
	size int

	hist *history.History[*Node]
	play *playback.Playback

	layout  viz.TreeLayout
	rate    float64
	instant bool
	rng     *rand.Rand
	log     *slog.Logger
	rec     metrics.Recorder

	affected    playback.Step
	hasAffected bool
}

var _ command.Keyed = (*Tree)(nil)

// New returns an empty tree.
func New(opts ...command.Option) *Tree {
	s := command.NewSettings(opts...)

	return &Tree{
		hist:    history.New(Clone, history.WithLimit(s.HistoryLimit)),
		play:    s.Playback(),
		layout:  s.Tree,
		rate:    s.Rate,
		instant: s.Instant,
		rng:     s.Rand,
		log:     s.Logger.With("structure", structure),
		rec:     s.Recorder,
	}
}

// Insert adds key. A duplicate replays the search path and commits nothing.
func (t *Tree) Insert(key int) command.Result {
	t.hasAffected = false
	if contains(t.root, key) {
		t.play.Start(playback.KindInsert, key, searchPath(t.root, key), nil)
		msg := fmt.Sprintf("Key %d already in tree", key)
		t.log.Debug("duplicate rejected", "value", key)
		return command.Result{Message: msg}
	}

	t.hist.Commit(t.root, true, key)
	tr := &trace{rec: t.rec, spawn: viz.Point{X: t.layout.OriginX, Y: t.layout.OriginY}}
	t.root, _ = insert(t.root, key, tr)
	t.size++
	t.relayout()
	t.play.Start(playback.KindInsert, key, tr.path, tr.lines)
	t.commit("insert", key)

	return command.Result{Committed: true}
}

// Delete removes key and replays the descent that reached it.
// An absent key commits nothing.
func (t *Tree) Delete(key int) command.Result {
	t.hasAffected = false
	if !contains(t.root, key) {
		t.play.Cancel()
		return command.Result{Message: fmt.Sprintf("Key %d not in tree", key)}
	}
	path := searchPath(t.root, key)

	t.hist.Commit(t.root, false, key)
	t.root, _ = remove(t.root, key, &trace{rec: t.rec})
	t.size--
	t.relayout()
	t.play.Start(playback.KindDelete, key, path[:len(path)-1], nil)
	t.commit("delete", key)

	return command.Result{Committed: true}
}

// Search starts a search playback and returns its path.
func (t *Tree) Search(key int) []playback.Step {
	t.hasAffected = false
	path := searchPath(t.root, key)
	t.play.Start(playback.KindSearch, key, path, nil)
	t.rec.Operation(structure, "search")

	return path
}

// Undo restores the tree before the last committed mutation and returns the
// node found by re-searching the value that mutation touched.
func (t *Tree) Undo() (playback.Step, bool) {
	return t.swap(t.hist.Undo, "undo")
}

// Redo reapplies the last undone mutation.
func (t *Tree) Redo() (playback.Step, bool) {
	return t.swap(t.hist.Redo, "redo")
}

func (t *Tree) swap(pop func(*Node) (history.Entry[*Node], bool), op string) (playback.Step, bool) {
	t.play.Cancel()
	t.hasAffected = false
	e, ok := pop(t.root)
	if !ok {
		return playback.Step{}, false
	}
	t.root = e.State
	t.size = count(t.root)
	t.relayout()
	t.rec.Operation(structure, op)
	t.log.Debug(op, "value", e.Value, "insert", e.Insert)

	path := searchPath(t.root, e.Value)
	if len(path) == 0 {
		return playback.Step{}, false
	}
	t.affected, t.hasAffected = path[len(path)-1], true

	return t.affected, true
}

// Clear drops the tree and both history stacks.
func (t *Tree) Clear() {
	t.root = nil
	t.size = 0
	t.hist.Clear()
	t.play.Cancel()
	t.hasAffected = false
	t.rec.Operation(structure, "clear")
}

// GenerateRandom clears the tree and inserts count keys drawn from [lo, hi].
// Drawn duplicates are skipped. A rejected request leaves the tree and its
// history untouched.
func (t *Tree) GenerateRandom(count, lo, hi int) error {
	vals, err := builder.Values(count, lo, hi, builder.WithRand(t.rng))
	if err != nil {
		t.log.Warn("random generation rejected", "err", err)
		return err
	}
	t.Clear()
	for _, v := range vals {
		t.Insert(v)
	}
	t.play.Cancel()
	t.log.Info("random tree", "requested", count, "size", t.size)

	return nil
}

// LoadFromFile clears the tree and inserts every integer in path.
// An empty path means the file dialog was canceled.
func (t *Tree) LoadFromFile(path string) command.LoadResult {
	if path == "" {
		return t.loaded(command.LoadResult{Message: command.Canceled})
	}
	f, err := loader.Open(path)
	if err != nil {
		return t.loaded(command.LoadResult{Message: command.LoadFailed(path, err)})
	}
	defer f.Close()

	return t.Load(f, path)
}

// Load clears the tree and inserts every integer read from r.
// Values read before an I/O failure are kept.
func (t *Tree) Load(r io.Reader, name string) command.LoadResult {
	vals, err := loader.ReadValues(r)
	t.Clear()
	for _, v := range vals {
		t.Insert(v)
	}
	t.play.Cancel()
	if err != nil {
		return t.loaded(command.LoadResult{Count: len(vals), Message: command.LoadFailed(name, err)})
	}
	t.rec.Operation(structure, "load")

	return t.loaded(command.LoadResult{Count: len(vals), Message: command.Loaded(len(vals), name)})
}

func (t *Tree) loaded(res command.LoadResult) command.LoadResult {
	t.play.SetMessage(res.Message)
	t.log.Info("load", "count", res.Count, "message", res.Message)
	return res
}

// Update advances playback and moves every node toward its target.
func (t *Tree) Update(dt time.Duration) {
	t.play.Tick(dt)
	instant := t.instant || t.play.Instant()
	walk(t.root, func(n *Node) { n.Pos.Step(dt, t.rate, instant) })
}

// Playback exposes the reveal state.
func (t *Tree) Playback() *playback.Playback { return t.play }

// Positions maps each key to its current on-screen position.
func (t *Tree) Positions() map[int]viz.Point {
	out := make(map[int]viz.Point, t.size)
	walk(t.root, func(n *Node) { out[n.Key] = n.Pos.Current })
	return out
}

// Highlights holds the node currently revealed by playback, or the node an
// undo/redo landed on.
func (t *Tree) Highlights() map[int]struct{} {
	out := make(map[int]struct{}, 1)
	if s, ok := t.play.Current(); ok {
		out[s.ID] = struct{}{}
	} else if t.hasAffected {
		out[t.affected.ID] = struct{}{}
	}

	return out
}

// Root returns the live root. Callers must not mutate it.
func (t *Tree) Root() *Node { return t.root }

// Height of the tree; 0 when empty.
func (t *Tree) Height() int { return height(t.root) }

// Len is the number of keys.
func (t *Tree) Len() int { return t.size }

// Keys returns the keys in order.
func (t *Tree) Keys() []int { return inorder(t.root, make([]int, 0, t.size)) }

// Check validates every structural invariant.
func (t *Tree) Check() error { return Validate(t.root) }

// CanUndo reports whether Undo would change the tree.
func (t *Tree) CanUndo() bool { return t.hist.CanUndo() }

// CanRedo reports whether Redo would change the tree.
func (t *Tree) CanRedo() bool { return t.hist.CanRedo() }

func (t *Tree) relayout() {
	CalculatePositions(t.root, t.layout)
	if t.instant {
		walk(t.root, func(n *Node) { n.Pos.Snap() })
	}
}

func (t *Tree) commit(op string, key int) {
	t.rec.Operation(structure, op)
	t.log.Debug("committed", "op", op, "value", key, "size", t.size)
}
