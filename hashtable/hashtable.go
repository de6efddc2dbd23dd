package hashtable

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

const structure = "hash"

// Table is the hash table engine.
type Table struct {
	buckets Buckets
	size    int
	bucket  int

	hist *history.History[Buckets]
	play *playback.Playback

	rate    float64
	instant bool
	rng     *rand.Rand
	log     *slog.Logger
	rec     metrics.Recorder

	affected    playback.Step
	hasAffected bool
}

var _ command.Keyed = (*Table)(nil)

// New returns an empty table.
func New(opts ...command.Option) *Table {
	s := command.NewSettings(opts...)

	return &Table{
		bucket:  -1,
		hist:    history.New(CloneBuckets, history.WithLimit(s.HistoryLimit)),
		play:    s.Playback(),
		rate:    s.Rate,
		instant: s.Instant,
		rng:     s.Rand,
		log:     s.Logger.With("structure", structure),
		rec:     s.Recorder,
	}
}

func steps(nodes []*Node) []playback.Step {
	out := make([]playback.Step, len(nodes))
	for i, n := range nodes {
		out[i] = playback.Step{ID: n.Value, Value: n.Value}
	}
	return out
}

func (t *Table) start(kind playback.Kind, v int, path []playback.Step) {
	t.bucket = Hash(v)
	t.play.Start(kind, v, path, nil)
}

// Insert links v at the tail of its bucket unless it already exists.
func (t *Table) Insert(v int) command.Result {
	t.hasAffected = false
	path, found := t.buckets.chain(v)
	if found {
		t.start(playback.KindInsert, v, steps(path))
		t.log.Debug("duplicate rejected", "value", v)
		return command.Result{Message: fmt.Sprintf("Duplicate: %d already exists", v)}
	}

	t.hist.Commit(t.buckets, true, v)
	at := slot(Hash(v), len(path))
	at.X += ChainSpacing
	nn := &Node{Value: v, Pos: viz.Motion{Current: at, Target: at}}
	t.buckets.link(nn)
	t.size++
	t.relayout()
	t.start(playback.KindInsert, v, append(steps(path), playback.Step{ID: v, Value: v}))
	t.commit("insert", v)

	return command.Result{Committed: true}
}

// Delete unlinks v. An absent value commits nothing.
func (t *Table) Delete(v int) command.Result {
	t.hasAffected = false
	path, found := t.buckets.chain(v)
	if !found {
		t.play.Cancel()
		return command.Result{Message: fmt.Sprintf("Value %d not found", v)}
	}
	walked := steps(path)

	t.hist.Commit(t.buckets, false, v)
	t.buckets.unlink(v)
	t.size--
	t.relayout()
	t.start(playback.KindDelete, v, walked[:len(walked)-1])
	t.commit("delete", v)

	return command.Result{Committed: true}
}

// Search starts a playback along v's bucket and returns the walk.
func (t *Table) Search(v int) []playback.Step {
	t.hasAffected = false
	path, _ := t.buckets.chain(v)
	s := steps(path)
	t.start(playback.KindSearch, v, s)
	t.rec.Operation(structure, "search")

	return s
}

// Find reports whether v is stored.
func (t *Table) Find(v int) bool {
	_, found := t.buckets.chain(v)
	return found
}

// Undo restores the table before the last committed mutation.
func (t *Table) Undo() (playback.Step, bool) { return t.swap(t.hist.Undo, "undo") }

// Redo reapplies the last undone mutation.
func (t *Table) Redo() (playback.Step, bool) { return t.swap(t.hist.Redo, "redo") }

func (t *Table) swap(pop func(Buckets) (history.Entry[Buckets], bool), op string) (playback.Step, bool) {
	t.play.Cancel()
	t.hasAffected = false
	e, ok := pop(t.buckets)
	if !ok {
		return playback.Step{}, false
	}
	t.buckets = e.State
	t.size = 0
	t.buckets.each(func(int, int, *Node) { t.size++ })
	t.relayout()
	t.rec.Operation(structure, op)
	t.log.Debug(op, "value", e.Value, "insert", e.Insert)

	path, _ := t.buckets.chain(e.Value)
	t.bucket = Hash(e.Value)
	if len(path) == 0 {
		return playback.Step{}, false
	}
	last := path[len(path)-1]
	t.affected, t.hasAffected = playback.Step{ID: last.Value, Value: last.Value}, true

	return t.affected, true
}

// Clear empties every bucket and both history stacks.
func (t *Table) Clear() {
	t.buckets = Buckets{}
	t.size = 0
	t.bucket = -1
	t.hist.Clear()
	t.play.Cancel()
	t.hasAffected = false
	t.rec.Operation(structure, "clear")
}

// GenerateRandom clears the table and inserts count values drawn from [lo, hi].
func (t *Table) GenerateRandom(count, lo, hi int) error {
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
	t.bucket = -1

	return nil
}

// LoadFromFile clears the table and inserts every integer in path.
func (t *Table) LoadFromFile(path string) command.LoadResult {
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

// Load clears the table and inserts every integer read from r.
func (t *Table) Load(r io.Reader, name string) command.LoadResult {
	vals, err := loader.ReadValues(r)
	t.Clear()
	for _, v := range vals {
		t.Insert(v)
	}
	t.play.Cancel()
	t.bucket = -1
	res := command.LoadResult{Count: len(vals), Message: command.Loaded(len(vals), name)}
	if err != nil {
		res.Message = command.LoadFailed(name, err)
	}
	t.rec.Operation(structure, "load")

	return t.loaded(res)
}

func (t *Table) loaded(res command.LoadResult) command.LoadResult {
	t.play.SetMessage(res.Message)
	t.log.Info("load", "count", res.Count, "message", res.Message)
	return res
}

// Update advances playback and slides nodes toward their slots.
func (t *Table) Update(dt time.Duration) {
	if t.play.Tick(dt) {
		t.bucket = -1
	}
	instant := t.instant || t.play.Instant()
	t.buckets.each(func(_, _ int, n *Node) { n.Pos.Step(dt, t.rate, instant) })
}

// Playback exposes the reveal state.
func (t *Table) Playback() *playback.Playback { return t.play }

// Bucket is the bucket the current playback walks, or -1.
func (t *Table) Bucket() int {
	if !t.play.Busy() && !t.hasAffected {
		return -1
	}
	return t.bucket
}

// Positions maps each value to its current position.
func (t *Table) Positions() map[int]viz.Point {
	out := make(map[int]viz.Point, t.size)
	t.buckets.each(func(_, _ int, n *Node) { out[n.Value] = n.Pos.Current })
	return out
}

// Highlights holds the node being revealed, or the node an undo/redo landed on.
func (t *Table) Highlights() map[int]struct{} {
	out := make(map[int]struct{}, 1)
	if s, ok := t.play.Current(); ok {
		out[s.ID] = struct{}{}
	} else if t.hasAffected {
		out[t.affected.ID] = struct{}{}
	}
	return out
}

// Buckets returns the values of every bucket in chain order.
func (t *Table) Buckets() [][]int {
	out := make([][]int, Size)
	t.buckets.each(func(i, _ int, n *Node) { out[i] = append(out[i], n.Value) })
	return out
}

// Len is the number of stored values.
func (t *Table) Len() int { return t.size }

// LoadFactor is Len divided by Size.
func (t *Table) LoadFactor() float64 { return float64(t.size) / Size }

// CanUndo reports whether Undo would change the table.
func (t *Table) CanUndo() bool { return t.hist.CanUndo() }

// CanRedo reports whether Redo would change the table.
func (t *Table) CanRedo() bool { return t.hist.CanRedo() }

func (t *Table) relayout() {
	t.buckets.each(func(i, j int, n *Node) {
		n.Pos.Target = slot(i, j)
		if t.instant {
			n.Pos.Snap()
		}
	})
}

func (t *Table) commit(op string, v int) {
	t.rec.Operation(structure, op)
	t.log.Debug("committed", "op", op, "value", v, "size", t.size)
}
