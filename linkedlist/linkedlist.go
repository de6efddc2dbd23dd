package linkedlist

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

const structure = "list"

// List is the linked list engine.
type List struct {
	head   *Node
	size   int
	nextID int

	hist *history.History[*Node]
	play *playback.Playback

	layout  viz.ListLayout
	rate    float64
	instant bool
	rng     *rand.Rand
	log     *slog.Logger
	rec     metrics.Recorder

	affected    playback.Step
	hasAffected bool
}

var _ command.Keyed = (*List)(nil)

// New returns an empty list.
func New(opts ...command.Option) *List {
	s := command.NewSettings(opts...)

	return &List{
		hist:    history.New(Clone, history.WithLimit(s.HistoryLimit)),
		play:    s.Playback(),
		layout:  s.List,
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
		out[i] = playback.Step{ID: n.ID, Value: n.Value}
	}
	return out
}

// Insert appends v at the tail. It always commits.
func (l *List) Insert(v int) command.Result {
	l.hasAffected = false
	l.hist.Commit(l.head, true, v)

	l.nextID++
	at := l.layout.At(l.size)
	at.Y -= l.layout.Spacing
	nn := &Node{ID: l.nextID, Value: v, Pos: viz.Motion{Current: at, Target: at}}
	var path []*Node
	l.head = appendTail(l.head, nn, &path)
	l.size++
	l.relayout()
	l.play.Start(playback.KindInsert, v, steps(path), nil)
	l.commit("insert", v)

	return command.Result{Committed: true}
}

// Delete unlinks the first node holding v.
func (l *List) Delete(v int) command.Result {
	l.hasAffected = false
	path := find(l.head, v)
	if len(path) == 0 || path[len(path)-1].Value != v {
		l.play.Cancel()
		return command.Result{Message: fmt.Sprintf("Value %d not in list", v)}
	}
	walked := steps(path)

	l.hist.Commit(l.head, false, v)
	l.head, _ = unlink(l.head, v)
	l.size--
	l.relayout()
	l.play.Start(playback.KindDelete, v, walked[:len(walked)-1], nil)
	l.commit("delete", v)

	return command.Result{Committed: true}
}

// Search starts a search playback and returns its path.
func (l *List) Search(v int) []playback.Step {
	l.hasAffected = false
	path := steps(find(l.head, v))
	l.play.Start(playback.KindSearch, v, path, nil)
	l.rec.Operation(structure, "search")

	return path
}

// Undo restores the chain before the last committed mutation.
func (l *List) Undo() (playback.Step, bool) { return l.swap(l.hist.Undo, "undo") }

// Redo reapplies the last undone mutation.
func (l *List) Redo() (playback.Step, bool) { return l.swap(l.hist.Redo, "redo") }

func (l *List) swap(pop func(*Node) (history.Entry[*Node], bool), op string) (playback.Step, bool) {
	l.play.Cancel()
	l.hasAffected = false
	e, ok := pop(l.head)
	if !ok {
		return playback.Step{}, false
	}
	l.head = e.State
	l.size = len(Values(l.head))
	l.nextID = max(l.nextID, maxID(l.head))
	l.relayout()
	l.rec.Operation(structure, op)
	l.log.Debug(op, "value", e.Value, "insert", e.Insert)

	path := find(l.head, e.Value)
	if len(path) == 0 {
		return playback.Step{}, false
	}
	last := path[len(path)-1]
	l.affected, l.hasAffected = playback.Step{ID: last.ID, Value: last.Value}, true

	return l.affected, true
}

// Clear drops the chain and both history stacks.
func (l *List) Clear() {
	l.head = nil
	l.size = 0
	l.hist.Clear()
	l.play.Cancel()
	l.hasAffected = false
	l.rec.Operation(structure, "clear")
}

// GenerateRandom clears the list and appends count values drawn from [lo, hi].
// A rejected request leaves the list untouched.
func (l *List) GenerateRandom(count, lo, hi int) error {
	vals, err := builder.Values(count, lo, hi, builder.WithRand(l.rng))
	if err != nil {
		l.log.Warn("random generation rejected", "err", err)
		return err
	}
	l.Clear()
	for _, v := range vals {
		l.Insert(v)
	}
	l.play.Cancel()

	return nil
}

// LoadFromFile clears the list and appends every integer in path.
func (l *List) LoadFromFile(path string) command.LoadResult {
	if path == "" {
		return l.loaded(command.LoadResult{Message: command.Canceled})
	}
	f, err := loader.Open(path)
	if err != nil {
		return l.loaded(command.LoadResult{Message: command.LoadFailed(path, err)})
	}
	defer f.Close()

	return l.Load(f, path)
}

// Load clears the list and appends every integer read from r.
func (l *List) Load(r io.Reader, name string) command.LoadResult {
	vals, err := loader.ReadValues(r)
	l.Clear()
	for _, v := range vals {
		l.Insert(v)
	}
	l.play.Cancel()
	res := command.LoadResult{Count: len(vals)}
	switch {
	case err != nil:
		res.Message = command.LoadFailed(name, err)
	case l.instant || l.play.Instant():
		res.Message = command.LoadedInstantly(len(vals), name)
	default:
		res.Message = command.Loaded(len(vals), name)
	}
	l.rec.Operation(structure, "load")

	return l.loaded(res)
}

func (l *List) loaded(res command.LoadResult) command.LoadResult {
	l.play.SetMessage(res.Message)
	l.log.Info("load", "count", res.Count, "message", res.Message)
	return res
}

// Update advances playback and moves every node toward its slot.
func (l *List) Update(dt time.Duration) {
	l.play.Tick(dt)
	instant := l.instant || l.play.Instant()
	for n := l.head; n != nil; n = n.Next {
		n.Pos.Step(dt, l.rate, instant)
	}
}

// Playback exposes the reveal state.
func (l *List) Playback() *playback.Playback { return l.play }

// Positions maps node IDs to their current positions.
func (l *List) Positions() map[int]viz.Point {
	out := make(map[int]viz.Point, l.size)
	for n := l.head; n != nil; n = n.Next {
		out[n.ID] = n.Pos.Current
	}
	return out
}

// Highlights holds the node being revealed, or the node an undo/redo landed on.
func (l *List) Highlights() map[int]struct{} {
	out := make(map[int]struct{}, 1)
	if s, ok := l.play.Current(); ok {
		out[s.ID] = struct{}{}
	} else if l.hasAffected {
		out[l.affected.ID] = struct{}{}
	}
	return out
}

// Head returns the live head. Callers must not mutate it.
func (l *List) Head() *Node { return l.head }

// Len is the number of nodes.
func (l *List) Len() int { return l.size }

// Values lists values from the head.
func (l *List) Values() []int { return Values(l.head) }

// CanUndo reports whether Undo would change the list.
func (l *List) CanUndo() bool { return l.hist.CanUndo() }

// CanRedo reports whether Redo would change the list.
func (l *List) CanRedo() bool { return l.hist.CanRedo() }

func (l *List) relayout() {
	i := 0
	for n := l.head; n != nil; n = n.Next {
		n.Pos.Target = l.layout.At(i)
		if l.instant {
			n.Pos.Snap()
		}
		i++
	}
}

func (l *List) commit(op string, v int) {
	l.rec.Operation(structure, op)
	l.log.Debug("committed", "op", op, "value", v, "size", l.size)
}
