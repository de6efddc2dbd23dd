package bfs

import (
	"context"

	"github.com/cockroachdb/errors"
)

// queueItem pairs a vertex index with its BFS depth.
type queueItem struct {
	index int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj   Adjacency
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start.
func BFS(g Adjacency, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilAdjacency
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.Order()
	if start < 0 || start >= n {
		return nil, errors.Wrapf(ErrStartOutOfRange, "start=%d order=%d", start, n)
	}

	w := &walker{
		adj:   g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}
	w.enqueue(start, 0, -1)

	if err := w.loop(); err != nil && !errors.Is(err, ErrStop) {
		return w.res, err
	}

	return w.res, nil
}

func (w *walker) enqueue(i, d, parent int) {
	w.res.Depth[i] = d
	w.res.Parent[i] = parent
	w.queue = append(w.queue, queueItem{index: i, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.index)
		if err := w.opts.OnVisit(item.index, item.depth); err != nil {
			if errors.Is(err, ErrStop) {
				return err
			}
			return errors.Wrapf(err, "bfs: OnVisit error at %d", item.index)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.adj.Neighbors(item.index) {
			if nbr < 0 || nbr >= len(w.res.Depth) {
				continue
			}
			if w.res.Depth[nbr] < 0 {
				w.enqueue(nbr, next, item.index)
			}
		}
	}

	return nil
}
