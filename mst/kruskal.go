package mst

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// Kruskal is an incremental Kruskal run. The zero value is not usable;
// construct with NewKruskal.
type Kruskal struct {
	n     int
	edges []Edge

	started bool
	done    bool
	next    int
	order   []int
	forest  *DisjointSet

	accepted []int
	total    int
}

// NewKruskal validates the edges against n vertices and returns an unstarted run.
// The edge slice is copied.
func NewKruskal(n int, edges []Edge) (*Kruskal, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeOrder, "n=%d", n)
	}
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, errors.Wrapf(ErrVertexOutOfRange, "edge %d (%d-%d) with n=%d", i, e.From, e.To, n)
		}
	}

	return &Kruskal{n: n, edges: append([]Edge(nil), edges...)}, nil
}

// init builds the singleton forest and the weight order.
func (k *Kruskal) init() {
	k.forest = NewDisjointSet(k.n)
	k.order = make([]int, len(k.edges))
	for i := range k.order {
		k.order[i] = i
	}
	sort.SliceStable(k.order, func(i, j int) bool {
		return k.edges[k.order[i]].Weight < k.edges[k.order[j]].Weight
	})
	k.started = true
}

// Step examines the next edge in weight order. The first call also initializes
// the forest. Once every edge has been examined, the following call marks the
// run done and returns false; so do all later calls.
//
// Steps:
//  1. First call: build V singleton sets and stable-sort edge indices by weight.
//  2. No edge left: mark done and report false.
//  3. Take the next edge; accept it when its endpoints lie in different sets
//     (Union merges them), otherwise reject it as closing a cycle.
//
// Complexity: O(E log E) on the first call, amortized O(log V) afterwards.
func (k *Kruskal) Step() (Decision, bool) {
	if k.done {
		return Decision{}, false
	}
	// 1. Lazy initialization.
	if !k.started {
		k.init()
	}
	// 2. Completion is observed one call after the last edge.
	if k.next >= len(k.order) {
		k.done = true
		return Decision{}, false
	}

	// 3. Examine one edge.
	idx := k.order[k.next]
	k.next++
	e := k.edges[idx]
	d := Decision{Index: idx, Edge: e}
	if k.forest.Union(e.From, e.To) {
		d.Accepted = true
		k.accepted = append(k.accepted, idx)
		k.total += e.Weight
	}

	return d, true
}

// Run drains the remaining steps and returns the forest.
//
// Complexity: O(E log E + E log V).
func (k *Kruskal) Run() Result {
	for {
		if _, ok := k.Step(); !ok {
			break
		}
	}

	return k.Result()
}

// Result snapshots the forest built so far.
func (k *Kruskal) Result() Result {
	r := Result{Total: k.total, Components: k.n}
	if k.forest != nil {
		r.Components = k.forest.Sets()
	}
	for _, idx := range k.accepted {
		r.Edges = append(r.Edges, k.edges[idx])
	}

	return r
}

// Done reports whether every edge has been examined and completion observed.
func (k *Kruskal) Done() bool { return k.done }

// Started reports whether Step has been called.
func (k *Kruskal) Started() bool { return k.started }

// Total is the weight accepted so far.
func (k *Kruskal) Total() int { return k.total }

// Accepted returns the input indices of accepted edges, in acceptance order.
func (k *Kruskal) Accepted() []int { return append([]int(nil), k.accepted...) }

// Order returns the examination order as input indices. Empty before the first Step.
func (k *Kruskal) Order() []int { return append([]int(nil), k.order...) }

// Examined is the number of edges examined so far.
func (k *Kruskal) Examined() int { return k.next }

// Solve runs Kruskal to completion.
func Solve(n int, edges []Edge) (Result, error) {
	k, err := NewKruskal(n, edges)
	if err != nil {
		return Result{}, err
	}

	return k.Run(), nil
}
