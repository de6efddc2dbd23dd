// Package dsviz is a step-by-step engine for teaching data structures:
// an AVL tree, a singly linked list, a chained hash table and an undirected
// weighted graph with an animated Kruskal MST.
//
// Every structure exposes the same command surface (insert, delete, search,
// undo, redo, clear, random, load) and reports what a renderer should draw
// through position and highlight hints. Nothing here opens a window.
//
// Layout of the module:
//
//	avl/        — AVL engine: rotations, pseudocode trace, tree layout
//	linkedlist/ — append-at-tail list with node identity across undo
//	hashtable/  — 17 buckets with separate chaining
//	graph/      — vertices, weighted edges, BFS search, paced Kruskal
//	mst/        — disjoint set and step-wise Kruskal
//	bfs/        — breadth-first traversal and connected components
//	history/    — snapshot undo/redo stacks
//	playback/   — timed reveal of a visited path
//	viz/        — points, motion easing, layout geometry
//	builder/    — random values and random connected graphs
//	loader/     — whitespace-separated integer and triple files
//	command/    — shared results, messages and engine options
//	config/     — viper-backed settings
//	metrics/    — operation and rotation counters
//	cmd/dsviz/  — script-driven CLI
//
// Quick ASCII example, inserting 1, 2, 3 into an AVL tree:
//
//	1            2
//	 \          / \
//	  2   ──▶  1   3
//	   \
//	    3
//
//	go run github.com/katalvlaran/dsviz/cmd/dsviz avl -e "insert 1" -e "insert 2" -e "insert 3" -e show
package dsviz
