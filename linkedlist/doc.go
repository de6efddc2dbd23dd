// Package linkedlist implements the singly linked list screen of dsviz.
//
// Values are appended at the tail, duplicates allowed. Delete unlinks the
// first node holding the value; Search walks from the head until it finds it.
// Each node carries a serial ID that survives snapshots, so a highlight keeps
// pointing at the same box across undo and redo even when values repeat.
//
// The list shares the snapshot history and timed playback of every other
// engine: a committed Insert or Delete pushes a deep copy of the previous
// chain, and Insert, Delete and Search replay the nodes they walked.
package linkedlist
