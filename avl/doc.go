// Package avl implements the balanced-tree screen of dsviz: an AVL tree with
// snapshot undo/redo, timed reveal of the path each command walks, and the
// render hints a drawing layer consumes.
//
// Structure
//
//   - Insert descends comparing keys and records every node it touches. A
//     duplicate key changes nothing: no snapshot is taken and the Result
//     carries "Key K already in tree".
//   - Delete removes leaves, splices single children, and replaces a node with
//     two children by its in-order successor. Deleting an absent key is a
//     no-op reported as "Key K not in tree".
//   - Rebalancing after insert compares the inserted key with the child key to
//     pick the inner/outer case; after delete it uses the child's balance factor.
//
// History
//
//	Every committed mutation pushes a deep copy of the previous tree. Undo and
//	Redo swap whole trees and then re-derive a highlight by searching for the
//	value the undone operation touched.
//
// Playback
//
//	Insert and Search start a playback over their visited path. Insert also
//	records indices into Pseudocode so a front end can highlight the line
//	being executed; Playback().Line() maps the reveal index onto them.
//
// Complexity: Insert/Delete/Search O(log n); every commit O(n) for the snapshot.
package avl
