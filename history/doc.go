// Package history provides the snapshot-based undo/redo stacks shared by the
// dsviz engines.
//
// What & Why
//
//   - Every committed mutation pushes a deep copy of the structure as it was
//     before the mutation, tagged with the operation that followed it
//     (insert or delete, and the value involved).
//   - Engines mutate their nodes in place, so snapshots can never alias the
//     live structure: History clones on the way in, and the caller installs
//     the returned snapshot wholesale on Undo/Redo.
//   - The history is linear. A new Commit discards the redo branch.
//
// The package is generic over the snapshot type S. An engine supplies a clone
// function for its root/head pointer (or for a whole state struct) and gets the
// same semantics as every other engine.
//
// Complexity: Commit, Undo and Redo cost one clone, O(n) in the structure size.
package history
