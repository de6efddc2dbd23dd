// Package playback turns the node path of one structural operation into a
// timed, frame-driven reveal.
//
// State machine
//
//	Idle ──Start──▶ Revealing(index) ──index ≥ len(path)──▶ Idle
//
// Rules:
//   - Single flight: Start while Revealing discards the old playback.
//   - Each Tick adds the frame delta to a timer; once the timer reaches the
//     interval the index advances by one and the timer restarts.
//   - Instant mode consumes the whole path on the first Tick (bulk loads).
//   - A Search playback posts "Node X is found" / "Node X is not found" on
//     completion, comparing the last visited value with the target.
//
// An optional list of pseudocode line indices can ride along with the path.
// Line maps the current path index proportionally into that list, so a UI can
// highlight the line "currently executing". The indices are opaque tags.
//
// Nothing here blocks or spawns goroutines: the caller's frame loop owns time.
package playback
