// Package command holds the result types and interfaces shared by every
// visualizer engine: the value returned by a mutating command, the summary
// of a file load, and the Engine contracts a front end drives.
//
// Engines report user-facing outcomes (duplicates, absent keys, unreadable
// files) as messages in these results. Nothing here is an error value; the
// frame loop never sees a failure.
package command
