// Command dsviz drives the data structure engines from a script: each line
// is one command (insert, delete, search, undo, load, run, show, ...),
// replayed against an AVL tree, a linked list, a hash table or a graph.
package main

import (
	"fmt"
	"os"
)

// Set by -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
