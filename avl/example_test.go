package avl_test

import (
	"fmt"

	"github.com/katalvlaran/dsviz/avl"
	"github.com/katalvlaran/dsviz/command"
)

// ExampleTree_Undo inserts keys that force a rotation, then steps back.
func ExampleTree_Undo() {
	tr := avl.New(command.WithInstant(true))
	for _, k := range []int{10, 20, 30} {
		tr.Insert(k)
	}
	fmt.Println("root after rotation:", tr.Root().Key)

	step, _ := tr.Undo()
	fmt.Println("keys after undo:", tr.Keys(), "highlight:", step.Value)
	// Output:
	// root after rotation: 20
	// keys after undo: [10 20] highlight: 20
}
