package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/dsviz/bfs"
)

// ExampleBFS walks a small tree-shaped adjacency level by level.
func ExampleBFS() {
	//   0
	//  / \
	// 1   2
	//     |
	//     3
	g := undirected(4, [2]int{0, 1}, [2]int{0, 2}, [2]int{2, 3})
	res, _ := bfs.BFS(g, 0)
	fmt.Println("order:", res.Order)
	fmt.Println("depth of 3:", res.Depth[3])
	// Output:
	// order: [0 1 2 3]
	// depth of 3: 2
}

// ExampleComponents counts the trees of a forest.
func ExampleComponents() {
	g := undirected(5, [2]int{0, 1}, [2]int{3, 4})
	fmt.Println(len(bfs.Components(g)))
	// Output: 3
}
