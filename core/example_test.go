package core_test

import (
	"fmt"

	"github.com/calganaygun/networks-playground/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()

	// Edges auto-add their endpoints.
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "A")

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B-A exists?", g.HasEdge("B", "A"))
	fmt.Println("Duplicate:", g.AddEdge("A", "C"))
	fmt.Println("Loop:", g.AddEdge("A", "A"))

	// Output:
	// Vertices: [A B C]
	// Edge B-A exists? true
	// Duplicate: core: multi-edges not allowed
	// Loop: core: self-loop not allowed
}

// ExampleGraph_Index shows the dense snapshot used by the motif census.
func ExampleGraph_Index() {
	g := core.NewGraph()
	_ = g.AddEdge("b", "a")
	_ = g.AddEdge("b", "c")
	_ = g.AddVertex("z")

	idx := g.Index()
	for i := int32(0); i < int32(idx.Len()); i++ {
		fmt.Println(idx.ID(i), idx.Neighbors(i))
	}

	// Output:
	// a [1]
	// b [0 2]
	// c [1]
	// z []
}
