package bfs_test

import (
	"context"
	"fmt"

	"github.com/calganaygun/networks-playground/bfs"
	"github.com/calganaygun/networks-playground/builder"
)

// ExampleBFS demonstrates BFS layering on a 3×3 grid.
func ExampleBFS() {
	g, err := builder.BuildGraph(nil, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(g, "0,0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0,0 0,1 1,0 0,2 1,1 2,0 1,2 2,1 2,2]
}

// ExampleComponents lists the components of two disjoint paths.
func ExampleComponents() {
	g, _ := builder.BuildGraph([]builder.BuilderOption{builder.WithSymbNumb("p")}, builder.Path(3))
	_ = builder.Apply(g, []builder.BuilderOption{builder.WithSymbNumb("q")}, builder.Path(2))

	comps, _ := bfs.Components(context.Background(), g)
	fmt.Println(len(comps), comps)
	// Output:
	// 2 [[p0 p1 p2] [q0 q1]]
}
