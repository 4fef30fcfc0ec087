package significance_test

import (
	"fmt"

	"github.com/calganaygun/networks-playground/motif"
	"github.com/calganaygun/networks-playground/significance"
)

func ExampleEvaluate() {
	observed := motif.CountVector{12, 4}
	ensemble := []motif.CountVector{{10, 1}, {12, 1}, {14, 1}, {12, 1}}

	res, _ := significance.Evaluate(observed, ensemble)
	for _, s := range res.Slots[:2] {
		fmt.Println(s)
	}
	// Output:
	// 0:open-triad real=12 mean=12.000 std=1.414 z=0.000
	// 1:triangle real=4 mean=1.000 std=0.000 z=n/a
}
