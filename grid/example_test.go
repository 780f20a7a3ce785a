package grid_test

import (
	"fmt"

	"github.com/katalvlaran/sensel/grid"
)

// ExampleGrid_Box builds the constraint region for a 4×4 sensor grid whose
// lower-right 2×2 corner is restricted, ready to feed
// pivotqr.Options.Constrained.
func ExampleGrid_Box() {
	g, err := grid.New(4, 4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	region, err := g.Box(2, 3, 2, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("region:", region)
	// Output:
	// region: [10 11 14 15]
}
