package model_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sensel/basis"
	"github.com/katalvlaran/sensel/model"
	"github.com/katalvlaran/sensel/pivotqr"
)

// ExampleSelector fits four identity snapshots, keeps three sensors with one
// forced into the restricted zone {0, 1}, and reads the selection back.
func ExampleSelector() {
	snapshots := mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})

	opts := pivotqr.DefaultOptions()
	opts.Constrained = []int{0, 1}
	opts.NSensors = 3
	opts.NConstrained = 1

	sel := model.New(&basis.Identity{}, &opts)
	if err := sel.Fit(snapshots); err != nil {
		fmt.Println("error:", err)

		return
	}

	selected, _ := sel.SelectedSensors()
	constrained, _ := sel.ConstrainedSensors()
	fmt.Println("selected:", selected)
	fmt.Println("in zone:", constrained)
	// Output:
	// selected: [0 2 3]
	// in zone: [0]
}
