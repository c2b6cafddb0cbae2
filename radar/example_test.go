// SPDX-License-Identifier: MIT

package radar_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/radar/matrix"
	"github.com/katalvlaran/radar/radar"
)

// ExampleDetect ranks the nodes of a 4-cycle whose attribute rows are
// [4,1], [5,1], [3,1], [5,1].
func ExampleDetect() {
	X, _ := matrix.NewDenseFromRows([][]float64{{4, 1}, {5, 1}, {3, 1}, {5, 1}})
	A, _ := matrix.NewDenseFromRows([][]float64{
		{0, 1, 0, 1},
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{1, 0, 1, 0},
	})

	rep, err := radar.Detect(context.Background(), X, A, radar.DefaultOptions(), 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("iterations=%d converged=%v\n", rep.Result.Iterations, rep.Result.Converged)
	fmt.Printf("top node %d score %.4f\n", rep.Ranking[0].Node, rep.Ranking[0].Score)
	// Output:
	// iterations=12 converged=true
	// top node 0 score 18.1576
}

// ExampleRank shows the stable tie order.
func ExampleRank() {
	for _, ns := range radar.Rank([]float64{0.2, 0.9, 0.2, 0.5}, 3) {
		fmt.Printf("node %d: %.1f\n", ns.Node, ns.Score)
	}
	// Output:
	// node 1: 0.9
	// node 3: 0.5
	// node 0: 0.2
}
