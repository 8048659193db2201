// SPDX-License-Identifier: MIT

package partition_test

import (
	"fmt"

	"github.com/katalvlaran/specpart/csr"
	"github.com/katalvlaran/specpart/partition"
)

// ExamplePartition bisects two triangles joined by a bridge.
func ExamplePartition() {
	model := csr.AdjacencyModel{
		List:     []int{0, 1, 2, 1, 2, 2, 3, 3, 4, 5, 4, 5},
		Pointers: []int{0, 3, 5, 7, 10},
	}
	res, err := partition.Partition(model, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("sizes:", res.Sizes)
	fmt.Println("edges cut:", res.EdgesCut)
	fmt.Printf("margin: %.2f\n", res.Margin)
	// Output:
	// sizes: [3 3]
	// edges cut: 1
	// margin: 0.00
}
