// SPDX-License-Identifier: MIT

package csr_test

import (
	"fmt"

	"github.com/katalvlaran/specpart/csr"
)

// ExampleBuildLaplacian builds L = D - A of a path 0-1-2.
func ExampleBuildLaplacian() {
	model := csr.AdjacencyModel{
		List:     []int{0, 1, 1, 2},
		Pointers: []int{0, 2},
	}
	L, err := csr.BuildLaplacian(model)
	if err != nil {
		fmt.Println(err)
		return
	}
	for i := 0; i < L.Size(); i++ {
		cols, vals := L.Row(i)
		fmt.Println(i, cols, vals)
	}
	// Output:
	// 0 [0 1] [1 -1]
	// 1 [1 0 2] [2 -1 -1]
	// 2 [2 1] [1 -1]
}
