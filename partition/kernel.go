// SPDX-License-Identifier: MIT

package partition

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/specpart/eigen"
)

// alignKernel returns res with its first min(count, p) vectors, which span
// (part of) the kernel of a Laplacian with count components, replaced by a
// basis built from the components: the constant vector, then the indicator
// of component c orthogonalised against the earlier vectors. Any orthonormal
// kernel basis is a valid answer; this one never splits a component.
//
// comp[i] in [0,count) is the component of vertex i. res is not modified.
//
// Complexity: O(p²·n).
func alignKernel(res *eigen.Result, comp []int, count, p int) *eigen.Result {
	z := min(count, p, len(res.Vectors))
	n := len(comp)
	out := *res
	out.Vectors = append([][]float64(nil), res.Vectors...)
	if z == 0 || n == 0 {
		return &out
	}

	basis := make([][]float64, 1, z)
	basis[0] = make([]float64, n)
	for i := range basis[0] {
		basis[0][i] = 1 / math.Sqrt(float64(n))
	}
	for c := 0; len(basis) < z; c++ {
		v := make([]float64, n)
		for i, ci := range comp {
			if ci == c {
				v[i] = 1
			}
		}
		for _, b := range basis {
			floats.AddScaled(v, -floats.Dot(b, v), b)
		}
		floats.Scale(1/floats.Norm(v, 2), v)
		basis = append(basis, v)
	}
	copy(out.Vectors, basis)

	return &out
}
