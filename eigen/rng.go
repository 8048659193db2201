// SPDX-License-Identifier: MIT

package eigen

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// randomUnit fills dst with uniform (-1,1) entries and normalises it.
// Returns false if the draw has zero norm.
func randomUnit(dst []float64, rng *rand.Rand) bool {
	for i := range dst {
		dst[i] = 2*rng.Float64() - 1
	}
	nrm := floats.Norm(dst, 2)
	if nrm == 0 {
		return false
	}
	floats.Scale(1/nrm, dst)

	return true
}
