// SPDX-License-Identifier: MIT

package partition

// Fiedler bisects by sign: label 1 for negative components, 2 otherwise.
func Fiedler(vector []float64) []int {
	labels := make([]int, len(vector))
	for i, x := range vector {
		if x < 0 {
			labels[i] = 1
		} else {
			labels[i] = 2
		}
	}

	return labels
}
