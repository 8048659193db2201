// SPDX-License-Identifier: MIT

package builder

import "fmt"

// Method tags and minima.
const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"
	methodStar     = "Star"
	methodWheel    = "Wheel"

	minPathNodes     = 1
	minCycleNodes    = 3
	minCompleteNodes = 1
	minStarNodes     = 2
	minWheelNodes    = 4
)

// tooFew reports a constructor called with n below its floor.
func tooFew(method string, n, floor int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, floor, ErrTooFewVertices)
}

// Path appends the path P_n: i-(i+1) for consecutive new vertices.
func Path(n int) Constructor {
	return func(m *model, _ builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, n, minPathNodes)
		}
		base := m.grow(n)
		for i := 0; i < n-1; i++ {
			m.block(base+i, base+i+1)
		}
		m.block(base + n - 1)

		return nil
	}
}

// Cycle appends the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(m *model, _ builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, n, minCycleNodes)
		}
		base := m.grow(n)
		for i := 0; i < n; i++ {
			m.block(base+i, base+(i+1)%n)
		}

		return nil
	}
}

// Complete appends the clique K_n; every pair is listed once, from the lower id.
func Complete(n int) Constructor {
	return func(m *model, _ builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, n, minCompleteNodes)
		}
		base := m.grow(n)
		for i := 0; i < n; i++ {
			nbrs := make([]int, 0, n-i-1)
			for j := i + 1; j < n; j++ {
				nbrs = append(nbrs, base+j)
			}
			m.block(base+i, nbrs...)
		}

		return nil
	}
}

// Star appends a hub joined to n-1 leaves; the hub is the first new vertex.
func Star(n int) Constructor {
	return func(m *model, _ builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, n, minStarNodes)
		}
		base := m.grow(n)
		leaves := make([]int, n-1)
		for i := range leaves {
			leaves[i] = base + 1 + i
		}
		m.block(base, leaves...)

		return nil
	}
}

// Wheel appends a hub joined to every vertex of a rim cycle C_{n-1}.
func Wheel(n int) Constructor {
	return func(m *model, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, n, minWheelNodes)
		}
		if err := Star(n)(m, cfg); err != nil {
			return err
		}
		base := m.n - n
		rim := n - 1
		for i := 0; i < rim; i++ {
			m.block(base+1+i, base+1+(i+1)%rim)
		}

		return nil
	}
}
