// SPDX-License-Identifier: MIT

package eigen

// Operator is a square linear operator known only through its products.
// MulVec writes M·x into dst; len(dst) == len(x) == Dim().
type Operator interface {
	Dim() int
	MulVec(dst, x []float64) error
}

// Op tells the caller what the solver needs next.
type Op int

const (
	// OpMatVec asks for y = M·X to be passed to Feed.
	OpMatVec Op = iota

	// OpDone signals that Result is ready.
	OpDone
)

// String implements fmt.Stringer.
func (o Op) String() string {
	switch o {
	case OpMatVec:
		return "matvec"
	case OpDone:
		return "done"
	default:
		return "unknown"
	}
}

// Request is one step of the reverse-communication loop.
// X aliases solver storage: read it, do not modify or retain it.
type Request struct {
	Op Op
	X  []float64
}

// Result holds the converged eigenpairs.
//
// Values are ordered by ascending magnitude; Vectors[i] pairs with Values[i]
// and has unit Euclidean norm. Iterations counts restarts, MatVecs the
// operator products requested.
type Result struct {
	Values     []float64
	Vectors    [][]float64
	Iterations int
	MatVecs    int
}
