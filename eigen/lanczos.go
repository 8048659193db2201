// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/specpart/internal/rng"
)

// breakdownRatio marks an invariant subspace: a residual norm at or below
// breakdownRatio·‖M·v‖max is treated as exactly zero.
const breakdownRatio = 1e-12

// injectAttempts bounds the random draws tried when extending a basis after
// breakdown; failing them all means the basis already spans the complement of
// the locked vectors.
const injectAttempts = 3

// signFloor is the smallest magnitude considered when fixing eigenvector signs.
const signFloor = 1e-8

type state int

const (
	stateReady   state = iota // basis[j] awaits a product
	statePending              // Next handed out basis[j]; Feed expected
	stateDone
	stateFailed
)

// Solver is the reverse-communication Lanczos state machine. It is not safe
// for concurrent use; independent solvers share nothing.
//
// A single Krylov sequence sees one vector per distinct eigenvalue, so
// repeated eigenvalues are found by locking: the pairs of a converged run are
// locked and a new run starts in their orthogonal complement. The solve ends
// once a run finds nothing smaller than the largest locked value, or its
// basis covered the whole complement.
type Solver struct {
	n, nev, ncv int
	tol         float64
	maxIter     int
	rnd         *rand.Rand

	want, m int // pairs sought and basis size of the current run

	basis  [][]float64 // orthonormal Krylov basis, len j+1 while iterating
	h      []float64   // ncv×ncv row-major projected matrix Vᵀ·M·V
	resid  []float64   // residual of the last column
	w      []float64   // scratch
	coef   []float64   // scratch Gram–Schmidt coefficients
	j      int         // index of the vector awaiting its product
	opNorm float64     // largest ‖M·v‖ seen, scale for breakdown tests
	scale  float64     // largest |θ| seen, scale for comparing runs

	locked     [][]float64 // converged eigenvectors, ascending |value|
	lockedVals []float64
	runs       int

	iter    int
	matvecs int
	st      state
	res     *Result
	err     error
}

// NewSolver prepares a solver for the nev smallest-magnitude eigenpairs of
// an n×n symmetric operator.
//
// Errors (wrapped with "NewSolver"):
//   - ErrInvalidArgument  n <= 0, nev <= 0, nev > n, or ncv <= nev while ncv < n.
//   - ErrOptionViolation  from opts.
func NewSolver(n, nev int, opts ...Option) (*Solver, error) {
	if n <= 0 || nev <= 0 || nev > n {
		return nil, eigenErrorf(opNewSolver, fmt.Errorf("%w: n=%d p=%d", ErrInvalidArgument, n, nev))
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, eigenErrorf(opNewSolver, err)
	}

	ncv := o.NCV
	if ncv == 0 {
		ncv = ncvFactor * nev
	}
	if ncv > n {
		ncv = n
	}
	if ncv <= nev && ncv < n {
		return nil, eigenErrorf(opNewSolver, fmt.Errorf("%w: ncv=%d must exceed p=%d", ErrInvalidArgument, ncv, nev))
	}

	src := o.Rand
	if src == nil {
		src = rng.FromSeed(o.Seed)
	}

	s := &Solver{
		n:       n,
		nev:     nev,
		ncv:     ncv,
		tol:     o.Tolerance,
		maxIter: o.MaxIterations,
		rnd:     src,
		h:       make([]float64, ncv*ncv),
		resid:   make([]float64, n),
		w:       make([]float64, n),
		coef:    make([]float64, ncv),
	}
	if !s.startRun() {
		return nil, eigenErrorf(opNewSolver, fmt.Errorf("%w: no usable start vector", ErrComputation))
	}

	return s, nil
}

// Next returns the pending request. After OpDone it keeps returning OpDone;
// after a failure it keeps returning the failure.
func (s *Solver) Next() (Request, error) {
	switch s.st {
	case stateReady:
		s.st = statePending
		return Request{Op: OpMatVec, X: s.basis[s.j]}, nil
	case stateDone:
		return Request{Op: OpDone}, nil
	case stateFailed:
		return Request{}, s.err
	default:
		return Request{}, ErrProtocol
	}
}

// Feed hands back y = M·X for the last request. y is copied.
//
// Errors:
//   - ErrProtocol         no request is pending.
//   - ErrInvalidArgument  len(y) != n; the request stays pending.
//   - ErrComputation      y holds NaN/Inf; the solver fails.
//   - ErrNotConverged     the restart cap was reached; the solver fails.
func (s *Solver) Feed(y []float64) error {
	if s.st != statePending {
		return eigenErrorf(opFeed, ErrProtocol)
	}
	if len(y) != s.n {
		return eigenErrorf(opFeed, fmt.Errorf("%w: len(y)=%d want %d", ErrInvalidArgument, len(y), s.n))
	}
	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return s.fail(fmt.Errorf("%w: non-finite product", ErrComputation))
		}
	}
	s.matvecs++
	s.extend(y)

	return s.err
}

// Result returns the eigenpairs once Next has reported OpDone.
func (s *Solver) Result() (*Result, error) {
	switch s.st {
	case stateDone:
		return s.res, nil
	case stateFailed:
		return nil, s.err
	default:
		return nil, ErrProtocol
	}
}

// fail moves the solver into its terminal failed state.
func (s *Solver) fail(err error) error {
	s.st = stateFailed
	s.err = eigenErrorf(opFeed, err)

	return s.err
}

// free is the dimension of the orthogonal complement of the locked vectors.
func (s *Solver) free() int { return s.n - len(s.locked) }

// startRun resets the Krylov basis to one random unit vector orthogonal to
// the locked vectors. Returns false when no such vector exists.
func (s *Solver) startRun() bool {
	s.want = min(s.nev, s.free())
	s.m = min(s.ncv, s.free())
	for i := range s.h {
		s.h[i] = 0
	}
	first := make([]float64, s.n)
	s.basis = make([][]float64, 0, s.ncv)
	if !s.injectOrthogonal(first, 0) {
		return false
	}
	s.basis = append(s.basis, first)
	s.j = 0
	s.st = stateReady

	return true
}

// extend processes the product y = M·basis[j]: it fills column j of the
// projected matrix, orthogonalises the residual and either prepares
// basis[j+1] or, with a full basis, tests convergence.
func (s *Solver) extend(y []float64) {
	if nrm := floats.Norm(y, 2); nrm > s.opNorm {
		s.opNorm = nrm
	}
	copy(s.w, y)
	j := s.j
	s.orthogonalize(s.w, j+1, s.coef[:j+1])
	for i := 0; i <= j; i++ {
		s.h[i*s.ncv+j] = s.coef[i]
		s.h[j*s.ncv+i] = s.coef[i]
	}

	beta := floats.Norm(s.w, 2)
	broken := beta <= breakdownRatio*s.opNorm

	if j+1 < s.m {
		next := make([]float64, s.n)
		if broken {
			if !s.injectOrthogonal(next, j+1) {
				// Basis already spans the whole complement.
				s.check(j+1, 0)
				return
			}
		} else {
			floats.ScaleTo(next, 1/beta, s.w)
		}
		s.basis = append(s.basis, next)
		s.j++
		s.st = stateReady
		return
	}

	copy(s.resid, s.w)
	if broken || s.m == s.free() {
		beta = 0
	}
	s.check(s.m, beta)
}

// orthogonalize removes from w its components along the locked vectors and
// basis[:k] with two classical Gram–Schmidt passes, accumulating the basis
// coefficients into coef.
func (s *Solver) orthogonalize(w []float64, k int, coef []float64) {
	for i := range coef {
		coef[i] = 0
	}
	var c float64
	for pass := 0; pass < 2; pass++ {
		for _, u := range s.locked {
			floats.AddScaled(w, -floats.Dot(u, w), u)
		}
		for i := 0; i < k; i++ {
			c = floats.Dot(s.basis[i], w)
			coef[i] += c
			floats.AddScaled(w, -c, s.basis[i])
		}
	}
}

// injectOrthogonal draws a random unit vector orthogonal to the locked
// vectors and basis[:k] into dst. Returns false when no such vector could be
// found.
func (s *Solver) injectOrthogonal(dst []float64, k int) bool {
	if k >= s.free() {
		return false
	}
	scratch := make([]float64, k)
	for attempt := 0; attempt < injectAttempts; attempt++ {
		if !randomUnit(dst, s.rnd) {
			continue
		}
		s.orthogonalize(dst, k, scratch)
		if nrm := floats.Norm(dst, 2); nrm > math.Sqrt(breakdownRatio) {
			floats.Scale(1/nrm, dst)
			return true
		}
	}

	return false
}

// check solves the m×m projected problem, tests the wanted Ritz pairs
// against the residual norm beta and either settles the run or
// thick-restarts.
func (s *Solver) check(m int, beta float64) {
	if m < s.want {
		s.fail(fmt.Errorf("%w: basis stalled at %d < p=%d vectors", ErrComputation, m, s.want))
		return
	}
	data := make([]float64, m*m)
	for i := 0; i < m; i++ {
		copy(data[i*m:(i+1)*m], s.h[i*s.ncv:i*s.ncv+m])
	}
	var es mat.EigenSym
	if !es.Factorize(mat.NewSymDense(m, data), true) {
		s.fail(fmt.Errorf("%w: projected eigenproblem did not factorize", ErrComputation))
		return
	}
	theta := es.Values(nil)
	var y mat.Dense
	es.VectorsTo(&y)

	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return math.Abs(theta[order[a]]) < math.Abs(theta[order[b]])
	})
	scale := math.Abs(theta[order[m-1]])
	if scale > s.scale {
		s.scale = scale
	}

	converged := true
	for i := 0; i < s.want; i++ {
		if beta*math.Abs(y.At(m-1, order[i])) > s.tol*scale {
			converged = false
			break
		}
	}
	if converged {
		s.settle(m, beta, &y, theta, order)
		return
	}

	s.iter++
	if s.iter >= s.maxIter {
		s.fail(fmt.Errorf("%w after %d restarts", ErrNotConverged, s.iter))
		return
	}
	s.restart(m, beta, &y, theta, order)
}

// ritzVector writes basis[:m]·y[:,col] into dst.
func (s *Solver) ritzVector(dst []float64, m int, y *mat.Dense, col int) {
	for i := range dst {
		dst[i] = 0
	}
	for l := 0; l < m; l++ {
		floats.AddScaled(dst, y.At(l, col), s.basis[l])
	}
}

// restart keeps the k most wanted Ritz vectors, appends the normalised
// residual and resumes the iteration at column k.
func (s *Solver) restart(m int, beta float64, y *mat.Dense, theta []float64, order []int) {
	k := s.want + (m-s.want)/2
	if k > m-1 {
		k = m - 1
	}

	kept := make([][]float64, k+1, s.ncv)
	for i := 0; i < k; i++ {
		kept[i] = make([]float64, s.n)
		s.ritzVector(kept[i], m, y, order[i])
	}
	for i := range s.h {
		s.h[i] = 0
	}
	for i := 0; i < k; i++ {
		s.h[i*s.ncv+i] = theta[order[i]]
	}

	s.basis = kept
	next := make([]float64, s.n)
	floats.ScaleTo(next, 1/beta, s.resid)
	s.orthogonalize(next, k, s.coef[:k])
	if nrm := floats.Norm(next, 2); nrm > math.Sqrt(breakdownRatio) {
		floats.Scale(1/nrm, next)
	} else if !s.injectOrthogonal(next, k) {
		s.fail(fmt.Errorf("%w: restart lost orthogonality", ErrComputation))
		return
	}
	s.basis[k] = next
	s.j = k
	s.st = stateReady
}

// settle extracts the wanted Ritz pairs of a converged run. A run that finds
// nothing smaller than the largest locked value ends the solve; otherwise its
// pairs are merged into the locked set and, unless the run covered the whole
// complement, another run starts orthogonal to the merged set.
func (s *Solver) settle(m int, beta float64, y *mat.Dense, theta []float64, order []int) {
	vals := make([]float64, s.want)
	vecs := make([][]float64, s.want)
	for i := range vecs {
		v := make([]float64, s.n)
		s.ritzVector(v, m, y, order[i])
		nrm := floats.Norm(v, 2)
		if nrm == 0 {
			s.fail(fmt.Errorf("%w: zero Ritz vector", ErrComputation))
			return
		}
		floats.Scale(1/nrm, v)
		fixSign(v)
		vals[i], vecs[i] = theta[order[i]], v
	}

	exhaustive := beta == 0 && m == s.free()
	if k := len(s.lockedVals); k > 0 && math.Abs(vals[0]) >= math.Abs(s.lockedVals[k-1])-s.tol*s.scale {
		s.finish()
		return
	}
	s.lock(vals, vecs)
	if exhaustive || s.free() == 0 {
		s.finish()
		return
	}

	s.runs++
	if s.runs > s.n {
		s.fail(fmt.Errorf("%w: locking did not settle after %d runs", ErrNotConverged, s.runs))
		return
	}
	if !s.startRun() {
		s.finish()
	}
}

// lock merges vals/vecs into the locked set, keeping the nev pairs of
// smallest magnitude. Locked pairs win ties against new ones.
func (s *Solver) lock(vals []float64, vecs [][]float64) {
	allVals := make([]float64, 0, len(s.lockedVals)+len(vals))
	allVals = append(append(allVals, s.lockedVals...), vals...)
	allVecs := make([][]float64, 0, len(allVals))
	allVecs = append(append(allVecs, s.locked...), vecs...)

	order := make([]int, len(allVals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return math.Abs(allVals[order[a]]) < math.Abs(allVals[order[b]])
	})
	keep := min(s.nev, len(order))
	s.lockedVals = make([]float64, keep)
	s.locked = make([][]float64, keep)
	for i := 0; i < keep; i++ {
		s.lockedVals[i] = allVals[order[i]]
		s.locked[i] = allVecs[order[i]]
	}
}

// finish publishes the locked pairs as the result.
func (s *Solver) finish() {
	s.res = &Result{
		Values:     s.lockedVals,
		Vectors:    s.locked,
		Iterations: s.iter,
		MatVecs:    s.matvecs,
	}
	s.st = stateDone
}

// fixSign flips v so that its first component of magnitude >= signFloor is
// positive, making the arbitrary eigenvector sign reproducible.
func fixSign(v []float64) {
	for _, x := range v {
		if math.Abs(x) >= signFloor {
			if x < 0 {
				floats.Scale(-1, v)
			}
			return
		}
	}
}
