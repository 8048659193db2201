// SPDX-License-Identifier: MIT

// Package eigen computes the few smallest-magnitude eigenpairs of a large
// sparse symmetric matrix without ever seeing the matrix itself.
//
// The solver is a thick-restart Lanczos iteration with full
// re-orthogonalisation, driven by reverse communication: it asks the caller
// for products y = M·x and is handed y back. The projected problem on the
// Krylov basis is solved densely with gonum's EigenSym.
//
// One Krylov sequence holds a single vector per distinct eigenvalue, so a
// repeated eigenvalue (the zero of a disconnected Laplacian) is invisible to
// it. Converged pairs are therefore locked and a fresh run starts orthogonal
// to them; the solve ends once a run finds nothing smaller than the largest
// locked value, or its basis spanned the whole complement.
//
// Driving the state machine by hand:
//
//	s, err := eigen.NewSolver(n, p)
//	y := make([]float64, n)
//	for {
//		req, err := s.Next()
//		if err != nil { ... }
//		if req.Op == eigen.OpDone {
//			break
//		}
//		M.MulVec(y, req.X) // any representation of M
//		if err := s.Feed(y); err != nil { ... }
//	}
//	res, err := s.Result()
//
// or, for anything implementing Operator:
//
//	res, err := eigen.Solve(L, p)
//
// Parameters (defaults):
//
//	ncv     = min(4p, n)  Krylov subspace dimension
//	tol     = 1e-10       residual tolerance relative to the spectral scale
//	maxIter = 10000       outer (restart) iterations
//
// Errors:
//   - ErrInvalidArgument  n <= 0, p <= 0, p > n, or a vector of the wrong length.
//   - ErrOptionViolation  an invalid Option value.
//   - ErrProtocol         Next/Feed called out of order.
//   - ErrNotConverged     iteration cap reached; no partial result.
//   - ErrComputation      non-finite product or dense factorisation failure.
//
// Determinism: the start vector and breakdown restarts are drawn from an
// explicit seeded source (WithSeed / WithRand); the same seed gives the same
// eigenvectors, including their sign.
package eigen
