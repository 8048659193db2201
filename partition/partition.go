// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/specpart/csr"
	"github.com/katalvlaran/specpart/eigen"
	"github.com/katalvlaran/specpart/internal/rng"
	"github.com/katalvlaran/specpart/kmeans"
)

// Result is a finished partition with its quality figures.
type Result struct {
	// Labels[i] ∈ [1,p] is the part of vertex i; len(Labels) == n.
	Labels []int

	// Sizes[c-1] is the number of vertices in part c.
	Sizes []int

	// EdgesCut counts undirected edges between different parts.
	EdgesCut int

	// Margin is ((max-min)/min)·100 over Sizes.
	Margin float64

	// WithinMargin is false only when WithMaxMargin was given and exceeded.
	WithinMargin bool

	// Eigenvalues are the p smallest Laplacian eigenvalues, ascending.
	Eigenvalues []float64
}

// Partition runs the full spectral pipeline on model and splits it into p
// parts.
//
// Implementation:
//   - Stage 1: build L = D - A and A from model; reject p < 2 or p > n.
//   - Stage 2: p smallest eigenpairs of L (eigen.SolveContext).
//   - Stage 3: Fiedler bisection (p == 2) or spectral k-means (p > 2).
//   - Stage 4: edges cut and margin.
//
// Errors (wrapped with "Partition"): ErrInvalidArgument, ErrOptionViolation,
// csr model errors, eigen.ErrNotConverged / eigen.ErrComputation, kmeans
// errors and context errors. No partial result is returned.
func Partition(model csr.AdjacencyModel, p int, opts ...Option) (*Result, error) {
	started := time.Now()
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, partitionErrorf(opPartition, err)
	}
	if p < 2 {
		return nil, partitionErrorf(opPartition, fmt.Errorf("%w: p=%d, need at least 2", ErrInvalidArgument, p))
	}

	L, err := csr.BuildLaplacian(model)
	if err != nil {
		return nil, partitionErrorf(opPartition, partitionErrorf(opLaplacian, err))
	}
	A, err := csr.BuildAdjacency(model)
	if err != nil {
		return nil, partitionErrorf(opPartition, partitionErrorf(opLaplacian, err))
	}
	n := L.Size()
	if p > n {
		return nil, partitionErrorf(opPartition, fmt.Errorf("%w: p=%d exceeds %d vertices", ErrInvalidArgument, p, n))
	}

	log := o.Logger.With(zap.Int("vertices", n), zap.Int("parts", p))
	comp, count := csr.Components(L)
	if count > 1 {
		log.Warn("graph is disconnected; low eigenvectors are not unique", zap.Int("components", count))
	}

	eopts := append([]eigen.Option{eigen.WithSeed(o.Seed)}, o.EigenOptions...)
	er, err := eigen.SolveContext(o.Ctx, L, p, eopts...)
	if err != nil {
		return nil, partitionErrorf(opPartition, partitionErrorf(opEigen, err))
	}
	log.Debug("eigenpairs converged",
		zap.Float64s("eigenvalues", er.Values),
		zap.Int("restarts", er.Iterations),
		zap.Int("matvecs", er.MatVecs))
	if count > 1 {
		er = alignKernel(er, comp, count, p)
	}

	labels, err := dispatch(er, p, A, &o, log)
	if err != nil {
		return nil, partitionErrorf(opPartition, err)
	}

	res := &Result{
		Labels:      labels,
		Sizes:       Sizes(labels, p),
		EdgesCut:    EdgesCut(A, labels),
		Margin:      Margin(labels, p),
		Eigenvalues: er.Values,
	}
	res.WithinMargin = o.MaxMargin < 0 || res.Margin <= o.MaxMargin
	if !res.WithinMargin {
		log.Warn("margin exceeded",
			zap.Float64("margin", res.Margin),
			zap.Float64("maxMargin", o.MaxMargin))
	}
	log.Info("partition complete",
		zap.Int("edgesCut", res.EdgesCut),
		zap.Float64("margin", res.Margin),
		zap.Ints("sizes", res.Sizes),
		zap.Duration("elapsed", time.Since(started)))

	return res, nil
}

// FromEigen derives labels from eigenpairs computed for exactly p vectors.
// With restarts, k-means runs are ranked by margin only, since no graph is
// available here.
//
// Errors (wrapped with "FromEigen"): ErrInvalidArgument for a nil result,
// p < 2, fewer than p vectors or ragged vectors; k-means and context errors.
func FromEigen(res *eigen.Result, p int, opts ...Option) ([]int, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, partitionErrorf(opFromEigen, err)
	}
	labels, err := dispatch(res, p, nil, &o, o.Logger)
	if err != nil {
		return nil, partitionErrorf(opFromEigen, err)
	}

	return labels, nil
}

// dispatch validates res and picks Fiedler or spectral k-means.
// adj, when non-nil, ranks k-means restarts by edges cut.
func dispatch(res *eigen.Result, p int, adj *csr.Matrix, o *Options, log *zap.Logger) ([]int, error) {
	if res == nil || p < 2 || len(res.Vectors) < p || len(res.Vectors[0]) == 0 {
		return nil, fmt.Errorf("%w: need %d non-empty eigenvectors", ErrInvalidArgument, p)
	}
	n := len(res.Vectors[0])
	for _, v := range res.Vectors[:p] {
		if len(v) != n {
			return nil, fmt.Errorf("%w: ragged eigenvectors", ErrInvalidArgument)
		}
	}
	if p == 2 {
		return Fiedler(res.Vectors[1]), nil
	}

	points := embed(res.Vectors[:p], o.SkipTrivial)
	base := rng.FromSeed(o.Seed)
	var (
		best      []int
		bestScore score
	)
	for r := 0; r < o.Restarts; r++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, partitionErrorf(opKMeans, err)
		}
		kopts := append([]kmeans.Option{kmeans.WithRand(rng.Derive(base, uint64(r)))}, o.KMeansOptions...)
		km, err := kmeans.Cluster(points, p, kopts...)
		if err != nil {
			return nil, partitionErrorf(opKMeans, err)
		}
		sc := evaluate(km.Labels, p, adj, o.MaxMargin)
		log.Debug("k-means run",
			zap.Int("run", r),
			zap.Int("rounds", km.Rounds),
			zap.Bool("converged", km.Converged),
			zap.Int("edgesCut", sc.cut),
			zap.Float64("margin", sc.margin))
		if best == nil || sc.better(bestScore) {
			best, bestScore = km.Labels, sc
		}
	}

	return best, nil
}

// embed turns eigenvectors into one point per vertex: point i is
// (v0[i], …, v_{p-1}[i]), or (v1[i], …) when skipTrivial is set.
func embed(vectors [][]float64, skipTrivial bool) [][]float64 {
	if skipTrivial {
		vectors = vectors[1:]
	}
	n := len(vectors[0])
	points := make([][]float64, n)
	for i := range points {
		points[i] = make([]float64, len(vectors))
		for d, v := range vectors {
			points[i][d] = v[i]
		}
	}

	return points
}

// score ranks candidate partitions: within margin first, then fewer cut
// edges, then smaller margin.
type score struct {
	within bool
	cut    int
	margin float64
}

// evaluate scores labels; the cut is counted only when adj is known.
func evaluate(labels []int, p int, adj *csr.Matrix, maxMargin float64) score {
	sc := score{margin: Margin(labels, p)}
	sc.within = maxMargin < 0 || sc.margin <= maxMargin
	if adj != nil {
		sc.cut = EdgesCut(adj, labels)
	}

	return sc
}

// better reports whether s ranks strictly ahead of o.
func (s score) better(o score) bool {
	if s.within != o.within {
		return s.within
	}
	if s.cut != o.cut {
		return s.cut < o.cut
	}

	return s.margin < o.margin
}
