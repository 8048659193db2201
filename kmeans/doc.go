// SPDX-License-Identifier: MIT

// Package kmeans clusters points in R^d with k-means++ seeding followed by
// Lloyd iterations.
//
// Seeding:
//  1. The first centroid is a uniformly random point.
//  2. Each next centroid is drawn with probability proportional to the
//     squared distance of a point to its nearest chosen centroid
//     (cumulative-sum threshold sampling).
//
// Lloyd rounds (at most MaxRounds, default 100):
//   - assign every point to its nearest centroid; ties go to the lowest
//     centroid index (strict < comparison);
//   - move every centroid to the mean of its points; a centroid left with no
//     points is reseeded to a uniformly random data point;
//   - stop once no centroid coordinate moved by more than Epsilon.
//
// Running out of rounds is not an error: the last assignment is returned
// with Converged == false.
//
// Labels are 1-based: Result.Labels[i] ∈ [1,k].
//
// All randomness comes from an explicit source (WithRand / WithSeed); there
// is no package-level state, so concurrent calls with separate sources are
// independent and reproducible.
package kmeans
