// SPDX-License-Identifier: MIT

package rigidity

import (
	"math"

	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

// defaultTolerance mirrors the usual rank-revealing QR threshold.
func defaultTolerance(rows, cols int) float64 {
	return eps * float64(min(rows, cols))
}

// eps is the float64 machine epsilon.
var eps = math.Nextafter(1, 2) - 1

// pivotedQRRank factors a copy of a as A·P = Q·R with column pivoting
// (LAPACK Dgeqp3). |R_kk| is then non-increasing, so the rank is the number
// of leading diagonal entries above tol·|R_00|.
//
// Complexity: O(m·n·min(m,n)) time, O(m·n) space.
func pivotedQRRank(a *mat.Dense, tol float64) int {
	rows, cols := a.Dims()
	raw := mat.DenseCopyOf(a).RawMatrix()
	jpvt := make([]int, cols)
	for j := range jpvt {
		jpvt[j] = -1
	}
	tau := make([]float64, min(rows, cols))

	query := make([]float64, 1)
	lapack64.Geqp3(raw, jpvt, tau, query, -1)
	work := make([]float64, max(int(query[0]), 3*cols+1))
	lapack64.Geqp3(raw, jpvt, tau, work, len(work))

	r00 := math.Abs(raw.Data[0])
	if r00 == 0 {
		return 0
	}
	rank := 0
	for k := range tau {
		if math.Abs(raw.Data[k*raw.Stride+k]) <= tol*r00 {
			break
		}
		rank++
	}
	return rank
}

// svdRank counts singular values above tol times the largest. ok is false
// when the factorization did not converge.
func svdRank(a *mat.Dense, tol float64) (rank int, ok bool) {
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDNone) {
		return 0, false
	}
	return svd.Rank(tol), true
}
