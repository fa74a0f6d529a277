// Copyright 2016 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// MinPivot is the smallest pivot magnitude accepted by the dense solvers.
// A column whose largest entry falls below this value after pivoting makes
// the system singular (mechanism, under-restrained or disconnected model).
const MinPivot = 1e-10

// GESolve solves the linear system A*x = b by Gaussian elimination with
// partial pivoting. A and b are not modified; the elimination runs on an
// internal copy of the augmented matrix.
func GESolve(A [][]float64, b []float64) (x []float64, err error) {

	// augmented matrix
	n := len(A)
	if n == 0 || len(b) != n {
		return nil, chk.Err("GESolve: inconsistent dimensions: n=%d, len(b)=%d", n, len(b))
	}
	aug := MatAlloc(n, n+1)
	for i := 0; i < n; i++ {
		copy(aug[i], A[i])
		aug[i][n] = b[i]
	}

	// forward elimination
	for k := 0; k < n; k++ {

		// partial pivoting: largest magnitude in column k
		p := k
		big := math.Abs(aug[k][k])
		for i := k + 1; i < n; i++ {
			if math.Abs(aug[i][k]) > big {
				big = math.Abs(aug[i][k])
				p = i
			}
		}
		if big < MinPivot {
			return nil, chk.Err("GESolve: singular system: pivot %g in column %d is too small", big, k)
		}
		if p != k {
			aug[k], aug[p] = aug[p], aug[k]
		}

		// eliminate below
		for i := k + 1; i < n; i++ {
			m := aug[i][k] / aug[k][k]
			if m == 0 {
				continue
			}
			for j := k; j <= n; j++ {
				aug[i][j] -= m * aug[k][j]
			}
		}
	}

	// back substitution
	x = make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		s := aug[i][n]
		for j := i + 1; j < n; j++ {
			s -= aug[i][j] * x[j]
		}
		x[i] = s / aug[i][i]
	}
	return
}

// LUFactor factorises A in-place into L and U with partial pivoting such
// that P*A = L*U. L has unit diagonal and is stored below the diagonal of
// A; U occupies the diagonal and above. The returned perm array records
// the row exchanges and must be handed to LUSolve.
func LUFactor(A [][]float64) (perm []int, err error) {
	n := len(A)
	perm = make([]int, n)
	for i := 0; i < n; i++ {
		perm[i] = i
	}
	for k := 0; k < n; k++ {

		// pivot
		p := k
		big := math.Abs(A[k][k])
		for i := k + 1; i < n; i++ {
			if math.Abs(A[i][k]) > big {
				big = math.Abs(A[i][k])
				p = i
			}
		}
		if big < MinPivot {
			return nil, chk.Err("LUFactor: singular system: pivot %g in column %d is too small", big, k)
		}
		if p != k {
			A[k], A[p] = A[p], A[k]
			perm[k], perm[p] = perm[p], perm[k]
		}

		// elimination with stored multipliers
		for i := k + 1; i < n; i++ {
			A[i][k] /= A[k][k]
			m := A[i][k]
			if m == 0 {
				continue
			}
			for j := k + 1; j < n; j++ {
				A[i][j] -= m * A[k][j]
			}
		}
	}
	return
}

// LUSolve solves A*x = b using the factors and permutation computed by
// LUFactor. It may be called many times with different right-hand sides.
func LUSolve(LU [][]float64, perm []int, b []float64) (x []float64) {
	n := len(LU)
	x = make([]float64, n)

	// forward substitution: L*y = P*b
	for i := 0; i < n; i++ {
		s := b[perm[i]]
		for j := 0; j < i; j++ {
			s -= LU[i][j] * x[j]
		}
		x[i] = s
	}

	// back substitution: U*x = y
	for i := n - 1; i >= 0; i-- {
		s := x[i]
		for j := i + 1; j < n; j++ {
			s -= LU[i][j] * x[j]
		}
		x[i] = s / LU[i][i]
	}
	return
}
