// Copyright 2016 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package la implements the dense linear algebra routines used by the
// frame and plane-stress solvers: rectangular matrix operations, Gaussian
// elimination with partial pivoting and LU factorisation for repeated
// right-hand sides. Matrices are rows of rows ([][]float64).
package la

import "math"

// MatAlloc allocates a matrix with m rows and n columns, zeroed
func MatAlloc(m, n int) (mat [][]float64) {
	mat = make([][]float64, m)
	for i := 0; i < m; i++ {
		mat[i] = make([]float64, n)
	}
	return
}

// MatIdentity allocates the n by n identity matrix
func MatIdentity(n int) (mat [][]float64) {
	mat = MatAlloc(n, n)
	for i := 0; i < n; i++ {
		mat[i][i] = 1
	}
	return
}

// MatClone returns a deep copy of a
func MatClone(a [][]float64) (b [][]float64) {
	b = make([][]float64, len(a))
	for i := 0; i < len(a); i++ {
		b[i] = make([]float64, len(a[i]))
		copy(b[i], a[i])
	}
	return
}

// MatFill fills matrix a with constant s
func MatFill(a [][]float64, s float64) {
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(a[i]); j++ {
			a[i][j] = s
		}
	}
}

// MatAdd adds matrices: res := α*a + β*b
func MatAdd(res [][]float64, α float64, a [][]float64, β float64, b [][]float64) {
	for i := 0; i < len(res); i++ {
		for j := 0; j < len(res[i]); j++ {
			res[i][j] = α*a[i][j] + β*b[i][j]
		}
	}
}

// MatTrans sets res := trans(a), with res being n by m if a is m by n
func MatTrans(res, a [][]float64) {
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(a[i]); j++ {
			res[j][i] = a[i][j]
		}
	}
}

// MatMul multiplies matrices: res := α*a*b  (classical triple loop)
func MatMul(res [][]float64, α float64, a, b [][]float64) {
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b[0]); j++ {
			res[i][j] = 0
			for k := 0; k < len(b); k++ {
				res[i][j] += α * a[i][k] * b[k][j]
			}
		}
	}
}

// MatTrMul3 multiplies three matrices: res := α * trans(a) * b * c
func MatTrMul3(res [][]float64, α float64, a, b, c [][]float64) {
	aux := MatAlloc(len(b), len(c[0]))
	MatMul(aux, 1, b, c)
	for i := 0; i < len(res); i++ {
		for j := 0; j < len(res[i]); j++ {
			res[i][j] = 0
			for k := 0; k < len(a); k++ {
				res[i][j] += α * a[k][i] * aux[k][j]
			}
		}
	}
}

// MatVecMul multiplies matrix by vector: v := α*a*u
func MatVecMul(v []float64, α float64, a [][]float64, u []float64) {
	for i := 0; i < len(a); i++ {
		v[i] = 0
		for j := 0; j < len(u); j++ {
			v[i] += α * a[i][j] * u[j]
		}
	}
}

// MatVecMulAdd multiplies matrix by vector and adds to v: v += α*a*u
func MatVecMulAdd(v []float64, α float64, a [][]float64, u []float64) {
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(u); j++ {
			v[i] += α * a[i][j] * u[j]
		}
	}
}

// MatTrVecMul multiplies transposed matrix by vector: v := α*trans(a)*u
func MatTrVecMul(v []float64, α float64, a [][]float64, u []float64) {
	for i := 0; i < len(v); i++ {
		v[i] = 0
	}
	MatTrVecMulAdd(v, α, a, u)
}

// MatTrVecMulAdd multiplies transposed matrix by vector and adds to v: v += α*trans(a)*u
func MatTrVecMulAdd(v []float64, α float64, a [][]float64, u []float64) {
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(a[i]); j++ {
			v[j] += α * a[i][j] * u[i]
		}
	}
}

// VecFill fills vector v with constant s
func VecFill(v []float64, s float64) {
	for i := 0; i < len(v); i++ {
		v[i] = s
	}
}

// VecClone returns a copy of v
func VecClone(v []float64) (w []float64) {
	w = make([]float64, len(v))
	copy(w, v)
	return
}

// VecNorm returns the Euclidean norm of v
func VecNorm(v []float64) (nrm float64) {
	for i := 0; i < len(v); i++ {
		nrm += v[i] * v[i]
	}
	return math.Sqrt(nrm)
}

// VecDot returns the dot product of u and v
func VecDot(u, v []float64) (res float64) {
	for i := 0; i < len(u); i++ {
		res += u[i] * v[i]
	}
	return
}
