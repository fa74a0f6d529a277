// Copyright 2016 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pst implements a plane-stress constant-strain-triangle kernel
// for local 2D analyses such as end-plate stress contouring. It shares
// the dense linear algebra substrate and is not coupled to the 3D frame
// assembly.
package pst

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goframe/la"
)

// MinArea is the smallest admissible triangle area [m²]
const MinArea = 1e-12

// Bmatrix computes the strain-displacement matrix (3x6) and the area of
// a triangle with vertex coordinates x, y (CCW order). DOF order is
// (u1, v1, u2, v2, u3, v3).
func Bmatrix(x, y []float64) (B [][]float64, A float64, err error) {

	A = 0.5 * (x[0]*(y[1]-y[2]) + x[1]*(y[2]-y[0]) + x[2]*(y[0]-y[1]))
	A = math.Abs(A)
	if A < MinArea {
		return nil, 0, chk.Err("degenerate triangle: area %g is below %g", A, MinArea)
	}

	b := []float64{y[1] - y[2], y[2] - y[0], y[0] - y[1]}
	c := []float64{x[2] - x[1], x[0] - x[2], x[1] - x[0]}

	B = la.MatAlloc(3, 6)
	for i := 0; i < 3; i++ {
		B[0][2*i] = b[i] / (2.0 * A)
		B[1][2*i+1] = c[i] / (2.0 * A)
		B[2][2*i] = c[i] / (2.0 * A)
		B[2][2*i+1] = b[i] / (2.0 * A)
	}
	return
}

// Dmatrix computes the plane-stress elasticity matrix (3x3) from the
// Young modulus [Pa] and the Poisson coefficient
func Dmatrix(E, ν float64) (D [][]float64) {
	m := E / (1.0 - ν*ν)
	D = la.MatAlloc(3, 3)
	D[0][0] = m
	D[0][1] = m * ν
	D[1][0] = m * ν
	D[1][1] = m
	D[2][2] = m * (1.0 - ν) / 2.0
	return
}

// Stiffness computes the element stiffness k = Bᵀ·D·B·A·t (6x6) of one
// constant-strain triangle with thickness t [m]
func Stiffness(x, y []float64, E, ν, t float64) (k, B [][]float64, A float64, err error) {
	B, A, err = Bmatrix(x, y)
	if err != nil {
		return
	}
	D := Dmatrix(E, ν)
	k = la.MatAlloc(6, 6)
	la.MatTrMul3(k, A*t, B, D, B)
	return
}

// Stress recovers the centroidal stress components from the six nodal
// displacements: σ = D·B·u
func Stress(B, D [][]float64, u []float64) (σx, σy, τxy float64) {
	ε := make([]float64, 3)
	la.MatVecMul(ε, 1, B, u)
	σ := make([]float64, 3)
	la.MatVecMul(σ, 1, D, ε)
	return σ[0], σ[1], σ[2]
}

// VonMises returns the plane-stress Von Mises equivalent stress
func VonMises(σx, σy, τxy float64) float64 {
	return math.Sqrt(σx*σx - σx*σy + σy*σy + 3.0*τxy*τxy)
}
