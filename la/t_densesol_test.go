// Copyright 2016 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

func Test_gesolve01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gesolve01. small systems with pivoting")

	// system requiring a row swap (zero leading pivot)
	A := [][]float64{
		{0, 2, 1},
		{1, 1, 1},
		{2, 1, 3},
	}
	b := []float64{7, 6, 13}
	x, err := GESolve(A, b)
	if err != nil {
		tst.Errorf("GESolve failed:\n%v", err)
		return
	}
	chk.Vector(tst, "x", 1e-14, x, []float64{1, 2, 3})

	// A and b must not be modified
	chk.Matrix(tst, "A untouched", 1e-17, A, [][]float64{{0, 2, 1}, {1, 1, 1}, {2, 1, 3}})
	chk.Vector(tst, "b untouched", 1e-17, b, []float64{7, 6, 13})

	// residual check
	r := make([]float64, 3)
	MatVecMul(r, 1, A, x)
	for i := 0; i < 3; i++ {
		r[i] -= b[i]
	}
	chk.Scalar(tst, "norm(A*x-b)", 1e-13, VecNorm(r), 0)
}

func Test_gesolve02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gesolve02. singular system is detected")

	A := [][]float64{
		{1, 2},
		{2, 4},
	}
	b := []float64{1, 2}
	_, err := GESolve(A, b)
	if err == nil {
		tst.Errorf("GESolve must fail on a singular matrix")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_lu01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lu01. factor once, solve many")

	A := [][]float64{
		{4, -2, 1},
		{-2, 4, -2},
		{1, -2, 4},
	}
	rhs := [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{11, -16, 17},
	}
	sols := make([][]float64, len(rhs))

	// reference solutions via Gaussian elimination
	for i, b := range rhs {
		x, err := GESolve(A, b)
		if err != nil {
			tst.Errorf("GESolve failed:\n%v", err)
			return
		}
		sols[i] = x
	}

	// LU path: factorisation runs on a copy, then repeated back-substitutions
	LU := MatClone(A)
	perm, err := LUFactor(LU)
	if err != nil {
		tst.Errorf("LUFactor failed:\n%v", err)
		return
	}
	for i, b := range rhs {
		x := LUSolve(LU, perm, b)
		chk.Vector(tst, io.Sf("x%d", i), 1e-13, x, sols[i])
	}
}

func Test_lu02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lu02. cross-check against gonum dense solver")

	// moderately sized SPD-ish system built from a stencil
	n := 24
	A := MatAlloc(n, n)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		A[i][i] = 4
		if i > 0 {
			A[i][i-1] = -1
		}
		if i < n-1 {
			A[i][i+1] = -1
		}
		if i > 2 {
			A[i][i-3] = 0.5
		}
		b[i] = float64(i%5) - 2
	}

	// this solver
	x, err := GESolve(A, b)
	if err != nil {
		tst.Errorf("GESolve failed:\n%v", err)
		return
	}
	LU := MatClone(A)
	perm, err := LUFactor(LU)
	if err != nil {
		tst.Errorf("LUFactor failed:\n%v", err)
		return
	}
	xlu := LUSolve(LU, perm, b)
	chk.Vector(tst, "GE vs LU", 1e-12, x, xlu)

	// independent reference: gonum
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		copy(data[i*n:(i+1)*n], A[i])
	}
	var xg mat.VecDense
	err = xg.SolveVec(mat.NewDense(n, n, data), mat.NewVecDense(n, VecClone(b)))
	if err != nil {
		tst.Errorf("gonum SolveVec failed:\n%v", err)
		return
	}
	chk.Vector(tst, "GE vs gonum", 1e-10, x, xg.RawVector().Data)
}
