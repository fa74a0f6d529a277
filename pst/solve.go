// Copyright 2016 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pst

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/goframe/la"
)

// Plate holds a small 2D plane-stress problem: the triangulated plate,
// its elastic constants and the support mask. Two DOFs per node,
// ordered (ux, uy).
type Plate struct {
	X, Y  []float64    // nodal coordinates
	Tris  [][]int      // triangles (CCW vertex indices)
	E     float64      // Young's modulus [Pa]
	Nu    float64      // Poisson's coefficient
	T     float64      // thickness [m]
	Fixed map[int]bool // restrained DOF indices (2*node+d)
}

// Solve assembles the global stiffness, reduces by the support mask and
// solves for the nodal displacements under the given load vector
// (length 2*nnodes, forces in N)
func (o *Plate) Solve(F []float64) (u []float64, err error) {

	// assemble
	n := 2 * len(o.X)
	if len(F) != n {
		return nil, chk.Err("load vector length %d does not match %d DOFs", len(F), n)
	}
	K := la.MatAlloc(n, n)
	for _, tri := range o.Tris {
		x := []float64{o.X[tri[0]], o.X[tri[1]], o.X[tri[2]]}
		y := []float64{o.Y[tri[0]], o.Y[tri[1]], o.Y[tri[2]]}
		k, _, _, kerr := Stiffness(x, y, o.E, o.Nu, o.T)
		if kerr != nil {
			return nil, kerr
		}
		um := []int{2 * tri[0], 2*tri[0] + 1, 2 * tri[1], 2*tri[1] + 1, 2 * tri[2], 2*tri[2] + 1}
		for r := 0; r < 6; r++ {
			for c := 0; c < 6; c++ {
				K[um[r]][um[c]] += k[r][c]
			}
		}
	}

	// reduce to free DOFs
	var free []int
	for i := 0; i < n; i++ {
		if !o.Fixed[i] {
			free = append(free, i)
		}
	}
	if len(free) == 0 {
		return nil, chk.Err("all DOFs are restrained; nothing to solve")
	}
	kf := la.MatAlloc(len(free), len(free))
	ff := make([]float64, len(free))
	for i, I := range free {
		ff[i] = F[I]
		for j, J := range free {
			kf[i][j] = K[I][J]
		}
	}

	// solve and scatter
	uf, err := la.GESolve(kf, ff)
	if err != nil {
		return nil, err
	}
	u = make([]float64, n)
	for i, I := range free {
		u[I] = uf[i]
	}
	return
}

// ElemStress recovers the centroidal stress and the Von Mises value of
// triangle it from the full displacement vector
func (o *Plate) ElemStress(it int, u []float64) (σx, σy, τxy, σvm float64, err error) {
	tri := o.Tris[it]
	x := []float64{o.X[tri[0]], o.X[tri[1]], o.X[tri[2]]}
	y := []float64{o.Y[tri[0]], o.Y[tri[1]], o.Y[tri[2]]}
	B, _, err := Bmatrix(x, y)
	if err != nil {
		return
	}
	ue := []float64{
		u[2*tri[0]], u[2*tri[0]+1],
		u[2*tri[1]], u[2*tri[1]+1],
		u[2*tri[2]], u[2*tri[2]+1],
	}
	σx, σy, τxy = Stress(B, Dmatrix(o.E, o.Nu), ue)
	σvm = VonMises(σx, σy, τxy)
	return
}
