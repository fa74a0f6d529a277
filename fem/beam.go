// Copyright 2016 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the frame analysis engine: mesh refinement of
// members into beam sub-elements, the 12-DOF prismatic beam kernel,
// equivalent nodal load generation, global assembly over free DOFs,
// dense direct solution, per-station result recovery and linear
// combination of load cases.
package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/goframe/inp"
	"github.com/cpmech/goframe/la"
)

// BeamKernel computes the local stiffness and the global-to-local
// transformation of a 3D prismatic Euler-Bernoulli beam element.
//
//  Local axes: y0 along I->J; y1 and y2 the principal section axes
//  after the β-angle rotation about y0. The twelve DOFs are ordered
//  (ux, uy, uz, rx, ry, rz) at I then at J.
//
//              y1
//               ^
//               |       ,(J)
//               |     ,'
//               |   ,'  <-- y0
//               | ,'
//              (I)--------> y2
//
type BeamKernel struct {

	// geometry
	L float64 // member length

	// unit vectors aligned with beam element
	e0 []float64 // [3] along the member axis
	e1 []float64 // [3] local y after β rotation
	e2 []float64 // [3] local z after β rotation

	// matrices
	T  [][]float64 // [12][12] global-to-local transformation
	Kl [][]float64 // [12][12] stiffness in local system
	K  [][]float64 // [12][12] stiffness in global system
}

// NewBeamKernel computes the element matrices for a beam from xi to xj
// (metres) with orientation β (degrees), section properties (metres) and
// elastic constants E, G given in MPa. The MPa to Pa conversion happens
// here and only here.
func NewBeamKernel(xi, xj []float64, β float64, sec *inp.FrameSection, mat *inp.Material) (o *BeamKernel, err error) {

	// length and direction cosines
	o = new(BeamKernel)
	dx := make([]float64, 3)
	for i := 0; i < 3; i++ {
		dx[i] = xj[i] - xi[i]
		o.L += dx[i] * dx[i]
	}
	o.L = math.Sqrt(o.L)
	if o.L <= MinLength {
		return nil, chk.Err("degenerate member: length %g is below %g", o.L, MinLength)
	}

	// unit vectors and transformation
	o.e0 = []float64{dx[0] / o.L, dx[1] / o.L, dx[2] / o.L}
	o.e1 = make([]float64, 3)
	o.e2 = make([]float64, 3)
	o.computeAxes(β)
	o.T = la.MatAlloc(12, 12)
	for k := 0; k < 4; k++ {
		o.T[3*k+0][3*k+0], o.T[3*k+0][3*k+1], o.T[3*k+0][3*k+2] = o.e0[0], o.e0[1], o.e0[2]
		o.T[3*k+1][3*k+0], o.T[3*k+1][3*k+1], o.T[3*k+1][3*k+2] = o.e1[0], o.e1[1], o.e1[2]
		o.T[3*k+2][3*k+0], o.T[3*k+2][3*k+1], o.T[3*k+2][3*k+2] = o.e2[0], o.e2[1], o.e2[2]
	}

	// local stiffness and congruence to global
	o.Kl = la.MatAlloc(12, 12)
	o.stiffLocal(sec, mat)
	o.K = la.MatAlloc(12, 12)
	la.MatTrMul3(o.K, 1, o.T, o.Kl, o.T) // K := trans(T) * Kl * T
	return
}

// computeAxes builds the local y and z unit vectors from the direction
// cosines and rotates them about the member axis by β degrees
func (o *BeamKernel) computeAxes(β float64) {

	cx, cy, cz := o.e0[0], o.e0[1], o.e0[2]
	if math.Abs(cy) > 0.99 {

		// near-vertical member: local y starts from global x, then the
		// triad is re-orthogonalised so T stays orthogonal
		o.e1[0], o.e1[1], o.e1[2] = 1, 0, 0
		utl.Cross3d(o.e2, o.e0, o.e1) // e2 := e0 cross e1
		nrm := la.VecNorm(o.e2)
		for i := 0; i < 3; i++ {
			o.e2[i] /= nrm
		}
		utl.Cross3d(o.e1, o.e2, o.e0) // e1 := e2 cross e0

	} else {

		// general member: local y in the vertical plane through the axis
		t := math.Sqrt(cx*cx + cz*cz)
		o.e1[0] = -cx * cy / t
		o.e1[1] = t
		o.e1[2] = -cz * cy / t
		utl.Cross3d(o.e2, o.e0, o.e1) // e2 := e0 cross e1
	}

	// β rotation about the member axis
	if β != 0 {
		b := β * math.Pi / 180.0
		c, s := math.Cos(b), math.Sin(b)
		y := la.VecClone(o.e1)
		z := la.VecClone(o.e2)
		for i := 0; i < 3; i++ {
			o.e1[i] = c*y[i] + s*z[i]
			o.e2[i] = -s*y[i] + c*z[i]
		}
	}
}

// stiffLocal fills the 12x12 stiffness in the local system
func (o *BeamKernel) stiffLocal(sec *inp.FrameSection, mat *inp.Material) {

	// constants. E and G arrive in MPa
	E := mat.E * 1e6
	G := mat.G * 1e6
	EA := E * sec.A
	EIy := E * sec.Iy
	EIz := E * sec.Iz
	GJ := G * sec.Jtt
	l := o.L
	ll := l * l
	lll := l * ll
	k := o.Kl

	// axial
	k[0][0] = EA / l
	k[0][6] = -EA / l
	k[6][0] = -EA / l
	k[6][6] = EA / l

	// torsion
	k[3][3] = GJ / l
	k[3][9] = -GJ / l
	k[9][3] = -GJ / l
	k[9][9] = GJ / l

	// bending about local z: uy with rz
	k[1][1] = 12.0 * EIz / lll
	k[1][5] = 6.0 * EIz / ll
	k[1][7] = -12.0 * EIz / lll
	k[1][11] = 6.0 * EIz / ll
	k[5][1] = 6.0 * EIz / ll
	k[5][5] = 4.0 * EIz / l
	k[5][7] = -6.0 * EIz / ll
	k[5][11] = 2.0 * EIz / l
	k[7][1] = -12.0 * EIz / lll
	k[7][5] = -6.0 * EIz / ll
	k[7][7] = 12.0 * EIz / lll
	k[7][11] = -6.0 * EIz / ll
	k[11][1] = 6.0 * EIz / ll
	k[11][5] = 2.0 * EIz / l
	k[11][7] = -6.0 * EIz / ll
	k[11][11] = 4.0 * EIz / l

	// bending about local y: uz couples with -ry
	k[2][2] = 12.0 * EIy / lll
	k[2][4] = -6.0 * EIy / ll
	k[2][8] = -12.0 * EIy / lll
	k[2][10] = -6.0 * EIy / ll
	k[4][2] = -6.0 * EIy / ll
	k[4][4] = 4.0 * EIy / l
	k[4][8] = 6.0 * EIy / ll
	k[4][10] = 2.0 * EIy / l
	k[8][2] = -12.0 * EIy / lll
	k[8][4] = 6.0 * EIy / ll
	k[8][8] = 12.0 * EIy / lll
	k[8][10] = 6.0 * EIy / ll
	k[10][2] = -6.0 * EIy / ll
	k[10][4] = 2.0 * EIy / l
	k[10][8] = 6.0 * EIy / ll
	k[10][10] = 4.0 * EIy / l
}

// LocalDir returns the row d of the rotation (0: member axis, 1: local
// y, 2: local z) as a global unit vector
func (o *BeamKernel) LocalDir(d int) []float64 {
	switch d {
	case 0:
		return o.e0
	case 1:
		return o.e1
	case 2:
		return o.e2
	}
	chk.Panic("local direction index %d is out of range", d)
	return nil
}
