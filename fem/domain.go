// Copyright 2016 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/goframe/inp"
	"github.com/cpmech/goframe/la"
)

// Domain holds the refined mesh, the element kernels, the assembled
// global stiffness and the free-DOF reduction for one model. It is
// created once per model and reused by every case analysis so the
// factorisation of the reduced system happens a single time.
type Domain struct {

	// input
	Model *inp.Model // borrowed read-only
	Msh   *Mesh      // refined mesh (owned)

	// element data; nil kernel marks a skipped sub-member
	Kernels []*BeamKernel // [len(Msh.Subs)]
	Umaps   [][]int       // [len(Msh.Subs)][12] location arrays

	// assembled system
	K    [][]float64 // [6N][6N] global stiffness
	Free []int       // indices of unrestrained DOFs

	// factorisation of the reduced matrix (lazy)
	lu   [][]float64
	perm []int

	// per-member warnings accumulated during assembly
	Log []string
}

// NewDomain refines the model and assembles the global stiffness.
// Per-member problems (unresolved section or material, degenerate
// geometry) are logged and the member skipped; the domain is still
// usable and the returned error is nil. Singular systems are detected
// later, by Solve.
func NewDomain(model *inp.Model) (o *Domain, err error) {

	o = new(Domain)
	o.Model = model
	o.Msh = Refine(model)
	o.Log = append(o.Log, o.Msh.Log...)

	// element kernels and location arrays. the refiner has already
	// excluded frames with unresolved references or degenerate geometry
	warned := make(map[int]bool) // one warning per frame, not per sub
	o.Kernels = make([]*BeamKernel, len(o.Msh.Subs))
	o.Umaps = make([][]int, len(o.Msh.Subs))
	for i, s := range o.Msh.Subs {

		sec := model.GetFrameSection(s.Parent.Section)
		mat := model.GetMaterial(sec.Mat)
		if sec.A <= 0 || sec.Iy <= 0 || sec.Iz <= 0 || sec.Jtt <= 0 {
			if !warned[s.Parent.Id] {
				o.Log = append(o.Log, io.Sf("frame %d: section %q has non-positive properties; member skipped", s.Parent.Id, sec.Name))
				warned[s.Parent.Id] = true
			}
			continue
		}

		// kernel
		kern, kerr := NewBeamKernel(o.Msh.Coords(s.JidI), o.Msh.Coords(s.JidJ), s.Parent.Orientation, sec, mat)
		if kerr != nil {
			if !warned[s.Parent.Id] {
				o.Log = append(o.Log, io.Sf("frame %d: %v", s.Parent.Id, kerr))
				warned[s.Parent.Id] = true
			}
			continue
		}
		o.Kernels[i] = kern

		// location array
		um := make([]int, 12)
		for d := 0; d < 6; d++ {
			um[d] = o.Msh.Dof(s.JidI, d)
			um[6+d] = o.Msh.Dof(s.JidJ, d)
		}
		o.Umaps[i] = um
	}

	// global stiffness
	n := o.Msh.Ndof()
	o.K = la.MatAlloc(n, n)
	for i := range o.Msh.Subs {
		kern := o.Kernels[i]
		if kern == nil {
			continue
		}
		um := o.Umaps[i]
		for r := 0; r < 12; r++ {
			for c := 0; c < 12; c++ {
				o.K[um[r]][um[c]] += kern.K[r][c]
			}
		}
	}

	// free DOFs from the restraint masks. internal joints are always free
	for idx, j := range o.Msh.Joints {
		for d := 0; d < 6; d++ {
			if j.Restraint == nil || !j.Restraint.Bit(d) {
				o.Free = append(o.Free, 6*idx+d)
			}
		}
	}
	return
}

// Solve solves K*u = F on the free DOFs and returns the full 6N
// displacement vector with zeros at restrained DOFs. The reduced matrix
// is factorised on the first call and reused afterwards.
func (o *Domain) Solve(F []float64) (u []float64, err error) {

	nf := len(o.Free)
	if nf == 0 {
		return nil, chk.Err("all DOFs are restrained; nothing to solve")
	}

	// factorise the reduced matrix once
	if o.lu == nil {
		kf := la.MatAlloc(nf, nf)
		for i, I := range o.Free {
			for j, J := range o.Free {
				kf[i][j] = o.K[I][J]
			}
		}
		perm, ferr := la.LUFactor(kf)
		if ferr != nil {
			return nil, chk.Err("singular system: the structure is under-restrained, has a mechanism or a disconnected part:\n%v", ferr)
		}
		o.lu, o.perm = kf, perm
	}

	// gather, solve, scatter
	ff := make([]float64, nf)
	for i, I := range o.Free {
		ff[i] = F[I]
	}
	uf := la.LUSolve(o.lu, o.perm, ff)
	u = make([]float64, o.Msh.Ndof())
	for i, I := range o.Free {
		u[I] = uf[i]
	}
	return
}

// Reactions computes K*u at the restrained DOFs and aggregates the six
// components per restrained original joint
func (o *Domain) Reactions(u []float64) (res []*Reaction) {
	for idx, j := range o.Msh.Joints {
		if j.Restraint == nil {
			continue
		}
		var r [6]float64
		any := false
		for d := 0; d < 6; d++ {
			if !j.Restraint.Bit(d) {
				continue
			}
			any = true
			row := o.K[6*idx+d]
			for k := 0; k < len(row); k++ {
				r[d] += row[k] * u[k]
			}
		}
		if any {
			res = append(res, &Reaction{
				Joint: j.Id,
				Fx:    r[0], Fy: r[1], Fz: r[2],
				Mx: r[3], My: r[4], Mz: r[5],
			})
		}
	}
	return
}
