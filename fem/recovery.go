// Copyright 2016 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/goframe/la"
)

// jointDispAt extracts the six displacement components of a joint from
// the full solution vector
func (o *Domain) jointDispAt(u []float64, jid int) *JointDisp {
	return &JointDisp{
		Ux: u[o.Msh.Dof(jid, 0)],
		Uy: u[o.Msh.Dof(jid, 1)],
		Uz: u[o.Msh.Dof(jid, 2)],
		Rx: u[o.Msh.Dof(jid, 3)],
		Ry: u[o.Msh.Dof(jid, 4)],
		Rz: u[o.Msh.Dof(jid, 5)],
	}
}

// RecoverFrame computes the station-wise displacements and internal
// forces along one input member. Station k takes the start-side forces
// of sub-member k; the last station takes the end-side forces of the
// last sub-member. Start-side nodal forces are negated so that axial
// tension is positive.
func (o *Domain) RecoverFrame(fid int, u []float64) (res *FrameRes) {

	poly, ok := o.Msh.Polylines[fid]
	if !ok {
		return nil
	}
	res = new(FrameRes)
	n := len(poly)
	res.Stations = make([]float64, n)
	res.Disps = make([]*JointDisp, n)
	res.Forces = make([]*StationForce, n)
	for k, jid := range poly {
		res.Stations[k] = float64(k) / float64(n-1)
		res.Disps[k] = o.jointDispAt(u, jid)
		res.Forces[k] = &StationForce{}
	}

	// element nodal forces: fl = Kl * (T * u_elem)
	ue := make([]float64, 12)
	ua := make([]float64, 12)
	fl := make([]float64, 12)
	k := 0
	for i, s := range o.Msh.Subs {
		if s.Parent.Id != fid {
			continue
		}
		kern := o.Kernels[i]
		sta := k
		k++
		if kern == nil {
			continue
		}
		for d, I := range o.Umaps[i] {
			ue[d] = u[I]
		}
		la.MatVecMul(ua, 1, kern.T, ue)
		la.MatVecMul(fl, 1, kern.Kl, ua)

		// start side of this sub-member
		res.Forces[sta] = &StationForce{
			P: -fl[0], V2: -fl[1], V3: -fl[2],
			T: -fl[3], M2: -fl[4], M3: -fl[5],
		}

		// the member's final station takes the end side of the last sub
		if sta == n-2 {
			res.Forces[n-1] = &StationForce{
				P: fl[6], V2: fl[7], V3: fl[8],
				T: fl[9], M2: fl[10], M3: fl[11],
			}
		}
	}
	return
}

// Recover fills a result record from the full displacement vector:
// per-joint displacements, per-member station results, reactions and the
// maximum translation magnitude
func (o *Domain) Recover(res *Results, u []float64) {

	// displacements of the original joints
	for _, j := range o.Model.Joints {
		d := o.jointDispAt(u, j.Id)
		res.Displacements[j.Id] = d
		mag := math.Sqrt(d.Ux*d.Ux + d.Uy*d.Uy + d.Uz*d.Uz)
		if mag > res.MaxDisplacement {
			res.MaxDisplacement = mag
		}
	}

	// station-wise member results
	for _, f := range o.Model.Frames {
		if fr := o.RecoverFrame(f.Id, u); fr != nil {
			res.FrameResults[f.Id] = fr
		}
	}

	// support reactions
	res.Reactions = o.Reactions(u)
}
