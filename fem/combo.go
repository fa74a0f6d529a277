// Copyright 2016 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// AnalyzeCombination superposes the per-case results of a load
// combination. Referenced cases are analysed on demand (in the listed
// order) and reused from the store afterwards; duplicate case entries
// sum linearly. Only linear quantities are superposed.
func (o *Solver) AnalyzeCombination(name string) (res *Results) {

	// cached?
	if r, ok := o.Store[name]; ok {
		return r
	}

	// resolve combination
	cmb := o.Model.GetCombination(name)
	if cmb == nil {
		return newInvalidResults(name, io.Sf("load combination %q is unknown", name))
	}

	// analyse referenced cases
	res = newResults(name)
	reac := make(map[int]*Reaction)
	var reacOrder []int
	for _, entry := range cmb.Cases {

		cr := o.Analyze(entry.Case)
		if !cr.IsValid {
			bad := newInvalidResults(name, io.Sf("combination %q: case %q failed", name, entry.Case))
			bad.Log = append(bad.Log, cr.Log...)
			return bad
		}
		s := entry.Scale

		// displacements
		for jid, d := range cr.Displacements {
			acc, ok := res.Displacements[jid]
			if !ok {
				acc = &JointDisp{}
				res.Displacements[jid] = acc
			}
			acc.Ux += s * d.Ux
			acc.Uy += s * d.Uy
			acc.Uz += s * d.Uz
			acc.Rx += s * d.Rx
			acc.Ry += s * d.Ry
			acc.Rz += s * d.Rz
		}

		// station-wise member results
		for fid, fr := range cr.FrameResults {
			acc, ok := res.FrameResults[fid]
			if !ok {
				acc = &FrameRes{
					Stations: append([]float64(nil), fr.Stations...),
					Disps:    make([]*JointDisp, len(fr.Stations)),
					Forces:   make([]*StationForce, len(fr.Stations)),
				}
				for k := range acc.Disps {
					acc.Disps[k] = &JointDisp{}
					acc.Forces[k] = &StationForce{}
				}
				res.FrameResults[fid] = acc
			}
			for k := range fr.Stations {
				ad, d := acc.Disps[k], fr.Disps[k]
				ad.Ux += s * d.Ux
				ad.Uy += s * d.Uy
				ad.Uz += s * d.Uz
				ad.Rx += s * d.Rx
				ad.Ry += s * d.Ry
				ad.Rz += s * d.Rz
				af, f := acc.Forces[k], fr.Forces[k]
				af.P += s * f.P
				af.V2 += s * f.V2
				af.V3 += s * f.V3
				af.T += s * f.T
				af.M2 += s * f.M2
				af.M3 += s * f.M3
			}
		}

		// reactions
		for _, r := range cr.Reactions {
			acc, ok := reac[r.Joint]
			if !ok {
				acc = &Reaction{Joint: r.Joint}
				reac[r.Joint] = acc
				reacOrder = append(reacOrder, r.Joint)
			}
			acc.Fx += s * r.Fx
			acc.Fy += s * r.Fy
			acc.Fz += s * r.Fz
			acc.Mx += s * r.Mx
			acc.My += s * r.My
			acc.Mz += s * r.Mz
		}

		res.Log = append(res.Log, io.Sf("combination %q: case %q scaled by %g", name, entry.Case, s))
	}

	// reactions in first-seen joint order
	for _, jid := range reacOrder {
		res.Reactions = append(res.Reactions, reac[jid])
	}

	// maximum translation magnitude of the combined field
	for _, d := range res.Displacements {
		mag := math.Sqrt(d.Ux*d.Ux + d.Uy*d.Uy + d.Uz*d.Uz)
		if mag > res.MaxDisplacement {
			res.MaxDisplacement = mag
		}
	}

	o.Store[name] = res
	return
}
