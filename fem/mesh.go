// Copyright 2016 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/goframe/inp"
)

// Segments is the number of equal-length sub-members each input frame is
// split into. Stations per member = Segments + 1.
const Segments = 10

// MinLength is the shortest admissible member length in metres; shorter
// members are degenerate and skipped
const MinLength = 1e-6

// Sub is one beam sub-element of the refined mesh
type Sub struct {
	Parent *inp.Frame // input frame this sub-member belongs to
	JidI   int        // start joint id (may be internal/negative)
	JidJ   int        // end joint id
}

// Mesh holds the refined model: the original joints plus the internal
// joints introduced by subdivision, the sub-members, and the per-frame
// polylines that drive station-wise result recovery. Internal joints
// carry negative ids descending from -1 and are fully free.
type Mesh struct {
	Joints    []*inp.Joint  // original joints first, then internal ones
	Subs      []*Sub        // all sub-members
	Polylines map[int][]int // frame id => ordered joint ids from I to J
	Jid2idx   map[int]int   // joint id => index into Joints
	Log       []string      // warnings for skipped members
}

// Refine subdivides every frame of the model into Segments equal
// sub-members. Frames that cannot be analysed — degenerate length,
// unresolved section or material — are recorded in the log and skipped
// entirely so they leave no floating internal joints behind; the
// analysis continues without them.
func Refine(model *inp.Model) (o *Mesh) {

	o = new(Mesh)
	o.Polylines = make(map[int][]int)
	o.Jid2idx = make(map[int]int)
	for _, j := range model.Joints {
		o.Jid2idx[j.Id] = len(o.Joints)
		o.Joints = append(o.Joints, j)
	}

	next := -1 // internal joint ids descend from -1
	for _, f := range model.Frames {

		// a frame with unresolved references is skipped, not fatal
		sec := model.GetFrameSection(f.Section)
		if sec == nil {
			o.Log = append(o.Log, io.Sf("frame %d: section %q does not resolve; member skipped", f.Id, f.Section))
			continue
		}
		if model.GetMaterial(sec.Mat) == nil {
			o.Log = append(o.Log, io.Sf("frame %d: material %q does not resolve; member skipped", f.Id, sec.Mat))
			continue
		}

		ji := model.GetJoint(f.JointI)
		jj := model.GetJoint(f.JointJ)
		dx := jj.X - ji.X
		dy := jj.Y - ji.Y
		dz := jj.Z - ji.Z
		L := math.Sqrt(dx*dx + dy*dy + dz*dz)
		if L <= MinLength {
			o.Log = append(o.Log, io.Sf("frame %d is degenerate (L=%g); member skipped", f.Id, L))
			continue
		}

		// polyline from I to J with internal joints in between
		poly := make([]int, 0, Segments+1)
		poly = append(poly, ji.Id)
		for k := 1; k < Segments; k++ {
			t := float64(k) / float64(Segments)
			jn := &inp.Joint{
				Id: next,
				X:  ji.X + t*dx,
				Y:  ji.Y + t*dy,
				Z:  ji.Z + t*dz,
			}
			next--
			o.Jid2idx[jn.Id] = len(o.Joints)
			o.Joints = append(o.Joints, jn)
			poly = append(poly, jn.Id)
		}
		poly = append(poly, jj.Id)
		o.Polylines[f.Id] = poly

		// sub-members inherit section, orientation and offsets via Parent
		for k := 0; k < Segments; k++ {
			o.Subs = append(o.Subs, &Sub{Parent: f, JidI: poly[k], JidJ: poly[k+1]})
		}
	}
	return
}

// Coords returns the position of the joint with given id
func (o *Mesh) Coords(jid int) []float64 {
	j := o.Joints[o.Jid2idx[jid]]
	return []float64{j.X, j.Y, j.Z}
}

// Ndof returns the total number of degrees of freedom of the refined
// mesh (six per joint)
func (o *Mesh) Ndof() int {
	return 6 * len(o.Joints)
}

// Dof returns the global DOF index of joint jid and local DOF d (0..5)
func (o *Mesh) Dof(jid, d int) int {
	return 6*o.Jid2idx[jid] + d
}

// SubLength returns the length of sub-member s
func (o *Mesh) SubLength(s *Sub) float64 {
	xi := o.Coords(s.JidI)
	xj := o.Coords(s.JidJ)
	dx := xj[0] - xi[0]
	dy := xj[1] - xi[1]
	dz := xj[2] - xi[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
