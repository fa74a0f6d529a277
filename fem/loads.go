// Copyright 2016 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/goframe/inp"
	"github.com/cpmech/goframe/la"
)

// Gravity is the gravitational acceleration used for self-weight [m/s²]
const Gravity = 9.81

// kN2N converts the input load units (kN, kN·m, kN/m) to the SI values
// used during assembly (N, N·m, N/m). The engine treats moments in N·m
// throughout, so the factor applies uniformly to forces and moments.
const kN2N = 1e3

// BuildCase assembles the equivalent nodal load vector of a load case on
// the refined mesh. Unresolvable references inside the case (pattern or
// frame names that do not exist) are recorded in warns and skipped.
func (o *Domain) BuildCase(lc *inp.LoadCase) (F []float64, warns []string) {

	F = make([]float64, o.Msh.Ndof())
	for _, entry := range lc.Patterns {

		pat := o.Model.GetPattern(entry.Pattern)
		if pat == nil {
			warns = append(warns, io.Sf("case %q: pattern %q does not resolve; entry skipped", lc.Name, entry.Pattern))
			continue
		}

		// self-weight of all sub-members in global -Y
		if pat.SelfWeight {
			o.addSelfWeight(F, entry.Scale)
		}

		// point loads
		for _, p := range o.Model.PointLoads {
			if p.Pattern != pat.Name {
				continue
			}
			s := entry.Scale * kN2N
			F[o.Msh.Dof(p.Joint, 0)] += p.Fx * s
			F[o.Msh.Dof(p.Joint, 1)] += p.Fy * s
			F[o.Msh.Dof(p.Joint, 2)] += p.Fz * s
			F[o.Msh.Dof(p.Joint, 3)] += p.Mx * s
			F[o.Msh.Dof(p.Joint, 4)] += p.My * s
			F[o.Msh.Dof(p.Joint, 5)] += p.Mz * s
		}

		// distributed member loads
		for _, dl := range o.Model.DistLoads {
			if dl.Pattern != pat.Name {
				continue
			}
			if werr := o.addDistLoad(F, dl, entry.Scale); werr != "" {
				warns = append(warns, werr)
			}
		}

		// area loads lumped to shell joints
		for _, al := range o.Model.AreaLoads {
			if al.Pattern != pat.Name {
				continue
			}
			if werr := o.addAreaLoad(F, al, entry.Scale); werr != "" {
				warns = append(warns, werr)
			}
		}
	}
	return
}

// addSelfWeight lumps the weight rho*A*g*L of every sub-member equally to
// its two end joints in global -Y
func (o *Domain) addSelfWeight(F []float64, scale float64) {
	for i, s := range o.Msh.Subs {
		if o.Kernels[i] == nil {
			continue
		}
		sec := o.Model.GetFrameSection(s.Parent.Section)
		mat := o.Model.GetMaterial(sec.Mat)
		w := mat.Rho * sec.A * Gravity // [N/m]
		half := scale * w * o.Kernels[i].L / 2.0
		F[o.Msh.Dof(s.JidI, 1)] -= half
		F[o.Msh.Dof(s.JidJ, 1)] -= half
	}
}

// addDistLoad converts one distributed member load into equivalent nodal
// forces on the refined polyline. Load distances are clamped into [0, L]
// of the parent member; sub-members partially covered receive the
// trapezoidal split of the covered portion.
func (o *Domain) addDistLoad(F []float64, dl *inp.DistributedFrameLoad, scale float64) (warn string) {

	poly, ok := o.Msh.Polylines[dl.Frame]
	if !ok {
		return io.Sf("distributed load %q references frame %d which is not in the mesh; load skipped", dl.Name, dl.Frame)
	}

	// parent length from the polyline ends
	xi := o.Msh.Coords(poly[0])
	xj := o.Msh.Coords(poly[len(poly)-1])
	dx := []float64{xj[0] - xi[0], xj[1] - xi[1], xj[2] - xi[2]}
	L := math.Sqrt(dx[0]*dx[0] + dx[1]*dx[1] + dx[2]*dx[2])

	// clamp the loaded range
	d1 := math.Max(0, math.Min(dl.StartDistance, L))
	d2 := math.Max(0, math.Min(dl.EndDistance, L))
	if d2-d1 < MinLength {
		return io.Sf("distributed load %q covers no length of frame %d; load skipped", dl.Name, dl.Frame)
	}

	// magnitudes in N/m
	w1 := dl.StartMag * kN2N * scale
	w2 := dl.EndMag * kN2N * scale
	if dl.Kind == inp.LoadUniform {
		w2 = w1
	}

	// magnitude interpolator along the member
	wat := func(x float64) float64 {
		if dl.Kind == inp.LoadUniform {
			return w1
		}
		return w1 + (w2-w1)*(x-d1)/(d2-d1)
	}

	// walk the sub-members of this frame in order
	Ls := L / float64(Segments)
	k := 0
	for i, s := range o.Msh.Subs {
		if s.Parent.Id != dl.Frame {
			continue
		}
		kern := o.Kernels[i]
		a := float64(k) * Ls // sub span along the parent
		b := a + Ls
		k++
		if kern == nil {
			continue
		}

		// covered portion within this sub-member
		ov0 := math.Max(a, d1)
		ov1 := math.Min(b, d2)
		lo := ov1 - ov0
		if lo < MinLength {
			continue
		}
		wA, wB := wat(ov0), wat(ov1)

		// load direction as a global unit vector
		var g []float64
		switch dl.Dir {
		case inp.DirGlobalX:
			g = []float64{1, 0, 0}
		case inp.DirGlobalY:
			g = []float64{0, 1, 0}
		case inp.DirGlobalZ:
			g = []float64{0, 0, 1}
		case inp.DirGravity:
			g = []float64{0, -1, 0}
		case inp.DirLocalX:
			g = kern.LocalDir(0)
		case inp.DirLocalY:
			g = kern.LocalDir(1)
		case inp.DirLocalZ:
			g = kern.LocalDir(2)
		default:
			return io.Sf("distributed load %q has unknown direction %q; load skipped", dl.Name, dl.Dir)
		}

		// local intensity components at the two covered ends
		fxl := make([]float64, 12)
		ll := lo * lo
		for c := 0; c < 3; c++ {
			e := kern.LocalDir(c)
			dc := e[0]*g[0] + e[1]*g[1] + e[2]*g[2]
			if dc == 0 {
				continue
			}
			a1 := wA * dc
			a2 := wB * dc

			// end forces: trapezoidal split (uniform reduces to half/half)
			f1 := (2.0*a1 + a2) / 6.0 * lo
			f2 := (a1 + 2.0*a2) / 6.0 * lo
			fxl[c] += f1
			fxl[6+c] += f2

			// end moments for transverse components of trapezoidal loads
			if dl.Kind == inp.LoadTrapezoidal {
				m1 := (3.0*a1 + 2.0*a2) / 60.0 * ll
				m2 := -(2.0*a1 + 3.0*a2) / 60.0 * ll
				switch c {
				case 1: // load along local y bends about local z
					fxl[5] += m1
					fxl[11] += m2
				case 2: // load along local z bends about local y, opposite sign
					fxl[4] -= m1
					fxl[10] -= m2
				}
			}
		}

		// push to global: F += trans(T) * fxl
		fg := make([]float64, 12)
		la.MatTrVecMulAdd(fg, 1, kern.T, fxl)
		for d := 0; d < 6; d++ {
			F[o.Msh.Dof(s.JidI, d)] += fg[d]
			F[o.Msh.Dof(s.JidJ, d)] += fg[6+d]
		}
	}
	return ""
}

// addAreaLoad lumps a shell pressure to the shell joints in global -Y by
// equal tributary share
func (o *Domain) addAreaLoad(F []float64, al *inp.AreaLoad, scale float64) (warn string) {
	sh := o.Model.GetShell(al.Shell)
	if sh == nil {
		return io.Sf("area load %q references unknown shell %d; load skipped", al.Name, al.Shell)
	}
	area := o.shellArea(sh)
	total := al.Pressure * kN2N * scale * area
	share := total / float64(len(sh.Joints))
	for _, jid := range sh.Joints {
		F[o.Msh.Dof(jid, 1)] -= share
	}
	return ""
}

// shellArea computes the area of the (planar) shell polygon by summing
// triangle cross products fanned from the first vertex
func (o *Domain) shellArea(sh *inp.Shell) (area float64) {
	x0 := o.Msh.Coords(sh.Joints[0])
	for i := 1; i < len(sh.Joints)-1; i++ {
		xa := o.Msh.Coords(sh.Joints[i])
		xb := o.Msh.Coords(sh.Joints[i+1])
		ux, uy, uz := xa[0]-x0[0], xa[1]-x0[1], xa[2]-x0[2]
		vx, vy, vz := xb[0]-x0[0], xb[1]-x0[1], xb[2]-x0[2]
		cx := uy*vz - uz*vy
		cy := uz*vx - ux*vz
		cz := ux*vy - uy*vx
		area += 0.5 * math.Sqrt(cx*cx+cy*cy+cz*cz)
	}
	return
}
