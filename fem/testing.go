// Copyright 2016 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/goframe/inp"
)

// auxiliary functions to generate models for tests

// GenCantilever returns a 5 m horizontal cantilever fixed at joint 1
// with a tip point load of tipFy [kN] at joint 2 under case "tip".
// A second case "tip5x" carries five times the load.
func GenCantilever(tipFy float64) *inp.Model {
	return &inp.Model{
		Materials: []*inp.Material{
			{Name: "steel", Type: inp.MatSteel, E: 210000, Nu: 0.3, Rho: 7850},
		},
		FrameSections: []*inp.FrameSection{
			{Name: "S", Type: inp.SecGeneric, Mat: "steel", A: 0.01, Iy: 1e-4, Iz: 1e-4, Jtt: 1e-5},
		},
		LoadPatterns: []*inp.LoadPattern{
			{Name: "P", Category: "Live"},
			{Name: "P5", Category: "Live"},
		},
		LoadCases: []*inp.LoadCase{
			{Name: "tip", Patterns: []inp.PatternEntry{{Pattern: "P", Scale: 1}}},
			{Name: "tip5x", Patterns: []inp.PatternEntry{{Pattern: "P5", Scale: 1}}},
		},
		LoadCombinations: []*inp.LoadCombination{
			{Name: "2+3", Cases: []inp.CaseEntry{{Case: "tip", Scale: 2}, {Case: "tip5x", Scale: 3}}},
			{Name: "dup", Cases: []inp.CaseEntry{{Case: "tip", Scale: 1}, {Case: "tip", Scale: 1}}},
		},
		Joints: []*inp.Joint{
			{Id: 1, Restraint: inp.Fixed()},
			{Id: 2, X: 5},
		},
		Frames: []*inp.Frame{
			{Id: 1, JointI: 1, JointJ: 2, Section: "S"},
		},
		PointLoads: []*inp.PointLoad{
			{Name: "tip", Joint: 2, Pattern: "P", Fy: tipFy},
			{Name: "tip5", Joint: 2, Pattern: "P5", Fy: 5 * tipFy},
		},
	}
}

// GenAxialRod returns a 2 m fixed-free rod with an axial load of
// 100 kN at the free end under case "axial"
func GenAxialRod() *inp.Model {
	return &inp.Model{
		Materials: []*inp.Material{
			{Name: "steel", Type: inp.MatSteel, E: 200000, Nu: 0.3, Rho: 7850},
		},
		FrameSections: []*inp.FrameSection{
			{Name: "S", Type: inp.SecGeneric, Mat: "steel", A: 0.01, Iy: 1e-4, Iz: 1e-4, Jtt: 1e-5},
		},
		LoadPatterns: []*inp.LoadPattern{{Name: "P", Category: "Live"}},
		LoadCases: []*inp.LoadCase{
			{Name: "axial", Patterns: []inp.PatternEntry{{Pattern: "P", Scale: 1}}},
		},
		Joints: []*inp.Joint{
			{Id: 1, Restraint: inp.Fixed()},
			{Id: 2, X: 2},
		},
		Frames: []*inp.Frame{
			{Id: 1, JointI: 1, JointJ: 2, Section: "S"},
		},
		PointLoads: []*inp.PointLoad{
			{Name: "pull", Joint: 2, Pattern: "P", Fx: 100},
		},
	}
}

// GenSimpleBeam returns a 6 m simply supported concrete beam
// (rectangle 0.2 x 0.3) carrying its self-weight plus a uniform
// 10 kN/m gravity load under case "service". Joint 1 additionally
// restrains torsion so the member has no free twisting mode.
func GenSimpleBeam() *inp.Model {
	ra := inp.Pinned()
	ra.Rx = true
	return &inp.Model{
		Materials: []*inp.Material{
			{Name: "conc", Type: inp.MatConcrete, E: 30000, Nu: 0.2, Rho: 2400, Fc: 30},
		},
		FrameSections: []*inp.FrameSection{
			{Name: "R", Type: inp.SecRectangle, Mat: "conc", B: 0.2, H: 0.3},
		},
		LoadPatterns: []*inp.LoadPattern{
			{Name: "DL", Category: "Dead", SelfWeight: true},
			{Name: "LL", Category: "Live"},
		},
		LoadCases: []*inp.LoadCase{
			{Name: "service", Patterns: []inp.PatternEntry{{Pattern: "DL", Scale: 1}, {Pattern: "LL", Scale: 1}}},
			{Name: "self", Patterns: []inp.PatternEntry{{Pattern: "DL", Scale: 1}}},
		},
		Joints: []*inp.Joint{
			{Id: 1, Restraint: ra},
			{Id: 2, X: 6, Restraint: inp.Pinned()},
		},
		Frames: []*inp.Frame{
			{Id: 1, JointI: 1, JointJ: 2, Section: "R"},
		},
		DistLoads: []*inp.DistributedFrameLoad{
			{Name: "udl", Frame: 1, Pattern: "LL", Dir: inp.DirGravity, Kind: inp.LoadUniform, StartMag: 10, EndMag: 10, StartDistance: 0, EndDistance: 6},
		},
	}
}

// GenPortal returns a planar portal frame (two 3 m columns, 4 m beam)
// with fixed bases and a 50 kN horizontal load at the top-left joint
// under case "wind"
func GenPortal() *inp.Model {
	return &inp.Model{
		Materials: []*inp.Material{
			{Name: "steel", Type: inp.MatSteel, E: 200000, Nu: 0.3, Rho: 7850, Fy: 250},
		},
		FrameSections: []*inp.FrameSection{
			{Name: "W300", Type: inp.SecI, Mat: "steel", D: 0.3, Bf: 0.15, Tw: 0.008, Tf: 0.012},
		},
		LoadPatterns: []*inp.LoadPattern{
			{Name: "WL", Category: "Wind"},
		},
		LoadCases: []*inp.LoadCase{
			{Name: "wind", Patterns: []inp.PatternEntry{{Pattern: "WL", Scale: 1}}},
		},
		Joints: []*inp.Joint{
			{Id: 1, Restraint: inp.Fixed()},
			{Id: 2, Y: 3},
			{Id: 3, X: 4, Y: 3},
			{Id: 4, X: 4, Restraint: inp.Fixed()},
		},
		Frames: []*inp.Frame{
			{Id: 1, JointI: 1, JointJ: 2, Section: "W300"},
			{Id: 2, JointI: 2, JointJ: 3, Section: "W300"},
			{Id: 3, JointI: 3, JointJ: 4, Section: "W300"},
		},
		PointLoads: []*inp.PointLoad{
			{Name: "push", Joint: 2, Pattern: "WL", Fx: 50},
		},
	}
}
