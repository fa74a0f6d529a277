// Copyright 2016 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/goframe/inp"
)

func Test_combo01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("combo01. superposition of scaled cases")

	// "tip5x" carries five times the "tip" load, so the combination
	// 2*tip + 3*tip5x equals 17 times the base case
	sol := NewSolver(GenCantilever(-10))
	base := sol.Analyze("tip")
	cmb := sol.AnalyzeCombination("2+3")
	if !base.IsValid || !cmb.IsValid {
		tst.Errorf("analyses failed")
		return
	}
	for jid, d := range base.Displacements {
		c := cmb.Displacements[jid]
		chk.Scalar(tst, io.Sf("j%d uy", jid), 1e-11, c.Uy, 17*d.Uy)
		chk.Scalar(tst, io.Sf("j%d rz", jid), 1e-11, c.Rz, 17*d.Rz)
	}
	fb := base.FrameResults[1]
	fc := cmb.FrameResults[1]
	chk.Vector(tst, "stations", 1e-15, fc.Stations, fb.Stations)
	for k := range fb.Stations {
		chk.Scalar(tst, io.Sf("V2[%d]", k), 1e-4, fc.Forces[k].V2, 17*fb.Forces[k].V2)
		chk.Scalar(tst, io.Sf("M3[%d]", k), 1e-3, fc.Forces[k].M3, 17*fb.Forces[k].M3)
		chk.Scalar(tst, io.Sf("uy[%d]", k), 1e-11, fc.Disps[k].Uy, 17*fb.Disps[k].Uy)
	}
	chk.IntAssert(len(cmb.Reactions), 1)
	chk.Scalar(tst, "reaction Fy", 1e-4, cmb.Reactions[0].Fy, 17*base.Reactions[0].Fy)
	chk.Scalar(tst, "reaction Mz", 1e-3, cmb.Reactions[0].Mz, 17*base.Reactions[0].Mz)
	chk.Scalar(tst, "max disp", 1e-11, cmb.MaxDisplacement, 17*base.MaxDisplacement)

	// duplicate case entries sum linearly
	dup := sol.AnalyzeCombination("dup")
	if !dup.IsValid {
		tst.Errorf("dup combination failed")
		return
	}
	chk.Scalar(tst, "dup tip uy", 1e-11, dup.Displacements[2].Uy, 2*base.Displacements[2].Uy)

	// combination results are stored
	if sol.Results("2+3") != cmb {
		tst.Errorf("combination must be stored")
		return
	}
}

func Test_combo02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("combo02. invalid combinations")

	// unknown combination name
	sol := NewSolver(GenCantilever(-10))
	res := sol.AnalyzeCombination("nosuch")
	if res.IsValid {
		tst.Errorf("unknown combination must give an invalid result")
		return
	}
	io.Pforan("log = %v\n", res.Log)

	// combination referencing an unknown case
	model := GenCantilever(-10)
	model.LoadCombinations = append(model.LoadCombinations, &inp.LoadCombination{
		Name:  "broken",
		Cases: []inp.CaseEntry{{Case: "ghost", Scale: 1}},
	})
	sol = NewSolver(model)
	res = sol.AnalyzeCombination("broken")
	if res.IsValid {
		tst.Errorf("combination with unknown case must give an invalid result")
		return
	}
	io.Pforan("log = %v\n", res.Log)
	chk.IntAssert(len(res.Displacements), 0)
}
