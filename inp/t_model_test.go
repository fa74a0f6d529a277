// Copyright 2016 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_model01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model01. read portal frame model")

	m, err := ReadModel("data/portal.json")
	if err != nil {
		tst.Errorf("ReadModel failed:\n%v", err)
		return
	}

	chk.IntAssert(len(m.Materials), 2)
	chk.IntAssert(len(m.FrameSections), 2)
	chk.IntAssert(len(m.Joints), 6)
	chk.IntAssert(len(m.Frames), 3)
	chk.IntAssert(len(m.Shells), 1)
	chk.IntAssert(len(m.PointLoads), 2)
	chk.IntAssert(len(m.DistLoads), 2)
	chk.IntAssert(len(m.AreaLoads), 1)

	// materials: G derived for steel, fy kept on the variant
	steel := m.GetMaterial("A36")
	if steel == nil {
		tst.Errorf("material A36 not found")
		return
	}
	io.Pforan("steel = %v\n", steel)
	chk.Scalar(tst, "steel G", 1e-10, steel.G, 76923.07692307692)
	chk.Scalar(tst, "steel fy", 1e-17, steel.Fy, 250)

	// sections: derived properties computed by ReadModel
	w := m.GetFrameSection("W300")
	if w == nil {
		tst.Errorf("section W300 not found")
		return
	}
	io.Pforan("W300 = %v\n", w)
	chk.Scalar(tst, "W300 A", 1e-16, w.A, 0.005808)
	chk.Scalar(tst, "W300 Iy", 1e-16, w.Iy, 8.8709184e-5)

	// restraints: fixed base, free top
	chk.IntAssert(boolToInt(m.GetJoint(1).Restraint.Bit(0)), 1)
	chk.IntAssert(boolToInt(m.GetJoint(1).Restraint.Bit(5)), 1)
	if m.GetJoint(2).Restraint != nil {
		tst.Errorf("joint 2 must be fully free (nil restraint)")
		return
	}

	// frame 2 carries the 90 degree orientation
	chk.Scalar(tst, "frame 2 beta", 1e-17, m.GetFrame(2).Orientation, 90)

	// name lookups
	if m.GetCase("W") == nil || m.GetCombination("D+W") == nil || m.GetPattern("DL") == nil {
		tst.Errorf("case/combination/pattern lookups failed")
		return
	}
	if m.GetShellSection("PL10") == nil || m.GetShell(1) == nil {
		tst.Errorf("shell lookups failed")
		return
	}
}

func Test_model02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model02. invariant violations are rejected")

	// duplicated joint id
	m := &Model{
		Joints: []*Joint{{Id: 1}, {Id: 1, X: 1}},
	}
	if err := m.Check(); err == nil {
		tst.Errorf("duplicated joint id must be rejected")
		return
	}

	// frame referencing a missing joint
	m = &Model{
		Joints: []*Joint{{Id: 1}, {Id: 2, X: 1}},
		Frames: []*Frame{{Id: 1, JointI: 1, JointJ: 7}},
	}
	if err := m.Check(); err == nil {
		tst.Errorf("frame with unknown joint must be rejected")
		return
	}

	// point load referencing a missing joint
	m = &Model{
		Joints:     []*Joint{{Id: 1}},
		PointLoads: []*PointLoad{{Name: "p", Joint: 9, Fy: -1}},
	}
	if err := m.Check(); err == nil {
		tst.Errorf("point load with unknown joint must be rejected")
		return
	}

	// too many joints
	m = &Model{}
	for i := 0; i <= MaxJoints; i++ {
		m.Joints = append(m.Joints, &Joint{Id: i})
	}
	err := m.Check()
	if err == nil {
		tst.Errorf("oversized model must be rejected")
		return
	}
	io.Pforan("%v\n", err)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
