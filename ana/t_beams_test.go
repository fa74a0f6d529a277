// Copyright 2016 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_cantilever01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cantilever01. end-loaded cantilever")

	c := CantileverEndLoad{L: 5, E: 2.1e11, I: 1e-4, F: -1e4}
	chk.Scalar(tst, "tip deflection", 1e-15, c.TipDeflection(), -0.01984126984126984)
	chk.Scalar(tst, "tip rotation  ", 1e-15, c.TipRotation(), -0.005952380952380952)
	chk.Scalar(tst, "root moment   ", 1e-9, c.Moment(0), -5e4)
	chk.Scalar(tst, "tip moment    ", 1e-15, c.Moment(5), 0)
}

func Test_ssbeam01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ssbeam01. simply supported beam under UDL")

	b := SimpleBeamUDL{L: 6, E: 3e10, I: 2e-4, W: 11412.64}
	chk.Scalar(tst, "mid deflection", 1e-10, b.MidDeflection(), 0.03209805)
	chk.Scalar(tst, "mid moment    ", 1e-9, b.MidMoment(), 51356.88)
	chk.Scalar(tst, "end shear     ", 1e-9, b.EndShear(), 34237.92)
}

func Test_rod01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rod01. axial rod elongation")

	r := AxialRod{L: 2, E: 2e11, A: 0.01, P: 1e5}
	chk.Scalar(tst, "elongation", 1e-17, r.Elongation(), 1e-4)
}
