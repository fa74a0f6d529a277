// Copyright 2016 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// frame section shape variants
const (
	SecRectangle = "rectangle"
	SecCircle    = "circle"
	SecTube      = "tube"
	SecBox       = "box"
	SecI         = "I"
	SecGeneric   = "generic" // properties given directly, no dimensions
)

// FrameSection holds the shape, dimensions and derived geometric
// properties of a prismatic member cross-section. All dimensions in
// metres.
//
//   rectangle         I-section          box              tube
//                       b = Bf                              ___
//   +-------+   ___   ########   ___   #########         ,'   `.
//   |       |    tf|  ########    |    #   ___ #        /   ___ \
//   |       |   ---      ##       |    #  |   |#   h   |   / r \ |
//   |       | h          ##       | d  #  |   |#       |   \___/ |
//   |       |            ##       |    #  |___|#        \       /
//   |       |   ---   ########    |    #     t #         `.___,'
//   +-------+    tf|_ ########   _|_   #########           Do
//       b             -->| |<-- tw
//
// Derived values: A, the principal moments of inertia Iy and Iz
// (Iz pairs with bending in the local y direction, Iy with the local z
// direction), the torsional constant Jtt, and the section moduli Sy, Sz.
type FrameSection struct {

	// input
	Name string `json:"name"`
	Type string `json:"type"` // "rectangle", "circle", "tube", "box", "I" or "generic"
	Mat  string `json:"material"`

	// dimensions
	B  float64 `json:"b,omitempty"`  // width: rectangle, box
	H  float64 `json:"h,omitempty"`  // height: rectangle, box
	D  float64 `json:"d,omitempty"`  // outer diameter (circle, tube) or depth (I)
	T  float64 `json:"t,omitempty"`  // wall thickness: tube, box
	Bf float64 `json:"bf,omitempty"` // flange width: I
	Tf float64 `json:"tf,omitempty"` // flange thickness: I
	Tw float64 `json:"tw,omitempty"` // web thickness: I

	// derived for the shape families; direct input for "generic"
	A   float64 `json:"A,omitempty"`   // cross-sectional area
	Iy  float64 `json:"Iy,omitempty"`  // moment of inertia governing bending in the local z direction
	Iz  float64 `json:"Iz,omitempty"`  // moment of inertia governing bending in the local y direction
	Jtt float64 `json:"Jtt,omitempty"` // torsional constant
	Sy  float64 `json:"Sy,omitempty"`  // section modulus paired with Iy
	Sz  float64 `json:"Sz,omitempty"`  // section modulus paired with Iz
}

// DeriveProps computes A, Iy, Iz, Jtt, Sy and Sz from the shape
// dimensions. Any non-positive needed dimension makes the section
// invalid.
func (o *FrameSection) DeriveProps() (err error) {
	switch o.Type {

	case SecRectangle:
		b, h := o.B, o.H
		if b <= 0 || h <= 0 {
			return chk.Err("invalid section %q: rectangle dimensions must be positive: b=%g, h=%g", o.Name, b, h)
		}
		o.A = b * h
		o.Iy = b * h * h * h / 12.0
		o.Iz = h * b * b * b / 12.0
		tmin := math.Min(b, h)
		o.Jtt = b * h * tmin * tmin / 12.0 // approximate
		o.Sy = o.Iy / (h / 2.0)
		o.Sz = o.Iz / (b / 2.0)

	case SecCircle:
		if o.D <= 0 {
			return chk.Err("invalid section %q: circle diameter must be positive: d=%g", o.Name, o.D)
		}
		r := o.D / 2.0
		r4 := r * r * r * r
		o.A = math.Pi * r * r
		o.Iy = math.Pi * r4 / 4.0
		o.Iz = o.Iy
		o.Jtt = math.Pi * r4 / 2.0
		o.Sy = o.Iy / r
		o.Sz = o.Sy

	case SecTube:
		if o.D <= 0 || o.T <= 0 {
			return chk.Err("invalid section %q: tube dimensions must be positive: d=%g, t=%g", o.Name, o.D, o.T)
		}
		ro := o.D / 2.0
		ri := ro - o.T
		if ri <= 0 {
			return chk.Err("invalid section %q: tube wall t=%g swallows the radius %g", o.Name, o.T, ro)
		}
		ro4 := ro * ro * ro * ro
		ri4 := ri * ri * ri * ri
		o.A = math.Pi * (ro*ro - ri*ri)
		o.Iy = math.Pi * (ro4 - ri4) / 4.0
		o.Iz = o.Iy
		o.Jtt = math.Pi * (ro4 - ri4) / 2.0
		o.Sy = o.Iy / ro
		o.Sz = o.Sy

	case SecBox:
		b, h, t := o.B, o.H, o.T
		if b <= 0 || h <= 0 || t <= 0 {
			return chk.Err("invalid section %q: box dimensions must be positive: b=%g, h=%g, t=%g", o.Name, b, h, t)
		}
		bi := b - 2.0*t
		hi := h - 2.0*t
		if bi <= 0 || hi <= 0 {
			return chk.Err("invalid section %q: box wall t=%g swallows the cavity (b=%g, h=%g)", o.Name, t, b, h)
		}
		o.A = b*h - bi*hi
		o.Iy = (b*h*h*h - bi*hi*hi*hi) / 12.0
		o.Iz = (h*b*b*b - hi*bi*bi*bi) / 12.0
		am := (b - t) * (h - t) // enclosed area of the mid-thickness line
		pm := 2.0 * ((b - t) + (h - t))
		o.Jtt = 4.0 * am * am * t / pm // thin-walled closed section
		o.Sy = o.Iy / (h / 2.0)
		o.Sz = o.Iz / (b / 2.0)

	case SecI:
		d, bf, tw, tf := o.D, o.Bf, o.Tw, o.Tf
		if d <= 0 || bf <= 0 || tw <= 0 || tf <= 0 {
			return chk.Err("invalid section %q: I-section dimensions must be positive: d=%g, bf=%g, tw=%g, tf=%g", o.Name, d, bf, tw, tf)
		}
		hw := d - 2.0*tf
		if hw <= 0 {
			return chk.Err("invalid section %q: flanges tf=%g swallow the depth d=%g", o.Name, tf, d)
		}
		o.A = 2.0*bf*tf + hw*tw
		o.Iy = bf*d*d*d/12.0 - (bf-tw)*hw*hw*hw/12.0
		o.Iz = 2.0*tf*bf*bf*bf/12.0 + hw*tw*tw*tw/12.0
		o.Jtt = (2.0*bf*tf*tf*tf + hw*tw*tw*tw) / 3.0 // approximate
		o.Sy = o.Iy / (d / 2.0)
		o.Sz = o.Iz / (bf / 2.0)

	case SecGeneric:
		if o.A <= 0 || o.Iy <= 0 || o.Iz <= 0 || o.Jtt <= 0 {
			return chk.Err("invalid section %q: generic properties must be positive: A=%g, Iy=%g, Iz=%g, Jtt=%g", o.Name, o.A, o.Iy, o.Iz, o.Jtt)
		}

	default:
		return chk.Err("invalid section %q: shape type %q is unavailable", o.Name, o.Type)
	}
	return
}

// String returns a one-line description of the derived properties
func (o *FrameSection) String() string {
	return io.Sf("%s (%s): A=%g, Iy=%g, Iz=%g, Jtt=%g, Sy=%g, Sz=%g", o.Name, o.Type, o.A, o.Iy, o.Iz, o.Jtt, o.Sy, o.Sz)
}
