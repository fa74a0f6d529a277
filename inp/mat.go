// Copyright 2016 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/io"
)

// material type variants
const (
	MatSteel    = "steel"
	MatConcrete = "concrete"
	MatLinElast = "linelast"
)

// Material holds material data. The solver core touches only E, G and
// Rho; the strength parameters belong to the steel/concrete variants and
// are carried for code checks performed outside this engine.
//
// Units: E and G in MPa, Rho in kg/m³
type Material struct {

	// common elastic constants
	Name string  `json:"name"`
	Type string  `json:"type"` // "steel", "concrete" or "linelast"
	E    float64 `json:"E"`
	G    float64 `json:"G"`
	Nu   float64 `json:"nu"`
	Rho  float64 `json:"rho"`

	// steel variant
	Fy float64 `json:"fy,omitempty"`
	Fu float64 `json:"fu,omitempty"`

	// concrete variant
	Fc float64 `json:"fc,omitempty"`
	Ft float64 `json:"ft,omitempty"`
}

// Derive fills the shear modulus from E and nu when G is not given
func (o *Material) Derive() {
	if o.G == 0 && o.Nu > 0 {
		o.G = o.E / (2.0 * (1.0 + o.Nu))
	}
}

// String returns a one-line description of the material
func (o *Material) String() string {
	return io.Sf("%s (%s): E=%g MPa, G=%g MPa, nu=%g, rho=%g kg/m³", o.Name, o.Type, o.E, o.G, o.Nu, o.Rho)
}
