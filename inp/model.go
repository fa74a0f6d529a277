// Copyright 2016 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input model: joints, frames, shells,
// materials, sections, load patterns/cases/combinations and raw loads.
// Records are read from a JSON file or assembled directly by the caller;
// the analysis engine borrows the model read-only.
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// hard capacity limits enforced at submission
const (
	MaxJoints = 2000 // maximum number of joints in a model
	MaxFrames = 2000 // maximum number of frame members in a model
)

// Restraint holds the 6-DOF support mask of a joint. A nil *Restraint on
// a joint means fully free; all six true means fully fixed.
type Restraint struct {
	Ux bool `json:"ux"`
	Uy bool `json:"uy"`
	Uz bool `json:"uz"`
	Rx bool `json:"rx"`
	Ry bool `json:"ry"`
	Rz bool `json:"rz"`
}

// Fixed returns a fully restrained mask
func Fixed() *Restraint {
	return &Restraint{true, true, true, true, true, true}
}

// Pinned returns a mask with translations fixed and rotations free
func Pinned() *Restraint {
	return &Restraint{Ux: true, Uy: true, Uz: true}
}

// Bit returns the restraint flag of local DOF d (0..5) ordered
// (ux, uy, uz, rx, ry, rz)
func (o *Restraint) Bit(d int) bool {
	switch d {
	case 0:
		return o.Ux
	case 1:
		return o.Uy
	case 2:
		return o.Uz
	case 3:
		return o.Rx
	case 4:
		return o.Ry
	case 5:
		return o.Rz
	}
	chk.Panic("restraint DOF index %d is out of range", d)
	return false
}

// Joint holds a nodal point. Coordinates are in metres. Internal joints
// created by mesh refinement carry negative ids; user joints must be
// non-negative.
type Joint struct {
	Id        int        `json:"id"`
	X         float64    `json:"x"`
	Y         float64    `json:"y"`
	Z         float64    `json:"z"`
	Restraint *Restraint `json:"restraint,omitempty"`
}

// Frame holds a prismatic member connecting two joints. Orientation is
// the β-angle in degrees rotating the local principal axes about the
// member axis. Offsets are passed through to consumers and ignored by
// the solver core.
type Frame struct {
	Id          int        `json:"id"`
	JointI      int        `json:"jointI"`
	JointJ      int        `json:"jointJ"`
	Section     string     `json:"section"`
	Orientation float64    `json:"orientation"`
	OffsetI     [3]float64 `json:"offsetI"`
	OffsetJ     [3]float64 `json:"offsetJ"`
}

// Shell holds a polygonal plate element. Shells receive area loads and
// feed the plane-stress analyses; they are not assembled into the 3D
// frame stiffness.
type Shell struct {
	Id      int     `json:"id"`
	Joints  []int   `json:"joints"`
	Section string  `json:"section"`
	Offset  float64 `json:"offset"`
}

// ShellSection holds thickness and material of a shell
type ShellSection struct {
	Name      string  `json:"name"`
	Mat       string  `json:"material"`
	Thickness float64 `json:"thickness"`
}

// LoadPattern names a group of raw loads. Category is one of "Dead",
// "Live", "Rain", "Wind", "Earthquake". SelfWeight adds gravity loads
// computed from member density and area.
type LoadPattern struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	SelfWeight bool   `json:"selfWeight"`
}

// PatternEntry is one scaled pattern inside a load case
type PatternEntry struct {
	Pattern string  `json:"pattern"`
	Scale   float64 `json:"scale"`
}

// LoadCase is a scaled sum of patterns
type LoadCase struct {
	Name     string         `json:"name"`
	Patterns []PatternEntry `json:"patterns"`
}

// CaseEntry is one scaled case inside a combination
type CaseEntry struct {
	Case  string  `json:"case"`
	Scale float64 `json:"scale"`
}

// LoadCombination is a scaled sum of cases
type LoadCombination struct {
	Name  string      `json:"name"`
	Cases []CaseEntry `json:"cases"`
}

// PointLoad holds six force/moment components applied at a joint.
// Forces in kN; moments in kN·m.
type PointLoad struct {
	Name    string  `json:"name"`
	Joint   int     `json:"joint"`
	Pattern string  `json:"pattern"`
	Fx      float64 `json:"fx"`
	Fy      float64 `json:"fy"`
	Fz      float64 `json:"fz"`
	Mx      float64 `json:"mx"`
	My      float64 `json:"my"`
	Mz      float64 `json:"mz"`
}

// distributed load direction tags
const (
	DirGlobalX = "GlobalX"
	DirGlobalY = "GlobalY"
	DirGlobalZ = "GlobalZ"
	DirLocalX  = "LocalX"
	DirLocalY  = "LocalY"
	DirLocalZ  = "LocalZ"
	DirGravity = "Gravity"
)

// distributed load kinds
const (
	LoadUniform     = "Uniform"
	LoadTrapezoidal = "Trapezoidal"
)

// DistributedFrameLoad holds a line load along a member. Magnitudes in
// kN/m; distances in metres along the member, clamped into [0, L] at
// assembly time.
type DistributedFrameLoad struct {
	Name          string  `json:"name"`
	Frame         int     `json:"frame"`
	Pattern       string  `json:"pattern"`
	Dir           string  `json:"dir"`
	Kind          string  `json:"kind"`
	StartMag      float64 `json:"startMag"`
	EndMag        float64 `json:"endMag"`
	StartDistance float64 `json:"startDistance"`
	EndDistance   float64 `json:"endDistance"`
}

// AreaLoad holds a pressure on a shell, lumped to the shell joints in
// global -Y by equal tributary share. Pressure in kN/m².
type AreaLoad struct {
	Name     string  `json:"name"`
	Shell    int     `json:"shell"`
	Pattern  string  `json:"pattern"`
	Pressure float64 `json:"pressure"`
}

// Model is the complete structural model consumed by the engine
type Model struct {
	Materials        []*Material             `json:"materials"`
	FrameSections    []*FrameSection         `json:"frameSections"`
	ShellSections    []*ShellSection         `json:"shellSections"`
	LoadPatterns     []*LoadPattern          `json:"loadPatterns"`
	LoadCases        []*LoadCase             `json:"loadCases"`
	LoadCombinations []*LoadCombination      `json:"loadCombinations"`
	Joints           []*Joint                `json:"joints"`
	Frames           []*Frame                `json:"frames"`
	Shells           []*Shell                `json:"shells"`
	PointLoads       []*PointLoad            `json:"pointLoads"`
	DistLoads        []*DistributedFrameLoad `json:"distributedFrameLoads"`
	AreaLoads        []*AreaLoad             `json:"areaLoads"`
}

// ReadModel reads a model from a JSON file, derives section properties
// and checks the model invariants
func ReadModel(path string) (o *Model, err error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read model file %q:\n%v", path, err)
	}
	o = new(Model)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot decode model file %q:\n%v", path, err)
	}
	err = o.Derive()
	if err != nil {
		return nil, err
	}
	err = o.Check()
	if err != nil {
		return nil, err
	}
	return
}

// Derive computes derived quantities: shear moduli of materials missing
// G and the geometric properties of all frame sections
func (o *Model) Derive() (err error) {
	for _, m := range o.Materials {
		m.Derive()
	}
	for _, s := range o.FrameSections {
		err = s.DeriveProps()
		if err != nil {
			return
		}
	}
	return
}

// Check verifies the model invariants: unique ids, resolvable
// references, capacity limits
func (o *Model) Check() (err error) {

	// capacity
	if len(o.Joints) > MaxJoints {
		return chk.Err("model is too large: %d joints exceed the limit of %d", len(o.Joints), MaxJoints)
	}
	if len(o.Frames) > MaxFrames {
		return chk.Err("model is too large: %d frames exceed the limit of %d", len(o.Frames), MaxFrames)
	}

	// joints
	jids := make(map[int]bool)
	for _, j := range o.Joints {
		if j.Id < 0 {
			return chk.Err("joint id %d is negative; negative ids are reserved for internal joints", j.Id)
		}
		if jids[j.Id] {
			return chk.Err("joint id %d is duplicated", j.Id)
		}
		jids[j.Id] = true
	}

	// frames
	fids := make(map[int]bool)
	for _, f := range o.Frames {
		if fids[f.Id] {
			return chk.Err("frame id %d is duplicated", f.Id)
		}
		fids[f.Id] = true
		if !jids[f.JointI] || !jids[f.JointJ] {
			return chk.Err("frame %d references unknown joint (%d or %d)", f.Id, f.JointI, f.JointJ)
		}
	}

	// shells
	for _, s := range o.Shells {
		if len(s.Joints) < 3 {
			return chk.Err("shell %d must reference at least 3 joints", s.Id)
		}
		for _, jid := range s.Joints {
			if !jids[jid] {
				return chk.Err("shell %d references unknown joint %d", s.Id, jid)
			}
		}
	}

	// point loads
	for _, p := range o.PointLoads {
		if !jids[p.Joint] {
			return chk.Err("point load %q references unknown joint %d", p.Name, p.Joint)
		}
	}
	return
}

// GetJoint returns the joint with given id; nil if not found
func (o *Model) GetJoint(id int) *Joint {
	for _, j := range o.Joints {
		if j.Id == id {
			return j
		}
	}
	return nil
}

// GetFrame returns the frame with given id; nil if not found
func (o *Model) GetFrame(id int) *Frame {
	for _, f := range o.Frames {
		if f.Id == id {
			return f
		}
	}
	return nil
}

// GetShell returns the shell with given id; nil if not found
func (o *Model) GetShell(id int) *Shell {
	for _, s := range o.Shells {
		if s.Id == id {
			return s
		}
	}
	return nil
}

// GetMaterial returns the material with given name; nil if not found
func (o *Model) GetMaterial(name string) *Material {
	for _, m := range o.Materials {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// GetFrameSection returns the frame section with given name; nil if not found
func (o *Model) GetFrameSection(name string) *FrameSection {
	for _, s := range o.FrameSections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// GetShellSection returns the shell section with given name; nil if not found
func (o *Model) GetShellSection(name string) *ShellSection {
	for _, s := range o.ShellSections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// GetPattern returns the load pattern with given name; nil if not found
func (o *Model) GetPattern(name string) *LoadPattern {
	for _, p := range o.LoadPatterns {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// GetCase returns the load case with given name; nil if not found
func (o *Model) GetCase(name string) *LoadCase {
	for _, c := range o.LoadCases {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// GetCombination returns the load combination with given name; nil if not found
func (o *Model) GetCombination(name string) *LoadCombination {
	for _, c := range o.LoadCombinations {
		if c.Name == name {
			return c
		}
	}
	return nil
}
