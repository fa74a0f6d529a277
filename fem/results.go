// Copyright 2016 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"time"
)

// JointDisp holds the six displacement components of a joint.
// Translations in metres, rotations in radians.
type JointDisp struct {
	Ux float64 `json:"ux"`
	Uy float64 `json:"uy"`
	Uz float64 `json:"uz"`
	Rx float64 `json:"rx"`
	Ry float64 `json:"ry"`
	Rz float64 `json:"rz"`
}

// StationForce holds the six internal force components at a station:
// axial (tension positive), the two shears, torsion and the two bending
// moments about the local axes. Forces in N, moments in N·m.
type StationForce struct {
	P  float64 `json:"p"`
	V2 float64 `json:"v2"`
	V3 float64 `json:"v3"`
	T  float64 `json:"t"`
	M2 float64 `json:"m2"`
	M3 float64 `json:"m3"`
}

// Reaction holds the aggregated support forces of one restrained joint.
// Forces in N, moments in N·m.
type Reaction struct {
	Joint int     `json:"joint"`
	Fx    float64 `json:"fx"`
	Fy    float64 `json:"fy"`
	Fz    float64 `json:"fz"`
	Mx    float64 `json:"mx"`
	My    float64 `json:"my"`
	Mz    float64 `json:"mz"`
}

// FrameRes holds the station-wise results along one input member:
// relative positions t in [0,1], the displacement at each station and
// the six internal force components there. Station count is Segments+1.
type FrameRes struct {
	Stations []float64       `json:"stations"`
	Disps    []*JointDisp    `json:"displacements"`
	Forces   []*StationForce `json:"forces"`
}

// Results is the outcome of analysing one load case or combination.
// The record is always structurally complete: on failure IsValid is
// false, the arrays are empty and Log carries the reason.
type Results struct {
	CaseId          string              `json:"loadCaseId"`
	Displacements   map[int]*JointDisp  `json:"displacements"`
	FrameResults    map[int]*FrameRes   `json:"frameDetailedResults"`
	Reactions       []*Reaction         `json:"reactions"`
	MaxDisplacement float64             `json:"maxDisplacement"`
	IsValid         bool                `json:"isValid"`
	Timestamp       int64               `json:"timestamp"`
	Log             []string            `json:"log"`
}

// newResults returns an empty valid result shell for the given id
func newResults(id string) (o *Results) {
	o = new(Results)
	o.CaseId = id
	o.Displacements = make(map[int]*JointDisp)
	o.FrameResults = make(map[int]*FrameRes)
	o.IsValid = true
	o.Timestamp = time.Now().UnixMilli()
	return
}

// newInvalidResults returns an invalid result carrying the given log
// messages
func newInvalidResults(id string, log ...string) (o *Results) {
	o = newResults(id)
	o.IsValid = false
	o.Log = append(o.Log, log...)
	return
}
