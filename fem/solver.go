// Copyright 2016 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/goframe/inp"
)

// Solver runs case and combination analyses on one model and keeps the
// result store. The model is borrowed read-only; the refined mesh,
// assembled matrices and factorisation live in the Domain and are shared
// by all cases of the model. Calls are synchronous; no exception or
// panic crosses this boundary — failures come back as invalid results
// with log entries.
type Solver struct {
	Model *inp.Model
	Dom   *Domain
	Store map[string]*Results // case/combination name => results

	prepDone bool
	prepErr  error
}

// NewSolver returns a solver for the given model
func NewSolver(model *inp.Model) (o *Solver) {
	o = new(Solver)
	o.Model = model
	o.Store = make(map[string]*Results)
	return
}

// prepare derives section properties, checks the model invariants and
// assembles the domain. Runs once; the outcome is cached.
func (o *Solver) prepare() error {
	if o.prepDone {
		return o.prepErr
	}
	o.prepDone = true
	if o.Model == nil {
		o.prepErr = chk.Err("no model given")
		return o.prepErr
	}
	if err := o.Model.Derive(); err != nil {
		o.prepErr = err
		return o.prepErr
	}
	if err := o.Model.Check(); err != nil {
		o.prepErr = err
		return o.prepErr
	}
	dom, err := NewDomain(o.Model)
	if err != nil {
		o.prepErr = err
		return o.prepErr
	}
	o.Dom = dom
	return nil
}

// Analyze runs the linear static analysis of one load case and returns
// its result record. Results are cached: repeated calls with the same
// case name return the stored record.
func (o *Solver) Analyze(caseName string) (res *Results) {

	// cached?
	if r, ok := o.Store[caseName]; ok {
		return r
	}

	// resolve case
	lc := o.Model.GetCase(caseName)
	if lc == nil {
		return newInvalidResults(caseName, io.Sf("load case %q is unknown", caseName))
	}

	// model preparation and assembly
	if err := o.prepare(); err != nil {
		return newInvalidResults(caseName, io.Sf("%v", err))
	}

	// load vector and solution
	F, warns := o.Dom.BuildCase(lc)
	u, err := o.Dom.Solve(F)
	if err != nil {
		res = newInvalidResults(caseName, o.Dom.Log...)
		res.Log = append(res.Log, warns...)
		res.Log = append(res.Log, io.Sf("%v", err))
		return
	}

	// recovery
	res = newResults(caseName)
	res.Log = append(res.Log, o.Dom.Log...)
	res.Log = append(res.Log, warns...)
	o.Dom.Recover(res, u)
	res.Log = append(res.Log, io.Sf("case %q analysed: %d free DOFs, max displacement = %g m", caseName, len(o.Dom.Free), res.MaxDisplacement))
	o.Store[caseName] = res
	return
}

// Results returns the stored record for a case or combination name; nil
// if it has not been analysed yet
func (o *Solver) Results(name string) *Results {
	return o.Store[name]
}
