// Copyright 2016 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the command line interface of the frame
// analysis engine
package cmd

import (
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goframe",
	Short: "3D frame structural analysis",
	Long: `goframe - linear static analysis of 3D skeletal structures

Given a model file with joints, members, sections, materials and load
definitions, goframe computes nodal displacements, member internal force
diagrams and support reactions for load cases and combinations.

Use 'goframe analyze' to run an analysis or 'goframe sections' to list
the derived section properties of a model.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		io.PfRed("%v\n", err)
		os.Exit(1)
	}
}
