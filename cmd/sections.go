// Copyright 2016 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/cpmech/goframe/inp"
)

var sectionsModel string

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Print the derived properties of the model's frame sections",
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := inp.ReadModel(sectionsModel)
		if err != nil {
			return err
		}
		tbl := tablewriter.NewWriter(os.Stdout)
		tbl.SetHeader([]string{"name", "type", "material", "A [m²]", "Iy [m⁴]", "Iz [m⁴]", "J [m⁴]", "Sy [m³]", "Sz [m³]"})
		for _, s := range model.FrameSections {
			tbl.Append([]string{
				s.Name, s.Type, s.Mat,
				io.Sf("%.6g", s.A), io.Sf("%.6g", s.Iy), io.Sf("%.6g", s.Iz),
				io.Sf("%.6g", s.Jtt), io.Sf("%.6g", s.Sy), io.Sf("%.6g", s.Sz),
			})
		}
		tbl.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
	sectionsCmd.Flags().StringVarP(&sectionsModel, "model", "m", "", "model JSON file [required]")
	sectionsCmd.MarkFlagRequired("model")
}
