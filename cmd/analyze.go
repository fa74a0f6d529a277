// Copyright 2016 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"
	"sort"

	"github.com/cpmech/gosl/io"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/cpmech/goframe/fem"
	"github.com/cpmech/goframe/inp"
)

var (
	analyzeModel string
	analyzeCase  string
	analyzeCombo bool
	analyzeFull  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the linear static analysis of one load case or combination",
	Long: `Analyze one load case (or, with --combo, one load combination) of a
model file and print joint displacements, support reactions and the
per-member internal force envelopes.

Examples:
  goframe analyze -m model.json -c DL
  goframe analyze -m model.json -c "1.2D+1.6L" --combo`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzeModel, "model", "m", "", "model JSON file [required]")
	analyzeCmd.Flags().StringVarP(&analyzeCase, "case", "c", "", "load case (or combination) name [required]")
	analyzeCmd.Flags().BoolVar(&analyzeCombo, "combo", false, "treat the name as a load combination")
	analyzeCmd.Flags().BoolVar(&analyzeFull, "stations", false, "print station-wise member forces")
	analyzeCmd.MarkFlagRequired("model")
	analyzeCmd.MarkFlagRequired("case")
}

func runAnalyze(cmd *cobra.Command, args []string) error {

	model, err := inp.ReadModel(analyzeModel)
	if err != nil {
		return err
	}

	sol := fem.NewSolver(model)
	var res *fem.Results
	if analyzeCombo {
		res = sol.AnalyzeCombination(analyzeCase)
	} else {
		res = sol.Analyze(analyzeCase)
	}

	// log and validity
	for _, msg := range res.Log {
		io.Pf("  %s\n", msg)
	}
	if !res.IsValid {
		io.PfRed("analysis of %q failed\n", analyzeCase)
		os.Exit(1)
	}
	io.PfGreen("analysis of %q succeeded\n\n", analyzeCase)

	// joint displacements [mm, mrad]
	jids := make([]int, 0, len(res.Displacements))
	for jid := range res.Displacements {
		jids = append(jids, jid)
	}
	sort.Ints(jids)
	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"joint", "ux [mm]", "uy [mm]", "uz [mm]", "rx [mrad]", "ry [mrad]", "rz [mrad]"})
	for _, jid := range jids {
		d := res.Displacements[jid]
		tbl.Append([]string{
			io.Sf("%d", jid),
			io.Sf("%.4f", d.Ux*1e3), io.Sf("%.4f", d.Uy*1e3), io.Sf("%.4f", d.Uz*1e3),
			io.Sf("%.4f", d.Rx*1e3), io.Sf("%.4f", d.Ry*1e3), io.Sf("%.4f", d.Rz*1e3),
		})
	}
	tbl.Render()
	io.Pf("max displacement = %.6f mm\n\n", res.MaxDisplacement*1e3)

	// reactions [kN, kN·m]
	if len(res.Reactions) > 0 {
		tbl = tablewriter.NewWriter(os.Stdout)
		tbl.SetHeader([]string{"joint", "Fx [kN]", "Fy [kN]", "Fz [kN]", "Mx [kN·m]", "My [kN·m]", "Mz [kN·m]"})
		for _, r := range res.Reactions {
			tbl.Append([]string{
				io.Sf("%d", r.Joint),
				io.Sf("%.3f", r.Fx/1e3), io.Sf("%.3f", r.Fy/1e3), io.Sf("%.3f", r.Fz/1e3),
				io.Sf("%.3f", r.Mx/1e3), io.Sf("%.3f", r.My/1e3), io.Sf("%.3f", r.Mz/1e3),
			})
		}
		tbl.Render()
		io.Pf("\n")
	}

	// member force envelopes (or full station tables)
	fids := make([]int, 0, len(res.FrameResults))
	for fid := range res.FrameResults {
		fids = append(fids, fid)
	}
	sort.Ints(fids)
	if analyzeFull {
		for _, fid := range fids {
			fr := res.FrameResults[fid]
			io.Pf("frame %d:\n", fid)
			tbl = tablewriter.NewWriter(os.Stdout)
			tbl.SetHeader([]string{"t", "P [kN]", "V2 [kN]", "V3 [kN]", "T [kN·m]", "M2 [kN·m]", "M3 [kN·m]"})
			for k, f := range fr.Forces {
				tbl.Append([]string{
					io.Sf("%.2f", fr.Stations[k]),
					io.Sf("%.3f", f.P/1e3), io.Sf("%.3f", f.V2/1e3), io.Sf("%.3f", f.V3/1e3),
					io.Sf("%.3f", f.T/1e3), io.Sf("%.3f", f.M2/1e3), io.Sf("%.3f", f.M3/1e3),
				})
			}
			tbl.Render()
		}
	} else {
		tbl = tablewriter.NewWriter(os.Stdout)
		tbl.SetHeader([]string{"frame", "Pmax [kN]", "V2max [kN]", "M3max [kN·m]"})
		for _, fid := range fids {
			fr := res.FrameResults[fid]
			var pm, vm, mm float64
			for _, f := range fr.Forces {
				pm = maxAbs(pm, f.P)
				vm = maxAbs(vm, f.V2)
				mm = maxAbs(mm, f.M3)
			}
			tbl.Append([]string{
				io.Sf("%d", fid),
				io.Sf("%.3f", pm/1e3), io.Sf("%.3f", vm/1e3), io.Sf("%.3f", mm/1e3),
			})
		}
		tbl.Render()
	}
	return nil
}

func maxAbs(cur, v float64) float64 {
	if v < 0 {
		v = -v
	}
	if v > cur {
		return v
	}
	return cur
}
