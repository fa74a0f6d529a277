// Copyright 2016 The Goframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

// Version is the release tag of the tool
const Version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		io.Pf("goframe v%s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
