// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/charts/easing"
	"github.com/spf13/cobra"
)

func newEasingCmd() *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "easing [function...]",
		Short: "Print the values of easing functions",
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := easing.FunctionsValues()
			if len(args) > 0 {
				fs = make([]easing.Functions, len(args))
				for i, a := range args {
					if err := fs[i].SetString(a); err != nil {
						return err
					}
				}
			}
			steps = max(steps, 1)
			w := cmd.OutOrStdout()
			for _, f := range fs {
				fmt.Fprintf(w, "%s", f)
				for i := 0; i <= steps; i++ {
					fmt.Fprintf(w, " %.4f", easing.Apply(float64(i)/float64(steps), f))
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 4, "number of steps from 0 to 1")
	return cmd
}
