// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/cogentcore/citeproc/csl"
	"github.com/spf13/cobra"
)

func newBibliographyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bibliography",
		Short: "render every item in the fixture as a sorted bibliography",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireFixture(); err != nil {
				return err
			}
			cfg, err := loadConfig(flagConfig)
			if err != nil {
				return err
			}
			items, err := loadFixture(flagFixture)
			if err != nil {
				return err
			}
			loc := builtinEnglishLocale()
			resolver := csl.NewLocaleResolver(loc)
			params, err := buildParameters(cfg)
			if err != nil {
				return err
			}
			cmp := buildComparator(cfg, loc)
			runs, err := csl.GenerateBibliography(demoStyle(), resolver, items.Items(), flagLocale, flagForceLocale || cfg.ForceLocale, cmp, params)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range runs {
				fmt.Fprintln(out, csl.PlainText(r))
			}
			return nil
		},
	}
	return cmd
}
