// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/cogentcore/citeproc/csl"
	"github.com/spf13/cobra"
)

func newCiteCmd() *cobra.Command {
	var delimiter string
	cmd := &cobra.Command{
		Use:   "cite [ids...]",
		Short: "render a single in-text citation grouping one or more items",
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
			selected, err := selectItems(items, args)
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
			run, err := csl.GenerateCitation(demoStyle(), resolver, selected, flagLocale, flagForceLocale || cfg.ForceLocale, delimiter, cmp, params)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), csl.PlainText(run))
			return nil
		},
	}
	cmd.Flags().StringVar(&delimiter, "delimiter", "; ", "delimiter joining multiple items in one citation")
	return cmd
}

// selectItems returns items in ids order, or every fixture item in
// file order when ids is empty.
func selectItems(list *csl.ItemList, ids []string) ([]csl.ItemAccessor, error) {
	if len(ids) == 0 {
		return list.Items(), nil
	}
	out := make([]csl.ItemAccessor, len(ids))
	for i, id := range ids {
		item, ok := list.Get(id)
		if !ok {
			return nil, fmt.Errorf("citeproc: unknown item id %q", id)
		}
		out[i] = item
	}
	return out, nil
}
