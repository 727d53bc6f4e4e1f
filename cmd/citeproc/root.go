// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig      string
	flagFixture     string
	flagLocale      string
	flagForceLocale bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "citeproc",
		Short:         "citeproc renders citations and bibliographies from a CSL-style rendering core",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&flagFixture, "items", "", "path to a YAML item fixture (required)")
	root.PersistentFlags().StringVar(&flagLocale, "locale", "en-US", "BCP-47 locale tag to request")
	root.PersistentFlags().BoolVar(&flagForceLocale, "force-locale", false, "use --locale even when the style names a default")

	root.AddCommand(newCiteCmd())
	root.AddCommand(newBibliographyCmd())
	return root
}

var errFixtureRequired = errors.New("--items is required")

func requireFixture() error {
	if flagFixture == "" {
		return errFixtureRequired
	}
	return nil
}

func fatal(err error) {
	slog.Error("citeproc", "err", err)
	os.Exit(1)
}
