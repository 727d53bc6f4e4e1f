// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/cogentcore/citeproc/csl"
)

// pageRangeFormatName is the config/flag spelling of a
// [csl.PageRangeFormat].
type pageRangeFormatName string

const (
	formatExpanded    pageRangeFormatName = "expanded"
	formatMinimal     pageRangeFormatName = "minimal"
	formatMinimalTwo  pageRangeFormatName = "minimal-two"
	formatChicago     pageRangeFormatName = "chicago"
)

func (n pageRangeFormatName) resolve() (csl.PageRangeFormat, error) {
	switch n {
	case "", formatExpanded:
		return csl.PageRangeExpanded, nil
	case formatMinimal:
		return csl.PageRangeMinimal, nil
	case formatMinimalTwo:
		return csl.PageRangeMinimalTwo, nil
	case formatChicago:
		return csl.PageRangeChicago, nil
	}
	return 0, fmt.Errorf("citeproc: unknown page-range format %q", string(n))
}

// buildParameters derives the rendering [csl.Parameters] this run uses
// from cfg, starting from the CSL 1.0.1 baseline.
func buildParameters(cfg Config) (*csl.Parameters, error) {
	p := csl.DefaultParameters()
	f, err := cfg.pageRangeFormat().resolve()
	if err != nil {
		return nil, err
	}
	p.PageRangeFormat = f
	p.Names.And = csl.AndText
	p.Names.EtAlMin = 4
	p.Names.EtAlUseFirst = 3
	return p, nil
}

// buildComparator returns the locale-aware sort comparator cfg asks
// for, or nil to preserve input order (spec §4.11: comparator is
// user-provided).
func buildComparator(cfg Config, loc *csl.Locale) csl.Comparator {
	if !cfg.Collate {
		return nil
	}
	return csl.CollationComparator(loc.Tag())
}
