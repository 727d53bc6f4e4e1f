// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/cogentcore/citeproc/csl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoItems(t *testing.T) *csl.ItemList {
	t.Helper()
	path := writeFixture(t, sampleFixture)
	list, err := loadFixture(path)
	require.NoError(t, err)
	return list
}

func TestDemoStyleCitationSingleItem(t *testing.T) {
	items := demoItems(t)
	loc := builtinEnglishLocale()
	resolver := csl.NewLocaleResolver(loc)
	params, err := buildParameters(defaultConfig())
	require.NoError(t, err)

	item, ok := items.Get("smith2020")
	require.True(t, ok)
	run, err := csl.GenerateCitation(demoStyle(), resolver, []csl.ItemAccessor{item}, "en-US", false, "; ", nil, params)
	require.NoError(t, err)
	assert.Equal(t, "(Jane Smith, 2020)", csl.PlainText(run))
}

func TestDemoStyleBibliographyIncludesLabelAndPageRange(t *testing.T) {
	items := demoItems(t)
	loc := builtinEnglishLocale()
	resolver := csl.NewLocaleResolver(loc)
	params, err := buildParameters(defaultConfig())
	require.NoError(t, err)

	runs, err := csl.GenerateBibliography(demoStyle(), resolver, items.Items(), "en-US", false, nil, params)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	var smith, jones string
	for _, r := range runs {
		text := csl.PlainText(r)
		switch {
		case text[:4] == "Jane":
			smith = text
		case text[:6] == "Robert":
			jones = text
		}
	}
	assert.Equal(t, "Jane Smith. A Treatise on Testing. 2020, pp. 10–20", smith)
	assert.Equal(t, "Robert Jones; Amy Lee (editor). Early Findings. 1999", jones)
}

func TestDemoStyleBibliographySortsByCollatedAuthorKey(t *testing.T) {
	items := demoItems(t)
	loc := builtinEnglishLocale()
	resolver := csl.NewLocaleResolver(loc)
	cfg := defaultConfig()
	params, err := buildParameters(cfg)
	require.NoError(t, err)
	cmp := buildComparator(cfg, loc)

	runs, err := csl.GenerateBibliography(demoStyle(), resolver, items.Items(), "en-US", false, cmp, params)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	// sort key is the "author" variable's plain-text form: "Jones Robert" < "Smith Jane"
	assert.Contains(t, csl.PlainText(runs[0]), "Robert Jones")
	assert.Contains(t, csl.PlainText(runs[1]), "Jane Smith")
}
