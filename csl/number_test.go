// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPageRangeChicago(t *testing.T) {
	cases := []struct {
		name     string
		min, max uint32
		want     string
	}{
		{"minimal-two", 321, 328, "321–28"},
		{"expanded-large", 1496, 1504, "1496–1504"},
		{"expanded-round-hundred", 100, 104, "100–104"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := RenderPageRange(c.min, c.max, PageRangeChicago, "–")
			assert.Equal(t, c.want, got)
		})
	}
}

func TestRenderPageRangeFallsBackWhenMinGreaterThanMax(t *testing.T) {
	got := RenderPageRange(50, 10, PageRangeMinimal, "–")
	assert.Equal(t, "50–10", got)
}

func TestRenderPageRangeMinimal(t *testing.T) {
	assert.Equal(t, "321–8", RenderPageRange(321, 328, PageRangeMinimal, "–"))
}

func TestRenderPageRangeExpanded(t *testing.T) {
	assert.Equal(t, "321–328", RenderPageRange(321, 328, PageRangeExpanded, "–"))
}

func TestRenderNumberSeparators(t *testing.T) {
	loc := NewLocale("en-US")
	n := NumberVar{Min: 3, Max: 5, Separator: SeparatorAmpersand}
	got, err := RenderNumber(loc, n, "", NumberNumeric, GenderNone, "-", PageRangeExpanded)
	assert.NoError(t, err)
	assert.Equal(t, "3 & 5", got)

	n.Separator = SeparatorComma
	got, err = RenderNumber(loc, n, "", NumberNumeric, GenderNone, "-", PageRangeExpanded)
	assert.NoError(t, err)
	assert.Equal(t, "3, 5", got)

	n.Separator = SeparatorHyphen
	got, err = RenderNumber(loc, n, "", NumberNumeric, GenderNone, "-", PageRangeExpanded)
	assert.NoError(t, err)
	assert.Equal(t, "3-5", got)
}

func TestRenderNumberPageUsesPageRangeCollapsing(t *testing.T) {
	loc := NewLocale("en-US")
	n := NumberVar{Min: 321, Max: 328, Separator: SeparatorHyphen}
	got, err := RenderNumber(loc, n, TermPage, NumberNumeric, GenderNone, "–", PageRangeChicago)
	assert.NoError(t, err)
	assert.Equal(t, "321–28", got)
}

func TestRenderNumberSingleValue(t *testing.T) {
	loc := NewLocale("en-US")
	n := NumberVar{Min: 7, Max: 7}
	got, err := RenderNumber(loc, n, "", NumberOrdinal, GenderNone, "-", PageRangeExpanded)
	assert.NoError(t, err)
	assert.Equal(t, "7", got) // no ordinal terms registered on this bare locale
}

func TestToRomanBounds(t *testing.T) {
	assert.Equal(t, "", toRoman(0))
	assert.Equal(t, "", toRoman(5001))
	assert.Equal(t, "MCMXCIV", toRoman(1994))
}
