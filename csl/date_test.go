// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthLocale() *Locale {
	l := NewLocale("en-US")
	names := map[string]string{
		"month-01": "January", "month-02": "February", "month-03": "March",
		"month-04": "April", "month-05": "May", "month-06": "June",
		"month-07": "July", "month-08": "August", "month-09": "September",
		"month-10": "October", "month-11": "November", "month-12": "December",
	}
	for key, name := range names {
		l.SetTerm(key, TermLong, false, name)
	}
	return l
}

func TestRenderDateRangeYearOnly(t *testing.T) {
	loc := NewLocale("en-US")
	parts := []DatePart{{Name: PartYear, Format: DateNumeric}}
	from := dateComponents{Year: 1999}
	to := dateComponents{Year: 2001}
	r, err := RenderDateRange(loc, parts, "", from, to)
	require.NoError(t, err)
	run := r.ToComposedRun(loc, DefaultParameters())
	assert.Equal(t, "1999–2001", PlainText(run))
}

func TestRenderDateRangeMonthSameYear(t *testing.T) {
	loc := monthLocale()
	parts := []DatePart{
		{Name: PartMonth, Format: DateLong, Suffix: " "},
		{Name: PartYear, Format: DateNumeric},
	}
	from := dateComponents{Year: 1999, Month: 3}
	to := dateComponents{Year: 1999, Month: 5}
	r, err := RenderDateRange(loc, parts, "", from, to)
	require.NoError(t, err)
	run := r.ToComposedRun(loc, DefaultParameters())
	assert.Equal(t, "March–May 1999", PlainText(run))
}

func TestRenderDateRangeEqualEndpointsMatchesSingle(t *testing.T) {
	loc := NewLocale("en-US")
	parts := []DatePart{{Name: PartYear, Format: DateNumeric}}
	c := dateComponents{Year: 2020}
	rangeResult, err := RenderDateRange(loc, parts, "", c, c)
	require.NoError(t, err)
	singleResult, err := RenderDateSingle(loc, parts, "", c)
	require.NoError(t, err)
	rangeRun := rangeResult.ToComposedRun(loc, DefaultParameters())
	singleRun := singleResult.ToComposedRun(loc, DefaultParameters())
	assert.Equal(t, PlainText(singleRun), PlainText(rangeRun))
}

func TestFormatYearPartBCAD(t *testing.T) {
	loc := NewLocale("en-US")
	loc.SetTerm("bc", TermLong, false, " BC")
	loc.SetTerm("ad", TermLong, false, " AD")
	assert.Equal(t, "", FormatYearPart(loc, 0, DateNumeric))
	assert.Equal(t, "44 BC", FormatYearPart(loc, -44, DateNumeric))
	assert.Equal(t, "500 AD", FormatYearPart(loc, 500, DateNumeric))
	assert.Equal(t, "2020", FormatYearPart(loc, 2020, DateNumeric))
	assert.Equal(t, "20", FormatYearPart(loc, 2020, DateShort))
}

func TestFormatDayPartOrdinalLimitedToDay1(t *testing.T) {
	loc := NewLocale("en-US")
	loc.SetLimitDayOrdinalsToDay1(true)
	loc.SetTerm("ordinal-1", TermLong, false, "st")
	assert.Equal(t, "1st", FormatDayPart(loc, 1, GenderNone, DateOrdinal))
	assert.Equal(t, "2", FormatDayPart(loc, 2, GenderNone, DateOrdinal))
}

func TestFilterPartsByPrecision(t *testing.T) {
	parts := []DatePart{{Name: PartYear}, {Name: PartMonth}, {Name: PartDay}}
	assert.Len(t, FilterPartsByPrecision(parts, PrecisionYear), 1)
	assert.Len(t, FilterPartsByPrecision(parts, PrecisionYearMonth), 2)
	assert.Len(t, FilterPartsByPrecision(parts, PrecisionYearMonthDay), 3)
}

func TestMergeDatePartsKeepsLocalePrefixSuffix(t *testing.T) {
	locale := []DatePart{{Name: PartYear, Format: DateNumeric, Prefix: "(", Suffix: ")"}}
	overrides := []DatePart{{Name: PartYear, Format: DateShort, TextCase: CaseUpper}}
	merged := MergeDateParts(locale, overrides)
	require.Len(t, merged, 1)
	assert.Equal(t, DateShort, merged[0].Format)
	assert.Equal(t, CaseUpper, merged[0].TextCase)
	assert.Equal(t, "(", merged[0].Prefix)
	assert.Equal(t, ")", merged[0].Suffix)
}
