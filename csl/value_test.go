// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumberVarSingle(t *testing.T) {
	n, ok := ParseNumberVar("42")
	require.True(t, ok)
	assert.Equal(t, NumberVar{Min: 42, Max: 42, Separator: SeparatorHyphen}, n)
}

func TestParseNumberVarRangeSeparators(t *testing.T) {
	n, ok := ParseNumberVar("10-20")
	require.True(t, ok)
	assert.Equal(t, NumberVar{Min: 10, Max: 20, Separator: SeparatorHyphen}, n)

	n, ok = ParseNumberVar("10 & 20")
	require.True(t, ok)
	assert.Equal(t, NumberVar{Min: 10, Max: 20, Separator: SeparatorAmpersand}, n)

	n, ok = ParseNumberVar("10, 20")
	require.True(t, ok)
	assert.Equal(t, NumberVar{Min: 10, Max: 20, Separator: SeparatorComma}, n)
}

func TestParseNumberVarRejectsNonNumeric(t *testing.T) {
	_, ok := ParseNumberVar("abc")
	assert.False(t, ok)
	_, ok = ParseNumberVar("")
	assert.False(t, ok)
}

func TestDateVarOrdered(t *testing.T) {
	d := DateVar{YearFrom: 1999, MonthFrom: 3, YearTo: 1999, MonthTo: 5}
	assert.True(t, d.Ordered())

	d2 := DateVar{YearFrom: 2000, YearTo: 1999}
	assert.False(t, d2.Ordered())
}

func TestNameOrLiteralStringSkipsEmptyComponents(t *testing.T) {
	nl := NameOrLiteral{Name: &Name{Family: "Doe", Suffix: "Jr."}}
	assert.Equal(t, "Doe Jr.", nl.String())

	lit := NameOrLiteral{Literal: "United Nations"}
	assert.Equal(t, "United Nations", lit.String())
	assert.True(t, lit.IsLiteral())
}

func TestResolveShortPrefersShortVariant(t *testing.T) {
	item := NewMapItem("article").
		Set("title", TextValue("Long Title")).
		Set("title-short", TextValue("Short"))
	v, ok := resolveShort("title", item.Get)
	require.True(t, ok)
	assert.Equal(t, "Short", v.Text)
}

func TestResolveShortFallsBackToFull(t *testing.T) {
	item := NewMapItem("article").Set("title", TextValue("Long Title"))
	v, ok := resolveShort("title", item.Get)
	require.True(t, ok)
	assert.Equal(t, "Long Title", v.Text)
}

func TestMapItemGetAsNumberParsesTextVariable(t *testing.T) {
	item := NewMapItem("article").Set("page", TextValue("100-104"))
	n, ok := item.GetAsNumber("page")
	require.True(t, ok)
	assert.Equal(t, uint32(100), n.Min)
	assert.Equal(t, uint32(104), n.Max)
}

func TestMapItemGetAsNamesTreatsLiteralAsSingleEntry(t *testing.T) {
	item := NewMapItem("article").Set("author", TextValue("United Nations"))
	names, ok := item.GetAsNames("author")
	require.True(t, ok)
	require.Len(t, names, 1)
	assert.True(t, names[0].IsLiteral())
	assert.Equal(t, "United Nations", names[0].Literal)
}
