// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestGenerateSortKeyByVariableKinds(t *testing.T) {
	loc := NewLocale("en-US")
	item := NewMapItem("book").
		Set("title", TextValue("Zebras")).
		Set("issued", DateValue(DateVar{YearFrom: 1999, YearTo: 1999})).
		Set("volume", NumberValue(NumberVar{Min: 3, Max: 3})).
		Set("author", NamesValue([]NameOrLiteral{{Name: &Name{Family: "Doe", Given: "Jane"}}}))

	k, err := GenerateSortKey(item, loc, DefaultParameters(), SortKeySpec{Kind: SortByVariable, Variable: "title"})
	require.NoError(t, err)
	assert.Equal(t, "Zebras", k)

	k, err = GenerateSortKey(item, loc, DefaultParameters(), SortKeySpec{Kind: SortByVariable, Variable: "issued"})
	require.NoError(t, err)
	assert.Equal(t, "19990000-19990000", k)

	k, err = GenerateSortKey(item, loc, DefaultParameters(), SortKeySpec{Kind: SortByVariable, Variable: "volume"})
	require.NoError(t, err)
	assert.Equal(t, "0000000003-0000000003", k)

	k, err = GenerateSortKey(item, loc, DefaultParameters(), SortKeySpec{Kind: SortByVariable, Variable: "author"})
	require.NoError(t, err)
	assert.Equal(t, "Doe Jane", k)
}

func TestGenerateSortKeyMissingVariableIsEmpty(t *testing.T) {
	loc := NewLocale("en-US")
	item := NewMapItem("book")
	k, err := GenerateSortKey(item, loc, DefaultParameters(), SortKeySpec{Kind: SortByVariable, Variable: "title"})
	require.NoError(t, err)
	assert.Equal(t, "", k)
}

func TestStableSortEntriesPreservesInputOrderForEqualKeys(t *testing.T) {
	entries := []SortableEntry{
		{SortKey: "b", Position: 0},
		{SortKey: "a", Position: 1},
		{SortKey: "a", Position: 2},
		{SortKey: "c", Position: 3},
	}
	cmp := func(a, b string) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
	StableSortEntries(entries, cmp)
	got := make([]int, len(entries))
	for i, e := range entries {
		got[i] = e.Position
	}
	assert.Equal(t, []int{1, 2, 0, 3}, got)
}

func TestCollationComparator(t *testing.T) {
	cmp := CollationComparator(language.AmericanEnglish)
	assert.Less(t, cmp("apple", "banana"), 0)
	assert.Equal(t, 0, cmp("apple", "apple"))
}

func TestMergeSortKeys(t *testing.T) {
	got := MergeSortKeys([]string{"a", "b"})
	assert.Equal(t, "a\x00b", got)
}
