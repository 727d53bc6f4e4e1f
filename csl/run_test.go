// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToComposedRunSuppressesAffixesWhenEmpty(t *testing.T) {
	loc := NewLocale("en-US")
	r := Leaf("x", "", false).WithAffixes("(", ")")
	run := r.ToComposedRun(loc, DefaultParameters()).(*ComposedRun)
	assert.Equal(t, "", run.Prefix)
	assert.Equal(t, "", run.Suffix)
}

func TestToComposedRunEmitsAffixesWhenNonEmpty(t *testing.T) {
	loc := NewLocale("en-US")
	r := Leaf("x", "hi", false).WithAffixes("(", ")")
	run := r.ToComposedRun(loc, DefaultParameters()).(*ComposedRun)
	assert.Equal(t, "(", run.Prefix)
	assert.Equal(t, ")", run.Suffix)
}

func TestToComposedRunByVariablePropagatesUpward(t *testing.T) {
	inner := Leaf("x", "hi", true)
	outer := Composed("wrap", inner)
	assert.True(t, outer.ByVariable)
}

func TestApplyDelimiterOnlyBetweenNonEmpty(t *testing.T) {
	loc := NewLocale("en-US")
	p := DefaultParameters()
	runs := []Run{
		newTextRun("a", p, false),
		newTextRun("", p, false),
		newTextRun("b", p, false),
		newTextRun("", p, false),
		newTextRun("c", p, false),
	}
	out := ApplyDelimiter(runs, ", ", p)
	var sb string
	for _, r := range out {
		sb += PlainText(r)
	}
	assert.Equal(t, "a, b, c", sb)
	_ = loc
}

func TestApplyDelimiterEmptyDelimiterLeavesUnchanged(t *testing.T) {
	p := DefaultParameters()
	runs := []Run{newTextRun("a", p, false), newTextRun("b", p, false)}
	out := ApplyDelimiter(runs, "", p)
	assert.Len(t, out, 2)
}

func TestTitleCaseCSLPreservesMinorWordsExceptFirstLast(t *testing.T) {
	assert.Equal(t, "The Lord of the Rings", titleCaseCSL("the lord of the rings"))
}

func TestTitleCaseCSLPreservesInnerCaps(t *testing.T) {
	assert.Equal(t, "A Tale of McDonald", titleCaseCSL("a tale of McDonald"))
}

func TestCapitalizeEachWord(t *testing.T) {
	assert.Equal(t, "Hello World", capitalizeEachWord("hello world"))
}

func TestQuoteGlyphsEvenOddDepth(t *testing.T) {
	loc := NewLocale("en-US")
	o, c := quoteGlyphs(loc, 0)
	assert.Equal(t, "“", o)
	assert.Equal(t, "”", c)
	o, c = quoteGlyphs(loc, 1)
	assert.Equal(t, "‘", o)
	assert.Equal(t, "’", c)
}

func TestResultIsResultEmptyRecursesChildren(t *testing.T) {
	r := Composed("g", Leaf("a", "", false), Leaf("b", "", false))
	assert.True(t, r.IsResultEmpty())
	r2 := Composed("g", Leaf("a", "", false), Leaf("b", "x", false))
	assert.False(t, r2.IsResultEmpty())
}
