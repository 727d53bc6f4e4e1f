// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderGroupSuppressesWhenByVariableDescendantsEmpty(t *testing.T) {
	loc := NewLocale("en-US")
	children := []Result{
		Leaf("text-value", "p. ", false),
		Leaf("text-variable", "", true), // missing "page"
	}
	got := RenderGroup(children, "", "", "", CaseNone)
	run := got.ToComposedRun(loc, DefaultParameters())
	assert.True(t, run.IsEmpty())
	assert.Equal(t, "", PlainText(run))
}

func TestRenderGroupNotSuppressedWithoutByVariableDescendants(t *testing.T) {
	loc := NewLocale("en-US")
	children := []Result{
		Leaf("text-value", "", false),
		Leaf("text-value", "", false),
	}
	got := RenderGroup(children, "", "prefix-", "", CaseNone)
	run := got.ToComposedRun(loc, DefaultParameters())
	// No by-variable descendant at all: the rule in §4.5 never fires, even
	// though every child happens to be empty.
	assert.False(t, got.ByVariable)
	_ = run
}

func TestRenderGroupAppliesDelimiterBetweenNonEmptyChildren(t *testing.T) {
	loc := NewLocale("en-US")
	children := []Result{
		Leaf("text-variable", "Smith", true),
		Leaf("text-variable", "", true),
		Leaf("text-variable", "2020", true),
	}
	got := RenderGroup(children, ", ", "", "", CaseNone)
	run := got.ToComposedRun(loc, DefaultParameters())
	assert.Equal(t, "Smith, 2020", PlainText(run))
}

func TestRenderChooseSelectsFirstMatchingBranch(t *testing.T) {
	branches := []ChooseBranch{
		{Condition: func() bool { return false }, Render: func() (Result, error) { return Leaf("a", "no", false), nil }},
		{Condition: func() bool { return true }, Render: func() (Result, error) { return Leaf("b", "yes", false), nil }},
		{Condition: nil, Render: func() (Result, error) { return Leaf("c", "else", false), nil }},
	}
	got, err := RenderChoose(branches)
	require.NoError(t, err)
	loc := NewLocale("en-US")
	run := got.ToComposedRun(loc, DefaultParameters())
	assert.Equal(t, "yes", PlainText(run))
}

func TestRenderChooseFallsBackToElse(t *testing.T) {
	branches := []ChooseBranch{
		{Condition: func() bool { return false }, Render: func() (Result, error) { return Leaf("a", "no", false), nil }},
		{Condition: nil, Render: func() (Result, error) { return Leaf("c", "else", false), nil }},
	}
	got, err := RenderChoose(branches)
	require.NoError(t, err)
	loc := NewLocale("en-US")
	run := got.ToComposedRun(loc, DefaultParameters())
	assert.Equal(t, "else", PlainText(run))
}

func TestRenderChooseNoMatchNoElseIsEmpty(t *testing.T) {
	branches := []ChooseBranch{
		{Condition: func() bool { return false }, Render: func() (Result, error) { return Leaf("a", "no", false), nil }},
	}
	got, err := RenderChoose(branches)
	require.NoError(t, err)
	assert.True(t, got.IsResultEmpty())
}
