// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocaleTermFallsBackPluralToSingular(t *testing.T) {
	l := NewLocale("en-US")
	l.SetTerm("editor", TermLong, false, "editor")
	v, ok := l.Term("editor", TermLong, true)
	require.True(t, ok)
	assert.Equal(t, "editor", v)
}

func TestLocaleFormatNumberRoman(t *testing.T) {
	l := NewLocale("en-US")
	v, err := l.FormatNumber(1994, NumberRoman, GenderNone)
	require.NoError(t, err)
	assert.Equal(t, "MCMXCIV", v)
}

func TestLocaleFormatNumberRomanOutOfRangeErrors(t *testing.T) {
	l := NewLocale("en-US")
	_, err := l.FormatNumber(0, NumberRoman, GenderNone)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLocaleFormatOrdinalFallsBackToBareNumber(t *testing.T) {
	l := NewLocale("en-US")
	assert.Equal(t, "3", l.FormatOrdinal(3, GenderNone))
	l.SetTerm("ordinal-3", TermLong, false, "rd")
	assert.Equal(t, "3rd", l.FormatOrdinal(3, GenderNone))
}

func TestLocaleResolverExactDialectThenLanguageThenInvariant(t *testing.T) {
	invariant := NewLocale("en")
	en := NewLocale("en")
	enGB := NewLocale("en-GB")
	r := NewLocaleResolver(invariant).Register(en).Register(enGB)

	got, err := r.Resolve("en-GB")
	require.NoError(t, err)
	assert.Same(t, enGB, got)

	got, err = r.Resolve("en-CA")
	require.NoError(t, err)
	assert.Same(t, en, got)

	got, err = r.Resolve("fr-FR")
	require.NoError(t, err)
	assert.Same(t, invariant, got)
}

func TestLocaleResolverRequiresInvariant(t *testing.T) {
	r := NewLocaleResolver(nil)
	_, err := r.Resolve("en-US")
	assert.ErrorIs(t, err, ErrLocaleNotFound)
}
