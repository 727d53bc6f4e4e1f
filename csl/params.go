// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csl

import "github.com/jinzhu/copier"

// FontStyle, FontVariant, FontWeight, TextDecoration, and VerticalAlign
// are inherited formatting attributes carried on [Parameters] and on
// every [TextRun]/[ComposedRun] produced under them (spec §3).
type (
	FontStyle      int
	FontVariant    int
	FontWeight     int
	TextDecoration int
	VerticalAlign  int
)

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique
)

const (
	FontVariantNormal FontVariant = iota
	FontVariantSmallCaps
)

const (
	FontWeightNormal FontWeight = iota
	FontWeightBold
	FontWeightLight
)

const (
	DecorationNone TextDecoration = iota
	DecorationUnderline
)

const (
	VAlignBaseline VerticalAlign = iota
	VAlignSup
	VAlignSub
)

// NameAsSortOrder controls per-name inversion in the name renderer (spec
// §3, §4.9).
type NameAsSortOrder int

const (
	SortOrderNone NameAsSortOrder = iota
	SortOrderFirst
	SortOrderAll
)

// AndStyle selects how the name list's final conjunction is rendered
// (spec §3, §4.9).
type AndStyle int

const (
	AndNone AndStyle = iota
	AndText
	AndSymbol
)

// DelimiterPrecedes controls whether name_delimiter precedes the et-al
// marker or the "and" conjunction (spec §3, §4.9).
type DelimiterPrecedes int

const (
	DelimiterAlways DelimiterPrecedes = iota
	DelimiterNever
	DelimiterContextual
	DelimiterAfterInvertedName
)

// DemoteNonDroppingParticle controls where a non-dropping particle moves
// to under inversion (spec §3, §4.9).
type DemoteNonDroppingParticle int

const (
	DemoteDisplayAndSort DemoteNonDroppingParticle = iota
	DemoteSortOnly
	DemoteNever
)

// NameFormat selects Long/Short/Count rendering of a names list (spec §3,
// §4.9).
type NameFormat int

const (
	NameFormatLong NameFormat = iota
	NameFormatShort
	NameFormatCount
)

// PageRangeFormat selects the page-range collapsing policy (spec §4.7).
type PageRangeFormat int

const (
	PageRangeExpanded PageRangeFormat = iota
	PageRangeMinimal
	PageRangeMinimalTwo
	PageRangeChicago
)

// NameOptions bundles the name-rendering settings of [Parameters] (spec
// §3).
type NameOptions struct {
	NameFormat                NameFormat
	NameAsSortOrder           NameAsSortOrder
	And                       AndStyle
	EtAlMin                   int
	EtAlUseFirst              int
	EtAlUseLast               bool
	DelimiterPrecedesLast     DelimiterPrecedes
	DelimiterPrecedesEtAl     DelimiterPrecedes
	Initialize                bool
	InitializeWith            string
	InitializeWithHyphen      bool
	DemoteNonDroppingParticle DemoteNonDroppingParticle
}

// Parameters is the immutable formatting context threaded down the
// rendering tree (spec §3, §5). Each rendering element may derive a
// child Parameters via Clone + mutation; callers never mutate a shared
// instance in place once passed down.
type Parameters struct {
	FontStyle      FontStyle
	FontVariant    FontVariant
	FontWeight     FontWeight
	TextDecoration TextDecoration
	VerticalAlign  VerticalAlign

	NamesDelimiter string
	NameDelimiter  string
	SortSeparator  string

	Names NameOptions

	PageRangeFormat PageRangeFormat

	// QuoteDepth tracks nesting to select inner vs outer quote glyphs
	// (spec §4.4 step 3).
	QuoteDepth int
}

// DefaultParameters returns the CSL 1.0.1 baseline settings.
func DefaultParameters() *Parameters {
	return &Parameters{
		NamesDelimiter: ", ",
		NameDelimiter:  " ",
		SortSeparator:  ", ",
		Names: NameOptions{
			NameFormat:            NameFormatLong,
			NameAsSortOrder:       SortOrderNone,
			And:                   AndNone,
			EtAlMin:               0,
			EtAlUseFirst:          1,
			DelimiterPrecedesLast: DelimiterContextual,
			DelimiterPrecedesEtAl: DelimiterContextual,
			InitializeWith:        "",
			DemoteNonDroppingParticle: DemoteDisplayAndSort,
		},
		PageRangeFormat: PageRangeExpanded,
	}
}

// Clone returns a deep copy suitable for a child rendering element to
// mutate without affecting the parent's context (spec §3 Lifecycles,
// §9 "thread it by value... cheap clone of a small record"). Uses
// jinzhu/copier since Parameters is a plain value record with no cycles.
func (p *Parameters) Clone() *Parameters {
	cp := &Parameters{}
	_ = copier.Copy(cp, p)
	return cp
}

// WithQuoteDepth returns a clone with QuoteDepth incremented, used when
// entering a quoted ComposedRun so nested quotes pick inner glyphs.
func (p *Parameters) WithQuoteDepth() *Parameters {
	cp := p.Clone()
	cp.QuoteDepth = p.QuoteDepth + 1
	return cp
}
