// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csl

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKeyKind selects how a sort key is derived from an item (spec
// §4.11).
type SortKeyKind int

const (
	SortByVariable SortKeyKind = iota
	SortByMacro
)

// SortKeySpec describes one key of a multi-key sort (spec §3
// Parameters, §4.11).
type SortKeySpec struct {
	Kind     SortKeyKind
	Variable string          // for SortByVariable
	Macro    func() (Result, error) // for SortByMacro
	Descending bool
}

// dateSortString renders a DateVar as "YYYYMMDD-YYYYMMDD" with zeroes
// for unknown parts (spec §4.11).
func dateSortString(d DateVar) string {
	part := func(y int32, m, day int) string {
		return fmt.Sprintf("%04d%02d%02d", y, m, day)
	}
	return part(d.YearFrom, d.MonthFrom, d.DayFrom) + "-" + part(d.YearTo, d.MonthTo, d.DayTo)
}

// numberSortString is the open-question default for numeric sort keys
// (spec §9): zero-padded decimal of min, then max.
func numberSortString(n NumberVar) string {
	return fmt.Sprintf("%010d-%010d", n.Min, n.Max)
}

// namesSortString joins each name's plain-text sort form with commas
// (spec §4.11).
func namesSortString(names []NameOrLiteral) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}

// GenerateSortKey produces one item's sort key per spec §4.11. loc and
// params are only used along the by-macro path, to compose the macro's
// Result into a Run before stripping formatting.
func GenerateSortKey(item ItemAccessor, loc LocaleProvider, params *Parameters, spec SortKeySpec) (string, error) {
	if spec.Kind == SortByMacro {
		r, err := spec.Macro()
		if err != nil {
			return "", err
		}
		run := r.ToComposedRun(loc, params)
		return PlainText(run), nil
	}
	v, ok := item.Get(spec.Variable)
	if !ok {
		return "", nil
	}
	switch v.Kind {
	case KindText:
		return v.Text, nil
	case KindDate:
		if v.IsDateLiteral() {
			return v.DateLiteral, nil
		}
		return dateSortString(v.Date), nil
	case KindNumber:
		return numberSortString(v.Number), nil
	case KindNames:
		return namesSortString(v.Names), nil
	}
	return "", nil
}

// MergeSortKeys concatenates multiple key strings with a separator that
// cannot appear inside a single key's content in practice for this
// core's own key formats, keeping multi-key comparisons well-defined
// without a full composite-key type.
func MergeSortKeys(keys []string) string {
	return strings.Join(keys, "\x00")
}

// SortableEntry pairs an Entry with its pre-computed composite sort key
// and original input position. [StableSortEntries] orders by SortKey
// only and gets its stability from sort.SliceStable (spec invariant 6);
// it does not read Position.
type SortableEntry struct {
	Entry    Entry
	SortKey  string
	Position int
}

// Comparator compares two sort keys, typically via locale-aware
// collation; used by [StableSortEntries].
type Comparator func(a, b string) int

// CollationComparator returns a [Comparator] backed by
// golang.org/x/text/collate for the given locale tag (spec §4.11 "a
// user-provided comparator, typically locale-aware collation").
func CollationComparator(tag language.Tag) Comparator {
	c := collate.New(tag)
	return func(a, b string) int { return c.CompareString(a, b) }
}

// StableSortEntries sorts entries by SortKey using cmp, preserving
// input order for equal keys (spec invariant 6, §8 testable property 6).
func StableSortEntries(entries []SortableEntry, cmp Comparator) {
	sort.SliceStable(entries, func(i, j int) bool {
		return cmp(entries[i].SortKey, entries[j].SortKey) < 0
	})
}
