// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csl

import (
	"fmt"
	"strconv"
)

// NumberTerm names the variable's associated term, used to decide page
// specific semantics (spec §4.7).
type NumberTerm string

const TermPage NumberTerm = "page"

// RenderNumber formats a NumberVar per spec §4.7: a single value, a
// page-range collapse (when term is Page and Separator is '-'), or a
// generic composite "<min><sep><max>".
func RenderNumber(loc LocaleProvider, n NumberVar, term NumberTerm, format NumberFormat, gender Gender, pageDelimiter string, pageFormat PageRangeFormat) (string, error) {
	if !n.IsRange() {
		return loc.FormatNumber(n.Min, format, gender)
	}
	if n.Separator == SeparatorHyphen && term == TermPage {
		return RenderPageRange(n.Min, n.Max, pageFormat, pageDelimiter), nil
	}
	min, err := loc.FormatNumber(n.Min, format, gender)
	if err != nil {
		return "", err
	}
	max, err := loc.FormatNumber(n.Max, format, gender)
	if err != nil {
		return "", err
	}
	switch n.Separator {
	case SeparatorAmpersand:
		return min + " & " + max, nil
	case SeparatorComma:
		return min + ", " + max, nil
	default: // SeparatorHyphen, or any other value falls back to bare hyphen
		return min + "-" + max, nil
	}
}

// RenderPageRange collapses a page range per the given policy (spec
// §4.7). If min > max it falls back to Expanded, per spec.
func RenderPageRange(min, max uint32, format PageRangeFormat, delimiter string) string {
	if delimiter == "" {
		delimiter = "–"
	}
	if min > max {
		format = PageRangeExpanded
	}
	from := strconv.FormatUint(uint64(min), 10)
	to := strconv.FormatUint(uint64(max), 10)

	delta := trailingDeltaDigits(from, to)

	var kept int
	switch resolvePolicy(format, min, from, to, delta) {
	case PageRangeExpanded:
		kept = len(to)
	case PageRangeMinimal:
		kept = delta
	case PageRangeMinimalTwo:
		kept = max_(delta, 2)
	}
	if kept > len(to) {
		kept = len(to)
	}
	keptDigits := to[len(to)-kept:]
	return fmt.Sprintf("%s%s%s", from, delimiter, keptDigits)
}

// resolvePolicy expands Chicago into one of the other three concrete
// policies per spec §4.7's decision table; other policies pass through
// unchanged.
func resolvePolicy(format PageRangeFormat, min uint32, from, to string, delta int) PageRangeFormat {
	if format != PageRangeChicago {
		return format
	}
	switch {
	case min < 100:
		return PageRangeExpanded
	case min >= 1000 && len(to)-delta <= 1:
		return PageRangeExpanded
	case min%100 == 0:
		return PageRangeExpanded
	case min%100 < 10:
		return PageRangeMinimal
	default:
		return PageRangeMinimalTwo
	}
}

// trailingDeltaDigits computes delta: the number of trailing digits kept
// from to, counted from the most significant end where from and to
// differ (spec §4.7).
func trailingDeltaDigits(from, to string) int {
	fr := []byte(from)
	tr := []byte(to)
	// Right-align by padding the shorter string's front (comparison is
	// digit-by-digit from the least significant end).
	n := len(tr)
	m := len(fr)
	delta := n
	for i := 0; i < n; i++ {
		// position from the most significant end of `to`
		toDigit := tr[i]
		var fromDigit byte
		fromIdx := i - (n - m)
		if fromIdx >= 0 && fromIdx < m {
			fromDigit = fr[fromIdx]
		} else {
			fromDigit = 0 // no corresponding digit in from: forces this and all trailing digits kept
		}
		if fromDigit != toDigit {
			delta = n - i
			break
		}
	}
	return delta
}

func max_(a, b int) int {
	if a > b {
		return a
	}
	return b
}
