// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csl

import (
	"fmt"
	"strconv"
)

// DatePrecision selects which components of a [DateVar] a rendering
// request cares about (spec §4.8).
type DatePrecision int

const (
	PrecisionYear DatePrecision = iota
	PrecisionYearMonth
	PrecisionYearMonthDay
)

// FilterPartsByPrecision drops date parts finer than precision permits.
func FilterPartsByPrecision(parts []DatePart, precision DatePrecision) []DatePart {
	out := make([]DatePart, 0, len(parts))
	for _, p := range parts {
		switch p.Name {
		case PartMonth:
			if precision == PrecisionYear {
				continue
			}
		case PartDay:
			if precision != PrecisionYearMonthDay {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// MergeDateParts merges a locale's default date-part list with
// scope-local overrides matched by Name: overrides take Format and
// TextCase, the locale keeps Prefix and Suffix (spec §4.8).
func MergeDateParts(localeParts, overrides []DatePart) []DatePart {
	result := make([]DatePart, len(localeParts))
	copy(result, localeParts)
	for i, lp := range result {
		for _, ov := range overrides {
			if ov.Name == lp.Name {
				result[i].Format = ov.Format
				result[i].TextCase = ov.TextCase
			}
		}
	}
	return result
}

// FormatYearPart renders a Year part per spec §4.8: nothing when year is
// zero, otherwise |year| with a locale "bc"/"ad" suffix, or the short
// two-digit form.
func FormatYearPart(loc LocaleProvider, year int32, format DatePartFormat) string {
	if year == 0 {
		return ""
	}
	abs := year
	if abs < 0 {
		abs = -abs
	}
	if format == DateShort {
		return fmt.Sprintf("%02d", abs%100)
	}
	s := strconv.Itoa(int(abs))
	if year < 0 {
		if bc, ok := loc.Term("bc", TermLong, false); ok {
			s += bc
		}
	} else if year < 1000 {
		if ad, ok := loc.Term("ad", TermLong, false); ok {
			s += ad
		}
	}
	return s
}

// FormatMonthPart renders a Month part, falling back to the season terms
// when month is absent but season is present (spec §4.8).
func FormatMonthPart(loc LocaleProvider, month int, season Season, format DatePartFormat) (string, error) {
	if month >= 1 && month <= 12 {
		switch format {
		case DateNumeric:
			return strconv.Itoa(month), nil
		case DateNumericLeadingZeros:
			return fmt.Sprintf("%02d", month), nil
		case DateLong, DateShort:
			tf := TermLong
			if format == DateShort {
				tf = TermShort
			}
			name := fmt.Sprintf("month-%02d", month)
			if v, ok := loc.Term(name, tf, false); ok {
				return v, nil
			}
			if v, ok := loc.Term(name, TermLong, false); ok {
				return v, nil
			}
			return "", ErrUnsupportedFormat
		}
		return "", ErrUnsupportedFormat
	}
	if season != NoSeason {
		tf := TermLong
		if format == DateShort {
			tf = TermShort
		}
		name := fmt.Sprintf("season-%02d", int(season))
		if v, ok := loc.Term(name, tf, false); ok {
			return v, nil
		}
		if v, ok := loc.Term(name, TermLong, false); ok {
			return v, nil
		}
	}
	return "", nil
}

// FormatDayPart renders a Day part, honoring LimitDayOrdinalsToDay1 for
// the Ordinal format (spec §4.8).
func FormatDayPart(loc LocaleProvider, day int, monthGender Gender, format DatePartFormat) string {
	if day == 0 {
		return ""
	}
	switch format {
	case DateNumericLeadingZeros:
		return fmt.Sprintf("%02d", day)
	case DateOrdinal:
		if loc.LimitDayOrdinalsToDay1() && day != 1 {
			return strconv.Itoa(day)
		}
		return loc.FormatOrdinal(uint32(day), monthGender)
	default:
		return strconv.Itoa(day)
	}
}

// dateComponents is one endpoint's raw calendar values, used internally
// to drive both single-date and range rendering.
type dateComponents struct {
	Year   int32
	Month  int
	Day    int
	Season Season
}

// renderPart renders one DatePart against a single endpoint, returning
// the leaf Result (possibly empty) with the part's prefix/suffix/case
// attached. monthGender supplies the current month's term gender for
// ordinal-day rendering (spec §4.8 Day).
func renderPart(loc LocaleProvider, p DatePart, c dateComponents, monthGender Gender) (Result, error) {
	var text string
	var err error
	switch p.Name {
	case PartYear:
		text = FormatYearPart(loc, c.Year, p.Format)
	case PartMonth:
		text, err = FormatMonthPart(loc, c.Month, c.Season, p.Format)
	case PartDay:
		text = FormatDayPart(loc, c.Day, monthGender, p.Format)
	}
	if err != nil {
		return Result{}, err
	}
	r := Leaf("date-part", text, true)
	if text != "" {
		r = r.WithAffixes(p.Prefix, p.Suffix)
	}
	r = r.WithTextCase(p.TextCase)
	return r, nil
}

// RenderDateSingle renders one date endpoint's parts, joined by
// delimiter (spec §4.8, non-localized form; also used as the "from"/"to"
// building block for localized and range rendering).
func RenderDateSingle(loc LocaleProvider, parts []DatePart, delimiter string, c dateComponents) (Result, error) {
	monthGender := monthTermGender(loc, c.Month)
	children := make([]Result, 0, len(parts))
	for _, p := range parts {
		r, err := renderPart(loc, p, c, monthGender)
		if err != nil {
			return Result{}, err
		}
		children = append(children, r)
	}
	children = ApplyDelimiterResults(children, "date", delimiter)
	return Composed("date", children...), nil
}

func monthTermGender(loc LocaleProvider, month int) Gender {
	if month < 1 || month > 12 {
		return GenderNone
	}
	g, _ := loc.TermGender(fmt.Sprintf("month-%02d", month))
	return g
}

// differingParts returns the set of date parts (in the same order as
// parts) whose value differs between from and to, expanded to include
// every finer unit once the highest differing unit is found (spec §4.8
// Range Collapsing). Only parts present in `parts` are considered.
func differingParts(parts []DatePart, from, to dateComponents) []DatePartName {
	// order coarsest to finest
	order := []DatePartName{PartYear, PartMonth, PartDay}
	present := map[DatePartName]bool{}
	for _, p := range parts {
		present[p.Name] = true
	}
	highestDiffIdx := -1
	for i, name := range order {
		if !present[name] {
			continue
		}
		var differs bool
		switch name {
		case PartYear:
			differs = from.Year != to.Year
		case PartMonth:
			differs = from.Month != to.Month || from.Season != to.Season
		case PartDay:
			differs = from.Day != to.Day
		}
		if differs {
			highestDiffIdx = i
			break
		}
	}
	if highestDiffIdx == -1 {
		return nil
	}
	var out []DatePartName
	for i := highestDiffIdx; i < len(order); i++ {
		if present[order[i]] {
			out = append(out, order[i])
		}
	}
	return out
}

// RenderDateRange renders a from/to date pair, collapsing on shared parts
// per spec §4.8: it finds the shortest prefix of parts containing every
// differing part for the "from" side; the "to" side renders the
// differing parts followed by the parts after that prefix; the two
// sides are joined by an en dash.
func RenderDateRange(loc LocaleProvider, parts []DatePart, delimiter string, from, to dateComponents) (Result, error) {
	diff := differingParts(parts, from, to)
	if len(diff) == 0 {
		return RenderDateSingle(loc, parts, delimiter, from)
	}
	diffSet := map[DatePartName]bool{}
	for _, d := range diff {
		diffSet[d] = true
	}

	// The from side is the shortest prefix of the full parts list that
	// contains every differing part.
	lastDiffIdx := -1
	for i, p := range parts {
		if diffSet[p.Name] {
			lastDiffIdx = i
		}
	}
	fromParts := parts[:lastDiffIdx+1]

	// The to side is the differing parts (in list order), followed by any
	// common trailing parts after the from-side prefix — those render
	// with the (identical) to values since they never differ.
	toPartsList := make([]DatePart, 0, len(diff)+len(parts)-lastDiffIdx-1)
	for _, p := range parts {
		if diffSet[p.Name] {
			toPartsList = append(toPartsList, p)
		}
	}
	toPartsList = append(toPartsList, parts[lastDiffIdx+1:]...)

	// From-side suppresses the suffix of its last part; to-side suppresses
	// the prefix of its first part (spec §4.8).
	fromPartsCopy := append([]DatePart(nil), fromParts...)
	if len(fromPartsCopy) > 0 {
		fromPartsCopy[len(fromPartsCopy)-1].Suffix = ""
	}
	toPartsCopy := append([]DatePart(nil), toPartsList...)
	if len(toPartsCopy) > 0 {
		toPartsCopy[0].Prefix = ""
	}

	fromResult, err := RenderDateSingle(loc, fromPartsCopy, delimiter, from)
	if err != nil {
		return Result{}, err
	}
	toResult, err := RenderDateSingle(loc, toPartsCopy, delimiter, to)
	if err != nil {
		return Result{}, err
	}

	dash := Leaf("date-range-dash", "–", false)
	return Composed("date-range", fromResult, dash, toResult), nil
}
