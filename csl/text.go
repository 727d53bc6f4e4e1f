// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csl

import "strings"

// stringifyDate is the fallback plain-text rendering a Text-by-variable
// element uses for a structured date it was not asked to localize (spec
// §4.6 "otherwise stringifies"): numeric year-month-day joined by
// hyphens, extended with a slash-joined "to" side when the date is a
// range.
func stringifyDate(loc LocaleProvider, d DateVar) string {
	side := func(y int32, m, day int) string {
		parts := make([]string, 0, 3)
		if y := FormatYearPart(loc, y, DateNumeric); y != "" {
			parts = append(parts, y)
		}
		if m >= 1 && m <= 12 {
			if ms, err := FormatMonthPart(loc, m, NoSeason, DateNumericLeadingZeros); err == nil && ms != "" {
				parts = append(parts, ms)
			}
		}
		if day > 0 {
			parts = append(parts, FormatDayPart(loc, day, GenderNone, DateNumericLeadingZeros))
		}
		return strings.Join(parts, "-")
	}
	from := side(d.YearFrom, d.MonthFrom, d.DayFrom)
	if !d.IsRange() {
		return from
	}
	to := side(d.YearTo, d.MonthTo, d.DayTo)
	return from + "/" + to
}

// LabelForm selects pluralization behavior for a Label element (spec
// §4.6); distinct from [Pluralize] in name.go since label pluralization
// reads len(min,max) for numeric variables rather than a name count.
type LabelForm int

const (
	LabelAlways LabelForm = iota
	LabelContextual
	LabelNever
)

// resolveLabelPlural decides pluralization for a Label: for numeric
// variables Contextual means min != max (spec §4.6); n is the
// non-numeric item count (e.g. len(names)) used when the variable is
// not itself a NumberVar.
func resolveLabelPlural(form LabelForm, numeric bool, n NumberVar, count int) bool {
	switch form {
	case LabelAlways:
		return true
	case LabelNever:
		return false
	default:
		if numeric {
			return n.Min != n.Max
		}
		return count != 1
	}
}

// RenderLabel looks up variable on item, decides pluralization, and
// renders the localized term (spec §4.6). Result is marked by-variable
// regardless of whether the variable was present, since a Label always
// "consults" the variable.
func RenderLabel(loc LocaleProvider, item ItemAccessor, variable, term string, format TermFormat, form LabelForm, prefix, suffix string, tc TextCase) Result {
	if _, ok := item.Get(variable); !ok {
		return Leaf("label", "", true)
	}
	var plural bool
	if n, numeric := item.GetAsNumber(variable); numeric {
		plural = resolveLabelPlural(form, true, n, 0)
	} else {
		plural = resolveLabelPlural(form, false, NumberVar{}, 1)
	}
	text, found := loc.Term(term, format, plural)
	if !found {
		return Leaf("label", "", true)
	}
	r := Leaf("label", text, true).WithAffixes(prefix, suffix).WithTextCase(tc)
	return r
}

// RenderTextValue renders a Text-by-value element: a literal string,
// never by-variable (spec §4.6).
func RenderTextValue(value, prefix, suffix string, quotes bool, tc TextCase) Result {
	r := Leaf("text-value", value, false)
	if value != "" {
		r = r.WithAffixes(prefix, suffix)
	}
	return r.WithQuotes(quotes).WithTextCase(tc)
}

// RenderTextTerm renders a Text-by-term element: a localized term,
// never by-variable (spec §4.6).
func RenderTextTerm(loc LocaleProvider, term string, format TermFormat, plural bool, prefix, suffix string, quotes bool, tc TextCase) Result {
	text, _ := loc.Term(term, format, plural)
	r := Leaf("text-term", text, false)
	if text != "" {
		r = r.WithAffixes(prefix, suffix)
	}
	return r.WithQuotes(quotes).WithTextCase(tc)
}

// RenderTextVariable renders a Text-by-variable element (spec §4.6):
// prefers the "<var>-short" form, renders numeric variables via the
// number renderer, and otherwise stringifies. Always by-variable.
func RenderTextVariable(loc LocaleProvider, item ItemAccessor, variable, prefix, suffix string, quotes bool, tc TextCase) (Result, error) {
	v, ok := resolveShort(variable, item.Get)
	if !ok {
		return Leaf("text-variable", "", true), nil
	}
	var text string
	switch v.Kind {
	case KindNumber:
		s, err := RenderNumber(loc, v.Number, "", NumberNumeric, GenderNone, "-", PageRangeExpanded)
		if err != nil {
			return Result{}, err
		}
		text = s
	case KindDate:
		if v.IsDateLiteral() {
			text = v.DateLiteral
		} else {
			text = stringifyDate(loc, v.Date)
		}
	case KindNames:
		for i, n := range v.Names {
			if i > 0 {
				text += ", "
			}
			text += n.String()
		}
	default:
		text = v.Text
	}
	r := Leaf("text-variable", text, true)
	if text != "" {
		r = r.WithAffixes(prefix, suffix)
	}
	return r.WithQuotes(quotes).WithTextCase(tc), nil
}

// RenderTextMacro renders a Text-by-macro element: not by-variable
// itself, but inherits the flag from its evaluated children (spec
// §4.6). evaluate runs the named macro in the current context.
func RenderTextMacro(evaluate func() (Result, error), prefix, suffix string, quotes bool, tc TextCase) (Result, error) {
	inner, err := evaluate()
	if err != nil {
		return Result{}, err
	}
	r := Composed("text-macro", inner)
	if !r.IsResultEmpty() {
		r = r.WithAffixes(prefix, suffix)
	}
	return r.WithQuotes(quotes).WithTextCase(tc), nil
}
