// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csl

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TermFormat selects among the renderings a localized term may have.
type TermFormat int

const (
	TermLong TermFormat = iota
	TermShort
	TermSymbol
	TermVerb
	TermVerbShort
)

// Gender is used to select ordinal suffix forms in some locales.
type Gender int

const (
	GenderNone Gender = iota
	GenderMasculine
	GenderFeminine
)

// NumberFormat selects how [LocaleProvider.FormatNumber] renders a value.
type NumberFormat int

const (
	NumberNumeric NumberFormat = iota
	NumberOrdinal
	NumberLongOrdinal
	NumberRoman
)

// DatePartName identifies which calendar component a [DatePart] renders.
type DatePartName int

const (
	PartYear DatePartName = iota
	PartMonth
	PartDay
)

// DatePartFormat selects the rendering of one date part.
type DatePartFormat int

const (
	DateNumeric DatePartFormat = iota
	DateNumericLeadingZeros
	DateLong
	DateShort
	DateOrdinal
)

// DateFormat selects between the locale's numeric and textual date-part
// orderings (spec §4.8).
type DateFormat int

const (
	DateFormatNumeric DateFormat = iota
	DateFormatText
)

// DatePart describes one component of a date template, as returned by
// [LocaleProvider.DateParts] or overridden locally by a date-rendering
// element (spec §3, §4.8).
type DatePart struct {
	Name     DatePartName
	Format   DatePartFormat
	Prefix   string
	Suffix   string
	TextCase TextCase
}

// termKey is the lookup key for a localized term.
type termKey struct {
	name   string
	format TermFormat
	plural bool
}

// LocaleProvider is the external collaborator answering term, number,
// date, and gender queries (spec §4.2).
type LocaleProvider interface {
	Term(name string, format TermFormat, plural bool) (string, bool)
	TermGender(name string) (Gender, bool)
	FormatNumber(n uint32, format NumberFormat, gender Gender) (string, error)
	FormatOrdinal(n uint32, gender Gender) string
	DateParts(format DateFormat) []DatePart
	LimitDayOrdinalsToDay1() bool
	// Tag returns the BCP-47 language tag this provider serves, used by
	// the case-folding and collation helpers that are locale-sensitive.
	Tag() language.Tag
}

// Locale is a concrete, in-memory [LocaleProvider].
type Locale struct {
	tag                     language.Tag
	terms                   map[termKey]string
	genders                 map[string]Gender
	ordinalSuffixes         map[uint32]string // exact n -> suffix term name
	ordinalSuffixDefault    string
	romanNumerals           bool
	limitDayOrdinalsToDay1  bool
	dateNumeric             []DatePart
	dateText                []DatePart
}

// NewLocale constructs an empty locale for the given BCP-47 tag. Callers
// populate it via [Locale.SetTerm] etc.; a real implementation would
// populate this from parsed locale XML (out of scope here, spec §1).
func NewLocale(tag string) *Locale {
	t, _ := language.Parse(tag)
	return &Locale{
		tag:     t,
		terms:   map[termKey]string{},
		genders: map[string]Gender{},
	}
}

func (l *Locale) Tag() language.Tag { return l.tag }

// SetTerm registers a term rendering.
func (l *Locale) SetTerm(name string, format TermFormat, plural bool, value string) *Locale {
	l.terms[termKey{name, format, plural}] = value
	return l
}

// SetGender registers a term's grammatical gender.
func (l *Locale) SetGender(name string, g Gender) *Locale {
	l.genders[name] = g
	return l
}

// SetLimitDayOrdinalsToDay1 sets the locale quirk honored by
// [FormatDayPart] when formatting ordinal days.
func (l *Locale) SetLimitDayOrdinalsToDay1(v bool) *Locale {
	l.limitDayOrdinalsToDay1 = v
	return l
}

// SetDateParts registers the locale's default date-part ordering for the
// given format.
func (l *Locale) SetDateParts(format DateFormat, parts []DatePart) *Locale {
	if format == DateFormatText {
		l.dateText = parts
	} else {
		l.dateNumeric = parts
	}
	return l
}

func (l *Locale) Term(name string, format TermFormat, plural bool) (string, bool) {
	v, ok := l.terms[termKey{name, format, plural}]
	if ok {
		return v, true
	}
	// Fall back from a requested plural/singular form to the other when
	// only one was registered, matching how sparse locale data behaves in
	// practice.
	v, ok = l.terms[termKey{name, format, !plural}]
	return v, ok
}

func (l *Locale) TermGender(name string) (Gender, bool) {
	g, ok := l.genders[name]
	return g, ok
}

func (l *Locale) DateParts(format DateFormat) []DatePart {
	if format == DateFormatText {
		return l.dateText
	}
	return l.dateNumeric
}

func (l *Locale) LimitDayOrdinalsToDay1() bool { return l.limitDayOrdinalsToDay1 }

// FormatNumber renders n per format (spec §4.2). Roman numerals are
// locale-independent arithmetic; long-ordinal and ordinal both defer to
// FormatOrdinal and the locale's ordinal terms.
func (l *Locale) FormatNumber(n uint32, format NumberFormat, gender Gender) (string, error) {
	switch format {
	case NumberNumeric:
		return strconv.FormatUint(uint64(n), 10), nil
	case NumberOrdinal, NumberLongOrdinal:
		return l.FormatOrdinal(n, gender), nil
	case NumberRoman:
		r := toRoman(n)
		if r == "" {
			return "", ErrUnsupportedFormat
		}
		return r, nil
	}
	return "", ErrUnsupportedFormat
}

// FormatOrdinal renders n's ordinal form using the locale's registered
// "ordinal-NN"/"ordinal" terms, honoring LimitDayOrdinalsToDay1 is the
// caller's responsibility (date.go applies it before calling this for
// day parts).
func (l *Locale) FormatOrdinal(n uint32, gender Gender) string {
	base := strconv.FormatUint(uint64(n), 10)
	name := "ordinal-" + base
	if suf, ok := l.Term(name, TermLong, false); ok {
		return base + suf
	}
	if suf, ok := l.Term("ordinal", TermLong, false); ok {
		return base + suf
	}
	return base
}

func toRoman(n uint32) string {
	if n == 0 || n > 5000 {
		return ""
	}
	vals := []struct {
		v uint32
		s string
	}{
		{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
		{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
		{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
	}
	var sb strings.Builder
	for _, p := range vals {
		for n >= p.v {
			sb.WriteString(p.s)
			n -= p.v
		}
	}
	return sb.String()
}

// LocaleResolver answers [LocaleProvider] lookups by BCP-47 tag,
// implementing the fallback chain of spec §3 invariant 5 and §4.2: exact
// dialect -> language-only -> invariant. Grounded on the teacher's use of
// golang.org/x/text/language for tag matching.
type LocaleResolver struct {
	byTag     map[string]*Locale
	invariant *Locale
}

// NewLocaleResolver builds a resolver whose mandatory fallback is
// invariant. It is an error (ErrLocaleNotFound, checked by Resolve) for
// invariant to be nil.
func NewLocaleResolver(invariant *Locale) *LocaleResolver {
	return &LocaleResolver{byTag: map[string]*Locale{}, invariant: invariant}
}

// Register adds a locale the resolver can return for exact or
// language-only matches.
func (r *LocaleResolver) Register(l *Locale) *LocaleResolver {
	r.byTag[l.tag.String()] = l
	return r
}

// Resolve implements the precedence exact dialect -> language-only ->
// invariant (spec §3 invariant 5, §8 scenario "Locale fallback").
func (r *LocaleResolver) Resolve(tag string) (*Locale, error) {
	if r.invariant == nil {
		return nil, ErrLocaleNotFound
	}
	t, err := language.Parse(tag)
	if err != nil {
		return r.invariant, nil
	}
	if l, ok := r.byTag[t.String()]; ok {
		return l, nil
	}
	base, conf := t.Base()
	if conf != language.No {
		for k, l := range r.byTag {
			bt, err := language.Parse(k)
			if err != nil {
				continue
			}
			if bb, _ := bt.Base(); bb == base && bt.String() == base.String() {
				return l, nil
			}
		}
	}
	return r.invariant, nil
}

// TextCase is the set of case transforms a ComposedRun may apply (spec
// §3, §4.4).
type TextCase int

const (
	CaseNone TextCase = iota
	CaseLower
	CaseUpper
	CaseCapitalizeFirst
	CaseCapitalizeAll
	CaseTitle
	CaseSentence
)

// caser returns the golang.org/x/text/cases transformer for simple
// (locale-insensitive-enough) lower/upper/title transforms. Title-casing
// is locale-gated per spec §4.4 step 2 — callers only invoke this for
// CaseTitle after confirming the locale permits it.
func caser(tag language.Tag, tc TextCase) cases.Caser {
	switch tc {
	case CaseLower:
		return cases.Lower(tag)
	case CaseUpper:
		return cases.Upper(tag)
	case CaseTitle:
		return cases.Title(tag)
	}
	return cases.Caser{}
}
