// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csl

import (
	"fmt"
	"strconv"
	"strings"
)

// Season identifies one of the four seasons used by a [DateVar] in place
// of a month.
type Season int

const (
	NoSeason Season = iota
	Spring
	Summer
	Autumn
	Winter
)

// NumberSeparator is the punctuation joining the two ends of a
// [NumberVar] range.
type NumberSeparator rune

const (
	SeparatorHyphen    NumberSeparator = '-'
	SeparatorAmpersand NumberSeparator = '&'
	SeparatorComma     NumberSeparator = ','
)

// NumberVar is a number variable, possibly a range. A single number has
// Min == Max.
type NumberVar struct {
	Min, Max  uint32
	Separator NumberSeparator
}

// IsRange reports whether this variable denotes more than one value.
func (n NumberVar) IsRange() bool { return n.Min != n.Max }

// DateVar is a structured date, possibly a range, possibly season-only.
// Either this or a literal string represents the CSL Date variable; see
// [Value].
type DateVar struct {
	YearFrom, YearTo     int32
	MonthFrom, MonthTo   int  // 0 means absent, else 1..=12
	DayFrom, DayTo       int  // 0 means absent, else 1..=31
	SeasonFrom, SeasonTo Season
}

// IsRange reports whether the date has distinct from/to endpoints.
func (d DateVar) IsRange() bool {
	return d.YearFrom != d.YearTo || d.MonthFrom != d.MonthTo || d.DayFrom != d.DayTo ||
		d.SeasonFrom != d.SeasonTo
}

// Ordered reports whether the From endpoint lexicographically precedes or
// equals the To endpoint (spec §3 invariant 4). Absent month/day sort
// before present ones for the purposes of this comparison.
func (d DateVar) Ordered() bool {
	from := [3]int{int(d.YearFrom), d.MonthFrom, d.DayFrom}
	to := [3]int{int(d.YearTo), d.MonthTo, d.DayTo}
	return from[0] < to[0] ||
		(from[0] == to[0] && (from[1] < to[1] ||
			(from[1] == to[1] && from[2] <= to[2])))
}

// Name is a structured personal name, one element of a Names variable.
type Name struct {
	Family, Given                          string
	DroppingParticles, NonDroppingParticles string
	Suffix                                  string
	PrecedeSuffixByComma                    bool
}

// IsEmpty reports whether the name carries no renderable content.
func (n Name) IsEmpty() bool {
	return n.Family == "" && n.Given == "" && n.DroppingParticles == "" &&
		n.NonDroppingParticles == "" && n.Suffix == ""
}

// NameOrLiteral is one element of a Names variable: either a structured
// [Name] or a literal string (e.g. "United Nations").
type NameOrLiteral struct {
	Literal string
	Name    *Name // nil when Literal is set
}

// IsLiteral reports whether this entry is a bare literal string.
func (nl NameOrLiteral) IsLiteral() bool { return nl.Name == nil }

// String renders the plain-text form used by sort-key generation (§4.11):
// "family given droppingParticles nonDroppingParticles suffix" with empty
// components skipped.
func (nl NameOrLiteral) String() string {
	if nl.IsLiteral() {
		return nl.Literal
	}
	n := nl.Name
	parts := make([]string, 0, 5)
	for _, p := range []string{n.Family, n.Given, n.DroppingParticles, n.NonDroppingParticles, n.Suffix} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// ValueKind tags the sum type carried by [Value].
type ValueKind int

const (
	KindNone ValueKind = iota
	KindText
	KindNumber
	KindDate
	KindNames
)

// Value is the tagged sum of CSL variable content: text, number, date, or
// a name list (spec §3).
type Value struct {
	Kind        ValueKind
	Text        string
	Number      NumberVar
	Date        DateVar
	DateLiteral string // set, with Date zero, when the date is a literal string
	Names       []NameOrLiteral
}

func TextValue(s string) Value { return Value{Kind: KindText, Text: s} }
func NumberValue(n NumberVar) Value { return Value{Kind: KindNumber, Number: n} }
func DateValue(d DateVar) Value { return Value{Kind: KindDate, Date: d} }
func DateLiteralValue(s string) Value { return Value{Kind: KindDate, DateLiteral: s} }
func NamesValue(n []NameOrLiteral) Value { return Value{Kind: KindNames, Names: n} }

// IsDateLiteral reports whether a KindDate value carries a literal string
// rather than structured date components.
func (v Value) IsDateLiteral() bool { return v.Kind == KindDate && v.DateLiteral != "" }

// ItemAccessor is the external collaborator interface through which the
// rendering core reads bibliographic item data (spec §6.1). Item data
// ingestion itself is out of scope; only this contract is specified.
type ItemAccessor interface {
	// Get returns the raw value stored under name, or (Value{}, false) if
	// absent.
	Get(name string) (Value, bool)

	// GetAsNumber returns name (preferring a "<name>-short" suffix form
	// per spec §4.3) coerced to a NumberVar, parsing a numeric string
	// variable when needed.
	GetAsNumber(name string) (NumberVar, bool)

	// GetAsDate returns name coerced to a date: either structured
	// components or a literal string.
	GetAsDate(name string) (Value, bool)

	// GetAsNames returns name as a sequence of name entries, treating
	// literal strings as a single-element literal list.
	GetAsNames(name string) ([]NameOrLiteral, bool)

	// Type returns the item's CSL type (e.g. "book", "chapter"), used by
	// Choose's `type` condition.
	Type() string
}

// MapItem is an in-memory ItemAccessor backed by a plain map, sufficient
// for tests and the CLI demo (spec.md specifies only the accessor
// contract, not an ingestion format).
type MapItem struct {
	ItemType string
	Values   map[string]Value
}

// NewMapItem returns an empty MapItem of the given CSL type.
func NewMapItem(itemType string) *MapItem {
	return &MapItem{ItemType: itemType, Values: map[string]Value{}}
}

// Set stores v under name and returns the receiver for chaining.
func (m *MapItem) Set(name string, v Value) *MapItem {
	m.Values[name] = v
	return m
}

func (m *MapItem) Type() string { return m.ItemType }

func (m *MapItem) Get(name string) (Value, bool) {
	v, ok := m.Values[name]
	return v, ok
}

// resolveShort implements the "<var>-short is honored when present,
// otherwise the full variable is returned" rule (spec §4.3) generically
// over any lookup function.
func resolveShort(name string, lookup func(string) (Value, bool)) (Value, bool) {
	if v, ok := lookup(name + "-short"); ok {
		return v, true
	}
	return lookup(name)
}

func (m *MapItem) GetAsNumber(name string) (NumberVar, bool) {
	v, ok := resolveShort(name, m.Get)
	if !ok {
		return NumberVar{}, false
	}
	switch v.Kind {
	case KindNumber:
		return v.Number, true
	case KindText:
		return ParseNumberVar(v.Text)
	}
	return NumberVar{}, false
}

func (m *MapItem) GetAsDate(name string) (Value, bool) {
	return resolveShort(name, m.Get)
}

func (m *MapItem) GetAsNames(name string) ([]NameOrLiteral, bool) {
	v, ok := resolveShort(name, m.Get)
	if !ok {
		return nil, false
	}
	switch v.Kind {
	case KindNames:
		return v.Names, true
	case KindText:
		return []NameOrLiteral{{Literal: v.Text}}, true
	}
	return nil, false
}

// ParseNumberVar parses a string variable into a [NumberVar] when its
// content is numeric with an optional single separator from
// {'-', '&', ','} (spec §4.3).
func ParseNumberVar(s string) (NumberVar, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NumberVar{}, false
	}
	for _, sep := range []NumberSeparator{SeparatorHyphen, SeparatorAmpersand, SeparatorComma} {
		if i := strings.IndexRune(s, rune(sep)); i > 0 {
			left := strings.TrimSpace(s[:i])
			right := strings.TrimSpace(s[i+1:])
			min, err1 := strconv.ParseUint(left, 10, 32)
			max, err2 := strconv.ParseUint(right, 10, 32)
			if err1 == nil && err2 == nil {
				return NumberVar{Min: uint32(min), Max: uint32(max), Separator: sep}, true
			}
			return NumberVar{}, false
		}
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return NumberVar{}, false
	}
	return NumberVar{Min: uint32(n), Max: uint32(n), Separator: SeparatorHyphen}, true
}

// String renders a NumberVar the way a bare stringification would (used
// when a non-numeric renderer path needs a display fallback); full
// formatting lives in number.go.
func (n NumberVar) String() string {
	if !n.IsRange() {
		return strconv.FormatUint(uint64(n.Min), 10)
	}
	return fmt.Sprintf("%d%c%d", n.Min, rune(n.Separator), n.Max)
}
