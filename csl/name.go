// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csl

import "strings"

// NameGroup bundles one requested Names variable with the term used for
// its optional label (spec §4.9 Variable Grouping and Merging).
type NameGroup struct {
	Variable string
	Term     string
	Names    []NameOrLiteral
}

// namesEqual compares two name sequences by the same stringification
// sort keys use (spec §4.9).
func namesEqual(a, b []NameOrLiteral) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].String() != b[i].String() {
			return false
		}
	}
	return true
}

// MergeEditorTranslator merges equal editor and translator name lists
// into a single "editor-translator"-tagged group inserted at the
// position of the former editor (spec §4.9).
func MergeEditorTranslator(groups []NameGroup) []NameGroup {
	edIdx, trIdx := -1, -1
	for i, g := range groups {
		switch g.Variable {
		case "editor":
			edIdx = i
		case "translator":
			trIdx = i
		}
	}
	if edIdx < 0 || trIdx < 0 {
		return groups
	}
	if !namesEqual(groups[edIdx].Names, groups[trIdx].Names) {
		return groups
	}
	merged := NameGroup{Variable: "editor-translator", Term: "editor-translator", Names: groups[edIdx].Names}
	out := make([]NameGroup, 0, len(groups)-1)
	for i, g := range groups {
		if i == trIdx {
			continue
		}
		if i == edIdx {
			out = append(out, merged)
			continue
		}
		out = append(out, g)
	}
	return out
}

// CountNames implements Count mode (spec §4.9 Count Mode): per group,
// min(len(names), et_al_use_first) when len(names) >= et_al_min, else
// len(names); summed across groups.
func CountNames(opts NameOptions, groups []NameGroup) int {
	total := 0
	for _, g := range groups {
		n := len(g.Names)
		if opts.EtAlMin >= 1 && n >= opts.EtAlMin {
			if opts.EtAlUseFirst < n {
				n = opts.EtAlUseFirst
			}
		}
		total += n
	}
	return total
}

var apostropheRunes = map[rune]bool{'\'': true, '’': true, '‘': true}

// joinNoApos space-joins non-empty parts, omitting the space when the
// preceding part ends in an apostrophe-like character (spec §4.9 Long
// form join rule).
func joinNoApos(parts ...string) string {
	var sb strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if sb.Len() > 0 {
			cur := sb.String()
			last := []rune(cur)[len([]rune(cur))-1]
			if !apostropheRunes[last] {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(p)
	}
	return sb.String()
}

// splitGivenTokens splits a given-name string on spaces and periods for
// initialization (spec §4.9 Initialization).
func splitGivenTokens(given string) []string {
	return strings.FieldsFunc(given, func(r rune) bool { return r == ' ' || r == '.' })
}

// splitCompoundToken splits a token on hyphen, underscore, or en dash,
// for hyphenated compound-name initialization (spec §4.9).
func splitCompoundToken(tok string) []string {
	return strings.FieldsFunc(tok, func(r rune) bool { return r == '-' || r == '_' || r == '–' })
}

// InitializeGivenName reduces a given name to initials per spec §4.9. It
// returns given unchanged when given or InitializeWith is empty; the
// non-empty family condition is checked by the caller ([FormatOneName]),
// since this function only implements the token algorithm.
func InitializeGivenName(given string, opts NameOptions) string {
	if given == "" || opts.InitializeWith == "" {
		return given
	}
	tokens := splitGivenTokens(given)
	var sb strings.Builder
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		r := []rune(tok)
		if len(r) == 1 {
			sb.WriteString(strings.ToUpper(string(r)))
			sb.WriteString(opts.InitializeWith)
			continue
		}
		if !opts.Initialize {
			sb.WriteString(tok)
			sb.WriteString(" ")
			continue
		}
		if opts.InitializeWithHyphen && strings.ContainsAny(tok, "-_–") {
			parts := splitCompoundToken(tok)
			inits := make([]string, 0, len(parts))
			for _, p := range parts {
				if p == "" {
					continue
				}
				pr := []rune(p)
				inits = append(inits, strings.ToUpper(string(pr[0])))
			}
			sb.WriteString(strings.Join(inits, strings.TrimSpace(opts.InitializeWith)+"-"))
			sb.WriteString(opts.InitializeWith)
			continue
		}
		sb.WriteString(strings.ToUpper(string(r[0])))
		sb.WriteString(opts.InitializeWith)
	}
	return strings.TrimSpace(sb.String())
}

// FormatOneName renders a single [Name] per spec §4.9 Regular Rendering,
// applying inversion, initialization, name-part text-case, and suffix
// comma handling. familyCase/givenCase are applied to family and given
// independently before assembly.
func FormatOneName(loc LocaleProvider, n Name, opts NameOptions, invert bool, sortSep string, familyCase, givenCase TextCase) string {
	family := transformCase(n.Family, loc, familyCase, true)
	given := n.Given
	if opts.InitializeWith != "" && n.Family != "" && n.Given != "" {
		given = InitializeGivenName(given, opts)
	}
	given = transformCase(given, loc, givenCase, true)

	suffix := n.Suffix
	suffixJoiner := " "
	if n.PrecedeSuffixByComma && suffix != "" {
		suffixJoiner = ", "
	}

	if opts.NameFormat == NameFormatShort {
		return joinNoApos(n.NonDroppingParticles, family)
	}

	if !invert {
		body := joinNoApos(given, n.DroppingParticles, n.NonDroppingParticles, family)
		if suffix != "" {
			body += suffixJoiner + suffix
		}
		return body
	}

	if opts.DemoteNonDroppingParticle == DemoteDisplayAndSort {
		left := family
		right := joinNoApos(given, n.DroppingParticles, n.NonDroppingParticles)
		s := left
		if right != "" {
			s += sortSep + right
		}
		if suffix != "" {
			s += sortSep + suffix
		}
		return s
	}
	left := joinNoApos(n.NonDroppingParticles, family)
	right := joinNoApos(given, n.DroppingParticles)
	s := left
	if right != "" {
		s += sortSep + right
	}
	if suffix != "" {
		s += sortSep + suffix
	}
	return s
}

func shouldInvertName(order NameAsSortOrder, idx int) bool {
	switch order {
	case SortOrderFirst:
		return idx == 0
	case SortOrderAll:
		return true
	}
	return false
}

func resolveDelimiterPrecedes(mode DelimiterPrecedes, contextual, prevInverted bool) bool {
	switch mode {
	case DelimiterAlways:
		return true
	case DelimiterAfterInvertedName:
		return prevInverted
	case DelimiterContextual:
		return contextual
	default: // DelimiterNever
		return false
	}
}

type formattedName struct {
	text     string
	inverted bool
}

func formatOrLiteral(loc LocaleProvider, nl NameOrLiteral, opts NameOptions, invert bool, sortSep string, familyCase, givenCase TextCase) formattedName {
	if nl.IsLiteral() {
		return formattedName{text: nl.Literal, inverted: false}
	}
	return formattedName{text: FormatOneName(loc, *nl.Name, opts, invert, sortSep, familyCase, givenCase), inverted: invert}
}

// RenderNameGroup renders one variable's name list per spec §4.9 Regular
// Rendering + Delimiters/and/et al. Count mode is handled separately by
// [CountNames] since it aggregates across groups.
func RenderNameGroup(loc LocaleProvider, opts NameOptions, delim, sortSep string, names []NameOrLiteral, familyCase, givenCase TextCase) (string, error) {
	n := len(names)
	if n == 0 {
		return "", nil
	}
	etAlActive := opts.EtAlMin >= 1 && n >= opts.EtAlMin
	shown := n
	if etAlActive {
		shown = opts.EtAlUseFirst + 1
		if shown > n {
			shown = n
		}
	}
	delta := 0
	if etAlActive {
		delta = 1
	}
	renderCount := shown - delta
	if renderCount < 0 {
		renderCount = 0
	}

	items := make([]formattedName, renderCount)
	for i := 0; i < renderCount; i++ {
		inv := shouldInvertName(opts.NameAsSortOrder, i)
		items[i] = formatOrLiteral(loc, names[i], opts, inv, sortSep, familyCase, givenCase)
	}

	count := shown

	if etAlActive {
		body := joinFormatted(items, delim)
		if opts.EtAlUseLast && n > renderCount {
			inv := shouldInvertName(opts.NameAsSortOrder, n-1)
			last := formatOrLiteral(loc, names[n-1], opts, inv, sortSep, familyCase, givenCase)
			return body + "… " + last.text, nil
		}
		prevInverted := false
		if renderCount > 0 {
			prevInverted = items[renderCount-1].inverted
		}
		precede := resolveDelimiterPrecedes(opts.DelimiterPrecedesEtAl, count > 2, prevInverted)
		etAlTerm, _ := loc.Term("et-al", TermLong, false)
		if etAlTerm == "" {
			etAlTerm = "et al."
		}
		sep := " "
		if precede {
			sep = delim
		}
		return body + sep + etAlTerm, nil
	}

	if n > 1 && opts.And != AndNone {
		body := joinFormatted(items[:renderCount-1], delim)
		prevInverted := false
		if renderCount >= 2 {
			prevInverted = items[renderCount-2].inverted
		}
		precede := resolveDelimiterPrecedes(opts.DelimiterPrecedesLast, count >= 3, prevInverted)
		sep := " "
		if precede {
			sep = delim
		}
		var andWord string
		if opts.And == AndSymbol {
			andWord = "& "
		} else {
			t, _ := loc.Term("and", TermLong, false)
			if t == "" {
				t = "and"
			}
			andWord = t + " "
		}
		return body + sep + andWord + items[renderCount-1].text, nil
	}

	return joinFormatted(items, delim), nil
}

func joinFormatted(items []formattedName, delim string) string {
	var sb strings.Builder
	for i, it := range items {
		if i > 0 {
			sb.WriteString(delim)
		}
		sb.WriteString(it.text)
	}
	return sb.String()
}

// Pluralize selects whether a names-group label is rendered as plural
// (spec §4.6, §4.9 Label on the Group).
type Pluralize int

const (
	PluralizeAlways Pluralize = iota
	PluralizeContextual
	PluralizeNever
)

// LabelPlural resolves a Pluralize setting against the name count.
func LabelPlural(p Pluralize, n int) bool {
	switch p {
	case PluralizeAlways:
		return true
	case PluralizeNever:
		return false
	default:
		return n != 1
	}
}

// RenderNames renders the full Names element: grouping/merge is expected
// to already have been applied to groups (spec §4.9); this renders each
// group, joins them with NamesDelimiter, and appends an optional label.
// The label is rendered only when labelTerm is non-empty; it uses the
// group's own Term when there is exactly one group and it has one, and
// labelTerm otherwise.
func RenderNames(loc LocaleProvider, params *Parameters, groups []NameGroup, labelTerm string, labelPlural Pluralize, labelPrefix, labelSuffix string, labelTextCase TextCase, familyCase, givenCase TextCase) (Result, error) {
	if params.Names.NameFormat == NameFormatCount {
		n := CountNames(params.Names, groups)
		text := ""
		if n > 0 {
			text = itoaSimple(n)
		}
		return Leaf("names", text, true), nil
	}

	groupResults := make([]Result, 0, len(groups))
	for _, g := range groups {
		s, err := RenderNameGroup(loc, params.Names, params.NameDelimiter, params.SortSeparator, g.Names, familyCase, givenCase)
		if err != nil {
			return Result{}, err
		}
		groupResults = append(groupResults, Leaf("name-group", s, true))
	}
	joined := ApplyDelimiterResults(groupResults, "names", params.NamesDelimiter)
	namesResult := Composed("names", joined...)
	namesResult.ByVariable = true

	if labelTerm == "" {
		return namesResult, nil
	}
	if len(groups) == 1 && groups[0].Term != "" {
		labelTerm = groups[0].Term
	}
	totalN := 0
	for _, g := range groups {
		totalN += len(g.Names)
	}
	plural := LabelPlural(labelPlural, totalN)
	term, _ := loc.Term(labelTerm, TermLong, plural)
	labelResult := Leaf("names-label", term, false)
	if term != "" {
		labelResult = labelResult.WithAffixes(labelPrefix, labelSuffix)
	}
	labelResult = labelResult.WithTextCase(labelTextCase)
	return Composed("names-with-label", namesResult, labelResult), nil
}

func itoaSimple(n int) string {
	if n == 0 {
		return ""
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte('0' + n%10)}, b...)
		n /= 10
	}
	if neg {
		return "-" + string(b)
	}
	return string(b)
}
