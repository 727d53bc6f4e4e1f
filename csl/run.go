// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csl

import "strings"

// Formatting is the subset of [Parameters] that a leaf [TextRun] carries
// forward for a serializer to consume (spec §6.4): font style/variant/
// weight, decoration, and vertical alignment.
type Formatting struct {
	FontStyle      FontStyle
	FontVariant    FontVariant
	FontWeight     FontWeight
	TextDecoration TextDecoration
	VerticalAlign  VerticalAlign
}

func snapshotFormatting(p *Parameters) Formatting {
	return Formatting{p.FontStyle, p.FontVariant, p.FontWeight, p.TextDecoration, p.VerticalAlign}
}

// Run is either a [TextRun] or a [ComposedRun]; the in-memory result tree
// a style renders to (spec §3, §6.4).
type Run interface {
	IsEmpty() bool
	IsByVariable() bool
}

// TextRun is a leaf run of literal text (spec §3).
type TextRun struct {
	Text       string
	Formatting Formatting
	Empty      bool
	ByVariable bool
}

func newTextRun(text string, p *Parameters, byVariable bool) *TextRun {
	return &TextRun{Text: text, Formatting: snapshotFormatting(p), Empty: text == "", ByVariable: byVariable}
}

func (t *TextRun) IsEmpty() bool      { return t.Empty }
func (t *TextRun) IsByVariable() bool { return t.ByVariable }

// ComposedRun is an internal node: affixes, case, and quotes already
// applied, children flattened and immutable (spec §3).
type ComposedRun struct {
	Tag        string
	Children   []Run
	Prefix     string
	Suffix     string
	Quotes     bool
	TextCase   TextCase
	ByVariable bool
}

// IsEmpty implements invariant 2: a ComposedRun is empty iff every
// descendant TextRun is empty.
func (c *ComposedRun) IsEmpty() bool {
	for _, ch := range c.Children {
		if !ch.IsEmpty() {
			return false
		}
	}
	return true
}

func (c *ComposedRun) IsByVariable() bool { return c.ByVariable }

// PlainText concatenates the text of every descendant TextRun, each
// ComposedRun's text wrapped in its prefix and suffix, discarding all
// other formatting; used by sort-key generation (spec §4.11) and tests.
func PlainText(r Run) string {
	switch v := r.(type) {
	case *TextRun:
		return v.Text
	case *ComposedRun:
		var sb strings.Builder
		sb.WriteString(v.Prefix)
		for _, c := range v.Children {
			sb.WriteString(PlainText(c))
		}
		sb.WriteString(v.Suffix)
		return sb.String()
	}
	return ""
}

// Result is the pre-composition shape produced by rendering elements: a
// tree carrying pending affix/case/quote application (spec §3). A Result
// with IsText set is a leaf producing a single implicit TextRun from
// Text; any other Result composes its Children (possibly none).
type Result struct {
	Tag        string
	Text       string
	IsText     bool
	Children   []Result
	Prefix     string
	Suffix     string
	Quotes     bool
	TextCase   TextCase
	ByVariable bool
}

// Leaf returns a leaf Result: a single run of text, optionally marked
// by-variable (spec §4.6).
func Leaf(tag, text string, byVariable bool) Result {
	return Result{Tag: tag, Text: text, IsText: true, ByVariable: byVariable}
}

// Empty returns the canonical empty leaf Result, not by-variable.
func Empty(tag string) Result { return Leaf(tag, "", false) }

// Composed returns a Result composing children in order. ByVariable is
// the OR over the children's own ByVariable flags, implementing the
// upward propagation of invariant 1/2.
func Composed(tag string, children ...Result) Result {
	by := false
	for _, c := range children {
		if c.ByVariable {
			by = true
			break
		}
	}
	return Result{Tag: tag, Children: children, ByVariable: by}
}

// WithAffixes returns a copy of r with prefix/suffix attached.
func (r Result) WithAffixes(prefix, suffix string) Result {
	r.Prefix, r.Suffix = prefix, suffix
	return r
}

// WithQuotes returns a copy of r with quote-wrapping requested.
func (r Result) WithQuotes(q bool) Result {
	r.Quotes = q
	return r
}

// WithTextCase returns a copy of r with a text-case transform requested.
func (r Result) WithTextCase(tc TextCase) Result {
	r.TextCase = tc
	return r
}

// IsResultEmpty reports whether r would compose to an empty run, without
// performing full composition (spec invariant 2, generalized to Result).
func (r Result) IsResultEmpty() bool {
	if r.IsText {
		return r.Text == ""
	}
	for _, c := range r.Children {
		if !c.IsResultEmpty() {
			return false
		}
	}
	return true
}

// ByVariableDescendantsEmpty reports, for the group-suppression rule
// (spec §4.5): whether r has at least one by-variable descendant, and
// whether every such descendant is empty. Returns (hasByVar, allEmpty).
// A node counts when it is marked by-variable and none of its children
// is; a composed node whose flag comes from its children is looked
// through, so non-variable siblings do not count as variable output.
func (r Result) ByVariableDescendantsEmpty() (hasByVar bool, allEmpty bool) {
	allEmpty = true
	var walk func(Result)
	walk = func(res Result) {
		childByVar := false
		for _, c := range res.Children {
			if c.ByVariable {
				childByVar = true
				break
			}
		}
		if res.ByVariable && !childByVar {
			hasByVar = true
			if !res.IsResultEmpty() {
				allEmpty = false
			}
			return
		}
		for _, c := range res.Children {
			walk(c)
		}
	}
	walk(r)
	return
}

// ToComposedRun performs the composition steps of spec §4.4:
//  1. recursively compose children (or synthesize the implicit text
//     child of a leaf);
//  2. apply text_case;
//  3. wrap in quotes if requested;
//  4. emit prefix/suffix unless the composed content is empty;
//  5. propagate ByVariable as the OR of children (already computed at
//     construction time by [Composed]).
func (r Result) ToComposedRun(loc LocaleProvider, params *Parameters) Run {
	var children []Run
	if r.IsText {
		children = []Run{newTextRun(r.Text, params, r.ByVariable)}
	} else {
		children = make([]Run, 0, len(r.Children))
		for _, c := range r.Children {
			children = append(children, c.ToComposedRun(loc, params))
		}
	}

	if r.TextCase != CaseNone {
		first := true
		applyTextCase(children, loc, params, r.TextCase, false, &first)
	}

	empty := allEmpty(children)

	cr := &ComposedRun{
		Tag:        r.Tag,
		TextCase:   r.TextCase,
		ByVariable: r.ByVariable,
	}

	if !empty && r.Quotes {
		open, close := quoteGlyphs(loc, params.QuoteDepth)
		qp := params.WithQuoteDepth()
		children = wrapQuotes(children, qp, open, close)
	}
	cr.Quotes = r.Quotes
	cr.Children = children

	if !empty {
		cr.Prefix = r.Prefix
		cr.Suffix = r.Suffix
	}
	return cr
}

func allEmpty(runs []Run) bool {
	for _, r := range runs {
		if !r.IsEmpty() {
			return false
		}
	}
	return true
}

// applyTextCase mutates TextRun leaves under runs in place. When
// insideQuotes is true and tc is a capitalization transform (not plain
// lower/upper), the leaf is left untouched, implementing "capitalization
// skips text inside quotes unless specified otherwise" (spec §4.4 step 2,
// §9 open question: title-case interaction with quotes follows CSL 1.0.1
// here rather than any behavior in the teacher).
func applyTextCase(runs []Run, loc LocaleProvider, params *Parameters, tc TextCase, insideQuotes bool, first *bool) {
	for _, r := range runs {
		switch v := r.(type) {
		case *TextRun:
			if v.Text == "" {
				continue
			}
			skip := insideQuotes && isCapitalizationTransform(tc)
			if !skip {
				v.Text = transformCase(v.Text, loc, tc, *first)
			}
			*first = false
		case *ComposedRun:
			applyTextCase(v.Children, loc, params, tc, insideQuotes || v.Quotes, first)
		}
	}
}

func isCapitalizationTransform(tc TextCase) bool {
	switch tc {
	case CaseCapitalizeFirst, CaseCapitalizeAll, CaseTitle, CaseSentence:
		return true
	}
	return false
}

// transformCase applies one text-case transform to a single rune span.
// first indicates whether this is the first non-empty leaf encountered
// in the enclosing composed run, used by capitalize-first/sentence case.
func transformCase(s string, loc LocaleProvider, tc TextCase, first bool) string {
	switch tc {
	case CaseLower:
		return caser(loc.Tag(), CaseLower).String(s)
	case CaseUpper:
		return caser(loc.Tag(), CaseUpper).String(s)
	case CaseCapitalizeFirst:
		if !first {
			return s
		}
		return capitalizeFirstRune(s)
	case CaseCapitalizeAll:
		return capitalizeEachWord(s)
	case CaseSentence:
		if first {
			return capitalizeFirstRune(strings.ToLower(s))
		}
		return strings.ToLower(s)
	case CaseTitle:
		if !isTitleCaseLocale(loc.Tag()) {
			if first {
				return capitalizeFirstRune(s)
			}
			return s
		}
		return titleCaseCSL(s)
	}
	return s
}

func capitalizeFirstRune(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

func capitalizeEachWord(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalizeFirstRune(w)
	}
	return strings.Join(words, " ")
}

func isTitleCaseLocale(tag interface{ String() string }) bool {
	return strings.HasPrefix(tag.String(), "en")
}

// titleCaseMinorWords are not capitalized by [titleCaseCSL] unless they
// are the first or last word (CSL 1.0.1 title-casing rules for English).
var titleCaseMinorWords = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "at": true, "but": true,
	"by": true, "down": true, "for": true, "from": true, "in": true, "into": true,
	"nor": true, "of": true, "on": true, "onto": true, "or": true, "over": true,
	"so": true, "the": true, "till": true, "to": true, "up": true, "via": true,
	"with": true, "yet": true, "vs.": true, "vs": true,
}

func titleCaseCSL(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		lower := strings.ToLower(w)
		if i != 0 && i != len(words)-1 && titleCaseMinorWords[lower] {
			words[i] = lower
			continue
		}
		if hasInnerCaps(w) {
			continue // preserve e.g. "McDonald", "DNA" as-is
		}
		words[i] = capitalizeFirstRune(lower)
	}
	return strings.Join(words, " ")
}

func hasInnerCaps(w string) bool {
	r := []rune(w)
	for i := 1; i < len(r); i++ {
		if r[i] >= 'A' && r[i] <= 'Z' {
			return true
		}
	}
	return false
}

func quoteGlyphs(loc LocaleProvider, depth int) (open, close string) {
	if depth%2 == 0 {
		o, _ := loc.Term("open-quote", TermLong, false)
		c, _ := loc.Term("close-quote", TermLong, false)
		if o == "" {
			o = "“"
		}
		if c == "" {
			c = "”"
		}
		return o, c
	}
	o, _ := loc.Term("open-inner-quote", TermLong, false)
	c, _ := loc.Term("close-inner-quote", TermLong, false)
	if o == "" {
		o = "‘"
	}
	if c == "" {
		c = "’"
	}
	return o, c
}

func wrapQuotes(children []Run, p *Parameters, open, close string) []Run {
	wrapped := make([]Run, 0, len(children)+2)
	wrapped = append(wrapped, newTextRun(open, p, false))
	wrapped = append(wrapped, children...)
	wrapped = append(wrapped, newTextRun(close, p, false))
	return wrapped
}

// ApplyDelimiterResults is the Result-level counterpart of
// [ApplyDelimiter], used by elements (group, names, date) that must
// interleave a delimiter before composition, since composition is what
// resolves final emptiness bottom-up. Non-empty is judged via
// [Result.IsResultEmpty].
func ApplyDelimiterResults(children []Result, tag, delimiter string) []Result {
	if delimiter == "" {
		return children
	}
	out := make([]Result, 0, len(children)*2)
	seenNonEmpty := false
	for _, c := range children {
		if c.IsResultEmpty() {
			out = append(out, c)
			continue
		}
		if seenNonEmpty {
			out = append(out, Leaf(tag+"-delimiter", delimiter, false))
		}
		out = append(out, c)
		seenNonEmpty = true
	}
	return out
}

// ApplyDelimiter interleaves delimiter between non-empty runs only (spec
// §4.10, §8 invariant 3). Empty runs at either end do not produce
// trailing/leading delimiters. An empty delimiter leaves runs untouched.
func ApplyDelimiter(runs []Run, delimiter string, params *Parameters) []Run {
	if delimiter == "" {
		return runs
	}
	out := make([]Run, 0, len(runs)*2)
	seenNonEmpty := false
	for _, r := range runs {
		if r.IsEmpty() {
			out = append(out, r)
			continue
		}
		if seenNonEmpty {
			out = append(out, newTextRun(delimiter, params, false))
		}
		out = append(out, r)
		seenNonEmpty = true
	}
	return out
}
