// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csl

import "fmt"

// ExecutionContext bundles the per-call collaborators an [Element]
// consults while rendering: the current item, locale, and the macro
// call stack used for cycle detection (spec §5, §7 CycleDetected).
type ExecutionContext struct {
	Item  ItemAccessor
	Locale LocaleProvider

	macros    map[string]Element
	callStack map[string]bool
}

// NewExecutionContext builds a context for one item's rendering pass.
func NewExecutionContext(item ItemAccessor, locale LocaleProvider, macros map[string]Element) *ExecutionContext {
	return &ExecutionContext{Item: item, Locale: locale, macros: macros, callStack: map[string]bool{}}
}

// Element is one node of the compiled style AST (spec §9: "best
// replaced with a tree interpreter over a compiled style AST"). Render
// evaluates the node against ctx/params and returns its Result.
type Element interface {
	Render(ctx *ExecutionContext, params *Parameters) (Result, error)
}

// TextElement covers all four Text sub-forms of spec §4.6, discriminated
// by which field is set.
type TextElement struct {
	Value    string // Text-by-value
	Variable string // Text-by-variable
	Macro    string // Text-by-macro
	Term     string // Text-by-term
	TermForm TermFormat
	Plural   bool

	Prefix, Suffix string
	Quotes         bool
	TextCase       TextCase
}

func (e *TextElement) Render(ctx *ExecutionContext, params *Parameters) (Result, error) {
	switch {
	case e.Macro != "":
		return RenderTextMacro(func() (Result, error) {
			return evaluateMacro(ctx, params, e.Macro)
		}, e.Prefix, e.Suffix, e.Quotes, e.TextCase)
	case e.Variable != "":
		return RenderTextVariable(ctx.Locale, ctx.Item, e.Variable, e.Prefix, e.Suffix, e.Quotes, e.TextCase)
	case e.Term != "":
		return RenderTextTerm(ctx.Locale, e.Term, e.TermForm, e.Plural, e.Prefix, e.Suffix, e.Quotes, e.TextCase), nil
	default:
		return RenderTextValue(e.Value, e.Prefix, e.Suffix, e.Quotes, e.TextCase), nil
	}
}

// evaluateMacro runs a named macro under cycle detection (spec §5, §7).
func evaluateMacro(ctx *ExecutionContext, params *Parameters, name string) (Result, error) {
	el, ok := ctx.macros[name]
	if !ok {
		return Result{}, fmt.Errorf("csl: unknown macro %q: %w", name, ErrStyleCompile)
	}
	if ctx.callStack[name] {
		return Result{}, fmt.Errorf("csl: macro %q: %w", name, ErrCycleDetected)
	}
	ctx.callStack[name] = true
	defer delete(ctx.callStack, name)
	return el.Render(ctx, params)
}

// LabelElement renders spec §4.6's Label.
type LabelElement struct {
	Variable       string
	Term           string
	TermForm       TermFormat
	Form           LabelForm
	Prefix, Suffix string
	TextCase       TextCase
}

func (e *LabelElement) Render(ctx *ExecutionContext, params *Parameters) (Result, error) {
	return RenderLabel(ctx.Locale, ctx.Item, e.Variable, e.Term, e.TermForm, e.Form, e.Prefix, e.Suffix, e.TextCase), nil
}

// NumberElement renders a Number variable via the number renderer (spec
// §4.7); reachable directly (not only via TextElement) since a
// cs:number node has independent page-range/format attributes.
type NumberElement struct {
	Variable       string
	Term           NumberTerm
	Format         NumberFormat
	Gender         Gender
	PageDelimiter  string
	Prefix, Suffix string
	TextCase       TextCase
}

func (e *NumberElement) Render(ctx *ExecutionContext, params *Parameters) (Result, error) {
	n, ok := ctx.Item.GetAsNumber(e.Variable)
	if !ok {
		return Leaf("number", "", true), nil
	}
	text, err := RenderNumber(ctx.Locale, n, e.Term, e.Format, e.Gender, e.PageDelimiter, params.PageRangeFormat)
	if err != nil {
		return Result{}, err
	}
	r := Leaf("number", text, true)
	if text != "" {
		r = r.WithAffixes(e.Prefix, e.Suffix)
	}
	return r.WithTextCase(e.TextCase), nil
}

// DateElement renders a Date variable, localized or non-localized,
// single or range (spec §4.8).
type DateElement struct {
	Variable       string
	Localized      bool
	Format         DateFormat // used only when Localized
	Parts          []DatePart // scope-local overrides (Localized) or the full list (non-localized)
	Precision      DatePrecision
	Delimiter      string
	Prefix, Suffix string
	TextCase       TextCase
}

func (e *DateElement) Render(ctx *ExecutionContext, params *Parameters) (Result, error) {
	v, ok := ctx.Item.GetAsDate(e.Variable)
	if !ok {
		return Leaf("date", "", true), nil
	}
	if v.IsDateLiteral() {
		r := Leaf("date", v.DateLiteral, true)
		if v.DateLiteral != "" {
			r = r.WithAffixes(e.Prefix, e.Suffix)
		}
		return r.WithTextCase(e.TextCase), nil
	}

	parts := e.Parts
	if e.Localized {
		parts = MergeDateParts(ctx.Locale.DateParts(e.Format), e.Parts)
	}
	parts = FilterPartsByPrecision(parts, e.Precision)

	d := v.Date
	var inner Result
	var err error
	if d.IsRange() {
		if !d.Ordered() {
			// Invariant 4 only speaks to numeric ranges falling back to
			// Expanded; a misordered date range still renders both
			// endpoints as given, with no collapsing possible.
			from := dateComponents{d.YearFrom, d.MonthFrom, d.DayFrom, d.SeasonFrom}
			to := dateComponents{d.YearTo, d.MonthTo, d.DayTo, d.SeasonTo}
			fromR, ferr := RenderDateSingle(ctx.Locale, parts, e.Delimiter, from)
			if ferr != nil {
				return Result{}, ferr
			}
			toR, terr := RenderDateSingle(ctx.Locale, parts, e.Delimiter, to)
			if terr != nil {
				return Result{}, terr
			}
			inner = Composed("date-range", fromR, Leaf("date-range-dash", "–", false), toR)
		} else {
			from := dateComponents{d.YearFrom, d.MonthFrom, d.DayFrom, d.SeasonFrom}
			to := dateComponents{d.YearTo, d.MonthTo, d.DayTo, d.SeasonTo}
			inner, err = RenderDateRange(ctx.Locale, parts, e.Delimiter, from, to)
		}
	} else {
		c := dateComponents{d.YearFrom, d.MonthFrom, d.DayFrom, d.SeasonFrom}
		inner, err = RenderDateSingle(ctx.Locale, parts, e.Delimiter, c)
	}
	if err != nil {
		return Result{}, err
	}
	if !inner.IsResultEmpty() {
		inner = inner.WithAffixes(e.Prefix, e.Suffix)
	}
	inner = inner.WithTextCase(e.TextCase)
	inner.ByVariable = true
	return inner, nil
}

// NamesElement renders a Names variable, or several merged into one
// group (spec §4.9). Variables lists every requested variable name in
// order; the editor/translator merge is applied automatically.
type NamesElement struct {
	Variables         []string
	VariableTerms     map[string]string // variable name -> localized label term
	LabelTerm         string
	LabelForm         Pluralize
	LabelPrefix       string
	LabelSuffix       string
	LabelTextCase     TextCase
	FamilyCase        TextCase
	GivenCase         TextCase
	Prefix, Suffix    string
	TextCase          TextCase
}

func (e *NamesElement) Render(ctx *ExecutionContext, params *Parameters) (Result, error) {
	groups := make([]NameGroup, 0, len(e.Variables))
	for _, v := range e.Variables {
		names, ok := ctx.Item.GetAsNames(v)
		if !ok || len(names) == 0 {
			continue
		}
		groups = append(groups, NameGroup{Variable: v, Term: e.VariableTerms[v], Names: names})
	}
	groups = MergeEditorTranslator(groups)
	if len(groups) == 0 {
		return Leaf("names", "", true), nil
	}
	r, err := RenderNames(ctx.Locale, params, groups, e.LabelTerm, e.LabelForm, e.LabelPrefix, e.LabelSuffix, e.LabelTextCase, e.FamilyCase, e.GivenCase)
	if err != nil {
		return Result{}, err
	}
	if !r.IsResultEmpty() {
		r = r.WithAffixes(e.Prefix, e.Suffix)
	}
	return r.WithTextCase(e.TextCase), nil
}

// GroupElement wraps the Group suppression rule of spec §4.5 around a
// fixed list of child elements.
type GroupElement struct {
	Children       []Element
	Delimiter      string
	Prefix, Suffix string
	TextCase       TextCase
}

func (e *GroupElement) Render(ctx *ExecutionContext, params *Parameters) (Result, error) {
	children := make([]Result, 0, len(e.Children))
	for _, c := range e.Children {
		r, err := c.Render(ctx, params)
		if err != nil {
			return Result{}, err
		}
		children = append(children, r)
	}
	return RenderGroup(children, e.Delimiter, e.Prefix, e.Suffix, e.TextCase), nil
}

// ChooseCase is one if/else-if/else branch of a ChooseElement.
type ChooseCase struct {
	Condition ConditionMatch // nil for the else branch
	Children  []Element
	Delimiter string
}

// ChooseElement implements spec §4.5's Choose: the first matching
// branch's children are rendered as a group (joined by that branch's
// own delimiter, no suppression rule of its own beyond what its
// children carry).
type ChooseElement struct {
	Branches []ChooseCase
}

func (e *ChooseElement) Render(ctx *ExecutionContext, params *Parameters) (Result, error) {
	branches := make([]ChooseBranch, len(e.Branches))
	for i, b := range e.Branches {
		b := b
		branches[i] = ChooseBranch{
			Condition: b.Condition,
			Render: func() (Result, error) {
				children := make([]Result, 0, len(b.Children))
				for _, c := range b.Children {
					r, err := c.Render(ctx, params)
					if err != nil {
						return Result{}, err
					}
					children = append(children, r)
				}
				joined := ApplyDelimiterResults(children, "choose", b.Delimiter)
				return Composed("choose", joined...), nil
			},
		}
	}
	return RenderChoose(branches)
}

// Conditions builds the standard §4.5 condition set against ctx and a
// locator/position/disambiguate set supplied by the citation-processing
// layer above this core (out of scope here beyond the test hooks).
type Conditions struct {
	Variable        string // non-empty test
	IsNumeric       string // variable name whose numeric-coercibility is tested
	IsUncertainDate string // variable name
	Type            []string
	Locator         string
	Position        string
	Disambiguate    bool
}

// TestVariable reports whether ctx.Item has a non-empty value for name.
func TestVariable(ctx *ExecutionContext, name string) bool {
	v, ok := ctx.Item.Get(name)
	if !ok {
		return false
	}
	switch v.Kind {
	case KindText:
		return v.Text != ""
	case KindNames:
		return len(v.Names) > 0
	default:
		return true
	}
}

// TestIsNumeric reports whether name coerces to a NumberVar.
func TestIsNumeric(ctx *ExecutionContext, name string) bool {
	_, ok := ctx.Item.GetAsNumber(name)
	return ok
}

// TestType reports whether ctx.Item's type is one of types.
func TestType(ctx *ExecutionContext, types []string) bool {
	t := ctx.Item.Type()
	for _, want := range types {
		if t == want {
			return true
		}
	}
	return false
}

// MacroElement is a top-level named, reusable sub-expression (spec
// glossary: Macro), registered in the style's macro table and invoked
// via TextElement.Macro.
type MacroElement struct {
	Children  []Element
	Delimiter string
}

func (e *MacroElement) Render(ctx *ExecutionContext, params *Parameters) (Result, error) {
	children := make([]Result, 0, len(e.Children))
	for _, c := range e.Children {
		r, err := c.Render(ctx, params)
		if err != nil {
			return Result{}, err
		}
		children = append(children, r)
	}
	joined := ApplyDelimiterResults(children, "macro", e.Delimiter)
	return Composed("macro", joined...), nil
}

// Layout is the top-level rendering element of a citation or
// bibliography block (spec glossary: Layout). SortKeys is evaluated
// separately by the orchestrator via [GenerateSortKey], not here.
type Layout struct {
	Children       []Element
	Delimiter      string
	Prefix, Suffix string
}

func (l *Layout) Render(ctx *ExecutionContext, params *Parameters) (Result, error) {
	children := make([]Result, 0, len(l.Children))
	for _, c := range l.Children {
		r, err := c.Render(ctx, params)
		if err != nil {
			return Result{}, err
		}
		children = append(children, r)
	}
	joined := ApplyDelimiterResults(children, "layout", l.Delimiter)
	r := Composed("layout", joined...)
	if !r.IsResultEmpty() {
		r = r.WithAffixes(l.Prefix, l.Suffix)
	}
	return r, nil
}

// Style bundles the compiled layout, macro table, and sort key specs
// for one CSL style (out of scope: parsing/compiling the style itself,
// spec §1; this is the "any executable form" the spec permits).
type Style struct {
	BibliographyLayout *Layout
	CitationLayout     *Layout
	Macros             map[string]Element
	SortKeys           []SortKeySpec
	DefaultLocale      string
}
