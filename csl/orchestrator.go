// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csl

// Entry is one item's fully rendered layout together with the sort keys
// used to order it against its siblings (spec §3).
type Entry struct {
	Layout   Run
	SortKeys []string
}

// buildEntry renders one item's layout and sort keys against a style
// (spec §4.1).
func buildEntry(style *Style, layout *Layout, item ItemAccessor, loc LocaleProvider, params *Parameters) (Entry, error) {
	ctx := NewExecutionContext(item, loc, style.Macros)
	result, err := layout.Render(ctx, params)
	if err != nil {
		return Entry{}, err
	}
	run := result.ToComposedRun(loc, params)

	keys := make([]string, len(style.SortKeys))
	for i, spec := range style.SortKeys {
		k, err := GenerateSortKey(item, loc, params, spec)
		if err != nil {
			return Entry{}, err
		}
		keys[i] = k
	}
	return Entry{Layout: run, SortKeys: keys}, nil
}

// resolveOrchestratorLocale implements the force_locale switch of spec
// §6.3: false always uses the style's default locale; true honors the
// caller-supplied tag.
func resolveOrchestratorLocale(resolver *LocaleResolver, style *Style, locale string, forceLocale bool) (*Locale, error) {
	tag := style.DefaultLocale
	if forceLocale {
		tag = locale
	}
	if tag == "" {
		tag = "en-US"
	}
	return resolver.Resolve(tag)
}

// GenerateBibliography implements spec §4.1/§6.3: resolves the locale,
// renders every item's bibliography layout, and stably sorts the
// resulting entries by sort key.
func GenerateBibliography(style *Style, resolver *LocaleResolver, items []ItemAccessor, locale string, forceLocale bool, cmp Comparator, params *Parameters) ([]Run, error) {
	loc, err := resolveOrchestratorLocale(resolver, style, locale, forceLocale)
	if err != nil {
		return nil, err
	}
	entries := make([]SortableEntry, len(items))
	for i, item := range items {
		e, err := buildEntry(style, style.BibliographyLayout, item, loc, params)
		if err != nil {
			return nil, err
		}
		entries[i] = SortableEntry{Entry: e, SortKey: MergeSortKeys(e.SortKeys), Position: i}
	}
	if cmp != nil {
		StableSortEntries(entries, cmp)
	}
	out := make([]Run, len(entries))
	for i, e := range entries {
		out[i] = e.Entry.Layout
	}
	return out, nil
}

// GenerateCitation implements spec §4.1/§6.3: zero items yields nil;
// one item returns its layout unchanged; more than one are sorted then
// joined with delimiter via [ApplyDelimiter].
func GenerateCitation(style *Style, resolver *LocaleResolver, items []ItemAccessor, locale string, forceLocale bool, delimiter string, cmp Comparator, params *Parameters) (Run, error) {
	if len(items) == 0 {
		return nil, nil
	}
	loc, err := resolveOrchestratorLocale(resolver, style, locale, forceLocale)
	if err != nil {
		return nil, err
	}
	entries := make([]SortableEntry, len(items))
	for i, item := range items {
		e, err := buildEntry(style, style.CitationLayout, item, loc, params)
		if err != nil {
			return nil, err
		}
		entries[i] = SortableEntry{Entry: e, SortKey: MergeSortKeys(e.SortKeys), Position: i}
	}
	if len(entries) == 1 {
		return entries[0].Entry.Layout, nil
	}
	if cmp != nil {
		StableSortEntries(entries, cmp)
	}
	runs := make([]Run, len(entries))
	for i, e := range entries {
		runs[i] = e.Entry.Layout
	}
	joined := ApplyDelimiter(runs, delimiter, params)
	return &ComposedRun{Tag: "citation", Children: joined, ByVariable: anyByVariable(joined)}, nil
}

func anyByVariable(runs []Run) bool {
	for _, r := range runs {
		if r.IsByVariable() {
			return true
		}
	}
	return false
}
