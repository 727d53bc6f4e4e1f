// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csl

// RenderGroup implements the Group suppression rule of spec §4.5: if
// children contain at least one by-variable descendant and every such
// descendant is empty, the whole group renders empty. Otherwise the
// group's delimiter is applied between non-empty children and the
// result is wrapped with prefix/suffix/text-case.
func RenderGroup(children []Result, delimiter, prefix, suffix string, tc TextCase) Result {
	merged := Composed("group", children...)
	hasByVar, allEmpty := merged.ByVariableDescendantsEmpty()
	if hasByVar && allEmpty {
		return Empty("group")
	}
	joined := ApplyDelimiterResults(children, "group", delimiter)
	r := Composed("group", joined...)
	r = r.WithAffixes(prefix, suffix).WithTextCase(tc)
	return r
}

// ConditionMatch is a single named condition test evaluated by Choose
// (spec §4.5): variable, is-numeric, is-uncertain-date, type, locator,
// position, and disambiguate are all expressed as a predicate the
// caller supplies, since the core does not itself own item-attribute
// semantics beyond the Variable Model.
type ConditionMatch func() bool

// ChooseBranch pairs a condition with the Result it renders to when
// selected. A Branch with a nil Condition is the implicit "else".
type ChooseBranch struct {
	Condition ConditionMatch
	Render    func() (Result, error)
}

// RenderChoose evaluates branches left to right, selecting the first
// whose Condition is nil or returns true, and returns its rendered
// Result (spec §4.5). Not-selected branches are never rendered. If no
// branch matches and there is no else branch, the empty Result is
// returned.
func RenderChoose(branches []ChooseBranch) (Result, error) {
	for _, b := range branches {
		if b.Condition == nil || b.Condition() {
			return b.Render()
		}
	}
	return Empty("choose"), nil
}
