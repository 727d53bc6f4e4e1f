// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/cogentcore/citeproc/csl"

// demoStyle builds a small author-date style exercising names, a
// non-localized year-only date, a suppressible page group, and sort keys, standing
// in for the CSL-XML-compiled [csl.Style] a real processor would load
// (compiling styles from XML is out of scope, spec §1 / SPEC_FULL.md §4).
func demoStyle() *csl.Style {
	authorMacro := &csl.NamesElement{
		Variables:  []string{"author"},
		LabelTerm:  "",
		FamilyCase: csl.CaseNone,
		GivenCase:  csl.CaseNone,
	}
	authorEditorMacro := &csl.NamesElement{
		Variables:   []string{"editor", "translator"},
		LabelTerm:   "editor",
		LabelForm:   csl.PluralizeContextual,
		LabelPrefix: " (",
		LabelSuffix: ")",
		FamilyCase:  csl.CaseNone,
		GivenCase:   csl.CaseNone,
	}
	pageGroup := &csl.GroupElement{
		Prefix: ", ",
		Children: []csl.Element{
			&csl.LabelElement{Variable: "page", Term: "page", TermForm: csl.TermShort, Form: csl.LabelContextual, Suffix: " "},
			&csl.NumberElement{Variable: "page", Term: csl.TermPage, Format: csl.NumberNumeric, PageDelimiter: "–"},
		},
	}
	issuedDate := &csl.DateElement{
		Variable:  "issued",
		Localized: false,
		Parts: []csl.DatePart{
			{Name: csl.PartYear, Format: csl.DateNumeric},
		},
		Precision: csl.PrecisionYear,
	}

	citation := &csl.Layout{
		Prefix: "(",
		Suffix: ")",
		Children: []csl.Element{
			&csl.TextElement{Macro: "author"},
			&csl.TextElement{Value: ", "},
			issuedDate,
		},
	}

	bibliography := &csl.Layout{
		Children: []csl.Element{
			&csl.TextElement{Macro: "author"},
			&csl.GroupElement{
				Prefix: "; ",
				Children: []csl.Element{
					&csl.TextElement{Macro: "editor"},
				},
			},
			&csl.TextElement{Value: ". "},
			&csl.TextElement{Variable: "title", TextCase: csl.CaseTitle, Suffix: "."},
			&csl.GroupElement{
				Prefix:   " ",
				Children: []csl.Element{issuedDate},
			},
			pageGroup,
		},
	}

	return &csl.Style{
		BibliographyLayout: bibliography,
		CitationLayout:     citation,
		Macros: map[string]csl.Element{
			"author": authorMacro,
			"editor": authorEditorMacro,
		},
		SortKeys: []csl.SortKeySpec{
			{Kind: csl.SortByVariable, Variable: "author"},
			{Kind: csl.SortByVariable, Variable: "issued"},
		},
		DefaultLocale: "en-US",
	}
}
