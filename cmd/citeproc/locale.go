// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/cogentcore/citeproc/csl"
)

// builtinEnglishLocale returns a minimal en-US [csl.Locale] sufficient to
// drive the demo style below. Parsing real CSL locale XML is out of
// scope (spec §1); this is the same hand-populated-fixture idiom the
// package's own tests use (csl/locale_test.go, csl/style_test.go).
func builtinEnglishLocale() *csl.Locale {
	l := csl.NewLocale("en-US")
	l.SetTerm("and", csl.TermLong, false, "and")
	l.SetTerm("et-al", csl.TermLong, false, "et al.")
	l.SetTerm("editor", csl.TermLong, false, "editor")
	l.SetTerm("editor", csl.TermLong, true, "editors")
	l.SetTerm("translator", csl.TermLong, false, "translator")
	l.SetTerm("translator", csl.TermLong, true, "translators")
	l.SetTerm("editor-translator", csl.TermLong, false, "editor & translator")
	l.SetTerm("editor-translator", csl.TermLong, true, "editors & translators")
	l.SetTerm("page", csl.TermLong, false, "page")
	l.SetTerm("page", csl.TermLong, true, "pages")
	l.SetTerm("page", csl.TermShort, false, "p.")
	l.SetTerm("page", csl.TermShort, true, "pp.")
	l.SetTerm("ad", csl.TermLong, false, " AD")
	l.SetTerm("bc", csl.TermLong, false, " BC")
	l.SetTerm("ordinal", csl.TermLong, false, "th")
	l.SetTerm("ordinal-1", csl.TermLong, false, "st")
	l.SetTerm("ordinal-2", csl.TermLong, false, "nd")
	l.SetTerm("ordinal-3", csl.TermLong, false, "rd")
	for i, name := range []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	} {
		l.SetTerm(fmt.Sprintf("month-%02d", i+1), csl.TermLong, false, name)
		l.SetTerm(fmt.Sprintf("month-%02d", i+1), csl.TermShort, false, name[:3]+".")
	}
	l.SetTerm("season-01", csl.TermLong, false, "Spring")
	l.SetTerm("season-02", csl.TermLong, false, "Summer")
	l.SetTerm("season-03", csl.TermLong, false, "Autumn")
	l.SetTerm("season-04", csl.TermLong, false, "Winter")
	l.SetDateParts(csl.DateFormatNumeric, []csl.DatePart{
		{Name: csl.PartYear, Format: csl.DateNumeric},
		{Name: csl.PartMonth, Format: csl.DateNumericLeadingZeros, Prefix: "-"},
		{Name: csl.PartDay, Format: csl.DateNumericLeadingZeros, Prefix: "-"},
	})
	l.SetDateParts(csl.DateFormatText, []csl.DatePart{
		{Name: csl.PartMonth, Format: csl.DateLong, Suffix: " "},
		{Name: csl.PartDay, Format: csl.DateNumeric, Suffix: ", "},
		{Name: csl.PartYear, Format: csl.DateNumeric},
	})
	return l
}
