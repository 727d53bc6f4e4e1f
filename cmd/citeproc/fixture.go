// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/cogentcore/citeproc/csl"
	"gopkg.in/yaml.v3"
)

// fixtureName is one structured-name entry in a YAML item fixture.
type fixtureName struct {
	Family  string `yaml:"family"`
	Given   string `yaml:"given"`
	Literal string `yaml:"literal"`
}

// fixtureItem is one bibliographic item as read from the CLI's YAML
// fixture format. This is test/demo input only (spec.md's item-data
// ingestion is out of scope, SPEC_FULL.md §5) — not a serialization of
// the Run Tree and not a CSL-JSON reader.
type fixtureItem struct {
	ID        string        `yaml:"id"`
	Type      string        `yaml:"type"`
	Title     string        `yaml:"title"`
	Author    []fixtureName `yaml:"author"`
	Editor    []fixtureName `yaml:"editor"`
	Translator []fixtureName `yaml:"translator"`
	IssuedYear int32        `yaml:"issued_year"`
	Page       string       `yaml:"page"`
}

type fixtureFile struct {
	Items []fixtureItem `yaml:"items"`
}

// loadFixture reads a YAML item list and builds [csl.MapItem]s keyed by
// each entry's id, preserving file order via [csl.ItemList].
func loadFixture(path string) (*csl.ItemList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	list := csl.NewItemList()
	for i, fi := range f.Items {
		id := fi.ID
		if id == "" {
			id = fmt.Sprintf("item-%d", i+1)
		}
		list.Set(id, fixtureToItem(fi))
	}
	return list, nil
}

func namesFromFixture(names []fixtureName) []csl.NameOrLiteral {
	out := make([]csl.NameOrLiteral, len(names))
	for i, n := range names {
		if n.Literal != "" {
			out[i] = csl.NameOrLiteral{Literal: n.Literal}
			continue
		}
		out[i] = csl.NameOrLiteral{Name: &csl.Name{Family: n.Family, Given: n.Given}}
	}
	return out
}

func fixtureToItem(fi fixtureItem) *csl.MapItem {
	itemType := fi.Type
	if itemType == "" {
		itemType = "book"
	}
	item := csl.NewMapItem(itemType).
		Set("title", csl.TextValue(fi.Title)).
		Set("issued", csl.DateValue(csl.DateVar{YearFrom: fi.IssuedYear, YearTo: fi.IssuedYear}))
	if len(fi.Author) > 0 {
		item.Set("author", csl.NamesValue(namesFromFixture(fi.Author)))
	}
	if len(fi.Editor) > 0 {
		item.Set("editor", csl.NamesValue(namesFromFixture(fi.Editor)))
	}
	if len(fi.Translator) > 0 {
		item.Set("translator", csl.NamesValue(namesFromFixture(fi.Translator)))
	}
	if fi.Page != "" {
		item.Set("page", csl.TextValue(fi.Page))
	}
	return item
}
