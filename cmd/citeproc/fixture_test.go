// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFixture = `
items:
  - id: smith2020
    type: book
    title: A Treatise on Testing
    author:
      - family: Smith
        given: Jane
    issued_year: 2020
    page: "10-20"
  - id: jones1999
    type: article
    title: Early Findings
    author:
      - family: Jones
        given: Robert
    editor:
      - family: Lee
        given: Amy
    issued_year: 1999
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFixturePreservesFileOrder(t *testing.T) {
	path := writeFixture(t, sampleFixture)
	list, err := loadFixture(path)
	require.NoError(t, err)
	require.Equal(t, 2, list.Len())
	assert.Equal(t, []string{"smith2020", "jones1999"}, list.Order)
}

func TestLoadFixtureBuildsExpectedValues(t *testing.T) {
	path := writeFixture(t, sampleFixture)
	list, err := loadFixture(path)
	require.NoError(t, err)

	item, ok := list.Get("smith2020")
	require.True(t, ok)
	v, ok := item.Get("title")
	require.True(t, ok)
	assert.Equal(t, "A Treatise on Testing", v.Text)

	names, ok := item.GetAsNames("author")
	require.True(t, ok)
	require.Len(t, names, 1)
	assert.Equal(t, "Smith", names[0].Name.Family)
	assert.Equal(t, "Jane", names[0].Name.Given)

	n, ok := item.GetAsNumber("page")
	require.True(t, ok)
	assert.Equal(t, uint32(10), n.Min)
	assert.Equal(t, uint32(20), n.Max)
}

func TestLoadFixtureGeneratesIDWhenMissing(t *testing.T) {
	path := writeFixture(t, `
items:
  - title: Untitled
    issued_year: 2001
`)
	list, err := loadFixture(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"item-1"}, list.Order)
}

func TestLoadFixtureMergesEditorIntoSecondItem(t *testing.T) {
	path := writeFixture(t, sampleFixture)
	list, err := loadFixture(path)
	require.NoError(t, err)

	item, ok := list.Get("jones1999")
	require.True(t, ok)
	names, ok := item.GetAsNames("editor")
	require.True(t, ok)
	require.Len(t, names, 1)
	assert.Equal(t, "Lee", names[0].Name.Family)
}
