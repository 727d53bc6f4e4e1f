// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional settings file citeproc reads before processing
// any items, giving a user a place to pin force-locale/page-range/sort
// defaults without repeating flags on every invocation. DefaultLocale is
// read but not applied: the cite and bibliography commands take the
// requested locale from --locale only.
type Config struct {
	DefaultLocale   string `yaml:"default_locale"`
	ForceLocale     bool   `yaml:"force_locale"`
	PageRangeFormat string `yaml:"page_range_format"`
	Collate         bool   `yaml:"collate"`
}

// defaultConfig returns the settings used when no config file is given;
// its "en-US" locale matches the --locale flag's default.
func defaultConfig() Config {
	return Config{
		DefaultLocale:   "en-US",
		PageRangeFormat: "expanded",
		Collate:         true,
	}
}

// loadConfig reads a YAML config file at path, falling back to
// defaultConfig when path is empty. A missing file at an explicitly
// requested path is an error; an empty path is never an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) pageRangeFormat() pageRangeFormatName {
	return pageRangeFormatName(c.PageRangeFormat)
}
