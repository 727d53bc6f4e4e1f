// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command citeproc renders citations and bibliographies from a YAML
// item fixture using the csl rendering core.
package main

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fatal(err)
	}
}
