// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csl

import "errors"

// Sentinel error kinds a rendering call can fail with. Errors propagate to
// the top-level call and abort it entirely; no partial bibliography is
// emitted (spec §7).
var (
	// ErrLocaleNotFound is fatal at call start if the invariant locale is
	// missing from the provider chain.
	ErrLocaleNotFound = errors.New("csl: invariant locale not found")

	// ErrUnsupportedValueType means a variable was expected to be of a
	// given type but was not (e.g. ordinal formatting requested on a
	// string variable).
	ErrUnsupportedValueType = errors.New("csl: unsupported value type")

	// ErrUnsupportedFormat means a date-part or number format was
	// requested that the locale cannot satisfy.
	ErrUnsupportedFormat = errors.New("csl: unsupported format")

	// ErrCycleDetected means the macro call graph contains a cycle.
	ErrCycleDetected = errors.New("csl: cycle detected in macro graph")

	// ErrStyleCompile is raised by the (external, out of scope) style
	// compiler; this package returns it wrapped only when a style
	// references a macro its macro table does not define. Kept here so
	// callers can match on it uniformly across the boundary.
	ErrStyleCompile = errors.New("csl: style compile error")
)
