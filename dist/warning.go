// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "strings"

// A Warning is a set of diagnostics accumulated over one vectorized
// call. The call always returns a full-length result; the Warning
// reports, once per call, what was forced to NaN or zero mass along
// the way. The zero Warning means the call was clean.
type Warning uint

const (
	// WarnNaN reports that at least one out-of-domain parameter or
	// probability made an output element NaN.
	WarnNaN Warning = 1 << iota

	// WarnImproperX reports that at least one observation was
	// impossible for the distribution's support pattern, such as a
	// Bernoulli query that is neither 0 nor 1 or a non-integer
	// query to a discrete mass function. The affected elements get
	// zero mass, not NaN.
	WarnImproperX
)

func (w Warning) String() string {
	if w == 0 {
		return "ok"
	}
	var msgs []string
	if w&WarnNaN != 0 {
		msgs = append(msgs, "NaNs produced")
	}
	if w&WarnImproperX != 0 {
		msgs = append(msgs, "improper x")
	}
	return strings.Join(msgs, "; ")
}
