// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist implements probability distributions and R-style vectorized
// evaluators for them.
//
// Every distribution comes in two shapes. The scalar shape is a value
// type such as Kumaraswamy or ZIBinomial with PDF/PMF, CDF, InvCDF,
// Rand and Bounds methods; these assume in-domain parameters and are
// meant for callers that construct the distribution once and query it
// many times. The vectorized shape is a set of four package functions
// per family, named with the d/p/q/r prefixes familiar from R:
//
//	DKumar(x, a, b, logProb)              density
//	PKumar(x, a, b, lowerTail, logProb)   cumulative probability
//	QKumar(p, a, b, lowerTail, logProb)   quantile
//	RKumar(n, a, b, src)                  random variates
//
// Vector arguments recycle: the output length is the longest argument
// length and element i of each argument is read at index i modulo its
// length. Any zero-length argument yields a zero-length result.
//
// The vectorized functions validate elementwise and never fail on bad
// values. A NaN anywhere among an element's inputs makes that output
// element NaN with no diagnostic; it is treated as a missing value and
// wins over every other rule. An out-of-domain parameter (negative
// scale, probability outside [0, 1], ...) also makes the element NaN
// but additionally sets WarnNaN in the returned Warning, once for the
// whole call. Only structural misuse, such as a ragged probability
// matrix or a negative sample count, panics.
//
// Cumulative functions apply the upper-tail complement in probability
// space before any log transform, and quantile functions undo the
// caller's transforms in the opposite order: exp for log-scale input
// first, then the complement, then the inversion.
package dist // import "github.com/vecdist/go-vecdist/dist"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
