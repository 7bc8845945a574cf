// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// recycleLen returns the broadcast length for a set of vector
// arguments: the maximum of the lengths, or 0 if any argument is
// empty.
func recycleLen(ns ...int) int {
	nmax := 0
	for _, n := range ns {
		if n == 0 {
			return 0
		}
		if n > nmax {
			nmax = n
		}
	}
	return nmax
}

// each2 evaluates the point kernel f elementwise over x and a,
// recycling the shorter argument, and merges the per-point warnings.
func each2(x, a []float64, f func(x, a float64) (float64, Warning)) ([]float64, Warning) {
	n := recycleLen(len(x), len(a))
	out := make([]float64, n)
	var w Warning
	for i := range out {
		var wi Warning
		out[i], wi = f(x[i%len(x)], a[i%len(a)])
		w |= wi
	}
	return out, w
}

// each3 is each2 for kernels of three vector arguments.
func each3(x, a, b []float64, f func(x, a, b float64) (float64, Warning)) ([]float64, Warning) {
	n := recycleLen(len(x), len(a), len(b))
	out := make([]float64, n)
	var w Warning
	for i := range out {
		var wi Warning
		out[i], wi = f(x[i%len(x)], a[i%len(a)], b[i%len(b)])
		w |= wi
	}
	return out, w
}

// each4 is each2 for kernels of four vector arguments.
func each4(x, a, b, c []float64, f func(x, a, b, c float64) (float64, Warning)) ([]float64, Warning) {
	n := recycleLen(len(x), len(a), len(b), len(c))
	out := make([]float64, n)
	var w Warning
	for i := range out {
		var wi Warning
		out[i], wi = f(x[i%len(x)], a[i%len(a)], b[i%len(b)], c[i%len(c)])
		w |= wi
	}
	return out, w
}

// probInput returns a copy of p converted from the caller's scale to
// plain lower-tail probabilities: log-scale input is exponentiated
// first, then upper-tail input is complemented.
func probInput(p []float64, lowerTail, logProb bool) []float64 {
	pp := make([]float64, len(p))
	copy(pp, p)
	if logProb {
		for i, v := range pp {
			pp[i] = math.Exp(v)
		}
	}
	if !lowerTail {
		for i, v := range pp {
			pp[i] = 1 - v
		}
	}
	return pp
}

// probOutput converts lower-tail probabilities in place to the
// caller's scale: the upper-tail complement is applied in probability
// space, then the log transform.
func probOutput(p []float64, lowerTail, logProb bool) {
	if !lowerTail {
		for i, v := range p {
			p[i] = 1 - v
		}
	}
	if logProb {
		for i, v := range p {
			p[i] = math.Log(v)
		}
	}
}

// logOutput replaces each element with its log.
func logOutput(p []float64) {
	for i, v := range p {
		p[i] = math.Log(v)
	}
}

// expOutput replaces each element with its exponential. Drivers whose
// kernels work natively in log space call this at the boundary.
func expOutput(p []float64) {
	for i, v := range p {
		p[i] = math.Exp(v)
	}
}

// finiteMax returns the largest finite element of xs, or -inf if
// there is none.
func finiteMax(xs []float64) float64 {
	m := math.Inf(-1)
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		if x > m {
			m = x
		}
	}
	return m
}
