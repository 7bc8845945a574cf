// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "gonum.org/v1/gonum/floats"

// The scrubbers below implement driver-level parameter validation:
// each returns a copy of its argument with out-of-domain elements
// replaced by NaN, plus WarnNaN if anything was replaced. Elements
// that are already NaN pass through unchanged and unreported; missing
// values stay silent.

// positiveOrNaN scrubs elements that are not strictly positive.
func positiveOrNaN(xs []float64) ([]float64, Warning) {
	out := make([]float64, len(xs))
	var w Warning
	for i, x := range xs {
		if x <= 0 {
			out[i] = nan
			w = WarnNaN
		} else {
			out[i] = x
		}
	}
	return out, w
}

// nonnegOrNaN scrubs negative elements.
func nonnegOrNaN(xs []float64) ([]float64, Warning) {
	out := make([]float64, len(xs))
	var w Warning
	for i, x := range xs {
		if x < 0 {
			out[i] = nan
			w = WarnNaN
		} else {
			out[i] = x
		}
	}
	return out, w
}

// zeroOneOrNaN scrubs elements outside [0, 1].
func zeroOneOrNaN(xs []float64) ([]float64, Warning) {
	out := make([]float64, len(xs))
	var w Warning
	for i, x := range xs {
		if x < 0 || x > 1 {
			out[i] = nan
			w = WarnNaN
		} else {
			out[i] = x
		}
	}
	return out, w
}

// validProb reports whether p is a probability.
func validProb(p float64) bool {
	return p >= 0 && p <= 1
}

// checkRect verifies that the matrix m is rectangular with at least
// one column and returns its width. An empty matrix is fine and has
// width 0; a ragged or zero-width one is caller error.
func checkRect(name string, m [][]float64) int {
	if len(m) == 0 {
		return 0
	}
	k := len(m[0])
	for _, row := range m {
		if len(row) != k {
			panic("dist: ragged " + name + " matrix")
		}
	}
	if k == 0 {
		panic("dist: " + name + " matrix has no columns")
	}
	return k
}

// normalizeRow returns a copy of row divided by its sum. A row
// containing a negative weight becomes all NaN and raises WarnNaN; a
// row containing a NaN becomes all NaN silently because the sum is
// NaN.
func normalizeRow(row []float64) ([]float64, Warning) {
	r := make([]float64, len(row))
	for _, v := range row {
		if v < 0 {
			for j := range r {
				r[j] = nan
			}
			return r, WarnNaN
		}
	}
	tot := floats.Sum(row)
	for j, v := range row {
		r[j] = v / tot
	}
	return r, 0
}

// normalizeRows applies normalizeRow to every row of prob.
func normalizeRows(prob [][]float64) ([][]float64, Warning) {
	out := make([][]float64, len(prob))
	var w Warning
	for i, row := range prob {
		var wi Warning
		out[i], wi = normalizeRow(row)
		w |= wi
	}
	return out, w
}
