// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/vecdist/go-vecdist/mathx"
)

// A Categorical is a distribution over the integer categories
// 1..len(P), where category i carries weight P[i-1]. The weights are
// normalized to sum to 1 on every use, so they may be given as
// unscaled counts.
type Categorical struct {
	// P holds the category weights. All must be non-negative.
	P []float64

	// Src is the source of random numbers used by Rand. If Src is
	// nil, Rand uses the shared global source.
	Src rand.Source
}

// The categorical point kernels take a pre-normalized weight row; a
// row that failed normalization is all NaN and the kernels propagate
// that even for queries outside 1..k.

func catPMF(x float64, row []float64) (float64, Warning) {
	if math.IsNaN(x) {
		return nan, 0
	}
	if !mathx.IsInt(x) || x < 1 || x > float64(len(row)) {
		var w Warning
		if !mathx.IsInt(x) {
			w = WarnImproperX
		}
		if math.IsNaN(row[0]) {
			return nan, w
		}
		return 0, w
	}
	return row[int(x)-1], 0
}

func catCDF(x float64, row []float64) (float64, Warning) {
	if math.IsNaN(x) {
		return nan, 0
	}
	if x < 1 {
		if math.IsNaN(row[0]) {
			return nan, 0
		}
		return 0, 0
	}
	if x > float64(len(row)) {
		if math.IsNaN(row[0]) {
			return nan, 0
		}
		return 1, 0
	}
	p := 0.0
	for j := 0; j < int(x); j++ {
		p += row[j]
	}
	return p, 0
}

func catInvCDF(pp float64, row []float64) (float64, Warning) {
	if math.IsNaN(pp) {
		return nan, 0
	}
	if pp < 0 || pp > 1 {
		return nan, WarnNaN
	}
	if pp == 0 {
		if math.IsNaN(row[0]) {
			return nan, 0
		}
		return 1, 0
	}
	// Peel mass off the upper tail until pp clears the remainder;
	// trailing zero-weight categories are skipped this way.
	pTmp := 1.0
	jj := 0
	for j := len(row) - 1; j >= 0; j-- {
		pTmp -= row[j]
		if pp > pTmp {
			jj = j
			break
		}
	}
	if math.IsNaN(pTmp) {
		return nan, 0
	}
	return float64(jj + 1), 0
}

func catRand(row []float64, src rand.Source) (float64, Warning) {
	u := unif01(src)
	pTmp := 1.0
	jj := 0
	for j := len(row) - 1; j >= 0; j-- {
		pTmp -= row[j]
		if u > pTmp {
			jj = j
			break
		}
	}
	if math.IsNaN(pTmp) {
		return nan, 0
	}
	return float64(jj + 1), 0
}

func (d Categorical) norm() []float64 {
	if len(d.P) == 0 {
		panic("dist: empty category weights")
	}
	row, _ := normalizeRow(d.P)
	return row
}

func (d Categorical) PMF(x float64) float64 {
	v, _ := catPMF(x, d.norm())
	return v
}

func (d Categorical) CDF(x float64) float64 {
	v, _ := catCDF(x, d.norm())
	return v
}

func (d Categorical) InvCDF(p float64) float64 {
	v, _ := catInvCDF(p, d.norm())
	return v
}

// Rand draws a category by inverse transform of a single uniform
// variate.
func (d Categorical) Rand() float64 {
	v, _ := catRand(d.norm(), d.Src)
	return v
}

func (d Categorical) Bounds() (float64, float64) {
	return 1, float64(len(d.P))
}

func (d Categorical) Step() float64 {
	return 1
}

// DCat returns the categorical mass at each x. Each output element
// matches a query against a weight row, recycling x and the rows of
// prob to a common length. Non-integer queries get zero mass and
// raise WarnImproperX; rows with negative weights yield NaN and raise
// WarnNaN. A ragged or zero-width prob matrix panics.
func DCat(x []float64, prob [][]float64, logProb bool) ([]float64, Warning) {
	checkRect("prob", prob)
	probN, w := normalizeRows(prob)
	n := recycleLen(len(x), len(probN))
	out := make([]float64, n)
	for i := range out {
		var wi Warning
		out[i], wi = catPMF(x[i%len(x)], probN[i%len(probN)])
		w |= wi
	}
	if logProb {
		logOutput(out)
	}
	return out, w
}

// PCat returns Pr[X <= x] for each x, recycling x and the rows of
// prob.
func PCat(x []float64, prob [][]float64, lowerTail, logProb bool) ([]float64, Warning) {
	checkRect("prob", prob)
	probN, w := normalizeRows(prob)
	n := recycleLen(len(x), len(probN))
	out := make([]float64, n)
	for i := range out {
		var wi Warning
		out[i], wi = catCDF(x[i%len(x)], probN[i%len(probN)])
		w |= wi
	}
	probOutput(out, lowerTail, logProb)
	return out, w
}

// QCat returns the smallest category whose cumulative weight reaches
// each probability in p, recycling p and the rows of prob.
func QCat(p []float64, prob [][]float64, lowerTail, logProb bool) ([]float64, Warning) {
	checkRect("prob", prob)
	pp := probInput(p, lowerTail, logProb)
	probN, w := normalizeRows(prob)
	n := recycleLen(len(pp), len(probN))
	out := make([]float64, n)
	for i := range out {
		var wi Warning
		out[i], wi = catInvCDF(pp[i%len(pp)], probN[i%len(probN)])
		w |= wi
	}
	return out, w
}

// RCat draws n categories, recycling the rows of prob across draws.
func RCat(n int, prob [][]float64, src rand.Source) ([]float64, Warning) {
	checkCount(n, len(prob))
	checkRect("prob", prob)
	probN, w := normalizeRows(prob)
	out := make([]float64, n)
	for i := range out {
		var wi Warning
		out[i], wi = catRand(probN[i%len(probN)], src)
		w |= wi
	}
	return out, w
}
