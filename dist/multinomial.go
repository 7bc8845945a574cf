// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/vecdist/go-vecdist/mathx"
)

// A Multinomial is the joint law of the category counts after N
// independent draws over len(P) categories, where category j is drawn
// with weight P[j] (normalized on use):
//
//	f(x) = N!/(x₁!···x_k!) ∏ (P[j]/sum(P))^x[j]
//
// Because the value is a whole count vector rather than a scalar,
// only the mass function and sampling are provided.
type Multinomial struct {
	// N is the number of draws. N must be a non-negative integer.
	N float64

	// P holds the category weights. All must be non-negative.
	P []float64

	// Src is the source of random numbers used by Rand. If Src is
	// nil, Rand uses the shared global source.
	Src rand.Source
}

// mnomLogPMF evaluates the joint log-mass of one count row against
// one weight row of the same length. A NaN anywhere in either row or
// in size wins over every other condition.
func mnomLogPMF(x []float64, size float64, prob []float64) (float64, Warning) {
	pTot := 0.0
	wrongParam := false
	for j := range prob {
		if math.IsNaN(prob[j]) || math.IsNaN(x[j]) {
			return nan, 0
		}
		if prob[j] < 0 {
			wrongParam = true
		}
		pTot += prob[j]
	}
	if math.IsNaN(size) {
		return nan, 0
	}
	if wrongParam || size < 0 || !mathx.IsInt(size) {
		return nan, WarnNaN
	}

	nFac := mathx.LogFactorial(size)
	sumX := 0.0
	prodXFac := 0.0
	prodPowPX := 0.0
	wrongX := false
	var w Warning
	for j := range x {
		if x[j] < 0 || !mathx.IsInt(x[j]) {
			wrongX = true
			if x[j] >= 0 {
				w |= WarnImproperX
			}
		} else {
			sumX += x[j]
			prodXFac += mathx.LogFactorial(x[j])
			prodPowPX += math.Log(prob[j]/pTot) * x[j]
		}
	}
	if wrongX || sumX != size {
		return -inf, w
	}
	return nFac - prodXFac + prodPowPX, w
}

// rmnomRow draws one count row by a chain of conditional binomials:
// category j receives a Binomial(remaining draws, renormalized
// weight) count and the last category takes whatever is left.
func rmnomRow(size float64, prob []float64, src rand.Source) ([]float64, Warning) {
	k := len(prob)
	row := make([]float64, k)

	missing := math.IsNaN(size)
	wrong := false
	pTot := 0.0
	for _, v := range prob {
		if math.IsNaN(v) {
			missing = true
			break
		}
		if v < 0 {
			wrong = true
			break
		}
		pTot += v
	}
	nanRow := func() []float64 {
		for j := range row {
			row[j] = nan
		}
		return row
	}
	if missing {
		return nanRow(), 0
	}
	if wrong || size < 0 || !mathx.IsInt(size) {
		return nanRow(), WarnNaN
	}
	if pTot == 0 {
		// A row with no mass normalizes to 0/0, like a NaN weight.
		return nanRow(), 0
	}

	// TODO: sort the weights descending before the chain?
	sizeLeft := size
	sumP := 1.0
	for j := 0; j < k-1; j++ {
		pTmp := prob[j] / pTot
		pr := 0.0
		if sumP > 0 {
			pr = math.Min(pTmp/sumP, 1)
		}
		row[j] = distuv.Binomial{N: sizeLeft, P: pr, Src: src}.Rand()
		sizeLeft -= row[j]
		sumP -= pTmp
	}
	row[k-1] = sizeLeft
	return row, 0
}

// LogPMF returns the joint log-mass at the count vector x, which must
// have one entry per weight.
func (d Multinomial) LogPMF(x []float64) float64 {
	if len(x) != len(d.P) {
		panic("dist: count and weight lengths differ")
	}
	v, _ := mnomLogPMF(x, d.N, d.P)
	return v
}

func (d Multinomial) PMF(x []float64) float64 {
	return math.Exp(d.LogPMF(x))
}

// Rand draws one count vector.
func (d Multinomial) Rand() []float64 {
	if len(d.P) == 0 {
		panic("dist: empty category weights")
	}
	row, _ := rmnomRow(d.N, d.P, d.Src)
	return row
}

// DMnom returns the joint multinomial mass for each count row in x,
// recycling the rows of x, size and the rows of prob to a common
// length. Count rows that do not sum to the recycled size, or that
// contain negative or non-integer entries, get zero mass; non-integer
// entries additionally raise WarnImproperX. The x and prob matrices
// must have the same number of columns.
func DMnom(x [][]float64, size []float64, prob [][]float64, logProb bool) ([]float64, Warning) {
	m := checkRect("x", x)
	k := checkRect("prob", prob)
	if len(x) > 0 && len(prob) > 0 && m != k {
		panic("dist: x and prob column counts differ")
	}

	n := recycleLen(len(x), len(size), len(prob))
	out := make([]float64, n)
	var w Warning
	for i := range out {
		var wi Warning
		out[i], wi = mnomLogPMF(x[i%len(x)], size[i%len(size)], prob[i%len(prob)])
		w |= wi
	}
	if !logProb {
		expOutput(out)
	}
	return out, w
}

// RMnom draws n multinomial count rows, recycling size and the rows
// of prob across draws.
func RMnom(n int, size []float64, prob [][]float64, src rand.Source) ([][]float64, Warning) {
	checkCount(n, len(size), len(prob))
	checkRect("prob", prob)

	out := make([][]float64, n)
	var w Warning
	for i := range out {
		var wi Warning
		out[i], wi = rmnomRow(size[i%len(size)], prob[i%len(prob)], src)
		w |= wi
	}
	return out, w
}
