// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
)

// A Bernoulli is a Bernoulli distribution, the law of a single trial
// that yields 1 with probability P and 0 otherwise.
type Bernoulli struct {
	// P is the probability of drawing 1. 0 <= P <= 1.
	P float64

	// Src is the source of random numbers used by Rand. If Src is
	// nil, Rand uses the shared global source.
	Src rand.Source
}

func bernPMF(x, prob float64) (float64, Warning) {
	if math.IsNaN(x) || math.IsNaN(prob) {
		return x + prob, 0
	}
	if prob < 0 || prob > 1 {
		return nan, WarnNaN
	}
	if x == 1 {
		return prob, 0
	}
	if x == 0 {
		return 1 - prob, 0
	}
	return 0, WarnImproperX
}

func bernCDF(x, prob float64) (float64, Warning) {
	if math.IsNaN(x) || math.IsNaN(prob) {
		return x + prob, 0
	}
	if prob < 0 || prob > 1 {
		return nan, WarnNaN
	}
	if x < 0 {
		return 0, 0
	}
	if x < 1 {
		return 1 - prob, 0
	}
	return 1, 0
}

func bernInvCDF(p, prob float64) (float64, Warning) {
	if math.IsNaN(p) || math.IsNaN(prob) {
		return p + prob, 0
	}
	if prob < 0 || prob > 1 || !validProb(p) {
		return nan, WarnNaN
	}
	if p <= 1-prob {
		return 0, 0
	}
	return 1, 0
}

func bernRand(prob float64, src rand.Source) (float64, Warning) {
	if math.IsNaN(prob) {
		return nan, 0
	}
	if prob < 0 || prob > 1 {
		return nan, WarnNaN
	}
	if unif01(src) > prob {
		return 0, 0
	}
	return 1, 0
}

// PMF is the probability of drawing x. Only 0 and 1 carry mass.
func (d Bernoulli) PMF(x float64) float64 {
	v, _ := bernPMF(x, d.P)
	return v
}

// CDF is the probability of drawing x or less.
func (d Bernoulli) CDF(x float64) float64 {
	v, _ := bernCDF(x, d.P)
	return v
}

// InvCDF returns the smallest outcome k with CDF(k) >= p.
func (d Bernoulli) InvCDF(p float64) float64 {
	v, _ := bernInvCDF(p, d.P)
	return v
}

// Rand draws from the distribution.
func (d Bernoulli) Rand() float64 {
	v, _ := bernRand(d.P, d.Src)
	return v
}

func (d Bernoulli) Bounds() (float64, float64) {
	return 0, 1
}

func (d Bernoulli) Step() float64 {
	return 1
}

func (d Bernoulli) Mean() float64 {
	return d.P
}

func (d Bernoulli) Variance() float64 {
	return d.P * (1 - d.P)
}

// DBern returns the Bernoulli mass at each x, recycling x and prob to
// a common length. Queries other than 0 and 1 get zero mass and raise
// WarnImproperX. With logProb the result is on the log scale.
func DBern(x, prob []float64, logProb bool) ([]float64, Warning) {
	p, w := each2(x, prob, bernPMF)
	if logProb {
		logOutput(p)
	}
	return p, w
}

// PBern returns Pr[X <= x] for each x, recycling x and prob.
func PBern(x, prob []float64, lowerTail, logProb bool) ([]float64, Warning) {
	p, w := each2(x, prob, bernCDF)
	probOutput(p, lowerTail, logProb)
	return p, w
}

// QBern returns the Bernoulli quantile for each probability in p,
// recycling p and prob.
func QBern(p, prob []float64, lowerTail, logProb bool) ([]float64, Warning) {
	pp := probInput(p, lowerTail, logProb)
	return each2(pp, prob, bernInvCDF)
}

// RBern draws n Bernoulli variates, recycling prob across draws.
func RBern(n int, prob []float64, src rand.Source) ([]float64, Warning) {
	checkCount(n, len(prob))
	out := make([]float64, n)
	var w Warning
	for i := range out {
		var wi Warning
		out[i], wi = bernRand(prob[i%len(prob)], src)
		w |= wi
	}
	return out, w
}
