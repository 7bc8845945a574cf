// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// A Proportion is a beta distribution reparametrized for estimating a
// proportion: shapes Size·Mean+1 and Size·(1-Mean)+1, so Mean is the
// mode and Size controls how tightly the mass concentrates around it.
type Proportion struct {
	// Size is the concentration. Size > 0.
	Size float64

	// Mean is the mode of the underlying beta. 0 <= Mean <= 1.
	Mean float64

	// Src is the source of random numbers used by Rand. If Src is
	// nil, Rand uses the shared global source.
	Src rand.Source
}

// propBeta maps the size/mean parametrization to the underlying beta.
// Valid parameters always give shapes >= 1.
func propBeta(size, mean float64, src rand.Source) distuv.Beta {
	return distuv.Beta{Alpha: size*mean + 1, Beta: size*(1-mean) + 1, Src: src}
}

func propPDF(x, size, mean float64) (float64, Warning) {
	if math.IsNaN(x) || math.IsNaN(size) || math.IsNaN(mean) {
		return nan, 0
	}
	if size <= 0 || mean < 0 || mean > 1 {
		return nan, WarnNaN
	}
	return propBeta(size, mean, nil).Prob(x), 0
}

func propCDF(x, size, mean float64) (float64, Warning) {
	if math.IsNaN(x) || math.IsNaN(size) || math.IsNaN(mean) {
		return nan, 0
	}
	if size <= 0 || mean < 0 || mean > 1 {
		return nan, WarnNaN
	}
	return propBeta(size, mean, nil).CDF(x), 0
}

func propInvCDF(p, size, mean float64) (float64, Warning) {
	if math.IsNaN(p) || math.IsNaN(size) || math.IsNaN(mean) {
		return nan, 0
	}
	if size <= 0 || mean < 0 || mean > 1 || !validProb(p) {
		return nan, WarnNaN
	}
	return propBeta(size, mean, nil).Quantile(p), 0
}

func propRand(size, mean float64, src rand.Source) (float64, Warning) {
	if math.IsNaN(size) || math.IsNaN(mean) {
		return nan, 0
	}
	if size <= 0 || mean < 0 || mean > 1 {
		return nan, WarnNaN
	}
	return propBeta(size, mean, src).Rand(), 0
}

func (d Proportion) PDF(x float64) float64 {
	v, _ := propPDF(x, d.Size, d.Mean)
	return v
}

func (d Proportion) CDF(x float64) float64 {
	v, _ := propCDF(x, d.Size, d.Mean)
	return v
}

func (d Proportion) InvCDF(p float64) float64 {
	v, _ := propInvCDF(p, d.Size, d.Mean)
	return v
}

// Rand draws from the underlying beta distribution.
func (d Proportion) Rand() float64 {
	v, _ := propRand(d.Size, d.Mean, d.Src)
	return v
}

func (d Proportion) Bounds() (float64, float64) {
	return 0, 1
}

// DProp returns the reparametrized beta density at each x, recycling
// x, size and mean to a common length.
func DProp(x, size, mean []float64, logProb bool) ([]float64, Warning) {
	p, w := each3(x, size, mean, propPDF)
	if logProb {
		logOutput(p)
	}
	return p, w
}

// PProp returns Pr[X <= x] for each x, recycling x, size and mean.
func PProp(x, size, mean []float64, lowerTail, logProb bool) ([]float64, Warning) {
	p, w := each3(x, size, mean, propCDF)
	probOutput(p, lowerTail, logProb)
	return p, w
}

// QProp returns the reparametrized beta quantile for each probability
// in p, recycling p, size and mean.
func QProp(p, size, mean []float64, lowerTail, logProb bool) ([]float64, Warning) {
	pp := probInput(p, lowerTail, logProb)
	return each3(pp, size, mean, propInvCDF)
}

// RProp draws n variates from the reparametrized beta, recycling size
// and mean across draws.
func RProp(n int, size, mean []float64, src rand.Source) ([]float64, Warning) {
	checkCount(n, len(size), len(mean))
	out := make([]float64, n)
	var w Warning
	for i := range out {
		var wi Warning
		out[i], wi = propRand(size[i%len(size)], mean[i%len(mean)], src)
		w |= wi
	}
	return out, w
}
