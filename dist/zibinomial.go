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

// A ZIBinomial is a zero-inflated binomial mixture: with probability
// Pi the value is zero outright, otherwise it is a Binomial(N, P)
// draw, so zeros occur both structurally and from the binomial
// itself.
//
// The parameters are not range checked by the methods. The vector
// drivers replace out-of-domain values with NaN before evaluating;
// direct method calls get whatever the formulas yield.
type ZIBinomial struct {
	// N is the number of binomial trials. N >= 0.
	N float64

	// P is the per-trial success probability. 0 <= P <= 1.
	P float64

	// Pi is the structural zero probability. 0 <= Pi <= 1.
	Pi float64

	// Src is the source of random numbers used by Rand. If Src is
	// nil, Rand uses the shared global source.
	Src rand.Source
}

// binomInvCDF returns the smallest integer k with CDF(k) >= p, found
// by bisecting the binomial CDF over 0..N.
func binomInvCDF(p float64, b distuv.Binomial) float64 {
	if math.IsNaN(p) {
		return nan
	}
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return b.N
	}
	lo, hi := 0.0, b.N
	for lo < hi {
		mid := math.Floor((lo + hi) / 2)
		if b.CDF(mid) < p {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func zibPMF(x, n, p, pi float64) (float64, Warning) {
	if math.IsNaN(x) || math.IsNaN(n) || math.IsNaN(p) || math.IsNaN(pi) {
		return nan, 0
	}
	if x < 0 {
		return 0, 0
	}
	if !mathx.IsInt(x) {
		return 0, WarnImproperX
	}
	if math.IsInf(x, 0) {
		return 0, 0
	}
	if x == 0 {
		return pi + (1-pi)*math.Pow(1-p, n), 0
	}
	// distuv's binomial mass is computed in log space and comes out
	// NaN at exactly p = 0 and p = 1; take those points directly.
	var b float64
	switch {
	case p == 0:
		b = 0
	case p == 1:
		if x == n {
			b = 1
		}
	default:
		b = distuv.Binomial{N: n, P: p}.Prob(x)
	}
	return (1 - pi) * b, 0
}

func zibCDF(x, n, p, pi float64) (float64, Warning) {
	if math.IsNaN(x) || math.IsNaN(n) || math.IsNaN(p) || math.IsNaN(pi) {
		return nan, 0
	}
	if x < 0 {
		return 0, 0
	}
	if math.IsInf(x, 1) {
		return 1, 0
	}
	return pi + (1-pi)*distuv.Binomial{N: n, P: p}.CDF(x), 0
}

func zibInvCDF(pp, n, p, pi float64) (float64, Warning) {
	if math.IsNaN(pp) || math.IsNaN(n) || math.IsNaN(p) || math.IsNaN(pi) {
		return nan, 0
	}
	if pp < pi {
		return 0, 0
	}
	return binomInvCDF((pp-pi)/(1-pi), distuv.Binomial{N: n, P: p}), 0
}

func zibRand(n, p, pi float64, src rand.Source) (float64, Warning) {
	if math.IsNaN(n) || math.IsNaN(p) || math.IsNaN(pi) {
		return nan, 0
	}
	u := unif01(src)
	if u < pi {
		return 0, 0
	}
	return distuv.Binomial{N: n, P: p, Src: src}.Rand(), 0
}

func (d ZIBinomial) PMF(x float64) float64 {
	v, _ := zibPMF(x, d.N, d.P, d.Pi)
	return v
}

func (d ZIBinomial) CDF(x float64) float64 {
	v, _ := zibCDF(x, d.N, d.P, d.Pi)
	return v
}

func (d ZIBinomial) InvCDF(p float64) float64 {
	v, _ := zibInvCDF(p, d.N, d.P, d.Pi)
	return v
}

// Rand draws a uniform variate to pick the mixture branch, then a
// binomial count if the structural zero did not fire.
func (d ZIBinomial) Rand() float64 {
	v, _ := zibRand(d.N, d.P, d.Pi, d.Src)
	return v
}

func (d ZIBinomial) Step() float64 {
	return 1
}

func (d ZIBinomial) Bounds() (float64, float64) {
	return 0, d.N
}

func (d ZIBinomial) Mean() float64 {
	return (1 - d.Pi) * d.N * d.P
}

func (d ZIBinomial) Variance() float64 {
	np := d.N * d.P
	return (1 - d.Pi) * (np*(1-d.P) + d.Pi*np*np)
}

// DZIB returns the zero-inflated binomial mass at each x, recycling
// x, size, prob and pi to a common length. Out-of-domain parameter
// elements yield NaN and raise WarnNaN; non-integer queries get zero
// mass and raise WarnImproperX.
func DZIB(x, size, prob, pi []float64, logProb bool) ([]float64, Warning) {
	sizeN, wn := nonnegOrNaN(size)
	probN, wp := zeroOneOrNaN(prob)
	piN, wpi := zeroOneOrNaN(pi)
	p, w := each4(x, sizeN, probN, piN, zibPMF)
	if logProb {
		logOutput(p)
	}
	return p, w | wn | wp | wpi
}

// PZIB returns Pr[X <= x] for each x, recycling x, size, prob and pi.
func PZIB(x, size, prob, pi []float64, lowerTail, logProb bool) ([]float64, Warning) {
	sizeN, wn := nonnegOrNaN(size)
	probN, wp := zeroOneOrNaN(prob)
	piN, wpi := zeroOneOrNaN(pi)
	p, w := each4(x, sizeN, probN, piN, zibCDF)
	probOutput(p, lowerTail, logProb)
	return p, w | wn | wp | wpi
}

// QZIB returns the zero-inflated binomial quantile for each
// probability in p, recycling p, size, prob and pi. Probabilities
// outside [0, 1] after the tail and log adjustments yield NaN and
// raise WarnNaN.
func QZIB(p, size, prob, pi []float64, lowerTail, logProb bool) ([]float64, Warning) {
	pp := probInput(p, lowerTail, logProb)
	pp, wq := zeroOneOrNaN(pp)
	sizeN, wn := nonnegOrNaN(size)
	probN, wp := zeroOneOrNaN(prob)
	piN, wpi := zeroOneOrNaN(pi)
	x, w := each4(pp, sizeN, probN, piN, zibInvCDF)
	return x, w | wq | wn | wp | wpi
}

// RZIB draws n zero-inflated binomial variates, recycling size, prob
// and pi across draws.
func RZIB(n int, size, prob, pi []float64, src rand.Source) ([]float64, Warning) {
	checkCount(n, len(size), len(prob), len(pi))
	sizeN, wn := nonnegOrNaN(size)
	probN, wp := zeroOneOrNaN(prob)
	piN, wpi := zeroOneOrNaN(pi)
	out := make([]float64, n)
	var w Warning
	for i := range out {
		var wi Warning
		out[i], wi = zibRand(sizeN[i%len(sizeN)], probN[i%len(probN)], piN[i%len(piN)], src)
		w |= wi
	}
	return out, w | wn | wp | wpi
}
