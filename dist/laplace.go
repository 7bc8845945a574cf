// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
)

// A Laplace is a Laplace (double exponential) distribution with
// location Mu and scale Sigma:
//
//	f(x) = exp(-|x-mu|/sigma) / (2 sigma)
//
// Both the CDF and the quantile have closed piecewise-exponential
// forms around the location.
type Laplace struct {
	// Mu is the location (and mean, median and mode).
	Mu float64

	// Sigma is the scale. Sigma > 0.
	Sigma float64

	// Src is the source of random numbers used by Rand. If Src is
	// nil, Rand uses the shared global source.
	Src rand.Source
}

func laplacePDF(x, mu, sigma float64) (float64, Warning) {
	if math.IsNaN(x) || math.IsNaN(mu) || math.IsNaN(sigma) {
		return x + mu + sigma, 0
	}
	if sigma <= 0 {
		return nan, WarnNaN
	}
	z := math.Abs(x-mu) / sigma
	return math.Exp(-z) / (2 * sigma), 0
}

func laplaceCDF(x, mu, sigma float64) (float64, Warning) {
	if math.IsNaN(x) || math.IsNaN(mu) || math.IsNaN(sigma) {
		return x + mu + sigma, 0
	}
	if sigma <= 0 {
		return nan, WarnNaN
	}
	z := (x - mu) / sigma
	if x < mu {
		return math.Exp(z) / 2, 0
	}
	return 1 - math.Exp(-z)/2, 0
}

func laplaceInvCDF(p, mu, sigma float64) (float64, Warning) {
	if math.IsNaN(p) || math.IsNaN(mu) || math.IsNaN(sigma) {
		return p + mu + sigma, 0
	}
	if sigma <= 0 || !validProb(p) {
		return nan, WarnNaN
	}
	if p < 0.5 {
		return mu + sigma*math.Log(2*p), 0
	}
	return mu - sigma*math.Log(2*(1-p)), 0
}

func laplaceRand(mu, sigma float64, src rand.Source) (float64, Warning) {
	if math.IsNaN(mu) || math.IsNaN(sigma) {
		return nan, 0
	}
	if sigma <= 0 {
		return nan, WarnNaN
	}
	// Sign/log trick on a centered uniform draw.
	u := unif01(src) - 0.5
	a := math.Log(1 - 2*math.Abs(u))
	if u < 0 {
		return mu - sigma*a, 0
	}
	return mu + sigma*a, 0
}

func (d Laplace) PDF(x float64) float64 {
	v, _ := laplacePDF(x, d.Mu, d.Sigma)
	return v
}

func (d Laplace) CDF(x float64) float64 {
	v, _ := laplaceCDF(x, d.Mu, d.Sigma)
	return v
}

func (d Laplace) InvCDF(p float64) float64 {
	v, _ := laplaceInvCDF(p, d.Mu, d.Sigma)
	return v
}

// Rand draws from the distribution.
func (d Laplace) Rand() float64 {
	v, _ := laplaceRand(d.Mu, d.Sigma, d.Src)
	return v
}

// Bounds leaves out about 1e-4 of the total weight on each side.
func (d Laplace) Bounds() (float64, float64) {
	return d.Mu - 9*d.Sigma, d.Mu + 9*d.Sigma
}

func (d Laplace) Mean() float64 {
	return d.Mu
}

func (d Laplace) Variance() float64 {
	return 2 * d.Sigma * d.Sigma
}

// DLaplace returns the Laplace density at each x, recycling x, mu and
// sigma to a common length.
func DLaplace(x, mu, sigma []float64, logProb bool) ([]float64, Warning) {
	p, w := each3(x, mu, sigma, laplacePDF)
	if logProb {
		logOutput(p)
	}
	return p, w
}

// PLaplace returns Pr[X <= x] for each x, recycling x, mu and sigma.
func PLaplace(x, mu, sigma []float64, lowerTail, logProb bool) ([]float64, Warning) {
	p, w := each3(x, mu, sigma, laplaceCDF)
	probOutput(p, lowerTail, logProb)
	return p, w
}

// QLaplace returns the Laplace quantile for each probability in p,
// recycling p, mu and sigma.
func QLaplace(p, mu, sigma []float64, lowerTail, logProb bool) ([]float64, Warning) {
	pp := probInput(p, lowerTail, logProb)
	return each3(pp, mu, sigma, laplaceInvCDF)
}

// RLaplace draws n Laplace variates, recycling mu and sigma across
// draws.
func RLaplace(n int, mu, sigma []float64, src rand.Source) ([]float64, Warning) {
	checkCount(n, len(mu), len(sigma))
	out := make([]float64, n)
	var w Warning
	for i := range out {
		var wi Warning
		out[i], wi = laplaceRand(mu[i%len(mu)], sigma[i%len(sigma)], src)
		w |= wi
	}
	return out, w
}
