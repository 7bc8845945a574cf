// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
)

// A Rayleigh is a Rayleigh distribution with scale Sigma, the
// distribution of the norm of a pair of independent centered normals
// (equivalently, a Weibull with shape 2):
//
//	f(x) = x/sigma² exp(-x²/(2 sigma²))    for x >= 0
//	F(x) = 1 - exp(-x²/(2 sigma²))
type Rayleigh struct {
	// Sigma is the scale. Sigma > 0.
	Sigma float64

	// Src is the source of random numbers used by Rand. If Src is
	// nil, Rand uses the shared global source.
	Src rand.Source
}

func rayleighPDF(x, sigma float64) (float64, Warning) {
	if math.IsNaN(x) || math.IsNaN(sigma) {
		return x + sigma, 0
	}
	if sigma <= 0 {
		return nan, WarnNaN
	}
	if x < 0 || math.IsInf(x, 1) {
		return 0, 0
	}
	return x / (sigma * sigma) * math.Exp(-x*x/(2*sigma*sigma)), 0
}

func rayleighCDF(x, sigma float64) (float64, Warning) {
	if math.IsNaN(x) || math.IsNaN(sigma) {
		return x + sigma, 0
	}
	if sigma <= 0 {
		return nan, WarnNaN
	}
	if x < 0 {
		return 0, 0
	}
	if math.IsInf(x, 1) {
		return 1, 0
	}
	return 1 - math.Exp(-x*x/(2*sigma*sigma)), 0
}

func rayleighInvCDF(p, sigma float64) (float64, Warning) {
	if math.IsNaN(p) || math.IsNaN(sigma) {
		return p + sigma, 0
	}
	if !validProb(p) || sigma <= 0 {
		return nan, WarnNaN
	}
	return math.Sqrt(-2 * sigma * sigma * math.Log(1-p)), 0
}

func rayleighRand(sigma float64, src rand.Source) (float64, Warning) {
	if math.IsNaN(sigma) {
		return nan, 0
	}
	if sigma <= 0 {
		return nan, WarnNaN
	}
	u := unif01(src)
	return math.Sqrt(-2 * sigma * sigma * math.Log(u)), 0
}

func (d Rayleigh) PDF(x float64) float64 {
	v, _ := rayleighPDF(x, d.Sigma)
	return v
}

func (d Rayleigh) CDF(x float64) float64 {
	v, _ := rayleighCDF(x, d.Sigma)
	return v
}

func (d Rayleigh) InvCDF(p float64) float64 {
	v, _ := rayleighInvCDF(p, d.Sigma)
	return v
}

// Rand draws from the distribution by inverse transform of a single
// uniform variate.
func (d Rayleigh) Rand() float64 {
	v, _ := rayleighRand(d.Sigma, d.Src)
	return v
}

// Bounds leaves out about 4e-6 of the total weight on the right.
func (d Rayleigh) Bounds() (float64, float64) {
	return 0, 5 * d.Sigma
}

func (d Rayleigh) Mean() float64 {
	return d.Sigma * math.Sqrt(math.Pi/2)
}

func (d Rayleigh) Variance() float64 {
	return (2 - math.Pi/2) * d.Sigma * d.Sigma
}

// DRayleigh returns the Rayleigh density at each x, recycling x and
// sigma to a common length.
func DRayleigh(x, sigma []float64, logProb bool) ([]float64, Warning) {
	p, w := each2(x, sigma, rayleighPDF)
	if logProb {
		logOutput(p)
	}
	return p, w
}

// PRayleigh returns Pr[X <= x] for each x, recycling x and sigma.
func PRayleigh(x, sigma []float64, lowerTail, logProb bool) ([]float64, Warning) {
	p, w := each2(x, sigma, rayleighCDF)
	probOutput(p, lowerTail, logProb)
	return p, w
}

// QRayleigh returns the Rayleigh quantile for each probability in p,
// recycling p and sigma.
func QRayleigh(p, sigma []float64, lowerTail, logProb bool) ([]float64, Warning) {
	pp := probInput(p, lowerTail, logProb)
	return each2(pp, sigma, rayleighInvCDF)
}

// RRayleigh draws n Rayleigh variates, recycling sigma across draws.
func RRayleigh(n int, sigma []float64, src rand.Source) ([]float64, Warning) {
	checkCount(n, len(sigma))
	out := make([]float64, n)
	var w Warning
	for i := range out {
		var wi Warning
		out[i], wi = rayleighRand(sigma[i%len(sigma)], src)
		w |= wi
	}
	return out, w
}
