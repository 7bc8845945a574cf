// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
)

// A Power is a power function distribution on the interval
// (0, Alpha):
//
//	f(x)    = Beta x^(Beta-1) / Alpha^Beta
//	F(x)    = x^Beta / Alpha^Beta
//	F⁻¹(p)  = Alpha p^(1/Beta)
//
// The parameters are not range checked. Alpha <= 0 or Beta <= 0
// yields an empty support and the operations degenerate accordingly.
type Power struct {
	// Alpha is the upper bound of the support.
	Alpha float64

	// Beta is the shape.
	Beta float64

	// Src is the source of random numbers used by Rand. If Src is
	// nil, Rand uses the shared global source.
	Src rand.Source
}

func powerPDF(x, alpha, beta float64) (float64, Warning) {
	if math.IsNaN(x) || math.IsNaN(alpha) || math.IsNaN(beta) {
		return nan, 0
	}
	if x <= 0 || x >= alpha {
		return 0, 0
	}
	return beta * math.Pow(x, beta-1) / math.Pow(alpha, beta), 0
}

func powerLogPDF(x, alpha, beta float64) (float64, Warning) {
	if math.IsNaN(x) || math.IsNaN(alpha) || math.IsNaN(beta) {
		return nan, 0
	}
	if x <= 0 || x >= alpha {
		return -inf, 0
	}
	return math.Log(beta) + math.Log(x)*(beta-1) - math.Log(alpha)*beta, 0
}

func powerCDF(x, alpha, beta float64) (float64, Warning) {
	if math.IsNaN(x) || math.IsNaN(alpha) || math.IsNaN(beta) {
		return nan, 0
	}
	if x <= 0 {
		return 0, 0
	}
	if x >= alpha {
		return 1, 0
	}
	return math.Pow(x, beta) / math.Pow(alpha, beta), 0
}

func powerLogCDF(x, alpha, beta float64) (float64, Warning) {
	if math.IsNaN(x) || math.IsNaN(alpha) || math.IsNaN(beta) {
		return nan, 0
	}
	if x <= 0 {
		return -inf, 0
	}
	if x >= alpha {
		return 0, 0
	}
	return math.Log(x)*beta - math.Log(alpha)*beta, 0
}

func powerInvCDF(p, alpha, beta float64) (float64, Warning) {
	if math.IsNaN(p) || math.IsNaN(alpha) || math.IsNaN(beta) {
		return nan, 0
	}
	if !validProb(p) {
		return nan, WarnNaN
	}
	return alpha * math.Pow(p, 1/beta), 0
}

func powerRand(alpha, beta float64, src rand.Source) (float64, Warning) {
	if math.IsNaN(alpha) || math.IsNaN(beta) {
		return nan, 0
	}
	u := unif01(src)
	return alpha * math.Pow(u, 1/beta), 0
}

func (d Power) PDF(x float64) float64 {
	v, _ := powerPDF(x, d.Alpha, d.Beta)
	return v
}

// LogPDF returns the log of the density at x. Unlike taking the log
// of PDF, this stays finite for shapes large enough to overflow the
// density itself.
func (d Power) LogPDF(x float64) float64 {
	v, _ := powerLogPDF(x, d.Alpha, d.Beta)
	return v
}

func (d Power) CDF(x float64) float64 {
	v, _ := powerCDF(x, d.Alpha, d.Beta)
	return v
}

func (d Power) InvCDF(p float64) float64 {
	v, _ := powerInvCDF(p, d.Alpha, d.Beta)
	return v
}

// Rand draws from the distribution by inverse transform of a single
// uniform variate.
func (d Power) Rand() float64 {
	v, _ := powerRand(d.Alpha, d.Beta, d.Src)
	return v
}

func (d Power) Bounds() (float64, float64) {
	return 0, d.Alpha
}

func (d Power) Mean() float64 {
	return d.Alpha * d.Beta / (d.Beta + 1)
}

func (d Power) Variance() float64 {
	b1 := d.Beta + 1
	return d.Alpha * d.Alpha * d.Beta / ((d.Beta + 2) * b1 * b1)
}

// DPower returns the power function density at each x, recycling x,
// alpha and beta to a common length.
func DPower(x, alpha, beta []float64, logProb bool) ([]float64, Warning) {
	if logProb {
		return each3(x, alpha, beta, powerLogPDF)
	}
	return each3(x, alpha, beta, powerPDF)
}

// PPower returns Pr[X <= x] for each x, recycling x, alpha and beta.
// The lower-tail log case evaluates in log space directly.
func PPower(x, alpha, beta []float64, lowerTail, logProb bool) ([]float64, Warning) {
	if lowerTail && logProb {
		return each3(x, alpha, beta, powerLogCDF)
	}
	p, w := each3(x, alpha, beta, powerCDF)
	probOutput(p, lowerTail, logProb)
	return p, w
}

// QPower returns the power function quantile for each probability in
// p, recycling p, alpha and beta.
func QPower(p, alpha, beta []float64, lowerTail, logProb bool) ([]float64, Warning) {
	pp := probInput(p, lowerTail, logProb)
	return each3(pp, alpha, beta, powerInvCDF)
}

// RPower draws n power function variates, recycling alpha and beta
// across draws.
func RPower(n int, alpha, beta []float64, src rand.Source) ([]float64, Warning) {
	checkCount(n, len(alpha), len(beta))
	out := make([]float64, n)
	var w Warning
	for i := range out {
		var wi Warning
		out[i], wi = powerRand(alpha[i%len(alpha)], beta[i%len(beta)], src)
		w |= wi
	}
	return out, w
}
