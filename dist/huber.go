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

// A Huber is the least favorable distribution of robust location
// estimation: a standard normal core within Epsilon scaled units of
// Mu, exponential Laplace tails outside it, glued continuously and
// renormalized.
//
// Huber, P. J. (1964). Robust estimation of a location parameter.
// The Annals of Mathematical Statistics 35 (1): 73-101.
//
// Sigma and Epsilon are not range checked by the methods. The vector
// drivers replace non-positive values with NaN before evaluating;
// direct method calls get whatever the formulas yield.
type Huber struct {
	// Mu is the center of symmetry.
	Mu float64

	// Sigma is the scale.
	Sigma float64

	// Epsilon is the threshold, in scaled units from Mu, where the
	// quadratic core hands over to the linear tail.
	Epsilon float64

	// Src is the source of random numbers used by Rand. If Src is
	// nil, Rand uses the shared global source.
	Src rand.Source
}

func huberPDF(x, mu, sigma, c float64) (float64, Warning) {
	if math.IsNaN(x) || math.IsNaN(mu) || math.IsNaN(sigma) || math.IsNaN(c) {
		return nan, 0
	}

	z := math.Abs((x - mu) / sigma)
	A := 2 * mathx.Sqrt2Pi * (distuv.UnitNormal.CDF(c) + distuv.UnitNormal.Prob(c)/c - 0.5)

	var rho float64
	if z <= c {
		rho = z * z / 2
	} else {
		rho = c*z - c*c/2
	}
	return math.Exp(-rho) / A / sigma, 0
}

func huberCDF(x, mu, sigma, c float64) (float64, Warning) {
	if math.IsNaN(x) || math.IsNaN(mu) || math.IsNaN(sigma) || math.IsNaN(c) {
		return nan, 0
	}

	A := 2 * (distuv.UnitNormal.Prob(c)/c - distuv.UnitNormal.CDF(-c) + 0.5)
	z := (x - mu) / sigma
	az := -math.Abs(z)

	// The tail mass below -|z| has a closed exponential form past
	// the threshold; the core goes through the normal CDF. Symmetry
	// gives the upper half.
	var p float64
	if az <= -c {
		p = math.Exp(c*c/2) / c * math.Exp(c*az) / mathx.Sqrt2Pi / A
	} else {
		p = (distuv.UnitNormal.Prob(c)/c + distuv.UnitNormal.CDF(az) - distuv.UnitNormal.CDF(-c)) / A
	}
	if z <= 0 {
		return p, 0
	}
	return 1 - p, 0
}

func huberInvCDF(p, mu, sigma, c float64) (float64, Warning) {
	if math.IsNaN(p) || math.IsNaN(mu) || math.IsNaN(sigma) || math.IsNaN(c) {
		return nan, 0
	}

	A := 2 * mathx.Sqrt2Pi * (distuv.UnitNormal.CDF(c) + distuv.UnitNormal.Prob(c)/c - 0.5)
	pm := math.Min(p, 1-p)

	var x float64
	if pm <= mathx.Sqrt2Pi*distuv.UnitNormal.Prob(c)/(c*A) {
		x = math.Log(c*pm*A)/c - c/2
	} else {
		x = distuv.UnitNormal.Quantile(math.Abs(1 - distuv.UnitNormal.CDF(c) + pm*A/mathx.Sqrt2Pi - distuv.UnitNormal.Prob(c)/c))
	}
	if p < 0.5 {
		return mu + x*sigma, 0
	}
	return mu - x*sigma, 0
}

func (d Huber) PDF(x float64) float64 {
	v, _ := huberPDF(x, d.Mu, d.Sigma, d.Epsilon)
	return v
}

func (d Huber) CDF(x float64) float64 {
	v, _ := huberCDF(x, d.Mu, d.Sigma, d.Epsilon)
	return v
}

func (d Huber) InvCDF(p float64) float64 {
	v, _ := huberInvCDF(p, d.Mu, d.Sigma, d.Epsilon)
	return v
}

// Rand draws from the distribution by inverse transform of a single
// uniform variate.
func (d Huber) Rand() float64 {
	v, _ := huberInvCDF(unif01(d.Src), d.Mu, d.Sigma, d.Epsilon)
	return v
}

// Bounds cuts the tails at a fixed 1e-4 mass on each side.
func (d Huber) Bounds() (float64, float64) {
	return d.InvCDF(0.0001), d.InvCDF(0.9999)
}

func (d Huber) Mean() float64 {
	return d.Mu
}

// DHuber returns the Huber density at each x, recycling x, mu, sigma
// and epsilon to a common length. Non-positive sigma or epsilon
// elements yield NaN and raise WarnNaN.
func DHuber(x, mu, sigma, epsilon []float64, logProb bool) ([]float64, Warning) {
	sigmaN, ws := positiveOrNaN(sigma)
	epsN, we := positiveOrNaN(epsilon)
	p, w := each4(x, mu, sigmaN, epsN, huberPDF)
	if logProb {
		logOutput(p)
	}
	return p, w | ws | we
}

// PHuber returns Pr[X <= x] for each x, recycling x, mu, sigma and
// epsilon.
func PHuber(x, mu, sigma, epsilon []float64, lowerTail, logProb bool) ([]float64, Warning) {
	sigmaN, ws := positiveOrNaN(sigma)
	epsN, we := positiveOrNaN(epsilon)
	p, w := each4(x, mu, sigmaN, epsN, huberCDF)
	probOutput(p, lowerTail, logProb)
	return p, w | ws | we
}

// QHuber returns the Huber quantile for each probability in p,
// recycling p, mu, sigma and epsilon. Probabilities outside [0, 1]
// after the tail and log adjustments yield NaN and raise WarnNaN.
func QHuber(p, mu, sigma, epsilon []float64, lowerTail, logProb bool) ([]float64, Warning) {
	pp := probInput(p, lowerTail, logProb)
	pp, wp := zeroOneOrNaN(pp)
	sigmaN, ws := positiveOrNaN(sigma)
	epsN, we := positiveOrNaN(epsilon)
	x, w := each4(pp, mu, sigmaN, epsN, huberInvCDF)
	return x, w | wp | ws | we
}

// RHuber draws n Huber variates, recycling mu, sigma and epsilon
// across draws.
func RHuber(n int, mu, sigma, epsilon []float64, src rand.Source) ([]float64, Warning) {
	checkCount(n, len(mu), len(sigma), len(epsilon))
	sigmaN, ws := positiveOrNaN(sigma)
	epsN, we := positiveOrNaN(epsilon)
	out := make([]float64, n)
	var w Warning
	for i := range out {
		u := unif01(src)
		var wi Warning
		out[i], wi = huberInvCDF(u, mu[i%len(mu)], sigmaN[i%len(sigmaN)], epsN[i%len(epsN)])
		w |= wi
	}
	return out, w | ws | we
}
