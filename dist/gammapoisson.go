// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"context"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/vecdist/go-vecdist/mathx"
)

// A GammaPoisson is a Poisson compound whose rate is drawn from a
// gamma distribution with shape Alpha and scale Beta. It is the
// negative binomial with real-valued size Alpha and success
// probability p = Beta/(1+Beta):
//
//	P[X = k] = Γ(Alpha+k)/(k! Γ(Alpha)) p^k (1-p)^Alpha
//
// The CDF has no closed form. It is evaluated by summing the mass
// function over 0..floor(x) with a forward recurrence that reuses the
// log-gamma, log-factorial and log-probability terms of the previous
// point.
type GammaPoisson struct {
	// Alpha is the gamma shape. Alpha > 0.
	Alpha float64

	// Beta is the gamma scale. Beta > 0.
	Beta float64

	// Src is the source of random numbers used by Rand. If Src is
	// nil, Rand uses the shared global source.
	Src rand.Source
}

func gpoisLogPMF(x, alpha, beta float64) (float64, Warning) {
	if math.IsNaN(x) || math.IsNaN(alpha) || math.IsNaN(beta) {
		return nan, 0
	}
	if alpha <= 0 || beta <= 0 {
		return nan, WarnNaN
	}
	if !mathx.IsInt(x) {
		return -inf, WarnImproperX
	}
	if x < 0 || math.IsInf(x, 1) {
		return -inf, 0
	}
	p := beta / (1 + beta)
	ga, _ := math.Lgamma(alpha)
	gax, _ := math.Lgamma(alpha + x)
	return gax - (mathx.LogFactorial(x) + ga) + math.Log(p)*x + math.Log(1-p)*alpha, 0
}

// gpoisCDFTable returns the cumulative mass at 0..floor(x). Each term
// extends the previous one by a single log-gamma, log-factorial and
// log-probability increment, so the whole table costs the same as the
// largest point alone.
func gpoisCDFTable(x, alpha, beta float64) []float64 {
	x = math.Floor(x)
	tab := make([]float64, int(x)+1)

	p := beta / (1 + beta)
	qa := math.Log(1-p) * alpha
	ga, _ := math.Lgamma(alpha)
	lp := math.Log(p)

	gax := ga
	xf := 0.0
	px := 0.0
	tab[0] = math.Exp(qa)
	if x < 1 {
		return tab
	}

	gax += math.Log(alpha)
	px += lp
	tab[1] = tab[0] + math.Exp(gax-ga+px+qa)
	if x < 2 {
		return tab
	}

	for j := 2.0; j <= x; j++ {
		gax += math.Log(j + alpha - 1)
		xf += math.Log(j)
		px += lp
		tab[int(j)] = tab[int(j)-1] + math.Exp(gax-(xf+ga)+px+qa)
	}
	return tab
}

func gpoisRand(alpha, beta float64, src rand.Source) (float64, Warning) {
	if math.IsNaN(alpha) || math.IsNaN(beta) {
		return nan, 0
	}
	if alpha <= 0 || beta <= 0 {
		return nan, WarnNaN
	}
	lambda := distuv.Gamma{Alpha: alpha, Beta: 1 / beta, Src: src}.Rand()
	return distuv.Poisson{Lambda: lambda, Src: src}.Rand(), 0
}

func (d GammaPoisson) PMF(x float64) float64 {
	v, _ := gpoisLogPMF(x, d.Alpha, d.Beta)
	return math.Exp(v)
}

func (d GammaPoisson) LogPMF(x float64) float64 {
	v, _ := gpoisLogPMF(x, d.Alpha, d.Beta)
	return v
}

func (d GammaPoisson) CDF(x float64) float64 {
	if math.IsNaN(x) || math.IsNaN(d.Alpha) || math.IsNaN(d.Beta) {
		return nan
	}
	if d.Alpha <= 0 || d.Beta <= 0 {
		return nan
	}
	if x < 0 {
		return 0
	}
	if math.IsInf(x, 1) {
		return 1
	}
	tab := gpoisCDFTable(x, d.Alpha, d.Beta)
	return tab[len(tab)-1]
}

// Rand draws a gamma rate and then a Poisson count at that rate.
func (d GammaPoisson) Rand() float64 {
	v, _ := gpoisRand(d.Alpha, d.Beta, d.Src)
	return v
}

func (d GammaPoisson) Step() float64 {
	return 1
}

// Bounds leaves out roughly the mass beyond ten standard deviations.
func (d GammaPoisson) Bounds() (float64, float64) {
	return 0, math.Ceil(d.Mean() + 10*math.Sqrt(d.Variance()))
}

func (d GammaPoisson) Mean() float64 {
	return d.Alpha * d.Beta
}

func (d GammaPoisson) Variance() float64 {
	return d.Alpha * d.Beta * (1 + d.Beta)
}

// DGPois returns the gamma-Poisson mass at each x, recycling x, alpha
// and beta to a common length. Non-integer queries get zero mass and
// raise WarnImproperX.
func DGPois(x, alpha, beta []float64, logProb bool) ([]float64, Warning) {
	p, w := each3(x, alpha, beta, gpoisLogPMF)
	if !logProb {
		expOutput(p)
	}
	return p, w
}

// PGPois returns Pr[X <= x] for each x, recycling x, alpha and beta.
// The cumulative table for each distinct recycled (alpha, beta) index
// pair is built once, up to the largest finite query in the batch,
// and shared by every element using that pair. The loop polls ctx
// every thousand elements and gives up with ctx.Err() if the context
// is done.
func PGPois(ctx context.Context, x, alpha, beta []float64, lowerTail, logProb bool) ([]float64, Warning, error) {
	n := recycleLen(len(x), len(alpha), len(beta))
	out := make([]float64, n)
	var w Warning

	memo := make(map[[2]int][]float64)
	mx := finiteMax(x)

	for i := 0; i < n; i++ {
		if i%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, w, err
			}
		}
		xi := x[i%len(x)]
		ai := alpha[i%len(alpha)]
		bi := beta[i%len(beta)]
		switch {
		case math.IsNaN(xi) || math.IsNaN(ai) || math.IsNaN(bi):
			out[i] = nan
		case ai <= 0 || bi <= 0:
			out[i] = nan
			w |= WarnNaN
		case xi < 0:
			out[i] = 0
		case math.IsInf(xi, 1):
			out[i] = 1
		default:
			key := [2]int{i % len(alpha), i % len(beta)}
			tab, ok := memo[key]
			if !ok {
				tab = gpoisCDFTable(mx, ai, bi)
				memo[key] = tab
			}
			out[i] = tab[int(xi)]
		}
	}

	probOutput(out, lowerTail, logProb)
	return out, w, nil
}

// RGPois draws n gamma-Poisson variates, recycling alpha and beta
// across draws.
func RGPois(n int, alpha, beta []float64, src rand.Source) ([]float64, Warning) {
	checkCount(n, len(alpha), len(beta))
	out := make([]float64, n)
	var w Warning
	for i := range out {
		var wi Warning
		out[i], wi = gpoisRand(alpha[i%len(alpha)], beta[i%len(beta)], src)
		w |= wi
	}
	return out, w
}
