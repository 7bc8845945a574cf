// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestRayleigh(t *testing.T) {
	dist := Rayleigh{Sigma: 2}
	testFunc(t, fmt.Sprintf("%+v.PDF", dist), dist.PDF,
		map[float64]float64{
			-1:  0,
			0:   0,
			2:   0.3032653299,
			4:   0.1353352832,
			nan: nan,
		})
	testFunc(t, fmt.Sprintf("%+v.CDF", dist), dist.CDF,
		map[float64]float64{
			-1:          0,
			0:           0,
			2:           0.3934693403,
			4:           0.8646647168,
			math.Inf(1): 1,
		})
	testFunc(t, fmt.Sprintf("%+v.InvCDF", dist), dist.InvCDF,
		map[float64]float64{
			-0.1:         nan,
			0:            0,
			0.3934693403: 2,
			0.8646647168: 4,
			1:            math.Inf(1),
			1.1:          nan,
		})

	if !aeq(2.5066282746, dist.Mean()) {
		t.Errorf("want mean 2.5066282746, got %v", dist.Mean())
	}
	if !aeq(1.7168146928, dist.Variance()) {
		t.Errorf("want variance 1.7168146928, got %v", dist.Variance())
	}

	for _, x := range []float64{0.5, 1, 2, 5} {
		if got := dist.InvCDF(dist.CDF(x)); !aeq(x, got) {
			t.Errorf("want InvCDF(CDF(%v)) = %v, got %v", x, x, got)
		}
	}
}

func TestRayleighWarnings(t *testing.T) {
	p, w := DRayleigh([]float64{1, 2, 3}, []float64{-1}, false)
	for i, pi := range p {
		if !math.IsNaN(pi) {
			t.Errorf("want NaN at %d for sigma -1, got %v", i, pi)
		}
	}
	if w != WarnNaN {
		t.Errorf("want %v, got %v", WarnNaN, w)
	}

	// A missing x is quiet even when sigma is bad too.
	p, w = PRayleigh([]float64{nan}, []float64{-1}, true, false)
	if !math.IsNaN(p[0]) || w != 0 {
		t.Errorf("want silent NaN, got %v, %v", p, w)
	}

	x, w := RRayleigh(5, []float64{-1}, rand.NewSource(1))
	for i, xi := range x {
		if !math.IsNaN(xi) {
			t.Errorf("want NaN draw at %d, got %v", i, xi)
		}
	}
	if w != WarnNaN {
		t.Errorf("want %v, got %v", WarnNaN, w)
	}
}

func TestRRayleigh(t *testing.T) {
	dist := Rayleigh{Sigma: 2}
	x, w := RRayleigh(10000, []float64{dist.Sigma}, rand.NewSource(1))
	if w != 0 {
		t.Fatalf("unexpected warning %v", w)
	}
	ksTest(t, "RRayleigh(2)", x, dist.CDF)
}
