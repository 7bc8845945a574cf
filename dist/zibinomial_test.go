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

func TestZIBinomial(t *testing.T) {
	dist := ZIBinomial{N: 4, P: 0.5, Pi: 0.2}
	testFunc(t, fmt.Sprintf("%+v.PMF", dist), dist.PMF,
		map[float64]float64{
			-1:  0,
			0:   0.25,
			1:   0.2,
			2:   0.3,
			3:   0.2,
			4:   0.05,
			5:   0,
			nan: nan,
		})
	testFunc(t, fmt.Sprintf("%+v.CDF", dist), dist.CDF,
		map[float64]float64{
			-1:          0,
			0:           0.25,
			1:           0.45,
			2:           0.75,
			2.5:         0.75,
			3:           0.95,
			4:           1,
			math.Inf(1): 1,
		})
	testFunc(t, fmt.Sprintf("%+v.InvCDF", dist), dist.InvCDF,
		map[float64]float64{
			0:    0,
			0.1:  0,
			0.2:  0,
			0.25: 0,
			0.26: 1,
			0.45: 1,
			0.75: 2,
			0.96: 4,
			1:    4,
		})
	testDiscreteCDF(t, fmt.Sprintf("%+v.CDF", dist), dist)

	if !aeq(1.6, dist.Mean()) {
		t.Errorf("want mean 1.6, got %v", dist.Mean())
	}
	if !aeq(1.44, dist.Variance()) {
		t.Errorf("want variance 1.44, got %v", dist.Variance())
	}

	// The quantile round trips on the atoms.
	for _, k := range []float64{0, 1, 2, 3, 4} {
		if got := dist.InvCDF(dist.CDF(k)); got != k {
			t.Errorf("want InvCDF(CDF(%v)) = %v, got %v", k, k, got)
		}
	}
}

func TestZIBinomialEdgeProbs(t *testing.T) {
	// All trials fail: the mass collapses onto zero.
	dist := ZIBinomial{N: 3, P: 0, Pi: 0.2}
	testFunc(t, fmt.Sprintf("%+v.PMF", dist), dist.PMF,
		map[float64]float64{0: 1, 1: 0, 3: 0})

	// All trials succeed: the mass splits between zero and N.
	dist = ZIBinomial{N: 3, P: 1, Pi: 0.2}
	testFunc(t, fmt.Sprintf("%+v.PMF", dist), dist.PMF,
		map[float64]float64{0: 0.2, 1: 0, 2: 0, 3: 0.8})
	testFunc(t, fmt.Sprintf("%+v.CDF", dist), dist.CDF,
		map[float64]float64{0: 0.2, 2: 0.2, 3: 1})
}

func TestZIBWarnings(t *testing.T) {
	p, w := DZIB([]float64{0.5}, []float64{4}, []float64{0.5}, []float64{0.2}, false)
	if p[0] != 0 || w != WarnImproperX {
		t.Errorf("want 0 with improper warning, got %v, %v", p, w)
	}

	p, w = DZIB([]float64{1}, []float64{-1}, []float64{0.5}, []float64{0.2}, false)
	if !math.IsNaN(p[0]) || w != WarnNaN {
		t.Errorf("want NaN with domain warning for size -1, got %v, %v", p, w)
	}

	p, w = PZIB([]float64{1}, []float64{4}, []float64{1.5}, []float64{0.2}, true, false)
	if !math.IsNaN(p[0]) || w != WarnNaN {
		t.Errorf("want NaN with domain warning for prob 1.5, got %v, %v", p, w)
	}

	q, w := QZIB([]float64{1.2}, []float64{4}, []float64{0.5}, []float64{0.2}, true, false)
	if !math.IsNaN(q[0]) || w != WarnNaN {
		t.Errorf("want NaN with domain warning for p > 1, got %v, %v", q, w)
	}

	// A scrubbed parameter turns into a missing value before the mass
	// check, so no improper-x warning fires alongside it.
	p, w = DZIB([]float64{0.5}, []float64{-1}, []float64{0.5}, []float64{0.2}, false)
	if !math.IsNaN(p[0]) || w != WarnNaN {
		t.Errorf("want NaN with only the domain warning, got %v, %v", p, w)
	}

	p, w = DZIB([]float64{nan}, []float64{4}, []float64{0.5}, []float64{0.2}, false)
	if !math.IsNaN(p[0]) || w != 0 {
		t.Errorf("want silent NaN for missing x, got %v, %v", p, w)
	}
}

func TestRZIB(t *testing.T) {
	dist := ZIBinomial{N: 4, P: 0.5, Pi: 0.2}
	x, w := RZIB(10000, []float64{dist.N}, []float64{dist.P}, []float64{dist.Pi}, rand.NewSource(1))
	if w != 0 {
		t.Fatalf("unexpected warning %v", w)
	}
	for _, xi := range x {
		if xi < 0 || xi > 4 || xi != math.Floor(xi) {
			t.Fatalf("want draws in 0..4, got %v", xi)
		}
	}
	ksTest(t, "RZIB(4, 0.5, 0.2)", x, dist.CDF)
}
