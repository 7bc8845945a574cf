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

func TestBernoulli(t *testing.T) {
	dist := Bernoulli{P: 0.3}
	testFunc(t, fmt.Sprintf("%+v.PMF", dist), dist.PMF,
		map[float64]float64{
			-1:  0,
			0:   0.7,
			0.5: 0,
			1:   0.3,
			2:   0,
			nan: nan,
		})
	testFunc(t, fmt.Sprintf("%+v.CDF", dist), dist.CDF,
		map[float64]float64{
			-0.5: 0,
			0:    0.7,
			0.5:  0.7,
			1:    1,
			10:   1,
		})
	testDiscreteCDF(t, fmt.Sprintf("%+v.CDF", dist), dist)
	testFunc(t, fmt.Sprintf("%+v.InvCDF", dist), dist.InvCDF,
		map[float64]float64{
			-0.1: nan,
			0:    0,
			0.5:  0,
			0.7:  0,
			0.71: 1,
			1:    1,
			1.1:  nan,
		})

	if !aeq(0.3, dist.Mean()) || !aeq(0.21, dist.Variance()) {
		t.Errorf("want mean 0.3, variance 0.21, got %v, %v", dist.Mean(), dist.Variance())
	}
}

func TestBernDrivers(t *testing.T) {
	p, w := DBern([]float64{1}, []float64{0.3}, false)
	if !aeq(0.3, p[0]) || w != 0 {
		t.Errorf("want DBern(1; 0.3) = 0.3 clean, got %v, %v", p, w)
	}

	p, w = PBern([]float64{0}, []float64{0.3}, true, false)
	if !aeq(0.7, p[0]) || w != 0 {
		t.Errorf("want PBern(0; 0.3) = 0.7 clean, got %v, %v", p, w)
	}

	p, _ = PBern([]float64{0}, []float64{0.3}, false, true)
	if !aeq(math.Log(0.3), p[0]) {
		t.Errorf("want upper-tail log PBern(0; 0.3) = log(0.3), got %v", p[0])
	}

	q, w := QBern([]float64{math.Log(0.9)}, []float64{0.3}, true, true)
	if q[0] != 1 || w != 0 {
		t.Errorf("want QBern(log 0.9; 0.3) = 1, got %v, %v", q, w)
	}
}

func TestBernWarnings(t *testing.T) {
	p, w := DBern([]float64{2, 0.5}, []float64{0.3}, false)
	if p[0] != 0 || p[1] != 0 || w != WarnImproperX {
		t.Errorf("want zero mass with improper-x warning, got %v, %v", p, w)
	}

	p, w = DBern([]float64{1}, []float64{1.5}, false)
	if !math.IsNaN(p[0]) || w != WarnNaN {
		t.Errorf("want NaN with domain warning, got %v, %v", p, w)
	}

	// A missing query wins over the bad parameter and stays silent.
	p, w = DBern([]float64{nan}, []float64{1.5}, false)
	if !math.IsNaN(p[0]) || w != 0 {
		t.Errorf("want silent NaN for missing query, got %v, %v", p, w)
	}
}

func TestRBern(t *testing.T) {
	x, w := RBern(10000, []float64{0.3}, rand.NewSource(1))
	if w != 0 {
		t.Fatalf("unexpected warning %v", w)
	}
	sum := 0.0
	for _, v := range x {
		if v != 0 && v != 1 {
			t.Fatalf("draw %v outside {0, 1}", v)
		}
		sum += v
	}
	if mean := sum / float64(len(x)); math.Abs(mean-0.3) > 0.02 {
		t.Errorf("want mean near 0.3, got %v", mean)
	}
}
