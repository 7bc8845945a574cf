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

func TestTukeyLambda(t *testing.T) {
	// Lambda 0 is the standard logistic and the quantile is the logit.
	dist := TukeyLambda{Lambda: 0}
	testFunc(t, fmt.Sprintf("%+v.InvCDF", dist), dist.InvCDF,
		map[float64]float64{
			-0.1: nan,
			0:    math.Inf(-1),
			0.25: -1.0986123,
			0.5:  0,
			0.75: 1.0986123,
			0.9:  2.1972246,
			1:    math.Inf(1),
			1.1:  nan,
			nan:  nan,
		})

	// Lambda 2 is uniform on [-1/2, 1/2].
	dist = TukeyLambda{Lambda: 2}
	testFunc(t, fmt.Sprintf("%+v.InvCDF", dist), dist.InvCDF,
		map[float64]float64{
			0:    -0.5,
			0.25: -0.25,
			0.5:  0,
			0.75: 0.25,
			1:    0.5,
		})

	testFunc(t, "{Lambda:0.5}.InvCDF", TukeyLambda{Lambda: 0.5}.InvCDF,
		map[float64]float64{
			0.25: -0.7320508,
			0.5:  0,
			1:    2,
		})
	testFunc(t, "{Lambda:-1}.InvCDF", TukeyLambda{Lambda: -1}.InvCDF,
		map[float64]float64{
			0.25: -2.6666667,
			0.5:  0,
			0.75: 2.6666667,
		})
}

func TestTukeyLambdaBounds(t *testing.T) {
	// Positive lambda has the exact support [-1/lambda, 1/lambda].
	for _, lambda := range []float64{0.5, 1, 2} {
		lo, hi := TukeyLambda{Lambda: lambda}.Bounds()
		if !aeq(-1/lambda, lo) || !aeq(1/lambda, hi) {
			t.Errorf("lambda %v: want bounds ±%v, got %v and %v", lambda, 1/lambda, lo, hi)
		}
	}

	// Otherwise the support is unbounded and a fixed tail mass is cut.
	for _, lambda := range []float64{-1, 0} {
		dist := TukeyLambda{Lambda: lambda}
		lo, hi := dist.Bounds()
		if lo >= hi || !aeq(-hi, lo) {
			t.Errorf("lambda %v: want symmetric bounds, got %v and %v", lambda, lo, hi)
		}
		if got := dist.InvCDF(0.0001); !aeq(got, lo) {
			t.Errorf("lambda %v: want lower bound %v, got %v", lambda, got, lo)
		}
	}
}

func TestQTLambda(t *testing.T) {
	// The quantile is monotone for every shape.
	pp := []float64{0.05, 0.2, 0.4, 0.6, 0.8, 0.95}
	for _, lambda := range []float64{-1, 0, 0.5, 2} {
		x, w := QTLambda(pp, []float64{lambda}, true, false)
		if w != 0 {
			t.Fatalf("unexpected warning %v", w)
		}
		for i := 1; i < len(x); i++ {
			if x[i-1] >= x[i] {
				t.Errorf("lambda %v: want increasing quantiles, got %v", lambda, x)
			}
		}
	}

	// The upper log tail goes through the complement first.
	x, _ := QTLambda([]float64{math.Log(0.75)}, []float64{0}, false, true)
	if !aeq(-1.0986123, x[0]) {
		t.Errorf("want -1.0986123, got %v", x[0])
	}

	q, w := QTLambda([]float64{-0.5}, []float64{0}, true, false)
	if !math.IsNaN(q[0]) || w != WarnNaN {
		t.Errorf("want NaN with warning for p < 0, got %v, %v", q, w)
	}

	q, w = QTLambda([]float64{0.5}, []float64{nan}, true, false)
	if !math.IsNaN(q[0]) || w != 0 {
		t.Errorf("want silent NaN for missing lambda, got %v, %v", q, w)
	}
}

func TestRTLambda(t *testing.T) {
	// Lambda 2 draws are uniform on [-1/2, 1/2].
	x, w := RTLambda(10000, []float64{2}, rand.NewSource(1))
	if w != 0 {
		t.Fatalf("unexpected warning %v", w)
	}
	ksTest(t, "RTLambda(2)", x, func(x float64) float64 {
		return math.Min(math.Max(x+0.5, 0), 1)
	})

	// Lambda 0 draws are standard logistic.
	x, w = RTLambda(10000, []float64{0}, rand.NewSource(1))
	if w != 0 {
		t.Fatalf("unexpected warning %v", w)
	}
	ksTest(t, "RTLambda(0)", x, func(x float64) float64 {
		return 1 / (1 + math.Exp(-x))
	})
}
