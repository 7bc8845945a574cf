// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: want panic", name)
		}
	}()
	f()
}

func TestRecycle(t *testing.T) {
	// Arguments recycle to the longest length.
	p, w := DLaplace([]float64{1, 2, 3}, []float64{0}, []float64{1, 2}, false)
	if w != 0 {
		t.Fatalf("unexpected warning %v", w)
	}
	want := []float64{
		math.Exp(-1) / 2,
		math.Exp(-1) / 4,
		math.Exp(-3) / 2,
	}
	if len(p) != len(want) {
		t.Fatalf("want %d results, got %d", len(want), len(p))
	}
	for i := range want {
		if !aeq(want[i], p[i]) {
			t.Errorf("want %v at %d, got %v", want[i], i, p[i])
		}
	}

	// An empty argument gives an empty result, not a panic.
	for _, p := range [][]float64{
		first(DLaplace(nil, []float64{0}, []float64{1}, false)),
		first(PLaplace([]float64{1}, nil, []float64{1}, true, false)),
		first(QLaplace([]float64{0.5}, []float64{0}, nil, true, false)),
	} {
		if len(p) != 0 {
			t.Errorf("want empty result, got %v", p)
		}
	}
}

func first(p []float64, _ Warning) []float64 { return p }

func TestTailAndLogOrder(t *testing.T) {
	x := []float64{0}
	prob := []float64{0.3}

	// The upper tail complements in probability space before any log.
	lower, _ := PBern(x, prob, true, false)
	upper, _ := PBern(x, prob, false, false)
	if !aeq(0.7, lower[0]) || !aeq(0.3, upper[0]) {
		t.Errorf("want tails 0.7 and 0.3, got %v and %v", lower[0], upper[0])
	}
	logu, _ := PBern(x, prob, false, true)
	if !aeq(math.Log(0.3), logu[0]) {
		t.Errorf("want log upper tail %v, got %v", math.Log(0.3), logu[0])
	}

	// Quantiles undo the transforms in the reverse order: exp first,
	// then complement.
	pp := []float64{0.25}
	mu := []float64{2}
	sigma := []float64{1.5}
	direct, _ := QLaplace(pp, mu, sigma, true, false)
	viaUpper, _ := QLaplace([]float64{0.75}, mu, sigma, false, false)
	viaLog, _ := QLaplace([]float64{math.Log(0.25)}, mu, sigma, true, true)
	viaBoth, _ := QLaplace([]float64{math.Log(0.75)}, mu, sigma, false, true)
	for _, got := range []float64{viaUpper[0], viaLog[0], viaBoth[0]} {
		if !aeq(direct[0], got) {
			t.Errorf("want quantile %v on every scale, got %v", direct[0], got)
		}
	}
}

func TestWarningString(t *testing.T) {
	for w, want := range map[Warning]string{
		0:                       "ok",
		WarnNaN:                 "NaNs produced",
		WarnImproperX:           "improper x",
		WarnNaN | WarnImproperX: "NaNs produced; improper x",
	} {
		if got := w.String(); got != want {
			t.Errorf("want %q for %d, got %q", want, uint(w), got)
		}
	}

	// One call can accumulate both kinds.
	_, w := DGPois([]float64{1.5, 2}, []float64{1, -1}, []float64{1}, false)
	if w != WarnNaN|WarnImproperX {
		t.Errorf("want both warnings, got %v", w)
	}
}

func TestCheckCount(t *testing.T) {
	mustPanic(t, "negative count", func() {
		RLaplace(-1, []float64{0}, []float64{1}, nil)
	})
	mustPanic(t, "empty parameters", func() {
		RLaplace(3, nil, []float64{1}, nil)
	})

	// Zero draws need no parameters.
	x, w := RLaplace(0, nil, nil, nil)
	if len(x) != 0 || w != 0 {
		t.Errorf("want no draws, got %v, %v", x, w)
	}
}

func TestNilSource(t *testing.T) {
	// A nil source falls back to the shared global one.
	x, w := RLaplace(10, []float64{0}, []float64{1}, nil)
	if w != 0 {
		t.Fatalf("unexpected warning %v", w)
	}
	for _, xi := range x {
		if math.IsNaN(xi) {
			t.Errorf("want finite draws, got %v", x)
		}
	}
}

func TestSourceDeterminism(t *testing.T) {
	a, _ := RLaplace(5, []float64{0}, []float64{1}, rand.NewSource(7))
	b, _ := RLaplace(5, []float64{0}, []float64{1}, rand.NewSource(7))
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("want identical streams from equal seeds, got %v and %v", a, b)
		}
	}
}
