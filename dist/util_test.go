// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// testFunc checks f against a table of expected values. NaN expects
// NaN and infinities must match exactly.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()

	// Carry x and want together: a NaN key can be ranged over but
	// never looked up again, so vals[x] would miss it.
	type entry struct{ x, want float64 }
	es := make([]entry, 0, len(vals))
	for x, want := range vals {
		es = append(es, entry{x, want})
	}
	sort.Slice(es, func(i, j int) bool { return es[i].x < es[j].x })

	for _, e := range es {
		want, got := e.want, f(e.x)
		if math.IsNaN(want) && math.IsNaN(got) || want == got || aeq(want, got) {
			continue
		}
		t.Errorf("want %s(%v) = %v, got %v", name, e.x, want, got)
	}
}

// testDiscreteCDF checks dist's CDF against the cumulative sum of its
// PMF, at the support points and between them.
func testDiscreteCDF(t *testing.T, name string, dist DiscreteDist) {
	t.Helper()

	l, h := dist.Bounds()
	s := dist.Step()
	want := map[float64]float64{l - 0.1: 0, h: 1}
	sum := 0.0
	for x := l; x < h; x += s {
		sum += dist.PMF(x)
		want[x] = sum
		want[x+s/2] = sum
	}
	testFunc(t, name, dist.CDF, want)
}

// ksTest checks a sample against a CDF with a Kolmogorov-Smirnov
// bound. The 2.5/sqrt(n) limit is loose enough that a correct
// generator under a fixed seed stays far below it.
func ksTest(t *testing.T, name string, sample []float64, cdf func(float64) float64) {
	t.Helper()

	xs := append([]float64(nil), sample...)
	sort.Float64s(xs)
	n := float64(len(xs))
	d := 0.0
	for i, x := range xs {
		// Compare at the last element of a tie group, where the
		// empirical CDF includes the whole group.
		if i+1 < len(xs) && xs[i+1] == x {
			continue
		}
		diff := math.Abs(float64(i+1)/n - cdf(x))
		if diff > d {
			d = diff
		}
	}
	if limit := 2.5 / math.Sqrt(n); d > limit {
		t.Errorf("%s: KS distance %v exceeds %v", name, d, limit)
	}
}
