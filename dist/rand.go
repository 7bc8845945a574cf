// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "golang.org/x/exp/rand"

// unif01 returns a uniform draw from the open interval (0, 1).
// Inverse-transform kernels depend on never seeing an endpoint, so
// endpoint draws are rejected and retried. A nil src draws from the
// shared global source, following the distuv convention.
func unif01(src rand.Source) float64 {
	f := rand.Float64
	if src != nil {
		f = rand.New(src).Float64
	}
	for {
		if u := f(); u > 0 && u < 1 {
			return u
		}
	}
}

// checkCount panics if a requested sample count is negative, or if a
// generator has no parameters to draw with. Generators promise
// exactly n variates, so unlike the d/p/q drivers they cannot map an
// empty parameter vector to an empty result.
func checkCount(n int, paramLens ...int) {
	if n < 0 {
		panic("dist: negative sample count")
	}
	if n == 0 {
		return
	}
	for _, l := range paramLens {
		if l == 0 {
			panic("dist: empty parameter vector")
		}
	}
}
