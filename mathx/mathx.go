// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mathx provides scalar helpers shared by the distribution kernels.
package mathx // import "github.com/vecdist/go-vecdist/mathx"

import "math"

// Sqrt2Pi is sqrt(2*pi), the normalizing constant of the standard
// normal density.
const Sqrt2Pi = 2.506628274631000502415765284811

// IsInt reports whether x has no fractional part. Infinities count as
// integral; NaN does not.
func IsInt(x float64) bool {
	return math.Floor(x) == x
}

// LogFactorial returns log(x!) computed as lgamma(x+1). It is defined
// for all x > -1, not just integers.
func LogFactorial(x float64) float64 {
	y, _ := math.Lgamma(x + 1)
	return y
}
