// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package td

// Vbar computes the prediction for stimuli x given associative strengths v:
// the dot product of v and x, rectified so it is never negative.
// v and x must have the same length.
func Vbar(v, x []float64) float64 {
	val := 0.0
	for i := range v {
		val += v[i] * x[i]
	}
	if val < 0 {
		val = 0
	}
	return val
}
