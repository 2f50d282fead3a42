// Copyright 2025 Lanekit Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

// Mean64 returns the arithmetic mean of data[], or 0.0 for an empty
// buffer. Returning 0.0 rather than NaN keeps the operation total: callers
// at the host boundary never see a division-by-zero artifact.
//
// The main region is summed two lanes at a time by extracting both lanes
// and adding them to a running scalar sum. With only two 64-bit lanes per
// vector this extraction gains no real parallelism over a plain scalar
// loop; it is a performance compromise, not a correctness one. The
// summation order is fixed: pairs left to right, the pair's low lane added
// to its high lane first, then the remainder. Results are bit-reproducible
// for a given input, though floating-point addition is not associative and
// a different grouping would round differently.
func Mean64(data []float64) float64 {
	n := len(data)
	if n == 0 {
		return 0.0
	}
	sum := reduceFloat64Pairs(data,
		func(acc, lo, hi float64) float64 { return acc + (lo + hi) },
		func(acc, x float64) float64 { return acc + x })
	return sum / float64(n)
}
