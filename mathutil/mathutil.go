// Copyright 2025 Lanekit Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package mathutil provides small integer helpers shared by the toolbox.
package mathutil

// Sum returns the sum of vals. Overflow wraps.
func Sum(vals []int32) int32 {
	var sum int32
	for _, v := range vals {
		sum += v
	}
	return sum
}

// Factorial returns n!. The product wraps at 32 bits, so results are
// only exact for n <= 12.
func Factorial(n uint32) uint32 {
	result := uint32(1)
	for i := uint32(2); i <= n; i++ {
		result *= i
	}
	return result
}

// Max returns the largest value in vals, or -1 if vals is empty.
func Max(vals []int32) int32 {
	if len(vals) == 0 {
		return -1
	}
	max := vals[0]
	for _, v := range vals[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Min returns the smallest value in vals, or -1 if vals is empty.
// Callers that need to distinguish an empty input from a slice
// containing -1 must check len(vals) themselves.
func Min(vals []int32) int32 {
	if len(vals) == 0 {
		return -1
	}
	min := vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
	}
	return min
}
