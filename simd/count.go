// Copyright 2025 Lanekit Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// The word-at-a-time counting approach is derived from
// github.com/willf/bitset .

package simd

import "math/bits"

// Popcnt returns the number of set bits in the given []byte.
//
// The main region here is a machine word rather than a full vector:
// math/bits.OnesCount64 compiles to the hardware popcount instruction, and
// one POPCNT per 8 bytes already saturates the units it executes on, so a
// 16-byte group would buy nothing.
func Popcnt(bytes []byte) int {
	return int(reduceWords(bytes,
		func(acc, w uint64) uint64 { return acc + uint64(bits.OnesCount64(w)) },
		func(acc uint64, b byte) uint64 { return acc + uint64(bits.OnesCount8(b)) }))
}

// ZeroBitCount returns the total number of unset bits in the given []byte,
// i.e. 8*len(bytes) - Popcnt(bytes). ZeroBitCount of an empty buffer is 0.
func ZeroBitCount(bytes []byte) int {
	return 8*len(bytes) - Popcnt(bytes)
}
