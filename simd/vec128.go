// Copyright 2025 Lanekit Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

// vec128 is one 128-bit vector group: 16 byte lanes or 2 uint64 halves,
// depending on the operation. Lane arithmetic is expressed on the two
// halves; any operation defined here must act on each 8-bit lane
// independently so that results are identical to the scalar path
// regardless of how the halves were loaded.
type vec128 struct {
	lo, hi uint64
}

// not inverts every bit, i.e. sets each byte lane b to 255-b.
func (v vec128) not() vec128 {
	return vec128{^v.lo, ^v.hi}
}

// xor combines two vectors lane-wise with bitwise exclusive-or.
func (v vec128) xor(w vec128) vec128 {
	return vec128{v.lo ^ w.lo, v.hi ^ w.hi}
}
