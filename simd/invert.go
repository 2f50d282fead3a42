// Copyright 2025 Lanekit Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

// Byte inversion: every byte b becomes 255-b. For 8-bit lanes this is
// exactly bitwise complement, so the lane operation is a 128-bit NOT.
// Applying any of these functions twice restores the original buffer.

func invertLane(v vec128) vec128 { return v.not() }

func invertScalar(b byte) byte { return 255 - b }

// Invert8Inplace replaces every byte of main[] with 255 minus that byte.
// An empty buffer is a no-op.
func Invert8Inplace(main []byte) {
	transform8(main, invertLane, invertScalar)
}

// Invert8UnsafeInplace replaces every byte of main[] with 255 minus that
// byte.
//
// WARNING: This is a function designed to be used in inner loops, which
// assumes without checking that capacity is at least RoundUpPow2(len(main),
// BytesPerVec()). It also assumes that the caller does not care if a few
// bytes past the end of main[] are changed. Use the safe version of this
// function if either of these properties is problematic.
// These assumptions are always satisfied when the last
// potentially-size-increasing operation on main[] is {Re}makeUnsafe(),
// ResizeUnsafe(), or XcapUnsafe().
func Invert8UnsafeInplace(main []byte) {
	transform8Over(main, invertLane)
}

// Invert8 sets dst[pos] := 255 - src[pos] for every byte in src. It panics
// if len(src) != len(dst).
func Invert8(dst, src []byte) {
	if len(dst) != len(src) {
		panic("Invert8() requires len(src) == len(dst).")
	}
	map8(dst, src, invertLane, invertScalar)
}

// Invert8Unsafe sets dst[pos] := 255 - src[pos] for every byte in src.
//
// WARNING: This is a function designed to be used in inner loops, which
// makes assumptions about length and capacity which aren't checked at
// runtime. Use the safe version of this function when that's a problem.
// Assumptions #2-3 are always satisfied when the last
// potentially-size-increasing operation on src[] is {Re}makeUnsafe(),
// ResizeUnsafe() or XcapUnsafe(), and the same is true for dst[].
//
// 1. len(src) and len(dst) are equal.
//
// 2. Capacities are at least RoundUpPow2(len(src) + 1, BytesPerVec()).
//
// 3. The caller does not care if a few bytes past the end of dst[] are
// changed.
func Invert8Unsafe(dst, src []byte) {
	map8Over(dst, src, invertLane)
}
