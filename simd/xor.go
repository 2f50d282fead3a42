// Copyright 2025 Lanekit Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

// Bitwise exclusive-or kernels. xor(xor(a,b), b) == a for equal-length
// buffers, and xor(a,a) is all zeros; callers lean on the first property
// for simple masking schemes.

func xorLane(v, w vec128) vec128 { return v.xor(w) }

func xorScalar(x, y byte) byte { return x ^ y }

// XorUnsafeInplace sets main[pos] := main[pos] ^ arg[pos] for every byte
// in main[].
//
// WARNING: This is a function designed to be used in inner loops, which
// makes assumptions about length and capacity which aren't checked at
// runtime. Use the safe version of this function when that's a problem.
// Assumptions #2-3 are always satisfied when the last
// potentially-size-increasing operation on arg[] is {Re}makeUnsafe(),
// ResizeUnsafe() or XcapUnsafe(), and the same is true for main[].
//
// 1. len(arg) and len(main) are equal.
//
// 2. Capacities are at least RoundUpPow2(len(main) + 1, BytesPerVec()).
//
// 3. The caller does not care if a few bytes past the end of main[] are
// changed.
func XorUnsafeInplace(main, arg []byte) {
	combine8Over(main, main, arg, xorLane)
}

// XorInplace sets main[pos] := main[pos] ^ arg[pos] for every byte in
// main[]. It panics if len(arg) != len(main).
func XorInplace(main, arg []byte) {
	if len(arg) != len(main) {
		panic("XorInplace() requires len(arg) == len(main).")
	}
	combine8(main, main, arg, xorLane, xorScalar)
}

// XorUnsafe sets dst[pos] := src1[pos] ^ src2[pos] for every byte in src1.
//
// WARNING: This is a function designed to be used in inner loops, which
// makes assumptions about length and capacity which aren't checked at
// runtime. Use the safe version of this function when that's a problem.
// Assumptions #2-3 are always satisfied when the last
// potentially-size-increasing operation on src1[] is {Re}makeUnsafe(),
// ResizeUnsafe() or XcapUnsafe(), and the same is true for src2[] and
// dst[].
//
// 1. len(src1), len(src2), and len(dst) are equal.
//
// 2. Capacities are at least RoundUpPow2(len(src1) + 1, BytesPerVec()).
//
// 3. The caller does not care if a few bytes past the end of dst[] are
// changed.
func XorUnsafe(dst, src1, src2 []byte) {
	combine8Over(dst, src1, src2, xorLane)
}

// Xor sets dst[pos] := src1[pos] ^ src2[pos] for every byte in src1. It
// panics if len(src1), len(src2), and len(dst) are not all equal.
func Xor(dst, src1, src2 []byte) {
	if len(src1) != len(src2) || len(src1) != len(dst) {
		panic("Xor() requires len(src1) == len(src2) == len(dst).")
	}
	combine8(dst, src1, src2, xorLane, xorScalar)
}

// XorBytes returns a newly allocated buffer holding the bytewise
// exclusive-or of a and b. The result length is min(len(a), len(b));
// trailing bytes of the longer input are ignored. The returned slice has
// the MakeUnsafe capacity guarantee.
func XorBytes(a, b []byte) []byte {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	dst := MakeUnsafe(n)
	combine8(dst, a[:n], b[:n], xorLane, xorScalar)
	return dst
}
