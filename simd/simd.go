// Copyright 2025 Lanekit Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd

import "github.com/lanekit/base/unsafex"

// Compile-time lane model. Every kernel in this package works on 128-bit
// vector groups; the per-operation lane count is the vector width divided
// by the element size. These are deliberately constants rather than
// runtime-detected values: the toolbox assumes a uniform deployment
// target (see package doc).

// BytesPerWord is the number of bytes in a machine word.
const BytesPerWord = 8

// Log2BytesPerWord is log2(BytesPerWord). This is relevant for manual
// bit-shifting when we know that's a safe way to divide and the compiler
// does not (e.g. dividend is of signed int type).
const Log2BytesPerWord = uint(3)

// BitsPerWord is the number of bits in a machine word.
const BitsPerWord = BytesPerWord * 8

// bytesPerVec is the lane group size for 8-bit lane operations: 16 one-byte
// lanes per 128-bit vector.
const bytesPerVec = 16

// log2BytesPerVec supports efficient division by bytesPerVec.
const log2BytesPerVec = uint(4)

// float64PerVec is the lane group size for 64-bit float operations: 2
// lanes per 128-bit vector.
const float64PerVec = 2

// BytesPerVec is an accessor for the bytesPerVec constant.
func BytesPerVec() int {
	return bytesPerVec
}

// Float64PerVec is an accessor for the float64PerVec constant.
func Float64PerVec() int {
	return float64PerVec
}

// RoundUpPow2 returns val rounded up to a multiple of alignment, assuming
// alignment is a power of 2.
func RoundUpPow2(val, alignment int) int {
	return (val + alignment - 1) & (^(alignment - 1))
}

// DivUpPow2 efficiently divides a number by a power-of-2 divisor. (This
// works for negative dividends since the language specifies arithmetic
// right-shifts of signed numbers.)
func DivUpPow2(dividend, divisor int, log2Divisor uint) int {
	return (dividend + divisor - 1) >> log2Divisor
}

// MakeUnsafe returns a byte slice of the given length which is guaranteed
// to have enough capacity for all Unsafe functions in this package to
// work. (It is not itself an unsafe function: allocated memory is
// zero-initialized.)
func MakeUnsafe(len int) []byte {
	// Although no function requires more than RoundUpPow2(len+1,
	// bytesPerVec) capacity, it is necessary to add bytesPerVec instead to
	// make subslicing safe.
	return make([]byte, len, len+bytesPerVec)
}

// RemakeUnsafe reuses the given buffer if it has sufficient capacity;
// otherwise it does the same thing as MakeUnsafe. It does NOT preserve
// existing contents of buf[]; use ResizeUnsafe() for that.
func RemakeUnsafe(bufptr *[]byte, len int) {
	minCap := len + bytesPerVec
	if minCap <= cap(*bufptr) {
		unsafex.ExtendBytes(bufptr, len)
		return
	}
	// This is likely to be called in an inner loop processing variable-size
	// inputs, so mild exponential growth is appropriate.
	*bufptr = make([]byte, len, RoundUpPow2(minCap+(minCap/8), bytesPerVec))
}

// ResizeUnsafe changes the length of buf and ensures it has enough extra
// capacity to be passed to this package's Unsafe functions. Existing
// buf[] contents are preserved (with possible truncation), though when
// length is increased, new bytes might not be zero-initialized.
func ResizeUnsafe(bufptr *[]byte, len int) {
	minCap := len + bytesPerVec
	if minCap <= cap(*bufptr) {
		unsafex.ExtendBytes(bufptr, len)
		return
	}
	dst := make([]byte, len, RoundUpPow2(minCap+(minCap/8), bytesPerVec))
	copy(dst, *bufptr)
	*bufptr = dst
}

// XcapUnsafe is shorthand for ResizeUnsafe's most common use case (no
// length change, just want to ensure sufficient capacity).
func XcapUnsafe(bufptr *[]byte) {
	ResizeUnsafe(bufptr, len(*bufptr))
}
