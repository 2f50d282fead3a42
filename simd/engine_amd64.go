// Copyright 2025 Lanekit Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build amd64 && !appengine

package simd

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// This file is the bulk transform engine's fast path: it is the single
// place in the package permitted to compute raw offsets into buffers, and
// the only code that elides bounds checks. Kernels supply a lane operation
// and a scalar operation and never index buffers themselves. The
// main/remainder split is derived exactly once per call as two
// non-overlapping subslices; loop bounds come from those subslices and are
// never recomputed.

func init() {
	// The 128-bit loops below only need baseline SSE2, but the toolbox as
	// deployed assumes a uniform modern x86-64 target. Refuse to start on
	// anything older instead of detecting features per call.
	if !cpu.X86.HasSSE42 {
		panic("simd: SSE4.2 required.")
	}
}

// transform8 sets each byte of main[] to scalarOp(b), processing the main
// region 16 lanes at a time with laneOp. laneOp must be the lane-parallel
// equivalent of scalarOp.
func transform8(main []byte, laneOp func(vec128) vec128, scalarOp func(byte) byte) {
	mainLen := len(main) &^ (bytesPerVec - 1)
	body, tail := main[:mainLen], main[mainLen:]
	if mainLen != 0 {
		p := unsafe.Pointer(unsafe.SliceData(body))
		for end := unsafe.Add(p, mainLen); uintptr(p) < uintptr(end); p = unsafe.Add(p, bytesPerVec) {
			*(*vec128)(p) = laneOp(*(*vec128)(p))
		}
	}
	for i, b := range tail {
		tail[i] = scalarOp(b)
	}
}

// transform8Over is the Unsafe-variant engine for unary transforms: it
// rounds the buffer length up to a whole number of vectors and has no
// scalar tail, so it may clobber up to bytesPerVec-1 bytes past len(main).
// Callers must guarantee the MakeUnsafe capacity contract.
func transform8Over(main []byte, laneOp func(vec128) vec128) {
	nVec := DivUpPow2(len(main), bytesPerVec, log2BytesPerVec)
	p := unsafe.Pointer(unsafe.SliceData(main))
	for i := 0; i < nVec; i++ {
		*(*vec128)(p) = laneOp(*(*vec128)(p))
		p = unsafe.Add(p, bytesPerVec)
	}
}

// map8 sets dst[pos] := scalarOp(src[pos]) for every position in src.
// Requires len(dst) == len(src); exported callers check this.
func map8(dst, src []byte, laneOp func(vec128) vec128, scalarOp func(byte) byte) {
	mainLen := len(src) &^ (bytesPerVec - 1)
	srcTail, dstTail := src[mainLen:], dst[mainLen:]
	if mainLen != 0 {
		sp := unsafe.Pointer(unsafe.SliceData(src))
		dp := unsafe.Pointer(unsafe.SliceData(dst))
		for end := unsafe.Add(sp, mainLen); uintptr(sp) < uintptr(end); {
			*(*vec128)(dp) = laneOp(*(*vec128)(sp))
			sp = unsafe.Add(sp, bytesPerVec)
			dp = unsafe.Add(dp, bytesPerVec)
		}
	}
	for i, b := range srcTail {
		dstTail[i] = scalarOp(b)
	}
}

// map8Over is the Unsafe-variant engine for non-inplace unary transforms.
// It may read and write up to bytesPerVec-1 bytes past the ends of src and
// dst.
func map8Over(dst, src []byte, laneOp func(vec128) vec128) {
	nVec := DivUpPow2(len(src), bytesPerVec, log2BytesPerVec)
	sp := unsafe.Pointer(unsafe.SliceData(src))
	dp := unsafe.Pointer(unsafe.SliceData(dst))
	for i := 0; i < nVec; i++ {
		*(*vec128)(dp) = laneOp(*(*vec128)(sp))
		sp = unsafe.Add(sp, bytesPerVec)
		dp = unsafe.Add(dp, bytesPerVec)
	}
}

// combine8 sets dst[pos] := scalarOp(src1[pos], src2[pos]) for every
// position. Requires equal lengths; exported callers check this.
func combine8(dst, src1, src2 []byte, laneOp func(vec128, vec128) vec128, scalarOp func(byte, byte) byte) {
	mainLen := len(src1) &^ (bytesPerVec - 1)
	tail1, tail2, dstTail := src1[mainLen:], src2[mainLen:], dst[mainLen:]
	if mainLen != 0 {
		p1 := unsafe.Pointer(unsafe.SliceData(src1))
		p2 := unsafe.Pointer(unsafe.SliceData(src2))
		dp := unsafe.Pointer(unsafe.SliceData(dst))
		for end := unsafe.Add(p1, mainLen); uintptr(p1) < uintptr(end); {
			*(*vec128)(dp) = laneOp(*(*vec128)(p1), *(*vec128)(p2))
			p1 = unsafe.Add(p1, bytesPerVec)
			p2 = unsafe.Add(p2, bytesPerVec)
			dp = unsafe.Add(dp, bytesPerVec)
		}
	}
	for i, b := range tail1 {
		dstTail[i] = scalarOp(b, tail2[i])
	}
}

// combine8Over is the Unsafe-variant engine for binary transforms.
func combine8Over(dst, src1, src2 []byte, laneOp func(vec128, vec128) vec128) {
	nVec := DivUpPow2(len(src1), bytesPerVec, log2BytesPerVec)
	p1 := unsafe.Pointer(unsafe.SliceData(src1))
	p2 := unsafe.Pointer(unsafe.SliceData(src2))
	dp := unsafe.Pointer(unsafe.SliceData(dst))
	for i := 0; i < nVec; i++ {
		*(*vec128)(dp) = laneOp(*(*vec128)(p1), *(*vec128)(p2))
		p1 = unsafe.Add(p1, bytesPerVec)
		p2 = unsafe.Add(p2, bytesPerVec)
		dp = unsafe.Add(dp, bytesPerVec)
	}
}

// reduceWords folds src[] into an accumulator, processing the main region
// a machine word at a time and the remainder byte by byte. wordOp must be
// insensitive to the byte order within a word (true for e.g. population
// counting).
func reduceWords(src []byte, wordOp func(uint64, uint64) uint64, byteOp func(uint64, byte) uint64) uint64 {
	mainLen := len(src) &^ (BytesPerWord - 1)
	tail := src[mainLen:]
	var acc uint64
	if mainLen != 0 {
		p := unsafe.Pointer(unsafe.SliceData(src))
		for end := unsafe.Add(p, mainLen); uintptr(p) < uintptr(end); p = unsafe.Add(p, BytesPerWord) {
			acc = wordOp(acc, *(*uint64)(p))
		}
	}
	for _, b := range tail {
		acc = byteOp(acc, b)
	}
	return acc
}

// reduceFloat64Pairs folds data[] into a float64 accumulator, two lanes at
// a time in the main region and one at a time in the remainder. The fold
// order is fixed (main region left to right, then remainder), so results
// are bit-reproducible for a given input.
func reduceFloat64Pairs(data []float64, laneOp func(acc, lo, hi float64) float64, scalarOp func(acc, x float64) float64) float64 {
	mainLen := len(data) &^ (float64PerVec - 1)
	tail := data[mainLen:]
	var acc float64
	if mainLen != 0 {
		p := unsafe.Pointer(unsafe.SliceData(data))
		for end := unsafe.Add(p, mainLen*BytesPerWord); uintptr(p) < uintptr(end); p = unsafe.Add(p, bytesPerVec) {
			v := *(*[float64PerVec]float64)(p)
			acc = laneOp(acc, v[0], v[1])
		}
	}
	for _, x := range tail {
		acc = scalarOp(acc, x)
	}
	return acc
}
