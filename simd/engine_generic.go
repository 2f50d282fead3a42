// Copyright 2025 Lanekit Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build !amd64 || appengine

package simd

import "encoding/binary"

// Portable engine fallback. The region split and lane arithmetic are
// identical to the amd64 path; only the vector access mechanism differs
// (safe little-endian word loads instead of raw pointer dereferences), so
// results are observably the same on every platform. Unsafe-variant
// engines degrade to exact-length processing here, which the Unsafe API
// contract permits.

func loadVec(b []byte) vec128 {
	return vec128{binary.LittleEndian.Uint64(b), binary.LittleEndian.Uint64(b[BytesPerWord:])}
}

func storeVec(b []byte, v vec128) {
	binary.LittleEndian.PutUint64(b, v.lo)
	binary.LittleEndian.PutUint64(b[BytesPerWord:], v.hi)
}

// transform8 sets each byte of main[] to scalarOp(b), processing the main
// region 16 lanes at a time with laneOp.
func transform8(main []byte, laneOp func(vec128) vec128, scalarOp func(byte) byte) {
	mainLen := len(main) &^ (bytesPerVec - 1)
	body, tail := main[:mainLen], main[mainLen:]
	for i := 0; i < len(body); i += bytesPerVec {
		storeVec(body[i:i+bytesPerVec], laneOp(loadVec(body[i:i+bytesPerVec])))
	}
	for i, b := range tail {
		tail[i] = scalarOp(b)
	}
}

// transform8Over processes exactly len(main) bytes on this platform.
func transform8Over(main []byte, laneOp func(vec128) vec128) {
	transform8(main, laneOp, func(b byte) byte {
		v := laneOp(vec128{lo: uint64(b)})
		return byte(v.lo)
	})
}

// map8 sets dst[pos] := scalarOp(src[pos]) for every position in src.
func map8(dst, src []byte, laneOp func(vec128) vec128, scalarOp func(byte) byte) {
	mainLen := len(src) &^ (bytesPerVec - 1)
	for i := 0; i < mainLen; i += bytesPerVec {
		storeVec(dst[i:i+bytesPerVec], laneOp(loadVec(src[i:i+bytesPerVec])))
	}
	for i, b := range src[mainLen:] {
		dst[mainLen+i] = scalarOp(b)
	}
}

// map8Over processes exactly len(src) bytes on this platform.
func map8Over(dst, src []byte, laneOp func(vec128) vec128) {
	map8(dst, src, laneOp, func(b byte) byte {
		v := laneOp(vec128{lo: uint64(b)})
		return byte(v.lo)
	})
}

// combine8 sets dst[pos] := scalarOp(src1[pos], src2[pos]) for every
// position.
func combine8(dst, src1, src2 []byte, laneOp func(vec128, vec128) vec128, scalarOp func(byte, byte) byte) {
	mainLen := len(src1) &^ (bytesPerVec - 1)
	for i := 0; i < mainLen; i += bytesPerVec {
		storeVec(dst[i:i+bytesPerVec], laneOp(loadVec(src1[i:i+bytesPerVec]), loadVec(src2[i:i+bytesPerVec])))
	}
	for i, b := range src1[mainLen:] {
		dst[mainLen+i] = scalarOp(b, src2[mainLen+i])
	}
}

// combine8Over processes exactly len(src1) bytes on this platform.
func combine8Over(dst, src1, src2 []byte, laneOp func(vec128, vec128) vec128) {
	combine8(dst, src1, src2, laneOp, func(x, y byte) byte {
		v := laneOp(vec128{lo: uint64(x)}, vec128{lo: uint64(y)})
		return byte(v.lo)
	})
}

// reduceWords folds src[] into an accumulator, a machine word at a time in
// the main region and byte by byte in the remainder.
func reduceWords(src []byte, wordOp func(uint64, uint64) uint64, byteOp func(uint64, byte) uint64) uint64 {
	mainLen := len(src) &^ (BytesPerWord - 1)
	body, tail := src[:mainLen], src[mainLen:]
	var acc uint64
	for i := 0; i < len(body); i += BytesPerWord {
		acc = wordOp(acc, binary.LittleEndian.Uint64(body[i:i+BytesPerWord]))
	}
	for _, b := range tail {
		acc = byteOp(acc, b)
	}
	return acc
}

// reduceFloat64Pairs folds data[] into a float64 accumulator, two lanes at
// a time in the main region and one at a time in the remainder, in the
// same fixed order as the fast path.
func reduceFloat64Pairs(data []float64, laneOp func(acc, lo, hi float64) float64, scalarOp func(acc, x float64) float64) float64 {
	mainLen := len(data) &^ (float64PerVec - 1)
	body, tail := data[:mainLen], data[mainLen:]
	var acc float64
	for i := 0; i < len(body); i += float64PerVec {
		acc = laneOp(acc, body[i], body[i+1])
	}
	for _, x := range tail {
		acc = scalarOp(acc, x)
	}
	return acc
}
