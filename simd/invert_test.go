// Copyright 2025 Lanekit Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package simd_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/lanekit/base/simd"
)

func invertSlow(main []byte) {
	// Slow, but straightforward-to-verify implementation.
	for idx := range main {
		main[idx] = 255 - main[idx]
	}
}

func TestInvert8(t *testing.T) {
	// Generate some random buffers and verify that inversion results are as
	// expected.
	maxSize := 500
	nIter := 200
	main1Arr := simd.MakeUnsafe(maxSize)
	main2Arr := simd.MakeUnsafe(maxSize)
	main3Arr := simd.MakeUnsafe(maxSize)
	main4Arr := simd.MakeUnsafe(maxSize)
	main5Arr := simd.MakeUnsafe(maxSize)
	for iter := 0; iter < nIter; iter++ {
		sliceStart := rand.Intn(maxSize)
		sliceEnd := sliceStart + rand.Intn(maxSize-sliceStart)
		main1Slice := main1Arr[sliceStart:sliceEnd]
		for ii := range main1Slice {
			main1Slice[ii] = byte(rand.Intn(256))
		}
		main2Slice := main2Arr[sliceStart:sliceEnd]
		main3Slice := main3Arr[sliceStart:sliceEnd]
		main4Slice := main4Arr[sliceStart:sliceEnd]
		main5Slice := main5Arr[sliceStart:sliceEnd]
		copy(main3Slice, main1Slice)
		copy(main5Slice, main1Slice)
		invertSlow(main1Slice)
		simd.Invert8Unsafe(main2Slice, main3Slice)
		if !bytes.Equal(main1Slice, main2Slice) {
			t.Fatal("Mismatched Invert8Unsafe result.")
		}
		sentinel := byte(rand.Intn(256))
		main4Arr[sliceEnd] = sentinel
		simd.Invert8(main4Slice, main3Slice)
		if !bytes.Equal(main1Slice, main4Slice) {
			t.Fatal("Mismatched Invert8 result.")
		}
		if main4Arr[sliceEnd] != sentinel {
			t.Fatal("Invert8 clobbered an extra byte.")
		}
		simd.Invert8UnsafeInplace(main3Slice)
		if !bytes.Equal(main1Slice, main3Slice) {
			t.Fatal("Mismatched Invert8UnsafeInplace result.")
		}
		main5Arr[sliceEnd] = sentinel
		simd.Invert8Inplace(main5Slice)
		if !bytes.Equal(main1Slice, main5Slice) {
			t.Fatal("Mismatched Invert8Inplace result.")
		}
		if main5Arr[sliceEnd] != sentinel {
			t.Fatal("Invert8Inplace clobbered an extra byte.")
		}
	}
}

func TestInvert8SelfInverse(t *testing.T) {
	// Lengths straddling the lane width, including 0 and a
	// non-multiple-of-16 case for every residue.
	for size := 0; size <= 64; size++ {
		orig := make([]byte, size)
		for ii := range orig {
			orig[ii] = byte(rand.Intn(256))
		}
		main := simd.MakeUnsafe(size)
		copy(main, orig)
		simd.Invert8Inplace(main)
		for ii := range main {
			if main[ii] != 255-orig[ii] {
				t.Fatalf("size %d: byte %d not inverted", size, ii)
			}
		}
		simd.Invert8Inplace(main)
		if !bytes.Equal(main, orig) {
			t.Fatalf("size %d: double inversion is not the identity", size)
		}
	}
}

func Benchmark_Invert8Inplace(b *testing.B) {
	main := simd.MakeUnsafe(4096)
	for ii := range main {
		main[ii] = byte(ii * 3)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		simd.Invert8Inplace(main)
	}
}
