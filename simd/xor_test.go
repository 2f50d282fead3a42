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

func xorInplaceSlow(main, arg []byte) {
	for idx := range main {
		main[idx] = main[idx] ^ arg[idx]
	}
}

func TestXor(t *testing.T) {
	maxSize := 500
	nIter := 200
	argArr := simd.MakeUnsafe(maxSize)
	for ii := range argArr {
		argArr[ii] = byte(rand.Intn(256))
	}
	main1Arr := simd.MakeUnsafe(maxSize)
	main2Arr := simd.MakeUnsafe(maxSize)
	main3Arr := simd.MakeUnsafe(maxSize)
	main4Arr := simd.MakeUnsafe(maxSize)
	main5Arr := simd.MakeUnsafe(maxSize)
	for iter := 0; iter < nIter; iter++ {
		sliceStart := rand.Intn(maxSize)
		sliceEnd := sliceStart + rand.Intn(maxSize-sliceStart)
		argSlice := argArr[sliceStart:sliceEnd]
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
		xorInplaceSlow(main1Slice, argSlice)
		simd.XorUnsafe(main2Slice, argSlice, main3Slice)
		if !bytes.Equal(main1Slice, main2Slice) {
			t.Fatal("Mismatched XorUnsafe result.")
		}
		sentinel := byte(rand.Intn(256))
		main4Arr[sliceEnd] = sentinel
		simd.Xor(main4Slice, argSlice, main3Slice)
		if !bytes.Equal(main1Slice, main4Slice) {
			t.Fatal("Mismatched Xor result.")
		}
		if main4Arr[sliceEnd] != sentinel {
			t.Fatal("Xor clobbered an extra byte.")
		}
		simd.XorUnsafeInplace(main3Slice, argSlice)
		if !bytes.Equal(main1Slice, main3Slice) {
			t.Fatal("Mismatched XorUnsafeInplace result.")
		}
		main5Arr[sliceEnd] = sentinel
		simd.XorInplace(main5Slice, argSlice)
		if !bytes.Equal(main1Slice, main5Slice) {
			t.Fatal("Mismatched XorInplace result.")
		}
		if main5Arr[sliceEnd] != sentinel {
			t.Fatal("XorInplace clobbered an extra byte.")
		}
	}
}

func TestXorBytes(t *testing.T) {
	// Unequal lengths: result is truncated to the shorter input.
	a := []byte{1, 2, 3}
	b := []byte{4, 5, 6, 7, 8}
	result := simd.XorBytes(a, b)
	if len(result) != 3 {
		t.Fatalf("XorBytes length: got %d, want 3", len(result))
	}
	for ii := range result {
		if result[ii] != a[ii]^b[ii] {
			t.Fatalf("XorBytes byte %d: got %d, want %d", ii, result[ii], a[ii]^b[ii])
		}
	}
	result = simd.XorBytes(b, a)
	if len(result) != 3 {
		t.Fatalf("XorBytes length (swapped): got %d, want 3", len(result))
	}
	if len(simd.XorBytes(nil, b)) != 0 {
		t.Fatal("XorBytes of an empty input must be empty.")
	}
}

func TestXorBytesInvolution(t *testing.T) {
	for size := 0; size <= 64; size++ {
		a := make([]byte, size)
		b := make([]byte, size)
		for ii := range a {
			a[ii] = byte(rand.Intn(256))
			b[ii] = byte(rand.Intn(256))
		}
		if !bytes.Equal(simd.XorBytes(simd.XorBytes(a, b), b), a) {
			t.Fatalf("size %d: xor(xor(a,b), b) != a", size)
		}
		for _, x := range simd.XorBytes(a, a) {
			if x != 0 {
				t.Fatalf("size %d: xor(a,a) is not all zeros", size)
			}
		}
	}
}

func Benchmark_XorInplace(b *testing.B) {
	main := simd.MakeUnsafe(4096)
	arg := simd.MakeUnsafe(4096)
	for ii := range arg {
		arg[ii] = byte(ii * 7)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		simd.XorInplace(main, arg)
	}
}
