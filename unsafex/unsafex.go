// Copyright 2025 Lanekit Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package unsafex provides zero-copy conversions between strings and byte
// slices, plus a few slice-resizing helpers used by the simd package's
// buffer allocators. Callers are responsible for not mutating the shared
// memory in ways that break string immutability.
package unsafex

import "unsafe"

// BytesToString casts src to a string without allocating. The returned
// string shares memory with src; src must not be modified while the string
// is live.
func BytesToString(src []byte) string {
	return unsafe.String(unsafe.SliceData(src), len(src))
}

// StringToBytes casts src to []byte without allocating. The returned slice
// shares memory with src and must not be written to.
func StringToBytes(src string) []byte {
	return unsafe.Slice(unsafe.StringData(src), len(src))
}

// ExtendBytes extends the given byte slice in place, without
// zero-initializing the newly exposed storage. The caller must guarantee
// cap(*dptr) >= newLen, e.g. by having allocated the parent buffer with
// simd.MakeUnsafe.
func ExtendBytes(dptr *[]byte, newLen int) {
	if cap(*dptr) < newLen {
		panic(newLen)
	}
	*dptr = (*dptr)[:newLen]
}
