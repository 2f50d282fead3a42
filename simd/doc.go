// Copyright 2025 Lanekit Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package simd provides vectorized implementations of several common
// operations on flat byte and float64 buffers which the compiler cannot be
// trusted to autovectorize. It is the performance-critical core of the
// toolbox; the surrounding packages hand it contiguous buffers with a
// logical length and consume plain buffers or scalars back.
//
// Every operation partitions its input into a main region, the largest
// prefix whose length is a multiple of the operation's lane width, and a
// scalar remainder. The two regions are derived exactly once from the real
// slice length as non-overlapping subslices, so no code path can compute
// an out-of-range offset; processing an element in both regions or in
// neither is structurally impossible. The main region is processed in
// 128-bit groups (16 byte lanes, or 2 float64 lanes), the remainder one
// element at a time. Vectorization never changes results, only speed: on
// builds without the fast path, the same lane arithmetic runs through safe
// word loads and is observably identical.
//
// Two classes of functions are exported:
//
// - Functions with 'Unsafe' in their names are the fastest, but assume
// without checking that slices were allocated with slack capacity, and may
// read or write a few bytes past the end of the given slices. The
// MakeUnsafe function and its relatives allocate byte slices with
// sufficient extra capacity for all Unsafe functions to work properly.
//
// - Their safe analogues work on ordinary slices and panic when documented
// length preconditions are not met. They never touch memory at or beyond
// the slice length.
//
// All operations are total over their input domain, including length zero;
// there are no error returns. Buffers are exclusively owned by the caller
// for the duration of a call and no reference is retained past return.
// Calls are synchronous and stateless, but because bounds checks are
// elided inside the main region, operating concurrently on overlapping
// memory is not safe.
//
// The fast path assumes a uniform modern x86-64 deployment target; its
// presence is asserted once at startup rather than per call. There is no
// runtime feature-detection fallback.
package simd
