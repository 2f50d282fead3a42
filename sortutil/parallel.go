// Copyright 2025 Lanekit Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sortutil

import (
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

const serialThreshold = 128

// Parallel sorts the given slice according to the ordering induced by the
// provided less function. Parallel computation will be attempted, up to
// the limit imposed by parallelism. This function can be much faster than
// the standard library's sort.Slice when sorting large slices on multicore
// machines.
func Parallel[T any](slice []T, less func(i, j int) bool, parallelism int) {
	if parallelism < 1 {
		panic("sortutil: parallelism must be at least 1")
	}
	if len(slice) < 2 {
		return
	}
	// For clarity, we sort a slice of indices into the input slice, then
	// apply the resulting permutation. This keeps the merge machinery free
	// of the element type.
	perm := make([]int, len(slice))
	for i := range perm {
		perm[i] = i
	}
	scratch := make([]int, len(perm))
	mergeSort(perm, less, parallelism, scratch)
	result := make([]T, len(slice))
	parallelRange(len(slice), parallelism, func(start, end int) {
		for i := start; i < end; i++ {
			result[i] = slice[perm[i]]
		}
	})
	parallelRange(len(slice), parallelism, func(start, end int) {
		copy(slice[start:end], result[start:end])
	})
}

func parallelRange(n, parallelism int, fn func(start, end int)) {
	var group errgroup.Group
	chunk := (n + parallelism - 1) / parallelism
	for start := 0; start < n; start += chunk {
		start := start
		end := min(start+chunk, n)
		group.Go(func() error {
			fn(start, end)
			return nil
		})
	}
	// The workers cannot fail; Wait only synchronizes.
	_ = group.Wait()
}

func mergeSort(perm []int, less func(i, j int) bool, parallelism int, scratch []int) {
	if parallelism == 1 || len(perm) < serialThreshold {
		sortSerial(perm, less)
		return
	}

	// Sort two halves of the slice in parallel, allocating half of our
	// parallelism to each subroutine.
	left := perm[:len(perm)/2]
	right := perm[len(perm)/2:]
	var waitGroup sync.WaitGroup
	waitGroup.Add(1)
	go func() {
		mergeSort(left, less, (parallelism+1)/2, scratch[:len(perm)/2])
		waitGroup.Done()
	}()
	mergeSort(right, less, parallelism/2, scratch[len(perm)/2:])
	waitGroup.Wait()

	merge(left, right, less, parallelism, scratch)
	parallelRange(len(perm), parallelism, func(start, end int) {
		copy(perm[start:end], scratch[start:end])
	})
}

func sortSerial(perm []int, less func(i, j int) bool) {
	sort.Slice(perm, func(i, j int) bool {
		return less(perm[i], perm[j])
	})
}

func merge(perm1, perm2 []int, less func(i, j int) bool, parallelism int, out []int) {
	if parallelism == 1 || len(perm1)+len(perm2) < serialThreshold {
		mergeSerial(perm1, perm2, less, out)
		return
	}

	if len(perm1) < len(perm2) {
		perm1, perm2 = perm2, perm1
	}
	// Find the index in perm2 such that all elements to the left are
	// smaller than the midpoint element of perm1.
	r := len(perm1) / 2
	s := sort.Search(len(perm2), func(i int) bool {
		return !less(perm2[i], perm1[r])
	})
	// Merge in parallel, allocating half of our parallelism to each
	// subroutine.
	var waitGroup sync.WaitGroup
	waitGroup.Add(1)
	go func() {
		merge(perm1[:r], perm2[:s], less, (parallelism+1)/2, out[:r+s])
		waitGroup.Done()
	}()
	merge(perm1[r:], perm2[s:], less, parallelism/2, out[r+s:])
	waitGroup.Wait()
}

func mergeSerial(perm1, perm2 []int, less func(i, j int) bool, out []int) {
	var idx1, idx2, idxOut int
	for idx1 < len(perm1) && idx2 < len(perm2) {
		if less(perm1[idx1], perm2[idx2]) {
			out[idxOut] = perm1[idx1]
			idx1++
		} else {
			out[idxOut] = perm2[idx2]
			idx2++
		}
		idxOut++
	}
	for idx1 < len(perm1) {
		out[idxOut] = perm1[idx1]
		idx1++
		idxOut++
	}
	for idx2 < len(perm2) {
		out[idxOut] = perm2[idx2]
		idx2++
		idxOut++
	}
}
