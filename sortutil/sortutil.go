// Copyright 2025 Lanekit Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package sortutil provides the toolbox's comparison sorts: two simple
// serial sorts over int32 buffers with fully specified algorithmic
// behavior, and a parallel merge sort for large slices of any type. The
// serial sorts exist for hosts that want reproducible, allocation-bounded
// sorting of plain numeric buffers; Parallel is for everything else.
package sortutil

// Quicksort sorts a[] in place in ascending order. The pivot is always
// the last element of the partition, so already-sorted input is the worst
// case; callers with adversarial input should use Parallel instead.
func Quicksort(a []int32) {
	if len(a) <= 1 {
		return
	}
	pivot := a[len(a)-1]
	i := 0
	for j := 0; j < len(a)-1; j++ {
		if a[j] < pivot {
			a[i], a[j] = a[j], a[i]
			i++
		}
	}
	a[i], a[len(a)-1] = a[len(a)-1], a[i]
	Quicksort(a[:i])
	Quicksort(a[i+1:])
}

// Mergesort sorts a[] in place in ascending order. It is stable and
// allocates a single auxiliary buffer of len(a).
func Mergesort(a []int32) {
	if len(a) <= 1 {
		return
	}
	aux := make([]int32, len(a))
	copy(aux, a)
	mergesortRecursive(a, aux, 0, len(a))
}

// mergesortRecursive sorts arr[start:end]. arr and aux swap roles at each
// level, which avoids a copy-back after every merge; both must hold the
// same contents for [start, end) on entry.
func mergesortRecursive(arr, aux []int32, start, end int) {
	if end-start <= 1 {
		return
	}
	mid := (start + end) / 2
	mergesortRecursive(aux, arr, start, mid)
	mergesortRecursive(aux, arr, mid, end)
	mergeInt32(arr, aux, start, mid, end)
}

func mergeInt32(arr, aux []int32, start, mid, end int) {
	left, right := start, mid
	idx := start
	for left < mid && right < end {
		if aux[left] <= aux[right] {
			arr[idx] = aux[left]
			left++
		} else {
			arr[idx] = aux[right]
			right++
		}
		idx++
	}
	if left < mid {
		copy(arr[idx:end], aux[left:mid])
	} else if right < end {
		copy(arr[idx:end], aux[right:end])
	}
}
