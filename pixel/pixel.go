// Copyright 2025 Lanekit Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pixel transforms raw RGBA pixel buffers.
package pixel

// BytesPerPixel is the size of one RGBA pixel.
const BytesPerPixel = 4

// Grayscale converts an RGBA buffer to grayscale using the BT.601 luma
// weights (0.299 R + 0.587 G + 0.114 B), writing the luma to each color
// channel and preserving alpha. The luma is truncated, not rounded.
// Trailing bytes that do not form a complete pixel are ignored.
func Grayscale(rgba []byte) []byte {
	n := len(rgba) &^ (BytesPerPixel - 1)
	out := make([]byte, n)
	for i := 0; i < n; i += BytesPerPixel {
		luma := byte(0.299*float32(rgba[i]) +
			0.587*float32(rgba[i+1]) +
			0.114*float32(rgba[i+2]))
		out[i] = luma
		out[i+1] = luma
		out[i+2] = luma
		out[i+3] = rgba[i+3]
	}
	return out
}

// GrayscaleInplace is Grayscale writing back into rgba.
func GrayscaleInplace(rgba []byte) {
	n := len(rgba) &^ (BytesPerPixel - 1)
	for i := 0; i < n; i += BytesPerPixel {
		luma := byte(0.299*float32(rgba[i]) +
			0.587*float32(rgba[i+1]) +
			0.114*float32(rgba[i+2]))
		rgba[i] = luma
		rgba[i+1] = luma
		rgba[i+2] = luma
	}
}
