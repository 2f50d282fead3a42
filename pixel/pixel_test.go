// Copyright 2025 Lanekit Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pixel

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrayscale(t *testing.T) {
	// Pure channels map to their luma weight times 255, truncated.
	assert.Equal(t,
		[]byte{76, 76, 76, 255},
		Grayscale([]byte{255, 0, 0, 255}))
	assert.Equal(t,
		[]byte{149, 149, 149, 10},
		Grayscale([]byte{0, 255, 0, 10}))
	assert.Equal(t,
		[]byte{29, 29, 29, 0},
		Grayscale([]byte{0, 0, 255, 0}))
	// Gray input is a fixed point.
	assert.Equal(t,
		[]byte{99, 99, 99, 7},
		Grayscale([]byte{99, 99, 99, 7}))
}

func TestGrayscaleMultiPixel(t *testing.T) {
	in := []byte{
		255, 0, 0, 255,
		0, 255, 0, 128,
		12, 34, 56, 90,
	}
	out := Grayscale(in)
	require.Len(t, out, len(in))
	for i := 0; i < len(out); i += BytesPerPixel {
		assert.Equal(t, out[i], out[i+1])
		assert.Equal(t, out[i], out[i+2])
		assert.Equal(t, in[i+3], out[i+3], "alpha must pass through")
	}
}

func TestGrayscalePartialPixel(t *testing.T) {
	assert.Empty(t, Grayscale(nil))
	assert.Empty(t, Grayscale([]byte{1, 2, 3}))
	out := Grayscale([]byte{255, 0, 0, 255, 9, 9})
	assert.Equal(t, []byte{76, 76, 76, 255}, out)
}

func TestGrayscaleInplace(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(0, 256)
	for iter := 0; iter < 50; iter++ {
		var buf []byte
		f.Fuzz(&buf)
		want := Grayscale(buf)
		tail := append([]byte{}, buf[len(buf)&^(BytesPerPixel-1):]...)
		GrayscaleInplace(buf)
		require.Equal(t, want, buf[:len(want)])
		require.Equal(t, tail, buf[len(want):], "partial pixel must be untouched")
	}
}
