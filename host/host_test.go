// Copyright 2025 Lanekit Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitOnce(t *testing.T) {
	shutdown := Init()
	require.NotNil(t, shutdown)
	assert.PanicsWithValue(t, "host.Init called twice", func() { Init() })
	shutdown()
}

func TestShutdownCallbackOrder(t *testing.T) {
	var order []int
	for i := 0; i < 3; i++ {
		i := i
		RegisterShutdownCallback(func() { order = append(order, i) })
	}
	RunShutdownCallbacks()
	assert.Equal(t, []int{2, 1, 0}, order)

	// Callbacks run once.
	order = nil
	RunShutdownCallbacks()
	assert.Empty(t, order)
}
