// Copyright 2025 Lanekit Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package host performs the one-time process setup a program does
// before using the toolbox packages. The transform kernels themselves
// are stateless; Init only configures logging and, optionally, the
// gops diagnostics agent.
package host

import (
	"os"
	"sync"

	"github.com/google/gops/agent"
	"github.com/lanekit/base/log"
	"github.com/lanekit/base/must"
)

// Shutdown must be called before the program exits, typically via
// defer in main.
type Shutdown func()

var (
	mu          sync.Mutex
	initialized bool
	gopsStarted bool
	callbacks   []func()
)

// Init performs one-time initialization and returns the Shutdown
// function. It must be called at most once; a second call panics.
//
// Log output is annotated with file and line so messages from deep in
// the toolbox remain attributable. If the GOPS environment variable is
// set, the gops agent is started for runtime diagnostics.
func Init() Shutdown {
	mu.Lock()
	already := initialized
	initialized = true
	mu.Unlock()
	must.Truef(!already, "host.Init called twice")

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if os.Getenv("GOPS") != "" {
		if err := agent.Listen(agent.Options{}); err != nil {
			log.Error.Printf("host: gops agent: %v", err)
		} else {
			gopsStarted = true
		}
	}
	return func() {
		RunShutdownCallbacks()
		mu.Lock()
		defer mu.Unlock()
		if gopsStarted {
			agent.Close()
			gopsStarted = false
		}
	}
}

// RegisterShutdownCallback registers a function to run during
// Shutdown. Callbacks run in reverse registration order.
func RegisterShutdownCallback(cb func()) {
	mu.Lock()
	defer mu.Unlock()
	callbacks = append(callbacks, cb)
}

// RunShutdownCallbacks runs and clears the registered callbacks. It is
// called by the Shutdown function returned from Init; tests may call
// it directly.
func RunShutdownCallbacks() {
	mu.Lock()
	cbs := callbacks
	callbacks = nil
	mu.Unlock()
	for i := len(cbs) - 1; i >= 0; i-- {
		cbs[i]()
	}
}
