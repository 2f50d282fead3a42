// Copyright 2025 Lanekit Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package must

import (
	"errors"
	"fmt"
	"testing"
)

func TestMust(t *testing.T) {
	var msg string
	Func = func(depth int, v ...interface{}) {
		msg = fmt.Sprint(v...)
	}
	for _, c := range []struct {
		f    func()
		want string
	}{
		{func() { Nil(errors.New("some error")) }, "some error"},
		{func() { Nil(errors.New("some error"), "context") }, "context: some error"},
		{func() { Nilf(errors.New("some error"), "ctx %d", 2) }, "ctx 2: some error"},
		{func() { True(false) }, "must: assertion failed"},
		{func() { True(false, "reason") }, "reason"},
		{func() { Truef(false, "n=%d", 5) }, "n=5"},
		{func() { Never("unreachable") }, "unreachable"},
		{func() { Neverf("unreachable %s", "state") }, "unreachable state"},
	} {
		msg = ""
		c.f()
		if msg != c.want {
			t.Errorf("got %q, want %q", msg, c.want)
		}
	}

	// No-op cases must not call Func.
	msg = ""
	Nil(nil)
	True(true, "ignored")
	if msg != "" {
		t.Errorf("unexpected message %q", msg)
	}
}
