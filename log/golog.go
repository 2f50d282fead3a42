// Copyright 2025 Lanekit Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package log

import (
	"io"
	golog "log"
)

// Flag values accepted by SetFlags, mirroring the standard log package.
const (
	Ldate         = golog.Ldate
	Ltime         = golog.Ltime
	Lmicroseconds = golog.Lmicroseconds
	Llongfile     = golog.Llongfile
	Lshortfile    = golog.Lshortfile
	LUTC          = golog.LUTC
	LstdFlags     = golog.LstdFlags
)

var golevel = Info

// SetFlags sets the output flags for the Go standard logger.
func SetFlags(flag int) {
	golog.SetFlags(flag)
}

// SetOutput sets the output destination for the Go standard logger.
func SetOutput(w io.Writer) {
	golog.SetOutput(w)
}

// SetPrefix sets the output prefix for the Go standard logger.
func SetPrefix(prefix string) {
	golog.SetPrefix(prefix)
}

// SetLevel sets the log level for the Go standard logger. It should be
// called once at the beginning of a program's main.
func SetLevel(level Level) {
	golevel = level
}

type gologOutputter struct{}

func (gologOutputter) Level() Level { return golevel }

func (gologOutputter) Output(calldepth int, level Level, s string) error {
	if golevel < level {
		return nil
	}
	return golog.Output(calldepth+1, s)
}
