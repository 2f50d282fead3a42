// Copyright 2025 Lanekit Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package csvjson bridges CSV input to JSON output for hosts that want
// tabular data re-encoded without interpreting it. Each CSV record maps to
// a JSON array of strings; no type inference is attempted.
package csvjson

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// Reader reads CSV records and re-encodes them as JSON. It wraps the
// standard csv.Reader, so all of its knobs (Comma, LazyQuotes, ...) are
// available. Thread compatible.
type Reader struct {
	*csv.Reader

	// HasHeaderRow should be set to true to indicate that the input
	// contains a single header row, which is skipped rather than
	// re-encoded. It must be set before reading any data.
	HasHeaderRow bool

	headerSkipped bool
}

// NewReader creates a new CSV-to-JSON reader that reads from the given
// input.
func NewReader(in io.Reader) *Reader {
	r := &Reader{Reader: csv.NewReader(in)}
	r.ReuseRecord = true
	return r
}

// ReadJSON returns the next CSV record encoded as a compact JSON array of
// strings. It returns io.EOF when the input is exhausted.
func (r *Reader) ReadJSON() (string, error) {
	if r.HasHeaderRow && !r.headerSkipped {
		r.headerSkipped = true
		if _, err := r.Read(); err != nil {
			return "", err
		}
	}
	record, err := r.Read()
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(record)
	if err != nil {
		return "", errors.Wrap(err, "csvjson: encoding record")
	}
	return string(data), nil
}

// Records reads all CSV records from in and returns one JSON document per
// record. The first row is treated as a header and skipped.
func Records(in io.Reader) ([]string, error) {
	r := NewReader(in)
	r.HasHeaderRow = true
	var records []string
	for {
		s, err := r.ReadJSON()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "csvjson: reading record")
		}
		records = append(records, s)
	}
}

// Convert streams all CSV records from in to out as a single JSON array
// of arrays of strings. The first row is treated as a header and skipped.
func Convert(in io.Reader, out io.Writer) error {
	r := NewReader(in)
	r.HasHeaderRow = true
	w := bufio.NewWriter(out)
	if err := w.WriteByte('['); err != nil {
		return errors.Wrap(err, "csvjson: writing output")
	}
	first := true
	for {
		s, err := r.ReadJSON()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "csvjson: reading record")
		}
		if !first {
			if err := w.WriteByte(','); err != nil {
				return errors.Wrap(err, "csvjson: writing output")
			}
		}
		first = false
		if _, err := w.WriteString(s); err != nil {
			return errors.Wrap(err, "csvjson: writing output")
		}
	}
	if err := w.WriteByte(']'); err != nil {
		return errors.Wrap(err, "csvjson: writing output")
	}
	return errors.Wrap(w.Flush(), "csvjson: flushing output")
}
