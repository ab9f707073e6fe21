// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/json"
	"io"
)

// drillEvent is one line of --json output.
type drillEvent struct {
	Drill   string   `json:"drill"`
	Values  []string `json:"values,omitempty"`
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// jsonRenderer writes one JSON object per drill result.
type jsonRenderer struct {
	w   *bufio.Writer
	enc *json.Encoder
	err error
}

func NewJSONRenderer(w io.Writer) *jsonRenderer {
	bw := bufio.NewWriter(w)
	return &jsonRenderer{w: bw, enc: json.NewEncoder(bw)}
}

func (r *jsonRenderer) emit(ev drillEvent) {
	if r.err != nil {
		return
	}
	r.err = r.enc.Encode(ev)
}

func (r *jsonRenderer) Values(drill string, values []string) {
	r.emit(drillEvent{Drill: drill, Values: values})
}

func (r *jsonRenderer) Message(drill string, msg string) {
	r.emit(drillEvent{Drill: drill, Message: msg})
}

func (r *jsonRenderer) Error(drill string, err error) {
	r.emit(drillEvent{Drill: drill, Error: err.Error()})
}

func (r *jsonRenderer) Flush() error {
	if r.err != nil {
		return r.err
	}
	return r.w.Flush()
}
