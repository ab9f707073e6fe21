// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
)

type Renderer interface {
	// Values displays the result of a drill as a list of values.
	Values(drill string, values []string)
	// Message displays a one-line result.
	Message(drill string, msg string)
	// Error displays a drill that failed.
	Error(drill string, err error)
	// Flush writes out anything buffered.
	Flush() error
}

type termRenderer struct {
	term *Term
}

func NewTermRenderer(term *Term) *termRenderer {
	return &termRenderer{term: term}
}

func (r *termRenderer) Values(drill string, values []string) {
	for _, v := range values {
		r.term.WriteString(v)
		r.term.WriteByte('\n')
	}
}

func (r *termRenderer) Message(drill string, msg string) {
	r.term.Attr(AttrBold)
	r.term.WriteString(msg)
	r.term.Attr()
	r.term.WriteByte('\n')
}

func (r *termRenderer) Error(drill string, err error) {
	r.term.Attr(AttrRed)
	fmt.Fprintf(r.term, "%s: %s\n", drill, err)
	r.term.Attr()
}

func (r *termRenderer) Flush() error {
	return r.term.Flush()
}

// sliceMap applies fn to each element of s.
func sliceMap[T, U any](s []T, fn func(T) U) []U {
	out := make([]U, len(s))
	for i := range s {
		out[i] = fn(s[i])
	}
	return out
}

func sprintAll[T any](s []T) []string {
	return sliceMap(s, func(v T) string { return fmt.Sprint(v) })
}
