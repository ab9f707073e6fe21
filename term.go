// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Term buffers output for w. Attributes are only emitted when color is
// enabled.
type Term struct {
	bytes.Buffer
	w     io.Writer
	color bool
}

type TermAttr int

var (
	AttrBold   TermAttr = 1
	AttrRed    TermAttr = 31
	AttrGreen  TermAttr = 32
	AttrYellow TermAttr = 33
)

// NewTerm returns a Term writing to w. Color is enabled if w is a terminal.
func NewTerm(w io.Writer) *Term {
	return &Term{w: w, color: isTerminal(w)}
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (t *Term) SetColor(enable bool) {
	t.color = enable
}

func (t *Term) Attr(attrs ...TermAttr) {
	if !t.color {
		return
	}
	t.WriteString("\033[0")
	for _, attr := range attrs {
		fmt.Fprintf(t, ";%d", attr)
	}
	t.WriteByte('m')
}

func (t *Term) Flush() error {
	_, err := t.w.Write(t.Bytes())
	t.Reset()
	return err
}
