// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/cyclopcam/logs"
	"golang.org/x/term"
)

// A Prompter asks the user for input until it gets a non-empty answer.
type Prompter struct {
	out io.Writer
	log logs.Log

	// Exactly one of these is set.
	fd int           // terminal to read without echo, or -1
	r  *bufio.Reader // line input
}

// NewPrompter returns a Prompter reading from in and writing prompts to out.
// If in is a terminal, answers are read without echo.
func NewPrompter(in io.Reader, out io.Writer, log logs.Log) *Prompter {
	p := &Prompter{out: out, log: log, fd: -1}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
	} else {
		p.r = bufio.NewReader(in)
	}
	return p
}

// RequireNonEmpty writes prompt and reads an answer, repeating with retry
// written first for as long as the answer is empty. It fails if input ends
// before a non-empty answer.
func (p *Prompter) RequireNonEmpty(prompt, retry string) (string, error) {
	for attempt := 1; ; attempt++ {
		fmt.Fprint(p.out, prompt)
		answer, err := p.readLine()
		if answer != "" {
			return answer, nil
		}
		if err == io.EOF {
			return "", fmt.Errorf("input ended before a non-empty answer: %w", io.ErrUnexpectedEOF)
		} else if err != nil {
			return "", fmt.Errorf("reading answer: %w", err)
		}
		p.log.Debugf("Empty answer on attempt %v", attempt)
		fmt.Fprintln(p.out, retry)
	}
}

// readLine returns the next line without its line terminator. A final line
// with no terminator is returned with a nil error.
func (p *Prompter) readLine() (string, error) {
	if p.fd >= 0 {
		return p.readSecret()
	}
	line, err := p.r.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err == io.EOF && line != "" {
		err = nil
	}
	return line, err
}

func (p *Prompter) readSecret() (string, error) {
	state, err := term.GetState(p.fd)
	if err != nil {
		return "", err
	}

	// ReadPassword turns off echo. Put it back if we're interrupted.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	done := make(chan struct{})
	defer func() {
		signal.Stop(sig)
		close(done)
	}()
	go func() {
		select {
		case <-sig:
			term.Restore(p.fd, state)
			fmt.Fprintln(p.out)
			os.Exit(130)
		case <-done:
		}
	}()

	b, err := term.ReadPassword(p.fd)
	// The user's newline was not echoed either.
	fmt.Fprintln(p.out)
	if errors.Is(err, io.EOF) && len(b) > 0 {
		err = nil
	}
	return string(b), err
}
