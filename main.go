// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Loopdrills runs small loop exercises and prints their results.
//
// Usage:
//
//	loopdrills [--json] [--no-color] [-v] <drill> [flags]
//
// Run "loopdrills -h" for the list of drills.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akamensky/argparse"
	"github.com/cyclopcam/logs"
)

func main() {
	err := main1(os.Args, os.Stdin, os.Stdout, os.Stderr)
	switch err := err.(type) {
	case nil:
		return
	case ErrExit:
		os.Exit(int(err))
	default:
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

type ErrExit int

func (e ErrExit) Error() string {
	return fmt.Sprintf("exit code %d", int(e))
}

func main1(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	inv, usage, err := parseArgs(args)
	if err != nil {
		fmt.Fprint(stderr, usage)
		return ErrExit(2)
	}

	var log logs.Log = nopLog{}
	if inv.verbose {
		l, err := logs.NewLog()
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer l.Close()
		log = l
	}

	var r Renderer
	promptOut := stdout
	if inv.json {
		r = NewJSONRenderer(stdout)
		// Keep stdout parseable.
		promptOut = stderr
	} else {
		term := NewTerm(stdout)
		if inv.noColor {
			term.SetColor(false)
		}
		r = NewTermRenderer(term)
	}

	env := &drillEnv{
		r:      r,
		prompt: NewPrompter(stdin, promptOut, log),
		log:    log,
	}
	log.Debugf("Running drill %v", inv.drill.name)
	runErr := env.run(inv)
	if err := r.Flush(); err != nil {
		return err
	}
	if runErr != nil {
		// The renderer has already shown the error.
		var usageErr *usageError
		if errors.As(runErr, &usageErr) {
			return ErrExit(2)
		}
		return ErrExit(1)
	}
	return nil
}

// nopLog discards everything. It's used unless -v is given so that log
// lines don't mix with drill output.
type nopLog struct{}

func (nopLog) Close() {}
func (nopLog) Debugf(string, ...any) {}
func (nopLog) Infof(string, ...any) {}
func (nopLog) Warnf(string, ...any) {}
func (nopLog) Errorf(string, ...any) {}
func (nopLog) Criticalf(string, ...any) {}

// invocation is a parsed command line.
type invocation struct {
	json, noColor, verbose bool

	drill *drill
}

func parseArgs(args []string) (*invocation, string, error) {
	parser := argparse.NewParser("loopdrills", "Small loop exercises over ranges, strings and lists")
	jsonOut := parser.Flag("", "json", &argparse.Options{Help: "Print results as JSON lines"})
	noColor := parser.Flag("", "no-color", &argparse.Options{Help: "Disable colored output"})
	verbose := parser.Flag("v", "verbose", &argparse.Options{Help: "Log what each drill is doing"})

	ds := newDrills(parser)
	if err := parser.Parse(args); err != nil {
		return nil, parser.Usage(err), err
	}
	inv := &invocation{json: *jsonOut, noColor: *noColor, verbose: *verbose}
	for _, d := range ds {
		if d.cmd.Happened() {
			inv.drill = d
			break
		}
	}
	if inv.drill == nil {
		err := errors.New("no drill given")
		return nil, parser.Usage(err), err
	}
	return inv, "", nil
}
