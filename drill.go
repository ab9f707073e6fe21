// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/akamensky/argparse"
	"github.com/cyclopcam/logs"

	"github.com/loopdrills/loopdrills/drills"
	"github.com/loopdrills/loopdrills/seqs"
)

type drill struct {
	name string
	cmd  *argparse.Command
	run  func(env *drillEnv) error
}

// drillEnv is what a drill needs to report its result.
type drillEnv struct {
	r      Renderer
	prompt *Prompter
	log    logs.Log
}

func (env *drillEnv) run(inv *invocation) error {
	err := inv.drill.run(env)
	if err != nil {
		env.log.Warnf("Drill %v failed: %v", inv.drill.name, err)
		env.r.Error(inv.drill.name, err)
	}
	return err
}

// A usageError is a drill failure caused by a malformed flag.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

const noDuplicates = "No duplicate in the provided list"

// newDrills registers a subcommand on parser for every drill.
func newDrills(parser *argparse.Parser) []*drill {
	var ds []*drill
	add := func(name, help string, setup func(cmd *argparse.Command) func(env *drillEnv) error) {
		cmd := parser.NewCommand(name, help)
		ds = append(ds, &drill{name: name, cmd: cmd, run: setup(cmd)})
	}

	add("evens", "Print the even numbers from 2 to a limit", func(cmd *argparse.Command) func(*drillEnv) error {
		limit := cmd.Int("n", "limit", &argparse.Options{Default: 20, Help: "Largest number to consider"})
		return func(env *drillEnv) error {
			env.r.Values("evens", sprintAll(drills.EvenNumbers(*limit)))
			return nil
		}
	})

	add("countdown", "Count down to 1", func(cmd *argparse.Command) func(*drillEnv) error {
		from := cmd.Int("n", "from", &argparse.Options{Default: 10, Help: "Number to count down from"})
		return func(env *drillEnv) error {
			env.r.Values("countdown", sprintAll(drills.Countdown(*from)))
			return nil
		}
	})

	add("chars", "Print each character of a string", func(cmd *argparse.Command) func(*drillEnv) error {
		s := cmd.String("s", "string", &argparse.Options{Required: true, Help: "String to split"})
		return func(env *drillEnv) error {
			env.r.Values("chars", drills.Chars(*s))
			return nil
		}
	})

	add("sum", "Sum the numbers from 1 to a limit", func(cmd *argparse.Command) func(*drillEnv) error {
		limit := cmd.Int("n", "limit", &argparse.Options{Default: 100, Help: "Last number to add"})
		return func(env *drillEnv) error {
			env.r.Values("sum", sprintAll([]int{drills.Sum(*limit)}))
			return nil
		}
	})

	add("greater", "Print the values greater than a threshold", func(cmd *argparse.Command) func(*drillEnv) error {
		threshold := cmd.Int("t", "threshold", &argparse.Options{Required: true, Help: "Values must exceed this"})
		values := cmd.String("", "values", &argparse.Options{Help: "Comma-separated integers (default: a sample list)"})
		return func(env *drillEnv) error {
			s, err := env.ints("greater", *values, drills.ThresholdSample)
			if err != nil {
				return err
			}
			env.r.Values("greater", sprintAll(drills.GreaterThan(*threshold, s)))
			return nil
		}
	})

	add("largest", "Print the largest value of a list", func(cmd *argparse.Command) func(*drillEnv) error {
		values := cmd.String("", "values", &argparse.Options{Help: "Comma-separated integers (default: a sample list)"})
		return func(env *drillEnv) error {
			s, err := env.ints("largest", *values, drills.LargestSample)
			if err != nil {
				return err
			}
			largest, err := seqs.Largest(s)
			if err != nil {
				return err
			}
			env.r.Values("largest", sprintAll([]int{largest}))
			return nil
		}
	})

	add("except", "Print 1 to N, skipping one number", func(cmd *argparse.Command) func(*drillEnv) error {
		skip := cmd.Int("s", "skip", &argparse.Options{Required: true, Help: "Number to leave out"})
		end := cmd.Int("n", "end", &argparse.Options{Default: 10, Help: "Last number"})
		return func(env *drillEnv) error {
			env.r.Values("except", sprintAll(drills.Except(*skip, *end)))
			return nil
		}
	})

	add("password", "Ask for a password until one is entered", func(cmd *argparse.Command) func(*drillEnv) error {
		return func(env *drillEnv) error {
			pw, err := env.prompt.RequireNonEmpty("Enter new password: ", "Password cannot be empty! Try again.")
			if err != nil {
				return err
			}
			env.r.Message("password", fmt.Sprintf("Password accepted (%d characters)", utf8.RuneCountInString(pw)))
			return nil
		}
	})

	add("table", "Print a multiplication table up to 12", func(cmd *argparse.Command) func(*drillEnv) error {
		n := cmd.Int("n", "number", &argparse.Options{Default: 5, Help: "Number to multiply"})
		return func(env *drillEnv) error {
			env.r.Values("table", sprintAll(drills.MultiplicationTable(*n)))
			return nil
		}
	})

	add("duplicates", "Print the values that occur more than once", func(cmd *argparse.Command) func(*drillEnv) error {
		values := cmd.String("", "values", &argparse.Options{Help: "Comma-separated integers (default: a sample list)"})
		return func(env *drillEnv) error {
			s, err := env.ints("duplicates", *values, drills.RepeatSample)
			if err != nil {
				return err
			}
			dups := seqs.Duplicates(s)
			if len(dups) == 0 {
				env.r.Message("duplicates", noDuplicates)
				return nil
			}
			env.r.Values("duplicates", sprintAll(dups))
			return nil
		}
	})

	add("frequent", "Print the most frequent value of a list", func(cmd *argparse.Command) func(*drillEnv) error {
		values := cmd.String("", "values", &argparse.Options{Help: "Comma-separated words (default: a sample list)"})
		return func(env *drillEnv) error {
			s := drills.FruitSample
			if *values == "" {
				env.log.Infof("No --values for frequent, using sample %v", s)
			} else {
				s = splitList(*values)
			}
			mode, err := seqs.MostFrequent(s)
			if err != nil {
				return err
			}
			env.r.Values("frequent", []string{mode})
			return nil
		}
	})

	return ds
}

// ints parses a comma-separated list of integers. An empty flag selects
// sample.
func (env *drillEnv) ints(drill, flag string, sample []int) ([]int, error) {
	if flag == "" {
		env.log.Infof("No --values for %v, using sample %v", drill, sample)
		return sample, nil
	}
	fields := splitList(flag)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, &usageError{fmt.Errorf("--values: %q is not an integer", f)}
		}
		out = append(out, n)
	}
	return out, nil
}

func splitList(s string) []string {
	fields := strings.Split(s, ",")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}
