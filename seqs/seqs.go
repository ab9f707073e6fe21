// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seqs finds the largest element, the repeated elements and the most
// frequent element of a slice.
//
// None of the functions modify their input or keep any state between calls,
// so they are safe for concurrent use. Elements are compared with ==; a
// sequence of interface values holding uncomparable dynamic types will panic
// the same way a map lookup would.
package seqs

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrInvalidArgument is wrapped by errors returned when a precondition on
// the input does not hold.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// Largest returns the maximum element of s. When several elements are equal
// to the maximum, the first of them is returned.
//
// It returns an error wrapping ErrInvalidArgument if s is empty.
func Largest[T constraints.Ordered](s []T) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, invalidArgument("largest-element finder requires a non-empty sequence")
	}
	largest := s[0]
	for _, v := range s[1:] {
		if v > largest {
			largest = v
		}
	}
	return largest, nil
}

// Duplicates returns every value that occurs in s more than once, each listed
// once, in the order its first repeat appears. The result is empty, not nil,
// when nothing repeats.
func Duplicates[T comparable](s []T) []T {
	var seen, dups Set[T]
	for _, v := range s {
		if seen.Has(v) {
			dups.Add(v)
		} else {
			seen.Add(v)
		}
	}
	return dups.Values()
}

// MostFrequent returns the element that occurs most often in s. Ties go to
// the element that appears first in s.
//
// It returns an error wrapping ErrInvalidArgument if s is empty.
func MostFrequent[T comparable](s []T) (T, error) {
	if len(s) == 0 {
		var zero T
		return zero, invalidArgument("most-frequent-element finder requires a non-empty sequence")
	}
	return Count(s).MostCommon(1)[0].Value, nil
}
