// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package drills implements small loop exercises over integer ranges,
// strings and short slices. Every function returns its result instead of
// printing it.
package drills

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sample inputs. Nothing in this package falls back to them; callers that
// want a default pass one explicitly.
var (
	ThresholdSample = []int{3, 7, 2, 9, 4}
	LargestSample   = []int{10, 3, 88, 42, 5}
	RepeatSample    = []int{34, 5, 90, 50, 5, 7, 5, 23, 20}
	FruitSample     = []string{"apple", "orange", "apple", "banana", "orange", "apple"}
)

// EvenNumbers returns the even numbers from 2 through limit.
func EvenNumbers(limit int) []int {
	out := []int{}
	for n := 2; n <= limit; n += 2 {
		out = append(out, n)
	}
	return out
}

// Countdown returns n, n-1, ..., 1.
func Countdown(n int) []int {
	out := []int{}
	for ; n >= 1; n-- {
		out = append(out, n)
	}
	return out
}

// Chars returns each character of s.
func Chars(s string) []string {
	out := []string{}
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Sum returns 1 + 2 + ... + limit, or 0 if limit < 1.
func Sum[T constraints.Integer](limit T) T {
	var total T
	if limit < 1 {
		return total
	}
	// Stop on limit itself so that limit == max(T) does not wrap around.
	for n := T(1); ; n++ {
		total += n
		if n == limit {
			return total
		}
	}
}

// GreaterThan returns the elements of s that are strictly greater than
// threshold, in order.
func GreaterThan[T constraints.Ordered](threshold T, s []T) []T {
	out := []T{}
	for _, v := range s {
		if v > threshold {
			out = append(out, v)
		}
	}
	return out
}

// Except returns 1 through end, leaving out skip.
func Except(skip, end int) []int {
	out := []int{}
	for n := 1; n <= end; n++ {
		if n == skip {
			continue
		}
		out = append(out, n)
	}
	return out
}

// TableSize is the last multiplier of a multiplication table.
const TableSize = 12

// A Product is one row of a multiplication table.
type Product struct {
	N, I, Value int
}

func (p Product) String() string {
	return fmt.Sprintf("%d x %d = %d", p.N, p.I, p.Value)
}

// MultiplicationTable returns n x 1 through n x TableSize.
func MultiplicationTable(n int) []Product {
	out := make([]Product, 0, TableSize)
	for i := 1; i <= TableSize; i++ {
		out = append(out, Product{n, i, n * i})
	}
	return out
}
