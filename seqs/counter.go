// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqs

import "golang.org/x/exp/slices"

// Counter counts occurrences of comparable values. Keys are kept in the order
// they were first seen, which makes every query that has to break a tie
// deterministic. The zero value is an empty counter ready to use.
type Counter[T comparable] struct {
	counts map[T]int
	keys   []T
}

// Entry is a value and its occurrence count.
type Entry[T comparable] struct {
	Value T
	Count int
}

// Count returns a Counter holding the occurrences of every element of s.
func Count[T comparable](s []T) *Counter[T] {
	c := &Counter[T]{counts: make(map[T]int, len(s))}
	for _, v := range s {
		c.Add(v)
	}
	return c
}

// Add records one more occurrence of v and returns its new count.
func (c *Counter[T]) Add(v T) int {
	if c.counts == nil {
		c.counts = make(map[T]int)
	}
	n, ok := c.counts[v]
	if !ok {
		c.keys = append(c.keys, v)
	}
	n++
	c.counts[v] = n
	return n
}

// Count returns the number of occurrences of v, or 0.
func (c *Counter[T]) Count(v T) int {
	return c.counts[v]
}

// Len returns the number of distinct values.
func (c *Counter[T]) Len() int {
	return len(c.keys)
}

// Keys returns the distinct values in first-seen order.
func (c *Counter[T]) Keys() []T {
	return slices.Clone(c.keys)
}

// MostCommon returns up to n entries, highest count first. Entries with equal
// counts stay in first-seen order. If n < 0, all entries are returned.
func (c *Counter[T]) MostCommon(n int) []Entry[T] {
	entries := make([]Entry[T], len(c.keys))
	for i, k := range c.keys {
		entries[i] = Entry[T]{k, c.counts[k]}
	}
	slices.SortStableFunc(entries, func(a, b Entry[T]) bool {
		return a.Count > b.Count
	})
	if n >= 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
