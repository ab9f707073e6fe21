// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqs

import "golang.org/x/exp/slices"

// Set is a set of comparable values that remembers the order in which values
// were first added. The zero value is an empty set ready to use.
type Set[T comparable] struct {
	m     map[T]struct{}
	order []T
}

// Add adds v to the set and reports whether it was not already present.
// Adding a value that is already present does not change its position.
func (s *Set[T]) Add(v T) (added bool) {
	if s.m == nil {
		s.m = make(map[T]struct{})
	}
	if _, ok := s.m[v]; ok {
		return false
	}
	s.m[v] = struct{}{}
	s.order = append(s.order, v)
	return true
}

// Delete removes v and reports whether it was present.
func (s *Set[T]) Delete(v T) (present bool) {
	if !s.Has(v) {
		return false
	}
	i := slices.Index(s.order, v)
	s.order = slices.Delete(s.order, i, i+1)
	delete(s.m, v)
	return true
}

func (s *Set[T]) Has(v T) bool {
	_, ok := s.m[v]
	return ok
}

func (s *Set[T]) Len() int {
	return len(s.order)
}

// Values returns the members of s in insertion order. The result is never nil
// and does not alias s.
func (s *Set[T]) Values() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}
