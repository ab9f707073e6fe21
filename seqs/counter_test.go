// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seqs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	c := Count([]string{"apple", "orange", "apple", "banana", "orange", "apple"})
	require.Equal(t, 3, c.Len())
	require.Equal(t, []string{"apple", "orange", "banana"}, c.Keys())
	require.Equal(t, 3, c.Count("apple"))
	require.Equal(t, 2, c.Count("orange"))
	require.Equal(t, 0, c.Count("kiwi"))

	require.Equal(t, []Entry[string]{
		{"apple", 3},
		{"orange", 2},
		{"banana", 1},
	}, c.MostCommon(-1))
	require.Equal(t, []Entry[string]{{"apple", 3}}, c.MostCommon(1))
	require.Empty(t, c.MostCommon(0))
}

func TestCounterTies(t *testing.T) {
	var c Counter[int]
	for _, v := range []int{4, 1, 1, 4, 2, 3, 2} {
		c.Add(v)
	}
	require.Equal(t, []Entry[int]{{4, 2}, {1, 2}, {2, 2}, {3, 1}}, c.MostCommon(10))
}

func TestCounterZero(t *testing.T) {
	var c Counter[string]
	require.Equal(t, 0, c.Len())
	require.Empty(t, c.MostCommon(-1))
	require.Equal(t, 1, c.Add("x"))
	require.Equal(t, 2, c.Add("x"))
}

func TestSet(t *testing.T) {
	var s Set[int]
	require.True(t, s.Add(3))
	require.True(t, s.Add(1))
	require.False(t, s.Add(3))
	require.True(t, s.Add(2))
	require.Equal(t, []int{3, 1, 2}, s.Values())
	require.Equal(t, 3, s.Len())

	require.True(t, s.Delete(1))
	require.False(t, s.Delete(1))
	require.False(t, s.Has(1))
	require.Equal(t, []int{3, 2}, s.Values())

	// Re-adding goes to the back.
	require.True(t, s.Add(1))
	require.Equal(t, []int{3, 2, 1}, s.Values())

	vals := s.Values()
	vals[0] = 99
	require.True(t, s.Has(3))
	require.False(t, s.Has(99))
}
