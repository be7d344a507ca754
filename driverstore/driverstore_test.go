package driverstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jameshanlon/netlistgraph/driverstore"
)

func TestAllocateGetErase(t *testing.T) {
	s := driverstore.New[[]int]()
	h := s.Allocate([]int{1, 2, 3})

	got := s.Get(h)
	require.NotNil(t, got)
	assert.Equal(t, []int{1, 2, 3}, *got)

	require.NoError(t, s.Erase(h))
	assert.False(t, s.Valid(h))
	assert.ErrorIs(t, s.Erase(h), driverstore.ErrInvalidHandle)
}

func TestFreedHandleReused(t *testing.T) {
	s := driverstore.New[int]()
	h1 := s.Allocate(1)
	require.NoError(t, s.Erase(h1))
	h2 := s.Allocate(2)

	assert.Equal(t, h1, h2, "freed slots should be reused by the next Allocate")
	assert.Equal(t, 2, *s.Get(h2))
}

func TestClone(t *testing.T) {
	s := driverstore.New[[]int]()
	h := s.Allocate([]int{1, 2})

	clone := s.Clone(func(v []int) []int {
		out := make([]int, len(v))
		copy(out, v)
		return out
	})

	*clone.Get(h) = append(*clone.Get(h), 3)

	assert.Equal(t, []int{1, 2}, *s.Get(h), "clone must not alias source slices")
	assert.Equal(t, []int{1, 2, 3}, *clone.Get(h))
}

func TestGetInvalidHandlePanics(t *testing.T) {
	s := driverstore.New[int]()
	assert.Panics(t, func() { s.Get(42) })
}
