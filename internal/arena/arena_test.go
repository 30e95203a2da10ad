package arena_test

import (
	"testing"

	"github.com/funvibe/rscript/internal/arena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct{ X, Y int }

func TestAllocReturnsStablePointers(t *testing.T) {
	a := arena.New()
	ptrs := make([]*point, 0, 1000)
	for i := 0; i < 1000; i++ {
		ptrs = append(ptrs, arena.Alloc(a, point{X: i, Y: i * 2}))
	}
	for i, p := range ptrs {
		require.Equal(t, i, p.X)
		require.Equal(t, i*2, p.Y)
	}
}

func TestAllocSliceCopiesAndIsIndependent(t *testing.T) {
	a := arena.New()
	src := []int{1, 2, 3}
	out := arena.AllocSlice(a, src)
	src[0] = 99
	assert.Equal(t, 1, out[0])
}

func TestAllocStringCopies(t *testing.T) {
	a := arena.New()
	buf := []byte("hello")
	s := a.AllocString(string(buf))
	buf[0] = 'H'
	assert.Equal(t, "hello", s)
}

func TestResetReclaimsAccounting(t *testing.T) {
	a := arena.New()
	arena.Alloc(a, point{1, 2})
	assert.Greater(t, a.AllocatedBytes(), uint64(0))
	a.Reset()
	assert.Equal(t, uint64(0), a.AllocatedBytes())
}

func TestStatsIsHumanReadable(t *testing.T) {
	a := arena.New()
	arena.Alloc(a, point{1, 2})
	assert.Contains(t, a.Stats(), "node pools")
}
