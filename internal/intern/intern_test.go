package intern_test

import (
	"sync"
	"testing"

	"github.com/funvibe/rscript/internal/intern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternIsIdempotent(t *testing.T) {
	in := intern.New()
	a := in.Intern("hello")
	b := in.Intern("hello")
	c := in.Intern("world")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, "hello", in.Resolve(a))
	assert.Equal(t, "world", in.Resolve(c))
}

func TestGetWithoutInterning(t *testing.T) {
	in := intern.New()
	_, ok := in.Get("hello")
	assert.False(t, ok)

	a := in.Intern("hello")
	h, ok := in.Get("hello")
	require.True(t, ok)
	assert.Equal(t, a, h)
}

func TestDummyHandleResolvesEmpty(t *testing.T) {
	in := intern.New()
	assert.Equal(t, "", in.Resolve(intern.Dummy))
}

func TestConcurrentIntern(t *testing.T) {
	in := intern.New()
	var wg sync.WaitGroup
	words := []string{"a", "b", "c", "d", "e"}
	results := make([][]intern.Handle, len(words))
	for i := range results {
		results[i] = make([]intern.Handle, 100)
	}

	for i, w := range words {
		i, w := i, w
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				results[i][j] = in.Intern(w)
			}
		}()
	}
	wg.Wait()

	for i := range words {
		for j := 1; j < 100; j++ {
			assert.Equal(t, results[i][0], results[i][j])
		}
	}
}
