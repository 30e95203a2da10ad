// Package arena implements a bump allocator for compiler artifacts.
//
// All AST nodes, slices of children, and similar compilation-lifetime
// values are allocated here instead of one-by-one with the GC. Freeing
// is O(1): drop the Arena and everything it handed out becomes
// unreachable together. A value allocated through an Arena must never
// be read after the Arena that produced it has been reset or dropped.
package arena

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/dustin/go-humanize"
)

const defaultChunkSize = 256

// Arena is a bump allocator keyed by concrete node type. Each distinct
// Go type gets its own backing store of fixed-size chunks so that
// Alloc never has to reallocate (and invalidate) a previously returned
// pointer.
type Arena struct {
	mu      sync.Mutex
	pools   map[reflect.Type]any
	strings []*stringChunk
	bytes   uint64
	live    bool
}

// New creates an empty arena ready for allocation.
func New() *Arena {
	return &Arena{pools: make(map[reflect.Type]any), live: true}
}

// pool[T] is the typed backing store for one concrete node type.
type pool[T any] struct {
	chunks [][]T
}

func (p *pool[T]) alloc(v T) *T {
	if len(p.chunks) == 0 || len(p.chunks[len(p.chunks)-1]) == cap(p.chunks[len(p.chunks)-1]) {
		p.chunks = append(p.chunks, make([]T, 0, defaultChunkSize))
	}
	last := &p.chunks[len(p.chunks)-1]
	*last = append(*last, v)
	return &(*last)[len(*last)-1]
}

type stringChunk struct {
	buf []byte
}

// Alloc copies v into the arena and returns a stable pointer to the
// copy. The pointer remains valid until the arena is reset.
func Alloc[T any](a *Arena, v T) *T {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.live {
		panic("arena: Alloc after Reset")
	}
	key := reflect.TypeOf(v)
	raw, ok := a.pools[key]
	if !ok {
		raw = &pool[T]{}
		a.pools[key] = raw
	}
	p := raw.(*pool[T])
	a.bytes += uint64(reflect.TypeOf(v).Size())
	return p.alloc(v)
}

// AllocSlice copies src into a fresh arena-owned slice and returns it.
// Used for AST child lists, which spec §3 requires to be contiguous.
func AllocSlice[T any](a *Arena, src []T) []T {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.live {
		panic("arena: AllocSlice after Reset")
	}
	out := make([]T, len(src))
	copy(out, src)
	a.bytes += uint64(len(src)) * uint64(reflect.TypeOf(*new(T)).Size())
	return out
}

// AllocString copies s into arena-owned storage and returns the copy.
// Scanner token text and string-literal contents are interned rather
// than arena-allocated (see intern.Interner); AllocString exists for
// the rarer case of decoded text that is not worth interning, such as
// per-node computed display strings.
func (a *Arena) AllocString(s string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.live {
		panic("arena: AllocString after Reset")
	}
	buf := make([]byte, len(s))
	copy(buf, s)
	a.bytes += uint64(len(s))
	return string(buf)
}

// Reset discards every allocation made through this arena. Any
// pointer obtained from Alloc/AllocSlice/AllocString before Reset is
// no longer safe to dereference once the arena is reused.
func (a *Arena) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pools = make(map[reflect.Type]any)
	a.bytes = 0
	a.live = true
}

// Stats returns a human-readable summary of arena usage, suitable for
// -v compiler diagnostics output.
func (a *Arena) Stats() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return fmt.Sprintf("%s across %d node pools", humanize.Bytes(a.bytes), len(a.pools))
}

// AllocatedBytes returns the approximate number of bytes handed out so
// far (payload sizes only, not chunk padding).
func (a *Arena) AllocatedBytes() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.bytes
}
