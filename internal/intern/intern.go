// Package intern implements handle-based string deduplication for
// identifiers and keywords shared across the scanner, parser, binder,
// checker, and printer.
package intern

import "sync"

// Handle is an opaque, equal-comparable identifier for an interned
// string. Two handles are equal if and only if the underlying bytes
// are equal.
type Handle uint32

// Dummy is the sentinel handle for uninitialized slots. It is never
// returned by Intern for any real input.
const Dummy Handle = 0

// Interner deduplicates strings behind dense handles. Safe for
// concurrent use: Intern is internally serialized, and Resolve takes
// only the read lock.
type Interner struct {
	mu      sync.RWMutex
	toID    map[string]Handle
	strings []string
}

// New creates an empty interner. Handle 0 (Dummy) is pre-reserved so
// that a zero-valued Handle is never confused with a real string.
func New() *Interner {
	return &Interner{
		toID:    make(map[string]Handle),
		strings: []string{""},
	}
}

// Intern returns the handle for s, interning it if this is the first
// occurrence. Idempotent: identical text always maps to the same
// handle regardless of when it was first interned.
func (in *Interner) Intern(s string) Handle {
	in.mu.RLock()
	if h, ok := in.toID[s]; ok {
		in.mu.RUnlock()
		return h
	}
	in.mu.RUnlock()

	in.mu.Lock()
	defer in.mu.Unlock()
	if h, ok := in.toID[s]; ok {
		return h
	}
	h := Handle(len(in.strings))
	in.strings = append(in.strings, s)
	in.toID[s] = h
	return h
}

// Get looks up s without interning it. The second result is false if
// s has never been interned.
func (in *Interner) Get(s string) (Handle, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	h, ok := in.toID[s]
	return h, ok
}

// Resolve returns the original text for handle h. Resolving Dummy or
// an out-of-range handle returns "".
func (in *Interner) Resolve(h Handle) string {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if int(h) <= 0 || int(h) >= len(in.strings) {
		return ""
	}
	return in.strings[h]
}

// Len returns the number of distinct strings interned so far
// (excluding the dummy sentinel).
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.strings) - 1
}
