// Package state provides the persistent program state for Imp evaluation:
// a total mapping from variable names to integers where unmapped variables
// read as zero.
package state

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"

	"github.com/raviqqe/hamt"
)

type identEntry string

func (k identEntry) Hash() uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(k))
	return h.Sum32()
}

func (k identEntry) Equal(other hamt.Entry) bool {
	o, ok := other.(identEntry)
	return ok && o == k
}

// State is an immutable snapshot of variable bindings. Set returns a new
// State backed by a structurally shared map; the receiver is never mutated,
// so the two arms of a conditional or sequence can never interfere through
// a shared binding.
//
// The zero State is not usable; construct one with Empty or FromMap.
type State struct {
	bindings hamt.Map
}

// Empty returns the state binding every variable to zero.
func Empty() State {
	return State{bindings: hamt.NewMap()}
}

// FromMap builds a state from explicit bindings. Zero-valued entries are
// accepted but indistinguishable from absent ones.
func FromMap(values map[string]int64) State {
	st := Empty()
	for name, value := range values {
		st = st.Set(name, value)
	}
	return st
}

// Get reads a variable. Lookup is total: unmapped names read as zero.
func (s State) Get(name string) int64 {
	if v := s.bindings.Find(identEntry(name)); v != nil {
		return v.(int64)
	}
	return 0
}

// Set binds name to value in a new state, leaving the receiver unchanged.
func (s State) Set(name string, value int64) State {
	return State{bindings: s.bindings.Insert(identEntry(name), value)}
}

// Bindings returns a mutable copy of the explicit bindings.
func (s State) Bindings() map[string]int64 {
	out := make(map[string]int64, s.bindings.Size())
	rest := s.bindings
	for rest.Size() > 0 {
		var key hamt.Entry
		var value interface{}
		key, value, rest = rest.FirstRest()
		out[string(key.(identEntry))] = value.(int64)
	}
	return out
}

// Keys returns the explicitly bound names in sorted order.
func (s State) Keys() []string {
	bindings := s.Bindings()
	keys := make([]string, 0, len(bindings))
	for k := range bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal compares states extensionally: two states are equal when every
// variable reads the same in both. A binding to zero is equal to no binding.
func (s State) Equal(other State) bool {
	for name, value := range s.Bindings() {
		if other.Get(name) != value {
			return false
		}
	}
	for name, value := range other.Bindings() {
		if s.Get(name) != value {
			return false
		}
	}
	return true
}

// String renders the explicit bindings deterministically, for logs and
// failure messages.
func (s State) String() string {
	var b strings.Builder
	for i, name := range s.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%d", name, s.Get(name))
	}
	return "{" + b.String() + "}"
}
