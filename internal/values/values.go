// Package values implements the tagged bound-value store shared by all
// option binding handlers of a command. Each slot holds the current value
// for one binding key, and transitions between three explicit states
// (unset, boolean, other) instead of relying on runtime type probing.
package values

import (
	"sort"

	"golang.org/x/exp/maps"
)

// Kind is the state tag of a bound value slot.
type Kind uint8

const (
	// Unset marks a slot that has never been written.
	Unset Kind = iota

	// Boolean marks a slot holding a boolean value. Boolean slots are
	// overwritten by any later firing, like unset ones.
	Boolean

	// Other marks a slot holding any non-boolean value (strings,
	// numbers, or arbitrary coercion outputs). Such slots are only
	// overwritten by firings carrying an explicit value.
	Other
)

// Bound is a single tagged value slot. The zero value is an unset slot.
type Bound struct {
	kind  Kind
	value any
}

// Kind returns the state tag of the slot.
func (b Bound) Kind() Kind { return b.kind }

// IsSet reports whether the slot has been written at least once.
func (b Bound) IsSet() bool { return b.kind != Unset }

// Interface returns the value held by the slot, or nil when unset.
func (b Bound) Interface() any {
	if b.kind == Boolean || b.kind == Other {
		return b.value
	}

	return nil
}

// Bool returns the slot's boolean value, and whether the slot is boolean.
func (b Bound) Bool() (bool, bool) {
	if b.kind != Boolean {
		return false, false
	}

	val, _ := b.value.(bool)

	return val, true
}

// Store maps binding keys to their current bound value. A store is
// exclusively owned by its command and mutated only by the binding
// handlers installed when options are registered, so it needs no locking.
type Store struct {
	slots map[string]Bound
}

// NewStore returns an empty value store.
func NewStore() *Store {
	return &Store{slots: make(map[string]Bound)}
}

// Set writes a value into the slot at key, classifying booleans into the
// Boolean state and everything else into Other. Each write fully replaces
// the previous slot contents.
func (s *Store) Set(key string, val any) {
	if b, ok := val.(bool); ok {
		s.slots[key] = Bound{kind: Boolean, value: b}

		return
	}

	s.slots[key] = Bound{kind: Other, value: val}
}

// Get returns the slot at key, or an unset slot when never written.
func (s *Store) Get(key string) Bound {
	return s.slots[key]
}

// Keys returns the sorted list of binding keys holding a value.
func (s *Store) Keys() []string {
	keys := maps.Keys(s.slots)
	sort.Strings(keys)

	return keys
}

// Snapshot returns a copy of the store contents as plain values.
func (s *Store) Snapshot() map[string]any {
	snap := make(map[string]any, len(s.slots))

	for key, slot := range s.slots {
		snap[key] = slot.Interface()
	}

	return snap
}
