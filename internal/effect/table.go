// ABOUTME: Fixed-capacity associative container tracking per-action buff counters
// ABOUTME: A slot array instead of a map, sized to the empirical max of simultaneous effects

package effect

import "xivcraft/internal/action"

// Capacity bounds the number of simultaneously active effects an EffectTable
// can hold. Five has been enough in practice; insert silently drops the
// new entry (and the caller is expected to treat that as a wasted action)
// once the table is full.
const Capacity = 5

type slot struct {
	action action.Action
	count  int8
	used   bool
}

// Table is a small fixed-capacity map from Action to a signed counter.
// It is plain-old-data so that State (which embeds two of these) stays
// cheap to copy per simulation step.
type Table struct {
	slots [Capacity]slot
}

// Get returns the counter for a and whether it is present.
func (t *Table) Get(a action.Action) (int8, bool) {
	for i := range t.slots {
		if t.slots[i].used && t.slots[i].action == a {
			return t.slots[i].count, true
		}
	}
	return 0, false
}

// Has reports whether a has an active entry.
func (t *Table) Has(a action.Action) bool {
	_, ok := t.Get(a)
	return ok
}

// Insert sets the counter for a, overwriting any existing entry. Reports
// false (a no-op) if a is new and the table is already at Capacity.
func (t *Table) Insert(a action.Action, count int8) bool {
	for i := range t.slots {
		if t.slots[i].used && t.slots[i].action == a {
			t.slots[i].count = count
			return true
		}
	}
	for i := range t.slots {
		if !t.slots[i].used {
			t.slots[i] = slot{action: a, count: count, used: true}
			return true
		}
	}
	return false
}

// Remove clears the entry for a, if any.
func (t *Table) Remove(a action.Action) {
	for i := range t.slots {
		if t.slots[i].used && t.slots[i].action == a {
			t.slots[i] = slot{}
			return
		}
	}
}

// Add adjusts the counter for an existing entry for a by delta, clamped to
// [0, max]. No-op if a is not present.
func (t *Table) Add(a action.Action, delta int8, max int8) {
	for i := range t.slots {
		if t.slots[i].used && t.slots[i].action == a {
			c := t.slots[i].count + delta
			if c > max {
				c = max
			}
			if c < 0 {
				c = 0
			}
			t.slots[i].count = c
			return
		}
	}
}

// DecrementCountdowns decrements every active entry by one and removes any
// entry that reaches zero or below. Used once per step on the count-down
// table.
func (t *Table) DecrementCountdowns() {
	for i := range t.slots {
		if !t.slots[i].used {
			continue
		}
		t.slots[i].count--
		if t.slots[i].count <= 0 {
			t.slots[i] = slot{}
		}
	}
}

// Each calls fn for every active entry. Iteration order is the slot order,
// not insertion order.
func (t *Table) Each(fn func(a action.Action, count int8)) {
	for i := range t.slots {
		if t.slots[i].used {
			fn(t.slots[i].action, t.slots[i].count)
		}
	}
}

// Len reports the number of active entries.
func (t *Table) Len() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].used {
			n++
		}
	}
	return n
}
