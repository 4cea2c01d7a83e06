// Package checklist tracks the fixed ten-item manual verification list
// that gates shipping.
package checklist

import (
	"encoding/json"

	"github.com/anuragpatil2882004-ui/job-traking/internal/store"
)

// Key is the store key holding the checklist booleans.
const Key = "jnt_test_checklist"

// Total is the fixed number of checklist items.
const Total = 10

// Checklist reads and writes the item states through a Store.
type Checklist struct {
	kv store.Store
}

func New(kv store.Store) *Checklist {
	return &Checklist{kv: kv}
}

// Items returns the state of all Total items. Absent, short or
// malformed stored state yields all-false.
func (c *Checklist) Items() []bool {
	raw, ok := c.kv.Get(Key)
	if !ok {
		return make([]bool, Total)
	}

	var items []bool
	if err := json.Unmarshal([]byte(raw), &items); err != nil || len(items) < Total {
		return make([]bool, Total)
	}
	return items[:Total]
}

// Item returns the state of item index, false when out of range.
func (c *Checklist) Item(index int) bool {
	if index < 0 || index >= Total {
		return false
	}
	return c.Items()[index]
}

// SetItem stores the state of item index, reporting whether it
// persisted. Out-of-range indexes are rejected.
func (c *Checklist) SetItem(index int, checked bool) bool {
	if index < 0 || index >= Total {
		return false
	}

	items := c.Items()
	items[index] = checked
	return c.set(items)
}

// Toggle flips item index and returns its new state.
func (c *Checklist) Toggle(index int) bool {
	next := !c.Item(index)
	c.SetItem(index, next)
	return next
}

// AllPassed reports whether every item is checked.
func (c *Checklist) AllPassed() bool {
	for _, checked := range c.Items() {
		if !checked {
			return false
		}
	}
	return true
}

// PassedCount returns how many items are checked.
func (c *Checklist) PassedCount() int {
	n := 0
	for _, checked := range c.Items() {
		if checked {
			n++
		}
	}
	return n
}

// Reset unchecks every item.
func (c *Checklist) Reset() bool {
	return c.set(make([]bool, Total))
}

func (c *Checklist) set(items []bool) bool {
	data, err := json.Marshal(items)
	if err != nil {
		return false
	}
	return c.kv.Set(Key, string(data))
}
