package model

import (
	"github.com/ytget/masonry/internal/errors"
)

// Hooks are optional callbacks fired after the collection changed.
// They run synchronously on the caller's goroutine.
type Hooks struct {
	// Removed is called once per item that left the collection
	Removed func(item Item, index int)
	// Changed is called after any mutation that altered order, membership or a tag
	Changed func()
}

// Collection is the authoritative ordered set of layout items.
// Identities are unique and indices are contiguous 0..Len()-1.
// A Collection is not safe for concurrent use; it belongs to the UI goroutine.
type Collection struct {
	items []Item
	hooks Hooks
}

// NewCollection creates an empty collection
func NewCollection() *Collection {
	return &Collection{items: make([]Item, 0)}
}

// SetHooks installs the mutation callbacks
func (c *Collection) SetHooks(h Hooks) {
	c.hooks = h
}

// Len returns the number of items
func (c *Collection) Len() int {
	return len(c.items)
}

// IndexOf returns the index of id or -1 if absent
func (c *Collection) IndexOf(id ItemID) int {
	for i, it := range c.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Contains reports whether id is a member
func (c *Collection) Contains(id ItemID) bool {
	return c.IndexOf(id) >= 0
}

// At returns the item at index i
func (c *Collection) At(i int) (Item, error) {
	if i < 0 || i >= len(c.items) {
		return Item{}, errors.New(errors.ErrCodeOutOfRange, "index %d out of range [0,%d)", i, len(c.items))
	}
	return c.items[i], nil
}

// Items returns a copy of the items in order
func (c *Collection) Items() []Item {
	cp := make([]Item, len(c.items))
	copy(cp, c.items)
	return cp
}

// IDs returns the identities in order
func (c *Collection) IDs() []ItemID {
	ids := make([]ItemID, len(c.items))
	for i, it := range c.items {
		ids[i] = it.ID
	}
	return ids
}

// Snapshot returns an immutable copy of the current order
func (c *Collection) Snapshot() Snapshot {
	return Snapshot{ids: c.IDs()}
}

// Insert places item at index, clamped to [0, Len()].
// If the item is already a member it is moved: the index names the slot in
// the order before removal, so moving an item forward lands it just before
// whatever occupied that slot. The item's tag is replaced by item.Tag.
func (c *Collection) Insert(item Item, index int) {
	if index < 0 {
		index = 0
	}
	if index > len(c.items) {
		index = len(c.items)
	}

	if cur := c.IndexOf(item.ID); cur >= 0 {
		prev := c.items[cur]
		c.items = append(c.items[:cur], c.items[cur+1:]...)
		if cur < index {
			index--
		}
		c.insertAt(item, index)
		if cur != index || prev.Tag != item.Tag {
			c.changed()
		}
		return
	}

	c.insertAt(item, index)
	c.changed()
}

// Append adds item at the end, or moves it there if already present
func (c *Collection) Append(item Item) {
	c.Insert(item, len(c.items))
}

// Move relocates a member to the given slot keeping its tag
func (c *Collection) Move(id ItemID, index int) error {
	cur := c.IndexOf(id)
	if cur < 0 {
		return errors.New(errors.ErrCodeNotFound, "item %q is not in the collection", id)
	}
	c.Insert(c.items[cur], index)
	return nil
}

// MoveBefore moves id so that it directly precedes before
func (c *Collection) MoveBefore(id, before ItemID) error {
	target := c.IndexOf(before)
	if target < 0 {
		return errors.New(errors.ErrCodeInvalidTarget, "anchor %q is not in the collection", before)
	}
	if id == before {
		return nil
	}
	return c.Move(id, target)
}

// MoveAfter moves id so that it directly follows after
func (c *Collection) MoveAfter(id, after ItemID) error {
	target := c.IndexOf(after)
	if target < 0 {
		return errors.New(errors.ErrCodeInvalidTarget, "anchor %q is not in the collection", after)
	}
	if id == after {
		return nil
	}
	return c.Move(id, target+1)
}

// Remove deletes id and reports whether it was present
func (c *Collection) Remove(id ItemID) bool {
	idx := c.IndexOf(id)
	if idx < 0 {
		return false
	}
	removed := c.items[idx]
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	if c.hooks.Removed != nil {
		c.hooks.Removed(removed, idx)
	}
	c.changed()
	return true
}

// Clear removes every item
func (c *Collection) Clear() {
	if len(c.items) == 0 {
		return
	}
	old := c.items
	c.items = make([]Item, 0)
	if c.hooks.Removed != nil {
		for i, it := range old {
			c.hooks.Removed(it, i)
		}
	}
	c.changed()
}

// Replace swaps old for replacement at the same position, keeping the tag.
// If replacement is already a member elsewhere it is taken out first.
func (c *Collection) Replace(old, replacement ItemID) error {
	if old == replacement {
		return nil
	}
	if c.IndexOf(old) < 0 {
		return errors.New(errors.ErrCodeNotFound, "item %q is not in the collection", old)
	}
	if other := c.IndexOf(replacement); other >= 0 {
		c.items = append(c.items[:other], c.items[other+1:]...)
	}

	idx := c.IndexOf(old)
	prev := c.items[idx]
	c.items[idx] = Item{ID: replacement, Tag: prev.Tag}
	if c.hooks.Removed != nil {
		c.hooks.Removed(prev, idx)
	}
	c.changed()
	return nil
}

// Tag returns the tag of id
func (c *Collection) Tag(id ItemID) (string, bool) {
	idx := c.IndexOf(id)
	if idx < 0 {
		return "", false
	}
	return c.items[idx].Tag, true
}

// SetTag updates the tag of a member
func (c *Collection) SetTag(id ItemID, tag string) error {
	idx := c.IndexOf(id)
	if idx < 0 {
		return errors.New(errors.ErrCodeNotFound, "item %q is not in the collection", id)
	}
	if c.items[idx].Tag == tag {
		return nil
	}
	c.items[idx].Tag = tag
	c.changed()
	return nil
}

// Reorder applies a complete new order. ids must be a permutation of the
// current members; otherwise nothing changes.
func (c *Collection) Reorder(ids []ItemID) error {
	if len(ids) != len(c.items) {
		return errors.New(errors.ErrCodeInvariantViolation,
			"order has %d items, collection has %d", len(ids), len(c.items))
	}

	byID := make(map[ItemID]Item, len(c.items))
	for _, it := range c.items {
		byID[it.ID] = it
	}

	next := make([]Item, 0, len(ids))
	seen := make(map[ItemID]bool, len(ids))
	same := true
	for i, id := range ids {
		it, ok := byID[id]
		if !ok {
			return errors.New(errors.ErrCodeInvariantViolation, "item %q is not in the collection", id)
		}
		if seen[id] {
			return errors.New(errors.ErrCodeInvariantViolation, "item %q listed twice", id)
		}
		seen[id] = true
		if c.items[i].ID != id {
			same = false
		}
		next = append(next, it)
	}

	if same {
		return nil
	}
	c.items = next
	c.changed()
	return nil
}

func (c *Collection) insertAt(item Item, index int) {
	c.items = append(c.items, Item{})
	copy(c.items[index+1:], c.items[index:])
	c.items[index] = item
}

func (c *Collection) changed() {
	if c.hooks.Changed != nil {
		c.hooks.Changed()
	}
}
