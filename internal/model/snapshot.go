package model

// Snapshot is an immutable copy of the collection order
type Snapshot struct {
	ids []ItemID
}

// NewSnapshot copies ids into a snapshot
func NewSnapshot(ids []ItemID) Snapshot {
	cp := make([]ItemID, len(ids))
	copy(cp, ids)
	return Snapshot{ids: cp}
}

// Len returns the number of items in the snapshot
func (s Snapshot) Len() int {
	return len(s.ids)
}

// At returns the identity at index i. Panics when i is out of range, like a slice.
func (s Snapshot) At(i int) ItemID {
	return s.ids[i]
}

// IndexOf returns the index of id or -1
func (s Snapshot) IndexOf(id ItemID) int {
	for i, v := range s.ids {
		if v == id {
			return i
		}
	}
	return -1
}

// IDs returns a copy of the identities in order
func (s Snapshot) IDs() []ItemID {
	cp := make([]ItemID, len(s.ids))
	copy(cp, s.ids)
	return cp
}

// Equal reports whether both snapshots hold the same identities in the same order
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s.ids) != len(other.ids) {
		return false
	}
	for i := range s.ids {
		if s.ids[i] != other.ids[i] {
			return false
		}
	}
	return true
}
