package model

import "testing"

func TestSizeClass_Span(t *testing.T) {
	tests := []struct {
		class    SizeClass
		expected int
	}{
		{SizeClassNormal, 1},
		{SizeClassDoubleWide, 2},
		{"wide", 2},
		{"double-wide", 2},
		{SizeClassTripleWide, 3},
		{SizeClassQuadrupleWide, 4},
		{"something-else", 1},
	}

	for _, test := range tests {
		if result := test.class.Span(); result != test.expected {
			t.Errorf("SizeClass(%q).Span() = %d, expected %d", test.class, result, test.expected)
		}
	}
}

func TestSnapshot_IsImmutable(t *testing.T) {
	ids := []ItemID{"A", "B"}
	s := NewSnapshot(ids)
	ids[0] = "Z"

	if s.At(0) != "A" {
		t.Errorf("Snapshot should not share the source slice, got %s", s.At(0))
	}

	out := s.IDs()
	out[1] = "Z"
	if s.At(1) != "B" {
		t.Errorf("IDs() should return a copy, got %s", s.At(1))
	}
}

func TestSnapshot_Equal(t *testing.T) {
	a := NewSnapshot([]ItemID{"A", "B"})
	if !a.Equal(NewSnapshot([]ItemID{"A", "B"})) {
		t.Error("Equal snapshots reported different")
	}
	if a.Equal(NewSnapshot([]ItemID{"B", "A"})) {
		t.Error("Different order reported equal")
	}
	if a.Equal(NewSnapshot([]ItemID{"A"})) {
		t.Error("Different length reported equal")
	}
}

func TestReorderEvent_OldIndex(t *testing.T) {
	e := ReorderEvent{MovedItem: "C", OldOrder: NewSnapshot([]ItemID{"A", "B", "C"}), NewIndex: 0}
	if e.OldIndex() != 2 {
		t.Errorf("Expected old index 2, got %d", e.OldIndex())
	}
}

func TestCollection_SnapshotDetached(t *testing.T) {
	c := NewCollection()
	c.Append(Item{ID: "A"})
	s := c.Snapshot()
	c.Append(Item{ID: "B"})
	if s.Len() != 1 {
		t.Errorf("Snapshot should not follow later mutations, got len %d", s.Len())
	}
}
