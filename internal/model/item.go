package model

// ItemID is the opaque identity of a layout item. Equality is identity.
type ItemID string

// Item is one member of the collection. Content is owned by the caller and
// looked up by ID; the collection only tracks identity, order and tag.
type Item struct {
	ID  ItemID
	Tag string // size-class tag, see SizeClass
}

// SizeClass returns the item's tag as a SizeClass
func (i Item) SizeClass() SizeClass {
	return SizeClass(i.Tag)
}

// ReorderEvent is produced exactly once per committed drag
type ReorderEvent struct {
	LayoutID  string
	MovedItem ItemID
	OldOrder  Snapshot // committed order just before the move
	NewIndex  int      // final index of MovedItem in the committed order
}

// OldIndex returns where the moved item was when the drag started, -1 if unknown
func (e ReorderEvent) OldIndex() int {
	return e.OldOrder.IndexOf(e.MovedItem)
}
