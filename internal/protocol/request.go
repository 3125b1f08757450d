package protocol

import "github.com/ytget/masonry/internal/model"

// Request asks the authority to move Item. Slot is expressed in the order
// before the item is taken out, so a forward move names the slot one past
// the final index.
type Request struct {
	Item model.ItemID
	Slot int
}

// SlotFor converts a final index into the slot sent over the wire.
// current is the item's index in the authoritative order.
func SlotFor(current, final int) int {
	if current >= 0 && current < final {
		return final + 1
	}
	return final
}

// Resolve converts a received slot back into the final index
func Resolve(current, slot int) int {
	if current >= 0 && current < slot {
		return slot - 1
	}
	return slot
}

// Authority applies reorder requests to the committed order
type Authority interface {
	Reorder(req Request) (model.ReorderEvent, error)
}

// Sink accepts an authoritative order pushed from outside the layout
type Sink interface {
	SyncOrder(ids []model.ItemID) error
}
