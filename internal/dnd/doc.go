// Package dnd implements drag-to-reorder for a masonry layout.
//
// A Controller walks Idle -> Dragging -> (Committing | Cancelling) -> Idle.
// While dragging it keeps a preview order in which the dragged item takes the
// slot of whatever item the pointer hovers. A drop hands the preview to the
// authority as a protocol.Request; a cancel discards it and the view falls
// back to the committed order.
package dnd
