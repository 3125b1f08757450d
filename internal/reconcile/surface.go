package reconcile

// Surface is the rendering side the reconciler drives.
// Indices passed to Attach are positions in the final rendered order.
type Surface interface {
	// Create builds the visual container for a new wrapper
	Create(w *Wrapper) error
	// Attach inserts an existing wrapper at index
	Attach(w *Wrapper, index int)
	// Detach removes a wrapper from the container without destroying it
	Detach(w *Wrapper)
	// Destroy releases a wrapper that will not be used again
	Destroy(w *Wrapper)
	// Update refreshes tag or dragged state of an attached wrapper
	Update(w *Wrapper)
}
