package protocol

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/ytget/masonry/internal/model"
)

// Listener is notified after a drag committed a new order
type Listener interface {
	OnReorder(event model.ReorderEvent)
}

// ListenerFunc adapts a plain function to Listener
type ListenerFunc func(event model.ReorderEvent)

// OnReorder calls f(event)
func (f ListenerFunc) OnReorder(event model.ReorderEvent) {
	f(event)
}

type registration struct {
	id       int
	listener Listener
}

// Registry keeps reorder listeners in registration order
type Registry struct {
	logger *log.Logger
	next   int
	items  []registration
}

// NewRegistry creates an empty registry
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{logger: logger}
}

// Add registers l and returns a function that removes it again
func (r *Registry) Add(l Listener) func() {
	id := r.next
	r.next++
	r.items = append(r.items, registration{id: id, listener: l})
	return func() {
		for i, reg := range r.items {
			if reg.id == id {
				r.items = append(r.items[:i], r.items[i+1:]...)
				return
			}
		}
	}
}

// Len returns the number of registered listeners
func (r *Registry) Len() int {
	return len(r.items)
}

// Notify delivers event to every listener synchronously, in registration
// order. A panicking listener is logged and does not stop the others.
func (r *Registry) Notify(event model.ReorderEvent) {
	snapshot := make([]registration, len(r.items))
	copy(snapshot, r.items)
	for _, reg := range snapshot {
		r.deliver(reg, event)
	}
}

func (r *Registry) deliver(reg registration, event model.ReorderEvent) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("reorder listener failed",
				"listener", reg.id, "item", event.MovedItem, "err", fmt.Sprint(rec))
		}
	}()
	reg.listener.OnReorder(event)
}
