package protocol

import (
	"github.com/charmbracelet/log"

	"github.com/ytget/masonry/internal/errors"
	"github.com/ytget/masonry/internal/model"
)

// CollectionAuthority applies requests to a collection and notifies listeners
type CollectionAuthority struct {
	layoutID   string
	collection *model.Collection
	listeners  *Registry
	logger     *log.Logger
}

// NewCollectionAuthority creates the authority of one layout
func NewCollectionAuthority(layoutID string, c *model.Collection, listeners *Registry, logger *log.Logger) *CollectionAuthority {
	if logger == nil {
		logger = log.Default()
	}
	return &CollectionAuthority{layoutID: layoutID, collection: c, listeners: listeners, logger: logger}
}

// Reorder moves req.Item to the slot and emits one ReorderEvent
func (a *CollectionAuthority) Reorder(req Request) (model.ReorderEvent, error) {
	current := a.collection.IndexOf(req.Item)
	if current < 0 {
		return model.ReorderEvent{}, errors.New(errors.ErrCodeNotFound, "item %q is not in the collection", req.Item)
	}

	old := a.collection.Snapshot()
	if err := a.collection.Move(req.Item, req.Slot); err != nil {
		return model.ReorderEvent{}, err
	}

	event := model.ReorderEvent{
		LayoutID:  a.layoutID,
		MovedItem: req.Item,
		OldOrder:  old,
		NewIndex:  a.collection.IndexOf(req.Item),
	}
	a.logger.Debug("reorder committed", "layout", a.layoutID, "item", req.Item,
		"from", current, "to", event.NewIndex)

	if a.listeners != nil {
		a.listeners.Notify(event)
	}
	return event, nil
}
