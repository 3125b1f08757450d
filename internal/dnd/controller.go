package dnd

import (
	"github.com/charmbracelet/log"

	"github.com/ytget/masonry/internal/errors"
	"github.com/ytget/masonry/internal/model"
	"github.com/ytget/masonry/internal/protocol"
)

// View is what the controller needs from the rendering side
type View interface {
	// Invalidate asks for a relayout using ViewOrder
	Invalidate()
	// MarkDragged toggles the dragged marker of an item's wrapper
	MarkDragged(id model.ItemID, dragged bool)
}

// Controller runs drag sessions for one layout
type Controller struct {
	collection *model.Collection
	guard      *protocol.Guard
	authority  protocol.Authority
	view       View
	logger     *log.Logger

	state   State
	session *Session
}

// NewController creates an idle controller
func NewController(c *model.Collection, guard *protocol.Guard, authority protocol.Authority, view View, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		collection: c,
		guard:      guard,
		authority:  authority,
		view:       view,
		logger:     logger,
	}
}

// State returns the current drag state
func (c *Controller) State() State {
	return c.state
}

// Dragging reports whether a session is active
func (c *Controller) Dragging() bool {
	return c.state == StateDragging
}

// Session returns a copy of the active session
func (c *Controller) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return c.session.clone(), true
}

// Start begins a drag of src.Item
func (c *Controller) Start(src protocol.Source) error {
	if c.state != StateIdle {
		return errors.New(errors.ErrCodeInvalidState, "drag already in progress (%s)", c.state)
	}
	if err := c.guard.Accept(src); err != nil {
		c.logger.Debug("drag start rejected", "item", src.Item, "err", err)
		return err
	}
	if !c.collection.Contains(src.Item) {
		return errors.New(errors.ErrCodeNotFound, "item %q is not in the collection", src.Item)
	}

	c.session = &Session{
		Dragged: src.Item,
		Origin:  c.collection.Snapshot(),
		Preview: c.collection.IDs(),
	}
	c.state = StateDragging
	c.logger.Debug("drag started", "layout", c.guard.LayoutID(), "item", src.Item)

	c.view.MarkDragged(src.Item, true)
	c.view.Invalidate()
	return nil
}

// Over updates the preview for a hover over target and reports whether the
// preview changed
func (c *Controller) Over(target model.ItemID) bool {
	if c.state != StateDragging {
		return false
	}
	s := c.session
	if target == s.LastTarget {
		return false
	}
	if target == s.Dragged {
		s.LastTarget = target
		return false
	}

	ti := s.previewIndex(target)
	if ti < 0 {
		return false
	}
	s.LastTarget = target
	s.moveDraggedTo(ti)
	s.HasPendingPreview = true

	c.view.Invalidate()
	return true
}

// Drop ends the drag over target. It commits the preview through the
// authority and returns the resulting event, or returns nil when the drag
// ended without a change. A rejected drop cancels the drag.
func (c *Controller) Drop(target model.ItemID, src protocol.Source) (*model.ReorderEvent, error) {
	if c.state != StateDragging {
		return nil, errors.New(errors.ErrCodeInvalidState, "no drag in progress")
	}
	s := c.session

	if err := c.guard.Accept(src); err != nil {
		c.logger.Debug("drop rejected", "item", src.Item, "err", err)
		c.Cancel()
		return nil, err
	}
	if src.Item != s.Dragged {
		c.Cancel()
		return nil, errors.New(errors.ErrCodeInvalidTarget, "drop source %q is not the dragged item", src.Item)
	}
	if target != "" && !c.collection.Contains(target) {
		c.Cancel()
		return nil, errors.New(errors.ErrCodeInvalidTarget, "drop target %q is not in the collection", target)
	}
	if !s.HasPendingPreview {
		c.Cancel()
		return nil, nil
	}

	final := s.previewIndex(s.Dragged)
	current := c.collection.IndexOf(s.Dragged)
	if final == current {
		c.Cancel()
		return nil, nil
	}

	c.state = StateCommitting
	req := protocol.Request{Item: s.Dragged, Slot: protocol.SlotFor(current, final)}
	event, err := c.authority.Reorder(req)
	c.finish()
	if err != nil {
		c.logger.Error("reorder failed", "item", req.Item, "slot", req.Slot, "err", err)
		return nil, err
	}
	return &event, nil
}

// Cancel discards the active session. The view returns to the committed order.
func (c *Controller) Cancel() {
	if c.state == StateIdle {
		return
	}
	c.state = StateCancelling
	c.logger.Debug("drag cancelled", "item", c.session.Dragged)
	c.finish()
}

// Resync adapts the session to a collection that changed during the drag.
// A removed dragged item cancels the drag; otherwise the preview follows the
// collection with the dragged item kept where the user put it.
func (c *Controller) Resync() {
	if c.state != StateDragging {
		return
	}
	s := c.session
	if !c.collection.Contains(s.Dragged) {
		c.logger.Debug("dragged item removed, cancelling", "item", s.Dragged)
		c.Cancel()
		return
	}

	at := s.previewIndex(s.Dragged)
	ids := c.collection.IDs()
	s.Preview = ids[:0:0]
	for _, id := range ids {
		if id != s.Dragged {
			s.Preview = append(s.Preview, id)
		}
	}
	s.moveDraggedTo(at)
	c.view.Invalidate()
}

// ViewOrder returns the order the view should show: the preview while
// dragging, the committed order otherwise
func (c *Controller) ViewOrder() []model.Item {
	if c.state != StateDragging {
		return c.collection.Items()
	}
	out := make([]model.Item, 0, len(c.session.Preview))
	for _, id := range c.session.Preview {
		tag, _ := c.collection.Tag(id)
		out = append(out, model.Item{ID: id, Tag: tag})
	}
	return out
}

func (c *Controller) finish() {
	dragged := c.session.Dragged
	c.session = nil
	c.state = StateIdle
	c.view.MarkDragged(dragged, false)
	c.view.Invalidate()
}
