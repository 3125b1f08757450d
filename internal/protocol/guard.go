package protocol

import (
	"github.com/ytget/masonry/internal/errors"
	"github.com/ytget/masonry/internal/model"
	"github.com/ytget/masonry/internal/reconcile"
)

// Source describes where a drag originated
type Source struct {
	LayoutID  string
	WrapperID string // optional; checked when set
	Item      model.ItemID
}

// Guard decides whether a drag source may reorder a layout
type Guard struct {
	layoutID string
	enabled  bool
}

// NewGuard creates a guard for the given layout, reordering enabled
func NewGuard(layoutID string) *Guard {
	return &Guard{layoutID: layoutID, enabled: true}
}

// LayoutID returns the layout the guard protects
func (g *Guard) LayoutID() string {
	return g.layoutID
}

// SetEnabled toggles user reordering
func (g *Guard) SetEnabled(enabled bool) {
	g.enabled = enabled
}

// Enabled reports whether user reordering is allowed
func (g *Guard) Enabled() bool {
	return g.enabled
}

// Accept returns nil when src may reorder this layout
func (g *Guard) Accept(src Source) error {
	if !g.enabled {
		return errors.New(errors.ErrCodeInvalidTarget, "reordering is disabled")
	}
	if src.LayoutID != g.layoutID {
		return errors.New(errors.ErrCodeInvalidTarget, "source belongs to layout %q", src.LayoutID)
	}
	if src.WrapperID != "" && !reconcile.WrapperBelongsTo(src.WrapperID, g.layoutID) {
		return errors.New(errors.ErrCodeInvalidTarget, "wrapper %q is not part of this layout", src.WrapperID)
	}
	return nil
}
