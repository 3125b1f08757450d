package reconcile

import (
	"github.com/charmbracelet/log"

	"github.com/ytget/masonry/internal/errors"
	"github.com/ytget/masonry/internal/model"
)

// Patch is the set of container operations that turns the rendered order
// into the target order
type Patch struct {
	Prefix int // leading items already in place
	Suffix int // trailing items already in place

	Detach  []*Wrapper   // rendered wrappers inside the old changed window
	Create  []model.Item // items that need a new wrapper
	Attach  []model.Item // new changed window, attached from index Prefix on
	Destroy []*Wrapper   // wrappers whose item left the order

	Final []model.Item
}

// Empty reports whether applying the patch would touch no container
func (p *Patch) Empty() bool {
	return len(p.Detach) == 0 && len(p.Attach) == 0 && len(p.Destroy) == 0
}

// Reconciler owns the rendered wrappers of one layout
type Reconciler struct {
	layoutID string
	surface  Surface
	logger   *log.Logger

	next     int
	rendered []*Wrapper
	byItem   map[model.ItemID]*Wrapper
}

// NewReconciler creates a reconciler for the layout with the given id
func NewReconciler(layoutID string, surface Surface, logger *log.Logger) *Reconciler {
	if logger == nil {
		logger = log.Default()
	}
	return &Reconciler{
		layoutID: layoutID,
		surface:  surface,
		logger:   logger,
		byItem:   make(map[model.ItemID]*Wrapper),
	}
}

// LayoutID returns the id of the layout the wrappers belong to
func (r *Reconciler) LayoutID() string {
	return r.layoutID
}

// Rendered returns the identities in rendered order
func (r *Reconciler) Rendered() []model.ItemID {
	ids := make([]model.ItemID, len(r.rendered))
	for i, w := range r.rendered {
		ids[i] = w.Item
	}
	return ids
}

// Wrapper returns the live wrapper of an item
func (r *Reconciler) Wrapper(id model.ItemID) (*Wrapper, bool) {
	w, ok := r.byItem[id]
	return w, ok
}

// ItemForWrapper resolves a wrapper id back to its item
func (r *Reconciler) ItemForWrapper(wrapperID string) (model.ItemID, bool) {
	for id, w := range r.byItem {
		if w.ID == wrapperID {
			return id, true
		}
	}
	return "", false
}

// Plan computes the patch from the rendered order to target without
// touching anything. isMember reports whether an identity is known to the
// collection; nil accepts every identity.
func (r *Reconciler) Plan(target []model.Item, isMember func(model.ItemID) bool) (*Patch, error) {
	seen := make(map[model.ItemID]bool, len(target))
	for _, it := range target {
		if seen[it.ID] {
			return nil, errors.New(errors.ErrCodeInvariantViolation, "item %q appears twice in target order", it.ID)
		}
		seen[it.ID] = true
		if isMember != nil && !isMember(it.ID) {
			return nil, errors.New(errors.ErrCodeInvariantViolation, "item %q is not in the collection", it.ID)
		}
	}

	oldN, newN := len(r.rendered), len(target)

	prefix := 0
	for prefix < oldN && prefix < newN && r.rendered[prefix].Item == target[prefix].ID {
		prefix++
	}
	suffix := 0
	for suffix < oldN-prefix && suffix < newN-prefix &&
		r.rendered[oldN-1-suffix].Item == target[newN-1-suffix].ID {
		suffix++
	}

	p := &Patch{Prefix: prefix, Suffix: suffix, Final: append([]model.Item(nil), target...)}
	p.Detach = append(p.Detach, r.rendered[prefix:oldN-suffix]...)
	p.Attach = append(p.Attach, target[prefix:newN-suffix]...)

	for _, it := range p.Attach {
		if _, ok := r.byItem[it.ID]; !ok {
			p.Create = append(p.Create, it)
		}
	}
	for _, w := range p.Detach {
		if !seen[w.Item] {
			p.Destroy = append(p.Destroy, w)
		}
	}
	return p, nil
}

// Apply executes a patch produced by Plan against the surface
func (r *Reconciler) Apply(p *Patch) error {
	created := make([]*Wrapper, 0, len(p.Create))
	for _, it := range p.Create {
		w := &Wrapper{ID: FormatWrapperID(r.layoutID, r.next), Item: it.ID, Tag: it.Tag}
		r.next++
		if err := r.surface.Create(w); err != nil {
			for _, c := range created {
				r.surface.Destroy(c)
			}
			return errors.Wrap(errors.ErrCodeInvariantViolation, err, "create wrapper for %q", it.ID)
		}
		created = append(created, w)
	}
	for _, w := range created {
		r.byItem[w.Item] = w
	}

	for _, w := range p.Detach {
		r.surface.Detach(w)
	}
	for _, w := range p.Destroy {
		delete(r.byItem, w.Item)
		r.surface.Destroy(w)
	}
	for i, it := range p.Attach {
		r.surface.Attach(r.byItem[it.ID], p.Prefix+i)
	}

	rendered := make([]*Wrapper, len(p.Final))
	for i, it := range p.Final {
		w := r.byItem[it.ID]
		if w.Tag != it.Tag {
			w.Tag = it.Tag
			r.surface.Update(w)
		}
		rendered[i] = w
	}
	r.rendered = rendered

	if !p.Empty() {
		r.logger.Debug("reconciled layout",
			"layout", r.layoutID, "prefix", p.Prefix, "suffix", p.Suffix,
			"detached", len(p.Detach), "attached", len(p.Attach), "destroyed", len(p.Destroy))
	}
	return nil
}

// Reconcile plans and applies in one step. On an invariant violation the
// rendered state is left untouched.
func (r *Reconciler) Reconcile(target []model.Item, isMember func(model.ItemID) bool) error {
	p, err := r.Plan(target, isMember)
	if err != nil {
		r.logger.Error("reconcile aborted", "layout", r.layoutID, "err", err)
		return err
	}
	return r.Apply(p)
}

// SetDragged toggles the dragged marker on an item's wrapper
func (r *Reconciler) SetDragged(id model.ItemID, dragged bool) {
	w, ok := r.byItem[id]
	if !ok || w.Dragged == dragged {
		return
	}
	w.Dragged = dragged
	r.surface.Update(w)
}

// Forget destroys the wrapper of an item that is gone, if it is still
// tracked. Used when an item is removed between reconcile passes.
func (r *Reconciler) Forget(id model.ItemID) {
	w, ok := r.byItem[id]
	if !ok {
		return
	}
	for i, rw := range r.rendered {
		if rw == w {
			r.surface.Detach(w)
			r.rendered = append(r.rendered[:i], r.rendered[i+1:]...)
			break
		}
	}
	delete(r.byItem, id)
	r.surface.Destroy(w)
}

// Destroy releases every wrapper
func (r *Reconciler) Destroy() {
	for _, w := range r.rendered {
		r.surface.Detach(w)
	}
	for _, w := range r.byItem {
		r.surface.Destroy(w)
	}
	r.rendered = nil
	r.byItem = make(map[model.ItemID]*Wrapper)
}
