package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ytget/masonry/internal/dnd"
	"github.com/ytget/masonry/internal/errors"
	"github.com/ytget/masonry/internal/geometry"
	"github.com/ytget/masonry/internal/imagesloaded"
	"github.com/ytget/masonry/internal/model"
	"github.com/ytget/masonry/internal/protocol"
	"github.com/ytget/masonry/internal/reconcile"
	"github.com/ytget/masonry/internal/relayout"
)

var _ fyne.Widget = (*MasonryLayout)(nil)

// MasonryLayout is a widget packing caller-owned content into columns.
// Items are identified by model.ItemID; the content objects are borrowed.
// All methods must be called on the UI goroutine.
type MasonryLayout struct {
	widget.BaseWidget

	id     string
	logger *log.Logger

	collection *model.Collection
	contents   map[model.ItemID]fyne.CanvasObject

	guard      *protocol.Guard
	listeners  *protocol.Registry
	authority  *protocol.CollectionAuthority
	controller *dnd.Controller
	reconciler *reconcile.Reconciler

	engine    *geometry.Columns
	grid      *fyne.Container
	wrappers  map[string]*itemWrapper
	coalescer *relayout.Coalescer
	images    *imagesloaded.Tracker

	relayoutOnImages bool
	rendered         bool
}

// NewMasonryLayout creates an empty layout with a fresh instance id
func NewMasonryLayout(logger *log.Logger) *MasonryLayout {
	return newMasonryLayout(logger, nil)
}

func newMasonryLayout(logger *log.Logger, deferrer relayout.Deferrer) *MasonryLayout {
	if logger == nil {
		logger = log.Default()
	}
	m := &MasonryLayout{
		id:               newLayoutID(),
		collection:       model.NewCollection(),
		contents:         make(map[model.ItemID]fyne.CanvasObject),
		wrappers:         make(map[string]*itemWrapper),
		images:           imagesloaded.New(),
		relayoutOnImages: true,
	}
	m.logger = logger.With("layout", m.id)

	m.guard = protocol.NewGuard(m.id)
	m.listeners = protocol.NewRegistry(m.logger)
	m.authority = protocol.NewCollectionAuthority(m.id, m.collection, m.listeners, m.logger)
	m.controller = dnd.NewController(m.collection, m.guard, m.authority, layoutView{m}, m.logger)
	m.reconciler = reconcile.NewReconciler(m.id, gridSurface{m}, m.logger)

	m.engine = geometry.NewColumns(ItemGap, m.logger)
	m.grid = container.New(m.engine)
	m.engine.Bind(m.grid)
	m.coalescer = relayout.New(m.layoutPass, deferrer)

	m.collection.SetHooks(model.Hooks{
		Removed: m.onItemRemoved,
		Changed: m.onCollectionChanged,
	})
	m.images.OnLoaded(func() {
		if m.relayoutOnImages {
			m.RequestLayout()
		}
	})

	m.ExtendBaseWidget(m)
	return m
}

// newLayoutID returns a time-ordered instance id
func newLayoutID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// ID returns the layout instance id
func (m *MasonryLayout) ID() string {
	return m.id
}

// CreateRenderer implements fyne.Widget
func (m *MasonryLayout) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(m.grid)
}

// Add appends content under id. Adding an existing id moves it to the end.
func (m *MasonryLayout) Add(id model.ItemID, content fyne.CanvasObject) {
	m.insert(id, content, m.existingTag(id), m.collection.Len())
}

// AddTagged appends content with a size-class tag
func (m *MasonryLayout) AddTagged(id model.ItemID, content fyne.CanvasObject, tag string) {
	m.insert(id, content, tag, m.collection.Len())
}

// AddAt inserts content at index, clamped to the valid range
func (m *MasonryLayout) AddAt(id model.ItemID, content fyne.CanvasObject, index int) {
	m.insert(id, content, m.existingTag(id), index)
}

// AddFirst inserts content before every other item
func (m *MasonryLayout) AddFirst(id model.ItemID, content fyne.CanvasObject) {
	m.insert(id, content, m.existingTag(id), 0)
}

// AddBefore inserts content directly before the anchor item
func (m *MasonryLayout) AddBefore(id model.ItemID, content fyne.CanvasObject, before model.ItemID) error {
	idx := m.collection.IndexOf(before)
	if idx < 0 {
		return errors.New(errors.ErrCodeInvalidTarget, "anchor %q is not in the layout", before)
	}
	if id == before {
		m.setContent(id, content)
		return nil
	}
	m.insert(id, content, m.existingTag(id), idx)
	return nil
}

// AddAfter inserts content directly after the anchor item
func (m *MasonryLayout) AddAfter(id model.ItemID, content fyne.CanvasObject, after model.ItemID) error {
	idx := m.collection.IndexOf(after)
	if idx < 0 {
		return errors.New(errors.ErrCodeInvalidTarget, "anchor %q is not in the layout", after)
	}
	if id == after {
		m.setContent(id, content)
		return nil
	}
	m.insert(id, content, m.existingTag(id), idx+1)
	return nil
}

// Remove takes an item out of the layout. Removing an absent item is a no-op.
func (m *MasonryLayout) Remove(id model.ItemID) bool {
	return m.collection.Remove(id)
}

// RemoveAll empties the layout
func (m *MasonryLayout) RemoveAll() {
	m.controller.Cancel()
	m.collection.Clear()
}

// Replace puts content under a new identity at the position of old
func (m *MasonryLayout) Replace(old, replacement model.ItemID, content fyne.CanvasObject) error {
	if !m.collection.Contains(old) {
		return errors.New(errors.ErrCodeNotFound, "item %q is not in the layout", old)
	}
	if old == replacement {
		m.setContent(old, content)
		return nil
	}
	m.setContent(replacement, content)
	return m.collection.Replace(old, replacement)
}

// MoveItem relocates an item to a slot in the current order
func (m *MasonryLayout) MoveItem(id model.ItemID, index int) error {
	return m.collection.Move(id, index)
}

// MoveBefore moves id directly before the anchor
func (m *MasonryLayout) MoveBefore(id, before model.ItemID) error {
	return m.collection.MoveBefore(id, before)
}

// MoveAfter moves id directly after the anchor
func (m *MasonryLayout) MoveAfter(id, after model.ItemID) error {
	return m.collection.MoveAfter(id, after)
}

// SyncOrder applies an order decided elsewhere. An active drag is cancelled
// first; ids must be a permutation of the current items.
func (m *MasonryLayout) SyncOrder(ids []model.ItemID) error {
	m.controller.Cancel()
	if err := m.collection.Reorder(ids); err != nil {
		m.logger.Warn("order sync rejected", "err", err)
		return err
	}
	return nil
}

// ItemIDs returns the committed order
func (m *MasonryLayout) ItemIDs() []model.ItemID {
	return m.collection.IDs()
}

// SetReorderable toggles drag reordering. Disabling it cancels an active drag.
func (m *MasonryLayout) SetReorderable(reorderable bool) {
	m.guard.SetEnabled(reorderable)
	if !reorderable {
		m.controller.Cancel()
	}
}

// Reorderable reports whether the user may drag items
func (m *MasonryLayout) Reorderable() bool {
	return m.guard.Enabled()
}

// ItemAt returns the item at index
func (m *MasonryLayout) ItemAt(index int) (model.Item, error) {
	return m.collection.At(index)
}

// IndexOf returns the committed index of id, -1 if absent
func (m *MasonryLayout) IndexOf(id model.ItemID) int {
	return m.collection.IndexOf(id)
}

// Count returns the number of items
func (m *MasonryLayout) Count() int {
	return m.collection.Len()
}

// Items returns the items in committed order
func (m *MasonryLayout) Items() []model.Item {
	return m.collection.Items()
}

// Content returns the object registered for id
func (m *MasonryLayout) Content(id model.ItemID) (fyne.CanvasObject, bool) {
	obj, ok := m.contents[id]
	return obj, ok
}

// Tag returns the size-class tag of id
func (m *MasonryLayout) Tag(id model.ItemID) (string, bool) {
	return m.collection.Tag(id)
}

// SetTag changes the size-class tag of id
func (m *MasonryLayout) SetTag(id model.ItemID, tag string) error {
	return m.collection.SetTag(id, tag)
}

// OnReorder registers fn for committed drags and returns its remover
func (m *MasonryLayout) OnReorder(fn func(event model.ReorderEvent)) func() {
	return m.listeners.Add(protocol.ListenerFunc(fn))
}

// AddListener registers a reorder listener and returns its remover
func (m *MasonryLayout) AddListener(l protocol.Listener) func() {
	return m.listeners.Add(l)
}

// RequestLayout schedules a relayout. Requests made before the pass runs
// are merged into one.
func (m *MasonryLayout) RequestLayout() {
	m.coalescer.Request()
}

// LayoutNow runs a pending relayout immediately
func (m *MasonryLayout) LayoutNow() {
	m.coalescer.Flush()
}

// SetColumnWidth configures the column width. Only allowed before the first render.
func (m *MasonryLayout) SetColumnWidth(width float32) error {
	if m.rendered {
		return errors.New(errors.ErrCodeInvalidState, "column width cannot change after the first render")
	}
	if width <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "column width must be positive, got %v", width)
	}
	m.engine.Initialize(width, -1)
	return nil
}

// SetTransitionDuration configures the move animation. Only allowed before the first render.
func (m *MasonryLayout) SetTransitionDuration(d time.Duration) error {
	if m.rendered {
		return errors.New(errors.ErrCodeInvalidState, "transition duration cannot change after the first render")
	}
	if d < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "transition duration must not be negative, got %v", d)
	}
	m.engine.Initialize(0, d)
	return nil
}

// ColumnWidth returns the configured column width
func (m *MasonryLayout) ColumnWidth() float32 {
	return m.engine.ColumnWidth()
}

// SetAutomaticLayoutWhenImagesLoaded toggles the relayout after image batches
func (m *MasonryLayout) SetAutomaticLayoutWhenImagesLoaded(enabled bool) {
	m.relayoutOnImages = enabled
	if !enabled {
		m.images.Disarm()
		return
	}
	m.RequestLayout()
}

// Images returns the tracker content uses to report image loads
func (m *MasonryLayout) Images() *imagesloaded.Tracker {
	return m.images
}

// BeginDrag starts a user drag of id
func (m *MasonryLayout) BeginDrag(id model.ItemID) error {
	return m.controller.Start(m.source(id))
}

// BeginDragFrom starts a drag from an explicit source. Sources of other
// layouts are rejected.
func (m *MasonryLayout) BeginDragFrom(src protocol.Source) error {
	return m.controller.Start(src)
}

// DragOver reports a hover over target and whether the preview changed
func (m *MasonryLayout) DragOver(target model.ItemID) bool {
	return m.controller.Over(target)
}

// Drop ends the active drag over target. It returns the committed event, or
// nil when the drag ended without a change.
func (m *MasonryLayout) Drop(target model.ItemID) (*model.ReorderEvent, error) {
	s, ok := m.controller.Session()
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidState, "no drag in progress")
	}
	return m.DropFrom(target, m.source(s.Dragged))
}

// DropFrom ends the active drag with an explicit source
func (m *MasonryLayout) DropFrom(target model.ItemID, src protocol.Source) (*model.ReorderEvent, error) {
	return m.controller.Drop(target, src)
}

// CancelDrag abandons the active drag
func (m *MasonryLayout) CancelDrag() {
	m.controller.Cancel()
}

// DragState returns the drag controller state
func (m *MasonryLayout) DragState() dnd.State {
	return m.controller.State()
}

// VisibleOrder returns the order currently shown, including a drag preview
func (m *MasonryLayout) VisibleOrder() []model.ItemID {
	items := m.controller.ViewOrder()
	ids := make([]model.ItemID, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

// Destroy releases wrappers and stops animations
func (m *MasonryLayout) Destroy() {
	m.controller.Cancel()
	m.images.Disarm()
	m.reconciler.Destroy()
	m.engine.Destroy()
}

func (m *MasonryLayout) source(id model.ItemID) protocol.Source {
	src := protocol.Source{LayoutID: m.id, Item: id}
	if w, ok := m.reconciler.Wrapper(id); ok {
		src.WrapperID = w.ID
	}
	return src
}

func (m *MasonryLayout) existingTag(id model.ItemID) string {
	tag, _ := m.collection.Tag(id)
	return tag
}

func (m *MasonryLayout) insert(id model.ItemID, content fyne.CanvasObject, tag string, index int) {
	m.setContent(id, content)
	m.collection.Insert(model.Item{ID: id, Tag: tag}, index)
}

// setContent registers content for id. A rendered wrapper showing other
// content is dropped so the next pass builds a fresh one.
func (m *MasonryLayout) setContent(id model.ItemID, content fyne.CanvasObject) {
	if prev, ok := m.contents[id]; ok && prev != content {
		m.reconciler.Forget(id)
		m.RequestLayout()
	}
	m.contents[id] = content
}

func (m *MasonryLayout) onItemRemoved(item model.Item, _ int) {
	m.reconciler.Forget(item.ID)
	delete(m.contents, item.ID)
}

func (m *MasonryLayout) onCollectionChanged() {
	m.controller.Resync()
	m.RequestLayout()
}

// layoutPass reconciles the shown order and repositions everything
func (m *MasonryLayout) layoutPass() {
	if err := m.reconciler.Reconcile(m.controller.ViewOrder(), m.collection.Contains); err != nil {
		return
	}
	m.rendered = true
	if m.relayoutOnImages && m.images.Outstanding() > 0 && !m.images.Armed() {
		m.images.Arm()
	}
	m.engine.Relayout()
}

// wrapperAt returns the item whose wrapper covers pos, relative to the grid
func (m *MasonryLayout) wrapperAt(pos fyne.Position) (model.ItemID, bool) {
	for _, obj := range m.grid.Objects {
		w, ok := obj.(*itemWrapper)
		if !ok || !w.Visible() {
			continue
		}
		p, s := w.Position(), w.Size()
		if pos.X >= p.X && pos.X < p.X+s.Width && pos.Y >= p.Y && pos.Y < p.Y+s.Height {
			return w.wrapper.Item, true
		}
	}
	return "", false
}

// insideGrid reports whether pos, relative to the grid, falls within it
func (m *MasonryLayout) insideGrid(pos fyne.Position) bool {
	s := m.grid.Size()
	return pos.X >= 0 && pos.Y >= 0 && pos.X < s.Width && pos.Y < s.Height
}

// layoutView connects the drag controller to the layout
type layoutView struct {
	m *MasonryLayout
}

func (v layoutView) Invalidate() {
	v.m.RequestLayout()
}

func (v layoutView) MarkDragged(id model.ItemID, dragged bool) {
	v.m.reconciler.SetDragged(id, dragged)
}

// gridSurface applies reconciler patches to the grid container
type gridSurface struct {
	m *MasonryLayout
}

func (s gridSurface) Create(w *reconcile.Wrapper) error {
	content, ok := s.m.contents[w.Item]
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "no content registered for %q", w.Item)
	}
	s.m.wrappers[w.ID] = newItemWrapper(s.m, w, content)
	return nil
}

func (s gridSurface) Attach(w *reconcile.Wrapper, index int) {
	iw, ok := s.m.wrappers[w.ID]
	if !ok {
		return
	}
	objects := s.m.grid.Objects
	if index > len(objects) {
		index = len(objects)
	}
	objects = append(objects, nil)
	copy(objects[index+1:], objects[index:])
	objects[index] = iw
	s.m.grid.Objects = objects
	s.m.engine.AddItem(iw)
}

func (s gridSurface) Detach(w *reconcile.Wrapper) {
	iw, ok := s.m.wrappers[w.ID]
	if !ok {
		return
	}
	objects := s.m.grid.Objects
	for i, obj := range objects {
		if obj == fyne.CanvasObject(iw) {
			s.m.grid.Objects = append(objects[:i], objects[i+1:]...)
			break
		}
	}
	s.m.engine.RemoveItem(iw)
}

func (s gridSurface) Destroy(w *reconcile.Wrapper) {
	delete(s.m.wrappers, w.ID)
}

func (s gridSurface) Update(w *reconcile.Wrapper) {
	if iw, ok := s.m.wrappers[w.ID]; ok {
		iw.Refresh()
	}
}
