package geometry

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/charmbracelet/log"
)

// Engine is the column-packing collaborator of a masonry layout
type Engine interface {
	// Initialize sets column width and move animation duration
	Initialize(columnWidth float32, transition time.Duration)
	// AddItem registers a newly attached object
	AddItem(obj fyne.CanvasObject)
	// RemoveItem forgets a detached object
	RemoveItem(obj fyne.CanvasObject)
	// Relayout recomputes all positions
	Relayout()
	// Destroy releases the engine
	Destroy()
	// OnLayoutComplete registers a callback run after each layout pass
	OnLayoutComplete(fn func())
}

// Spanner is implemented by objects that occupy more than one column
type Spanner interface {
	Span() int
}

// Default geometry values
const (
	DefaultColumnWidth = 300
	DefaultTransition  = 400 * time.Millisecond
)

// Columns is a fyne.Layout packing objects into equal-width columns
type Columns struct {
	mu         sync.Mutex
	colWidth   float32
	gap        float32
	transition time.Duration
	logger     *log.Logger

	target     *fyne.Container
	placed     map[fyne.CanvasObject]bool
	animations map[fyne.CanvasObject]*fyne.Animation
	complete   []func()
	lastWidth  float32
	passes     int
}

// NewColumns creates a column layout with the given gap between cells
func NewColumns(gap float32, logger *log.Logger) *Columns {
	if logger == nil {
		logger = log.Default()
	}
	return &Columns{
		colWidth:   DefaultColumnWidth,
		gap:        gap,
		transition: DefaultTransition,
		logger:     logger,
		placed:     make(map[fyne.CanvasObject]bool),
		animations: make(map[fyne.CanvasObject]*fyne.Animation),
	}
}

// Bind sets the container Relayout refreshes
func (c *Columns) Bind(target *fyne.Container) {
	c.target = target
}

// Initialize implements Engine
func (c *Columns) Initialize(columnWidth float32, transition time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if columnWidth > 0 {
		c.colWidth = columnWidth
	}
	if transition >= 0 {
		c.transition = transition
	}
}

// ColumnWidth returns the configured column width
func (c *Columns) ColumnWidth() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.colWidth
}

// Transition returns the configured move animation duration
func (c *Columns) Transition() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transition
}

// AddItem implements Engine. The first placement of an item is not animated.
func (c *Columns) AddItem(obj fyne.CanvasObject) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.placed, obj)
}

// RemoveItem implements Engine
func (c *Columns) RemoveItem(obj fyne.CanvasObject) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked(obj)
	delete(c.placed, obj)
}

// Relayout implements Engine
func (c *Columns) Relayout() {
	if c.target != nil {
		c.target.Refresh()
	}
}

// Destroy implements Engine
func (c *Columns) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for obj := range c.animations {
		c.stopLocked(obj)
	}
	c.placed = make(map[fyne.CanvasObject]bool)
	c.complete = nil
	c.target = nil
}

// OnLayoutComplete implements Engine
func (c *Columns) OnLayoutComplete(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.complete = append(c.complete, fn)
}

// Passes returns the number of layout passes run
func (c *Columns) Passes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.passes
}

// Layout implements fyne.Layout
func (c *Columns) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	c.mu.Lock()
	c.lastWidth = size.Width
	visible, rects, _ := c.placeLocked(objects, size.Width)

	for i, obj := range visible {
		r := rects[i]
		obj.Resize(r.Size)
		if c.transition > 0 && c.placed[obj] && obj.Position() != r.Pos {
			c.animateLocked(obj, obj.Position(), r.Pos)
		} else {
			c.stopLocked(obj)
			obj.Move(r.Pos)
		}
		c.placed[obj] = true
	}
	c.passes++
	callbacks := append([]func(){}, c.complete...)
	c.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// MinSize implements fyne.Layout
func (c *Columns) MinSize(objects []fyne.CanvasObject) fyne.Size {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _, height := c.placeLocked(objects, c.lastWidth)
	return fyne.NewSize(c.colWidth, height)
}

func (c *Columns) placeLocked(objects []fyne.CanvasObject, width float32) ([]fyne.CanvasObject, []Rect, float32) {
	visible := make([]fyne.CanvasObject, 0, len(objects))
	cells := make([]Cell, 0, len(objects))
	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}
		span := 1
		if s, ok := obj.(Spanner); ok {
			span = s.Span()
		}
		visible = append(visible, obj)
		cells = append(cells, Cell{Span: span, Height: obj.MinSize().Height})
	}
	columns := ColumnCount(width, c.colWidth, c.gap)
	rects, height := Place(cells, columns, c.colWidth, c.gap)
	return visible, rects, height
}

func (c *Columns) animateLocked(obj fyne.CanvasObject, from, to fyne.Position) {
	c.stopLocked(obj)
	anim := canvas.NewPositionAnimation(from, to, c.transition, func(p fyne.Position) {
		obj.Move(p)
	})
	anim.Curve = fyne.AnimationEaseOut
	c.animations[obj] = anim
	anim.Start()
}

func (c *Columns) stopLocked(obj fyne.CanvasObject) {
	if anim, ok := c.animations[obj]; ok {
		anim.Stop()
		delete(c.animations, obj)
	}
}
