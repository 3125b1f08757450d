package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/masonry/internal/geometry"
	"github.com/ytget/masonry/internal/model"
	"github.com/ytget/masonry/internal/reconcile"
)

var (
	_ fyne.Draggable   = (*itemWrapper)(nil)
	_ geometry.Spanner = (*itemWrapper)(nil)
)

// itemWrapper hosts one item's content inside the grid and turns pointer
// drags into drag controller calls
type itemWrapper struct {
	widget.BaseWidget

	layout  *MasonryLayout
	wrapper *reconcile.Wrapper
	content fyne.CanvasObject

	// Drag tracking
	dragging   bool
	travelled  float32
	lastTarget model.ItemID
	overGrid   bool
}

func newItemWrapper(layout *MasonryLayout, w *reconcile.Wrapper, content fyne.CanvasObject) *itemWrapper {
	iw := &itemWrapper{layout: layout, wrapper: w, content: content}
	iw.ExtendBaseWidget(iw)
	return iw
}

// Span implements geometry.Spanner
func (iw *itemWrapper) Span() int {
	return iw.wrapper.SizeClass().Span()
}

// Dragged implements fyne.Draggable. The drag starts once the pointer moved
// past DragStartDistance.
func (iw *itemWrapper) Dragged(e *fyne.DragEvent) {
	if !iw.dragging {
		iw.travelled += abs32(e.Dragged.DX) + abs32(e.Dragged.DY)
		if iw.travelled < DragStartDistance {
			return
		}
		if err := iw.layout.BeginDrag(iw.wrapper.Item); err != nil {
			iw.layout.logger.Debug("drag not started", "item", iw.wrapper.Item, "err", err)
			iw.travelled = 0
			return
		}
		iw.dragging = true
		iw.lastTarget = ""
	}

	// e.Position is relative to the wrapper, the grid hit test to its parent
	pos := iw.Position().Add(e.Position)
	target, ok := iw.layout.wrapperAt(pos)
	if !ok {
		iw.lastTarget = ""
		iw.overGrid = iw.layout.insideGrid(pos)
		return
	}
	iw.lastTarget = target
	iw.overGrid = true
	iw.layout.DragOver(target)
}

// DragEnd implements fyne.Draggable
func (iw *itemWrapper) DragEnd() {
	iw.travelled = 0
	if !iw.dragging {
		return
	}
	iw.dragging = false

	// Released outside the layout
	if !iw.overGrid {
		iw.layout.CancelDrag()
		return
	}
	event, err := iw.layout.Drop(iw.lastTarget)
	if err != nil {
		iw.layout.logger.Debug("drop rejected", "item", iw.wrapper.Item, "err", err)
		return
	}
	if event != nil {
		iw.layout.logger.Debug("drop committed", "item", event.MovedItem, "index", event.NewIndex)
	}
}

// CreateRenderer implements fyne.Widget
func (iw *itemWrapper) CreateRenderer() fyne.WidgetRenderer {
	overlay := canvas.NewRectangle(draggedFill())
	overlay.StrokeColor = theme.Color(theme.ColorNamePrimary)
	overlay.StrokeWidth = DraggedStrokeWidth
	overlay.CornerRadius = theme.InputRadiusSize()
	overlay.Hide()

	r := &itemWrapperRenderer{wrapper: iw, overlay: overlay}
	r.Refresh()
	return r
}

// itemWrapperRenderer draws the content with the dragged marker on top
type itemWrapperRenderer struct {
	wrapper *itemWrapper
	overlay *canvas.Rectangle
}

func (r *itemWrapperRenderer) Layout(size fyne.Size) {
	r.wrapper.content.Resize(size)
	r.wrapper.content.Move(fyne.NewPos(0, 0))
	r.overlay.Resize(size)
}

func (r *itemWrapperRenderer) MinSize() fyne.Size {
	return r.wrapper.content.MinSize()
}

func (r *itemWrapperRenderer) Refresh() {
	if r.wrapper.wrapper.Dragged {
		r.overlay.FillColor = draggedFill()
		r.overlay.Show()
	} else {
		r.overlay.Hide()
	}
	r.overlay.Refresh()
	r.wrapper.content.Refresh()
}

func (r *itemWrapperRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.wrapper.content, r.overlay}
}

func (r *itemWrapperRenderer) Destroy() {}

// draggedFill is the overlay colour of the dragged item. Themes other than
// CompactTheme do not know ColorNameDragged, so they get the selection colour.
func draggedFill() color.Color {
	if a := fyne.CurrentApp(); a != nil {
		if _, ok := a.Settings().Theme().(*CompactTheme); ok {
			if c := theme.Color(ColorNameDragged); c != nil {
				return c
			}
		}
	}
	return theme.Color(theme.ColorNameSelection)
}

// Dragging reports whether the wrapper carries the dragged marker
func (iw *itemWrapper) Dragging() bool {
	return iw.wrapper.Dragged
}

// ClassName returns the marker classes of the wrapper
func (iw *itemWrapper) ClassName() string {
	class := string(iw.wrapper.SizeClass())
	if iw.wrapper.Dragged {
		if class != "" {
			class += " "
		}
		class += model.DraggedMarker
	}
	return class
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
