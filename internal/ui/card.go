package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/ytget/masonry/internal/demo"
	"github.com/ytget/masonry/internal/imagesloaded"
	"github.com/ytget/masonry/internal/model"
)

// CardWidget renders one demo card
type CardWidget struct {
	widget.BaseWidget

	card      demo.Card
	showBadge bool

	// UI components
	titleLabel *widget.Label
	textLabel  *widget.Label
	badgeLabel *widget.Label
	image      *canvas.Image
	resizeBtn  *widget.Button
	removeBtn  *widget.Button

	// Callbacks
	onResize func(id model.ItemID)
	onRemove func(id model.ItemID)
}

// NewCardWidget creates a card widget
func NewCardWidget(card demo.Card) *CardWidget {
	cw := &CardWidget{card: card}
	cw.ExtendBaseWidget(cw)
	cw.createUI()
	cw.updateFromCard()
	return cw
}

// ID returns the layout identity of the card
func (cw *CardWidget) ID() model.ItemID {
	return model.ItemID(cw.card.ID)
}

// Card returns the card data
func (cw *CardWidget) Card() demo.Card {
	return cw.card
}

// SetCallbacks sets the action callbacks
func (cw *CardWidget) SetCallbacks(onResize, onRemove func(id model.ItemID)) {
	cw.onResize = onResize
	cw.onRemove = onRemove
}

// SetTag updates the size class shown on the badge
func (cw *CardWidget) SetTag(tag string) {
	cw.card.Tag = tag
	cw.updateFromCard()
}

// SetShowBadge toggles the size class badge
func (cw *CardWidget) SetShowBadge(show bool) {
	cw.showBadge = show
	cw.updateFromCard()
}

// LoadImage reads the card image in the background and reports completion to
// tracker. Cards without an image return immediately.
func (cw *CardWidget) LoadImage(tracker *imagesloaded.Tracker, logger *log.Logger) {
	if cw.card.Image == "" {
		return
	}
	if logger == nil {
		logger = log.Default()
	}
	tracker.Expect(1)
	path := cw.card.Image
	go func() {
		defer tracker.Done()
		res, err := fyne.LoadResourceFromPath(path)
		if err != nil {
			logger.Warn("card image failed to load", "card", cw.card.ID, "path", path, "err", err)
			return
		}
		fyne.Do(func() {
			cw.image.Resource = res
			cw.image.Show()
			cw.image.Refresh()
			cw.Refresh()
		})
	}()
}

// createUI creates the UI components
func (cw *CardWidget) createUI() {
	cw.titleLabel = widget.NewLabel("")
	cw.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	cw.titleLabel.Truncation = fyne.TextTruncateEllipsis

	cw.textLabel = widget.NewLabel("")
	cw.textLabel.Wrapping = fyne.TextWrapWord

	cw.badgeLabel = widget.NewLabel("")
	cw.badgeLabel.TextStyle = fyne.TextStyle{Monospace: true}
	cw.badgeLabel.Importance = widget.LowImportance

	cw.image = canvas.NewImageFromResource(nil)
	cw.image.FillMode = canvas.ImageFillContain
	cw.image.SetMinSize(fyne.NewSize(0, CardImageHeight))
	cw.image.Hide()

	cw.resizeBtn = widget.NewButton(IconResize, func() {
		if cw.onResize != nil {
			cw.onResize(cw.ID())
		}
	})
	cw.resizeBtn.Importance = widget.LowImportance

	cw.removeBtn = widget.NewButton(IconClose, func() {
		if cw.onRemove != nil {
			cw.onRemove(cw.ID())
		}
	})
	cw.removeBtn.Importance = widget.LowImportance
}

// updateFromCard updates UI components from the card data
func (cw *CardWidget) updateFromCard() {
	title := strings.TrimSpace(strings.ReplaceAll(cw.card.Title, "\n", " "))
	if title == "" {
		title = DashPlaceholder
	}
	cw.titleLabel.SetText(title)
	cw.textLabel.SetText(cw.card.Text)

	if cw.showBadge {
		cw.badgeLabel.SetText(badgeText(model.SizeClass(cw.card.Tag)))
		cw.badgeLabel.Show()
	} else {
		cw.badgeLabel.Hide()
	}
	if cw.card.Text == "" {
		cw.textLabel.Hide()
	} else {
		cw.textLabel.Show()
	}
}

// badgeText returns the short span label of a size class
func badgeText(sc model.SizeClass) string {
	return fmt.Sprintf("%d×", sc.Span())
}

// CreateRenderer creates the widget renderer
func (cw *CardWidget) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(theme.Color(ColorNameCard))
	background.CornerRadius = theme.InputRadiusSize()

	actions := container.NewHBox(cw.badgeLabel, cw.resizeBtn, cw.removeBtn)
	header := container.NewBorder(nil, nil, nil, actions, cw.titleLabel)
	body := container.NewVBox(header, cw.image, cw.textLabel)

	return &cardRenderer{card: cw, background: background, body: container.NewPadded(body)}
}

// cardRenderer renders the card widget
type cardRenderer struct {
	card       *CardWidget
	background *canvas.Rectangle
	body       *fyne.Container
}

// Layout arranges the components
func (r *cardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.body.Resize(size)
}

// MinSize returns the minimum size
func (r *cardRenderer) MinSize() fyne.Size {
	size := r.body.MinSize()
	if size.Height < CardMinHeight {
		size.Height = CardMinHeight
	}
	return size
}

// Refresh refreshes the renderer
func (r *cardRenderer) Refresh() {
	r.background.FillColor = theme.Color(ColorNameCard)
	r.background.Refresh()
	r.body.Refresh()
}

// Objects returns the container objects
func (r *cardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.body}
}

// Destroy cleans up the renderer
func (r *cardRenderer) Destroy() {}
