package ui

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/ytget/masonry/internal/config"
	"github.com/ytget/masonry/internal/demo"
	"github.com/ytget/masonry/internal/model"
	"github.com/ytget/masonry/internal/ordersync"
	"github.com/ytget/masonry/internal/platform"
)

// MaxDemoImages caps how many pictures the generator picks from
const MaxDemoImages = 64

// Options are the startup choices made on the command line.
// Zero values fall back to the saved settings.
type Options struct {
	ItemsFile   string
	OrderFile   string
	ImagesDir   string
	Count       int
	ColumnWidth float32
	Seed        int64
}

// RootUI represents the demo window
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	logger       *log.Logger

	masonry   *MasonryLayout
	generator *demo.Generator
	cards     map[model.ItemID]*CardWidget
	syncer    *ordersync.Syncer
	rng       *rand.Rand

	// UI components
	statusLabel  *widget.Label
	reorderCheck *widget.Check
	addBtn       *widget.Button
	shuffleBtn   *widget.Button
	removeBtn    *widget.Button
}

// NewRootUI creates the demo window content
func NewRootUI(window fyne.Window, app fyne.App, opts Options, logger *log.Logger) (*RootUI, error) {
	if logger == nil {
		logger = log.Default()
	}
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		logger:       logger,
		cards:        make(map[model.ItemID]*CardWidget),
		rng:          rand.New(rand.NewSource(seed)),
	}

	if err := ui.setupLayout(opts); err != nil {
		return nil, err
	}

	cards, err := ui.initialCards(opts, seed)
	if err != nil {
		return nil, err
	}
	for _, card := range cards {
		ui.addCard(card)
	}
	logger.Info("demo cards loaded", "count", len(cards))

	orderFile := opts.OrderFile
	if orderFile == "" {
		orderFile = settings.GetOrderFile()
	}
	if orderFile != "" {
		ui.startOrderSync(orderFile)
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	window.SetOnClosed(ui.Close)
	return ui, nil
}

// Masonry returns the layout widget
func (ui *RootUI) Masonry() *MasonryLayout {
	return ui.masonry
}

// Close stops background work
func (ui *RootUI) Close() {
	if ui.syncer != nil {
		if err := ui.syncer.Close(); err != nil {
			ui.logger.Warn("order watcher close failed", "err", err)
		}
	}
	ui.masonry.Destroy()
}

// setupLayout creates and configures the masonry widget
func (ui *RootUI) setupLayout(opts Options) error {
	ui.masonry = NewMasonryLayout(ui.logger)

	width := opts.ColumnWidth
	if width <= 0 {
		width = ui.settings.GetColumnWidth()
	}
	if err := ui.masonry.SetColumnWidth(width); err != nil {
		return err
	}
	if err := ui.masonry.SetTransitionDuration(ui.settings.GetTransition()); err != nil {
		return err
	}
	ui.masonry.SetReorderable(ui.settings.GetReorderable())
	ui.masonry.SetAutomaticLayoutWhenImagesLoaded(ui.settings.GetRelayoutOnImages())
	ui.masonry.OnReorder(ui.onReorder)
	return nil
}

// initialCards loads the item file or generates random cards
func (ui *RootUI) initialCards(opts Options, seed int64) ([]demo.Card, error) {
	var images []string
	if opts.ImagesDir != "" {
		found, err := platform.ListImages(opts.ImagesDir, MaxDemoImages)
		if err != nil {
			ui.logger.Warn("cannot list images", "dir", opts.ImagesDir, "err", err)
		}
		images = found
	}
	ui.generator = demo.NewGenerator(seed, images)

	if opts.ItemsFile != "" {
		return demo.LoadCards(opts.ItemsFile)
	}
	count := opts.Count
	if count <= 0 {
		count = ui.settings.GetDemoItemCount()
	}
	return ui.generator.Generate(count), nil
}

// startOrderSync keeps the layout in step with an order file
func (ui *RootUI) startOrderSync(path string) {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		ui.logger.Warn("cannot create order file directory", "file", path, "err", err)
	}
	ui.syncer = ordersync.NewSyncer(path, ui.masonry, nil, ui.logger)
	if err := ui.syncer.Apply(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		ui.logger.Warn("order file not applied", "file", path, "err", err)
	}
	if err := ui.syncer.Start(); err != nil {
		ui.logger.Error("cannot watch order file", "file", path, "err", err)
	}
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.addBtn = widget.NewButton(IconAdd, ui.onAddCard)
	ui.shuffleBtn = widget.NewButton(IconShuffle, ui.onShuffle)
	ui.removeBtn = widget.NewButton(IconRemove, ui.onRemoveRandom)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.reorderCheck = widget.NewCheck(ui.localization.GetText(KeyReorderable), ui.onReorderableChanged)
	ui.reorderCheck.SetChecked(ui.masonry.Reorderable())

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignTrailing
	ui.updateStatus()

	toolbar := container.NewBorder(nil, nil,
		container.NewHBox(settingsBtn, ui.addBtn, ui.shuffleBtn, ui.removeBtn, ui.reorderCheck),
		nil,
		ui.statusLabel,
	)

	content := container.NewBorder(
		toolbar, // top
		nil,     // bottom
		nil,     // left
		nil,     // right
		container.NewVScroll(container.NewPadded(ui.masonry)),
	)
	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	l := ui.localization

	fileMenu := fyne.NewMenu(l.GetText(KeyFile),
		fyne.NewMenuItem(l.GetText(KeyAddCard), ui.onAddCard),
		fyne.NewMenuItem(l.GetText(KeySaveOrder), ui.onSaveOrder),
		fyne.NewMenuItem(l.GetText(KeyOpenOrderFile), ui.onOpenOrderFile),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(l.GetText(KeySettings), ui.onShowSettings),
	)

	reorderItem := fyne.NewMenuItem(l.GetText(KeyReorderable), func() {
		ui.onReorderableChanged(!ui.masonry.Reorderable())
	})
	reorderItem.Checked = ui.masonry.Reorderable()

	layoutMenu := fyne.NewMenu(l.GetText(KeyLayout),
		fyne.NewMenuItem(l.GetText(KeyShuffle), ui.onShuffle),
		fyne.NewMenuItem(l.GetText(KeyRemoveRandom), ui.onRemoveRandom),
		fyne.NewMenuItem(l.GetText(KeyClear), ui.onClear),
		fyne.NewMenuItemSeparator(),
		reorderItem,
	)

	languageMenu := fyne.NewMenu(l.GetText(KeyLanguage))
	for code, name := range l.GetAvailableLanguages() {
		langCode := code
		item := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		item.Checked = l.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, item)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, layoutMenu, languageMenu))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.reorderCheck.Text = ui.localization.GetText(KeyReorderable)
	ui.reorderCheck.Refresh()
	ui.updateStatus()
	ui.createMenu()
}

// addCard builds the widget for card and places it at the end
func (ui *RootUI) addCard(card demo.Card) {
	cw := NewCardWidget(card)
	cw.SetCallbacks(ui.onCycleSize, ui.onRemoveCard)
	cw.SetShowBadge(ui.settings.GetShowSizeClassBadges())

	ui.cards[cw.ID()] = cw
	ui.masonry.AddTagged(cw.ID(), cw, card.Tag)
	cw.LoadImage(ui.masonry.Images(), ui.logger)
}

// onAddCard inserts a generated card at a random position
func (ui *RootUI) onAddCard() {
	card := ui.generator.Next()
	ui.addCard(card)
	if n := ui.masonry.Count(); n > 1 {
		if err := ui.masonry.MoveItem(card.Item().ID, ui.rng.Intn(n)); err != nil {
			ui.logger.Error("cannot place new card", "card", card.ID, "err", err)
		}
	}
	ui.updateStatus()
}

// onRemoveRandom removes one card
func (ui *RootUI) onRemoveRandom() {
	n := ui.masonry.Count()
	if n == 0 {
		return
	}
	item, err := ui.masonry.ItemAt(ui.rng.Intn(n))
	if err != nil {
		ui.logger.Error("cannot pick card", "err", err)
		return
	}
	ui.onRemoveCard(item.ID)
}

// onRemoveCard removes a card by id
func (ui *RootUI) onRemoveCard(id model.ItemID) {
	if ui.masonry.Remove(id) {
		delete(ui.cards, id)
		ui.logger.Debug("card removed", "card", id)
	}
	ui.updateStatus()
}

// onClear removes every card
func (ui *RootUI) onClear() {
	ui.masonry.RemoveAll()
	ui.cards = make(map[model.ItemID]*CardWidget)
	ui.updateStatus()
}

// onShuffle applies a random permutation through the same path an order
// file edit takes
func (ui *RootUI) onShuffle() {
	ids := ui.masonry.ItemIDs()
	ui.rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	if err := ui.masonry.SyncOrder(ids); err != nil {
		ui.logger.Error("shuffle failed", "err", err)
		return
	}
	ui.persistOrder()
}

// onCycleSize moves a card to the next size class
func (ui *RootUI) onCycleSize(id model.ItemID) {
	tag, ok := ui.masonry.Tag(id)
	if !ok {
		return
	}
	next := nextSizeClass(model.SizeClass(tag))
	if err := ui.masonry.SetTag(id, string(next)); err != nil {
		ui.logger.Error("cannot resize card", "card", id, "err", err)
		return
	}
	if cw, ok := ui.cards[id]; ok {
		cw.SetTag(string(next))
	}
}

// nextSizeClass cycles through the selectable size classes
func nextSizeClass(sc model.SizeClass) model.SizeClass {
	options := model.SizeClassOptions()
	for i, o := range options {
		if o == sc {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

// onReorderableChanged toggles user reordering
func (ui *RootUI) onReorderableChanged(reorderable bool) {
	if reorderable == ui.masonry.Reorderable() {
		return
	}
	ui.masonry.SetReorderable(reorderable)
	ui.settings.SetReorderable(reorderable)
	if ui.reorderCheck != nil && ui.reorderCheck.Checked != reorderable {
		ui.reorderCheck.SetChecked(reorderable)
	}
	ui.createMenu()
}

// onReorder reacts to a committed drag
func (ui *RootUI) onReorder(event model.ReorderEvent) {
	title := string(event.MovedItem)
	if cw, ok := ui.cards[event.MovedItem]; ok {
		title = cw.Card().Title
	}
	ui.logger.Info("card moved", "card", event.MovedItem, "from", event.OldIndex(), "to", event.NewIndex)
	ui.showToastNotification(fmt.Sprintf(ui.localization.GetText(KeyItemMoved), title, event.OldIndex()+1, event.NewIndex+1))
	ui.persistOrder()
}

// onSaveOrder writes the order file on demand
func (ui *RootUI) onSaveOrder() {
	if ui.syncer == nil {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyNoOrderFile)), ui.window.Canvas())
		return
	}
	if ui.persistOrder() {
		ui.showToastNotification(ui.localization.GetText(KeyOrderSaved))
	}
}

// onOpenOrderFile shows the order file in the system editor
func (ui *RootUI) onOpenOrderFile() {
	if ui.syncer == nil || !ui.persistOrder() {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyNoOrderFile)), ui.window.Canvas())
		return
	}
	if err := platform.OpenFileWithDefaultApp(ui.syncer.Path()); err != nil {
		ui.logger.Error("cannot open order file", "file", ui.syncer.Path(), "err", err)
	}
}

// persistOrder writes the committed order when an order file is in use
func (ui *RootUI) persistOrder() bool {
	if ui.syncer == nil {
		return false
	}
	if err := ui.syncer.Persist(ui.masonry.ItemIDs()); err != nil {
		ui.logger.Error("cannot save order", "file", ui.syncer.Path(), "err", err)
		return false
	}
	return true
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies the settings that can change at runtime
func (ui *RootUI) onSettingsSaved() {
	ui.onReorderableChanged(ui.settings.GetReorderable())
	ui.masonry.SetAutomaticLayoutWhenImagesLoaded(ui.settings.GetRelayoutOnImages())

	show := ui.settings.GetShowSizeClassBadges()
	for _, cw := range ui.cards {
		cw.SetShowBadge(show)
	}
	ui.masonry.RequestLayout()
}

// updateStatus refreshes the item count label
func (ui *RootUI) updateStatus() {
	if ui.statusLabel == nil {
		return
	}
	text := fmt.Sprintf(CountLabelFormat, ui.masonry.Count())
	if ui.masonry.DragState().IsActive() {
		text += MiddleDotSeparator + ui.localization.GetText(KeyDragging)
	}
	ui.statusLabel.SetText(text)
}

// showToastNotification shows a short in-app message in the top-right corner
func (ui *RootUI) showToastNotification(message string) {
	messageLabel := widget.NewLabel(message)
	messageLabel.Wrapping = fyne.TextWrapWord

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewBorder(nil, nil, nil, closeBtn, messageLabel)
	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPopup.Resize(toastSize)
	toastPopup.ShowAtPosition(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))

	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(toastPopup.Hide)
	}()
}
