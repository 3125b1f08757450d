package ui

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/masonry/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	columnWidthSelect *widget.Select
	transitionEntry   *widget.Entry
	reorderableCheck  *widget.Check
	imagesCheck       *widget.Check
	badgesCheck       *widget.Check
	demoCountEntry    *widget.Entry
	orderFileEntry    *widget.Entry
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings were stored.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	widthOptions := []string{}
	for _, w := range sd.settings.GetColumnWidthOptions() {
		widthOptions = append(widthOptions, formatWidth(w))
	}
	sd.columnWidthSelect = widget.NewSelect(widthOptions, nil)

	sd.transitionEntry = widget.NewEntry()
	sd.transitionEntry.SetPlaceHolder("0-5000")

	sd.reorderableCheck = widget.NewCheck(l.GetText(KeyReorderable), nil)
	sd.imagesCheck = widget.NewCheck(l.GetText(KeyRelayoutOnImages), nil)
	sd.badgesCheck = widget.NewCheck(l.GetText(KeySizeBadges), nil)

	sd.demoCountEntry = widget.NewEntry()
	sd.demoCountEntry.SetPlaceHolder(fmt.Sprintf("%d-%d", config.MinDemoItemCount, config.MaxDemoItemCount))

	sd.orderFileEntry = widget.NewEntry()
	sd.orderFileEntry.SetPlaceHolder("order.toml")
	browseBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseOrderFile)
	orderFileRow := container.NewBorder(nil, nil, nil, browseBtn, sd.orderFileEntry)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyColumnWidth)+":"),
		sd.columnWidthSelect,

		widget.NewLabel(l.GetText(KeyTransition)+":"),
		sd.transitionEntry,

		widget.NewSeparator(),
		sd.reorderableCheck,
		sd.imagesCheck,
		sd.badgesCheck,
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyDemoItemCount)+":"),
		sd.demoCountEntry,

		widget.NewLabel(l.GetText(KeyOrderFile)+":"),
		orderFileRow,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.columnWidthSelect.SetSelected(formatWidth(sd.settings.GetColumnWidth()))
	sd.transitionEntry.SetText(strconv.FormatInt(sd.settings.GetTransition().Milliseconds(), 10))
	sd.reorderableCheck.SetChecked(sd.settings.GetReorderable())
	sd.imagesCheck.SetChecked(sd.settings.GetRelayoutOnImages())
	sd.badgesCheck.SetChecked(sd.settings.GetShowSizeClassBadges())
	sd.demoCountEntry.SetText(strconv.Itoa(sd.settings.GetDemoItemCount()))
	sd.orderFileEntry.SetText(sd.settings.GetOrderFile())
}

// onBrowseOrderFile picks the order file location
func (sd *SettingsDialog) onBrowseOrderFile() {
	dialog.ShowFileSave(func(uc fyne.URIWriteCloser, err error) {
		if err != nil || uc == nil {
			return
		}
		sd.orderFileEntry.SetText(uc.URI().Path())
		uc.Close()
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	restartNeeded := false

	if sd.columnWidthSelect.Selected != "" {
		if w, err := strconv.ParseFloat(sd.columnWidthSelect.Selected, 32); err == nil {
			if float32(w) != sd.settings.GetColumnWidth() {
				restartNeeded = true
			}
			sd.settings.SetColumnWidth(float32(w))
		}
	}

	if sd.transitionEntry.Text != "" {
		if ms, err := strconv.Atoi(sd.transitionEntry.Text); err == nil {
			d := time.Duration(ms) * time.Millisecond
			if d != sd.settings.GetTransition() {
				restartNeeded = true
			}
			sd.settings.SetTransition(d)
		}
	}

	sd.settings.SetReorderable(sd.reorderableCheck.Checked)
	sd.settings.SetRelayoutOnImages(sd.imagesCheck.Checked)
	sd.settings.SetShowSizeClassBadges(sd.badgesCheck.Checked)

	if sd.demoCountEntry.Text != "" {
		if n, err := strconv.Atoi(sd.demoCountEntry.Text); err == nil {
			sd.settings.SetDemoItemCount(n)
		}
	}
	sd.settings.SetOrderFile(sd.orderFileEntry.Text)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	message := sd.localization.GetText(KeySettingsSaved)
	if restartNeeded {
		message += "\n" + sd.localization.GetText(KeyAppliesOnRestart)
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), message, sd.window)
}

func formatWidth(w float32) string {
	return strconv.FormatFloat(float64(w), 'f', -1, 32)
}
