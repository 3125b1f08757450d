package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyFile             = "file"
	KeyLayout           = "layout"
	KeyLanguage         = "language"
	KeySettings         = "settings"
	KeyAddCard          = "add_card"
	KeyShuffle          = "shuffle"
	KeyRemoveRandom     = "remove_random"
	KeyClear            = "clear"
	KeyReorderable      = "reorderable"
	KeySaveOrder        = "save_order"
	KeyOpenOrderFile    = "open_order_file"
	KeyOrderSaved       = "order_saved"
	KeyNoOrderFile      = "no_order_file"
	KeyItemMoved        = "item_moved"
	KeyColumnWidth      = "column_width"
	KeyTransition       = "transition"
	KeyRelayoutOnImages = "relayout_on_images"
	KeyOrderFile        = "order_file"
	KeyDemoItemCount    = "demo_item_count"
	KeySizeBadges       = "size_badges"
	KeyBrowse           = "browse"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyAppliesOnRestart = "applies_on_restart"
	KeyDragging         = "dragging"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Masonry",
		KeyFile:             "File",
		KeyLayout:           "Layout",
		KeyLanguage:         "Language",
		KeySettings:         "Settings",
		KeyAddCard:          "Add card",
		KeyShuffle:          "Shuffle",
		KeyRemoveRandom:     "Remove random",
		KeyClear:            "Clear",
		KeyReorderable:      "Drag to reorder",
		KeySaveOrder:        "Save order",
		KeyOpenOrderFile:    "Open order file",
		KeyOrderSaved:       "Order saved",
		KeyNoOrderFile:      "No order file configured",
		KeyItemMoved:        "Moved %s from %d to %d",
		KeyColumnWidth:      "Column width",
		KeyTransition:       "Transition (ms)",
		KeyRelayoutOnImages: "Relayout when images loaded",
		KeyOrderFile:        "Order file",
		KeyDemoItemCount:    "Generated cards",
		KeySizeBadges:       "Show size badges",
		KeyBrowse:           "Browse",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved",
		KeyAppliesOnRestart: "Column width and transition apply on next start",
		KeyDragging:         "dragging",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Masonry",
		KeyFile:             "Файл",
		KeyLayout:           "Раскладка",
		KeyLanguage:         "Язык",
		KeySettings:         "Настройки",
		KeyAddCard:          "Добавить карточку",
		KeyShuffle:          "Перемешать",
		KeyRemoveRandom:     "Удалить случайную",
		KeyClear:            "Очистить",
		KeyReorderable:      "Перетаскивание",
		KeySaveOrder:        "Сохранить порядок",
		KeyOpenOrderFile:    "Открыть файл порядка",
		KeyOrderSaved:       "Порядок сохранён",
		KeyNoOrderFile:      "Файл порядка не задан",
		KeyItemMoved:        "%s перемещена с %d на %d",
		KeyColumnWidth:      "Ширина колонки",
		KeyTransition:       "Анимация (мс)",
		KeyRelayoutOnImages: "Перестраивать после загрузки изображений",
		KeyOrderFile:        "Файл порядка",
		KeyDemoItemCount:    "Количество карточек",
		KeySizeBadges:       "Показывать размер",
		KeyBrowse:           "Обзор",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки сохранены",
		KeyAppliesOnRestart: "Ширина колонки и анимация применятся после перезапуска",
		KeyDragging:         "перетаскивание",
	}
}
