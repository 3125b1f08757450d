package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyColumnWidth         = "column_width"
	KeyTransitionMillis    = "transition_duration_ms"
	KeyReorderable         = "reorderable"
	KeyRelayoutOnImages    = "relayout_when_images_loaded"
	KeyOrderFile           = "order_file"
	KeyDemoItemCount       = "demo_item_count"
	KeyShowSizeClassBadges = "show_size_class_badges"
	KeyLanguage            = "language"
)

// Default values
const (
	DefaultColumnWidth         = 300
	DefaultTransition          = 400 * time.Millisecond
	DefaultReorderable         = true
	DefaultRelayoutOnImages    = true
	DefaultDemoItemCount       = 24
	DefaultShowSizeClassBadges = false
	DefaultLanguage            = "en"
)

// Limits applied by the setters
const (
	MinColumnWidth   = 40
	MaxColumnWidth   = 2000
	MaxTransition    = 5 * time.Second
	MinDemoItemCount = 1
	MaxDemoItemCount = 500
)

// Settings manages layout configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetColumnWidth returns the configured column width
func (s *Settings) GetColumnWidth() float32 {
	value := s.app.Preferences().Float(KeyColumnWidth)
	if value <= 0 {
		s.SetColumnWidth(DefaultColumnWidth)
		return DefaultColumnWidth
	}
	return float32(value)
}

// SetColumnWidth sets the column width
func (s *Settings) SetColumnWidth(width float32) {
	if width < MinColumnWidth {
		width = MinColumnWidth
	}
	if width > MaxColumnWidth {
		width = MaxColumnWidth
	}
	s.app.Preferences().SetFloat(KeyColumnWidth, float64(width))
}

// GetTransition returns the move animation duration
func (s *Settings) GetTransition() time.Duration {
	// -1 marks "never set"; 0 is a valid value that disables animation
	ms := s.app.Preferences().IntWithFallback(KeyTransitionMillis, -1)
	if ms < 0 {
		s.SetTransition(DefaultTransition)
		return DefaultTransition
	}
	return time.Duration(ms) * time.Millisecond
}

// SetTransition sets the move animation duration
func (s *Settings) SetTransition(d time.Duration) {
	if d < 0 {
		d = 0
	}
	if d > MaxTransition {
		d = MaxTransition
	}
	s.app.Preferences().SetInt(KeyTransitionMillis, int(d/time.Millisecond))
}

// GetReorderable returns whether users may drag items
func (s *Settings) GetReorderable() bool {
	return s.app.Preferences().BoolWithFallback(KeyReorderable, DefaultReorderable)
}

// SetReorderable sets whether users may drag items
func (s *Settings) SetReorderable(reorderable bool) {
	s.app.Preferences().SetBool(KeyReorderable, reorderable)
}

// GetRelayoutOnImages returns whether the layout reflows once images load
func (s *Settings) GetRelayoutOnImages() bool {
	return s.app.Preferences().BoolWithFallback(KeyRelayoutOnImages, DefaultRelayoutOnImages)
}

// SetRelayoutOnImages sets whether the layout reflows once images load
func (s *Settings) SetRelayoutOnImages(enabled bool) {
	s.app.Preferences().SetBool(KeyRelayoutOnImages, enabled)
}

// GetOrderFile returns the path of the watched order file, empty if none
func (s *Settings) GetOrderFile() string {
	return s.app.Preferences().String(KeyOrderFile)
}

// SetOrderFile sets the path of the watched order file
func (s *Settings) SetOrderFile(path string) {
	s.app.Preferences().SetString(KeyOrderFile, path)
}

// GetDemoItemCount returns how many cards the demo generates
func (s *Settings) GetDemoItemCount() int {
	value := s.app.Preferences().Int(KeyDemoItemCount)
	if value <= 0 {
		s.SetDemoItemCount(DefaultDemoItemCount)
		return DefaultDemoItemCount
	}
	return value
}

// SetDemoItemCount sets how many cards the demo generates
func (s *Settings) SetDemoItemCount(count int) {
	if count < MinDemoItemCount {
		count = MinDemoItemCount
	}
	if count > MaxDemoItemCount {
		count = MaxDemoItemCount
	}
	s.app.Preferences().SetInt(KeyDemoItemCount, count)
}

// GetShowSizeClassBadges returns whether cards show their size class
func (s *Settings) GetShowSizeClassBadges() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowSizeClassBadges, DefaultShowSizeClassBadges)
}

// SetShowSizeClassBadges sets whether cards show their size class
func (s *Settings) SetShowSizeClassBadges(show bool) {
	s.app.Preferences().SetBool(KeyShowSizeClassBadges, show)
}

// GetLanguage returns the interface language code
func (s *Settings) GetLanguage() string {
	return s.app.Preferences().StringWithFallback(KeyLanguage, DefaultLanguage)
}

// SetLanguage sets the interface language code
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetColumnWidthOptions returns the presets offered in the settings dialog
func (s *Settings) GetColumnWidthOptions() []float32 {
	return []float32{160, 220, 300, 400}
}
