package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconAdd      = "+"
	IconShuffle  = "⤮"
	IconRemove   = "−"
	IconClose    = "×"
	IconResize   = "⇔"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	CountLabelFormat   = "%d items"
)

// Grid sizing
const (
	ItemGap            float32 = 8
	DragStartDistance  float32 = 6
	DraggedStrokeWidth float32 = 2

	CardMinHeight   float32 = 60
	CardImageHeight float32 = 140
)

// Window sizing
const (
	WindowWidth  float32 = 1000
	WindowHeight float32 = 700
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 100
	ToastMargin   float32 = 20
	ToastAutoHide         = 3 * time.Second
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 420
)
