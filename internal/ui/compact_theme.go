package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ColorNameDragged is the fill of the dragged item's overlay
const ColorNameDragged fyne.ThemeColorName = "masonryDragged"

// ColorNameCard is the card background
const ColorNameCard fyne.ThemeColorName = "masonryCard"

// CompactTheme is a tighter theme for dense grids
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case ColorNameDragged:
		return color.NRGBA{R: 25, G: 118, B: 210, A: 64} // translucent primary
	case ColorNameCard:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 38, G: 38, B: 42, A: 255}
		}
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 25, G: 118, B: 210, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.NRGBA{R: 236, G: 238, B: 241, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 6 // card corners
	}

	return theme.DefaultTheme().Size(name)
}
