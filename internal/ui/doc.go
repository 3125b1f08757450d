// Package ui contains the Fyne widgets of the masonry layout and its demo window.
//
// MasonryLayout composes the item collection, the drag controller, the view
// reconciler and the column engine. Content objects stay owned by the caller
// and are looked up by item id. The demo window wires cards, settings and the
// order file around one layout. All UI strings are localized via Localization.
package ui
