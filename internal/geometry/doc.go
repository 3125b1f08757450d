// Package geometry positions wrappers in columns. Place is the pure packing
// step; Columns wraps it as a fyne.Layout with animated moves and implements
// Engine, the contract the masonry widget drives.
package geometry
