// Package demo supplies card data for the demo window: a TOML item file
// format and a generator for random cards of varying height and width.
package demo
