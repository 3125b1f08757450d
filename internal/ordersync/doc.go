// Package ordersync keeps a layout's order in step with a TOML order file.
// Edits to the file are pushed into the layout through protocol.Sink and
// committed drags are written back, so the file acts as an external
// authoritative order.
package ordersync
