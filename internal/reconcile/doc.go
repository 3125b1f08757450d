// Package reconcile keeps the rendered wrapper list of a layout in step with
// the model order. It computes a patch that trims the common prefix and suffix
// of the two orders and only detaches and reattaches the window between them.
// Wrappers of items that persist are reused; wrappers of items that left are
// destroyed. The rendering side is abstracted behind Surface.
package reconcile
