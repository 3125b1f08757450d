// Package relayout coalesces relayout requests into a single deferred pass.
// Any number of requests made before the pass runs result in one pass that
// reads the latest state.
package relayout

import (
	"sync"

	"fyne.io/fyne/v2"
)

// Deferrer schedules fn to run later on the UI goroutine
type Deferrer func(fn func())

// Coalescer owns the "relayout pending" flag of one layout
type Coalescer struct {
	mu      sync.Mutex
	pending bool
	pass    func()
	deferFn Deferrer
	passes  int
}

// New creates a coalescer running pass. A nil deferrer uses fyne.Do.
func New(pass func(), deferrer Deferrer) *Coalescer {
	if deferrer == nil {
		deferrer = fyne.Do
	}
	return &Coalescer{pass: pass, deferFn: deferrer}
}

// Request marks a relayout as needed. Only the first request before a pass
// schedules it.
func (c *Coalescer) Request() {
	c.mu.Lock()
	if c.pending {
		c.mu.Unlock()
		return
	}
	c.pending = true
	c.mu.Unlock()

	c.deferFn(c.run)
}

// Pending reports whether a pass is scheduled but has not run
func (c *Coalescer) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Flush runs a pending pass immediately
func (c *Coalescer) Flush() {
	c.run()
}

// Passes returns how many passes have run
func (c *Coalescer) Passes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.passes
}

func (c *Coalescer) run() {
	c.mu.Lock()
	if !c.pending {
		c.mu.Unlock()
		return
	}
	c.pending = false
	c.passes++
	c.mu.Unlock()

	c.pass()
}
