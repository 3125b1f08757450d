// Package imagesloaded reports when every image of a batch finished loading.
// The callback fires once per Arm; late completions after that are ignored.
package imagesloaded

import "sync"

// Tracker counts outstanding image loads
type Tracker struct {
	mu          sync.Mutex
	armed       bool
	outstanding int
	callbacks   []func()
}

// New creates a disarmed tracker
func New() *Tracker {
	return &Tracker{}
}

// OnLoaded registers fn to run when an armed batch completes
func (t *Tracker) OnLoaded(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.callbacks = append(t.callbacks, fn)
}

// Arm starts a new batch. If nothing is outstanding the batch is complete
// right away.
func (t *Tracker) Arm() {
	t.mu.Lock()
	t.armed = true
	fire := t.outstanding == 0
	t.mu.Unlock()

	if fire {
		t.fire()
	}
}

// Expect adds n pending loads
func (t *Tracker) Expect(n int) {
	if n <= 0 {
		return
	}
	t.mu.Lock()
	t.outstanding += n
	t.mu.Unlock()
}

// Done marks one load as finished, successfully or not
func (t *Tracker) Done() {
	t.mu.Lock()
	if t.outstanding > 0 {
		t.outstanding--
	}
	fire := t.armed && t.outstanding == 0
	t.mu.Unlock()

	if fire {
		t.fire()
	}
}

// Outstanding returns the number of loads still pending
func (t *Tracker) Outstanding() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.outstanding
}

// Armed reports whether a batch is waiting to complete
func (t *Tracker) Armed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.armed
}

// Disarm drops the current batch without firing
func (t *Tracker) Disarm() {
	t.mu.Lock()
	t.armed = false
	t.mu.Unlock()
}

func (t *Tracker) fire() {
	t.mu.Lock()
	if !t.armed {
		t.mu.Unlock()
		return
	}
	t.armed = false
	callbacks := append([]func(){}, t.callbacks...)
	t.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}
