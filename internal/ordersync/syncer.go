package ordersync

import (
	"sync"

	"fyne.io/fyne/v2"
	"github.com/charmbracelet/log"

	"github.com/ytget/masonry/internal/model"
	"github.com/ytget/masonry/internal/protocol"
)

// Target is the layout side of the sync
type Target interface {
	protocol.Sink
	ItemIDs() []model.ItemID
}

// Syncer pushes order file edits into a Target and writes committed orders back
type Syncer struct {
	path    string
	target  Target
	deliver func(func())
	logger  *log.Logger

	mu      sync.Mutex
	watcher *Watcher
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewSyncer creates a syncer for path. deliver runs work on the UI
// goroutine; nil uses fyne.Do.
func NewSyncer(path string, target Target, deliver func(func()), logger *log.Logger) *Syncer {
	if deliver == nil {
		deliver = fyne.Do
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Syncer{path: path, target: target, deliver: deliver, logger: logger}
}

// Path returns the order file path
func (s *Syncer) Path() string {
	return s.path
}

// Apply reads the order file and hands it to the target
func (s *Syncer) Apply() error {
	desired, err := ReadOrder(s.path)
	if err != nil {
		return err
	}

	s.deliver(func() {
		current := s.target.ItemIDs()
		order := Normalize(desired, current)
		if sameOrder(order, current) {
			return
		}
		if err := s.target.SyncOrder(order); err != nil {
			s.logger.Error("order sync failed", "file", s.path, "err", err)
			return
		}
		s.logger.Info("order synced from file", "file", s.path, "items", len(order))
	})
	return nil
}

// Persist writes ids to the order file
func (s *Syncer) Persist(ids []model.ItemID) error {
	if err := WriteOrder(s.path, ids); err != nil {
		return err
	}
	s.logger.Debug("order persisted", "file", s.path, "items", len(ids))
	return nil
}

// Start watches the order file until Close
func (s *Syncer) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watcher != nil {
		return nil
	}

	w, err := NewWatcher(s.path, s.logger)
	if err != nil {
		return err
	}
	s.watcher = w
	s.done = make(chan struct{})

	s.wg.Add(1)
	go s.loop(w, s.done)
	return nil
}

// Close stops watching
func (s *Syncer) Close() error {
	s.mu.Lock()
	w := s.watcher
	s.watcher = nil
	if w != nil {
		close(s.done)
	}
	s.mu.Unlock()

	if w == nil {
		return nil
	}
	err := w.Close()
	s.wg.Wait()
	return err
}

func (s *Syncer) loop(w *Watcher, done <-chan struct{}) {
	defer s.wg.Done()
	for {
		select {
		case <-done:
			return
		case <-w.Changes():
			if err := s.Apply(); err != nil {
				s.logger.Warn("order file unreadable", "file", s.path, "err", err)
			}
		}
	}
}

func sameOrder(a, b []model.ItemID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
