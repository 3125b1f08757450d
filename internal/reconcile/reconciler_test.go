package reconcile

import (
	"fmt"
	"io"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/ytget/masonry/internal/errors"
	"github.com/ytget/masonry/internal/model"
)

// recordingSurface keeps a plain slice as the container and counts calls
type recordingSurface struct {
	container []*Wrapper
	created   int
	attached  int
	detached  int
	destroyed int
	updated   int
	failOn    model.ItemID
}

func (s *recordingSurface) Create(w *Wrapper) error {
	if w.Item == s.failOn {
		return fmt.Errorf("cannot render %s", w.Item)
	}
	s.created++
	return nil
}

func (s *recordingSurface) Attach(w *Wrapper, index int) {
	s.attached++
	s.container = append(s.container, nil)
	copy(s.container[index+1:], s.container[index:])
	s.container[index] = w
}

func (s *recordingSurface) Detach(w *Wrapper) {
	s.detached++
	for i, c := range s.container {
		if c == w {
			s.container = append(s.container[:i], s.container[i+1:]...)
			return
		}
	}
}

func (s *recordingSurface) Destroy(w *Wrapper) { s.destroyed++ }
func (s *recordingSurface) Update(w *Wrapper)  { s.updated++ }

func (s *recordingSurface) order() []model.ItemID {
	ids := make([]model.ItemID, len(s.container))
	for i, w := range s.container {
		ids[i] = w.Item
	}
	return ids
}

func (s *recordingSurface) reset() {
	s.created, s.attached, s.detached, s.destroyed, s.updated = 0, 0, 0, 0, 0
}

func items(ids ...model.ItemID) []model.Item {
	out := make([]model.Item, len(ids))
	for i, id := range ids {
		out[i] = model.Item{ID: id}
	}
	return out
}

func newTestReconciler(t *testing.T, initial ...model.ItemID) (*Reconciler, *recordingSurface) {
	t.Helper()
	s := &recordingSurface{}
	r := NewReconciler("layout-1", s, log.New(io.Discard))
	if err := r.Reconcile(items(initial...), nil); err != nil {
		t.Fatalf("initial reconcile failed: %v", err)
	}
	s.reset()
	return r, s
}

func TestReconcile_InitialRender(t *testing.T) {
	s := &recordingSurface{}
	r := NewReconciler("layout-1", s, log.New(io.Discard))

	if err := r.Reconcile(items("A", "B", "C"), nil); err != nil {
		t.Fatalf("Reconcile returned error: %v", err)
	}
	if !reflect.DeepEqual(s.order(), []model.ItemID{"A", "B", "C"}) {
		t.Errorf("Expected container A,B,C, got %v", s.order())
	}
	if s.created != 3 || s.attached != 3 {
		t.Errorf("Expected 3 creates and 3 attaches, got %d and %d", s.created, s.attached)
	}
	w, _ := r.Wrapper("C")
	if w.ID != "masonry-layout-1-2" {
		t.Errorf("Expected third wrapper id masonry-layout-1-2, got %s", w.ID)
	}
}

func TestReconcile_Minimality(t *testing.T) {
	tests := []struct {
		name            string
		target          []model.ItemID
		expectedTouched int // wrappers detached and reattached
	}{
		{"unchanged", []model.ItemID{"A", "B", "C", "D", "E"}, 0},
		{"swap tail pair", []model.ItemID{"A", "B", "C", "E", "D"}, 2},
		{"move head forward", []model.ItemID{"B", "C", "A", "D", "E"}, 3},
		{"move one step", []model.ItemID{"A", "C", "B", "D", "E"}, 2},
		{"full reverse", []model.ItemID{"E", "D", "C", "B", "A"}, 5},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r, s := newTestReconciler(t, "A", "B", "C", "D", "E")
			before := make(map[model.ItemID]*Wrapper)
			for _, id := range []model.ItemID{"A", "B", "C", "D", "E"} {
				before[id], _ = r.Wrapper(id)
			}

			if err := r.Reconcile(items(test.target...), nil); err != nil {
				t.Fatalf("Reconcile returned error: %v", err)
			}
			if !reflect.DeepEqual(s.order(), test.target) {
				t.Errorf("Expected container %v, got %v", test.target, s.order())
			}
			if s.detached != test.expectedTouched || s.attached != test.expectedTouched {
				t.Errorf("Expected %d detach/attach, got %d/%d", test.expectedTouched, s.detached, s.attached)
			}
			if s.created != 0 || s.destroyed != 0 {
				t.Errorf("Reorder must reuse wrappers, got %d creates and %d destroys", s.created, s.destroyed)
			}
			for id, w := range before {
				if now, _ := r.Wrapper(id); now != w {
					t.Errorf("Wrapper for %s was replaced", id)
				}
			}
		})
	}
}

func TestReconcile_AddRemove(t *testing.T) {
	r, s := newTestReconciler(t, "A", "B", "C")

	if err := r.Reconcile(items("A", "X", "C"), nil); err != nil {
		t.Fatalf("Reconcile returned error: %v", err)
	}
	if !reflect.DeepEqual(s.order(), []model.ItemID{"A", "X", "C"}) {
		t.Errorf("Expected container A,X,C, got %v", s.order())
	}
	if s.created != 1 || s.destroyed != 1 {
		t.Errorf("Expected 1 create and 1 destroy, got %d and %d", s.created, s.destroyed)
	}
	if _, ok := r.Wrapper("B"); ok {
		t.Error("Wrapper of removed item should be gone")
	}
}

func TestReconcile_InvariantViolation(t *testing.T) {
	tests := []struct {
		name     string
		target   []model.ItemID
		isMember func(model.ItemID) bool
	}{
		{"duplicate identity", []model.ItemID{"A", "B", "A"}, nil},
		{"unknown identity", []model.ItemID{"A", "Z"}, func(id model.ItemID) bool { return id != "Z" }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r, s := newTestReconciler(t, "A", "B", "C")
			err := r.Reconcile(items(test.target...), test.isMember)
			if !errors.Is(err, errors.ErrCodeInvariantViolation) {
				t.Errorf("Expected INVARIANT_VIOLATION, got %v", err)
			}
			if !reflect.DeepEqual(r.Rendered(), []model.ItemID{"A", "B", "C"}) {
				t.Errorf("Rendered state changed after aborted patch: %v", r.Rendered())
			}
			if s.attached+s.detached+s.created+s.destroyed != 0 {
				t.Error("Aborted patch touched the surface")
			}
		})
	}
}

func TestReconcile_CreateFailureRollsBack(t *testing.T) {
	r, s := newTestReconciler(t, "A")
	s.failOn = "Y"

	err := r.Reconcile(items("A", "X", "Y"), nil)
	if err == nil {
		t.Fatal("Expected error from failing surface")
	}
	if !reflect.DeepEqual(r.Rendered(), []model.ItemID{"A"}) {
		t.Errorf("Rendered state changed: %v", r.Rendered())
	}
	if s.destroyed != 1 {
		t.Errorf("Expected the already created wrapper to be destroyed, got %d", s.destroyed)
	}
}

func TestReconcile_TagUpdate(t *testing.T) {
	r, s := newTestReconciler(t, "A", "B")

	target := []model.Item{{ID: "A"}, {ID: "B", Tag: string(model.SizeClassDoubleWide)}}
	if err := r.Reconcile(target, nil); err != nil {
		t.Fatalf("Reconcile returned error: %v", err)
	}
	if s.updated != 1 || s.attached != 0 {
		t.Errorf("Expected a single update and no attach, got %d updates, %d attaches", s.updated, s.attached)
	}
	w, _ := r.Wrapper("B")
	if !w.SizeClass().IsWide() {
		t.Error("Wrapper tag should be wide after update")
	}
}

func TestReconciler_DraggedAndForget(t *testing.T) {
	r, s := newTestReconciler(t, "A", "B")

	r.SetDragged("A", true)
	r.SetDragged("A", true)
	if s.updated != 1 {
		t.Errorf("Expected one update for the dragged marker, got %d", s.updated)
	}

	r.Forget("A")
	if !reflect.DeepEqual(s.order(), []model.ItemID{"B"}) {
		t.Errorf("Expected container B, got %v", s.order())
	}
	if !reflect.DeepEqual(r.Rendered(), []model.ItemID{"B"}) {
		t.Errorf("Expected rendered B, got %v", r.Rendered())
	}
}

func TestWrapperBelongsTo(t *testing.T) {
	tests := []struct {
		id       string
		layout   string
		expected bool
	}{
		{FormatWrapperID("abc-1", 4), "abc-1", true},
		{FormatWrapperID("abc-1", 4), "abc-2", false},
		{"masonry-abc-1-", "abc-1", false},
		{"masonry-abc-1-x", "abc-1", false},
		{"other-abc-1-3", "abc-1", false},
		{FormatWrapperID("", 0), "", false},
	}

	for _, test := range tests {
		if result := WrapperBelongsTo(test.id, test.layout); result != test.expected {
			t.Errorf("WrapperBelongsTo(%q, %q) = %v, expected %v", test.id, test.layout, result, test.expected)
		}
	}
}

func TestReconciler_ItemForWrapper(t *testing.T) {
	r, _ := newTestReconciler(t, "A", "B")
	w, _ := r.Wrapper("B")

	id, ok := r.ItemForWrapper(w.ID)
	if !ok || id != "B" {
		t.Errorf("Expected B, got %s (found=%v)", id, ok)
	}
	if _, ok := r.ItemForWrapper("masonry-layout-1-99"); ok {
		t.Error("Unknown wrapper id should not resolve")
	}
}
