package protocol

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/ytget/masonry/internal/errors"
	"github.com/ytget/masonry/internal/model"
	"github.com/ytget/masonry/internal/reconcile"
)

func TestGuard_Accept(t *testing.T) {
	g := NewGuard("L1")

	tests := []struct {
		name     string
		src      Source
		enabled  bool
		expected bool
	}{
		{"same layout", Source{LayoutID: "L1", Item: "A"}, true, true},
		{"same layout with wrapper", Source{LayoutID: "L1", WrapperID: reconcile.FormatWrapperID("L1", 3)}, true, true},
		{"other layout", Source{LayoutID: "L2", Item: "A"}, true, false},
		{"foreign wrapper", Source{LayoutID: "L1", WrapperID: reconcile.FormatWrapperID("L2", 0)}, true, false},
		{"disabled", Source{LayoutID: "L1", Item: "A"}, false, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g.SetEnabled(test.enabled)
			err := g.Accept(test.src)
			if (err == nil) != test.expected {
				t.Errorf("Accept() error = %v, expected accepted=%v", err, test.expected)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidTarget) {
				t.Errorf("Expected INVALID_TARGET, got %v", err)
			}
		})
	}
}

func TestSlotRoundTrip(t *testing.T) {
	tests := []struct {
		current      int
		final        int
		expectedSlot int
	}{
		{0, 2, 3},
		{4, 1, 1},
		{2, 2, 2},
		{-1, 3, 3},
	}

	for _, test := range tests {
		slot := SlotFor(test.current, test.final)
		if slot != test.expectedSlot {
			t.Errorf("SlotFor(%d, %d) = %d, expected %d", test.current, test.final, slot, test.expectedSlot)
		}
		if got := Resolve(test.current, slot); got != test.final {
			t.Errorf("Resolve(%d, %d) = %d, expected %d", test.current, slot, got, test.final)
		}
	}
}

func TestRegistry_NotifyOrderAndRemoval(t *testing.T) {
	r := NewRegistry(log.New(io.Discard))

	var calls []string
	r.Add(ListenerFunc(func(model.ReorderEvent) { calls = append(calls, "first") }))
	remove := r.Add(ListenerFunc(func(model.ReorderEvent) { calls = append(calls, "second") }))
	r.Add(ListenerFunc(func(model.ReorderEvent) { calls = append(calls, "third") }))

	r.Notify(model.ReorderEvent{MovedItem: "A"})
	if strings.Join(calls, ",") != "first,second,third" {
		t.Errorf("Expected registration order, got %v", calls)
	}

	remove()
	remove()
	calls = nil
	r.Notify(model.ReorderEvent{MovedItem: "A"})
	if strings.Join(calls, ",") != "first,third" {
		t.Errorf("Expected removed listener to be skipped, got %v", calls)
	}
	if r.Len() != 2 {
		t.Errorf("Expected 2 listeners, got %d", r.Len())
	}
}

func TestRegistry_PanickingListenerIsolated(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegistry(log.New(&buf))

	reached := false
	r.Add(ListenerFunc(func(model.ReorderEvent) { panic("boom") }))
	r.Add(ListenerFunc(func(model.ReorderEvent) { reached = true }))

	r.Notify(model.ReorderEvent{MovedItem: "A"})
	if !reached {
		t.Error("Listener after a panicking one was not notified")
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("Expected panic to be logged, got %q", buf.String())
	}
}

func TestCollectionAuthority_Reorder(t *testing.T) {
	c := model.NewCollection()
	for _, id := range []model.ItemID{"A", "B", "C", "D", "E"} {
		c.Append(model.Item{ID: id})
	}
	reg := NewRegistry(log.New(io.Discard))
	var events []model.ReorderEvent
	reg.Add(ListenerFunc(func(e model.ReorderEvent) { events = append(events, e) }))

	a := NewCollectionAuthority("L1", c, reg, log.New(io.Discard))

	// A to final index 2 travels forward, so the slot is 3
	event, err := a.Reorder(Request{Item: "A", Slot: SlotFor(0, 2)})
	if err != nil {
		t.Fatalf("Reorder returned error: %v", err)
	}
	if got := c.IDs(); strings.Join(idsToStrings(got), "") != "BCADE" {
		t.Errorf("Expected BCADE, got %v", got)
	}
	if event.NewIndex != 2 || event.MovedItem != "A" || event.LayoutID != "L1" {
		t.Errorf("Unexpected event %+v", event)
	}
	if event.OldIndex() != 0 {
		t.Errorf("Expected old index 0, got %d", event.OldIndex())
	}
	if len(events) != 1 {
		t.Errorf("Expected exactly one notification, got %d", len(events))
	}

	if _, err := a.Reorder(Request{Item: "Z", Slot: 0}); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Expected NOT_FOUND, got %v", err)
	}
}

func idsToStrings(ids []model.ItemID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
