package devices

import (
	"sync"
	"testing"
	"time"
)

// fakeStore is an in-memory ProfileStore with optional gating so tests can
// control when the background load resolves.
type fakeStore struct {
	mu    sync.Mutex
	saved map[string]ControllerType
	gate  chan struct{}

	saveCalls int
}

func newFakeStore(saved map[string]ControllerType) *fakeStore {
	if saved == nil {
		saved = map[string]ControllerType{}
	}
	return &fakeStore{saved: saved}
}

func (s *fakeStore) LoadAll() (map[string]ControllerType, error) {
	if s.gate != nil {
		<-s.gate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result := make(map[string]ControllerType, len(s.saved))
	for id, t := range s.saved {
		result[id] = t
	}
	return result, nil
}

func (s *fakeStore) Save(id string, t ControllerType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved[id] = t
	s.saveCalls++
	return nil
}

func TestRegistry_AddIsIdempotentByID(t *testing.T) {
	r := NewRegistry(nil)

	r.Add(Controller{ID: "A", Name: "first", Type: ProController})
	r.Add(Controller{ID: "A", Name: "second", Type: JoyConPair})

	list := r.Snapshot()
	if len(list) != 1 {
		t.Fatalf("expected 1 entry after duplicate add, got %d", len(list))
	}
	if list[0].Name != "first" {
		t.Errorf("duplicate add replaced the original entry: %+v", list[0])
	}
}

func TestRegistry_RemoveMissingIsNoop(t *testing.T) {
	r := NewRegistry(nil)
	r.Add(Controller{ID: "A"})

	r.Remove("B")

	if got := len(r.Snapshot()); got != 1 {
		t.Errorf("expected list unchanged, got %d entries", got)
	}
}

func TestRegistry_Remove(t *testing.T) {
	r := NewRegistry(nil)
	r.Add(Controller{ID: "A"})
	r.Add(Controller{ID: "B"})

	r.Remove("A")

	list := r.Snapshot()
	if len(list) != 1 || list[0].ID != "B" {
		t.Errorf("expected only B to remain, got %+v", list)
	}
}

func TestRegistry_UpdateTypeMissingIsNoop(t *testing.T) {
	store := newFakeStore(nil)
	r := NewRegistry(store)
	r.Add(Controller{ID: "A", Type: ProController})
	r.Wait()

	r.UpdateType("B", Handheld)
	r.Wait()

	if got := r.Snapshot()[0].Type; got != ProController {
		t.Errorf("expected A untouched, got type %v", got)
	}
	if store.saveCalls != 0 {
		t.Errorf("expected no persistence for missing identity, got %d saves", store.saveCalls)
	}
}

func TestRegistry_UpdateTypePersists(t *testing.T) {
	store := newFakeStore(nil)
	r := NewRegistry(store)
	r.Add(Controller{ID: "A", Type: ProController})
	r.Wait()

	r.UpdateType("A", JoyConRight)
	r.Wait()

	if got := r.Snapshot()[0].Type; got != JoyConRight {
		t.Errorf("expected type %v, got %v", JoyConRight, got)
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	if store.saved["A"] != JoyConRight {
		t.Errorf("expected type persisted, store has %v", store.saved["A"])
	}
}

func TestRegistry_SavedTypeAppliedToMatchingEntryOnly(t *testing.T) {
	store := newFakeStore(map[string]ControllerType{"A": JoyConLeft})
	r := NewRegistry(store)

	r.Add(Controller{ID: "A", Type: ProController})
	r.Add(Controller{ID: "B", Type: ProController})
	r.Wait()

	a, _ := r.Get("A")
	b, _ := r.Get("B")
	if a.Type != JoyConLeft {
		t.Errorf("expected saved type applied to A, got %v", a.Type)
	}
	if b.Type != ProController {
		t.Errorf("expected B untouched, got %v", b.Type)
	}
}

func TestRegistry_ObserverSeesInsertThenSavedType(t *testing.T) {
	store := newFakeStore(map[string]ControllerType{"A": JoyConLeft})
	store.gate = make(chan struct{})
	r := NewRegistry(store)

	sub := r.Subscribe()
	defer sub.Cancel()

	// initial snapshot is empty
	if snap := <-sub.C; len(snap) != 0 {
		t.Fatalf("expected empty initial snapshot, got %+v", snap)
	}

	r.Add(Controller{ID: "A", Type: ProController})

	snap := <-sub.C
	if len(snap) != 1 || snap[0].Type != ProController {
		t.Fatalf("expected post-insert snapshot [A:pro], got %+v", snap)
	}

	// let the background load resolve; a second update follows
	close(store.gate)

	select {
	case snap = <-sub.C:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for saved-type snapshot")
	}
	if len(snap) != 1 || snap[0].Type != JoyConLeft {
		t.Errorf("expected snapshot [A:joycon-left], got %+v", snap)
	}
}

func TestRegistry_UpdateSlot(t *testing.T) {
	r := NewRegistry(nil)
	r.Add(Controller{ID: "A"})

	r.UpdateSlot("A", 2)

	c, _ := r.Get("A")
	if c.Slot == nil || *c.Slot != 2 {
		t.Errorf("expected slot 2, got %v", c.Slot)
	}

	// missing identity is a no-op
	r.UpdateSlot("B", 3)
	if got := len(r.Snapshot()); got != 1 {
		t.Errorf("expected list unchanged, got %d entries", got)
	}
}

func TestRegistry_SubscriptionCancelIsIdempotent(t *testing.T) {
	r := NewRegistry(nil)
	sub := r.Subscribe()

	sub.Cancel()
	sub.Cancel()

	// publishing after cancel must not panic
	r.Add(Controller{ID: "A"})
}

func TestRegistry_SlowObserverKeepsLatestSnapshot(t *testing.T) {
	r := NewRegistry(nil)
	sub := r.Subscribe()
	defer sub.Cancel()

	// overflow the subscription buffer without draining it
	for i := 0; i < snapshotBuffer*2; i++ {
		r.Add(Controller{ID: string(rune('a' + i))})
	}

	var last []Controller
	for {
		select {
		case snap := <-sub.C:
			last = snap
			continue
		default:
		}
		break
	}

	if len(last) != snapshotBuffer*2 {
		t.Errorf("expected final snapshot with %d entries, got %d", snapshotBuffer*2, len(last))
	}
}
