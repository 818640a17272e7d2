package devices

import (
	"sync"

	"github.com/mobile-next/emubridge/utils"
)

// snapshotBuffer is the per-subscriber channel depth. A slow observer loses
// intermediate snapshots, never the latest one.
const snapshotBuffer = 16

// Registry maintains the observable set of currently connected controllers.
// Observers always receive fully-materialized snapshots; mutations that
// involve the profile store run on background goroutines and publish their
// result when it arrives.
type Registry struct {
	mu          sync.RWMutex
	store       ProfileStore
	controllers []Controller
	subs        map[*Subscription]struct{}
	pending     sync.WaitGroup
}

// Subscription is one observer's view of the registry. Receive snapshots
// from C; call Cancel when done.
type Subscription struct {
	C <-chan []Controller

	ch       chan []Controller
	registry *Registry
	once     sync.Once
}

// Cancel detaches the subscription and closes its channel.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		r := s.registry
		r.mu.Lock()
		delete(r.subs, s)
		r.mu.Unlock()
		close(s.ch)
	})
}

// NewRegistry creates a registry. The store may be nil, in which case
// controller types are not persisted across runs.
func NewRegistry(store ProfileStore) *Registry {
	return &Registry{
		store: store,
		subs:  make(map[*Subscription]struct{}),
	}
}

// Subscribe registers an observer. The current snapshot is delivered
// immediately so new observers do not start blind.
func (r *Registry) Subscribe() *Subscription {
	sub := &Subscription{
		ch:       make(chan []Controller, snapshotBuffer),
		registry: r,
	}
	sub.C = sub.ch

	r.mu.Lock()
	r.subs[sub] = struct{}{}
	sub.ch <- r.snapshotLocked()
	r.mu.Unlock()

	return sub
}

// Add inserts a controller. Idempotent by ID: a second Add with the same
// identity is a no-op. After insertion the saved type for this identity is
// looked up in the background and applied when it arrives.
func (r *Registry) Add(c Controller) {
	r.mu.Lock()
	for _, existing := range r.controllers {
		if existing.ID == c.ID {
			r.mu.Unlock()
			return
		}
	}
	r.controllers = append(r.controllers, c)
	r.publishLocked()
	r.mu.Unlock()

	if r.store == nil {
		return
	}

	r.pending.Add(1)
	go func() {
		defer r.pending.Done()
		r.applySavedType(c.ID)
	}()
}

// Remove deletes all entries matching id. No-op if none match.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.controllers[:0]
	for _, c := range r.controllers {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(r.controllers) {
		return
	}

	r.controllers = kept
	r.publishLocked()
}

// UpdateType replaces the configured type for the entry matching id,
// publishes the new snapshot, then persists the type in the background.
// No-op if the identity is not present.
func (r *Registry) UpdateType(id string, t ControllerType) {
	if !r.setType(id, t) {
		return
	}

	if r.store == nil {
		return
	}

	r.pending.Add(1)
	go func() {
		defer r.pending.Done()
		if err := r.store.Save(id, t); err != nil {
			utils.Verbose("failed to persist type for controller %s: %v", id, err)
		}
	}()
}

// UpdateSlot replaces the device slot for the entry matching id. No-op if
// the identity is not present.
func (r *Registry) UpdateSlot(id string, slot int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.controllers {
		if r.controllers[i].ID == id {
			s := slot
			r.controllers[i].Slot = &s
			r.publishLocked()
			return
		}
	}
}

// Get returns the entry matching id.
func (r *Registry) Get(id string) (Controller, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.controllers {
		if c.ID == id {
			return c, true
		}
	}
	return Controller{}, false
}

// Snapshot returns a copy of the current controller list.
func (r *Registry) Snapshot() []Controller {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked()
}

// Wait blocks until all in-flight background persistence operations have
// completed and their results are applied.
func (r *Registry) Wait() {
	r.pending.Wait()
}

// Close waits for pending persistence and cancels all subscriptions.
func (r *Registry) Close() {
	r.pending.Wait()

	r.mu.Lock()
	subs := make([]*Subscription, 0, len(r.subs))
	for sub := range r.subs {
		subs = append(subs, sub)
	}
	r.mu.Unlock()

	for _, sub := range subs {
		sub.Cancel()
	}
}

// applySavedType resolves the persisted type for id and applies it to the
// matching entry, leaving other entries untouched. Runs on a background
// goroutine; the result is applied whenever it arrives, last write wins.
func (r *Registry) applySavedType(id string) {
	saved, err := r.store.LoadAll()
	if err != nil {
		utils.Verbose("failed to load controller profiles: %v", err)
		return
	}

	t, ok := saved[id]
	if !ok {
		return
	}

	r.setType(id, t)
}

// setType applies a type change and publishes. Reports whether an entry
// matched.
func (r *Registry) setType(id string, t ControllerType) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.controllers {
		if r.controllers[i].ID == id {
			r.controllers[i].Type = t
			r.publishLocked()
			return true
		}
	}
	return false
}

func (r *Registry) snapshotLocked() []Controller {
	snap := make([]Controller, len(r.controllers))
	copy(snap, r.controllers)
	return snap
}

// publishLocked sends the current snapshot to every subscriber. Caller must
// hold r.mu, which also serializes sends; when a subscriber's buffer is
// full its oldest snapshot is dropped.
func (r *Registry) publishLocked() {
	snap := r.snapshotLocked()
	for sub := range r.subs {
		select {
		case sub.ch <- snap:
		default:
			select {
			case <-sub.ch:
			default:
			}
			sub.ch <- snap
		}
	}
}
