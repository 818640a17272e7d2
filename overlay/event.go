package overlay

import "github.com/mobile-next/emubridge/types"

// Action is the kind of a touch event.
type Action int

const (
	// ActionDown is the first pointer making contact.
	ActionDown Action = iota
	// ActionPointerDown is an additional pointer making contact.
	ActionPointerDown
	// ActionMove is any pointer moving while down.
	ActionMove
	// ActionUp is a pointer lifting.
	ActionUp
	// ActionCancel is the platform aborting the touch sequence.
	ActionCancel
)

// Pointer is one finger in a touch event, in screen coordinates.
type Pointer struct {
	ID int
	X  float64
	Y  float64
}

// TouchEvent is one frame of the raw multi-touch stream. Pointers holds
// every finger currently down; Changed indexes the pointer that triggered
// a Down, PointerDown or Up action.
type TouchEvent struct {
	Action   Action
	Pointers []Pointer
	Changed  int
}

// ChangedPointer returns the pointer that triggered the event.
func (e TouchEvent) ChangedPointer() (Pointer, bool) {
	if e.Changed < 0 || e.Changed >= len(e.Pointers) {
		return Pointer{}, false
	}
	return e.Pointers[e.Changed], true
}

// PointerByID returns the pointer with the given id, if present in the
// event.
func (e TouchEvent) PointerByID(id int) (Pointer, bool) {
	for _, p := range e.Pointers {
		if p.ID == id {
			return p, true
		}
	}
	return Pointer{}, false
}

// Container is the on-screen geometry of the overlay's parent view:
// its top-left corner in screen coordinates and its size.
type Container struct {
	Offset types.Point
	Size   types.Size
}

// ToLocal converts a screen-space point to container coordinates.
func (c Container) ToLocal(p types.Point) types.Point {
	return types.Point{X: p.X - c.Offset.X, Y: p.Y - c.Offset.Y}
}
