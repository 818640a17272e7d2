package overlay

import (
	"github.com/mobile-next/emubridge/types"
	"github.com/mobile-next/emubridge/utils"
)

// noPointer marks the drag handler as idle.
const noPointer = -1

// DragHandler turns the raw touch stream into pick-up / move / drop
// semantics for overlay widgets. At most one drag is active at a time; the
// drag is bound to the widget that was hit and to the pointer id that hit
// it.
//
// The handler is confined to the event-delivery goroutine and performs no
// internal locking.
type DragHandler struct {
	layout    *Layout
	container func() *Container

	dragged   Widget
	pointerID int
}

// NewDragHandler creates a handler for the given layout. container resolves
// the overlay parent's current on-screen geometry; it is queried once per
// hit test and once per move, and may return nil when the view is absent.
func NewDragHandler(layout *Layout, container func() *Container) *DragHandler {
	return &DragHandler{
		layout:    layout,
		container: container,
		pointerID: noPointer,
	}
}

// Dragging reports whether a drag is currently active.
func (h *DragHandler) Dragging() bool {
	return h.dragged != nil
}

// DraggedWidget returns the widget bound to the active drag, or nil.
func (h *DragHandler) DraggedWidget() Widget {
	return h.dragged
}

// Reset forcibly returns the handler to idle, for use when the edit
// session itself ends.
func (h *DragHandler) Reset() {
	h.dragged = nil
	h.pointerID = noPointer
}

// HandleTouch feeds one touch event through the state machine. It reports
// whether the event changed drag state or moved a widget, so callers can
// decide whether to redraw.
func (h *DragHandler) HandleTouch(ev TouchEvent) bool {
	switch ev.Action {
	case ActionDown, ActionPointerDown:
		return h.beginDrag(ev)
	case ActionMove:
		return h.moveDrag(ev)
	case ActionUp, ActionCancel:
		// any pointer lifting ends the active drag, not just the bound one
		if h.dragged == nil {
			return false
		}
		utils.Verbose("overlay: drag of %s ended", h.dragged.ID())
		h.Reset()
		return true
	}
	return false
}

// beginDrag hit-tests the contact point and binds the drag on a hit. A new
// drag cannot start while one is active.
func (h *DragHandler) beginDrag(ev TouchEvent) bool {
	if h.dragged != nil {
		return false
	}

	container := h.container()
	if container == nil {
		return false
	}

	p, ok := ev.ChangedPointer()
	if !ok {
		return false
	}

	w := h.hitTest(types.Point{X: p.X, Y: p.Y}, *container)
	if w == nil {
		return false
	}

	h.dragged = w
	h.pointerID = p.ID
	utils.Verbose("overlay: drag of %s started by pointer %d", w.ID(), p.ID)
	return true
}

// moveDrag repositions the dragged widget to the bound pointer's location,
// clamped to the container.
func (h *DragHandler) moveDrag(ev TouchEvent) bool {
	if h.dragged == nil {
		return false
	}

	container := h.container()
	if container == nil {
		return false
	}

	// the bound pointer may be missing from this event, e.g. after another
	// finger lifted; it can reappear in a later one, so keep the drag alive
	p, ok := ev.PointerByID(h.pointerID)
	if !ok {
		return false
	}

	local := container.ToLocal(types.Point{X: p.X, Y: p.Y})
	x := types.Clamp(local.X, 0, container.Size.Width)
	y := types.Clamp(local.Y, 0, container.Size.Height)
	h.dragged.SetPosition(x, y)
	return true
}

// hitTest selects the first visible widget, in priority order, whose
// screen-space rectangle contains the point.
func (h *DragHandler) hitTest(screen types.Point, container Container) Widget {
	for _, w := range h.layout.Widgets() {
		if !w.Visible() {
			continue
		}

		rect := w.Bounds().Translate(container.Offset.X, container.Offset.Y)
		if rect.Contains(screen) {
			return w
		}
	}
	return nil
}
