package commands

import (
	"fmt"

	"github.com/mobile-next/emubridge/overlay"
	"github.com/mobile-next/emubridge/types"
)

// WidgetInfo is the JSON-friendly view of one overlay widget
type WidgetInfo struct {
	ID      string     `json:"id"`
	Kind    string     `json:"kind"`
	Rect    types.Rect `json:"rect"`
	Visible bool       `json:"visible"`
}

// MoveWidgetRequest represents the parameters for an overlay move command
type MoveWidgetRequest struct {
	WidgetID string  `json:"widgetId"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// SetWidgetVisibleRequest represents the parameters for toggling a widget
type SetWidgetVisibleRequest struct {
	WidgetID string `json:"widgetId"`
	Visible  bool   `json:"visible"`
}

// TouchRequest carries a sequence of touch actions to feed through the
// drag-edit handler, e.g. from a remote editing client
type TouchRequest struct {
	Actions []types.TouchAction `json:"actions"`
}

// OverlayCommand returns the current overlay layout
func OverlayCommand() *CommandResponse {
	widgets := env.Layout.Widgets()

	infos := make([]WidgetInfo, len(widgets))
	for i, w := range widgets {
		infos[i] = WidgetInfo{
			ID:      w.ID(),
			Kind:    string(w.Kind()),
			Rect:    w.Bounds(),
			Visible: w.Visible(),
		}
	}

	return NewSuccessResponse(infos)
}

// MoveWidgetCommand repositions a widget directly, without a drag session.
// The position is clamped to the container the same way a drag is.
func MoveWidgetCommand(req MoveWidgetRequest) *CommandResponse {
	if req.WidgetID == "" {
		return NewErrorResponse(fmt.Errorf("widget ID is required"))
	}

	w, ok := env.Layout.Find(req.WidgetID)
	if !ok {
		return NewErrorResponse(fmt.Errorf("widget not found: %s", req.WidgetID))
	}

	x, y := req.X, req.Y
	if container := env.Container(); container != nil {
		x = types.Clamp(x, 0, container.Size.Width)
		y = types.Clamp(y, 0, container.Size.Height)
	}
	w.SetPosition(x, y)

	return NewSuccessResponse(map[string]interface{}{
		"message": fmt.Sprintf("Widget %s moved to (%g,%g)", req.WidgetID, x, y),
	})
}

// SetWidgetVisibleCommand toggles a widget's visibility
func SetWidgetVisibleCommand(req SetWidgetVisibleRequest) *CommandResponse {
	if req.WidgetID == "" {
		return NewErrorResponse(fmt.Errorf("widget ID is required"))
	}

	w, ok := env.Layout.Find(req.WidgetID)
	if !ok {
		return NewErrorResponse(fmt.Errorf("widget not found: %s", req.WidgetID))
	}

	w.SetVisible(req.Visible)

	return NewSuccessResponse(map[string]interface{}{
		"message": fmt.Sprintf("Widget %s visibility set to %v", req.WidgetID, req.Visible),
	})
}

// TouchCommand replays a sequence of touch actions through the drag-edit
// handler. Unknown action types are rejected before anything is applied.
func TouchCommand(req TouchRequest) *CommandResponse {
	if len(req.Actions) == 0 {
		return NewErrorResponse(fmt.Errorf("actions array is required and cannot be empty"))
	}

	events := make([]overlay.TouchEvent, len(req.Actions))
	for i, action := range req.Actions {
		ev, err := touchEventFromAction(action)
		if err != nil {
			return NewErrorResponse(fmt.Errorf("invalid action at index %d: %v", i, err))
		}
		events[i] = ev
	}

	handled := 0
	for _, ev := range events {
		if env.Drag.HandleTouch(ev) {
			handled++
		}
	}

	return NewSuccessResponse(map[string]interface{}{
		"message": fmt.Sprintf("Processed %d touch actions, %d changed the overlay", len(req.Actions), handled),
	})
}

// ResetDragCommand forcibly ends any active drag session
func ResetDragCommand() *CommandResponse {
	env.Drag.Reset()

	return NewSuccessResponse(map[string]interface{}{
		"message": "Drag session reset",
	})
}

// touchEventFromAction converts one wire-format action into a touch event.
// The wire format carries a single pointer per action; multi-pointer frames
// only occur in direct platform delivery.
func touchEventFromAction(action types.TouchAction) (overlay.TouchEvent, error) {
	pointer := overlay.Pointer{ID: action.PointerID, X: action.X, Y: action.Y}
	ev := overlay.TouchEvent{Pointers: []overlay.Pointer{pointer}, Changed: 0}

	switch action.Type {
	case "down":
		ev.Action = overlay.ActionDown
	case "pointer-down":
		ev.Action = overlay.ActionPointerDown
	case "move":
		ev.Action = overlay.ActionMove
	case "up":
		ev.Action = overlay.ActionUp
	case "cancel":
		ev.Action = overlay.ActionCancel
	default:
		return overlay.TouchEvent{}, fmt.Errorf("unknown action type %q", action.Type)
	}

	return ev, nil
}
