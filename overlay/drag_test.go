package overlay

import (
	"testing"

	"github.com/mobile-next/emubridge/types"
)

// dragFixture is the minimal edit-mode setup: one button at (50,50) sized
// 40x40 inside a 200x200 container at the screen origin.
func dragFixture() (*DragHandler, *Button) {
	button := NewButton("a", types.Rect{X: 50, Y: 50, Width: 40, Height: 40})
	layout := &Layout{Buttons: []*Button{button}}
	container := &Container{Size: types.Size{Width: 200, Height: 200}}

	return NewDragHandler(layout, func() *Container { return container }), button
}

func down(id int, x, y float64) TouchEvent {
	return TouchEvent{Action: ActionDown, Pointers: []Pointer{{ID: id, X: x, Y: y}}}
}

func move(pointers ...Pointer) TouchEvent {
	return TouchEvent{Action: ActionMove, Pointers: pointers}
}

func TestDragHandler_DownOnWidgetStartsDrag(t *testing.T) {
	h, button := dragFixture()

	if !h.HandleTouch(down(0, 60, 60)) {
		t.Fatal("expected down on widget to start drag")
	}
	if !h.Dragging() || h.DraggedWidget() != button {
		t.Fatal("expected drag bound to the hit widget")
	}
}

func TestDragHandler_DownOutsideWidgetIgnored(t *testing.T) {
	h, _ := dragFixture()

	if h.HandleTouch(down(0, 10, 10)) {
		t.Error("expected miss to leave handler idle")
	}
	if h.Dragging() {
		t.Error("expected no drag after miss")
	}
}

func TestDragHandler_BoundsAreInclusive(t *testing.T) {
	h, _ := dragFixture()

	// (90,90) is the bottom-right corner of the 40x40 widget at (50,50)
	if !h.HandleTouch(down(0, 90, 90)) {
		t.Error("expected hit on the widget edge")
	}
}

func TestDragHandler_MoveRepositionsAndClamps(t *testing.T) {
	h, button := dragFixture()

	if !h.HandleTouch(down(0, 50, 50)) {
		t.Fatal("expected drag to start")
	}

	if !h.HandleTouch(move(Pointer{ID: 0, X: 120, Y: 80})) {
		t.Fatal("expected move to be handled")
	}
	if got := button.Bounds(); got.X != 120 || got.Y != 80 {
		t.Errorf("expected position (120,80), got (%v,%v)", got.X, got.Y)
	}

	// off the right edge of the 200x200 container
	if !h.HandleTouch(move(Pointer{ID: 0, X: 300, Y: 10})) {
		t.Fatal("expected move to be handled")
	}
	if got := button.Bounds(); got.X != 200 || got.Y != 10 {
		t.Errorf("expected clamped position (200,10), got (%v,%v)", got.X, got.Y)
	}

	// and past the top-left corner
	if !h.HandleTouch(move(Pointer{ID: 0, X: -40, Y: -5})) {
		t.Fatal("expected move to be handled")
	}
	if got := button.Bounds(); got.X != 0 || got.Y != 0 {
		t.Errorf("expected clamped position (0,0), got (%v,%v)", got.X, got.Y)
	}
}

func TestDragHandler_UpEndsDragAndMoveIsIgnoredAfter(t *testing.T) {
	h, button := dragFixture()

	h.HandleTouch(down(0, 50, 50))
	h.HandleTouch(TouchEvent{Action: ActionUp, Pointers: []Pointer{{ID: 0, X: 100, Y: 100}}})

	if h.Dragging() {
		t.Fatal("expected up to end the drag")
	}

	before := button.Bounds()
	if h.HandleTouch(move(Pointer{ID: 0, X: 150, Y: 150})) {
		t.Error("expected move after up to be ignored")
	}
	if button.Bounds() != before {
		t.Error("expected widget position unchanged after drag ended")
	}
}

func TestDragHandler_AnyPointerUpEndsDrag(t *testing.T) {
	h, _ := dragFixture()

	h.HandleTouch(down(0, 60, 60))

	// a different pointer lifting still ends the drag
	h.HandleTouch(TouchEvent{
		Action:   ActionUp,
		Pointers: []Pointer{{ID: 0, X: 60, Y: 60}, {ID: 1, X: 10, Y: 10}},
		Changed:  1,
	})

	if h.Dragging() {
		t.Error("expected any pointer lifting to end the drag")
	}
}

func TestDragHandler_CancelEndsDrag(t *testing.T) {
	h, _ := dragFixture()

	h.HandleTouch(down(0, 60, 60))
	if !h.HandleTouch(TouchEvent{Action: ActionCancel}) {
		t.Error("expected cancel to be handled while dragging")
	}
	if h.Dragging() {
		t.Error("expected cancel to end the drag")
	}

	if h.HandleTouch(TouchEvent{Action: ActionCancel}) {
		t.Error("expected cancel while idle to be ignored")
	}
}

func TestDragHandler_SecondDownRejectedWhileDragging(t *testing.T) {
	h, button := dragFixture()

	h.HandleTouch(down(0, 60, 60))

	second := TouchEvent{
		Action:   ActionPointerDown,
		Pointers: []Pointer{{ID: 0, X: 60, Y: 60}, {ID: 1, X: 70, Y: 70}},
		Changed:  1,
	}
	if h.HandleTouch(second) {
		t.Error("expected second down to be rejected while dragging")
	}
	if h.DraggedWidget() != button {
		t.Error("expected original drag to stay bound")
	}
}

func TestDragHandler_MoveFollowsBoundPointerOnly(t *testing.T) {
	h, button := dragFixture()

	h.HandleTouch(down(0, 60, 60))

	// only the other pointer is present; the drag stays alive and the
	// widget does not move
	before := button.Bounds()
	if h.HandleTouch(move(Pointer{ID: 1, X: 150, Y: 150})) {
		t.Error("expected move without the bound pointer to be a no-op")
	}
	if !h.Dragging() {
		t.Error("expected drag to survive a move without the bound pointer")
	}
	if button.Bounds() != before {
		t.Error("expected widget position unchanged")
	}

	// the bound pointer reappears and the drag resumes
	if !h.HandleTouch(move(Pointer{ID: 1, X: 150, Y: 150}, Pointer{ID: 0, X: 130, Y: 140})) {
		t.Fatal("expected move with the bound pointer to be handled")
	}
	if got := button.Bounds(); got.X != 130 || got.Y != 140 {
		t.Errorf("expected position (130,140), got (%v,%v)", got.X, got.Y)
	}
}

func TestDragHandler_NilContainerSuspendsDrag(t *testing.T) {
	button := NewButton("a", types.Rect{X: 50, Y: 50, Width: 40, Height: 40})
	layout := &Layout{Buttons: []*Button{button}}

	var container *Container
	h := NewDragHandler(layout, func() *Container { return container })

	if h.HandleTouch(down(0, 60, 60)) {
		t.Error("expected down with no container to be ignored")
	}

	container = &Container{Size: types.Size{Width: 200, Height: 200}}
	h.HandleTouch(down(0, 60, 60))

	container = nil
	if h.HandleTouch(move(Pointer{ID: 0, X: 100, Y: 100})) {
		t.Error("expected move with no container to be a no-op")
	}
	if !h.Dragging() {
		t.Error("expected drag to survive the container going away")
	}
}

func TestDragHandler_ContainerOffsetTranslatesCoordinates(t *testing.T) {
	button := NewButton("a", types.Rect{X: 50, Y: 50, Width: 40, Height: 40})
	layout := &Layout{Buttons: []*Button{button}}
	container := &Container{
		Offset: types.Point{X: 100, Y: 20},
		Size:   types.Size{Width: 200, Height: 200},
	}
	h := NewDragHandler(layout, func() *Container { return container })

	// widget occupies screen rect (150,70)-(190,110)
	if h.HandleTouch(down(0, 60, 60)) {
		t.Fatal("expected screen point inside the untranslated rect to miss")
	}
	if !h.HandleTouch(down(0, 160, 80)) {
		t.Fatal("expected hit at the translated location")
	}

	h.HandleTouch(move(Pointer{ID: 0, X: 130, Y: 50}))
	if got := button.Bounds(); got.X != 30 || got.Y != 30 {
		t.Errorf("expected container-local position (30,30), got (%v,%v)", got.X, got.Y)
	}
}

func TestDragHandler_InvisibleWidgetNotHit(t *testing.T) {
	h, button := dragFixture()
	button.SetVisible(false)

	if h.HandleTouch(down(0, 60, 60)) {
		t.Error("expected hidden widget to be skipped by hit testing")
	}
}

func TestDragHandler_HitTestPriorityOrder(t *testing.T) {
	rect := types.Rect{X: 50, Y: 50, Width: 40, Height: 40}
	button := NewButton("a", rect)
	stick := NewJoystick("left-stick", rect)
	layout := &Layout{Buttons: []*Button{button}, Joysticks: []*Joystick{stick}}
	container := &Container{Size: types.Size{Width: 200, Height: 200}}
	h := NewDragHandler(layout, func() *Container { return container })

	h.HandleTouch(down(0, 60, 60))
	if h.DraggedWidget() != button {
		t.Error("expected the button to win over the overlapping joystick")
	}

	// with the button hidden the joystick is next in line
	h.Reset()
	button.SetVisible(false)
	h.HandleTouch(down(0, 60, 60))
	if h.DraggedWidget() != stick {
		t.Error("expected the joystick once the button is hidden")
	}
}

func TestDragHandler_Reset(t *testing.T) {
	h, _ := dragFixture()

	h.HandleTouch(down(0, 60, 60))
	h.Reset()

	if h.Dragging() || h.DraggedWidget() != nil {
		t.Error("expected reset to return the handler to idle")
	}
}
