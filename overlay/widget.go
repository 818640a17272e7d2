// Package overlay implements the on-screen virtual controller overlay and
// its edit-mode drag interaction. Widgets live in container-relative
// coordinates; the drag handler translates raw touch events in screen
// coordinates into reposition operations on them.
package overlay

import "github.com/mobile-next/emubridge/types"

// Kind identifies the widget category for hit testing and serialization.
type Kind string

const (
	KindButton      Kind = "button"
	KindJoystick    Kind = "joystick"
	KindCombination Kind = "combination"
	KindDpad        Kind = "dpad"
)

// Widget is one overlay element. All four categories expose the same
// surface so callers iterate them uniformly instead of keeping four
// parallel loops.
type Widget interface {
	// ID distinguishes the widget within its category.
	ID() string

	// Kind returns the widget category.
	Kind() Kind

	// Bounds returns the widget rectangle in container coordinates.
	Bounds() types.Rect

	// Visible reports whether the widget participates in hit testing.
	Visible() bool

	// SetVisible toggles the widget on or off.
	SetVisible(visible bool)

	// SetPosition moves the widget's top-left corner, in container
	// coordinates.
	SetPosition(x, y float64)
}

// widgetBase carries the state shared by every widget category.
type widgetBase struct {
	id      string
	kind    Kind
	rect    types.Rect
	visible bool
}

func (w *widgetBase) ID() string         { return w.id }
func (w *widgetBase) Kind() Kind         { return w.kind }
func (w *widgetBase) Bounds() types.Rect { return w.rect }
func (w *widgetBase) Visible() bool      { return w.visible }

func (w *widgetBase) SetVisible(visible bool) { w.visible = visible }

func (w *widgetBase) SetPosition(x, y float64) {
	w.rect.X = x
	w.rect.Y = y
}

// Button is a single on-screen button.
type Button struct {
	widgetBase
}

// NewButton creates a visible button with the given bounds.
func NewButton(id string, rect types.Rect) *Button {
	return &Button{widgetBase{id: id, kind: KindButton, rect: rect, visible: true}}
}

// Joystick is an analog stick overlay.
type Joystick struct {
	widgetBase
}

// NewJoystick creates a visible joystick with the given bounds.
func NewJoystick(id string, rect types.Rect) *Joystick {
	return &Joystick{widgetBase{id: id, kind: KindJoystick, rect: rect, visible: true}}
}

// Combination is a button that triggers several inputs at once.
type Combination struct {
	widgetBase

	// Inputs are the button ids pressed together when this widget fires.
	Inputs []string
}

// NewCombination creates a visible combination button with the given bounds.
func NewCombination(id string, rect types.Rect, inputs []string) *Combination {
	return &Combination{
		widgetBase: widgetBase{id: id, kind: KindCombination, rect: rect, visible: true},
		Inputs:     inputs,
	}
}

// Dpad is the directional pad. A layout has at most one.
type Dpad struct {
	widgetBase
}

// NewDpad creates a visible directional pad with the given bounds.
func NewDpad(rect types.Rect) *Dpad {
	return &Dpad{widgetBase{id: "dpad", kind: KindDpad, rect: rect, visible: true}}
}

// Layout is the complete set of overlay widgets.
type Layout struct {
	Buttons      []*Button
	Joysticks    []*Joystick
	Combinations []*Combination
	Dpad         *Dpad
}

// Widgets returns every widget in hit-test priority order: buttons first,
// then joysticks, then combinations, then the directional pad.
func (l *Layout) Widgets() []Widget {
	var widgets []Widget
	for _, b := range l.Buttons {
		widgets = append(widgets, b)
	}
	for _, j := range l.Joysticks {
		widgets = append(widgets, j)
	}
	for _, c := range l.Combinations {
		widgets = append(widgets, c)
	}
	if l.Dpad != nil {
		widgets = append(widgets, l.Dpad)
	}
	return widgets
}

// Find returns the widget with the given id, searching in hit-test order.
func (l *Layout) Find(id string) (Widget, bool) {
	for _, w := range l.Widgets() {
		if w.ID() == id {
			return w, true
		}
	}
	return nil, false
}
