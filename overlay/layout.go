package overlay

import "github.com/mobile-next/emubridge/types"

// button and stick sizes of the default layout, in container pixels
const (
	defaultButtonSize   = 90
	defaultStickSize    = 170
	defaultDpadSize     = 180
	defaultTriggerWidth = 140
)

// DefaultLayout returns the stock overlay arrangement for a landscape
// container of the given size: face buttons on the right, dpad and left
// stick on the left, triggers in the top corners.
func DefaultLayout(size types.Size) *Layout {
	w, h := size.Width, size.Height

	button := func(id string, x, y float64) *Button {
		return NewButton(id, types.Rect{X: x, Y: y, Width: defaultButtonSize, Height: defaultButtonSize})
	}

	return &Layout{
		Buttons: []*Button{
			button("a", w-160, h-330),
			button("b", w-260, h-230),
			button("x", w-260, h-430),
			button("y", w-360, h-330),
			button("plus", w/2+70, h-110),
			button("minus", w/2-160, h-110),
			NewButton("l", types.Rect{X: 30, Y: 30, Width: defaultTriggerWidth, Height: defaultButtonSize}),
			NewButton("r", types.Rect{X: w - 30 - defaultTriggerWidth, Y: 30, Width: defaultTriggerWidth, Height: defaultButtonSize}),
			NewButton("zl", types.Rect{X: 30, Y: 140, Width: defaultTriggerWidth, Height: defaultButtonSize}),
			NewButton("zr", types.Rect{X: w - 30 - defaultTriggerWidth, Y: 140, Width: defaultTriggerWidth, Height: defaultButtonSize}),
		},
		Joysticks: []*Joystick{
			NewJoystick("left-stick", types.Rect{X: 60, Y: h - 420, Width: defaultStickSize, Height: defaultStickSize}),
			NewJoystick("right-stick", types.Rect{X: w - 60 - defaultStickSize, Y: h - 620, Width: defaultStickSize, Height: defaultStickSize}),
		},
		Combinations: []*Combination{
			NewCombination("screenshot-combo", types.Rect{X: w/2 - 45, Y: 30, Width: defaultButtonSize, Height: defaultButtonSize}, []string{"l", "r"}),
		},
		Dpad: NewDpad(types.Rect{X: 60, Y: h - 230, Width: defaultDpadSize, Height: defaultDpadSize}),
	}
}
