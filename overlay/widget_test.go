package overlay

import (
	"testing"

	"github.com/mobile-next/emubridge/types"
)

func TestLayout_WidgetsOrder(t *testing.T) {
	l := &Layout{
		Buttons:      []*Button{NewButton("a", types.Rect{})},
		Joysticks:    []*Joystick{NewJoystick("left-stick", types.Rect{})},
		Combinations: []*Combination{NewCombination("combo", types.Rect{}, []string{"l", "r"})},
		Dpad:         NewDpad(types.Rect{}),
	}

	kinds := []Kind{}
	for _, w := range l.Widgets() {
		kinds = append(kinds, w.Kind())
	}

	want := []Kind{KindButton, KindJoystick, KindCombination, KindDpad}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d widgets, got %d", len(want), len(kinds))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], kinds[i])
		}
	}
}

func TestLayout_Find(t *testing.T) {
	l := DefaultLayout(types.Size{Width: 1280, Height: 720})

	w, ok := l.Find("left-stick")
	if !ok || w.Kind() != KindJoystick {
		t.Errorf("expected to find the left stick, got %v ok=%v", w, ok)
	}

	if _, ok := l.Find("nonexistent"); ok {
		t.Error("expected miss for unknown id")
	}

	if _, ok := l.Find("dpad"); !ok {
		t.Error("expected to find the dpad")
	}
}

func TestDefaultLayout_WidgetsWithinContainer(t *testing.T) {
	size := types.Size{Width: 1280, Height: 720}
	l := DefaultLayout(size)

	for _, w := range l.Widgets() {
		r := w.Bounds()
		if r.X < 0 || r.Y < 0 || r.X+r.Width > size.Width || r.Y+r.Height > size.Height {
			t.Errorf("widget %s out of container: %+v", w.ID(), r)
		}
		if !w.Visible() {
			t.Errorf("widget %s should start visible", w.ID())
		}
	}
}

func TestWidget_SetPositionPreservesSize(t *testing.T) {
	b := NewButton("a", types.Rect{X: 10, Y: 20, Width: 90, Height: 90})

	b.SetPosition(200, 300)

	got := b.Bounds()
	if got.X != 200 || got.Y != 300 {
		t.Errorf("expected position (200,300), got (%v,%v)", got.X, got.Y)
	}
	if got.Width != 90 || got.Height != 90 {
		t.Errorf("expected size preserved, got (%v,%v)", got.Width, got.Height)
	}
}
