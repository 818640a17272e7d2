// Package display wraps the native window handle bound to a display
// surface and keeps the client-visible swap interval and scaling factor
// consistent with native state.
package display

import (
	"github.com/mobile-next/emubridge/core"
	"github.com/mobile-next/emubridge/utils"
)

// Window owns one native window handle. The handle can go stale when the
// platform destroys and recreates the surface; RequeryHandle rebinds it.
type Window struct {
	bridge  core.Bridge
	surface core.SurfaceID

	handle        int64
	swapInterval  int
	scalingFactor float64
}

// NewWindow binds to the surface's current native handle and sets the swap
// interval to the native minimum, but never below 1.
func NewWindow(bridge core.Bridge, surface core.SurfaceID) *Window {
	w := &Window{
		bridge:        bridge,
		surface:       surface,
		handle:        bridge.WindowHandle(surface),
		swapInterval:  1,
		scalingFactor: 1.0,
	}

	if w.handle != core.InvalidHandle {
		interval := bridge.MinSwapInterval(w.handle)
		if interval < 1 {
			interval = 1
		}
		w.SetSwapInterval(interval)
	}

	return w
}

// Handle returns the current native window handle, core.InvalidHandle when
// unbound.
func (w *Window) Handle() int64 {
	return w.handle
}

// Bound reports whether a native window is currently bound.
func (w *Window) Bound() bool {
	return w.handle != core.InvalidHandle
}

// SwapInterval returns the client-visible swap interval, or 0 when no
// native window is bound.
func (w *Window) SwapInterval() int {
	if w.handle == core.InvalidHandle {
		return 0
	}
	return w.swapInterval
}

// SetSwapInterval issues the native call and updates the client-visible
// value only if the native side accepted it. Rejection is absorbed; the
// mirror simply does not change.
func (w *Window) SetSwapInterval(interval int) {
	if w.handle == core.InvalidHandle {
		return
	}

	if w.bridge.SetSwapInterval(w.handle, interval) {
		w.swapInterval = interval
	} else {
		utils.Verbose("display: native rejected swap interval %d", interval)
	}
}

// ScalingFactor returns the client-visible scaling factor, or 0 when no
// native window is bound.
func (w *Window) ScalingFactor() float64 {
	if w.handle == core.InvalidHandle {
		return 0
	}
	return w.scalingFactor
}

// SetScalingFactor records the new factor and forces the swap interval to
// 1 regardless of the factor's direction. Only the vsync off-to-on
// transition makes the native frame-rate change take effect, so vsync is
// re-enabled on every scaling change rather than mapped proportionally.
func (w *Window) SetScalingFactor(factor float64) {
	previous := w.scalingFactor
	w.scalingFactor = factor
	utils.Verbose("display: scaling factor %v -> %v", previous, factor)

	w.SetSwapInterval(1)
}

// RequeryHandle re-resolves the native handle from the surface and
// re-applies the current swap interval. Call after the platform recreates
// the surface.
func (w *Window) RequeryHandle() {
	w.handle = w.bridge.WindowHandle(w.surface)
	if w.handle == core.InvalidHandle {
		return
	}

	if !w.bridge.SetSwapInterval(w.handle, w.swapInterval) {
		utils.Verbose("display: failed to re-apply swap interval %d", w.swapInterval)
	}
}
