// Package core declares the boundary to the native emulation core. The core
// itself (CPU interpretation, GPU translation, audio mixing) lives in an
// unmanaged library; this package only defines the entry points the bridge
// calls and the sentinel conventions they follow.
package core

// InvalidHandle is the sentinel for "no native window bound". All
// handle-returning calls use it to signal failure.
const InvalidHandle int64 = -1

// InvalidString is the sentinel for a string reference that could not be
// produced by the native side.
const InvalidString StringRef = 0

// StringRef is an opaque reference to a string owned by the native core.
// It must be resolved through Bridge.MaterializeString before use; the raw
// value has no meaning on the Go side.
type StringRef uint64

// SurfaceID identifies a platform display surface the core can render to.
type SurfaceID string

// GamepadKind is the numeric controller profile understood by the native
// input subsystem.
type GamepadKind int

// Bridge is the set of native entry points the front-end calls. Boolean
// returns signal success or failure; there are no error values across this
// boundary.
type Bridge interface {
	// Initialize brings up the native core. Safe to call once per process.
	Initialize() bool

	// Shutdown tears down the native core and releases its resources.
	Shutdown()

	// IsRunning reports whether emulation is currently active.
	IsRunning() bool

	// WindowHandle resolves the native window handle bound to the given
	// surface, or InvalidHandle if the surface has no native window.
	WindowHandle(surface SurfaceID) int64

	// MinSwapInterval returns the smallest swap interval the native window
	// supports.
	MinSwapInterval(handle int64) int

	// SetSwapInterval asks the native window to present every interval-th
	// display refresh. Returns false if the interval is unsupported.
	SetSwapInterval(handle int64, interval int) bool

	// ConnectGamepad attaches a controller of the given kind to a device
	// slot in the native input subsystem.
	ConnectGamepad(slot int, kind GamepadKind) bool

	// DisconnectGamepad detaches the controller in the given slot.
	DisconnectGamepad(slot int) bool

	// SetButtonState delivers a button press (state != 0) or release to the
	// controller in the given slot.
	SetButtonState(slot, button, state int) bool

	// SetJoystickState delivers an analog stick position, each axis in
	// [-1, 1], to the controller in the given slot.
	SetJoystickState(slot, stick int, x, y float32) bool

	// Profiles lists the user profiles known to the core.
	Profiles() []StringRef

	// OpenProfile switches the core to the named user profile.
	OpenProfile(name string) bool

	// InstallFirmware installs a firmware package from the given path.
	InstallFirmware(path string) bool

	// VerifyFirmware checks the integrity of the installed firmware.
	VerifyFirmware() bool

	// FirmwareVersion returns the installed firmware version string, or
	// InvalidString when no firmware is installed.
	FirmwareVersion() StringRef

	// Cheats lists the cheat names available for a title.
	Cheats(titleID string) []StringRef

	// SetCheatEnabled toggles a cheat for a title.
	SetCheatEnabled(titleID, name string, enabled bool) bool

	// MaterializeString resolves a StringRef handed back by any of the
	// string-returning calls. Returns "" for InvalidString.
	MaterializeString(ref StringRef) string
}
