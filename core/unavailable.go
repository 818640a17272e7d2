package core

// Unavailable returns a Bridge for use when no native core is linked into
// the process. Every call fails with the boundary's sentinel values, so
// callers degrade the same way they would on a native-side rejection.
func Unavailable() Bridge {
	return unavailable{}
}

type unavailable struct{}

func (unavailable) Initialize() bool                          { return false }
func (unavailable) Shutdown()                                 {}
func (unavailable) IsRunning() bool                           { return false }
func (unavailable) WindowHandle(SurfaceID) int64              { return InvalidHandle }
func (unavailable) MinSwapInterval(int64) int                 { return 0 }
func (unavailable) SetSwapInterval(int64, int) bool           { return false }
func (unavailable) ConnectGamepad(int, GamepadKind) bool      { return false }
func (unavailable) DisconnectGamepad(int) bool                { return false }
func (unavailable) SetButtonState(int, int, int) bool         { return false }
func (unavailable) SetJoystickState(int, int, float32, float32) bool {
	return false
}
func (unavailable) Profiles() []StringRef                  { return nil }
func (unavailable) OpenProfile(string) bool                { return false }
func (unavailable) InstallFirmware(string) bool            { return false }
func (unavailable) VerifyFirmware() bool                   { return false }
func (unavailable) FirmwareVersion() StringRef             { return InvalidString }
func (unavailable) Cheats(string) []StringRef              { return nil }
func (unavailable) SetCheatEnabled(string, string, bool) bool {
	return false
}
func (unavailable) MaterializeString(StringRef) string { return "" }
