package commands

import (
	"github.com/mobile-next/emubridge/core"
	"github.com/mobile-next/emubridge/devices"
	"github.com/mobile-next/emubridge/display"
	"github.com/mobile-next/emubridge/logging"
	"github.com/mobile-next/emubridge/overlay"
)

// CommandResponse represents a standardized response format for all commands
type CommandResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) *CommandResponse {
	return &CommandResponse{
		Status: "ok",
		Data:   data,
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(err error) *CommandResponse {
	return &CommandResponse{
		Status: "error",
		Error:  err.Error(),
	}
}

// Env holds the explicitly constructed services commands operate on. It is
// assembled once at startup (main.go) and shared by the CLI and the server.
type Env struct {
	Bridge   core.Bridge
	Registry *devices.Registry
	Profiles *devices.IniProfileStore
	Layout   *overlay.Layout
	Drag     *overlay.DragHandler
	Window   *display.Window
	Log      *logging.SessionLogger

	// ContainerFn resolves the overlay container's current geometry; it
	// returns nil while no container view exists.
	ContainerFn func() *overlay.Container
}

// Container resolves the overlay container geometry, nil when absent.
func (e *Env) Container() *overlay.Container {
	if e.ContainerFn == nil {
		return nil
	}
	return e.ContainerFn()
}

// env is the active environment, set once at application startup via
// SetEnv and used by every command.
var env *Env

// SetEnv sets the command environment. Call once from main before any
// command runs.
func SetEnv(e *Env) {
	env = e
}

// GetEnv returns the current command environment, nil before SetEnv.
func GetEnv() *Env {
	return env
}
