package commands

import (
	"fmt"
)

// SwapIntervalRequest represents the parameters for a swap-interval command
type SwapIntervalRequest struct {
	Interval int `json:"interval"`
}

// ScalingFactorRequest represents the parameters for a scaling-factor command
type ScalingFactorRequest struct {
	Factor float64 `json:"factor"`
}

// DisplayInfo is the JSON-friendly view of the display window state
type DisplayInfo struct {
	Bound         bool    `json:"bound"`
	Handle        int64   `json:"handle"`
	SwapInterval  int     `json:"swapInterval"`
	ScalingFactor float64 `json:"scalingFactor"`
}

// DisplayInfoCommand returns the current display window state
func DisplayInfoCommand() *CommandResponse {
	if env.Window == nil {
		return NewErrorResponse(fmt.Errorf("no display window"))
	}

	return NewSuccessResponse(DisplayInfo{
		Bound:         env.Window.Bound(),
		Handle:        env.Window.Handle(),
		SwapInterval:  env.Window.SwapInterval(),
		ScalingFactor: env.Window.ScalingFactor(),
	})
}

// SwapIntervalCommand sets the display swap interval. A native-side
// rejection is not an error; the reported state simply does not change.
func SwapIntervalCommand(req SwapIntervalRequest) *CommandResponse {
	if env.Window == nil {
		return NewErrorResponse(fmt.Errorf("no display window"))
	}
	if req.Interval < 1 {
		return NewErrorResponse(fmt.Errorf("swap interval must be at least 1, got %d", req.Interval))
	}

	env.Window.SetSwapInterval(req.Interval)

	return NewSuccessResponse(map[string]interface{}{
		"swapInterval": env.Window.SwapInterval(),
	})
}

// ScalingFactorCommand sets the display scaling factor
func ScalingFactorCommand(req ScalingFactorRequest) *CommandResponse {
	if env.Window == nil {
		return NewErrorResponse(fmt.Errorf("no display window"))
	}
	if req.Factor <= 0 {
		return NewErrorResponse(fmt.Errorf("scaling factor must be positive, got %g", req.Factor))
	}

	env.Window.SetScalingFactor(req.Factor)

	return NewSuccessResponse(map[string]interface{}{
		"scalingFactor": env.Window.ScalingFactor(),
		"swapInterval":  env.Window.SwapInterval(),
	})
}

// RequeryWindowCommand rebinds the native window handle after the platform
// recreated the surface
func RequeryWindowCommand() *CommandResponse {
	if env.Window == nil {
		return NewErrorResponse(fmt.Errorf("no display window"))
	}

	env.Window.RequeryHandle()

	return NewSuccessResponse(map[string]interface{}{
		"bound":  env.Window.Bound(),
		"handle": env.Window.Handle(),
	})
}
