package commands

import (
	"fmt"

	"github.com/mobile-next/emubridge/devices"
)

// SetTypeRequest represents the parameters for a controller set-type command
type SetTypeRequest struct {
	ControllerID string `json:"controllerId"`
	Type         string `json:"type"`
}

// SetSlotRequest represents the parameters for a controller set-slot command
type SetSlotRequest struct {
	ControllerID string `json:"controllerId"`
	Slot         int    `json:"slot"`
}

// ConnectVirtualRequest represents the parameters for connecting a virtual controller
type ConnectVirtualRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// DisconnectRequest represents the parameters for disconnecting a controller
type DisconnectRequest struct {
	ControllerID string `json:"controllerId"`
}

// ControllerInfo is the JSON-friendly view of one registry entry, including
// the persisted type preference when one exists.
type ControllerInfo struct {
	devices.Controller
	SavedType string `json:"savedType,omitempty"`
}

// ControllersCommand lists all connected controllers
func ControllersCommand() *CommandResponse {
	list := env.Registry.Snapshot()

	infos := make([]ControllerInfo, len(list))
	for i, c := range list {
		infos[i] = ControllerInfo{Controller: c}
		if env.Profiles != nil {
			if saved, ok := env.Profiles.Lookup(c.ID); ok {
				infos[i].SavedType = saved.String()
			}
		}
	}

	return NewSuccessResponse(infos)
}

// SetTypeCommand changes the configured type of a connected controller
func SetTypeCommand(req SetTypeRequest) *CommandResponse {
	if req.ControllerID == "" {
		return NewErrorResponse(fmt.Errorf("controller ID is required"))
	}

	t, err := devices.ParseControllerType(req.Type)
	if err != nil {
		return NewErrorResponse(err)
	}

	if _, ok := env.Registry.Get(req.ControllerID); !ok {
		return NewErrorResponse(fmt.Errorf("controller not found: %s", req.ControllerID))
	}

	env.Registry.UpdateType(req.ControllerID, t)

	return NewSuccessResponse(map[string]interface{}{
		"message": fmt.Sprintf("Controller %s configured as %s", req.ControllerID, t),
	})
}

// SetSlotCommand assigns a device slot to a connected controller and
// delivers the attachment to the native input subsystem
func SetSlotCommand(req SetSlotRequest) *CommandResponse {
	if req.ControllerID == "" {
		return NewErrorResponse(fmt.Errorf("controller ID is required"))
	}
	if req.Slot < 0 {
		return NewErrorResponse(fmt.Errorf("slot must be non-negative, got %d", req.Slot))
	}

	c, ok := env.Registry.Get(req.ControllerID)
	if !ok {
		return NewErrorResponse(fmt.Errorf("controller not found: %s", req.ControllerID))
	}

	env.Registry.UpdateSlot(req.ControllerID, req.Slot)

	// native rejection is absorbed: the slot assignment stays client-side
	if env.Bridge != nil && !env.Bridge.ConnectGamepad(req.Slot, c.Type.GamepadKind()) {
		return NewSuccessResponse(map[string]interface{}{
			"message": fmt.Sprintf("Controller %s assigned slot %d (native attach unavailable)", req.ControllerID, req.Slot),
		})
	}

	return NewSuccessResponse(map[string]interface{}{
		"message": fmt.Sprintf("Controller %s assigned slot %d", req.ControllerID, req.Slot),
	})
}

// ConnectVirtualCommand creates a virtual controller and adds it to the registry
func ConnectVirtualCommand(req ConnectVirtualRequest) *CommandResponse {
	if req.Name == "" {
		req.Name = "Virtual Controller"
	}

	t := devices.ProController
	if req.Type != "" {
		parsed, err := devices.ParseControllerType(req.Type)
		if err != nil {
			return NewErrorResponse(err)
		}
		t = parsed
	}

	c := devices.NewVirtualController(req.Name, t)
	env.Registry.Add(c)

	return NewSuccessResponse(c)
}

// DisconnectCommand removes a controller from the registry and detaches it
// from its native slot if it had one
func DisconnectCommand(req DisconnectRequest) *CommandResponse {
	if req.ControllerID == "" {
		return NewErrorResponse(fmt.Errorf("controller ID is required"))
	}

	c, ok := env.Registry.Get(req.ControllerID)
	if !ok {
		return NewErrorResponse(fmt.Errorf("controller not found: %s", req.ControllerID))
	}

	if c.Slot != nil && env.Bridge != nil {
		env.Bridge.DisconnectGamepad(*c.Slot)
	}

	env.Registry.Remove(req.ControllerID)

	return NewSuccessResponse(map[string]interface{}{
		"message": fmt.Sprintf("Controller %s disconnected", req.ControllerID),
	})
}
