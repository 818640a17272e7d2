package commands

import (
	"fmt"
)

// CheatRequest represents the parameters for toggling a cheat
type CheatRequest struct {
	TitleID string `json:"titleId"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// FirmwareInstallRequest represents the parameters for installing firmware
type FirmwareInstallRequest struct {
	Path string `json:"path"`
}

// SystemInfoCommand reports native core state: whether it is running and
// which firmware it carries
func SystemInfoCommand() *CommandResponse {
	version := env.Bridge.MaterializeString(env.Bridge.FirmwareVersion())

	return NewSuccessResponse(map[string]interface{}{
		"running":         env.Bridge.IsRunning(),
		"firmwareVersion": version,
	})
}

// ProfilesCommand lists the user profiles known to the native core
func ProfilesCommand() *CommandResponse {
	refs := env.Bridge.Profiles()

	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		if name := env.Bridge.MaterializeString(ref); name != "" {
			names = append(names, name)
		}
	}

	return NewSuccessResponse(names)
}

// FirmwareInstallCommand installs a firmware package through the native core
func FirmwareInstallCommand(req FirmwareInstallRequest) *CommandResponse {
	if req.Path == "" {
		return NewErrorResponse(fmt.Errorf("firmware path is required"))
	}

	if !env.Bridge.InstallFirmware(req.Path) {
		return NewErrorResponse(fmt.Errorf("firmware install failed for %s", req.Path))
	}

	return NewSuccessResponse(map[string]interface{}{
		"message": fmt.Sprintf("Firmware installed from %s", req.Path),
	})
}

// FirmwareVerifyCommand checks the installed firmware's integrity
func FirmwareVerifyCommand() *CommandResponse {
	return NewSuccessResponse(map[string]interface{}{
		"valid": env.Bridge.VerifyFirmware(),
	})
}

// CheatsCommand lists cheats available for a title
func CheatsCommand(titleID string) *CommandResponse {
	if titleID == "" {
		return NewErrorResponse(fmt.Errorf("title ID is required"))
	}

	refs := env.Bridge.Cheats(titleID)

	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		if name := env.Bridge.MaterializeString(ref); name != "" {
			names = append(names, name)
		}
	}

	return NewSuccessResponse(names)
}

// SetCheatCommand toggles a cheat for a title
func SetCheatCommand(req CheatRequest) *CommandResponse {
	if req.TitleID == "" {
		return NewErrorResponse(fmt.Errorf("title ID is required"))
	}
	if req.Name == "" {
		return NewErrorResponse(fmt.Errorf("cheat name is required"))
	}

	if !env.Bridge.SetCheatEnabled(req.TitleID, req.Name, req.Enabled) {
		return NewErrorResponse(fmt.Errorf("failed to toggle cheat %q for title %s", req.Name, req.TitleID))
	}

	return NewSuccessResponse(map[string]interface{}{
		"message": fmt.Sprintf("Cheat %q for title %s enabled=%v", req.Name, req.TitleID, req.Enabled),
	})
}
