package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mobile-next/emubridge/commands"
)

// HandlerFunc is the signature for non-streaming JSON-RPC method handlers
type HandlerFunc func(params json.RawMessage) (interface{}, error)

var errMethodNotFound = errors.New("method not found")

// GetMethodRegistry returns a map of method names to handler functions
// This is used by both the HTTP server and the WebSocket endpoint
func GetMethodRegistry() map[string]HandlerFunc {
	return map[string]HandlerFunc{
		"controllers.list":        handleControllersList,
		"controllers.set_type":    handleControllersSetType,
		"controllers.set_slot":    handleControllersSetSlot,
		"controllers.connect":     handleControllersConnect,
		"controllers.disconnect":  handleControllersDisconnect,
		"overlay.layout":          handleOverlayLayout,
		"overlay.move":            handleOverlayMove,
		"overlay.set_visible":     handleOverlaySetVisible,
		"overlay.touch":           handleOverlayTouch,
		"overlay.reset":           handleOverlayReset,
		"display.info":            handleDisplayInfo,
		"display.swap_interval":   handleDisplaySwapInterval,
		"display.scaling_factor":  handleDisplayScalingFactor,
		"display.requery":         handleDisplayRequery,
		"system.info":             handleSystemInfo,
		"system.profiles":         handleSystemProfiles,
		"firmware.install":        handleFirmwareInstall,
		"firmware.verify":         handleFirmwareVerify,
		"cheats.list":             handleCheatsList,
		"cheats.set":              handleCheatsSet,
		"logs.list":               handleLogsList,
		"logs.write":              handleLogsWrite,
		"server.shutdown":         handleServerShutdown,
	}
}

// Execute dispatches a method call using the registry
func Execute(method string, params json.RawMessage) (interface{}, error) {
	registry := GetMethodRegistry()

	handler, exists := registry[method]
	if !exists {
		return nil, errMethodNotFound
	}

	return handler(params)
}

// responseData unwraps a command envelope: error status becomes a Go error,
// success yields the payload.
func responseData(response *commands.CommandResponse) (interface{}, error) {
	if response.Status == "error" {
		return nil, fmt.Errorf("%s", response.Error)
	}
	return response.Data, nil
}

func handleControllersList(params json.RawMessage) (interface{}, error) {
	return responseData(commands.ControllersCommand())
}

func handleControllersSetType(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: controllerId, type")
	}

	var req commands.SetTypeRequest
	if err := json.Unmarshal(params, &req); err != nil {
		return nil, fmt.Errorf("invalid parameters: %v. Expected fields: controllerId, type", err)
	}

	if _, err := responseData(commands.SetTypeCommand(req)); err != nil {
		return nil, err
	}

	return okResponse, nil
}

func handleControllersSetSlot(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: controllerId, slot")
	}

	var req commands.SetSlotRequest
	if err := json.Unmarshal(params, &req); err != nil {
		return nil, fmt.Errorf("invalid parameters: %v. Expected fields: controllerId, slot", err)
	}

	if _, err := responseData(commands.SetSlotCommand(req)); err != nil {
		return nil, err
	}

	return okResponse, nil
}

func handleControllersConnect(params json.RawMessage) (interface{}, error) {
	var req commands.ConnectVirtualRequest
	if len(params) > 0 {
		if err := json.Unmarshal(params, &req); err != nil {
			return nil, fmt.Errorf("invalid parameters: %v. Expected fields: name, type", err)
		}
	}

	return responseData(commands.ConnectVirtualCommand(req))
}

func handleControllersDisconnect(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: controllerId")
	}

	var req commands.DisconnectRequest
	if err := json.Unmarshal(params, &req); err != nil {
		return nil, fmt.Errorf("invalid parameters: %v. Expected fields: controllerId", err)
	}

	if _, err := responseData(commands.DisconnectCommand(req)); err != nil {
		return nil, err
	}

	return okResponse, nil
}

func handleOverlayLayout(params json.RawMessage) (interface{}, error) {
	return responseData(commands.OverlayCommand())
}

func handleOverlayMove(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: widgetId, x, y")
	}

	var req commands.MoveWidgetRequest
	if err := json.Unmarshal(params, &req); err != nil {
		return nil, fmt.Errorf("invalid parameters: %v. Expected fields: widgetId, x, y", err)
	}

	if _, err := responseData(commands.MoveWidgetCommand(req)); err != nil {
		return nil, err
	}

	return okResponse, nil
}

func handleOverlaySetVisible(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: widgetId, visible")
	}

	var req commands.SetWidgetVisibleRequest
	if err := json.Unmarshal(params, &req); err != nil {
		return nil, fmt.Errorf("invalid parameters: %v. Expected fields: widgetId, visible", err)
	}

	if _, err := responseData(commands.SetWidgetVisibleCommand(req)); err != nil {
		return nil, err
	}

	return okResponse, nil
}

func handleOverlayTouch(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: actions")
	}

	var req commands.TouchRequest
	if err := json.Unmarshal(params, &req); err != nil {
		return nil, fmt.Errorf("invalid parameters: %v. Expected fields: actions", err)
	}

	return responseData(commands.TouchCommand(req))
}

func handleOverlayReset(params json.RawMessage) (interface{}, error) {
	if _, err := responseData(commands.ResetDragCommand()); err != nil {
		return nil, err
	}

	return okResponse, nil
}

func handleDisplayInfo(params json.RawMessage) (interface{}, error) {
	return responseData(commands.DisplayInfoCommand())
}

func handleDisplaySwapInterval(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: interval")
	}

	var req commands.SwapIntervalRequest
	if err := json.Unmarshal(params, &req); err != nil {
		return nil, fmt.Errorf("invalid parameters: %v. Expected fields: interval", err)
	}

	return responseData(commands.SwapIntervalCommand(req))
}

func handleDisplayScalingFactor(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: factor")
	}

	var req commands.ScalingFactorRequest
	if err := json.Unmarshal(params, &req); err != nil {
		return nil, fmt.Errorf("invalid parameters: %v. Expected fields: factor", err)
	}

	return responseData(commands.ScalingFactorCommand(req))
}

func handleDisplayRequery(params json.RawMessage) (interface{}, error) {
	return responseData(commands.RequeryWindowCommand())
}

func handleSystemInfo(params json.RawMessage) (interface{}, error) {
	return responseData(commands.SystemInfoCommand())
}

func handleSystemProfiles(params json.RawMessage) (interface{}, error) {
	return responseData(commands.ProfilesCommand())
}

func handleFirmwareInstall(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: path")
	}

	var req commands.FirmwareInstallRequest
	if err := json.Unmarshal(params, &req); err != nil {
		return nil, fmt.Errorf("invalid parameters: %v. Expected fields: path", err)
	}

	if _, err := responseData(commands.FirmwareInstallCommand(req)); err != nil {
		return nil, err
	}

	return okResponse, nil
}

func handleFirmwareVerify(params json.RawMessage) (interface{}, error) {
	return responseData(commands.FirmwareVerifyCommand())
}

type cheatsListParams struct {
	TitleID string `json:"titleId"`
}

func handleCheatsList(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: titleId")
	}

	var listParams cheatsListParams
	if err := json.Unmarshal(params, &listParams); err != nil {
		return nil, fmt.Errorf("invalid parameters: %v. Expected fields: titleId", err)
	}

	return responseData(commands.CheatsCommand(listParams.TitleID))
}

func handleCheatsSet(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: titleId, name, enabled")
	}

	var req commands.CheatRequest
	if err := json.Unmarshal(params, &req); err != nil {
		return nil, fmt.Errorf("invalid parameters: %v. Expected fields: titleId, name, enabled", err)
	}

	if _, err := responseData(commands.SetCheatCommand(req)); err != nil {
		return nil, err
	}

	return okResponse, nil
}

func handleLogsList(params json.RawMessage) (interface{}, error) {
	return responseData(commands.LogsListCommand())
}

func handleLogsWrite(params json.RawMessage) (interface{}, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: tag, message")
	}

	var req commands.LogWriteRequest
	if err := json.Unmarshal(params, &req); err != nil {
		return nil, fmt.Errorf("invalid parameters: %v. Expected fields: tag, message", err)
	}

	if _, err := responseData(commands.LogWriteCommand(req)); err != nil {
		return nil, err
	}

	return okResponse, nil
}

func handleServerShutdown(params json.RawMessage) (interface{}, error) {
	// reply first, stop accepting afterwards
	go Shutdown()
	return okResponse, nil
}
