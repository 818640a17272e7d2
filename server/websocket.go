package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/mobile-next/emubridge/commands"
	"github.com/mobile-next/emubridge/devices"
	"github.com/mobile-next/emubridge/utils"
)

type wsConnection struct {
	conn    *websocket.Conn
	writeMu sync.Mutex

	watchMu sync.Mutex
	watch   *devices.Subscription
}

func newUpgrader(enableCORS bool) *websocket.Upgrader {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}

	if enableCORS {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
	} else {
		upgrader.CheckOrigin = isSameOrigin
	}

	return &upgrader
}

func handleWebSocket(w http.ResponseWriter, r *http.Request, enableCORS bool) {
	conn, err := newUpgrader(enableCORS).Upgrade(w, r, nil)
	if err != nil {
		utils.Warn("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	wsConn := &wsConnection{conn: conn}
	defer wsConn.stopWatching()

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			// connection closed or error
			utils.Verbose("WebSocket connection closed: %v", err)
			break
		}

		if messageType != websocket.TextMessage {
			wsConn.sendError(nil, ErrCodeInvalidRequest, "Invalid Request", "only text messages accepted for requests")
			continue
		}

		handleWSMessage(wsConn, message)
	}
}

func isSameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}

	return originURL.Host == r.Host
}

func handleWSMessage(wsConn *wsConnection, message []byte) {
	var req JSONRPCRequest
	if err := json.Unmarshal(message, &req); err != nil {
		wsConn.sendError(nil, ErrCodeParseError, "Parse error", "expecting jsonrpc payload")
		return
	}

	if req.JSONRPC != "2.0" {
		wsConn.sendError(req.ID, ErrCodeInvalidRequest, "Invalid Request", "'jsonrpc' must be '2.0'")
		return
	}

	if req.ID == nil {
		wsConn.sendError(nil, ErrCodeInvalidRequest, "Invalid Request", "'id' field is required")
		return
	}

	if req.Method == "" {
		wsConn.sendError(req.ID, ErrCodeInvalidRequest, "Invalid Request", "'method' is required")
		return
	}

	utils.Info("WebSocket Request ID: %v, Method: %s, Params: %s", req.ID, req.Method, string(req.Params))

	// watch methods are WebSocket-only: they stream notifications on this
	// connection until it closes or the client unwatches
	switch req.Method {
	case "controllers.watch":
		wsConn.startWatching(req.ID)
		return
	case "controllers.unwatch":
		wsConn.stopWatching()
		wsConn.sendResponse(req.ID, okResponse)
		return
	}

	handleWSMethodCall(wsConn, req)
}

func handleWSMethodCall(wsConn *wsConnection, req JSONRPCRequest) {
	result, err := Execute(req.Method, req.Params)
	if err != nil {
		if err == errMethodNotFound {
			wsConn.sendError(req.ID, ErrCodeMethodNotFound, "Method not found", req.Method+" not found")
			return
		}

		wsConn.sendError(req.ID, ErrCodeServerError, "Server error", err.Error())
		return
	}

	wsConn.sendResponse(req.ID, result)
}

// startWatching subscribes the connection to registry snapshots and streams
// each one as a controllers.changed notification.
func (wsc *wsConnection) startWatching(id interface{}) {
	env := commands.GetEnv()
	if env == nil || env.Registry == nil {
		wsc.sendError(id, ErrCodeServerError, "Server error", "no controller registry")
		return
	}

	wsc.watchMu.Lock()
	if wsc.watch != nil {
		wsc.watchMu.Unlock()
		wsc.sendResponse(id, okResponse)
		return
	}

	sub := env.Registry.Subscribe()
	wsc.watch = sub
	wsc.watchMu.Unlock()

	wsc.sendResponse(id, okResponse)

	go func() {
		for snapshot := range sub.C {
			notification := map[string]interface{}{
				"jsonrpc": "2.0",
				"method":  "controllers.changed",
				"params": map[string]interface{}{
					"controllers": snapshot,
				},
			}

			if err := wsc.sendJSON(notification); err != nil {
				utils.Verbose("WebSocket watch write failed: %v", err)
				wsc.stopWatching()
				return
			}
		}
	}()
}

// stopWatching cancels the registry subscription, if any. Safe to call
// multiple times and from multiple goroutines.
func (wsc *wsConnection) stopWatching() {
	wsc.watchMu.Lock()
	sub := wsc.watch
	wsc.watch = nil
	wsc.watchMu.Unlock()

	if sub != nil {
		sub.Cancel()
	}
}

func (wsc *wsConnection) sendResponse(id interface{}, result interface{}) error {
	response := JSONRPCResponse{
		JSONRPC: "2.0",
		Result:  result,
		ID:      id,
	}
	return wsc.sendJSON(response)
}

func (wsc *wsConnection) sendError(id interface{}, code int, message string, data interface{}) error {
	response := JSONRPCResponse{
		JSONRPC: "2.0",
		Error: map[string]interface{}{
			"code":    code,
			"message": message,
			"data":    data,
		},
		ID: id,
	}
	return wsc.sendJSON(response)
}

func (wsc *wsConnection) sendJSON(v interface{}) error {
	wsc.writeMu.Lock()
	defer wsc.writeMu.Unlock()
	return wsc.conn.WriteJSON(v)
}
