package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobile-next/emubridge/devices"
)

func dialWS(t *testing.T) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handleWebSocket(w, r, true)
	}))
	t.Cleanup(srv.Close)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()

	var msg map[string]interface{}
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestWebSocket_MethodCall(t *testing.T) {
	setupEnv(t)
	conn := dialWS(t)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"jsonrpc": "2.0",
		"method":  "controllers.list",
		"id":      1,
	}))

	msg := readEnvelope(t, conn)
	assert.Nil(t, msg["error"])
	assert.NotNil(t, msg["result"])
}

func TestWebSocket_InvalidEnvelope(t *testing.T) {
	setupEnv(t)
	conn := dialWS(t)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"jsonrpc":"2.0","method":"controllers.list"}`)))

	msg := readEnvelope(t, conn)
	errObj := msg["error"].(map[string]interface{})
	assert.Equal(t, float64(ErrCodeInvalidRequest), errObj["code"])
}

func TestWebSocket_UnknownMethod(t *testing.T) {
	setupEnv(t)
	conn := dialWS(t)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"jsonrpc": "2.0",
		"method":  "warp.drive",
		"id":      1,
	}))

	msg := readEnvelope(t, conn)
	errObj := msg["error"].(map[string]interface{})
	assert.Equal(t, float64(ErrCodeMethodNotFound), errObj["code"])
}

func TestWebSocket_WatchStreamsControllerChanges(t *testing.T) {
	e := setupEnv(t)
	conn := dialWS(t)

	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"jsonrpc": "2.0",
		"method":  "controllers.watch",
		"id":      1,
	}))

	// ack, then the initial snapshot notification
	msg := readEnvelope(t, conn)
	assert.Nil(t, msg["error"])

	msg = readEnvelope(t, conn)
	require.Equal(t, "controllers.changed", msg["method"])
	params := msg["params"].(map[string]interface{})
	assert.Empty(t, params["controllers"])

	e.Registry.Add(devices.Controller{ID: "A", Name: "Pad", Type: devices.JoyConPair})

	msg = readEnvelope(t, conn)
	require.Equal(t, "controllers.changed", msg["method"])
	controllers := msg["params"].(map[string]interface{})["controllers"].([]interface{})
	require.Len(t, controllers, 1)
	assert.Equal(t, "A", controllers[0].(map[string]interface{})["id"])

	// unwatch stops the stream; subsequent registry changes produce no
	// notifications, so the next read sees only the unwatch ack
	require.NoError(t, conn.WriteJSON(map[string]interface{}{
		"jsonrpc": "2.0",
		"method":  "controllers.unwatch",
		"id":      2,
	}))

	for {
		msg = readEnvelope(t, conn)
		if msg["method"] == "controllers.changed" {
			continue
		}
		break
	}
	assert.Nil(t, msg["error"])
	assert.EqualValues(t, 2, msg["id"])
}
