package config

import (
	"net/http"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader websocket.Upgrader
}

// NewWebSocket accepts connections from any origin in development. In
// production the upgrader keeps its same-origin check.
func NewWebSocket(development bool) *WebSocket {
	upgrader := websocket.Upgrader{}
	if development {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
	}
	return &WebSocket{Upgrader: upgrader}
}
