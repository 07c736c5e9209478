package websockets

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Message types
const (
	MsgTypeSubscribe       = "subscribe"
	MsgTypeRouteUpdate     = "route_update"
	MsgTypeSettingsUpdate  = "settings_update"
	MsgTypeRecurringUpdate = "recurring_update"
)

// Client represents a connected dashboard session
type Client struct {
	Conn    *websocket.Conn
	AdminID string
	EventID string // event the session is currently editing, empty for all
}

type WebSocketManager struct {
	clients    map[*websocket.Conn]*Client
	broadcast  chan EventUpdate
	register   chan *Client
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

// Message struct for incoming WebSocket messages
type Message struct {
	Type    string `json:"type"`
	AdminID string `json:"admin_id,omitempty"`
	EventID string `json:"event_id,omitempty"`
}

// EventUpdate is pushed to every session watching the given event.
type EventUpdate struct {
	Type    string      `json:"type"`
	EventID string      `json:"event_id"`
	Payload interface{} `json:"payload,omitempty"`
}
