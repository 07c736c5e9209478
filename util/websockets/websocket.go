package websockets

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NewWebSocketManager initializes a WebSocketManager
func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[*websocket.Conn]*Client),
		broadcast:  make(chan EventUpdate),
		register:   make(chan *Client),
		unregister: make(chan *websocket.Conn),
	}
}

// Run starts the WebSocket manager
func (manager *WebSocketManager) Run() {
	for {
		select {
		case client := <-manager.register:
			manager.mu.Lock()
			manager.clients[client.Conn] = client
			manager.mu.Unlock()

		case conn := <-manager.unregister:
			manager.mu.Lock()
			if client, exists := manager.clients[conn]; exists {
				delete(manager.clients, conn)
				conn.Close()
				logrus.Infof("dashboard session %s disconnected", client.AdminID)
			}
			manager.mu.Unlock()

		case update := <-manager.broadcast:
			msg, err := json.Marshal(update)
			if err != nil {
				logrus.WithError(err).Error("failed to marshal event update")
				continue
			}
			manager.mu.Lock()
			for _, client := range manager.clients {
				if client.EventID != "" && client.EventID != update.EventID {
					continue
				}
				if err := client.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					client.Conn.Close()
					delete(manager.clients, client.Conn)
				}
			}
			manager.mu.Unlock()
		}
	}
}

// HandleConnections upgrades HTTP requests to WebSocket connections
func (manager *WebSocketManager) HandleConnections(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.WithError(err).Error("websocket upgrade failed")
		return
	}

	client := &Client{Conn: conn}
	manager.register <- client

	defer func() {
		manager.unregister <- conn
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			manager.unregister <- conn
			break
		}

		var message Message
		if err := json.Unmarshal(msg, &message); err != nil {
			logrus.WithError(err).Warn("invalid websocket message")
			continue
		}

		if message.Type == MsgTypeSubscribe {
			client.AdminID = message.AdminID
			client.EventID = message.EventID
		}
	}
}

// BroadcastEventUpdate pushes a change notice to every session watching the event.
func (manager *WebSocketManager) BroadcastEventUpdate(update EventUpdate) {
	manager.broadcast <- update
}
