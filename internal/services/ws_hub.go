package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string      `json:"type"`
	Online  *bool       `json:"online,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// wsClient serializes writes to one connection
type wsClient struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsClient) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// WSHub manages WebSocket connections on this instance
type WSHub struct {
	mu          sync.RWMutex
	connections map[int64]*wsClient
}

// NewWSHub creates a new WebSocket hub
func NewWSHub() *WSHub {
	return &WSHub{
		connections: make(map[int64]*wsClient),
	}
}

// Register registers a new WebSocket connection for a member, replacing any previous one
func (h *WSHub) Register(memberID int64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if existing, ok := h.connections[memberID]; ok {
		existing.conn.Close()
	}
	h.connections[memberID] = &wsClient{conn: conn}

	log.Info().Int64("member_id", memberID).Msg("WebSocket connection registered")
}

// Unregister removes the member's connection if it is still conn and reports whether it did.
// A connection already replaced by a newer one is only closed.
func (h *WSHub) Unregister(memberID int64, conn *websocket.Conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.connections[memberID]
	if !ok || c.conn != conn {
		conn.Close()
		return false
	}

	c.conn.Close()
	delete(h.connections, memberID)
	log.Info().Int64("member_id", memberID).Msg("WebSocket connection unregistered")
	return true
}

// SendToMember sends a message to a specific member
func (h *WSHub) SendToMember(memberID int64, message WSMessage) error {
	h.mu.RLock()
	client, ok := h.connections[memberID]
	h.mu.RUnlock()

	if !ok {
		return fmt.Errorf("member %d is not connected", memberID)
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := client.write(data); err != nil {
		h.Unregister(memberID, client.conn)
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

// IsOnline checks if a member is connected to this instance
func (h *WSHub) IsOnline(memberID int64) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.connections[memberID]
	return ok
}

// Deliver forwards a bus event to its recipient when connected here
func (h *WSHub) Deliver(ev Event) {
	if !h.IsOnline(ev.RecipientID) {
		return
	}

	msg := WSMessage{Type: ev.Type, Data: ev.Data}
	if ev.Type == EventPartnerStatus {
		if online, ok := ev.Data.(bool); ok {
			msg = WSMessage{Type: ev.Type, Online: &online}
		}
	}

	if err := h.SendToMember(ev.RecipientID, msg); err != nil {
		log.Error().
			Err(err).
			Str("type", ev.Type).
			Int64("member_id", ev.RecipientID).
			Msg("Failed to deliver event")
	}
}
