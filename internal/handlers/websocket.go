package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"couple-wellness-backend/internal/services"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler handles WebSocket connections
type WebSocketHandler struct {
	hub           *services.WSHub
	bus           services.EventBus
	memberService *services.MemberService
	coupleService *services.CoupleService
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(
	hub *services.WSHub,
	bus services.EventBus,
	memberService *services.MemberService,
	coupleService *services.CoupleService,
) *WebSocketHandler {
	return &WebSocketHandler{
		hub:           hub,
		bus:           bus,
		memberService: memberService,
		coupleService: coupleService,
	}
}

// HandleWebSocket handles GET /ws?token=...
func (h *WebSocketHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		respondError(w, "token required", http.StatusUnauthorized)
		return
	}

	memberID, err := h.memberService.ValidateJWT(token)
	if err != nil {
		respondError(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to upgrade WebSocket connection")
		return
	}

	h.hub.Register(memberID, conn)

	ctx := r.Context()
	partnerID := h.sendPairStatus(ctx, memberID)

	// a replaced connection leaves quietly; only the member's last connection reports offline.
	// The request context ends with the handler, so the offline notice gets its own.
	defer func() {
		removed := h.hub.Unregister(memberID, conn)
		if removed && partnerID != 0 && !h.hub.IsOnline(memberID) {
			h.publishPartnerStatus(context.Background(), partnerID, false)
		}
	}()

	if partnerID != 0 {
		h.publishPartnerStatus(ctx, partnerID, true)
	}

	log.Info().Int64("member_id", memberID).Msg("WebSocket connection established")

	for {
		_, messageBytes, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Error().Err(err).Int64("member_id", memberID).Msg("WebSocket error")
			}
			break
		}

		var msg services.WSMessage
		if err := json.Unmarshal(messageBytes, &msg); err != nil {
			log.Error().Err(err).Int64("member_id", memberID).Msg("Failed to parse WebSocket message")
			h.sendError(memberID, "Invalid message format")
			continue
		}

		h.handleMessage(memberID, msg)
	}
}

// sendPairStatus tells the member whether they are paired and returns the partner id
func (h *WebSocketHandler) sendPairStatus(ctx context.Context, memberID int64) int64 {
	data := map[string]interface{}{"has_pair": false}

	var partnerID int64
	couple, err := h.coupleService.GetCouple(ctx, memberID)
	if err == nil {
		partnerID = couple.PartnerOf(memberID)
		data = map[string]interface{}{
			"has_pair":       true,
			"couple_id":      couple.ID,
			"partner_id":     partnerID,
			"partner_online": h.hub.IsOnline(partnerID),
		}
	}

	if err := h.hub.SendToMember(memberID, services.WSMessage{Type: "pair_status", Data: data}); err != nil {
		log.Error().
			Err(err).
			Int64("member_id", memberID).
			Msg("Failed to send pair_status message")
	}
	return partnerID
}

func (h *WebSocketHandler) publishPartnerStatus(ctx context.Context, partnerID int64, online bool) {
	ev := services.Event{
		Type:        services.EventPartnerStatus,
		RecipientID: partnerID,
		Data:        online,
	}
	if err := h.bus.Publish(ctx, ev); err != nil {
		log.Error().
			Err(err).
			Int64("member_id", partnerID).
			Bool("online", online).
			Msg("Failed to publish partner status")
	}
}

// handleMessage processes incoming WebSocket messages
func (h *WebSocketHandler) handleMessage(memberID int64, msg services.WSMessage) {
	switch msg.Type {
	case "ping":
		if err := h.hub.SendToMember(memberID, services.WSMessage{Type: "pong"}); err != nil {
			log.Error().Err(err).Int64("member_id", memberID).Msg("Failed to send pong")
		}
	default:
		h.sendError(memberID, "Unknown message type")
	}
}

// sendError sends an error message to a member
func (h *WebSocketHandler) sendError(memberID int64, message string) {
	msg := services.WSMessage{
		Type:    "error",
		Message: message,
	}
	if err := h.hub.SendToMember(memberID, msg); err != nil {
		log.Error().Err(err).Int64("member_id", memberID).Msg("Failed to send error message")
	}
}
