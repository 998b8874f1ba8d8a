package services

import (
	"context"

	"couple-wellness-backend/internal/models"

	"github.com/rs/zerolog/log"
)

// Notifier tells members about things their spouse did. Delivery is best effort.
type Notifier interface {
	CoupleCreated(ctx context.Context, couple *models.Couple, requester, spouse *models.Member)
	MissionCompleted(ctx context.Context, record *models.EmotionRecord, spouse *models.Member)
}

// SpouseNotifier publishes realtime events and sends push notifications
type SpouseNotifier struct {
	bus    EventBus
	pusher Pusher
}

// NewSpouseNotifier creates a notifier. A nil pusher disables push.
func NewSpouseNotifier(bus EventBus, pusher Pusher) *SpouseNotifier {
	if pusher == nil {
		pusher = NoopPusher{}
	}
	return &SpouseNotifier{bus: bus, pusher: pusher}
}

func (n *SpouseNotifier) CoupleCreated(ctx context.Context, couple *models.Couple, requester, spouse *models.Member) {
	data := map[string]interface{}{
		"couple_id":  couple.ID,
		"wife_id":    couple.WifeID,
		"husband_id": couple.HusbandID,
		"created_at": couple.CreatedAt,
	}
	for _, id := range []int64{couple.WifeID, couple.HusbandID} {
		n.publish(ctx, Event{Type: EventCoupleCreated, RecipientID: id, Data: data})
	}

	n.push(ctx, spouse, "Couple connected", requester.Username+" connected with you")
}

func (n *SpouseNotifier) MissionCompleted(ctx context.Context, record *models.EmotionRecord, spouse *models.Member) {
	n.publish(ctx, Event{
		Type:        EventMissionUpdated,
		RecipientID: spouse.ID,
		Data: map[string]interface{}{
			"member_id":       record.MemberID,
			"emotion_id":      record.ID,
			"mission_content": record.MissionContent,
			"is_complement":   record.IsComplement,
		},
	})

	n.push(ctx, spouse, "Mission completed", "Your spouse completed today's mission")
}

func (n *SpouseNotifier) publish(ctx context.Context, ev Event) {
	if n.bus == nil {
		return
	}
	if err := n.bus.Publish(ctx, ev); err != nil {
		log.Error().
			Err(err).
			Str("type", ev.Type).
			Int64("recipient_id", ev.RecipientID).
			Msg("Failed to publish event")
	}
}

func (n *SpouseNotifier) push(ctx context.Context, member *models.Member, title, body string) {
	if member == nil || member.PushToken == nil || *member.PushToken == "" {
		return
	}
	if err := n.pusher.Push(ctx, *member.PushToken, title, body); err != nil {
		log.Error().
			Err(err).
			Int64("member_id", member.ID).
			Msg("Failed to send push notification")
	}
}
