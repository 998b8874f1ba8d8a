package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"couple-wellness-backend/internal/models"
	"couple-wellness-backend/internal/services"
	"couple-wellness-backend/internal/services/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func waitPartnerStatus(t *testing.T, events <-chan services.Event) bool {
	t.Helper()
	select {
	case ev := <-events:
		require.Equal(t, services.EventPartnerStatus, ev.Type)
		require.Equal(t, husband.ID, ev.RecipientID)
		return ev.Data.(bool)
	case <-time.After(2 * time.Second):
		t.Fatal("partner status not published")
		return false
	}
}

func TestWebSocket_ReconnectDoesNotReportOffline(t *testing.T) {
	couples := mocks.NewCoupleStore(t)
	couples.On("GetByMember", mock.Anything, wife.ID).
		Return(&models.Couple{ID: 3, WifeID: wife.ID, HusbandID: husband.ID}, nil)

	memberService := services.NewMemberService(mocks.NewMemberStore(t), testSecret, 1)
	coupleService := services.NewCoupleService(couples, mocks.NewMemberStore(t), nil)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	events := make(chan services.Event, 8)
	bus := services.NewLocalBus()
	require.NoError(t, bus.Start(ctx, func(ev services.Event) { events <- ev }))

	handler := NewWebSocketHandler(services.NewWSHub(), bus, memberService, coupleService)
	r := chi.NewRouter()
	r.Get("/ws", handler.HandleWebSocket)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	token, err := memberService.GenerateJWT(wife.ID)
	require.NoError(t, err)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + token

	first, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer first.Close()
	assert.True(t, waitPartnerStatus(t, events))

	second, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	assert.True(t, waitPartnerStatus(t, events))

	// the first connection is closed by the hub; its handler exits without an offline notice
	select {
	case ev := <-events:
		t.Fatalf("unexpected event after reconnect: %+v", ev)
	case <-time.After(300 * time.Millisecond):
	}

	require.NoError(t, second.Close())
	assert.False(t, waitPartnerStatus(t, events))
}
