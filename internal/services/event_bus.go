package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Event types delivered to connected members
const (
	EventCoupleCreated  = "couple_created"
	EventMissionUpdated = "mission_updated"
	EventPartnerStatus  = "partner_status"
)

// Event is addressed to a single member
type Event struct {
	Type        string      `json:"type"`
	RecipientID int64       `json:"recipient_id"`
	Data        interface{} `json:"data,omitempty"`
}

// EventBus fans events out to every server instance
type EventBus interface {
	Publish(ctx context.Context, ev Event) error
	// Start delivers events to onEvent until ctx is done.
	Start(ctx context.Context, onEvent func(Event)) error
	Close() error
}

// LocalBus delivers events inside the current process
type LocalBus struct {
	mu      sync.RWMutex
	onEvent func(Event)
}

// NewLocalBus creates an in-process bus
func NewLocalBus() *LocalBus {
	return &LocalBus{}
}

func (b *LocalBus) Publish(_ context.Context, ev Event) error {
	b.mu.RLock()
	onEvent := b.onEvent
	b.mu.RUnlock()

	if onEvent != nil {
		onEvent(ev)
	}
	return nil
}

func (b *LocalBus) Start(ctx context.Context, onEvent func(Event)) error {
	if onEvent == nil {
		return fmt.Errorf("onEvent callback required")
	}
	b.mu.Lock()
	b.onEvent = onEvent
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		b.onEvent = nil
		b.mu.Unlock()
	}()
	return nil
}

func (b *LocalBus) Close() error { return nil }

// RedisBus publishes events on a Redis pub/sub channel
type RedisBus struct {
	rdb     *redis.Client
	channel string
}

// NewRedisBus connects to Redis and verifies the connection
func NewRedisBus(ctx context.Context, addr, password string, db int, channel string) (*RedisBus, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisBus{rdb: rdb, channel: channel}, nil
}

func (b *RedisBus) Publish(ctx context.Context, ev Event) error {
	raw, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := b.rdb.Publish(ctx, b.channel, raw).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

func (b *RedisBus) Start(ctx context.Context, onEvent func(Event)) error {
	if onEvent == nil {
		return fmt.Errorf("onEvent callback required")
	}

	sub := b.rdb.Subscribe(ctx, b.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("redis subscribe: %w", err)
	}

	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var ev Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					log.Warn().Err(err).Str("channel", b.channel).Msg("Dropping malformed event")
					continue
				}
				onEvent(ev)
			}
		}
	}()

	return nil
}

func (b *RedisBus) Close() error {
	return b.rdb.Close()
}
