package realtime

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Channel is the redis pub/sub channel shared by every API instance.
const Channel = "realtime:changes"

type Publisher interface {
	PublishRow(ctx context.Context, table, op, id string, record any)
}

type envelope struct {
	Origin string `json:"origin"`
	Event  Event  `json:"event"`
}

// Broadcaster publishes committed changes to the local hub and, when redis
// is configured, to the other instances.
type Broadcaster struct {
	hub    *Hub
	redis  *redis.Client
	origin string
	log    *zap.Logger
}

func NewBroadcaster(hub *Hub, rdb *redis.Client, log *zap.Logger) *Broadcaster {
	return &Broadcaster{
		hub:    hub,
		redis:  rdb,
		origin: uuid.NewString(),
		log:    log,
	}
}

func (b *Broadcaster) PublishRow(ctx context.Context, table, op, id string, record any) {
	ev, err := NewEvent(table, op, id, record)
	if err != nil {
		b.log.Warn("realtime encode failed", zap.Error(err))
		return
	}

	b.hub.Broadcast(ev)

	if b.redis == nil {
		return
	}
	payload, err := json.Marshal(envelope{Origin: b.origin, Event: ev})
	if err != nil {
		return
	}
	if err := b.redis.Publish(ctx, Channel, payload).Err(); err != nil {
		b.log.Warn("realtime redis publish failed", zap.String("table", table), zap.Error(err))
	}
}

// Run forwards events published by other instances until ctx is done.
func (b *Broadcaster) Run(ctx context.Context) {
	if b.redis == nil {
		return
	}

	sub := b.redis.Subscribe(ctx, Channel)
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
			b.forward(msg.Payload)
		}
	}
}

func (b *Broadcaster) forward(payload string) {
	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		b.log.Warn("realtime bad envelope", zap.Error(err))
		return
	}
	if env.Origin == b.origin {
		return
	}
	b.hub.Broadcast(env.Event)
}
