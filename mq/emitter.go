package mq

import (
	"context"
	"encoding/json"
	"log"

	"travelhub/rdx"
)

const eventsChannel = "travelhub-events"

// Event describes an entity lifecycle change published on Redis.
type Event struct {
	EntityType string   `json:"entity_type"`
	EntityID   string   `json:"entity_id"`
	Method     string   `json:"method"`
	UserID     string   `json:"user_id,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// Emit publishes an event; failures are logged, never surfaced.
func Emit(ctx context.Context, event Event) {
	if rdx.Conn == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[mq] marshal failed: %v", err)
		return
	}
	if err := rdx.Conn.Publish(ctx, eventsChannel, data).Err(); err != nil {
		log.Printf("[mq] publish failed: %v", err)
	}
}

// StartEventWorker consumes lifecycle events and maintains the
// trending tag counters. Runs until the context is cancelled.
func StartEventWorker(ctx context.Context) {
	if rdx.Conn == nil {
		return
	}
	sub := rdx.Conn.Subscribe(ctx, eventsChannel)
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
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("[mq] bad event payload: %v", err)
				continue
			}
			handle(ctx, event)
		}
	}
}

func handle(ctx context.Context, event Event) {
	switch {
	case event.EntityType == "post" && event.Method == "POST":
		rdx.BumpTrendingTags(ctx, event.Tags)
	case event.EntityType == "like" && event.Method == "POST":
		rdx.BumpTrendingTags(ctx, event.Tags)
	}
}
