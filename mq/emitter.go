package mq

import (
	"context"
	"encoding/json"
	"log"

	"vesture/models"
	"vesture/rdx"

	"github.com/redis/go-redis/v9"
)

// Channel carries freshly created notifications to live subscribers
// (the websocket stream). Delivery is best-effort: the notification is
// already persisted before anything is published here.
const notificationChannel = "notification-events"

// EmitNotification publishes a stored notification to the live channel.
func EmitNotification(ctx context.Context, n models.Notification) {
	data, err := json.Marshal(n)
	if err != nil {
		log.Printf("mq: failed to marshal notification: %v", err)
		return
	}
	if err := rdx.Conn.Publish(ctx, notificationChannel, data).Err(); err != nil {
		log.Printf("mq: failed to publish notification: %v", err)
	}
}

// SubscribeNotifications returns a live subscription to the notification
// channel. The caller owns the subscription and must Close it.
func SubscribeNotifications(ctx context.Context) *redis.PubSub {
	return rdx.Conn.Subscribe(ctx, notificationChannel)
}
