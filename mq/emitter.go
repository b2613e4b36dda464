package mq

import (
	"context"
	"encoding/json"
	"log"

	"pawmart/models"
	"pawmart/rdx"
)

const channel = "store-events"

// Emit publishes a storefront event to Redis. Fire-and-forget: a
// publish failure is logged and the request carries on.
func Emit(eventName string, content models.Index) {
	content.Method = eventName
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if rdx.Conn == nil {
		return
	}
	if err := rdx.Conn.Publish(context.Background(), channel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s: %v", eventName, err)
	}
}
