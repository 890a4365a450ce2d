package service

import (
	"context"
	"time"
)

// Shop change event types.
const (
	ShopEventCreated = "shop.created"
	ShopEventUpdated = "shop.updated"
	ShopEventDeleted = "shop.deleted"
)

// ShopChangedEvent is published after a shop write commits.
type ShopChangedEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	ShopID     int64     `json:"shop_id"`
	VendorID   int64     `json:"vendor_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishShopEvent publishes a shop change event
	PublishShopEvent(ctx context.Context, event *ShopChangedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
