// Package pubsub publishes shop change events to Google Pub/Sub or, in
// development, to a local HTTP endpoint that receives push-format messages.
package pubsub

import (
	"strconv"

	"shopradar/internal/domain/service"
)

// eventAttributes are the message attributes subscribers filter and trace on.
func eventAttributes(event *service.ShopChangedEvent) map[string]string {
	attributes := map[string]string{
		"event_id":   event.EventID,
		"event_type": event.Type,
		"shop_id":    strconv.FormatInt(event.ShopID, 10),
		"vendor_id":  strconv.FormatInt(event.VendorID, 10),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
