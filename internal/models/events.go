package models

import "time"

// Notification types published by the backend
const (
	NotificationCheckoutUpdated      = "CHECKOUT_UPDATED"
	NotificationOrderStatusChanged   = "ORDER_STATUS_CHANGED"
	NotificationPaymentStatusChanged = "PAYMENT_STATUS_CHANGED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// SignalEvent is the journal record of a signal applied to a session store
type SignalEvent struct {
	BaseEvent
	CheckoutID string `json:"checkout_id"`
	Error      bool   `json:"error"`
	Payload    any    `json:"payload,omitempty"`
}

// Notification is a backend event about a checkout or its order
type Notification struct {
	BaseEvent
	CheckoutID string `json:"checkout_id"`
	OrderID    int64  `json:"order_id,omitempty"`
	Status     string `json:"status,omitempty"`
}
