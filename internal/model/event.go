package model

import "time"

// StatusChangeEvent is published after a validation commits.
type StatusChangeEvent struct {
	EventID     string      `json:"eventId"`
	OrderID     int64       `json:"orderId"`
	OrderNumber string      `json:"orderNumber"`
	FromStatus  OrderStatus `json:"fromStatus"`
	ToStatus    OrderStatus `json:"toStatus"`
	Timestamp   time.Time   `json:"timestamp"`
}
