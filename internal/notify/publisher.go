// Package notify publishes order status changes. Publishing is fire-and-forget:
// nothing returned from here can fail a validation.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DrGermanius/Gophercash/internal/model"
)

const Channel = "orders-updates"

type Publisher interface {
	Publish(ctx context.Context, e model.StatusChangeEvent) error
}

// NewEvent stamps an event id and timestamp.
func NewEvent(orderID int64, orderNumber string, from, to model.OrderStatus) model.StatusChangeEvent {
	return model.StatusChangeEvent{
		EventID:     uuid.NewString(),
		OrderID:     orderID,
		OrderNumber: orderNumber,
		FromStatus:  from,
		ToStatus:    to,
		Timestamp:   time.Now().UTC(),
	}
}

type LogPublisher struct {
	logger *zap.SugaredLogger
}

func NewLogPublisher(logger *zap.SugaredLogger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, e model.StatusChangeEvent) error {
	p.logger.Infow("order-status-changed",
		"channel", Channel,
		"eventId", e.EventID,
		"orderId", e.OrderID,
		"orderNumber", e.OrderNumber,
		"from", e.FromStatus,
		"to", e.ToStatus,
	)
	return nil
}

// WebhookPublisher POSTs the event as JSON to a bus adapter.
type WebhookPublisher struct {
	client *http.Client
	url    string
}

func NewWebhookPublisher(url string, timeout time.Duration) *WebhookPublisher {
	return &WebhookPublisher{client: &http.Client{Timeout: timeout}, url: url}
}

func (p *WebhookPublisher) Publish(ctx context.Context, e model.StatusChangeEvent) error {
	body, err := json.Marshal(e)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Event-Channel", Channel)

	res, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("webhook returned %d", res.StatusCode)
	}
	return nil
}

// Fanout publishes to every publisher and returns the first error.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, e model.StatusChangeEvent) error {
	var first error
	for _, p := range f {
		if err := p.Publish(ctx, e); err != nil && first == nil {
			first = err
		}
	}
	return first
}
