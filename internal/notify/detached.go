package notify

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/DrGermanius/Gophercash/internal/model"
)

// Detached runs every publish in its own goroutine with its own deadline,
// detached from the request context. Errors are logged and dropped.
type Detached struct {
	next    Publisher
	timeout time.Duration
	logger  *zap.SugaredLogger
}

func NewDetached(next Publisher, timeout time.Duration, logger *zap.SugaredLogger) *Detached {
	return &Detached{next: next, timeout: timeout, logger: logger}
}

func (d *Detached) Notify(e model.StatusChangeEvent) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				d.logger.Errorf("status change publisher panicked: %v", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if err := d.next.Publish(ctx, e); err != nil {
			d.logger.Warnw("status change not published", "orderId", e.OrderID, "error", err.Error())
		}
	}()
	return done
}
