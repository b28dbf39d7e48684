package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/storefront/internal/domain/order"
	"github.com/example/storefront/internal/email"
	"github.com/example/storefront/internal/events"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Mailer sends order confirmations. *email.Service satisfies it.
type Mailer interface {
	SendOrderConfirmation(to string, orderID int64, total decimal.Decimal, items []email.OrderItem) error
}

// Handler processes consumed events for notifications
type Handler struct {
	notifier Notifier
	mailer   Mailer
}

// NewHandler creates a new notification handler. mailer may be nil to skip confirmation mail.
func NewHandler(notifier Notifier, mailer Mailer) *Handler {
	return &Handler{
		notifier: notifier,
		mailer:   mailer,
	}
}

// HandleEvent processes an event from Kafka
func (h *Handler) HandleEvent(ctx context.Context, key, value []byte) error {
	var event events.Event
	if err := json.Unmarshal(value, &event); err != nil {
		log.Error().Err(err).Str("component", "notifier").Msg("failed to unmarshal event")
		return err
	}

	// Only process order.placed events
	if event.Type == order.EventOrderPlaced {
		return h.handleOrderPlaced(ctx, event)
	}

	return nil
}

func (h *Handler) handleOrderPlaced(ctx context.Context, event events.Event) error {
	var e order.OrderPlaced
	if err := event.Decode(&e); err != nil {
		log.Error().Err(err).Str("component", "notifier").Str("event_id", event.ID).Msg("failed to decode order.placed event")
		return err
	}

	log.Info().
		Str("component", "notifier").
		Int64("order_id", e.OrderID).
		Int64("user_id", e.UserID).
		Msg("processing order.placed event")

	h.notifier.Notify(ctx, Info(fmt.Sprintf("Order #%d is processing (total %s)", e.OrderID, e.Total.StringFixed(2))))

	if h.mailer == nil || e.Email == "" {
		return nil
	}

	items := make([]email.OrderItem, len(e.Items))
	for i, item := range e.Items {
		items[i] = email.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	if err := h.mailer.SendOrderConfirmation(e.Email, e.OrderID, e.Total, items); err != nil {
		log.Error().Err(err).Str("component", "notifier").Str("email", e.Email).Msg("failed to send order confirmation")
		return err
	}

	log.Info().Str("component", "notifier").Str("email", e.Email).Int64("order_id", e.OrderID).Msg("order confirmation sent")
	return nil
}
