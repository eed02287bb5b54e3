package booking_events

import (
	"context"
	"encoding/json"
	"fmt"

	"logistics/internal/entities"
)

type Gateway struct {
	producer producer
}

func New(producer producer) *Gateway {
	return &Gateway{
		producer: producer,
	}
}

// PublishStatusChange ключует сообщение id заказа, порядок статусов одного заказа сохраняется.
func (g *Gateway) PublishStatusChange(ctx context.Context, change entities.BookingStatusChange) error {
	payload, err := json.Marshal(FromDomain(change))
	if err != nil {
		return fmt.Errorf("marshal status change: %w", err)
	}

	if err := g.producer.Send(ctx, change.BookingID, payload); err != nil {
		return fmt.Errorf("publish status change %s/%s: %w", change.BookingID, change.Status, err)
	}
	return nil
}
