package kafka

import (
	"strings"
	"time"

	"github.com/mrsedghi/deliverino-sub000/internal/service/orders"
)

// EventDTO is the wire shape of an upstream order event.
type EventDTO struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ToDomain converts EventDTO to orders.Event
func ToDomain(dto EventDTO) orders.Event {
	return orders.Event{
		OrderID:   strings.TrimSpace(dto.OrderID),
		Status:    strings.TrimSpace(dto.Status),
		CreatedAt: dto.CreatedAt,
	}
}
