package orders

import (
	"time"
)

// Event is one order lifecycle message from the orders topic.
type Event struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
