package order

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderPlaced = "order.placed"
)

// OrderPlaced is emitted when checkout creates an order
type OrderPlaced struct {
	OrderID  int64             `json:"order_id"`
	UserID   int64             `json:"user_id"`
	Email    string            `json:"email"`
	Items    []OrderPlacedItem `json:"items"`
	Total    decimal.Decimal   `json:"total"`
	City     string            `json:"city"`
	PlacedAt time.Time         `json:"placed_at"`
}

// OrderPlacedItem is an order line with its product name resolved at checkout
type OrderPlacedItem struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}
