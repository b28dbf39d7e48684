package cart

import "github.com/shopspring/decimal"

const (
	EventItemAdded   = "cart.item.added"
	EventItemUpdated = "cart.item.updated"
	EventItemRemoved = "cart.item.removed"
	EventCartCleared = "cart.cleared"
)

type ItemAdded struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// ItemUpdated carries the resulting quantity after a delta was applied
type ItemUpdated struct {
	ProductID int64 `json:"product_id"`
	Delta     int   `json:"delta"`
	Quantity  int   `json:"quantity"`
}

type ItemRemoved struct {
	ProductID int64 `json:"product_id"`
}

type CartCleared struct {
	ItemCount int `json:"item_count"`
}
