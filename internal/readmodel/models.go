package readmodel

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductReadModel is the read model for products
type ProductReadModel struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"image_url,omitempty"`
	Stock       int             `json:"stock"`
	InStock     bool            `json:"in_stock"`
}

// CategoryReadModel is a catalog category with its product count
type CategoryReadModel struct {
	Name         string `json:"name"`
	ProductCount int    `json:"product_count"`
}

// CartItemReadModel represents a line in the cart. Available is false when the
// product no longer resolves; such lines contribute nothing to the total.
type CartItemReadModel struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	LineTotal decimal.Decimal `json:"line_total"`
	Available bool            `json:"available"`
}

// CartReadModel is the read model for the shopping cart
type CartReadModel struct {
	Items     []CartItemReadModel `json:"items"`
	Total     decimal.Decimal     `json:"total"`
	ItemCount int                 `json:"item_count"`
}

// OrderItemReadModel represents an item in an order
type OrderItemReadModel struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// ShippingReadModel is the delivery address of an order
type ShippingReadModel struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
}

// OrderReadModel is the read model for orders. Payment details are reduced to a masked card number.
type OrderReadModel struct {
	ID              int64                `json:"id"`
	UserID          int64                `json:"user_id"`
	Items           []OrderItemReadModel `json:"items"`
	Total           decimal.Decimal      `json:"total"`
	ItemCount       int                  `json:"item_count"`
	ShippingAddress ShippingReadModel    `json:"shipping_address"`
	CardNumber      string               `json:"card_number"`
	Status          string               `json:"status"`
	OrderDate       time.Time            `json:"order_date"`
}

// UserReadModel is the read model for users
type UserReadModel struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MaskCardNumber keeps the last four digits of a card number
func MaskCardNumber(number string) string {
	digits := make([]rune, 0, len(number))
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) <= 4 {
		return "****"
	}
	return "**** " + string(digits[len(digits)-4:])
}
