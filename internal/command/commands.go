package command

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func required(fields map[string]string) error {
	var missing []string
	for _, name := range []string{"name", "email", "password", "address", "city", "zip", "card_number", "expiry", "cvv"} {
		if value, ok := fields[name]; ok && strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return invalid("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Cart Commands

// AddToCart adds Quantity of a product. A zero quantity means one.
type AddToCart struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

func (c *AddToCart) Validate() error {
	if c.ProductID <= 0 {
		return invalid("product_id must be positive")
	}
	if c.Quantity < 0 {
		return invalid("quantity must not be negative")
	}
	if c.Quantity == 0 {
		c.Quantity = 1
	}
	return nil
}

// UpdateCartQuantity changes a line's quantity by Delta
type UpdateCartQuantity struct {
	ProductID int64 `json:"product_id"`
	Delta     int   `json:"delta"`
}

func (c *UpdateCartQuantity) Validate() error {
	if c.ProductID <= 0 {
		return invalid("product_id must be positive")
	}
	return nil
}

type RemoveFromCart struct {
	ProductID int64 `json:"product_id"`
}

func (c *RemoveFromCart) Validate() error {
	if c.ProductID <= 0 {
		return invalid("product_id must be positive")
	}
	return nil
}

type ClearCart struct{}

func (c *ClearCart) Validate() error { return nil }

// Session Commands

type Register struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (c *Register) Validate() error {
	return required(map[string]string{
		"name":     c.Name,
		"email":    c.Email,
		"password": c.Password,
	})
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Login) Validate() error {
	return required(map[string]string{
		"email":    c.Email,
		"password": c.Password,
	})
}

type Logout struct{}

func (c *Logout) Validate() error { return nil }

// Order Commands

// Checkout places an order from the current cart for the current user
type Checkout struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	Zip        string `json:"zip"`
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

func (c *Checkout) Validate() error {
	return required(map[string]string{
		"address":     c.Address,
		"city":        c.City,
		"zip":         c.Zip,
		"card_number": c.CardNumber,
		"expiry":      c.Expiry,
		"cvv":         c.CVV,
	})
}
