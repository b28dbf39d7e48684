package order

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/example/storefront/internal/domain/cart"
	"github.com/example/storefront/internal/domain/session"
	"github.com/example/storefront/internal/domain/state"
	"github.com/example/storefront/internal/infrastructure/store"
	"github.com/shopspring/decimal"
)

type Status string

// StatusProcessing is the only status an order reaches; there is no fulfilment flow
const StatusProcessing Status = "processing"

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrNotAuthenticated = errors.New("login required to place an order")
	ErrOrderNotFound    = errors.New("order not found")
)

type ShippingAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
}

// PaymentInfo is recorded as entered. No payment is processed.
type PaymentInfo struct {
	CardNumber string `json:"card_number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// Order is immutable once placed
type Order struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	Items           []cart.Item     `json:"items"`
	Total           decimal.Decimal `json:"total"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	PaymentInfo     PaymentInfo     `json:"payment_info"`
	OrderDate       time.Time       `json:"order_date"`
	Status          Status          `json:"status"`
}

// ItemCount sums the quantities of the order lines
func (o Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

func (o Order) clone() Order {
	o.Items = append([]cart.Item(nil), o.Items...)
	return o
}

// Store keeps the order history in placement order
type Store struct {
	mu        sync.RWMutex
	snapshots store.SnapshotStore
	orders    []Order
	now       func() time.Time
}

func NewStore(snapshots store.SnapshotStore) *Store {
	return &Store{
		snapshots: snapshots,
		orders:    make([]Order, 0),
		now:       time.Now,
	}
}

// Load restores the order history from its snapshot
func (s *Store) Load(ctx context.Context) {
	orders, ok := state.Load[[]Order](ctx, s.snapshots, store.KeyOrders)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = make([]Order, 0, len(orders))
	if ok {
		s.orders = append(s.orders, orders...)
	}
}

// Place records an order for user from a cart snapshot. The total is the snapshot's total
// so it matches what was displayed. Clearing the cart is left to the caller.
func (s *Store) Place(ctx context.Context, snapshot cart.Snapshot, user *session.User, shipping ShippingAddress, payment PaymentInfo) (Order, error) {
	if snapshot.IsEmpty() {
		return Order{}, ErrEmptyCart
	}
	if user == nil {
		return Order{}, ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o := Order{
		ID:              s.nextID(),
		UserID:          user.ID,
		Items:           append([]cart.Item(nil), snapshot.Items...),
		Total:           snapshot.Total,
		ShippingAddress: shipping,
		PaymentInfo:     payment,
		OrderDate:       s.now().UTC(),
		Status:          StatusProcessing,
	}
	s.orders = append(s.orders, o)

	state.Save(ctx, s.snapshots, store.KeyOrders, s.orders)
	return o.clone(), nil
}

// Get returns an order by id
func (s *Store) Get(id int64) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o.clone(), nil
		}
	}
	return Order{}, ErrOrderNotFound
}

// List returns every order, oldest first
func (s *Store) List() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Order, 0, len(s.orders))
	for _, o := range s.orders {
		result = append(result, o.clone())
	}
	return result
}

// ListByUser returns the orders placed by userID, oldest first
func (s *Store) ListByUser(userID int64) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			result = append(result, o.clone())
		}
	}
	return result
}

func (s *Store) nextID() int64 {
	var max int64
	for _, o := range s.orders {
		if o.ID > max {
			max = o.ID
		}
	}
	return max + 1
}
