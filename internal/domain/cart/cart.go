package cart

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/example/storefront/internal/domain/catalog"
	"github.com/example/storefront/internal/domain/state"
	"github.com/example/storefront/internal/infrastructure/store"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound         = errors.New("item not in cart")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrQuantityTooLarge = errors.New("quantity too large")
)

// Item is a cart line. Price is captured when the product is first added.
type Item struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Snapshot is an immutable copy of the cart taken at checkout
type Snapshot struct {
	Items      []Item          `json:"items"`
	Total      decimal.Decimal `json:"total"`
	CapturedAt time.Time       `json:"captured_at"`
}

// IsEmpty reports whether the snapshot has no items
func (s Snapshot) IsEmpty() bool {
	return len(s.Items) == 0
}

// ProductLookup resolves products by id
type ProductLookup interface {
	FindByID(id int64) (catalog.Product, bool)
}

// Store owns the cart lines. Lines keep insertion order.
type Store struct {
	mu        sync.RWMutex
	snapshots store.SnapshotStore
	products  ProductLookup
	items     []Item
	now       func() time.Time
}

func NewStore(snapshots store.SnapshotStore, products ProductLookup) *Store {
	return &Store{
		snapshots: snapshots,
		products:  products,
		items:     make([]Item, 0),
		now:       time.Now,
	}
}

// Load restores the cart from its snapshot; a missing or malformed snapshot leaves it empty.
// Lines with a non-positive quantity are dropped.
func (s *Store) Load(ctx context.Context) {
	items, ok := state.Load[[]Item](ctx, s.snapshots, store.KeyCart)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]Item, 0, len(items))
	if !ok {
		return
	}
	for _, item := range items {
		if item.Quantity > 0 && s.indexOf(item.ProductID) < 0 {
			s.items = append(s.items, item)
		}
	}
}

// Add adds quantity of a product. An existing line is incremented; a new line captures
// the product's current price. Quantity is not capped by stock, only by math.MaxInt.
func (s *Store) Add(ctx context.Context, productID int64, quantity int) (Item, error) {
	if quantity <= 0 {
		return Item{}, ErrInvalidQuantity
	}
	product, ok := s.products.FindByID(productID)
	if !ok {
		return Item{}, catalog.ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var item Item
	if i := s.indexOf(productID); i >= 0 {
		if s.items[i].Quantity > math.MaxInt-quantity {
			return Item{}, ErrQuantityTooLarge
		}
		s.items[i].Quantity += quantity
		item = s.items[i]
	} else {
		item = Item{
			ProductID: productID,
			Quantity:  quantity,
			Price:     product.Price,
		}
		s.items = append(s.items, item)
	}

	s.persist(ctx)
	return item, nil
}

// UpdateQuantity adds delta to a line's quantity. A result of zero or less removes the line;
// the returned bool is false in that case. A result past math.MaxInt is rejected.
func (s *Store) UpdateQuantity(ctx context.Context, productID int64, delta int) (Item, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return Item{}, false, ErrNotFound
	}

	if delta > 0 && s.items[i].Quantity > math.MaxInt-delta {
		return Item{}, false, ErrQuantityTooLarge
	}
	quantity := s.items[i].Quantity + delta
	if quantity <= 0 {
		s.removeAt(i)
		s.persist(ctx)
		return Item{}, false, nil
	}

	s.items[i].Quantity = quantity
	s.persist(ctx)
	return s.items[i], true, nil
}

// Remove deletes a line. Removing an absent product is a no-op; the bool reports whether
// anything was removed.
func (s *Store) Remove(ctx context.Context, productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i >= 0 {
		s.removeAt(i)
	}
	s.persist(ctx)
	return i >= 0
}

// Clear empties the cart
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]Item, 0)
	s.persist(ctx)
}

// Total sums the current catalog price times quantity. Lines whose product no longer
// resolves contribute nothing.
func (s *Store) Total() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total()
}

// ItemCount sums the quantities of all lines
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Items returns a copy of the cart lines
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]Item, 0, len(s.items)), s.items...)
}

// Snapshot captures the lines and the displayed total in one consistent read
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Items:      append(make([]Item, 0, len(s.items)), s.items...),
		Total:      s.total(),
		CapturedAt: s.now(),
	}
}

func (s *Store) total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.items {
		product, ok := s.products.FindByID(item.ProductID)
		if !ok {
			continue
		}
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func (s *Store) indexOf(productID int64) int {
	for i, item := range s.items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) removeAt(i int) {
	s.items = append(s.items[:i], s.items[i+1:]...)
}

// persist must be called with mu held
func (s *Store) persist(ctx context.Context) {
	state.Save(ctx, s.snapshots, store.KeyCart, s.items)
}
