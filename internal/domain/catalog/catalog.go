package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/example/storefront/internal/domain/state"
	"github.com/example/storefront/internal/infrastructure/store"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("product not found")
)

type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryClothing    Category = "clothing"
	CategoryBooks       Category = "books"
)

// Product is immutable once the catalog is loaded
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
	Image       string          `json:"image"`
	Stock       int             `json:"stock"`
}

// Store owns the product list
type Store struct {
	mu        sync.RWMutex
	snapshots store.SnapshotStore
	products  []Product
	byID      map[int64]int // product id -> index in products
	loaded    bool
}

func NewStore(snapshots store.SnapshotStore) *Store {
	return &Store{
		snapshots: snapshots,
		byID:      make(map[int64]int),
	}
}

// Load initializes the catalog from the products snapshot, or from seed when no
// usable snapshot exists. A null document is not usable; an empty list is. The seed is persisted in that case. Later calls are no-ops.
func (s *Store) Load(ctx context.Context, seed []Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return
	}

	products, ok := state.Load[[]Product](ctx, s.snapshots, store.KeyProducts)
	if products == nil {
		ok = false
	}
	if !ok {
		products = append([]Product(nil), seed...)
		state.Save(ctx, s.snapshots, store.KeyProducts, products)
	}

	s.products = products
	s.byID = make(map[int64]int, len(products))
	for i, p := range products {
		if _, dup := s.byID[p.ID]; dup {
			log.Warn().Str("component", "catalog").Int64("product_id", p.ID).Msg("duplicate product id, keeping first")
			continue
		}
		s.byID[p.ID] = i
	}
	s.loaded = true

	log.Info().Str("component", "catalog").Int("products", len(products)).Bool("from_snapshot", ok).Msg("catalog loaded")
}

// FindByID returns the product with id
func (s *Store) FindByID(id int64) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return Product{}, false
	}
	return s.products[i], true
}

// List returns the catalog in load order
func (s *Store) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Product(nil), s.products...)
}

// Search matches term case-insensitively against name or description, and category
// exactly when it is non-empty. Catalog order is preserved.
func (s *Store) Search(term, category string) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(term)
	results := make([]Product, 0)
	for _, p := range s.products {
		if category != "" && string(p.Category) != category {
			continue
		}
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			results = append(results, p)
		}
	}
	return results
}

// Categories returns the distinct categories in order of first appearance
func (s *Store) Categories() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[Category]bool)
	categories := make([]Category, 0)
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}
