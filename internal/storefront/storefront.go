// Package storefront assembles the catalog, cart, session and order stores over one snapshot store.
package storefront

import (
	"context"

	"github.com/example/storefront/internal/auth"
	"github.com/example/storefront/internal/domain/cart"
	"github.com/example/storefront/internal/domain/catalog"
	"github.com/example/storefront/internal/domain/order"
	"github.com/example/storefront/internal/domain/session"
	"github.com/example/storefront/internal/infrastructure/store"
	"github.com/rs/zerolog/log"
)

// Storefront is built once at startup and shared by reference
type Storefront struct {
	Catalog  *catalog.Store
	Cart     *cart.Store
	Sessions *session.Store
	Orders   *order.Store
}

// New builds the stores and restores them from snapshots. A nil seed uses the default catalog.
func New(ctx context.Context, snapshots store.SnapshotStore, hasher auth.PasswordHasher, seed []catalog.Product) *Storefront {
	if seed == nil {
		seed = catalog.SeedProducts()
	}

	products := catalog.NewStore(snapshots)
	sf := &Storefront{
		Catalog:  products,
		Cart:     cart.NewStore(snapshots, products),
		Sessions: session.NewStore(snapshots, hasher),
		Orders:   order.NewStore(snapshots),
	}

	sf.Catalog.Load(ctx, seed)
	sf.Cart.Load(ctx)
	sf.Sessions.Load(ctx)
	sf.Orders.Load(ctx)

	log.Info().
		Str("component", "storefront").
		Int("products", len(sf.Catalog.List())).
		Int("cart_items", sf.Cart.ItemCount()).
		Int("users", len(sf.Sessions.Users())).
		Int("orders", len(sf.Orders.List())).
		Msg("storefront state loaded")

	return sf
}
