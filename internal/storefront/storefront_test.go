package storefront

import (
	"context"
	"testing"

	"github.com/example/storefront/internal/auth"
	"github.com/example/storefront/internal/domain/catalog"
	"github.com/example/storefront/internal/domain/order"
	"github.com/example/storefront/internal/infrastructure/store"
	"github.com/example/storefront/internal/infrastructure/store/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SeedsEmptyStore(t *testing.T) {
	snapshots := mocks.NewMockSnapshotStore()

	sf := New(context.Background(), snapshots, auth.Plaintext{}, nil)

	assert.Len(t, sf.Catalog.List(), len(catalog.SeedProducts()))
	assert.Equal(t, 0, sf.Cart.ItemCount())
	_, ok := sf.Sessions.CurrentUser()
	assert.False(t, ok)
	assert.Empty(t, sf.Orders.List())

	_, saved := snapshots.GetData(store.KeyProducts)
	assert.True(t, saved)
}

func TestNew_RestoresAcrossRestart(t *testing.T) {
	snapshots := store.NewMemorySnapshotStore()
	ctx := context.Background()

	first := New(ctx, snapshots, auth.Plaintext{}, nil)
	ann, err := first.Sessions.Register(ctx, "Ann", "a@x", "p", "p")
	require.NoError(t, err)
	_, err = first.Cart.Add(ctx, 2, 3)
	require.NoError(t, err)
	user, _ := first.Sessions.CurrentUser()
	_, err = first.Orders.Place(ctx, first.Cart.Snapshot(), &user, order.ShippingAddress{City: "X"}, order.PaymentInfo{})
	require.NoError(t, err)
	_, err = first.Cart.Add(ctx, 1, 1)
	require.NoError(t, err)

	second := New(ctx, snapshots, auth.Plaintext{}, nil)

	current, ok := second.Sessions.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, ann, current)
	assert.Equal(t, 4, second.Cart.ItemCount())
	assert.Equal(t, "174.96", second.Cart.Total().StringFixed(2))
	orders := second.Orders.ListByUser(ann.ID)
	require.Len(t, orders, 1)
	assert.Equal(t, "74.97", orders[0].Total.StringFixed(2))
}

func TestNew_CustomSeed(t *testing.T) {
	seed := catalog.SeedProducts()[:2]

	sf := New(context.Background(), mocks.NewMockSnapshotStore(), auth.Plaintext{}, seed)

	assert.Len(t, sf.Catalog.List(), 2)
}
