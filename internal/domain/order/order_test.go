package order

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/example/storefront/internal/domain/cart"
	"github.com/example/storefront/internal/domain/session"
	"github.com/example/storefront/internal/infrastructure/store"
	"github.com/example/storefront/internal/infrastructure/store/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testShipping = ShippingAddress{Address: "1 Main St", City: "Springfield", Zip: "12345"}
	testPayment  = PaymentInfo{CardNumber: "4111111111111111", Expiry: "12/30", CVV: "123"}
	testUser     = &session.User{ID: 7, Name: "Ann", Email: "a@x", Password: "p"}
)

func newTestOrderStore() (*Store, *mocks.MockSnapshotStore) {
	snapshots := mocks.NewMockSnapshotStore()
	s := NewStore(snapshots)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	s.Load(context.Background())
	return s, snapshots
}

func testSnapshot() cart.Snapshot {
	return cart.Snapshot{
		Items: []cart.Item{
			{ProductID: 1, Quantity: 2, Price: decimal.RequireFromString("99.99")},
			{ProductID: 3, Quantity: 1, Price: decimal.RequireFromString("39.99")},
		},
		Total: decimal.RequireFromString("239.97"),
	}
}

// ============================================
// Place Tests
// ============================================

func TestStore_Place(t *testing.T) {
	s, snapshots := newTestOrderStore()
	snap := testSnapshot()

	o, err := s.Place(context.Background(), snap, testUser, testShipping, testPayment)

	require.NoError(t, err)
	assert.Equal(t, int64(1), o.ID)
	assert.Equal(t, int64(7), o.UserID)
	assert.Equal(t, snap.Items, o.Items)
	assert.Equal(t, "239.97", o.Total.StringFixed(2))
	assert.Equal(t, testShipping, o.ShippingAddress)
	assert.Equal(t, testPayment, o.PaymentInfo)
	assert.Equal(t, StatusProcessing, o.Status)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), o.OrderDate)
	assert.Equal(t, 3, o.ItemCount())

	data, ok := snapshots.GetData(store.KeyOrders)
	require.True(t, ok)
	var persisted []Order
	require.NoError(t, json.Unmarshal(data, &persisted))
	require.Len(t, persisted, 1)
	assert.Equal(t, int64(1), persisted[0].ID)
	assert.Equal(t, StatusProcessing, persisted[0].Status)
}

func TestStore_Place_SequentialIDs(t *testing.T) {
	s, _ := newTestOrderStore()
	ctx := context.Background()

	first, err := s.Place(ctx, testSnapshot(), testUser, testShipping, testPayment)
	require.NoError(t, err)
	second, err := s.Place(ctx, testSnapshot(), testUser, testShipping, testPayment)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestStore_Place_EmptyCart(t *testing.T) {
	tests := []struct {
		name string
		user *session.User
	}{
		{"logged in", testUser},
		{"logged out", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, snapshots := newTestOrderStore()

			_, err := s.Place(context.Background(), cart.Snapshot{}, tt.user, testShipping, testPayment)

			assert.ErrorIs(t, err, ErrEmptyCart)
			assert.Empty(t, s.List())
			assert.Empty(t, snapshots.SaveCalls)
		})
	}
}

func TestStore_Place_NotAuthenticated(t *testing.T) {
	s, snapshots := newTestOrderStore()

	_, err := s.Place(context.Background(), testSnapshot(), nil, testShipping, testPayment)

	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Empty(t, s.List())
	assert.Empty(t, snapshots.SaveCalls)
}

func TestStore_Place_DeepCopiesItems(t *testing.T) {
	s, _ := newTestOrderStore()
	snap := testSnapshot()

	o, err := s.Place(context.Background(), snap, testUser, testShipping, testPayment)
	require.NoError(t, err)

	snap.Items[0].Quantity = 99
	o.Items[1].Quantity = 42

	stored, err := s.Get(o.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.Equal(t, 1, stored.Items[1].Quantity)
}

// ============================================
// Query Tests
// ============================================

func TestStore_Get_NotFound(t *testing.T) {
	s, _ := newTestOrderStore()

	_, err := s.Get(1)

	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestStore_ListByUser(t *testing.T) {
	s, _ := newTestOrderStore()
	ctx := context.Background()
	other := &session.User{ID: 8, Name: "Bob", Email: "b@x"}

	_, _ = s.Place(ctx, testSnapshot(), testUser, testShipping, testPayment)
	_, _ = s.Place(ctx, testSnapshot(), other, testShipping, testPayment)
	_, _ = s.Place(ctx, testSnapshot(), testUser, testShipping, testPayment)

	orders := s.ListByUser(testUser.ID)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(1), orders[0].ID)
	assert.Equal(t, int64(3), orders[1].ID)

	assert.Empty(t, s.ListByUser(99))
	assert.Len(t, s.List(), 3)
}

// ============================================
// Load Tests
// ============================================

func TestStore_Load_ContinuesIDs(t *testing.T) {
	snapshots := mocks.NewMockSnapshotStore()
	snapshots.SetData(store.KeyOrders, []byte(`[{"id":4,"user_id":7,"items":[{"product_id":1,"quantity":1,"price":"99.99"}],"total":"99.99","status":"processing"}]`))
	s := NewStore(snapshots)
	s.Load(context.Background())

	o, err := s.Place(context.Background(), testSnapshot(), testUser, testShipping, testPayment)

	require.NoError(t, err)
	assert.Equal(t, int64(5), o.ID)
	assert.Len(t, s.List(), 2)
}

func TestStore_Load_Malformed(t *testing.T) {
	snapshots := mocks.NewMockSnapshotStore()
	snapshots.SetData(store.KeyOrders, []byte(`{]`))
	s := NewStore(snapshots)

	s.Load(context.Background())

	assert.Empty(t, s.List())
}
