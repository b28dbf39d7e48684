package store

import "time"

// Snapshot keys, one per owned collection
const (
	KeyProducts    = "products"
	KeyCart        = "cart"
	KeyUsers       = "users"
	KeyOrders      = "orders"
	KeyCurrentUser = "currentUser"
)

// Snapshot is one stored JSON document
type Snapshot struct {
	Key       string
	State     []byte
	UpdatedAt time.Time
}
