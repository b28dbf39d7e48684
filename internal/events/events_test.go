package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	OrderID int64  `json:"order_id"`
	Note    string `json:"note"`
}

func TestNew(t *testing.T) {
	e, err := New("order.placed", "1", samplePayload{OrderID: 1, Note: "first"})

	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "order.placed", e.Type)
	assert.Equal(t, "1", e.Key)
	assert.JSONEq(t, `{"order_id":1,"note":"first"}`, string(e.Data))
	assert.False(t, e.Timestamp.IsZero())
}

func TestNew_UniqueIDs(t *testing.T) {
	a, err := New("cart.cleared", "cart", struct{}{})
	require.NoError(t, err)
	b, err := New("cart.cleared", "cart", struct{}{})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestNew_UnmarshalablePayload(t *testing.T) {
	_, err := New("bad", "k", make(chan int))
	assert.Error(t, err)
}

func TestEvent_Decode(t *testing.T) {
	e, err := New("order.placed", "7", samplePayload{OrderID: 7})
	require.NoError(t, err)

	// Round trip through the wire format
	wire, err := json.Marshal(e)
	require.NoError(t, err)
	var received Event
	require.NoError(t, json.Unmarshal(wire, &received))

	var payload samplePayload
	require.NoError(t, received.Decode(&payload))
	assert.Equal(t, int64(7), payload.OrderID)
}

func TestEvent_DecodeMalformed(t *testing.T) {
	e := Event{Type: "order.placed", Data: json.RawMessage(`{"order_id":"x"}`)}

	var payload samplePayload
	assert.Error(t, e.Decode(&payload))
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), "k", "v"))
}
