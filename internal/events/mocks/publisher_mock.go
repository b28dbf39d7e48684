package mocks

import (
	"context"
	"sync"

	"github.com/example/storefront/internal/events"
)

// MockPublisher records published events for testing
type MockPublisher struct {
	mu sync.Mutex

	PublishCalls []PublishCall
	PublishErr   error
}

// PublishCall records parameters passed to Publish
type PublishCall struct {
	Key   string
	Event any
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{PublishCalls: make([]PublishCall, 0)}
}

func (m *MockPublisher) Publish(ctx context.Context, key string, event any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PublishCalls = append(m.PublishCalls, PublishCall{Key: key, Event: event})
	return m.PublishErr
}

// Types returns the types of published envelopes in order
func (m *MockPublisher) Types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	types := make([]string, 0, len(m.PublishCalls))
	for _, c := range m.PublishCalls {
		if e, ok := c.Event.(events.Event); ok {
			types = append(types, e.Type)
		}
	}
	return types
}
