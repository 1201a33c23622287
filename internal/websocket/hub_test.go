package websocket

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient is a test double for Client that captures sent messages
type mockClient struct {
	id       string
	messages [][]byte
	mu       sync.Mutex
	closed   bool
}

func newMockClient(id string) *mockClient {
	return &mockClient{
		id:       id,
		messages: make([][]byte, 0),
	}
}

func (m *mockClient) ID() string {
	return m.id
}

func (m *mockClient) Send(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClientClosed
	}
	m.messages = append(m.messages, data)
	return nil
}

func (m *mockClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockClient) GetMessages() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([][]byte, len(m.messages))
	copy(copied, m.messages)
	return copied
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()

	client1 := newMockClient("client-1")
	client2 := newMockClient("client-2")

	hub.Register(client1)
	hub.Register(client2)
	assert.Equal(t, 2, hub.ClientCount())

	hub.Unregister(client1)
	assert.Equal(t, 1, hub.ClientCount())

	// Unregistering twice is a no-op
	hub.Unregister(client1)
	assert.Equal(t, 1, hub.ClientCount())
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()

	client1 := newMockClient("client-1")
	client2 := newMockClient("client-2")
	hub.Register(client1)
	hub.Register(client2)

	hub.Broadcast(TransactionCreated(map[string]interface{}{"id": "t1"}))

	// Sends are asynchronous
	require.Eventually(t, func() bool {
		return len(client1.GetMessages()) == 1 && len(client2.GetMessages()) == 1
	}, time.Second, 10*time.Millisecond)

	assert.Contains(t, string(client1.GetMessages()[0]), "transaction.created")
}

func TestHub_BroadcastSkipsUnregistered(t *testing.T) {
	hub := NewHub()

	client1 := newMockClient("client-1")
	client2 := newMockClient("client-2")
	hub.Register(client1)
	hub.Register(client2)
	hub.Unregister(client2)

	hub.Broadcast(AccountUpdated(map[string]interface{}{"id": "a1"}))

	require.Eventually(t, func() bool {
		return len(client1.GetMessages()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Empty(t, client2.GetMessages())
}

func TestHub_BroadcastWithNoClients(t *testing.T) {
	hub := NewHub()
	// Must not panic or block
	hub.Broadcast(TransactionDeleted(map[string]interface{}{"id": "t1"}))
	assert.Equal(t, 0, hub.ClientCount())
}
