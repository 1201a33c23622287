package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	payload := map[string]interface{}{
		"id":     "t1",
		"amount": "100.5",
	}

	before := time.Now().UTC()
	event := NewEvent(EventTypeCreated, EntityTypeTransaction, payload)

	assert.Equal(t, "transaction.created", event.Type)
	assert.Equal(t, EntityTypeTransaction, event.Entity)
	assert.Equal(t, payload, event.Payload)
	assert.False(t, event.Timestamp.Before(before))
}

func TestEvent_ToJSON(t *testing.T) {
	event := AccountDeleted(map[string]interface{}{"id": "a1"})

	data, err := event.ToJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "account.deleted", decoded["type"])
	assert.Equal(t, "account", decoded["entity"])

	payload, ok := decoded["payload"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "a1", payload["id"])
}

func TestEventConstructors(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		expected string
	}{
		{"transaction created", TransactionCreated(nil), "transaction.created"},
		{"transaction updated", TransactionUpdated(nil), "transaction.updated"},
		{"transaction deleted", TransactionDeleted(nil), "transaction.deleted"},
		{"account created", AccountCreated(nil), "account.created"},
		{"account updated", AccountUpdated(nil), "account.updated"},
		{"account deleted", AccountDeleted(nil), "account.deleted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.Type)
		})
	}
}
