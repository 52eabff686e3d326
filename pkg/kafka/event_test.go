package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	payload := map[string]any{"quantity": 10, "status": "in_stock"}

	event, err := NewEvent("inventory.created", "rec-1", "inventory_record", "backoffice", payload)
	require.NoError(t, err)

	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "inventory.created", event.EventType)
	assert.Equal(t, "rec-1", event.AggregateID)
	assert.Equal(t, "inventory_record", event.AggregateType)
	assert.Equal(t, 1, event.Version)
	assert.WithinDuration(t, time.Now().UTC(), event.Timestamp, time.Second)

	var decoded map[string]any
	require.NoError(t, event.UnmarshalData(&decoded))
	assert.Equal(t, "in_stock", decoded["status"])
}

func TestNewEvent_UnmarshalableData(t *testing.T) {
	_, err := NewEvent("inventory.created", "rec-1", "inventory_record", "backoffice", make(chan int))
	assert.Error(t, err)
}

func TestEvent_Builders(t *testing.T) {
	event, err := NewEvent("inventory.updated", "rec-2", "inventory_record", "backoffice", nil)
	require.NoError(t, err)

	event.WithCorrelationID("corr-123").WithMetadata("actor", "user-1")

	raw, err := event.Marshal()
	require.NoError(t, err)

	var roundTrip Event
	require.NoError(t, json.Unmarshal(raw, &roundTrip))
	assert.Equal(t, "corr-123", roundTrip.CorrelationID)
	assert.Equal(t, "user-1", roundTrip.Metadata["actor"])
}
