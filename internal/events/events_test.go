package events

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBusPublishJSON(t *testing.T) {
	bus := NewEventBus()

	var received []*Event
	bus.Subscribe(EventBookingCreated, func(event *Event) error {
		received = append(received, event)
		return nil
	})

	payload := BookingEventPayload{
		BookingID: 7,
		ItemID:    3,
		Status:    "WAITING",
		Start:     time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, bus.PublishJSON(EventBookingCreated, payload))

	require.Len(t, received, 1)
	assert.Equal(t, EventBookingCreated, received[0].Type)
	assert.False(t, received[0].CreatedAt.IsZero())

	var decoded BookingEventPayload
	require.NoError(t, json.Unmarshal(received[0].Payload, &decoded))
	assert.Equal(t, payload.BookingID, decoded.BookingID)
	assert.Equal(t, payload.Status, decoded.Status)
}

func TestEventBusMultipleSubscribers(t *testing.T) {
	bus := NewEventBus()

	var first, second int
	bus.Subscribe(EventBookingApproved, func(*Event) error {
		first++
		return nil
	})
	bus.Subscribe(EventBookingApproved, func(*Event) error {
		second++
		return errors.New("handler failure is swallowed")
	})

	require.NoError(t, bus.PublishJSON(EventBookingApproved, BookingEventPayload{BookingID: 1}))
	require.NoError(t, bus.PublishJSON(EventBookingApproved, BookingEventPayload{BookingID: 2}))

	assert.Equal(t, 2, first)
	assert.Equal(t, 2, second)
}

func TestEventBusNoSubscribers(t *testing.T) {
	bus := NewEventBus()
	assert.NoError(t, bus.PublishJSON(EventBookingRejected, BookingEventPayload{BookingID: 1}))
}

func TestEventBusNilReceiver(t *testing.T) {
	var bus *EventBus
	assert.NoError(t, bus.PublishJSON(EventBookingCreated, BookingEventPayload{}))
}

func TestPublishJSONMarshalError(t *testing.T) {
	bus := NewEventBus()
	assert.Error(t, bus.PublishJSON(EventBookingCreated, func() {}))
}
