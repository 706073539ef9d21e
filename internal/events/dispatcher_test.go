package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherInvokesSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var seen []string
	dispatcher.Subscribe(EventAppointmentBooked, func(_ context.Context, event Event) error {
		seen = append(seen, event.AppointmentID)
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{
		Type:          EventAppointmentBooked,
		AppointmentID: "apt-1",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"apt-1"}, seen)

	// Events without subscribers are dropped silently.
	err = dispatcher.Publish(context.Background(), Event{Type: EventAppointmentCancelled})
	assert.NoError(t, err)
	assert.Len(t, seen, 1)
}
