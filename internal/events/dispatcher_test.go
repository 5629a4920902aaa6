package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherPublishInvokesSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []EventType
	d.Subscribe(EventUserRegistered, func(_ context.Context, e Event) error {
		got = append(got, e.Type)
		return nil
	})
	d.Subscribe(EventUserRegistered, func(_ context.Context, e Event) error {
		got = append(got, e.Type)
		return nil
	})

	err := d.Publish(context.Background(), Event{
		ID:        "evt-1",
		Type:      EventUserRegistered,
		UserID:    "user-1",
		Timestamp: time.Now(),
	})
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDispatcherHandlerErrorDoesNotStopOthers(t *testing.T) {
	d := NewInMemoryDispatcher()

	invoked := false
	d.Subscribe(EventUserLoggedIn, func(_ context.Context, _ Event) error {
		return errors.New("boom")
	})
	d.Subscribe(EventUserLoggedIn, func(_ context.Context, _ Event) error {
		invoked = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventUserLoggedIn})
	assert.NoError(t, err)
	assert.True(t, invoked)
}

func TestDispatcherPublishWithoutSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventUserRegistered}))
}
