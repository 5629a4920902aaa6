package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/auth-service/internal/events"
)

func TestAuditServiceLogsAuthEvents(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher()

	audit := NewAuditService(dispatcher, zap.New(core), nil)
	audit.RegisterHandlers()

	_ = dispatcher.Publish(context.Background(), events.Event{
		ID:        "evt-1",
		Type:      events.EventUserRegistered,
		UserID:    "user-1",
		Timestamp: time.Now(),
	})
	_ = dispatcher.Publish(context.Background(), events.Event{
		ID:        "evt-2",
		Type:      events.EventUserLoggedIn,
		UserID:    "user-1",
		Timestamp: time.Now(),
		Payload:   events.UserLoggedInPayload{TokenExpiresAt: time.Now().Add(time.Hour)},
	})

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "UserRegistered", entries[0].Message)
	assert.Equal(t, "UserLoggedIn", entries[1].Message)
}

func TestAuditServiceNilDispatcher(t *testing.T) {
	audit := NewAuditService(nil, zap.NewNop(), nil)
	assert.NotPanics(t, audit.RegisterHandlers)
}
