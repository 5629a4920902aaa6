package service

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/auth-service/internal/events"
)

// AuditService records auth events for operators: structured log lines plus
// per-event Redis counters. It observes only; auth flows never depend on it.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	redis      *redis.Client
}

// NewAuditService creates the service. The Redis client may be nil, in which
// case only log lines are produced.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger, client *redis.Client) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger,
		redis:      client,
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventUserRegistered, a.handleUserRegistered)
	a.dispatcher.Subscribe(events.EventUserLoggedIn, a.handleUserLoggedIn)
}

func (a *AuditService) handleUserRegistered(ctx context.Context, event events.Event) error {
	a.logger.Info("UserRegistered", zap.String("user_id", event.UserID), zap.Time("at", event.Timestamp))
	a.bumpCounter(ctx, event.Type)
	return nil
}

func (a *AuditService) handleUserLoggedIn(ctx context.Context, event events.Event) error {
	a.logger.Info("UserLoggedIn", zap.String("user_id", event.UserID), zap.Any("payload", event.Payload))
	a.bumpCounter(ctx, event.Type)
	return nil
}

func (a *AuditService) bumpCounter(ctx context.Context, eventType events.EventType) {
	if a.redis == nil {
		return
	}
	key := "auth:events:" + string(eventType)
	if err := a.redis.Incr(ctx, key).Err(); err != nil {
		a.logger.Debug("audit counter unavailable", zap.String("key", key), zap.Error(err))
	}
}
