package llmChat

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/smart-tour/internal/types"
)

var _ Repository = (*RepositoryImpl)(nil)

// Repository stores conversation sessions. Returned sessions are copies.
type Repository interface {
	CreateSession(ctx context.Context, session types.ChatSession) error
	GetSession(ctx context.Context, sessionID uuid.UUID) (*types.ChatSession, error)
	// UpdateSession applies fn atomically to the stored session. The stored
	// value is left untouched when fn returns an error.
	UpdateSession(ctx context.Context, sessionID uuid.UUID, fn func(*types.ChatSession) error) (*types.ChatSession, error)
}

// RepositoryImpl keeps sessions in memory with sliding expiry.
type RepositoryImpl struct {
	logger *slog.Logger
	cache  *cache.Cache
	mu     sync.Mutex
}

func NewRepositoryImpl(ttl, cleanupInterval time.Duration, logger *slog.Logger) *RepositoryImpl {
	c := cache.New(ttl, cleanupInterval)
	c.OnEvicted(func(key string, _ interface{}) {
		logger.Debug("Chat session expired", slog.String("session_id", key))
	})
	return &RepositoryImpl{
		logger: logger,
		cache:  c,
	}
}

func (r *RepositoryImpl) CreateSession(ctx context.Context, session types.ChatSession) error {
	_, span := otel.Tracer("ChatRepository").Start(ctx, "CreateSession", trace.WithAttributes(
		attribute.String("session.id", session.ID.String()),
	))
	defer span.End()

	s := cloneSession(&session)
	if err := r.cache.Add(session.ID.String(), s, cache.DefaultExpiration); err != nil {
		return fmt.Errorf("failed to create session %s: %w", session.ID, err)
	}
	return nil
}

func (r *RepositoryImpl) GetSession(ctx context.Context, sessionID uuid.UUID) (*types.ChatSession, error) {
	_, span := otel.Tracer("ChatRepository").Start(ctx, "GetSession", trace.WithAttributes(
		attribute.String("session.id", sessionID.String()),
	))
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.cache.Get(sessionID.String())
	if !ok {
		return nil, types.ErrSessionNotFound
	}
	return cloneSession(stored.(*types.ChatSession)), nil
}

func (r *RepositoryImpl) UpdateSession(ctx context.Context, sessionID uuid.UUID, fn func(*types.ChatSession) error) (*types.ChatSession, error) {
	_, span := otel.Tracer("ChatRepository").Start(ctx, "UpdateSession", trace.WithAttributes(
		attribute.String("session.id", sessionID.String()),
	))
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.cache.Get(sessionID.String())
	if !ok {
		return nil, types.ErrSessionNotFound
	}

	working := cloneSession(stored.(*types.ChatSession))
	if err := fn(working); err != nil {
		return nil, err
	}
	working.UpdatedAt = time.Now()
	r.cache.Set(sessionID.String(), working, cache.DefaultExpiration)
	return cloneSession(working), nil
}

func cloneSession(s *types.ChatSession) *types.ChatSession {
	c := *s
	c.Messages = append([]types.ConversationMessage(nil), s.Messages...)
	c.Places = append([]types.Place(nil), s.Places...)
	return &c
}
