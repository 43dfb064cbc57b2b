package llmChat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/smart-tour/app/observability/metrics"
	"github.com/FACorreiaa/smart-tour/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service drives the travel questionnaire for one session at a time.
type Service interface {
	StartSession(ctx context.Context) (*types.ChatTurn, error)
	HandleMessage(ctx context.Context, sessionID uuid.UUID, message string) (*types.ChatTurn, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*types.ChatSession, error)
}

// Recommender is satisfied by recommendations.Service.
type Recommender interface {
	Recommend(ctx context.Context, prefs types.UserPreferences) (*types.RecommendationResult, error)
}

type ServiceImpl struct {
	repo        Repository
	recommender Recommender
	validator   *Validator
	metrics     *metrics.AppMetrics
	logger      *slog.Logger
	now         func() time.Time
}

func NewServiceImpl(repo Repository, recommender Recommender, validator *Validator, m *metrics.AppMetrics, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		repo:        repo,
		recommender: recommender,
		validator:   validator,
		metrics:     m,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *ServiceImpl) StartSession(ctx context.Context) (*types.ChatTurn, error) {
	ctx, span := otel.Tracer("ChatService").Start(ctx, "StartSession")
	defer span.End()

	now := s.now()
	session := types.ChatSession{
		ID:        uuid.New(),
		State:     types.StateAskPlaceType,
		CreatedAt: now,
		UpdatedAt: now,
		Messages: []types.ConversationMessage{
			{Role: types.RoleAssistant, Content: greeting + questionPlaceType, Timestamp: now},
		},
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create session failed")
		return nil, fmt.Errorf("failed to start chat session: %w", err)
	}
	span.SetAttributes(attribute.String("session.id", session.ID.String()))
	s.logger.InfoContext(ctx, "Chat session started", slog.String("session_id", session.ID.String()))

	return &types.ChatTurn{
		SessionID: session.ID,
		State:     session.State,
		Messages:  session.Messages,
	}, nil
}

func (s *ServiceImpl) GetSession(ctx context.Context, sessionID uuid.UUID) (*types.ChatSession, error) {
	return s.repo.GetSession(ctx, sessionID)
}

// HandleMessage applies one user message to the session's state machine.
// The recommender runs outside the session lock; while it runs the session
// sits in AwaitingRecommendation and rejects further input.
func (s *ServiceImpl) HandleMessage(ctx context.Context, sessionID uuid.UUID, message string) (*types.ChatTurn, error) {
	ctx, span := otel.Tracer("ChatService").Start(ctx, "HandleMessage", trace.WithAttributes(
		attribute.String("session.id", sessionID.String()),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "HandleMessage"), slog.String("session_id", sessionID.String()))

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, &types.MissingParameterError{Field: "message"}
	}

	var (
		turnStart int
		prefs     types.UserPreferences
		handOff   bool
	)
	session, err := s.repo.UpdateSession(ctx, sessionID, func(cs *types.ChatSession) error {
		switch cs.State {
		case types.StateEnd:
			return types.ErrConversationEnded
		case types.StateAwaitingRecommendation:
			return types.ErrRecommendationPending
		}

		s.appendMessage(cs, types.RoleUser, message)
		turnStart = len(cs.Messages)
		s.metrics.RecordTurn(ctx, string(cs.State))

		if cs.State == types.StateAskMoreRecommendations {
			s.answerFollowUp(cs, message)
			return nil
		}

		if correction, ok := s.validator.Validate(cs.State, message); !ok {
			s.appendMessage(cs, types.RoleAssistant, correction)
			return nil
		}

		recordAnswer(cs, strings.ToLower(message))
		cs.State = nextState[cs.State]
		if cs.State == types.StateAwaitingRecommendation {
			prefs = cs.Preferences
			handOff = true
			return nil
		}
		s.appendMessage(cs, types.RoleAssistant, questions[cs.State])
		return nil
	})
	if err != nil {
		if !errors.Is(err, types.ErrConversationEnded) && !errors.Is(err, types.ErrRecommendationPending) {
			span.RecordError(err)
		}
		return nil, err
	}

	if handOff {
		session, err = s.recommend(ctx, sessionID, prefs)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
	}

	span.SetAttributes(attribute.String("session.state", string(session.State)))
	l.DebugContext(ctx, "Chat turn handled", slog.String("state", string(session.State)))
	return s.turnFrom(session, turnStart), nil
}

// recommend calls the recommender and records the outcome. Any failure,
// including a panic, puts the session back in AskSource so a resend retries.
func (s *ServiceImpl) recommend(ctx context.Context, sessionID uuid.UUID, prefs types.UserPreferences) (session *types.ChatSession, err error) {
	l := s.logger.With(slog.String("method", "recommend"), slog.String("session_id", sessionID.String()))

	var (
		result  *types.RecommendationResult
		recErr  error
		settled bool
	)
	defer func() {
		if settled {
			return
		}
		r := recover()
		l.ErrorContext(ctx, "Recommendation aborted", slog.Any("panic", r))
		session, err = s.repo.UpdateSession(context.WithoutCancel(ctx), sessionID, func(cs *types.ChatSession) error {
			cs.State = types.StateAskSource
			s.appendMessage(cs, types.RoleAssistant, recommendationFailedMessage)
			return nil
		})
	}()

	result, recErr = s.recommender.Recommend(ctx, prefs)
	if recErr != nil {
		l.ErrorContext(ctx, "Recommendation failed", slog.Any("error", recErr))
	}

	settled = true
	return s.repo.UpdateSession(context.WithoutCancel(ctx), sessionID, func(cs *types.ChatSession) error {
		if recErr != nil {
			cs.State = types.StateAskSource
			s.appendMessage(cs, types.RoleAssistant, recommendationFailedMessage)
			return nil
		}
		cs.Recommendations = result.Recommendations
		cs.Places = result.Places
		cs.State = types.StateAskMoreRecommendations
		s.appendMessage(cs, types.RoleAssistant, result.Recommendations)
		s.appendMessage(cs, types.RoleAssistant, askMoreMessage)
		return nil
	})
}

func (s *ServiceImpl) answerFollowUp(cs *types.ChatSession, message string) {
	if wantsMore(message) {
		cs.State = types.StateAskPlaceType
		cs.Preferences = types.UserPreferences{}
		cs.Places = nil
		cs.Recommendations = ""
		s.appendMessage(cs, types.RoleAssistant, questionPlaceType)
		return
	}
	cs.State = types.StateEnd
	s.appendMessage(cs, types.RoleAssistant, closingMessage)
}

func (s *ServiceImpl) appendMessage(cs *types.ChatSession, role types.MessageRole, content string) {
	cs.Messages = append(cs.Messages, types.ConversationMessage{Role: role, Content: content, Timestamp: s.now()})
}

func recordAnswer(cs *types.ChatSession, answer string) {
	switch cs.State {
	case types.StateAskPlaceType:
		cs.Preferences.PlaceType = answer
	case types.StateAskBudget:
		cs.Preferences.Budget = answer
	case types.StateAskSeason:
		cs.Preferences.Season = answer
	case types.StateAskSource:
		cs.Preferences.Source = answer
	}
}

func (s *ServiceImpl) turnFrom(session *types.ChatSession, turnStart int) *types.ChatTurn {
	turn := &types.ChatTurn{
		SessionID: session.ID,
		State:     session.State,
		Messages:  session.Messages[turnStart:],
	}
	if session.State == types.StateAskMoreRecommendations {
		prefs := session.Preferences
		turn.Preferences = &prefs
		turn.Places = session.Places
		turn.MapURL = fmt.Sprintf("/api/v1/chat/sessions/%s/map", session.ID)
	}
	return turn
}
