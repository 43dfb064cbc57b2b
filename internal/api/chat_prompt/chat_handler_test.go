package llmChat

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/smart-tour/internal/types"
)

type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) StartSession(ctx context.Context) (*types.ChatTurn, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ChatTurn), args.Error(1)
}

func (m *MockChatService) HandleMessage(ctx context.Context, sessionID uuid.UUID, message string) (*types.ChatTurn, error) {
	args := m.Called(ctx, sessionID, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ChatTurn), args.Error(1)
}

func (m *MockChatService) GetSession(ctx context.Context, sessionID uuid.UUID) (*types.ChatSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ChatSession), args.Error(1)
}

func setupChatRouter() (http.Handler, *MockChatService) {
	svc := new(MockChatService)
	h := NewHandlerImpl(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	r.Post("/sessions", h.StartSession)
	r.Get("/sessions/{sessionID}", h.GetSession)
	r.Post("/sessions/{sessionID}/messages", h.SendMessage)
	return r, svc
}

func TestChatHandlerStartSession(t *testing.T) {
	router, svc := setupChatRouter()
	id := uuid.New()
	svc.On("StartSession", mock.Anything).Return(&types.ChatTurn{SessionID: id, State: types.StateAskPlaceType}, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/sessions", nil))

	require.Equal(t, http.StatusCreated, rr.Code)
	var turn types.ChatTurn
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &turn))
	assert.Equal(t, id, turn.SessionID)
}

func TestChatHandlerSendMessage(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name   string
		path   string
		body   string
		setup  func(*MockChatService)
		status int
	}{
		{
			name: "advances",
			path: "/sessions/" + id.String() + "/messages",
			body: `{"message":"Beach"}`,
			setup: func(m *MockChatService) {
				m.On("HandleMessage", mock.Anything, id, "Beach").Return(&types.ChatTurn{SessionID: id, State: types.StateAskBudget}, nil)
			},
			status: http.StatusOK,
		},
		{
			name:   "bad session id",
			path:   "/sessions/not-a-uuid/messages",
			body:   `{"message":"Beach"}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown field",
			path:   "/sessions/" + id.String() + "/messages",
			body:   `{"msg":"Beach"}`,
			status: http.StatusBadRequest,
		},
		{
			name: "blank message",
			path: "/sessions/" + id.String() + "/messages",
			body: `{"message":" "}`,
			setup: func(m *MockChatService) {
				m.On("HandleMessage", mock.Anything, id, " ").Return(nil, &types.MissingParameterError{Field: "message"})
			},
			status: http.StatusBadRequest,
		},
		{
			name: "expired session",
			path: "/sessions/" + id.String() + "/messages",
			body: `{"message":"Beach"}`,
			setup: func(m *MockChatService) {
				m.On("HandleMessage", mock.Anything, id, "Beach").Return(nil, types.ErrSessionNotFound)
			},
			status: http.StatusNotFound,
		},
		{
			name: "ended",
			path: "/sessions/" + id.String() + "/messages",
			body: `{"message":"yes"}`,
			setup: func(m *MockChatService) {
				m.On("HandleMessage", mock.Anything, id, "yes").Return(nil, types.ErrConversationEnded)
			},
			status: http.StatusConflict,
		},
		{
			name: "busy",
			path: "/sessions/" + id.String() + "/messages",
			body: `{"message":"hello"}`,
			setup: func(m *MockChatService) {
				m.On("HandleMessage", mock.Anything, id, "hello").Return(nil, types.ErrRecommendationPending)
			},
			status: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := setupChatRouter()
			if tt.setup != nil {
				tt.setup(svc)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body)))
			assert.Equal(t, tt.status, rr.Code, rr.Body.String())
			svc.AssertExpectations(t)
		})
	}
}

func TestChatHandlerGetSession(t *testing.T) {
	router, svc := setupChatRouter()
	id := uuid.New()
	svc.On("GetSession", mock.Anything, id).Return(&types.ChatSession{ID: id, State: types.StateAskSeason}, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/sessions/"+id.String(), nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"state":"ask_season"`)
}
