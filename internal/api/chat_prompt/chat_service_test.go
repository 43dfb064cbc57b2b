package llmChat

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/smart-tour/internal/types"
)

type MockRecommender struct {
	mock.Mock
}

func (m *MockRecommender) Recommend(ctx context.Context, prefs types.UserPreferences) (*types.RecommendationResult, error) {
	args := m.Called(ctx, prefs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecommendationResult), args.Error(1)
}

// blockingRecommender holds Recommend open until release is closed.
type blockingRecommender struct {
	started chan struct{}
	release chan struct{}
	result  *types.RecommendationResult
}

func (b *blockingRecommender) Recommend(ctx context.Context, _ types.UserPreferences) (*types.RecommendationResult, error) {
	close(b.started)
	<-b.release
	return b.result, nil
}

type panickingRecommender struct{}

func (panickingRecommender) Recommend(context.Context, types.UserPreferences) (*types.RecommendationResult, error) {
	panic("boom")
}

var sampleResult = &types.RecommendationResult{
	Recommendations: "1. Goa (Baga, Anjuna)",
	Places: []types.Place{
		{Name: "Baga", State: "Goa", Lat: 15.5553, Lng: 73.754},
		{Name: "Anjuna", State: "Goa", Lat: 15.5746, Lng: 73.7419},
	},
}

func setupChatServiceTest(rec Recommender) *ServiceImpl {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := NewRepositoryImpl(time.Minute, time.Minute, logger)
	return NewServiceImpl(repo, rec, NewValidator(50), nil, logger)
}

func start(t *testing.T, svc *ServiceImpl) uuid.UUID {
	t.Helper()
	turn, err := svc.StartSession(context.Background())
	require.NoError(t, err)
	return turn.SessionID
}

func send(t *testing.T, svc *ServiceImpl, id uuid.UUID, msg string) *types.ChatTurn {
	t.Helper()
	turn, err := svc.HandleMessage(context.Background(), id, msg)
	require.NoError(t, err)
	return turn
}

func advanceToSource(t *testing.T, svc *ServiceImpl, id uuid.UUID) {
	t.Helper()
	send(t, svc, id, "Beach")
	send(t, svc, id, "30k")
	send(t, svc, id, "Winter")
}

func TestStartSession(t *testing.T) {
	svc := setupChatServiceTest(new(MockRecommender))
	turn, err := svc.StartSession(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, turn.SessionID)
	assert.Equal(t, types.StateAskPlaceType, turn.State)
	require.Len(t, turn.Messages, 1)
	assert.Equal(t, types.RoleAssistant, turn.Messages[0].Role)
	assert.Equal(t, "👋 Hi! I'm your Smart Tour travel guide! "+questionPlaceType, turn.Messages[0].Content)
}

func TestHandleMessageHappyPath(t *testing.T) {
	rec := new(MockRecommender)
	svc := setupChatServiceTest(rec)
	id := start(t, svc)

	turn := send(t, svc, id, "Beach")
	assert.Equal(t, types.StateAskBudget, turn.State)
	require.Len(t, turn.Messages, 1)
	assert.Equal(t, questionBudget, turn.Messages[0].Content)

	turn = send(t, svc, id, "30k")
	assert.Equal(t, types.StateAskSeason, turn.State)
	assert.Equal(t, questionSeason, turn.Messages[0].Content)

	turn = send(t, svc, id, "Winter")
	assert.Equal(t, types.StateAskSource, turn.State)
	assert.Equal(t, questionSource, turn.Messages[0].Content)

	want := types.UserPreferences{PlaceType: "beach", Budget: "30k", Season: "winter", Source: "delhi"}
	rec.On("Recommend", mock.Anything, want).Return(sampleResult, nil).Once()

	turn = send(t, svc, id, "Delhi")
	assert.Equal(t, types.StateAskMoreRecommendations, turn.State)
	require.Len(t, turn.Messages, 2)
	assert.Equal(t, sampleResult.Recommendations, turn.Messages[0].Content)
	assert.Equal(t, askMoreMessage, turn.Messages[1].Content)
	assert.Equal(t, sampleResult.Places, turn.Places)
	assert.Equal(t, &want, turn.Preferences)
	assert.Equal(t, "/api/v1/chat/sessions/"+id.String()+"/map", turn.MapURL)
	rec.AssertExpectations(t)

	session, err := svc.GetSession(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, sampleResult.Places, session.Places)
	assert.Len(t, session.Messages, 1+2*3+1+2)
}

func TestHandleMessageValidation(t *testing.T) {
	svc := setupChatServiceTest(new(MockRecommender))
	id := start(t, svc)
	send(t, svc, id, "Mountain")

	turn := send(t, svc, id, "abc")
	assert.Equal(t, types.StateAskBudget, turn.State, "invalid answers never advance")
	require.Len(t, turn.Messages, 1)
	assert.Equal(t, invalidBudgetMessage, turn.Messages[0].Content)

	turn = send(t, svc, id, "don't know")
	assert.Equal(t, types.StateAskBudget, turn.State)
	assert.Equal(t, "Please provide a valid budget in INR.", turn.Messages[0].Content)

	turn = send(t, svc, id, "30,000")
	assert.Equal(t, types.StateAskSeason, turn.State)
}

func TestHandleMessageFollowUp(t *testing.T) {
	setup := func(t *testing.T) (*ServiceImpl, uuid.UUID) {
		rec := new(MockRecommender)
		rec.On("Recommend", mock.Anything, mock.Anything).Return(sampleResult, nil)
		svc := setupChatServiceTest(rec)
		id := start(t, svc)
		advanceToSource(t, svc, id)
		send(t, svc, id, "Mumbai")
		return svc, id
	}

	t.Run("yes restarts with places cleared", func(t *testing.T) {
		svc, id := setup(t)
		turn := send(t, svc, id, "Yes please")
		assert.Equal(t, types.StateAskPlaceType, turn.State)
		assert.Empty(t, turn.Places)
		assert.Equal(t, questionPlaceType, turn.Messages[0].Content)

		session, err := svc.GetSession(context.Background(), id)
		require.NoError(t, err)
		assert.Empty(t, session.Places)
		assert.Empty(t, session.Recommendations)
		assert.Equal(t, types.UserPreferences{}, session.Preferences)
	})

	t.Run("anything else ends the conversation", func(t *testing.T) {
		svc, id := setup(t)
		turn := send(t, svc, id, "no")
		assert.Equal(t, types.StateEnd, turn.State)
		assert.Equal(t, closingMessage, turn.Messages[0].Content)

		_, err := svc.HandleMessage(context.Background(), id, "yes")
		assert.ErrorIs(t, err, types.ErrConversationEnded)
	})
}

func TestHandleMessageRecommenderFailure(t *testing.T) {
	rec := new(MockRecommender)
	svc := setupChatServiceTest(rec)
	id := start(t, svc)
	advanceToSource(t, svc, id)

	rec.On("Recommend", mock.Anything, mock.Anything).Return(nil, types.ErrUpstream).Once()
	turn := send(t, svc, id, "Pune")
	assert.Equal(t, types.StateAskSource, turn.State)
	require.Len(t, turn.Messages, 1)
	assert.Equal(t, recommendationFailedMessage, turn.Messages[0].Content)
	assert.Empty(t, turn.Places)

	rec.On("Recommend", mock.Anything, mock.Anything).Return(sampleResult, nil).Once()
	turn = send(t, svc, id, "Pune")
	assert.Equal(t, types.StateAskMoreRecommendations, turn.State)
	rec.AssertNumberOfCalls(t, "Recommend", 2)
}

func TestHandleMessageRecommenderPanic(t *testing.T) {
	svc := setupChatServiceTest(panickingRecommender{})
	id := start(t, svc)
	advanceToSource(t, svc, id)

	turn, err := svc.HandleMessage(context.Background(), id, "Pune")
	require.NoError(t, err)
	assert.Equal(t, types.StateAskSource, turn.State)
	assert.Equal(t, recommendationFailedMessage, turn.Messages[len(turn.Messages)-1].Content)
}

func TestHandleMessageWhileRecommending(t *testing.T) {
	rec := &blockingRecommender{started: make(chan struct{}), release: make(chan struct{}), result: sampleResult}
	svc := setupChatServiceTest(rec)
	id := start(t, svc)
	advanceToSource(t, svc, id)

	done := make(chan *types.ChatTurn)
	go func() {
		turn, err := svc.HandleMessage(context.Background(), id, "Chennai")
		assert.NoError(t, err)
		done <- turn
	}()

	<-rec.started
	_, err := svc.HandleMessage(context.Background(), id, "hello?")
	assert.ErrorIs(t, err, types.ErrRecommendationPending)

	session, err := svc.GetSession(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, types.StateAwaitingRecommendation, session.State)

	close(rec.release)
	turn := <-done
	require.NotNil(t, turn)
	assert.Equal(t, types.StateAskMoreRecommendations, turn.State)
}

func TestHandleMessageErrors(t *testing.T) {
	svc := setupChatServiceTest(new(MockRecommender))

	_, err := svc.HandleMessage(context.Background(), uuid.New(), "beach")
	assert.ErrorIs(t, err, types.ErrSessionNotFound)

	id := start(t, svc)
	_, err = svc.HandleMessage(context.Background(), id, "   ")
	var missing *types.MissingParameterError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "message", missing.Field)
}
