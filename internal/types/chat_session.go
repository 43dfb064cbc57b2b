package types

import (
	"time"

	"github.com/google/uuid"
)

// ConversationState is a step of the travel questionnaire.
type ConversationState string

const (
	StateAskPlaceType           ConversationState = "ask_place_type"
	StateAskBudget              ConversationState = "ask_budget"
	StateAskSeason              ConversationState = "ask_season"
	StateAskSource              ConversationState = "ask_source"
	StateAwaitingRecommendation ConversationState = "awaiting_recommendation"
	StateAskMoreRecommendations ConversationState = "ask_more_recommendations"
	StateEnd                    ConversationState = "end"
)

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

type ConversationMessage struct {
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
}

// ChatSession is a snapshot of one questionnaire run.
type ChatSession struct {
	ID              uuid.UUID             `json:"session_id"`
	State           ConversationState     `json:"state"`
	Preferences     UserPreferences       `json:"preferences"`
	Messages        []ConversationMessage `json:"messages"`
	Recommendations string                `json:"recommendations,omitempty"`
	Places          []Place               `json:"places,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// ChatTurn is what the controller returns after handling one user message.
type ChatTurn struct {
	SessionID   uuid.UUID             `json:"session_id"`
	State       ConversationState     `json:"state"`
	Messages    []ConversationMessage `json:"messages"`
	Preferences *UserPreferences      `json:"preferences,omitempty"`
	Places      []Place               `json:"places,omitempty"`
	MapURL      string                `json:"map_url,omitempty"`
}

// ChatMessageRequest is the body of POST /chat/sessions/{sessionID}/messages.
type ChatMessageRequest struct {
	Message string `json:"message" example:"Beach"`
}
