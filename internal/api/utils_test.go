package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/smart-tour/internal/types"
)

func TestDecodeJSONBody(t *testing.T) {
	type body struct {
		Prompt string `json:"prompt"`
	}

	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{name: "valid", payload: `{"prompt":"hi"}`},
		{name: "empty", payload: ``, wantErr: "body must not be empty"},
		{name: "unknown field", payload: `{"prompt":"hi","extra":1}`, wantErr: `body contains unknown key "extra"`},
		{name: "two values", payload: `{"prompt":"a"}{"prompt":"b"}`, wantErr: "body must only contain a single JSON value"},
		{name: "wrong type", payload: `{"prompt":42}`, wantErr: `incorrect JSON type for field "prompt"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.payload))
			rec := httptest.NewRecorder()
			var dst body
			err := DecodeJSONBody(rec, req, &dst)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "hi", dst.Prompt)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDecodeJSONBodyAllowUnknown(t *testing.T) {
	type body struct {
		Prompt string `json:"prompt"`
	}

	t.Run("extra keys are ignored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"prompt":"hi","extra":1,"nested":{"a":true}}`))
		var dst body
		require.NoError(t, DecodeJSONBodyAllowUnknown(httptest.NewRecorder(), req, &dst))
		assert.Equal(t, "hi", dst.Prompt)
	})

	t.Run("malformed body still fails", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"prompt":`))
		var dst body
		err := DecodeJSONBodyAllowUnknown(httptest.NewRecorder(), req, &dst)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "badly-formed JSON")
	})
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{&types.MissingParameterError{Field: "budget"}, http.StatusBadRequest},
		{fmt.Errorf("wrap: %w", types.ErrConfiguration), http.StatusInternalServerError},
		{fmt.Errorf("wrap: %w", types.ErrUpstream), http.StatusInternalServerError},
		{types.ErrSessionNotFound, http.StatusNotFound},
		{types.ErrConversationEnded, http.StatusConflict},
		{types.ErrRecommendationPending, http.StatusConflict},
		{types.ErrBrochureNotFound, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		status, msg := StatusForError(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
		assert.NotEmpty(t, msg)
	}

	_, msg := StatusForError(&types.MissingParameterError{Field: "budget"})
	assert.Contains(t, msg, "budget")
}

func TestErrorResponse_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	ErrorResponse(rec, req, http.StatusBadRequest, "nope")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, false, got["success"])
	assert.Equal(t, "nope", got["error"])
}

func TestURLParamUUID(t *testing.T) {
	id := uuid.New()
	var got uuid.UUID
	var ok bool

	r := chi.NewRouter()
	r.Get("/sessions/{sessionID}", func(w http.ResponseWriter, r *http.Request) {
		got, ok = URLParamUUID(w, r, "sessionID")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/"+id.String(), nil))
	assert.True(t, ok)
	assert.Equal(t, id, got)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/nope", nil))
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid sessionID format")
}
