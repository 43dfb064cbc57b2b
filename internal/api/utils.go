package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/FACorreiaa/smart-tour/internal/types"
)

// errorEnvelope is the body of every non-2xx JSON response.
type errorEnvelope struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse writes a standard JSON error response including request ID.
func ErrorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	WriteJSONResponse(w, r, status, errorEnvelope{
		Success:   false,
		Error:     message,
		RequestID: middleware.GetReqID(r.Context()),
	})
}

// WriteJSONResponse encodes the data to JSON and writes the response header and body.
func WriteJSONResponse(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	js, err := json.Marshal(data)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to marshal JSON response",
			slog.Any("error", err),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(js); err != nil {
		// client already received the status code
		slog.ErrorContext(r.Context(), "Failed to write response body",
			slog.Any("error", err),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	}
}

// WriteError maps err with StatusForError and writes the error envelope.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := StatusForError(err)
	ErrorResponse(w, r, status, message)
}

// URLParamUUID parses a UUID route parameter, writing a 400 when it is malformed.
func URLParamUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		ErrorResponse(w, r, http.StatusBadRequest, fmt.Sprintf("Invalid %s format", name))
		return uuid.Nil, false
	}
	return id, true
}

const maxBodyBytes = 1 << 20

// DecodeJSONBody decodes exactly one JSON value of at most 1MiB into dst,
// turning decoder failures into messages fit for a 400 response. Keys that
// dst does not declare are rejected.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	return decodeJSONBody(w, r, dst, false)
}

// DecodeJSONBodyAllowUnknown is DecodeJSONBody for public form endpoints
// where clients may send fields the handler does not use.
func DecodeJSONBodyAllowUnknown(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	return decodeJSONBody(w, r, dst, true)
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}, allowUnknown bool) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if !allowUnknown {
		dec.DisallowUnknownFields()
	}

	if err := dec.Decode(dst); err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q (wanted %s)", unmarshalTypeError.Field, unmarshalTypeError.Type)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
			return fmt.Errorf("body contains unknown key %q", fieldName)
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)
		case errors.As(err, &invalidUnmarshalError):
			panic(fmt.Errorf("developer error: invalid argument passed to json.Unmarshal: %w", err))
		default:
			return fmt.Errorf("error decoding JSON body: %w", err)
		}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}
	return nil
}

// StatusForError maps the service error taxonomy onto an HTTP status and a
// client-safe message. Upstream and configuration causes are never echoed.
func StatusForError(err error) (int, string) {
	var missing *types.MissingParameterError
	switch {
	case errors.As(err, &missing):
		return http.StatusBadRequest, fmt.Sprintf("Missing required parameter: %s", missing.Field)
	case errors.Is(err, types.ErrMissingParameter):
		return http.StatusBadRequest, "Missing required parameters"
	case errors.Is(err, types.ErrConfiguration):
		return http.StatusInternalServerError, "Generative API key not configured"
	case errors.Is(err, types.ErrUpstream):
		return http.StatusInternalServerError, "Failed to get response from the generative API after trying all candidate models"
	case errors.Is(err, types.ErrSessionNotFound):
		return http.StatusNotFound, "Chat session not found or expired"
	case errors.Is(err, types.ErrNoRecommendation):
		return http.StatusNotFound, "No recommendation has been generated for this session yet"
	case errors.Is(err, types.ErrConversationEnded):
		return http.StatusConflict, "This conversation has ended, start a new session"
	case errors.Is(err, types.ErrRecommendationPending):
		return http.StatusConflict, "Still preparing your recommendations, please wait"
	case errors.Is(err, types.ErrBrochureNotFound):
		return http.StatusNotFound, "PDF file not found"
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}
