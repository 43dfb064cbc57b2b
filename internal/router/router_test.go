package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/smart-tour/config"
	_ "github.com/FACorreiaa/smart-tour/docs"
	"github.com/FACorreiaa/smart-tour/internal/container"
)

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var cfg config.Config
	cfg.Server.AllowedOrigins = []string{"http://localhost:3000"}
	c, err := container.Build(&cfg, nil, nil, logger)
	require.NoError(t, err)

	return SetupRouter(&Config{
		RecommendationsHandler: c.RecommendationsHandler,
		ChatHandler:            c.ChatHandler,
		MapHandler:             c.MapHandler,
		BrochureHandler:        c.BrochureHandler,
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("# metrics"))
		}),
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         logger,
	})
}

func TestSetupRouter_Routes(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"ping", http.MethodGet, "/ping", http.StatusOK},
		{"root", http.MethodGet, "/", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"swagger doc", http.MethodGet, "/swagger/doc.json", http.StatusOK},
		{"start chat", http.MethodPost, "/api/v1/chat/sessions", http.StatusCreated},
		{"brochure missing", http.MethodGet, "/download-pdf", http.StatusNotFound},
		{"unknown session", http.MethodGet, "/api/v1/chat/sessions/6f1c2c1e-8f57-4a53-9a49-07a1f7d3b0d4", http.StatusNotFound},
		{"wrong method", http.MethodGet, "/recommendations", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, rr.Code)
		})
	}
}

func TestSetupRouter_SwaggerDocListsRoutes(t *testing.T) {
	r := setupRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"/recommendations"`)
	assert.Contains(t, rr.Body.String(), "Smart Tour API")
}

func TestSetupRouter_Cors(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/recommendations", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetupRouter_NoCredentialIsConfigurationError(t *testing.T) {
	r := setupRouter(t)

	body := `{"placeType":"beach","budget":"30k","season":"winter","source":"delhi"}`
	req := httptest.NewRequest(http.MethodPost, "/recommendations", strings.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Generative API key not configured")
}
