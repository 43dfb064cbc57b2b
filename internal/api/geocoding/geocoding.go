package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/smart-tour/config"
	"github.com/FACorreiaa/smart-tour/internal/types"
)

var _ Geocoder = (*Client)(nil)

// Geocoder resolves a place within a state to coordinates.
// A false result means "unknown" and is never an error for callers.
type Geocoder interface {
	Geocode(ctx context.Context, placeName, stateName string) (types.Coordinates, bool)
}

var errNoResults = errors.New("geocoding: no results")

type response struct {
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
	} `json:"results"`
	Status struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"status"`
}

// Client is an OpenCage forward geocoding client.
type Client struct {
	cfg     config.GeocodingConfig
	hc      *http.Client
	breaker *gobreaker.CircuitBreaker[types.Coordinates]
	logger  *slog.Logger
}

func NewClient(cfg config.GeocodingConfig, logger *slog.Logger) *Client {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if cfg.Limit <= 0 {
		cfg.Limit = 1
	}
	threshold := cfg.Breaker.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	settings := gobreaker.Settings{
		Name:     "opencage",
		Interval: cfg.Breaker.Interval,
		Timeout:  cfg.Breaker.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// An empty result set is a valid answer, not an upstream fault.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errNoResults)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Geocoding circuit breaker changed state",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	}

	return &Client{
		cfg:     cfg,
		hc:      &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker[types.Coordinates](settings),
		logger:  logger,
	}
}

// Geocode queries "<place>, <state>, India". Every failure mode collapses to
// (zero, false) after being logged.
func (c *Client) Geocode(ctx context.Context, placeName, stateName string) (types.Coordinates, bool) {
	ctx, span := otel.Tracer("GeocodingClient").Start(ctx, "Geocode", trace.WithAttributes(
		attribute.String("place.name", placeName),
		attribute.String("place.state", stateName),
	))
	defer span.End()

	l := c.logger.With(slog.String("method", "Geocode"), slog.String("place", placeName), slog.String("state", stateName))

	if c.cfg.APIKey == "" {
		l.DebugContext(ctx, "Geocoding key not configured, skipping lookup")
		span.SetStatus(codes.Unset, "no api key")
		return types.Coordinates{}, false
	}

	query := fmt.Sprintf("%s, %s, India", placeName, stateName)
	coords, err := c.breaker.Execute(func() (types.Coordinates, error) {
		return c.lookup(ctx, query)
	})
	switch {
	case err == nil:
		span.SetAttributes(attribute.Float64("place.lat", coords.Lat), attribute.Float64("place.lng", coords.Lng))
		return coords, true
	case errors.Is(err, errNoResults):
		l.DebugContext(ctx, "Geocoding returned no results")
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		l.WarnContext(ctx, "Geocoding skipped, circuit breaker open")
	default:
		l.ErrorContext(ctx, "Geocoding request failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "geocoding failed")
	}
	return types.Coordinates{}, false
}

func (c *Client) lookup(ctx context.Context, query string) (types.Coordinates, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("key", c.cfg.APIKey)
	params.Set("limit", strconv.Itoa(c.cfg.Limit))
	if c.cfg.CountryCode != "" {
		params.Set("countrycode", c.cfg.CountryCode)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return types.Coordinates{}, fmt.Errorf("bad status %d: %s", resp.StatusCode, body)
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return types.Coordinates{}, fmt.Errorf("decode response: %w", err)
	}
	if len(out.Results) == 0 {
		return types.Coordinates{}, errNoResults
	}
	g := out.Results[0].Geometry
	return types.Coordinates{Lat: g.Lat, Lng: g.Lng}, nil
}
