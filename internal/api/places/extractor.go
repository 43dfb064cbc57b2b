package places

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/smart-tour/app/observability/metrics"
	"github.com/FACorreiaa/smart-tour/internal/api/geocoding"
	"github.com/FACorreiaa/smart-tour/internal/types"
)

// Gazetteer is the static fallback lookup.
type Gazetteer interface {
	Lookup(name string) (types.Coordinates, bool)
}

const (
	ReasonNoPlaces = "no_places"
	ReasonPanic    = "panic"
)

// ExtractionFailure explains why a Result carries no usable places.
type ExtractionFailure struct {
	Reason string
	Cause  error
}

func (f *ExtractionFailure) Error() string {
	if f.Cause != nil {
		return fmt.Sprintf("place extraction failed (%s): %v", f.Reason, f.Cause)
	}
	return fmt.Sprintf("place extraction failed (%s)", f.Reason)
}

func (f *ExtractionFailure) Unwrap() error { return f.Cause }

// Result is the outcome of one extraction. Exactly one of Places or Failure is set.
type Result struct {
	Places  []types.Place
	Failure *ExtractionFailure
}

// Degraded reports whether the caller will receive the default list.
func (r Result) Degraded() bool {
	return r.Failure != nil || len(r.Places) == 0
}

// PlacesOrDefault returns the parsed places, or the fixed default list when degraded.
func (r Result) PlacesOrDefault() []types.Place {
	if r.Degraded() {
		return types.DefaultPlaces()
	}
	return r.Places
}

type Extractor struct {
	geocoder       geocoding.Geocoder
	gazetteer      Gazetteer
	maxConcurrency int
	metrics        *metrics.AppMetrics
	logger         *slog.Logger
}

func NewExtractor(geocoder geocoding.Geocoder, gazetteer Gazetteer, maxConcurrency int, m *metrics.AppMetrics, logger *slog.Logger) *Extractor {
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}
	return &Extractor{
		geocoder:       geocoder,
		gazetteer:      gazetteer,
		maxConcurrency: maxConcurrency,
		metrics:        m,
		logger:         logger,
	}
}

// Extract parses text and resolves every candidate, geocoder first and
// gazetteer second. Unresolvable names are dropped. It never panics.
func (e *Extractor) Extract(ctx context.Context, text string) (res Result) {
	ctx, span := otel.Tracer("PlaceExtractor").Start(ctx, "Extract")
	defer span.End()

	l := e.logger.With(slog.String("method", "Extract"))

	defer func() {
		if r := recover(); r != nil {
			l.ErrorContext(ctx, "Recovered from panic during extraction", slog.Any("panic", r))
			res = Result{Failure: &ExtractionFailure{Reason: ReasonPanic, Cause: fmt.Errorf("%v", r)}}
		}
		if res.Failure != nil {
			e.metrics.RecordDegraded(ctx, res.Failure.Reason)
			span.SetStatus(codes.Error, res.Failure.Error())
		}
	}()

	candidates := Parse(text)
	span.SetAttributes(attribute.Int("extractor.candidates", len(candidates)))
	l.DebugContext(ctx, "Parsed recommendation text", slog.Int("candidates", len(candidates)))

	places, err := e.resolveAll(ctx, candidates)
	if err != nil {
		return Result{Failure: &ExtractionFailure{Reason: ReasonPanic, Cause: err}}
	}
	if len(places) == 0 {
		l.WarnContext(ctx, "No places resolved from recommendation text")
		return Result{Failure: &ExtractionFailure{Reason: ReasonNoPlaces}}
	}

	span.SetAttributes(attribute.Int("extractor.places", len(places)))
	return Result{Places: places}
}

// resolveAll fans out one resolution per candidate and collects hits in input order.
func (e *Extractor) resolveAll(ctx context.Context, candidates []Candidate) ([]types.Place, error) {
	resolved := make([]*types.Place, len(candidates))

	var g errgroup.Group
	g.SetLimit(e.maxConcurrency)
	for i, c := range candidates {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("resolving %q: %v", c.Name, r)
				}
			}()
			if p, ok := e.resolve(ctx, c); ok {
				resolved[i] = &p
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	places := make([]types.Place, 0, len(resolved))
	for _, p := range resolved {
		if p != nil {
			places = append(places, *p)
		}
	}
	return places, nil
}

func (e *Extractor) resolve(ctx context.Context, c Candidate) (types.Place, bool) {
	if coords, ok := e.geocoder.Geocode(ctx, c.Name, c.State); ok {
		e.metrics.RecordGeocode(ctx, string(types.SourceGeocoder))
		return types.Place{Name: c.Name, State: c.State, Lat: coords.Lat, Lng: coords.Lng}, true
	}
	if coords, ok := e.gazetteer.Lookup(c.Name); ok {
		e.metrics.RecordGeocode(ctx, string(types.SourceGazetteer))
		return types.Place{Name: c.Name, State: c.State, Lat: coords.Lat, Lng: coords.Lng}, true
	}
	e.metrics.RecordGeocode(ctx, string(types.SourceUnresolved))
	e.logger.DebugContext(ctx, "Could not resolve place", slog.String("place", c.Name), slog.String("state", c.State))
	return types.Place{}, false
}
