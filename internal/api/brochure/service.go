package brochure

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/smart-tour/config"
	"github.com/FACorreiaa/smart-tour/internal/types"
)

const defaultDownloadName = "smarttourdoc.pdf"

// SessionReader gives the brochure access to a chat session's last recommendation.
type SessionReader interface {
	GetSession(ctx context.Context, sessionID uuid.UUID) (*types.ChatSession, error)
}

// Document is a rendered PDF ready to be served as an attachment.
type Document struct {
	Filename string
	Content  []byte
}

type Service interface {
	// StaticBrochure reads the product brochure from disk.
	StaticBrochure(ctx context.Context) (*Document, error)
	// Itinerary renders the session's latest recommendation as a PDF.
	Itinerary(ctx context.Context, sessionID uuid.UUID) (*Document, error)
}

var _ Service = (*ServiceImpl)(nil)

type ServiceImpl struct {
	sessions SessionReader
	cfg      config.BrochureConfig
	logger   *slog.Logger
	now      func() time.Time
}

func NewServiceImpl(sessions SessionReader, cfg config.BrochureConfig, logger *slog.Logger) *ServiceImpl {
	if cfg.DownloadName == "" {
		cfg.DownloadName = defaultDownloadName
	}
	return &ServiceImpl{
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *ServiceImpl) StaticBrochure(ctx context.Context) (*Document, error) {
	_, span := otel.Tracer("BrochureService").Start(ctx, "StaticBrochure", trace.WithAttributes(
		attribute.String("brochure.path", s.cfg.Path),
	))
	defer span.End()

	content, err := os.ReadFile(s.cfg.Path)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, fs.ErrNotExist) {
			span.SetStatus(codes.Error, "brochure missing")
			return nil, fmt.Errorf("%w: %s", types.ErrBrochureNotFound, s.cfg.Path)
		}
		span.SetStatus(codes.Error, "brochure unreadable")
		return nil, fmt.Errorf("failed to read brochure %s: %w", s.cfg.Path, err)
	}
	return &Document{Filename: s.cfg.DownloadName, Content: content}, nil
}

func (s *ServiceImpl) Itinerary(ctx context.Context, sessionID uuid.UUID) (*Document, error) {
	ctx, span := otel.Tracer("BrochureService").Start(ctx, "Itinerary", trace.WithAttributes(
		attribute.String("session.id", sessionID.String()),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "Itinerary"), slog.String("session_id", sessionID.String()))

	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if session.Recommendations == "" && len(session.Places) == 0 {
		return nil, types.ErrNoRecommendation
	}

	content, err := renderItinerary(itinerary{
		Preferences:     session.Preferences,
		Recommendations: session.Recommendations,
		Places:          session.Places,
		GeneratedAt:     s.now(),
	})
	if err != nil {
		l.ErrorContext(ctx, "Failed to render itinerary", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		return nil, err
	}
	l.DebugContext(ctx, "Itinerary rendered", slog.Int("bytes", len(content)))

	return &Document{
		Filename: fmt.Sprintf("smart-tour-itinerary-%s.pdf", sessionID),
		Content:  content,
	}, nil
}
