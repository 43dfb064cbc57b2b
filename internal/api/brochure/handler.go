package brochure

import (
	"log/slog"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/smart-tour/internal/api"
)

type HandlerImpl struct {
	service Service
	logger  *slog.Logger
}

func NewHandlerImpl(service Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		service: service,
		logger:  logger,
	}
}

// DownloadBrochure godoc
// @Summary      Download the Smart Tour brochure
// @Description  Serves the static product PDF as an attachment.
// @Tags         Brochure
// @Produce      application/pdf
// @Success      200 {file} file
// @Failure      404 {object} types.Response "PDF file not found"
// @Failure      500 {object} types.Response "Failed to serve PDF"
// @Router       /download-pdf [get]
func (h *HandlerImpl) DownloadBrochure(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("BrochureHandler").Start(r.Context(), "DownloadBrochure", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/download-pdf"),
	))
	defer span.End()

	doc, err := h.service.StaticBrochure(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Error serving PDF", slog.Any("error", err))
		status, message := api.StatusForError(err)
		if status == http.StatusInternalServerError {
			message = "Failed to serve PDF"
		}
		api.ErrorResponse(w, r, status, message)
		return
	}
	writePDF(w, doc, h.logger)
}

// ItineraryPDF godoc
// @Summary      Download a session itinerary
// @Description  Renders the session's latest recommendation and destinations as a PDF.
// @Tags         Brochure
// @Produce      application/pdf
// @Param        sessionID path string true "Session ID"
// @Success      200 {file} file
// @Failure      400 {object} types.Response "Invalid session ID"
// @Failure      404 {object} types.Response "Session or recommendation not found"
// @Router       /api/v1/chat/sessions/{sessionID}/itinerary.pdf [get]
func (h *HandlerImpl) ItineraryPDF(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("BrochureHandler").Start(r.Context(), "ItineraryPDF", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/chat/sessions/{sessionID}/itinerary.pdf"),
	))
	defer span.End()

	sessionID, ok := api.URLParamUUID(w, r, "sessionID")
	if !ok {
		return
	}

	doc, err := h.service.Itinerary(ctx, sessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "Itinerary not available",
			slog.String("session_id", sessionID.String()), slog.Any("error", err))
		api.WriteError(w, r, err)
		return
	}
	writePDF(w, doc, h.logger)
}

func writePDF(w http.ResponseWriter, doc *Document, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+doc.Filename)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Content); err != nil {
		logger.Error("Failed to write PDF body", slog.Any("error", err))
	}
}
