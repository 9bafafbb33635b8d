package itinerary

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-itinerary-gen/internal/api"
	"github.com/FACorreiaa/go-itinerary-gen/internal/types"
)

type Handler struct {
	service Service
	logger  *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// editRequest is the envelope for operations that carry a document (and
// possibly edit parameters). The document arrives as raw JSON and is run
// through the normalizer, so hand-edited or model-produced payloads of any
// shape are accepted.
type editRequest struct {
	Itinerary json.RawMessage    `json:"itinerary"`
	Request   *types.TripRequest `json:"request"`
	Position  *int               `json:"position"`
	From      *int               `json:"from"`
	To        *int               `json:"to"`
}

// normalizedItinerary decodes the envelope's raw document into a complete
// record. A missing document is treated like any other malformed input and
// normalizes to the default record.
func (e editRequest) normalizedItinerary() types.ItineraryData {
	var decoded any
	if len(e.Itinerary) > 0 {
		// Ignoring the error keeps the operation total: undecodable
		// payloads normalize from nil.
		_ = json.Unmarshal(e.Itinerary, &decoded)
	}
	return NormalizeItinerary(decoded)
}

func (e editRequest) tripRequest() types.TripRequest {
	if e.Request != nil {
		return *e.Request
	}
	return types.TripRequest{}
}

// Generate produces a new itinerary document from a trip request via the
// generative model.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "Generate", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/itineraries/generate"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "Generate"))

	var req types.TripRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.service.GenerateItinerary(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrInvalidModelOutput):
			l.ErrorContext(ctx, "Model returned unusable output", slog.Any("error", err))
			api.ErrorResponse(w, r, http.StatusBadGateway, types.ErrInvalidModelOutput.Error())
		default:
			l.ErrorContext(ctx, "Failed to generate itinerary", slog.Any("error", err))
			api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to generate itinerary")
		}
		return
	}

	l.InfoContext(ctx, "Itinerary generated", slog.String("template_code", data.TemplateCode))
	api.WriteJSONResponse(w, r, http.StatusOK, data)
}

// Translate returns a professional-English rendition of the posted document.
func (h *Handler) Translate(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "Translate")
	defer span.End()

	l := h.logger.With(slog.String("handler", "Translate"))

	var req editRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	translated, err := h.service.TranslateItinerary(ctx, req.normalizedItinerary())
	if err != nil {
		if errors.Is(err, types.ErrInvalidModelOutput) {
			api.ErrorResponse(w, r, http.StatusBadGateway, types.ErrInvalidModelOutput.Error())
			return
		}
		l.ErrorContext(ctx, "Failed to translate itinerary", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to translate itinerary")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, translated)
}

// Price computes the price breakdown for a trip request.
func (h *Handler) Price(w http.ResponseWriter, r *http.Request) {
	_, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "Price")
	defer span.End()

	var req types.TripRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, CalculatePricing(req))
}

// Preview returns the render projection of a document: per-day route chains,
// mode-adjusted meals, pricing and the guide label. The document itself is
// not modified.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	_, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "Preview")
	defer span.End()

	var req editRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	data := req.normalizedItinerary()
	tripReq := req.tripRequest()

	api.WriteJSONResponse(w, r, http.StatusOK, map[string]any{
		"days":        ProjectItinerary(data, tripReq),
		"pricing":     CalculatePricing(tripReq),
		"guide_label": GuideLabel(tripReq.GuideMode),
	})
}

// Export returns the debug/export view: the normalized document with the
// computed pricing nested under "pricing".
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	_, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "Export")
	defer span.End()

	var req editRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, h.service.ExportItinerary(req.normalizedItinerary(), req.tripRequest()))
}

// AppendDay adds a placeholder day at the end of the document's day list.
func (h *Handler) AppendDay(w http.ResponseWriter, r *http.Request) {
	_, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "AppendDay")
	defer span.End()

	var req editRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	data := req.normalizedItinerary()
	api.WriteJSONResponse(w, r, http.StatusOK, ApplyDays(data, AppendDay(data.Itinerary)))
}

// DeleteDay removes the day at the given 0-based position and renumbers the
// remainder.
func (h *Handler) DeleteDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "DeleteDay")
	defer span.End()

	l := h.logger.With(slog.String("handler", "DeleteDay"))

	var req editRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.Position == nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "position is required")
		return
	}

	data := req.normalizedItinerary()
	days, err := DeleteDay(data.Itinerary, *req.Position)
	if err != nil {
		l.ErrorContext(ctx, "Day delete rejected", slog.Int("position", *req.Position), slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, ApplyDays(data, days))
}

// MoveDay moves the day at "from" to "to" as a stable single-element move.
func (h *Handler) MoveDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "MoveDay")
	defer span.End()

	l := h.logger.With(slog.String("handler", "MoveDay"))

	var req editRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.From == nil || req.To == nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "from and to are required")
		return
	}

	data := req.normalizedItinerary()
	days, err := MoveDay(data.Itinerary, *req.From, *req.To)
	if err != nil {
		l.ErrorContext(ctx, "Day move rejected", slog.Int("from", *req.From), slog.Int("to", *req.To), slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, ApplyDays(data, days))
}

// ListTemplates returns the template catalog listing.
func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, h.service.ListTemplates(r.Context()))
}

// GetTemplate returns a deep copy of one template; an optional "mode" query
// parameter overrides the stored mode.
func (h *Handler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "GetTemplate")
	defer span.End()

	id := chi.URLParam(r, "templateID")
	mode := types.ItineraryMode(r.URL.Query().Get("mode"))

	tpl, err := h.service.GetTemplate(ctx, id, mode)
	if err != nil {
		if errors.Is(err, types.ErrTemplateNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, err.Error())
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to load template")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, tpl)
}

// Share persists the posted document and returns its share record.
func (h *Handler) Share(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "Share", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/itineraries/share"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "Share"))

	var req editRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := h.service.SaveItinerary(ctx, req.normalizedItinerary())
	if err != nil {
		l.ErrorContext(ctx, "Failed to save itinerary", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to save itinerary")
		return
	}

	l.InfoContext(ctx, "Itinerary shared", slog.String("share_code", saved.ShareCode))
	api.WriteJSONResponse(w, r, http.StatusCreated, saved)
}

// GetShared resolves a share code to its stored document.
func (h *Handler) GetShared(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "GetShared")
	defer span.End()

	code := chi.URLParam(r, "shareCode")
	data, err := h.service.GetSharedItinerary(ctx, code)
	if err != nil {
		if errors.Is(err, types.ErrShareLinkNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, err.Error())
			return
		}
		h.logger.ErrorContext(ctx, "Failed to load shared itinerary", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to load shared itinerary")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, data)
}
