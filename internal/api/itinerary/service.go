package itinerary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-itinerary-gen/app/tracer"
	"github.com/FACorreiaa/go-itinerary-gen/internal/types"
)

const defaultTemperature = 0.5

// Generator is the generative-model collaborator. The service only consumes
// its raw text output; prompt transport, retries and model choice live
// behind it.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error)
}

var _ Service = (*ServiceImpl)(nil)

// Service is the business contract for itinerary generation, editing
// support and sharing.
type Service interface {
	GenerateItinerary(ctx context.Context, req types.TripRequest) (*types.ItineraryData, error)
	TranslateItinerary(ctx context.Context, data types.ItineraryData) (*types.ItineraryData, error)
	GetTemplate(ctx context.Context, id string, mode types.ItineraryMode) (*types.ItineraryData, error)
	ListTemplates(ctx context.Context) []TemplateSummary
	ExportItinerary(data types.ItineraryData, req types.TripRequest) types.ItineraryExport
	SaveItinerary(ctx context.Context, data types.ItineraryData) (*types.SavedItinerary, error)
	GetSharedItinerary(ctx context.Context, shareCode string) (*types.ItineraryData, error)
}

type ServiceImpl struct {
	logger    *slog.Logger
	generator Generator
	repo      Repository
	cache     *cache.Cache
}

func NewServiceImpl(generator Generator, repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		generator: generator,
		repo:      repo,
		cache:     cache.New(24*time.Hour, 1*time.Hour),
	}
}

// generationCacheKey fingerprints the request fields that influence the
// generated document.
func generationCacheKey(req types.TripRequest) string {
	return fmt.Sprintf("gen:%s:%d:%s:%d:%d:%s",
		req.Destination, req.Days, req.Mode, req.Adults, req.Children, req.Requirements)
}

// GenerateItinerary runs the full pipeline: prompt → model → raw-text
// extraction → JSON decode → schema normalization. Whatever the model
// returns, the result is a complete, well-typed record; only a response that
// fails to decode at all surfaces an error.
func (s *ServiceImpl) GenerateItinerary(ctx context.Context, req types.TripRequest) (*types.ItineraryData, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GenerateItinerary", trace.WithAttributes(
		attribute.String("destination", req.Destination),
		attribute.Int("days", req.Days),
		attribute.String("mode", string(req.Mode)),
	))
	defer span.End()

	cacheKey := generationCacheKey(req)
	if cached, found := s.cache.Get(cacheKey); found {
		if data, ok := cached.(types.ItineraryData); ok {
			s.logger.InfoContext(ctx, "Cache hit for generated itinerary", slog.String("cache_key", cacheKey))
			span.AddEvent("cache hit")
			tracer.RecordCacheHit(ctx)
			out := data.Clone()
			return &out, nil
		}
	}

	config := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](defaultTemperature),
		ResponseMIMEType:  "application/json",
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction(req.Mode)}}},
	}
	start := time.Now()
	raw, err := s.generator.GenerateContent(ctx, generateItineraryPrompt(req), config)
	tracer.RecordGeneration(ctx, string(req.Mode), time.Since(start), err == nil)
	if err != nil {
		s.logger.ErrorContext(ctx, "Generation call failed", slog.Any("error", err))
		span.RecordError(err)
		return nil, fmt.Errorf("failed to generate itinerary: %w", err)
	}

	data, err := s.decodeModelOutput(ctx, raw)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.cache.Set(cacheKey, data.Clone(), cache.DefaultExpiration)
	span.SetStatus(codes.Ok, "Itinerary generated")
	return data, nil
}

// TranslateItinerary asks the model for a professional-English rendition of
// the record and normalizes the result. The engine itself performs no
// translation. Mode is pinned to C on the way out regardless of what the
// model claims.
func (s *ServiceImpl) TranslateItinerary(ctx context.Context, data types.ItineraryData) (*types.ItineraryData, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "TranslateItinerary", trace.WithAttributes(
		attribute.String("template_code", data.TemplateCode),
	))
	defer span.End()

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](defaultTemperature),
		ResponseMIMEType: "application/json",
	}
	raw, err := s.generator.GenerateContent(ctx, translateItineraryPrompt(data), config)
	if err != nil {
		s.logger.ErrorContext(ctx, "Translation call failed", slog.Any("error", err))
		span.RecordError(err)
		return nil, fmt.Errorf("failed to translate itinerary: %w", err)
	}

	translated, err := s.decodeModelOutput(ctx, raw)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	translated.Mode = types.ModeEnglish

	span.SetStatus(codes.Ok, "Itinerary translated")
	return translated, nil
}

// decodeModelOutput extracts, decodes and normalizes raw model text.
func (s *ServiceImpl) decodeModelOutput(ctx context.Context, raw string) (*types.ItineraryData, error) {
	cleaned := cleanJSONResponse(raw)

	var decoded any
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		s.logger.ErrorContext(ctx, "Model output failed JSON decode",
			slog.Any("error", err), slog.Int("payload_len", len(cleaned)))
		tracer.RecordDecodeError(ctx)
		return nil, fmt.Errorf("%w: %s", types.ErrInvalidModelOutput, err)
	}

	data := NormalizeItinerary(decoded)
	return &data, nil
}

// GetTemplate returns a deep copy of a catalog template. The requested mode
// overrides the stored one unless the caller asks for the English rendition,
// which only the translation flow produces.
func (s *ServiceImpl) GetTemplate(ctx context.Context, id string, mode types.ItineraryMode) (*types.ItineraryData, error) {
	tpl, ok := templateByID(id)
	if !ok {
		return nil, fmt.Errorf("template %q: %w", id, types.ErrTemplateNotFound)
	}
	if mode.Valid() && mode != types.ModeEnglish {
		tpl.Mode = mode
	}
	s.logger.DebugContext(ctx, "Template loaded", slog.String("template_id", id), slog.String("mode", string(tpl.Mode)))
	return &tpl, nil
}

func (s *ServiceImpl) ListTemplates(_ context.Context) []TemplateSummary {
	return ListTemplateSummaries()
}

// ExportItinerary builds the debug/export view: the record as-is with the
// computed pricing nested under "pricing".
func (s *ServiceImpl) ExportItinerary(data types.ItineraryData, req types.TripRequest) types.ItineraryExport {
	return types.ItineraryExport{
		ItineraryData: data.Clone(),
		Pricing:       CalculatePricing(req),
	}
}

func (s *ServiceImpl) SaveItinerary(ctx context.Context, data types.ItineraryData) (*types.SavedItinerary, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "SaveItinerary")
	defer span.End()

	saved, err := s.repo.SaveItinerary(ctx, data)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to save itinerary", slog.Any("error", err))
		span.RecordError(err)
		return nil, fmt.Errorf("failed to save itinerary: %w", err)
	}
	span.SetStatus(codes.Ok, "Itinerary saved")
	return saved, nil
}

func (s *ServiceImpl) GetSharedItinerary(ctx context.Context, shareCode string) (*types.ItineraryData, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GetSharedItinerary", trace.WithAttributes(
		attribute.String("share_code", shareCode),
	))
	defer span.End()

	saved, err := s.repo.GetByShareCode(ctx, shareCode)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to fetch shared itinerary", slog.Any("error", err))
		span.RecordError(err)
		return nil, err
	}
	data := saved.Data.Clone()
	span.SetStatus(codes.Ok, "Shared itinerary retrieved")
	return &data, nil
}
