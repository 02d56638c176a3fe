package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"docvision/internal/inference"
	"docvision/internal/logger"
	"docvision/internal/model"
	"docvision/internal/normalize"
	"docvision/internal/prompt"
)

// OperationExtract labels document extraction calls.
const OperationExtract = "extract"

// ExtractionService defines the document field extraction use case.
type ExtractionService interface {
	// Extract sends the image with the document-type instruction to the backend and
	// returns the recovered JSON object with imagem_original injected.
	Extract(ctx context.Context, req model.ExtractionRequest) (map[string]any, error)
}

type extractionService struct {
	backend     inference.Backend
	registry    *prompt.Registry
	metrics     *Metrics
	defaultMime string
	logger      *zap.Logger
}

// NewExtractionService constructs a new ExtractionService. metrics may be nil.
func NewExtractionService(backend inference.Backend, registry *prompt.Registry, metrics *Metrics, defaultMime string, log *zap.Logger) ExtractionService {
	if defaultMime == "" {
		defaultMime = "image/jpeg"
	}
	return &extractionService{
		backend:     backend,
		registry:    registry,
		metrics:     metrics,
		defaultMime: defaultMime,
		logger:      log.Named("extraction"),
	}
}

func (s *extractionService) Extract(ctx context.Context, req model.ExtractionRequest) (map[string]any, error) {
	if strings.TrimSpace(req.ImageBase64) == "" {
		return nil, fmt.Errorf("%w: imageBase64 is required", ErrMissingInput)
	}
	img, err := ParseImage(req.ImageBase64, s.defaultMime)
	if err != nil {
		return nil, err
	}

	tpl := s.lookup(req)
	log := logger.WithRequest(s.logger, OperationExtract, logger.RequestIDFromContext(ctx)).With(
		zap.String("document_type", tpl.DocumentType),
		zap.String("schema_version", tpl.Version),
	)
	if tpl.DocumentType != req.Type {
		log.Debug("document type not registered, using default template", zap.String("requested_type", req.Type))
	}

	text, err := s.backend.Generate(ctx, inference.Request{
		Operation: OperationExtract,
		Parts: []inference.Part{
			inference.TextPart(tpl.Text),
			inference.ImagePart(img.Data, img.MimeType),
		},
	})
	if err != nil {
		log.Error("inference call failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrBackendFailure, err)
	}

	res, err := normalize.Decode(text)
	if err != nil {
		s.metrics.observeNormalization(OperationExtract, "failed")
		log.Error("model response is not a JSON object", zap.Error(err), zap.String("raw", text))
		return nil, err
	}
	s.metrics.observeNormalization(OperationExtract, string(res.Strategy))

	res.Object[model.OriginalImageField] = DataURI(req.ImageBase64, s.defaultMime)
	log.Info("document extracted", zap.String("strategy", string(res.Strategy)), zap.Int("fields", len(res.Object)-1))
	return res.Object, nil
}

func (s *extractionService) lookup(req model.ExtractionRequest) prompt.Template {
	if req.Version == "" {
		return s.registry.Lookup(req.Type)
	}
	return s.registry.LookupVersion(req.Version, req.Type)
}
