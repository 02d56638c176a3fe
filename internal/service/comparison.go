package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"docvision/internal/inference"
	"docvision/internal/logger"
	"docvision/internal/model"
	"docvision/internal/normalize"
	"docvision/internal/prompt"
)

// OperationCompare labels face comparison calls.
const OperationCompare = "compare"

// ComparisonService defines the face comparison use case.
type ComparisonService interface {
	// Compare sends the reference image and the live capture, in that order, with the
	// comparison instruction and returns the verdict object as decoded.
	Compare(ctx context.Context, req model.ComparisonRequest) (map[string]any, error)
}

type comparisonService struct {
	backend     inference.Backend
	metrics     *Metrics
	defaultMime string
	logger      *zap.Logger
}

// NewComparisonService constructs a new ComparisonService. metrics may be nil.
func NewComparisonService(backend inference.Backend, metrics *Metrics, defaultMime string, log *zap.Logger) ComparisonService {
	if defaultMime == "" {
		defaultMime = "image/jpeg"
	}
	return &comparisonService{
		backend:     backend,
		metrics:     metrics,
		defaultMime: defaultMime,
		logger:      log.Named("comparison"),
	}
}

func (s *comparisonService) Compare(ctx context.Context, req model.ComparisonRequest) (map[string]any, error) {
	if req.Mode != model.ModeCompare {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMode, req.Mode)
	}
	if req.Image1 == "" || req.Image2 == "" {
		return nil, fmt.Errorf("%w: image1 and image2 are required", ErrMissingInput)
	}
	reference, err := ParseImage(req.Image1, s.defaultMime)
	if err != nil {
		return nil, fmt.Errorf("image1: %w", err)
	}
	live, err := ParseImage(req.Image2, s.defaultMime)
	if err != nil {
		return nil, fmt.Errorf("image2: %w", err)
	}

	log := logger.WithRequest(s.logger, OperationCompare, logger.RequestIDFromContext(ctx))

	text, err := s.backend.Generate(ctx, inference.Request{
		Operation: OperationCompare,
		Parts: []inference.Part{
			inference.TextPart(prompt.FaceComparison),
			inference.ImagePart(reference.Data, reference.MimeType),
			inference.ImagePart(live.Data, live.MimeType),
		},
	})
	if err != nil {
		log.Error("inference call failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrBackendFailure, err)
	}

	res, err := normalize.Decode(text)
	if err != nil {
		s.metrics.observeNormalization(OperationCompare, "failed")
		log.Error("model response is not a JSON object", zap.Error(err), zap.String("raw", text))
		return nil, err
	}
	s.metrics.observeNormalization(OperationCompare, string(res.Strategy))

	if problems := verdictProblems(res.Object); len(problems) > 0 {
		s.metrics.observeVerdictMismatch()
		log.Warn("verdict does not match the requested schema", zap.Strings("problems", problems))
	}
	log.Info("faces compared", zap.String("strategy", string(res.Strategy)), zap.Any("match", res.Object["match"]))
	return res.Object, nil
}

// verdictProblems lists the ways obj deviates from model.ComparisonVerdict.
func verdictProblems(obj map[string]any) []string {
	var problems []string
	if _, ok := obj["match"].(bool); !ok {
		problems = append(problems, "match is not a boolean")
	}
	if n, ok := obj["score"].(json.Number); !ok {
		problems = append(problems, "score is not a number")
	} else if f, err := n.Float64(); err != nil || f < 0 || f > 100 {
		problems = append(problems, "score is outside 0-100")
	}
	if c, ok := obj["confidence"].(string); !ok || !slices.Contains(prompt.ConfidenceLevels, c) {
		problems = append(problems, "confidence is not one of "+fmt.Sprint(prompt.ConfidenceLevels))
	}
	if _, ok := obj["details"].(string); !ok {
		problems = append(problems, "details is not a string")
	}
	return problems
}
