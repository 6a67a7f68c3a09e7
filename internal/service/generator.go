package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/models"
	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/prompt"
)

// ContentGenerator is the generative-model collaborator: prompt in, raw
// text out, no schema guarantees on the output.
type ContentGenerator interface {
	Generate(ctx context.Context, systemInstruction, userPrompt string) (string, error)
}

// GeneratorService orchestrates slide generation: it composes the prompt
// from a presentation's accumulated fields, invokes the model once, and
// persists the raw response verbatim.
type GeneratorService struct {
	repo  PresentationRepository
	model ContentGenerator
	log   *zap.Logger
}

// NewGeneratorService constructs a GeneratorService.
func NewGeneratorService(repo PresentationRepository, model ContentGenerator, log *zap.Logger) *GeneratorService {
	return &GeneratorService{repo: repo, model: model, log: log}
}

// Generate runs one generation request for the owner's presentation and
// returns the presentation id on success.
//
// The prompt is built from the record's current persisted state: callers
// must have awaited all prior field writes (input, tone, verbosity)
// before invoking Generate, or it may read stale values. There is no
// retry; a failed attempt is terminal for that request and the stored
// generated content keeps its prior value. The response is persisted
// without validation, parsing is deferred to the consumers.
func (s *GeneratorService) Generate(ctx context.Context, ownerID, id string) (string, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	if p.UserID != ownerID {
		return "", ErrNotOwned
	}

	if p.NoOfSlides == nil {
		count := models.DefaultSlideCount
		p.NoOfSlides = &count
	}
	userPrompt := prompt.Build(p)

	raw, err := s.model.Generate(ctx, prompt.SystemPrompt, userPrompt)
	if err != nil {
		s.log.Error("model call failed",
			zap.String("presentation_id", id),
			zap.Error(err))
		return "", ErrGeneration
	}

	if err := s.repo.UpdateGeneratedContent(ctx, id, ownerID, raw); err != nil {
		s.log.Error("failed to persist generated content",
			zap.String("presentation_id", id),
			zap.Error(err))
		return "", ErrGeneration
	}

	s.log.Info("slides generated",
		zap.String("presentation_id", id),
		zap.Int("response_len", len(raw)))
	return id, nil
}
