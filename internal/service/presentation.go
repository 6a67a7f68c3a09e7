package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/models"
	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/slides"
)

// PresentationRepository defines the persistence operations required by
// the presentation and generator services.
type PresentationRepository interface {
	// Create inserts an empty presentation owned by ownerID.
	Create(ctx context.Context, id, ownerID string) (*models.Presentation, error)
	// GetByID fetches a presentation regardless of owner; sql.ErrNoRows
	// when the id does not exist.
	GetByID(ctx context.Context, id string) (*models.Presentation, error)
	// ListByOwner returns all presentations owned by ownerID.
	ListByOwner(ctx context.Context, ownerID string) ([]models.Presentation, error)
	// UpdateInput overwrites content, instructions, and slide count,
	// scoped by (id AND ownerID).
	UpdateInput(ctx context.Context, id, ownerID, content, instructions string, slideCount *int) error
	// UpdateTone overwrites the tone field, scoped by (id AND ownerID).
	UpdateTone(ctx context.Context, id, ownerID, tone string) error
	// UpdateVerbosity overwrites the verbosity field, scoped by
	// (id AND ownerID).
	UpdateVerbosity(ctx context.Context, id, ownerID string, level int) error
	// UpdateGeneratedContent overwrites the stored generated content,
	// scoped by (id AND ownerID).
	UpdateGeneratedContent(ctx context.Context, id, ownerID, content string) error
	// Delete removes the presentation, scoped by (id AND ownerID).
	Delete(ctx context.Context, id, ownerID string) error
}

// PresentationService implements the presentation lifecycle: creation,
// listing, the input and calibration stages, edit saves, and deletion.
// Every targeted operation resolves ownership first and returns
// ErrNotFound or ErrNotOwned accordingly.
type PresentationService struct {
	repo PresentationRepository
}

// NewPresentationService constructs a PresentationService using the
// provided repository.
func NewPresentationService(repo PresentationRepository) *PresentationService {
	return &PresentationService{repo: repo}
}

// Create makes a new empty presentation owned by ownerID and returns its
// id.
func (s *PresentationService) Create(ctx context.Context, ownerID string) (string, error) {
	p, err := s.repo.Create(ctx, uuid.NewString(), ownerID)
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

// Get returns the presentation if it exists and belongs to ownerID.
func (s *PresentationService) Get(ctx context.Context, ownerID, id string) (*models.Presentation, error) {
	return s.resolve(ctx, ownerID, id)
}

// List returns all presentations owned by ownerID.
func (s *PresentationService) List(ctx context.Context, ownerID string) ([]models.Presentation, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Delete removes the presentation. Hard delete, owner only.
func (s *PresentationService) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.resolve(ctx, ownerID, id); err != nil {
		return err
	}
	return mapNoRows(s.repo.Delete(ctx, id, ownerID))
}

// SaveInput overwrites the content, instructions, and desired slide
// count. Both text fields are required; slideCount, when present, must
// be positive. Idempotent: repeating the call with the same arguments
// leaves the same stored state.
func (s *PresentationService) SaveInput(ctx context.Context, ownerID, id, content, instructions string, slideCount *int) error {
	if strings.TrimSpace(content) == "" || strings.TrimSpace(instructions) == "" {
		return fmt.Errorf("%w: content and instructions are required", ErrValidation)
	}
	if slideCount != nil && *slideCount <= 0 {
		return fmt.Errorf("%w: slide count must be positive", ErrValidation)
	}
	if _, err := s.resolve(ctx, ownerID, id); err != nil {
		return err
	}
	return mapNoRows(s.repo.UpdateInput(ctx, id, ownerID, content, instructions, slideCount))
}

// SetTone overwrites the tone field. Tone must be non-empty; any text is
// accepted to allow custom tones. Safe to race with SetVerbosity, the
// two touch disjoint fields and last write wins.
func (s *PresentationService) SetTone(ctx context.Context, ownerID, id, tone string) error {
	if strings.TrimSpace(tone) == "" {
		return fmt.Errorf("%w: tone is required", ErrValidation)
	}
	if _, err := s.resolve(ctx, ownerID, id); err != nil {
		return err
	}
	return mapNoRows(s.repo.UpdateTone(ctx, id, ownerID, tone))
}

// SetVerbosity overwrites the verbosity field. Level must be in [0,4].
func (s *PresentationService) SetVerbosity(ctx context.Context, ownerID, id string, level int) error {
	if !models.ValidVerbosity(level) {
		return fmt.Errorf("%w: verbosity must be between %d and %d", ErrValidation, models.VerbosityMin, models.VerbosityMax)
	}
	if _, err := s.resolve(ctx, ownerID, id); err != nil {
		return err
	}
	return mapNoRows(s.repo.UpdateVerbosity(ctx, id, ownerID, level))
}

// SaveDeck overwrites the stored generated content with an edited deck.
// The payload must parse as a deck before it is stored, so an editor
// cannot persist content the preview surfaces would refuse to load.
// This is a full-document replace: concurrent editors are last-write-wins
// with no conflict detection.
func (s *PresentationService) SaveDeck(ctx context.Context, ownerID, id, rawDeck string) error {
	if _, err := slides.ParseDeck(rawDeck); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if _, err := s.resolve(ctx, ownerID, id); err != nil {
		return err
	}
	return mapNoRows(s.repo.UpdateGeneratedContent(ctx, id, ownerID, rawDeck))
}

// resolve loads the presentation and checks ownership, translating the
// outcomes into the service error taxonomy.
func (s *PresentationService) resolve(ctx context.Context, ownerID, id string) (*models.Presentation, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.UserID != ownerID {
		return nil, ErrNotOwned
	}
	return p, nil
}

// mapNoRows treats a zero-row scoped mutation as not-found: the record
// vanished between the ownership check and the write.
func mapNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
