package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/models"
	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/service"
)

type mockPresentationRepo struct {
	CreateFunc                 func(ctx context.Context, id, ownerID string) (*models.Presentation, error)
	GetByIDFunc                func(ctx context.Context, id string) (*models.Presentation, error)
	ListByOwnerFunc            func(ctx context.Context, ownerID string) ([]models.Presentation, error)
	UpdateInputFunc            func(ctx context.Context, id, ownerID, content, instructions string, slideCount *int) error
	UpdateToneFunc             func(ctx context.Context, id, ownerID, tone string) error
	UpdateVerbosityFunc        func(ctx context.Context, id, ownerID string, level int) error
	UpdateGeneratedContentFunc func(ctx context.Context, id, ownerID, content string) error
	DeleteFunc                 func(ctx context.Context, id, ownerID string) error
}

func (m *mockPresentationRepo) Create(ctx context.Context, id, ownerID string) (*models.Presentation, error) {
	return m.CreateFunc(ctx, id, ownerID)
}
func (m *mockPresentationRepo) GetByID(ctx context.Context, id string) (*models.Presentation, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *mockPresentationRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Presentation, error) {
	return m.ListByOwnerFunc(ctx, ownerID)
}
func (m *mockPresentationRepo) UpdateInput(ctx context.Context, id, ownerID, content, instructions string, slideCount *int) error {
	return m.UpdateInputFunc(ctx, id, ownerID, content, instructions, slideCount)
}
func (m *mockPresentationRepo) UpdateTone(ctx context.Context, id, ownerID, tone string) error {
	return m.UpdateToneFunc(ctx, id, ownerID, tone)
}
func (m *mockPresentationRepo) UpdateVerbosity(ctx context.Context, id, ownerID string, level int) error {
	return m.UpdateVerbosityFunc(ctx, id, ownerID, level)
}
func (m *mockPresentationRepo) UpdateGeneratedContent(ctx context.Context, id, ownerID, content string) error {
	return m.UpdateGeneratedContentFunc(ctx, id, ownerID, content)
}
func (m *mockPresentationRepo) Delete(ctx context.Context, id, ownerID string) error {
	return m.DeleteFunc(ctx, id, ownerID)
}

// ownedBy returns a repo whose GetByID yields a presentation owned by
// owner, for ownership-path tests.
func ownedBy(owner string) *mockPresentationRepo {
	return &mockPresentationRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Presentation, error) {
			return &models.Presentation{ID: id, UserID: owner}, nil
		},
	}
}

func TestSaveInput_Validation(t *testing.T) {
	svc := service.NewPresentationService(ownedBy("u1"))
	tests := []struct {
		name         string
		content      string
		instructions string
		count        *int
	}{
		{"empty content", "", "do it", nil},
		{"empty instructions", "topic", "", nil},
		{"blank content", "   ", "do it", nil},
		{"zero slide count", "topic", "do it", intPtr(0)},
		{"negative slide count", "topic", "do it", intPtr(-2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.SaveInput(context.Background(), "u1", "p1", tt.content, tt.instructions, tt.count)
			if !errors.Is(err, service.ErrValidation) {
				t.Errorf("SaveInput error = %v; want ErrValidation", err)
			}
		})
	}
}

func TestSaveInput_Success(t *testing.T) {
	repo := ownedBy("u1")
	var gotContent, gotInstructions string
	var gotCount *int
	repo.UpdateInputFunc = func(ctx context.Context, id, ownerID, content, instructions string, slideCount *int) error {
		gotContent, gotInstructions, gotCount = content, instructions, slideCount
		return nil
	}
	svc := service.NewPresentationService(repo)

	count := 3
	if err := svc.SaveInput(context.Background(), "u1", "p1", "Topic X", "Be brief", &count); err != nil {
		t.Fatalf("SaveInput failed: %v", err)
	}
	if gotContent != "Topic X" || gotInstructions != "Be brief" || gotCount == nil || *gotCount != 3 {
		t.Errorf("unexpected repo call: content=%q instructions=%q count=%v", gotContent, gotInstructions, gotCount)
	}
}

func TestSetVerbosity_Bounds(t *testing.T) {
	repo := ownedBy("u1")
	repo.UpdateVerbosityFunc = func(ctx context.Context, id, ownerID string, level int) error {
		return nil
	}
	svc := service.NewPresentationService(repo)

	for _, level := range []int{0, 1, 2, 3, 4} {
		if err := svc.SetVerbosity(context.Background(), "u1", "p1", level); err != nil {
			t.Errorf("SetVerbosity(%d) = %v; want nil", level, err)
		}
	}
	for _, level := range []int{-1, 5, 42} {
		err := svc.SetVerbosity(context.Background(), "u1", "p1", level)
		if !errors.Is(err, service.ErrValidation) {
			t.Errorf("SetVerbosity(%d) = %v; want ErrValidation", level, err)
		}
	}
}

func TestSetTone_EmptyRejected(t *testing.T) {
	svc := service.NewPresentationService(ownedBy("u1"))
	err := svc.SetTone(context.Background(), "u1", "p1", "  ")
	if !errors.Is(err, service.ErrValidation) {
		t.Errorf("SetTone error = %v; want ErrValidation", err)
	}
}

func TestSetTone_CustomTextAccepted(t *testing.T) {
	repo := ownedBy("u1")
	var gotTone string
	repo.UpdateToneFunc = func(ctx context.Context, id, ownerID, tone string) error {
		gotTone = tone
		return nil
	}
	svc := service.NewPresentationService(repo)
	if err := svc.SetTone(context.Background(), "u1", "p1", "like a pirate"); err != nil {
		t.Fatalf("SetTone failed: %v", err)
	}
	if gotTone != "like a pirate" {
		t.Errorf("tone = %q", gotTone)
	}
}

// Ownership isolation: another user's attempt to mutate or delete must
// fail with an outcome that renders identically to a missing id.
func TestOwnershipIsolation(t *testing.T) {
	repo := ownedBy("userA")
	svc := service.NewPresentationService(repo)
	ctx := context.Background()

	ops := map[string]func() error{
		"delete":    func() error { return svc.Delete(ctx, "userB", "p1") },
		"tone":      func() error { return svc.SetTone(ctx, "userB", "p1", "Casual") },
		"verbosity": func() error { return svc.SetVerbosity(ctx, "userB", "p1", 2) },
		"input":     func() error { return svc.SaveInput(ctx, "userB", "p1", "c", "i", nil) },
		"save deck": func() error { return svc.SaveDeck(ctx, "userB", "p1", `{"slides":[]}`) },
		"get":       func() error { _, err := svc.Get(ctx, "userB", "p1"); return err },
	}
	for name, op := range ops {
		if err := op(); !errors.Is(err, service.ErrNotOwned) {
			t.Errorf("%s: error = %v; want ErrNotOwned", name, err)
		}
	}
}

func TestMissingID_IsNotFound(t *testing.T) {
	repo := &mockPresentationRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*models.Presentation, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := service.NewPresentationService(repo)
	err := svc.SetTone(context.Background(), "u1", "ghost", "Casual")
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("error = %v; want ErrNotFound", err)
	}
}

func TestSaveDeck_RejectsMalformed(t *testing.T) {
	svc := service.NewPresentationService(ownedBy("u1"))
	err := svc.SaveDeck(context.Background(), "u1", "p1", "{broken")
	if !errors.Is(err, service.ErrValidation) {
		t.Errorf("SaveDeck error = %v; want ErrValidation", err)
	}
}

func TestSaveDeck_FullOverwrite(t *testing.T) {
	repo := ownedBy("u1")
	var stored string
	repo.UpdateGeneratedContentFunc = func(ctx context.Context, id, ownerID, content string) error {
		stored = content
		return nil
	}
	svc := service.NewPresentationService(repo)

	raw := `{"slides":[{"title":"Edited","content":["x"]}]}`
	if err := svc.SaveDeck(context.Background(), "u1", "p1", raw); err != nil {
		t.Fatalf("SaveDeck failed: %v", err)
	}
	if stored != raw {
		t.Errorf("stored = %q; want %q", stored, raw)
	}
}

func intPtr(i int) *int { return &i }
