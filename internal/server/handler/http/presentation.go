package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/middleware"
	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/models"
)

// PresentationService covers the presentation lifecycle operations the
// handlers dispatch to.
type PresentationService interface {
	Create(ctx context.Context, ownerID string) (string, error)
	Get(ctx context.Context, ownerID, id string) (*models.Presentation, error)
	List(ctx context.Context, ownerID string) ([]models.Presentation, error)
	Delete(ctx context.Context, ownerID, id string) error
	SaveInput(ctx context.Context, ownerID, id, content, instructions string, slideCount *int) error
	SetTone(ctx context.Context, ownerID, id, tone string) error
	SetVerbosity(ctx context.Context, ownerID, id string, level int) error
	SaveDeck(ctx context.Context, ownerID, id, rawDeck string) error
}

// GeneratorService runs one slide-generation request.
type GeneratorService interface {
	Generate(ctx context.Context, ownerID, id string) (string, error)
}

type PresentationHandler struct {
	service   PresentationService
	generator GeneratorService
	log       *zap.Logger
}

func NewPresentationHandler(s PresentationService, g GeneratorService, log *zap.Logger) *PresentationHandler {
	return &PresentationHandler{service: s, generator: g, log: log}
}

// presentationDTO is the wire shape of a presentation. Unset optional
// fields serialize as null.
type presentationDTO struct {
	ID                string    `json:"id"`
	ContentInput      *string   `json:"content_input"`
	SystemInstruction *string   `json:"system_instruction"`
	Tone              *string   `json:"tone"`
	Verbosity         *int      `json:"verbosity"`
	NoOfSlides        *int      `json:"no_of_slides"`
	GeneratedContent  *string   `json:"generated_content"`
	CreatedAt         time.Time `json:"createdAt"`
}

func toDTO(p *models.Presentation) presentationDTO {
	return presentationDTO{
		ID:                p.ID,
		ContentInput:      p.ContentInput,
		SystemInstruction: p.SystemInstruction,
		Tone:              p.Tone,
		Verbosity:         p.Verbosity,
		NoOfSlides:        p.NoOfSlides,
		GeneratedContent:  p.GeneratedContent,
		CreatedAt:         p.CreatedAt,
	}
}

func (h *PresentationHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	if userID == "" {
		fail(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := h.service.Create(r.Context(), userID)
	if err != nil {
		h.log.Error("failed to create presentation", zap.Error(err))
		failFromService(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "id": id})
}

func (h *PresentationHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	if userID == "" {
		fail(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	list, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.log.Error("failed to list presentations", zap.Error(err))
		failFromService(w, err)
		return
	}

	dtos := make([]presentationDTO, 0, len(list))
	for i := range list {
		dtos = append(dtos, toDTO(&list[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"presentations": dtos,
	})
}

func (h *PresentationHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	if userID == "" {
		fail(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	p, err := h.service.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		failFromService(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"presentation": toDTO(p),
	})
}

func (h *PresentationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	if userID == "" {
		fail(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		failFromService(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"msg":     "Presentation deleted",
	})
}

type inputRequest struct {
	ID   string `json:"id"`
	Data struct {
		Content      string `json:"content"`
		Instructions string `json:"instructions"`
	} `json:"data"`
	SlideCount *int `json:"slideCount"`
}

func (h *PresentationHandler) SaveInput(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	if userID == "" {
		fail(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req inputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.service.SaveInput(r.Context(), userID, req.ID, req.Data.Content, req.Data.Instructions, req.SlideCount)
	if err != nil {
		failFromService(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "id": req.ID})
}

type toneRequest struct {
	ID   string `json:"id"`
	Tone string `json:"tone"`
}

func (h *PresentationHandler) SetTone(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	if userID == "" {
		fail(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req toneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.SetTone(r.Context(), userID, req.ID, req.Tone); err != nil {
		failFromService(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "id": req.ID})
}

type verbosityRequest struct {
	ID        string `json:"id"`
	Verbosity *int   `json:"verbosity"`
}

func (h *PresentationHandler) SetVerbosity(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	if userID == "" {
		fail(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req verbosityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Verbosity == nil {
		fail(w, http.StatusBadRequest, "verbosity is required")
		return
	}

	if err := h.service.SetVerbosity(r.Context(), userID, req.ID, *req.Verbosity); err != nil {
		failFromService(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "id": req.ID})
}

type generateRequest struct {
	ID   string `json:"id"`
	Data struct {
		Tone      string `json:"tone"`
		Verbosity *int   `json:"verbosity"`
	} `json:"data"`
}

// Generate optionally applies a final tone and verbosity confirmation
// before the model call, so the prompt is built from fully persisted
// state. The stored generated content is untouched when generation
// fails.
func (h *PresentationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	if userID == "" {
		fail(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Data.Tone != "" {
		if err := h.service.SetTone(r.Context(), userID, req.ID, req.Data.Tone); err != nil {
			failFromService(w, err)
			return
		}
	}
	if req.Data.Verbosity != nil {
		if err := h.service.SetVerbosity(r.Context(), userID, req.ID, *req.Data.Verbosity); err != nil {
			failFromService(w, err)
			return
		}
	}

	id, err := h.generator.Generate(r.Context(), userID, req.ID)
	if err != nil {
		failFromService(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "id": id})
}

type saveDeckRequest struct {
	GeneratedContent string `json:"generated_content"`
}

func (h *PresentationHandler) SaveDeck(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r.Context())
	if userID == "" {
		fail(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req saveDeckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.SaveDeck(r.Context(), userID, id, req.GeneratedContent); err != nil {
		failFromService(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"msg":     "Presentation updated successfully",
	})
}
