package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/models"
	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/service"
)

// AuthService is what the auth handlers need from the service layer.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type AuthHandler struct {
	service  AuthService
	tokenTTL time.Duration
	log      *zap.Logger
}

func NewAuthHandler(s AuthService, tokenTTL time.Duration, log *zap.Logger) *AuthHandler {
	return &AuthHandler{service: s, tokenTTL: tokenTTL, log: log}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.service.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			fail(w, http.StatusConflict, "user already exists")
		case errors.Is(err, service.ErrValidation):
			fail(w, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("signup failed", zap.Error(err))
			fail(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	h.log.Info("user registered", zap.String("userID", user.ID))
	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"msg":     "User created successfully",
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tokenString, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBadCredentials):
			fail(w, http.StatusUnauthorized, "invalid email or password")
		case errors.Is(err, service.ErrValidation):
			fail(w, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("login failed", zap.Error(err))
			fail(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    tokenString,
		Path:     "/",
		Expires:  time.Now().Add(h.tokenTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"token":   tokenString,
	})
}
