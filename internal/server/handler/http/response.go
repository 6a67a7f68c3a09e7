// Package http provides the HTTP handlers for the slides API: account
// signup and login, the presentation lifecycle, calibration, and slide
// generation.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Tufailahmed-Bargir/slides-ai-v1/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fail writes the {success:false, msg} failure shape.
func fail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "msg": msg})
}

// failFromService maps service errors onto client responses. Not-owned
// renders exactly like not-found so ownership of arbitrary ids is not
// revealed; validation messages pass through; everything else is
// generic.
func failFromService(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrNotOwned):
		fail(w, http.StatusNotFound, "presentation not found")
	case errors.Is(err, service.ErrValidation):
		fail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrGeneration):
		fail(w, http.StatusInternalServerError, "generation failed, try again")
	default:
		fail(w, http.StatusInternalServerError, "internal error")
	}
}
