package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"recircleBack/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The status line is already out, so an encode failure cannot be
	// turned into an error response anymore.
	_ = json.NewEncoder(w).Encode(v)
}

// writeValidationErrors renders a field-keyed 400 body, e.g.
// {"password": "Password fields didn't match."}.
func writeValidationErrors(w http.ResponseWriter, errs models.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, errs)
}

// asValidationErrors reports whether err carries field-level messages.
func asValidationErrors(err error) (models.ValidationErrors, bool) {
	var errs models.ValidationErrors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}

// userIDFromContext returns the authenticated requester's id as set by
// the auth middleware.
func userIDFromContext(r *http.Request) (int, bool) {
	id, ok := r.Context().Value("user_id").(int)
	return id, ok
}
