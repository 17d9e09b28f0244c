package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/interfaces"
	"github.com/Sujal861/knee-xray-insight-system/pkg/usecase"
	"github.com/Sujal861/knee-xray-insight-system/pkg/utils/errutil"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body) //nolint:errcheck // header already committed
}

// respondError maps domain errors to HTTP status codes
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, interfaces.ErrUsernameExists), errors.Is(err, interfaces.ErrEmailExists):
		status = http.StatusConflict
	case errors.Is(err, usecase.ErrInvalidCredentials), errors.Is(err, usecase.ErrNotLoggedIn):
		status = http.StatusUnauthorized
	case errors.Is(err, usecase.ErrUnauthorized):
		status = http.StatusForbidden
	}

	errutil.LogHTTP(r.Context(), err, status)
	respondJSON(w, status, errorResponse{Error: err.Error()})
}
