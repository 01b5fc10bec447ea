package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"solana-signal-lab/internal/candles"
	"solana-signal-lab/internal/graphql"
	"solana-signal-lab/internal/storage"
	"solana-signal-lab/internal/strategies"
	"solana-signal-lab/internal/timerange"
	"solana-signal-lab/internal/tokens"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	var apiErr *graphql.APIError
	switch {
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, graphql.ErrNotFound),
		errors.Is(err, tokens.ErrMintNotFound):
		return http.StatusNotFound
	case errors.Is(err, strategies.ErrInvalidRequest),
		errors.Is(err, tokens.ErrInvalidAddress),
		errors.Is(err, timerange.ErrInvalidRange),
		errors.Is(err, candles.ErrInvalidQuery):
		return http.StatusBadRequest
	case errors.Is(err, strategies.ErrNoData):
		return http.StatusUnprocessableEntity
	case errors.Is(err, graphql.ErrNetwork),
		errors.Is(err, graphql.ErrEmptyResponse),
		errors.As(err, &apiErr):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Printf("ERROR: %s %s: %v", r.Method, r.URL.Path, err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
