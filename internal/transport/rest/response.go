package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"wordpace/internal/selector"
)

// ErrorResponse is the JSON body of every non-2xx reply.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeError maps domain errors to HTTP status codes and error codes.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, selector.ErrEmptyCorpus):
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: ErrorBody{
			Code:    "EMPTY_CORPUS",
			Message: "no words are available to serve",
		}})
	default:
		log.ErrorContext(r.Context(), "request failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrorBody{
			Code:    "INTERNAL",
			Message: "internal error",
		}})
	}
}
