package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"fintrack/internal/core"
	"fintrack/internal/log"
)

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already out; nothing left to do but log.
		log.FromContext(ctx).ErrorContext(ctx, "failed to encode response", log.FieldError, err)
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, msg string) {
	writeJSON(ctx, w, status, errorBody{Error: msg})
}

// writeRequestError maps errors from parsing and domain validation to
// the right status: malformed bodies get 400, rejected values 422.
func writeRequestError(ctx context.Context, w http.ResponseWriter, err error) {
	var verr *core.ValidationError
	if errors.As(err, &verr) {
		writeJSON(ctx, w, http.StatusUnprocessableEntity, errorBody{Error: verr.Err.Error(), Field: verr.Field})
		return
	}
	if errors.Is(err, errMalformedBody) {
		writeError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(ctx, w, http.StatusInternalServerError, "internal error")
}
