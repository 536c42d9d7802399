package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fintrack/internal/core"
)

const maxBodyBytes = 1 << 20 // 1 MiB

var errMalformedBody = errors.New("malformed request body")

// decodeJSON reads a size-capped JSON body into dst. Unknown fields are
// rejected so client typos surface as errors instead of silent zeros.
func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	return nil
}

// parseDate accepts either a plain date or a full RFC 3339 timestamp.
func parseDate(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, &core.ValidationError{Field: field, Err: core.ErrInvalidDate}
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, &core.ValidationError{Field: field, Err: core.ErrInvalidDate}
}

type createTransactionRequest struct {
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Date        string `json:"date"`
}

type createBudgetRequest struct {
	Category string `json:"category"`
	Limit    string `json:"limit"`
	Period   string `json:"period"`
}

type createGoalRequest struct {
	Title         string   `json:"title"`
	Target        string   `json:"target_amount"`
	Deadline      string   `json:"deadline"`
	Collaborators []string `json:"collaborators"`
}
