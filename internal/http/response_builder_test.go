package http

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/carlmjohnson/be"

	"fintrack/internal/log"
)

func TestWriteJSONEncodeFailureUsesRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(log.Config{
		Component: log.ComponentHTTP,
		Handler:   slog.NewTextHandler(&buf, nil),
	})
	ctx := log.WithContext(context.Background(), logger.With(log.FieldRequestID, "req_test"))

	rec := httptest.NewRecorder()
	writeJSON(ctx, rec, http.StatusOK, make(chan int)) // channels are not encodable

	// Status was already committed before encoding failed.
	be.Equal(t, http.StatusOK, rec.Code)

	out := buf.String()
	if !strings.Contains(out, "failed to encode response") {
		t.Fatalf("log output %q missing encode failure message", out)
	}
	// The request-scoped attributes must survive into the error record.
	if !strings.Contains(out, "request_id=req_test") {
		t.Fatalf("log output %q missing request id attribute", out)
	}
}
