package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	h "techscene/internal/delivery/http/helpers"
	"techscene/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

// capturingHandler records the last log record for assertions.
type capturingHandler struct {
	record slog.Record
}

func (h *capturingHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

func (h *capturingHandler) Handle(_ context.Context, r slog.Record) error {
	h.record = r.Clone()
	return nil
}

func (h *capturingHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h *capturingHandler) WithGroup(_ string) slog.Handler { return h }

func TestLoggingMiddleware(t *testing.T) {
	var cap capturingHandler
	logger := slog.New(&cap)

	tests := []struct {
		name          string
		handlerStatus int
		path          string
		method        string
		wantLevel     slog.Level
	}{
		{"ok status", http.StatusOK, "/events", http.MethodGet, slog.LevelInfo},
		{"created", http.StatusCreated, "/people", http.MethodPost, slog.LevelInfo},
		{"not found", http.StatusNotFound, "/events/abc", http.MethodGet, slog.LevelInfo},
		{"server error", http.StatusInternalServerError, "/events", http.MethodPost, slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte("ok"))
			})
			handler := LoggingMiddleware(logger, next)
			req := httptest.NewRequest(tt.method, "http://test"+tt.path, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			require.Equal(t, "request", cap.record.Message)
			require.Equal(t, tt.wantLevel, cap.record.Level)
			attrs := make(map[string]slog.Value)
			cap.record.Attrs(func(a slog.Attr) bool {
				attrs[a.Key] = a.Value
				return true
			})
			require.Contains(t, attrs, "method")
			require.Contains(t, attrs, "path")
			require.Contains(t, attrs, "status")
			require.Contains(t, attrs, "duration_ms")
			require.Equal(t, tt.method, attrs["method"].String())
			require.Equal(t, tt.path, attrs["path"].String())
			require.Equal(t, int64(tt.handlerStatus), attrs["status"].Int64())
			require.Equal(t, int64(2), attrs["bytes"].Int64())
			require.GreaterOrEqual(t, attrs["duration_ms"].Int64(), int64(0))
			require.Equal(t, tt.handlerStatus, rr.Code)
		})
	}
}

func recordAttrs(r slog.Record) map[string]slog.Value {
	attrs := make(map[string]slog.Value)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value
		return true
	})
	return attrs
}

func TestLoggingMiddleware_EnvelopeErrorSize(t *testing.T) {
	var cap capturingHandler
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, h.MsgSubmitFailed)
	})
	rr := httptest.NewRecorder()

	LoggingMiddleware(slog.New(&cap), next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/events", nil))

	attrs := recordAttrs(cap.record)
	require.Equal(t, slog.LevelError, cap.record.Level)
	require.Equal(t, int64(http.StatusInternalServerError), attrs["status"].Int64())
	require.Equal(t, int64(rr.Body.Len()), attrs["bytes"].Int64(), "bytes counts the whole envelope")
	require.NotContains(t, attrs, "body", "response bodies are never logged")
}

func TestLoggingMiddleware_SharesWriterWithMetrics(t *testing.T) {
	var cap capturingHandler
	m := metrics.New()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /people", func(w http.ResponseWriter, r *http.Request) {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "sign in required")
	})
	handler := LoggingMiddleware(slog.New(&cap), Metrics(m, mux))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/people", nil))

	attrs := recordAttrs(cap.record)
	require.Equal(t, int64(http.StatusUnauthorized), attrs["status"].Int64())
	require.Positive(t, attrs["bytes"].Int64())
	require.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodPost, "POST /people", "401")),
		"both layers observe the same status")
}
