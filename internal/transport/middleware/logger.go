package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/noah-vh/airbour-web-sub001/pkg/ctxutil"
)

type logFieldsKey struct{}

// logFields collects identifiers resolved by inner middleware so the request
// log line can carry them.
type logFields struct {
	userID uuid.UUID
	orgID  uuid.UUID
}

func logFieldsFromCtx(ctx context.Context) *logFields {
	f, _ := ctx.Value(logFieldsKey{}).(*logFields)
	return f
}

// Logger returns middleware that logs each HTTP request with method, path,
// status code, duration, and context identifiers (request_id, org_id,
// user_id).
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			fields := &logFields{}

			next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), logFieldsKey{}, fields)))

			duration := time.Since(start)
			requestID := ctxutil.RequestIDFromCtx(r.Context())

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", duration),
				slog.String("request_id", requestID),
			}
			if fields.orgID != uuid.Nil {
				attrs = append(attrs, slog.String("org_id", fields.orgID.String()))
			}
			if fields.userID != uuid.Nil {
				attrs = append(attrs, slog.String("user_id", fields.userID.String()))
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.status = http.StatusOK
		w.wroteHeader = true
	}
	return w.ResponseWriter.Write(b)
}
