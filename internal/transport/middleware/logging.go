package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/frahmantamala/reimbursement-workflow/pkg/logger"
)

// sensitiveFields are field names that should be filtered from logs
var sensitiveFields = []string{
	"password",
	"password_hash",
	"token",
	"access_token",
	"authorization",
	"secret",
	"api_key",
	"credential",
}

func LoggingMiddleware(lg *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			logRequest(logger.From(r.Context()), r)

			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(ww, r)

			logger.From(r.Context()).Info("request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.statusCode,
				"duration_ms", time.Since(start).Milliseconds())
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// logRequest logs the incoming HTTP request with sensitive data filtered
func logRequest(lg *slog.Logger, r *http.Request) {
	var bodyBytes []byte
	if r.Body != nil && isJSON(r.Header.Get("Content-Type")) {
		bodyBytes, _ = io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	}

	lg.Info("incoming request",
		"method", r.Method,
		"path", r.URL.Path,
		"remote", r.RemoteAddr,
		"body", filterSensitiveBody(bodyBytes))
}

func isJSON(contentType string) bool {
	return strings.HasPrefix(contentType, "application/json")
}

// filterSensitiveBody redacts credential-bearing fields from a JSON body
// before it reaches the log stream.
func filterSensitiveBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "[unparsed]"
	}

	for key := range parsed {
		lower := strings.ToLower(key)
		for _, field := range sensitiveFields {
			if strings.Contains(lower, field) {
				parsed[key] = "[REDACTED]"
				break
			}
		}
	}

	filtered, err := json.Marshal(parsed)
	if err != nil {
		return "[unparsed]"
	}
	return string(filtered)
}
