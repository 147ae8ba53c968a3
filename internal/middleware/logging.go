package middleware

import (
	"bytes"
	"net/http"
	"time"

	"infinite-experiment/airport-lookup/internal/logging"
)

type respLogger struct {
	http.ResponseWriter
	status int
	buf    *bytes.Buffer
}

func (l *respLogger) WriteHeader(code int) {
	l.status = code
	l.ResponseWriter.WriteHeader(code)
}

func (l *respLogger) Write(b []byte) (int, error) {
	l.buf.Write(b)
	return l.ResponseWriter.Write(b)
}

// DebugLogging logs every request and its full response body. Development only.
func DebugLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := &bytes.Buffer{}
		lw := &respLogger{ResponseWriter: w, status: http.StatusOK, buf: buf}

		start := time.Now()
		next.ServeHTTP(lw, r)

		logging.Debug("Request served",
			"request_id", GetRequestID(r.Context()),
			"method", r.Method,
			"url", r.URL.String(),
			"status_code", lw.status,
			"duration", time.Since(start).String(),
			"response_body", buf.String(),
		)
	})
}
