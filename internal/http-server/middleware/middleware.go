package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"shopadmin/internal/apis/backend/failure"
)

const RequestIDHeader = "X-Request-Id"

func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(RequestIDHeader)
		if rid == "" {
			rid = NewRID()
		}

		r.Header.Set(RequestIDHeader, rid)
		w.Header().Set(RequestIDHeader, rid)

		next.ServeHTTP(w, r)
	})
}

func AccessLog(log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			log.Info("http",
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.RawQuery,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"remote", r.RemoteAddr,
				"rid", r.Header.Get(RequestIDHeader),
			)
		})
	}
}

// Switch is the read side of the maintenance mode.
type Switch interface {
	Active() bool
}

// MaintenanceGate sends every request except the maintenance and health routes
// to the maintenance view while the switch is on.
func MaintenanceGate(sw Switch) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sw != nil && sw.Active() && !exempt(r.URL.Path) {
				http.Redirect(w, r, failure.MaintenanceLocation, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func exempt(path string) bool {
	return path == "/health" ||
		path == failure.MaintenanceLocation ||
		strings.HasPrefix(path, failure.MaintenanceLocation+"/")
}

func NewRID() string {
	return uuid.NewString()
}
