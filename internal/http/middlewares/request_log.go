package middlewares

import (
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/dropDatabas3/catalogo/internal/observability/logger"
)

// statusWriter captura el status code para poder loguearlo al final.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// WithRequestLog asigna un request ID, inyecta un logger scoped en el
// contexto y loguea cada request al completarse.
func WithRequestLog() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqID := r.Header.Get("X-Request-ID")
			if reqID == "" {
				reqID = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", reqID)

			log := logger.With(
				logger.RequestID(reqID),
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
			)
			ctx := logger.ToContext(r.Context(), log)

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r.WithContext(ctx))

			ip, _, _ := net.SplitHostPort(r.RemoteAddr)
			log.Info("request completed",
				logger.Status(sw.status),
				logger.Duration(time.Since(start)),
				logger.ClientIP(ip),
			)
		})
	}
}
