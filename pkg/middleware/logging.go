package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sgrumley/flickrauth/pkg/logger"
)

// LoggerMiddleware injects a service-tagged logger into the request context
// so handlers can log through logger.FromContext.
func LoggerMiddleware(next http.Handler, serviceName string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.NewLogger()
		tagged := log.With(slog.String("service", fmt.Sprintf("[%s]", serviceName)))
		ctx := logger.AddLoggerContext(r.Context(), tagged)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
