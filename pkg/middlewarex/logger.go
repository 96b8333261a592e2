package middlewarex

import (
	"log/slog"
	"net"
	"net/http"

	"berry_buddy/pkg/contextx"
	"berry_buddy/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Logger puts a request scoped logger into the context. It must run after
// TraceID.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID, _ := contextx.TraceIDFromContext(ctx)

		l := logger(ctx).With(
			slog.String(logx.FieldTraceID, traceID.String()),
			slog.String(logx.FieldURL, r.URL.Path),
			slog.String(logx.FieldHTTPMethod, r.Method),
			slog.String(logx.FieldIP, clientIP(r)),
		)

		next.ServeHTTP(w, r.WithContext(contextx.WithLogger(ctx, l)))
	})
}

func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Real-Ip"); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
