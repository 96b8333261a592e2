package middlewarex

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"berry_buddy/pkg/errcodes"
	"berry_buddy/pkg/httpx/reply"
	"berry_buddy/pkg/logx"
	"berry_buddy/pkg/rest"
)

// Recovery turns a panic into the usual 500 error body. http.ErrAbortHandler
// is re-raised so the server can abort the response.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger(ctx).Error(
				"panic in handler",
				slog.Any(logx.FieldError, rec),
				slog.String(logx.FieldStack, string(debug.Stack())),
			)

			reply.JSON(ctx, w, http.StatusInternalServerError, rest.Error{
				Error:   errcodes.Error.String(),
				Message: http.StatusText(http.StatusInternalServerError),
			})
		}()

		next.ServeHTTP(w, r)
	})
}
