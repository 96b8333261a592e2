package server

import (
	"log/slog"
	"net/http"
	"strings"

	"berry_buddy/internal/domain"
	"berry_buddy/pkg/contextx"
	"berry_buddy/pkg/httpx/reply"
	"berry_buddy/pkg/logx"
)

const bearerPrefix = "Bearer "

// authenticate resolves the bearer token, if any, and stores the user in the
// request context. A token that cannot be resolved leaves the request
// anonymous.
func (s Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, ok := bearerToken(r)
		if !ok || s.users == nil {
			next.ServeHTTP(w, r)

			return
		}

		user, err := s.users.ResolveUser(ctx, token)
		if err != nil {
			logger(ctx).Debug("bearer token not resolved", logx.Error(err))
			next.ServeHTTP(w, r)

			return
		}

		ctx = contextx.WithUser(ctx, user)
		ctx = contextx.WithLogger(ctx, logger(ctx).With(slog.String(logx.FieldUserID, user.ID.String())))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := contextx.UserIDFromContext(r.Context()); err != nil {
			reply.Error(r.Context(), w, domain.NewUnauthorizedError(domain.MessageAuthRequired))

			return
		}

		next.ServeHTTP(w, r)
	})
}

func requireBackend(configured bool, message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !configured {
				reply.Error(r.Context(), w, domain.NewConfigError(message))

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}

// currentUser is only called behind requireUser.
func currentUser(r *http.Request) contextx.UserID {
	userID, _ := contextx.UserIDFromContext(r.Context())

	return userID
}
