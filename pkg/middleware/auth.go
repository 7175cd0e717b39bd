package middleware

import (
	"net/http"

	"laundry-service/internal/data/entity"
	"laundry-service/pkg/utils"

	"go.uber.org/zap"
)

const (
	msgLoginRequired = "Please log in to access this page."
	msgForbidden     = "You do not have permission to access this page."
)

// Session decodes the session cookie, when present and valid, into the
// request context. It never rejects a request; guards decide that.
func Session(codec *utils.SessionCodec, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(utils.SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := codec.Decode(cookie.Value)
			if err != nil {
				logger.Debug("Ignoring invalid session cookie",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				next.ServeHTTP(w, r)
				return
			}

			ctx := utils.SetIdentityContext(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth lets through any authenticated caller.
func RequireAuth(logger *zap.Logger) func(http.Handler) http.Handler {
	return requireRole("", logger)
}

// RequireAdmin lets through authenticated admins only.
func RequireAdmin(logger *zap.Logger) func(http.Handler) http.Handler {
	return requireRole(entity.RoleAdmin, logger)
}

func requireRole(role entity.UserRole, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, msgLoginRequired, "/login")
				return
			}

			if !utils.Allow(identity, role) {
				logger.Warn("Access denied",
					zap.Int64("user_id", identity.UserID),
					zap.String("role", string(identity.Role)),
					zap.String("required", string(role)),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, msgForbidden, "/")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
