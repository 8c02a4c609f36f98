package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated caller extracted from a verified token.
type Identity struct {
	ID   string
	Role domain.Role
}

// SetIdentity returns a context with the caller identity set. Used by auth middleware.
func SetIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the authenticated caller from the context, if present.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// RequireRole returns a wrapper that validates the Bearer token, checks that
// the subject still exists, and requires the token role to be one of roles.
// An empty roles list admits any authenticated caller. On failure it responds
// with 401 (bad token or vanished subject) or 403 (wrong role) and does not
// call next.
func RequireRole(verifier domain.TokenVerifier, auth domain.AuthService, logger *slog.Logger, roles ...domain.Role) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(header[len(prefix):])
			if token == "" {
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "missing token")
				return
			}
			subjectID, role, err := verifier.Verify(token)
			if err != nil {
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			if err := auth.Resolve(r.Context(), subjectID, role); err != nil {
				if !errors.Is(err, domain.ErrNotFound) {
					logger.ErrorContext(r.Context(), "identity resolution failed", "err", err)
				}
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			if len(roles) > 0 && !roleAllowed(role, roles) {
				helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "forbidden")
				return
			}
			r = r.WithContext(SetIdentity(r.Context(), Identity{ID: subjectID, Role: role}))
			next(w, r)
		}
	}
}

func roleAllowed(role domain.Role, roles []domain.Role) bool {
	for _, allowed := range roles {
		if role == allowed {
			return true
		}
	}
	return false
}
