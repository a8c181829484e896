package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sauticheck/sauticheck-api/internal/auth"
	"github.com/sauticheck/sauticheck-api/internal/http/respond"
	"github.com/sauticheck/sauticheck-api/internal/models"
	"github.com/sauticheck/sauticheck-api/internal/storage"
)

type contextKey string

const userKey contextKey = "user"

// Auth resolves bearer tokens to user records for protected routes.
type Auth struct {
	tokens *auth.TokenManager
	store  storage.Store
}

// NewAuth constructs the middleware.
func NewAuth(tokens *auth.TokenManager, store storage.Store) *Auth {
	return &Auth{tokens: tokens, store: store}
}

// RequireAuth rejects requests without a valid bearer token. A missing header
// is 401; a malformed, expired, or badly-signed token is 403; a token whose
// user no longer exists is 401.
func (m *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			respond.Error(w, http.StatusUnauthorized, "Access token required")
			return
		}
		userID, err := m.tokens.Parse(token)
		if err != nil {
			respond.Error(w, http.StatusForbidden, "Invalid token")
			return
		}
		user, err := m.store.GetUser(r.Context(), userID)
		if err != nil {
			respond.Error(w, http.StatusUnauthorized, "User not found")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
	})
}

// RequireAdmin rejects authenticated users whose role is not admin. It must
// run inside RequireAuth.
func (m *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFrom(r.Context())
		if !ok || user.Role != models.RoleAdmin {
			respond.Error(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFrom returns the authenticated user stored by RequireAuth.
func UserFrom(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userKey).(models.User)
	return user, ok
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
