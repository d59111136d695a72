package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Shubhendu-bhakat/cafe-demo/internal/auth"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/http/respond"
)

// TokenVerifier validates bearer credentials.
type TokenVerifier interface {
	Verify(token string) (auth.Claims, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's claims in the request context.
func RequireAuth(tokens TokenVerifier, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" {
			respond.Error(w, r, http.StatusUnauthorized, "Access token required")
			return
		}
		scheme, token, ok := strings.Cut(header, " ")
		token = strings.TrimSpace(token)
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			respond.Error(w, r, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			zerolog.Ctx(r.Context()).Debug().Err(err).Msg("token rejected")
			respond.Error(w, r, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := auth.WithClaims(r.Context(), claims)
		ctx = zerolog.Ctx(ctx).With().Int64("user_id", claims.UserID).Logger().WithContext(ctx)
		next(w, r.WithContext(ctx))
	}
}
