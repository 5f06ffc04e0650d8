package middleware

import (
	"net/http"
	"strings"

	"github.com/noah-vh/airbour-web-sub001/internal/auth"
	"github.com/noah-vh/airbour-web-sub001/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (auth.Identity, error)
}

// Auth resolves the bearer token into the caller's user, organisation and
// role. Requests without a token pass through anonymously; services reject
// them where a tenant is required.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			id, err := validator.ValidateAccessToken(token)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, CodeUnauthenticated, "invalid or expired token")
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), id.UserID)
			ctx = ctxutil.WithOrgID(ctx, id.OrgID)
			if id.Role != "" {
				ctx = ctxutil.WithRole(ctx, id.Role)
			}
			if f := logFieldsFromCtx(ctx); f != nil {
				f.userID = id.UserID
				f.orgID = id.OrgID
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken returns the token of a "Bearer <token>" header. The
// scheme is matched case-insensitively.
func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
