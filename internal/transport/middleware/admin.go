package middleware

import (
	"context"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
	"github.com/noah-vh/airbour-web-sub001/pkg/ctxutil"
)

// RoleAdmin is the token role allowed to run organisation-wide bulk
// operations.
const RoleAdmin = "admin"

// RequireAdmin returns domain.ErrForbidden if the caller's role is not admin.
// Use in REST handlers, not as HTTP middleware.
func RequireAdmin(ctx context.Context) error {
	if ctxutil.RoleFromCtx(ctx) != RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}
