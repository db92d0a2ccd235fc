// Package admin holds the per-screen lifecycle controllers behind the admin
// area: order/product/user lists and the dashboard summary.
package admin

import (
	"context"

	"storefront-core/internal/domain"
)

type client interface {
	Get(ctx context.Context, path, token string, out any) error
	Post(ctx context.Context, path string, body any, token string, out any) error
	Put(ctx context.Context, path string, body any, token string, out any) error
	Delete(ctx context.Context, path, token string, out any) error
}

// requireAdmin gates every admin request before it leaves the client. The
// redirect decision on failure stays with the caller.
func requireAdmin(session *domain.Session) error {
	if session == nil || !session.IsAdmin {
		return domain.ErrUnauthorized
	}
	return nil
}
