package order

import (
	"context"

	"storefront-core/internal/domain"
	"storefront-core/internal/resource"
)

// History lists the authenticated user's own orders.
type History struct {
	api     client
	session *domain.Session
	res     *resource.Resource[[]domain.Order]
}

func NewHistory(api client, session *domain.Session) *History {
	return &History{api: api, session: session, res: resource.New[[]domain.Order]()}
}

func (h *History) State() resource.State[[]domain.Order] {
	return h.res.State()
}

func (h *History) Refresh(ctx context.Context) error {
	if h.session == nil {
		return domain.ErrUnauthorized
	}
	gen := h.res.Begin()
	var orders []domain.Order
	if err := h.api.Get(ctx, "/api/orders/history", h.session.Token, &orders); err != nil {
		h.res.Fail(gen, err.Error())
		return err
	}
	h.res.Succeed(gen, orders)
	return nil
}

func (h *History) Close() {
	h.res.Invalidate()
}
