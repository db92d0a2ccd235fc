package admin

import (
	"context"

	"storefront-core/internal/domain"
	"storefront-core/internal/resource"
)

// Orders lists every order in the project for the admin orders screen.
type Orders struct {
	api     client
	session *domain.Session
	res     *resource.Resource[[]domain.Order]
}

func NewOrders(api client, session *domain.Session) *Orders {
	return &Orders{api: api, session: session, res: resource.New[[]domain.Order]()}
}

func (o *Orders) State() resource.State[[]domain.Order] {
	return o.res.State()
}

func (o *Orders) Refresh(ctx context.Context) error {
	if err := requireAdmin(o.session); err != nil {
		return err
	}
	gen := o.res.Begin()
	var orders []domain.Order
	if err := o.api.Get(ctx, "/api/admin/orders", o.session.Token, &orders); err != nil {
		o.res.Fail(gen, err.Error())
		return err
	}
	o.res.Succeed(gen, orders)
	return nil
}

func (o *Orders) Close() {
	o.res.Invalidate()
}
