package admin

import (
	"context"

	"storefront-core/internal/domain"
	"storefront-core/internal/notify"
	"storefront-core/internal/resource"
)

// Products is the admin product list with create and delete lifecycles.
type Products struct {
	api      client
	session  *domain.Session
	notifier notify.Notifier
	res      *resource.Resource[[]domain.Product]
}

func NewProducts(api client, session *domain.Session, notifier notify.Notifier) *Products {
	return &Products{api: api, session: session, notifier: notifier, res: resource.New[[]domain.Product]()}
}

func (p *Products) State() resource.State[[]domain.Product] {
	return p.res.State()
}

func (p *Products) Refresh(ctx context.Context) error {
	if err := requireAdmin(p.session); err != nil {
		return err
	}
	gen := p.res.Begin()
	var products []domain.Product
	if err := p.api.Get(ctx, "/api/admin/products", p.session.Token, &products); err != nil {
		p.res.Fail(gen, err.Error())
		return err
	}
	p.res.Succeed(gen, products)
	return nil
}

// Create asks the API for a new draft product and returns it so the caller
// can open the editor.
func (p *Products) Create(ctx context.Context) (domain.Product, error) {
	if err := requireAdmin(p.session); err != nil {
		return domain.Product{}, err
	}
	p.res.CreateRequested()
	var created domain.Product
	if err := p.api.Post(ctx, "/api/admin/products", struct{}{}, p.session.Token, &created); err != nil {
		p.res.CreateFailed(err.Error())
		p.notifier.Notify(err.Error(), notify.SeverityError)
		return domain.Product{}, err
	}
	p.res.CreateSucceeded()
	p.notifier.Notify("Product created successfully", notify.SeveritySuccess)
	return created, nil
}

// Delete removes a product and runs the delete-then-reset protocol: the
// SuccessDelete signal triggers one re-fetch and is cleared right after.
func (p *Products) Delete(ctx context.Context, id string) error {
	if err := requireAdmin(p.session); err != nil {
		return err
	}
	p.res.DeleteRequested()
	if err := p.api.Delete(ctx, "/api/admin/products/"+id, p.session.Token, nil); err != nil {
		p.res.DeleteFailed(err.Error())
		p.notifier.Notify(err.Error(), notify.SeverityError)
		return err
	}
	p.res.DeleteSucceeded()
	p.notifier.Notify("Product deleted successfully", notify.SeveritySuccess)
	return p.syncAfterDelete(ctx)
}

func (p *Products) syncAfterDelete(ctx context.Context) error {
	if !p.res.State().SuccessDelete {
		return nil
	}
	p.res.DeleteReset()
	return p.Refresh(ctx)
}

func (p *Products) Close() {
	p.res.Invalidate()
}
