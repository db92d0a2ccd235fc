package admin

import (
	"context"

	"storefront-core/internal/domain"
	"storefront-core/internal/notify"
	"storefront-core/internal/resource"
)

// ProductEditor drives the single-product admin screen: fetch, update and
// image upload lifecycles.
type ProductEditor struct {
	api      client
	session  *domain.Session
	notifier notify.Notifier
	res      *resource.Resource[domain.Product]
}

func NewProductEditor(api client, session *domain.Session, notifier notify.Notifier) *ProductEditor {
	return &ProductEditor{api: api, session: session, notifier: notifier, res: resource.New[domain.Product]()}
}

func (e *ProductEditor) State() resource.State[domain.Product] {
	return e.res.State()
}

func (e *ProductEditor) Refresh(ctx context.Context, id string) error {
	if err := requireAdmin(e.session); err != nil {
		return err
	}
	gen := e.res.Begin()
	var product domain.Product
	if err := e.api.Get(ctx, "/api/admin/products/"+id, e.session.Token, &product); err != nil {
		e.res.Fail(gen, err.Error())
		return err
	}
	e.res.Succeed(gen, product)
	return nil
}

func (e *ProductEditor) Update(ctx context.Context, product domain.Product) error {
	if err := requireAdmin(e.session); err != nil {
		return err
	}
	e.res.UpdateRequested()
	var updated domain.Product
	if err := e.api.Put(ctx, "/api/admin/products/"+product.ID, product, e.session.Token, &updated); err != nil {
		e.res.UpdateFailed(err.Error())
		e.notifier.Notify(err.Error(), notify.SeverityError)
		return err
	}
	e.res.UpdateSucceeded()
	e.res.Adopt(updated)
	e.notifier.Notify("Product updated successfully", notify.SeveritySuccess)
	return nil
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload sends an already-encoded image payload and returns the hosted URL
// for the caller to put on the product form.
func (e *ProductEditor) Upload(ctx context.Context, payload any) (string, error) {
	if err := requireAdmin(e.session); err != nil {
		return "", err
	}
	e.res.UploadRequested()
	var resp uploadResponse
	if err := e.api.Post(ctx, "/api/admin/upload", payload, e.session.Token, &resp); err != nil {
		e.res.UploadFailed(err.Error())
		e.notifier.Notify(err.Error(), notify.SeverityError)
		return "", err
	}
	e.res.UploadSucceeded()
	e.notifier.Notify("File uploaded successfully", notify.SeveritySuccess)
	return resp.URL, nil
}

func (e *ProductEditor) Close() {
	e.res.Invalidate()
}
