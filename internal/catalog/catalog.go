// Package catalog covers the public product screens and the add-to-cart
// gate that checks stock before an item may be dispatched.
package catalog

import (
	"context"

	"storefront-core/internal/cart"
	"storefront-core/internal/domain"
	"storefront-core/internal/resource"
	"storefront-core/internal/store"
)

type client interface {
	Get(ctx context.Context, path, token string, out any) error
}

type dispatcher interface {
	Dispatch(ctx context.Context, action store.Action) error
	State() store.GlobalState
}

// Catalog is the public product list.
type Catalog struct {
	api client
	res *resource.Resource[[]domain.Product]
}

func New(api client) *Catalog {
	return &Catalog{api: api, res: resource.New[[]domain.Product]()}
}

func (c *Catalog) State() resource.State[[]domain.Product] {
	return c.res.State()
}

func (c *Catalog) Refresh(ctx context.Context) error {
	gen := c.res.Begin()
	var products []domain.Product
	if err := c.api.Get(ctx, "/api/products", "", &products); err != nil {
		c.res.Fail(gen, err.Error())
		return err
	}
	c.res.Succeed(gen, products)
	return nil
}

func (c *Catalog) Close() {
	c.res.Invalidate()
}

// AddToCart re-reads the product for a fresh stock count, combines the
// requested quantity with any line already in the cart, and dispatches the
// merge only when stock covers the target quantity.
func AddToCart(ctx context.Context, api client, st dispatcher, productID string, quantity int) error {
	var product domain.Product
	if err := api.Get(ctx, "/api/products/"+productID, "", &product); err != nil {
		return err
	}

	target := quantity
	for _, item := range st.State().Cart.CartItems {
		if item.ID == productID {
			target += item.Quantity
			break
		}
	}

	line := product.CartItem(target)
	if err := cart.CheckStock(line, target); err != nil {
		return err
	}
	return st.Dispatch(ctx, store.AddCartItem{Item: line})
}
