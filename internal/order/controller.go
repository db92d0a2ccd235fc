// Package order drives the order detail lifecycle: fetch, payment capture
// and delivery confirmation, with the consume-once re-fetch convention that
// keeps the displayed order aligned with server truth.
package order

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"storefront-core/internal/domain"
	"storefront-core/internal/notify"
	"storefront-core/internal/payment"
	"storefront-core/internal/resource"
)

type client interface {
	Get(ctx context.Context, path, token string, out any) error
	Put(ctx context.Context, path string, body any, token string, out any) error
}

// Controller owns one order's async resource plus the pay/deliver
// sub-lifecycles. IsPaid and IsDelivered are only ever adopted from
// server-confirmed snapshots, never flipped locally.
type Controller struct {
	api      client
	capturer payment.Capturer
	notifier notify.Notifier
	logger   *zap.Logger
	session  *domain.Session

	res *resource.Resource[domain.Order]

	mu             sync.Mutex
	orderID        string
	loadingPay     bool
	successPay     bool
	errPay         string
	loadingDeliver bool
	successDeliver bool
	errDeliver     string
}

func New(api client, capturer payment.Capturer, notifier notify.Notifier, session *domain.Session, logger *zap.Logger) *Controller {
	return &Controller{
		api:      api,
		capturer: capturer,
		notifier: notifier,
		logger:   logger,
		session:  session,
		res:      resource.New[domain.Order](),
	}
}

// Snapshot is the full observable state of the controller.
type Snapshot struct {
	resource.State[domain.Order]

	LoadingPay     bool
	SuccessPay     bool
	ErrPay         string
	LoadingDeliver bool
	SuccessDeliver bool
	ErrDeliver     string
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		State:          c.res.State(),
		LoadingPay:     c.loadingPay,
		SuccessPay:     c.successPay,
		ErrPay:         c.errPay,
		LoadingDeliver: c.loadingDeliver,
		SuccessDeliver: c.successDeliver,
		ErrDeliver:     c.errDeliver,
	}
}

// Refresh fetches the order when nothing is loaded yet, the requested id
// differs from the held one, or a pay/deliver completion flag is pending.
// The flags are cleared only when the fetch that consumed them lands, so
// each completion triggers exactly one re-fetch.
func (c *Controller) Refresh(ctx context.Context, id string) error {
	if c.session == nil {
		return domain.ErrUnauthorized
	}

	c.mu.Lock()
	need := c.orderID != id || c.successPay || c.successDeliver || c.res.State().Data.ID == ""
	c.mu.Unlock()
	if !need {
		return nil
	}

	c.logger.Debug("fetch order", zap.String("id", id))
	gen := c.res.Begin()
	var ord domain.Order
	if err := c.api.Get(ctx, "/api/orders/"+id, c.session.Token, &ord); err != nil {
		c.res.Fail(gen, err.Error())
		return err
	}
	if c.res.Succeed(gen, ord) {
		c.mu.Lock()
		c.orderID = id
		c.successPay = false
		c.successDeliver = false
		c.mu.Unlock()
	}
	return nil
}

// Pay runs the external capture flow and confirms it with the orders API,
// then re-fetches so IsPaid and PaidAt reflect server truth.
func (c *Controller) Pay(ctx context.Context) error {
	if c.session == nil {
		return domain.ErrUnauthorized
	}
	ord := c.res.State().Data
	if ord.ID == "" {
		return errors.New("no order loaded")
	}

	c.mu.Lock()
	c.loadingPay = true
	c.errPay = ""
	c.mu.Unlock()

	if err := c.capturePayment(ctx, ord); err != nil {
		c.mu.Lock()
		c.loadingPay = false
		c.errPay = err.Error()
		c.mu.Unlock()
		c.notifier.Notify(err.Error(), notify.SeverityError)
		return err
	}

	c.mu.Lock()
	c.loadingPay = false
	c.successPay = true
	c.mu.Unlock()
	c.notifier.Notify("Order is paid", notify.SeveritySuccess)

	return c.Refresh(ctx, ord.ID)
}

func (c *Controller) capturePayment(ctx context.Context, ord domain.Order) error {
	intentID, err := c.capturer.CreateIntent(ctx, ord.TotalPriceCents)
	if err != nil {
		return err
	}
	details, err := c.capturer.Capture(ctx, intentID)
	if err != nil {
		return err
	}
	// The confirmation response is not adopted; the follow-up Refresh is the
	// only path that may change IsPaid.
	return c.api.Put(ctx, "/api/orders/"+ord.ID+"/pay", details, c.session.Token, nil)
}

// Deliver marks a paid order delivered. Admin only, and only while the
// cached order is paid and undelivered; the returned snapshot is adopted
// and a consume-once re-fetch follows.
func (c *Controller) Deliver(ctx context.Context) error {
	if c.session == nil || !c.session.IsAdmin {
		return domain.ErrUnauthorized
	}
	ord := c.res.State().Data
	if ord.ID == "" {
		return errors.New("no order loaded")
	}
	if !ord.IsPaid {
		return domain.ErrOrderNotPaid
	}
	if ord.IsDelivered {
		return domain.ErrAlreadyDelivered
	}

	c.mu.Lock()
	c.loadingDeliver = true
	c.errDeliver = ""
	c.mu.Unlock()

	var updated domain.Order
	if err := c.api.Put(ctx, "/api/orders/"+ord.ID+"/deliver", struct{}{}, c.session.Token, &updated); err != nil {
		c.mu.Lock()
		c.loadingDeliver = false
		c.errDeliver = err.Error()
		c.mu.Unlock()
		c.notifier.Notify(err.Error(), notify.SeverityError)
		return err
	}

	c.res.Adopt(updated)
	c.mu.Lock()
	c.loadingDeliver = false
	c.successDeliver = true
	c.mu.Unlock()
	c.notifier.Notify("Order is delivered", notify.SeveritySuccess)

	return c.Refresh(ctx, ord.ID)
}

// Close discards any in-flight completion so a torn-down controller is
// never mutated by a late response.
func (c *Controller) Close() {
	c.res.Invalidate()
}
