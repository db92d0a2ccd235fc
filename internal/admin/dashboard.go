package admin

import (
	"context"

	"storefront-core/internal/domain"
	"storefront-core/internal/resource"
)

// Dashboard fetches the sales summary for the admin landing screen.
type Dashboard struct {
	api     client
	session *domain.Session
	res     *resource.Resource[domain.DashboardSummary]
}

func NewDashboard(api client, session *domain.Session) *Dashboard {
	return &Dashboard{api: api, session: session, res: resource.New[domain.DashboardSummary]()}
}

func (d *Dashboard) State() resource.State[domain.DashboardSummary] {
	return d.res.State()
}

func (d *Dashboard) Refresh(ctx context.Context) error {
	if err := requireAdmin(d.session); err != nil {
		return err
	}
	gen := d.res.Begin()
	var summary domain.DashboardSummary
	if err := d.api.Get(ctx, "/api/admin/summary", d.session.Token, &summary); err != nil {
		d.res.Fail(gen, err.Error())
		return err
	}
	d.res.Succeed(gen, summary)
	return nil
}

func (d *Dashboard) Close() {
	d.res.Invalidate()
}
