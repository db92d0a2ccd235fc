package admin

import (
	"context"

	"storefront-core/internal/domain"
	"storefront-core/internal/notify"
	"storefront-core/internal/resource"
)

// Users is the admin user list with the delete lifecycle.
type Users struct {
	api      client
	session  *domain.Session
	notifier notify.Notifier
	res      *resource.Resource[[]domain.User]
}

func NewUsers(api client, session *domain.Session, notifier notify.Notifier) *Users {
	return &Users{api: api, session: session, notifier: notifier, res: resource.New[[]domain.User]()}
}

func (u *Users) State() resource.State[[]domain.User] {
	return u.res.State()
}

func (u *Users) Refresh(ctx context.Context) error {
	if err := requireAdmin(u.session); err != nil {
		return err
	}
	gen := u.res.Begin()
	var users []domain.User
	if err := u.api.Get(ctx, "/api/admin/users", u.session.Token, &users); err != nil {
		u.res.Fail(gen, err.Error())
		return err
	}
	u.res.Succeed(gen, users)
	return nil
}

func (u *Users) Delete(ctx context.Context, id string) error {
	if err := requireAdmin(u.session); err != nil {
		return err
	}
	u.res.DeleteRequested()
	if err := u.api.Delete(ctx, "/api/admin/users/"+id, u.session.Token, nil); err != nil {
		u.res.DeleteFailed(err.Error())
		u.notifier.Notify(err.Error(), notify.SeverityError)
		return err
	}
	u.res.DeleteSucceeded()
	u.notifier.Notify("User deleted successfully", notify.SeveritySuccess)
	return u.syncAfterDelete(ctx)
}

func (u *Users) syncAfterDelete(ctx context.Context) error {
	if !u.res.State().SuccessDelete {
		return nil
	}
	u.res.DeleteReset()
	return u.Refresh(ctx)
}

func (u *Users) Close() {
	u.res.Invalidate()
}
