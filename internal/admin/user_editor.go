package admin

import (
	"context"

	"storefront-core/internal/domain"
	"storefront-core/internal/notify"
	"storefront-core/internal/resource"
)

// UserEditor drives the single-user admin screen.
type UserEditor struct {
	api      client
	session  *domain.Session
	notifier notify.Notifier
	res      *resource.Resource[domain.User]
}

func NewUserEditor(api client, session *domain.Session, notifier notify.Notifier) *UserEditor {
	return &UserEditor{api: api, session: session, notifier: notifier, res: resource.New[domain.User]()}
}

func (e *UserEditor) State() resource.State[domain.User] {
	return e.res.State()
}

func (e *UserEditor) Refresh(ctx context.Context, id string) error {
	if err := requireAdmin(e.session); err != nil {
		return err
	}
	gen := e.res.Begin()
	var user domain.User
	if err := e.api.Get(ctx, "/api/admin/users/"+id, e.session.Token, &user); err != nil {
		e.res.Fail(gen, err.Error())
		return err
	}
	e.res.Succeed(gen, user)
	return nil
}

func (e *UserEditor) Update(ctx context.Context, user domain.User) error {
	if err := requireAdmin(e.session); err != nil {
		return err
	}
	e.res.UpdateRequested()
	var updated domain.User
	if err := e.api.Put(ctx, "/api/admin/users/"+user.ID, user, e.session.Token, &updated); err != nil {
		e.res.UpdateFailed(err.Error())
		e.notifier.Notify(err.Error(), notify.SeverityError)
		return err
	}
	e.res.UpdateSucceeded()
	e.res.Adopt(updated)
	e.notifier.Notify("User updated successfully", notify.SeveritySuccess)
	return nil
}

func (e *UserEditor) Close() {
	e.res.Invalidate()
}
