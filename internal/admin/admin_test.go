package admin

import (
	"context"
	"errors"
	"testing"

	"storefront-core/internal/domain"
	"storefront-core/internal/notify"
)

type stubAPI struct {
	products  []domain.Product
	users     []domain.User
	orders    []domain.Order
	summary   domain.DashboardSummary
	getErr    error
	getCalls  int
	lastGet   string
	postOut   any
	postErr   error
	lastPost  string
	putErr    error
	lastPut   string
	deleteErr error
	lastDel   string
}

func (s *stubAPI) Get(_ context.Context, path, _ string, out any) error {
	s.getCalls++
	s.lastGet = path
	if s.getErr != nil {
		return s.getErr
	}
	switch v := out.(type) {
	case *[]domain.Product:
		*v = s.products
	case *[]domain.User:
		*v = s.users
	case *[]domain.Order:
		*v = s.orders
	case *domain.DashboardSummary:
		*v = s.summary
	case *domain.Product:
		if len(s.products) > 0 {
			*v = s.products[0]
		}
	case *domain.User:
		if len(s.users) > 0 {
			*v = s.users[0]
		}
	}
	return nil
}

func (s *stubAPI) Post(_ context.Context, path string, _ any, _ string, out any) error {
	s.lastPost = path
	if s.postErr != nil {
		return s.postErr
	}
	switch v := out.(type) {
	case *domain.Product:
		if p, ok := s.postOut.(domain.Product); ok {
			*v = p
		}
	case *uploadResponse:
		if u, ok := s.postOut.(uploadResponse); ok {
			*v = u
		}
	}
	return nil
}

func (s *stubAPI) Put(_ context.Context, path string, _ any, _ string, out any) error {
	s.lastPut = path
	if s.putErr != nil {
		return s.putErr
	}
	switch v := out.(type) {
	case *domain.Product:
		if len(s.products) > 0 {
			*v = s.products[0]
		}
	case *domain.User:
		if len(s.users) > 0 {
			*v = s.users[0]
		}
	}
	return nil
}

func (s *stubAPI) Delete(_ context.Context, path, _ string, _ any) error {
	s.lastDel = path
	return s.deleteErr
}

func admin() *domain.Session {
	return &domain.Session{ID: "a1", Token: "tok", IsAdmin: true}
}

func TestControllersRejectNonAdmin(t *testing.T) {
	api := &stubAPI{}
	rec := &notify.Recorder{}
	plain := &domain.Session{ID: "u1", Token: "tok"}

	checks := []error{
		NewOrders(api, plain).Refresh(context.Background()),
		NewProducts(api, nil, rec).Refresh(context.Background()),
		NewUsers(api, plain, rec).Refresh(context.Background()),
		NewDashboard(api, nil).Refresh(context.Background()),
		NewProductEditor(api, plain, rec).Refresh(context.Background(), "p1"),
		NewUserEditor(api, plain, rec).Refresh(context.Background(), "u1"),
	}
	for i, err := range checks {
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("check %d: expected unauthorized, got %v", i, err)
		}
	}
	if api.getCalls != 0 {
		t.Fatalf("requests issued before authorization: %d", api.getCalls)
	}
}

func TestOrdersRefresh(t *testing.T) {
	api := &stubAPI{orders: []domain.Order{{ID: "o1"}}}
	o := NewOrders(api, admin())
	if err := o.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if api.lastGet != "/api/admin/orders" {
		t.Fatalf("path = %s", api.lastGet)
	}
	if got := o.State(); len(got.Data) != 1 || got.Loading {
		t.Fatalf("unexpected state: %+v", got)
	}
}

func TestProductsDeleteThenResetRefetchesOnce(t *testing.T) {
	api := &stubAPI{products: []domain.Product{{ID: "p1"}, {ID: "p2"}}}
	rec := &notify.Recorder{}
	p := NewProducts(api, admin(), rec)

	if err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if api.getCalls != 1 {
		t.Fatalf("getCalls = %d", api.getCalls)
	}

	if err := p.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if api.lastDel != "/api/admin/products/p1" {
		t.Fatalf("delete path = %s", api.lastDel)
	}
	if api.getCalls != 2 {
		t.Fatalf("getCalls = %d, want exactly one refetch after delete", api.getCalls)
	}

	got := p.State()
	if got.SuccessDelete || got.LoadingDelete {
		t.Fatalf("delete flags not reset: %+v", got)
	}

	entries := rec.Entries()
	if len(entries) != 1 || entries[0].Severity != notify.SeveritySuccess {
		t.Fatalf("unexpected notifications: %+v", entries)
	}
}

func TestProductsDeleteFailure(t *testing.T) {
	api := &stubAPI{products: []domain.Product{{ID: "p1"}}, deleteErr: errors.New("in use")}
	rec := &notify.Recorder{}
	p := NewProducts(api, admin(), rec)
	if err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	if err := p.Delete(context.Background(), "p1"); err == nil {
		t.Fatal("expected error")
	}
	if api.getCalls != 1 {
		t.Fatal("refetch after failed delete")
	}
	got := p.State()
	if got.ErrDelete != "in use" || got.SuccessDelete {
		t.Fatalf("unexpected state: %+v", got)
	}
	entries := rec.Entries()
	if len(entries) != 1 || entries[0].Severity != notify.SeverityError {
		t.Fatalf("unexpected notifications: %+v", entries)
	}
}

func TestProductsCreate(t *testing.T) {
	api := &stubAPI{postOut: domain.Product{ID: "draft"}}
	rec := &notify.Recorder{}
	p := NewProducts(api, admin(), rec)

	created, err := p.Create(context.Background())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "draft" {
		t.Fatalf("created = %+v", created)
	}
	if api.lastPost != "/api/admin/products" {
		t.Fatalf("post path = %s", api.lastPost)
	}
	if got := p.State(); got.LoadingCreate || got.ErrCreate != "" {
		t.Fatalf("unexpected state: %+v", got)
	}
}

func TestProductEditorUpdateAdoptsServerCopy(t *testing.T) {
	api := &stubAPI{products: []domain.Product{{ID: "p1", Name: "Server Name"}}}
	rec := &notify.Recorder{}
	e := NewProductEditor(api, admin(), rec)

	if err := e.Update(context.Background(), domain.Product{ID: "p1", Name: "Local Name"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if api.lastPut != "/api/admin/products/p1" {
		t.Fatalf("put path = %s", api.lastPut)
	}
	if got := e.State(); got.Data.Name != "Server Name" {
		t.Fatalf("editor kept local copy: %+v", got.Data)
	}
}

func TestProductEditorUploadLifecycle(t *testing.T) {
	api := &stubAPI{postOut: uploadResponse{URL: "https://cdn/img.png"}}
	rec := &notify.Recorder{}
	e := NewProductEditor(api, admin(), rec)

	url, err := e.Upload(context.Background(), map[string]string{"file": "base64data"})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "https://cdn/img.png" {
		t.Fatalf("url = %s", url)
	}
	if got := e.State(); got.LoadingUpload || got.ErrUpload != "" {
		t.Fatalf("unexpected state: %+v", got)
	}

	api.postErr = errors.New("too large")
	if _, err := e.Upload(context.Background(), nil); err == nil {
		t.Fatal("expected error")
	}
	if got := e.State(); got.ErrUpload != "too large" {
		t.Fatalf("errUpload = %q", got.ErrUpload)
	}
}

func TestUsersDeleteThenReset(t *testing.T) {
	api := &stubAPI{users: []domain.User{{ID: "u1"}, {ID: "u2"}}}
	rec := &notify.Recorder{}
	u := NewUsers(api, admin(), rec)

	if err := u.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if err := u.Delete(context.Background(), "u2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if api.lastDel != "/api/admin/users/u2" {
		t.Fatalf("delete path = %s", api.lastDel)
	}
	if api.getCalls != 2 {
		t.Fatalf("getCalls = %d, want exactly one refetch", api.getCalls)
	}
	if got := u.State(); got.SuccessDelete {
		t.Fatal("successDelete not consumed")
	}
}

func TestDashboardRefresh(t *testing.T) {
	api := &stubAPI{summary: domain.DashboardSummary{OrdersCount: 7, OrdersPriceCents: 120000}}
	d := NewDashboard(api, admin())
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if api.lastGet != "/api/admin/summary" {
		t.Fatalf("path = %s", api.lastGet)
	}
	if got := d.State(); got.Data.OrdersCount != 7 {
		t.Fatalf("unexpected summary: %+v", got.Data)
	}
}

func TestDashboardFetchFailure(t *testing.T) {
	api := &stubAPI{getErr: errors.New("summary unavailable")}
	d := NewDashboard(api, admin())
	if err := d.Refresh(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if got := d.State(); got.Err != "summary unavailable" || got.Loading {
		t.Fatalf("unexpected state: %+v", got)
	}
}
