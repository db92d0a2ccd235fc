// Package account covers login, registration and profile updates. The
// returned session is the caller's to dispatch into the global store.
package account

import (
	"context"
	"errors"
	"strings"

	"storefront-core/internal/domain"
)

type client interface {
	Post(ctx context.Context, path string, body any, token string, out any) error
	Put(ctx context.Context, path string, body any, token string, out any) error
}

type Service struct {
	api client
}

func New(api client) *Service {
	return &Service{api: api}
}

type credentials struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

func (s *Service) Login(ctx context.Context, email, password string) (domain.Session, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return domain.Session{}, errors.New("email and password required")
	}
	var session domain.Session
	err := s.api.Post(ctx, "/api/users/login", credentials{Email: email, Password: password}, "", &session)
	if err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

func (s *Service) Register(ctx context.Context, name, email, password string) (domain.Session, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Session{}, errors.New("name required")
	}
	if strings.TrimSpace(email) == "" || password == "" {
		return domain.Session{}, errors.New("email and password required")
	}
	var session domain.Session
	err := s.api.Post(ctx, "/api/users/register", credentials{Name: name, Email: email, Password: password}, "", &session)
	if err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

// UpdateProfile changes name, email and optionally the password, returning
// the refreshed session the caller must re-dispatch.
func (s *Service) UpdateProfile(ctx context.Context, session *domain.Session, name, email, password string) (domain.Session, error) {
	if session == nil {
		return domain.Session{}, domain.ErrUnauthorized
	}
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return domain.Session{}, errors.New("name and email required")
	}
	var updated domain.Session
	err := s.api.Put(ctx, "/api/users/profile", credentials{Name: name, Email: email, Password: password}, session.Token, &updated)
	if err != nil {
		return domain.Session{}, err
	}
	return updated, nil
}
