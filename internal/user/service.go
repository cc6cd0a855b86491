package user

import (
	"context"
	"errors"
	"strings"

	"storefront-be/internal/logger"
	"storefront-be/internal/metrics"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, name, email, password string) (string, Session, error)
	Login(ctx context.Context, email, password string) (string, Session, error)
}

type service struct {
	repo    Repository
	metrics *metrics.Registry
}

func NewService(repo Repository, reg *metrics.Registry) Service {
	return &service{repo: repo, metrics: reg}
}

func (s *service) Register(ctx context.Context, name, email, password string) (string, Session, error) {
	log := logger.FromCtx(ctx)

	if strings.TrimSpace(name) == "" {
		return "", Session{}, ErrNameRequired
	}
	if strings.TrimSpace(email) == "" {
		return "", Session{}, ErrEmailRequired
	}
	if len(password) < 6 {
		return "", Session{}, ErrPasswordTooShort
	}

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", Session{}, err
	}

	u, err := s.repo.Create(ctx, name, email, hashed, RoleCustomer)
	if err != nil {
		if !errors.Is(err, ErrEmailExists) {
			log.Error("failed to create user", zap.String("email", email), zap.Error(err))
		}
		return "", Session{}, err
	}

	token, err := GenerateJWT(u)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("user_id", u.ID), zap.Error(err))
		return "", Session{}, err
	}

	log.Info("register completed",
		zap.String("user_id", u.ID),
		zap.String("email", email),
	)

	return token, u.Session(), nil
}

// Login succeeds iff the credentials match a registered account. Unknown
// email and wrong password return the same error.
func (s *service) Login(ctx context.Context, email, password string) (string, Session, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", Session{}, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		return "", Session{}, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u)
	if err != nil {
		return "", Session{}, err
	}

	s.metrics.LoginsTotal.Inc()

	return token, u.Session(), nil
}
