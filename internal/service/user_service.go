package service

import (
	"context"

	"moneyflow/internal/models"

	"go.uber.org/zap"
)

type UserStore interface {
	List(ctx context.Context) ([]*models.User, error)
}

type UserService struct {
	store  UserStore
	logger *zap.Logger
}

func NewUserService(store UserStore, logger *zap.Logger) *UserService {
	return &UserService{
		store:  store,
		logger: logger,
	}
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.store.List(ctx)
}
