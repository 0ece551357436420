package jsonfile

import (
	"context"

	"github.com/bagdasarian/token-topup/internal/domain"
)

type userRepository struct {
	path string
}

func NewUserRepository(path string) *userRepository {
	return &userRepository{path: path}
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	users, err := readArray[domain.User](r.path)
	if err != nil {
		return nil, domain.NewLoadError(domain.OpReadUsers, err)
	}
	return users, nil
}
