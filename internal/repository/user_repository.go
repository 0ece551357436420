package repository

import (
	"context"

	"github.com/bagdasarian/token-topup/internal/domain"
)

type UserRepository interface {
	// List возвращает пользователей в порядке источника, включая неактивных и без компании
	List(ctx context.Context) ([]domain.User, error)
}
