package repository

import (
	"context"

	"github.com/bagdasarian/token-topup/internal/domain"
)

type CompanyRepository interface {
	// List возвращает компании в порядке источника
	List(ctx context.Context) ([]domain.Company, error)
}
