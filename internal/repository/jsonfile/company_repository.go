package jsonfile

import (
	"context"

	"github.com/bagdasarian/token-topup/internal/domain"
)

type companyRepository struct {
	path string
}

func NewCompanyRepository(path string) *companyRepository {
	return &companyRepository{path: path}
}

func (r *companyRepository) List(ctx context.Context) ([]domain.Company, error) {
	companies, err := readArray[domain.Company](r.path)
	if err != nil {
		return nil, domain.NewLoadError(domain.OpReadCompanies, err)
	}
	return companies, nil
}
