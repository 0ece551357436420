package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/token-topup/internal/domain"
)

type companyRepository struct {
	executor DBExecutor
}

func NewCompanyRepository(db *sql.DB) *companyRepository {
	return &companyRepository{executor: db}
}

func NewCompanyRepositoryWithTx(tx *sql.Tx) *companyRepository {
	return &companyRepository{executor: tx}
}

func (r *companyRepository) List(ctx context.Context) ([]domain.Company, error) {
	companies, err := r.list(ctx)
	if err != nil {
		return nil, domain.NewLoadError(domain.OpReadCompanies, err)
	}
	return companies, nil
}

func (r *companyRepository) list(ctx context.Context) ([]domain.Company, error) {
	query, args, err := psql.
		Select("id", "name", "top_up", "email_status").
		From("companies").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := make([]domain.Company, 0)
	for rows.Next() {
		var company domain.Company
		err := rows.Scan(&company.ID, &company.Name, &company.TopUp, &company.EmailStatus)
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}

	return companies, rows.Err()
}
