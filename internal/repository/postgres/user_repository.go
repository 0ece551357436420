package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/token-topup/internal/domain"
)

type userRepository struct {
	executor DBExecutor
}

func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{executor: db}
}

func NewUserRepositoryWithTx(tx *sql.Tx) *userRepository {
	return &userRepository{executor: tx}
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	users, err := r.list(ctx)
	if err != nil {
		return nil, domain.NewLoadError(domain.OpReadUsers, err)
	}
	return users, nil
}

func (r *userRepository) list(ctx context.Context) ([]domain.User, error) {
	query, args, err := psql.
		Select(
			"id", "first_name", "last_name", "email", "company_id",
			"email_status", "active_status", "tokens",
		).
		From("users").
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

	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		var companyID sql.NullInt64
		err := rows.Scan(
			&user.ID,
			&user.FirstName,
			&user.LastName,
			&user.Email,
			&companyID,
			&user.EmailStatus,
			&user.ActiveStatus,
			&user.Tokens,
		)
		if err != nil {
			return nil, err
		}

		if companyID.Valid {
			id := int(companyID.Int64)
			user.CompanyID = &id
		}

		users = append(users, user)
	}

	return users, rows.Err()
}
