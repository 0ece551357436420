package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bagdasarian/token-topup/internal/config"
	"github.com/bagdasarian/token-topup/internal/db"
	"github.com/bagdasarian/token-topup/internal/repository"
	"github.com/bagdasarian/token-topup/internal/repository/jsonfile"
	"github.com/bagdasarian/token-topup/internal/repository/postgres"
)

// Source - пара репозиториев, из которых строится отчет
type Source struct {
	Companies repository.CompanyRepository
	Users     repository.UserRepository
	close     func() error
}

func (s *Source) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// FileSource читает компании и пользователей из JSON-файлов
func FileSource(files config.FilesConfig) *Source {
	return &Source{
		Companies: jsonfile.NewCompanyRepository(files.Companies),
		Users:     jsonfile.NewUserRepository(files.Users),
	}
}

// PostgresSource читает обе таблицы в одной read-only транзакции, чтобы получить согласованный снимок
func PostgresSource(ctx context.Context, database *sql.DB) (*Source, error) {
	tx, err := database.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	return &Source{
		Companies: postgres.NewCompanyRepositoryWithTx(tx),
		Users:     postgres.NewUserRepositoryWithTx(tx),
		close:     tx.Rollback,
	}, nil
}

// OpenSource выбирает источник по конфигурации
func OpenSource(ctx context.Context, cfg *config.Config) (*Source, error) {
	if cfg.Source != config.SourcePostgres {
		return FileSource(cfg.Files), nil
	}

	database, err := db.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	src, err := PostgresSource(ctx, database)
	if err != nil {
		database.Close()
		return nil, err
	}

	rollback := src.close
	src.close = func() error {
		_ = rollback()
		return database.Close()
	}
	return src, nil
}
