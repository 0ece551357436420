package service

import (
	"context"

	"github.com/bagdasarian/token-topup/internal/domain"
)

type ReportService interface {
	// BuildReports загружает компании и пользователей и считает пополнения по каждой компании
	BuildReports(ctx context.Context) ([]domain.CompanyReport, error)
}
