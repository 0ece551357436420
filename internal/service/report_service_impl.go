package service

import (
	"context"
	"log/slog"

	"github.com/bagdasarian/token-topup/internal/domain"
	"github.com/bagdasarian/token-topup/internal/repository"
	"github.com/shopspring/decimal"
)

type reportService struct {
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
	log         *slog.Logger
}

// NewReportService создает новый экземпляр ReportService
func NewReportService(companyRepo repository.CompanyRepository, userRepo repository.UserRepository, log *slog.Logger) ReportService {
	if log == nil {
		log = slog.Default()
	}
	return &reportService{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		log:         log,
	}
}

func (s *reportService) BuildReports(ctx context.Context) ([]domain.CompanyReport, error) {
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.log.DebugContext(ctx, "companies loaded", slog.Int("count", len(companies)))

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	usersByCompany := GroupUsersByCompany(users)
	s.log.DebugContext(ctx, "users loaded",
		slog.Int("count", len(users)),
		slog.Int("companies_with_users", len(usersByCompany)),
	)

	reports := make([]domain.CompanyReport, 0, len(usersByCompany))
	for _, company := range companies {
		// компания без единого пользователя в отчет не попадает;
		// проверка идет до фильтра активности
		companyUsers, ok := usersByCompany[company.ID]
		if !ok {
			continue
		}

		reports = append(reports, BuildCompanyReport(company, ClassifyUsers(company, companyUsers)))
	}

	return reports, nil
}

// BuildCompanyReport считает пополнения для обеих групп и общую сумму по компании
func BuildCompanyReport(company domain.Company, classified Classification) domain.CompanyReport {
	report := domain.CompanyReport{
		Company: company,
		Total:   decimal.Zero,
	}

	report.Emailed, report.Total = buildEntries(company, classified.Emailed, report.Total)
	report.NotEmailed, report.Total = buildEntries(company, classified.NotEmailed, report.Total)

	return report
}

func buildEntries(company domain.Company, users []domain.User, total decimal.Decimal) ([]domain.UserEntry, decimal.Decimal) {
	entries := make([]domain.UserEntry, 0, len(users))
	for _, user := range users {
		topUp := CalculateTopUp(company, user)
		total = total.Add(topUp.Amount)
		entries = append(entries, domain.UserEntry{User: user, TopUp: topUp})
	}
	return entries, total
}
