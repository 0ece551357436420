package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/bagdasarian/token-topup/internal/config"
	"github.com/bagdasarian/token-topup/internal/domain"
	"github.com/bagdasarian/token-topup/internal/report"
	"github.com/bagdasarian/token-topup/internal/service"
)

// Run создает файл отчета, загружает данные и пишет отчет.
// Файл создается до загрузки и закрывается при любом исходе.
func Run(ctx context.Context, cfg *config.Config, log *slog.Logger) (err error) {
	out, err := os.Create(cfg.Files.Output)
	if err != nil {
		return domain.NewWriteError(err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = domain.NewWriteError(cerr)
		}
	}()

	src, err := OpenSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			log.WarnContext(ctx, "failed to close source", slog.String("error", cerr.Error()))
		}
	}()

	svc := service.NewReportService(src.Companies, src.Users, log)
	return Generate(ctx, svc, report.NewWriter(out), log)
}

// Generate строит отчеты и выводит их через writer
func Generate(ctx context.Context, svc service.ReportService, writer *report.Writer, log *slog.Logger) error {
	reports, err := svc.BuildReports(ctx)
	if err != nil {
		return err
	}

	if err := writer.Write(reports); err != nil {
		return err
	}

	log.InfoContext(ctx, "report written", slog.Int("companies", len(reports)))
	return nil
}
