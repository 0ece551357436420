package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/bagdasarian/token-topup/internal/config"
	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New создает логгер в stderr и, если задан LOG_FILE, дополнительно в файл с ротацией.
// Каждая запись содержит run_id текущего запуска.
func New(cfg config.LogConfig) (*slog.Logger, io.Closer) {
	var out io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}

	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		}
		out = io.MultiWriter(os.Stderr, file)
		closer = file
	}

	return NewWithWriter(out, cfg.Level), closer
}

// NewWithWriter создает логгер с произвольным приемником
func NewWithWriter(w io.Writer, level string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(handler).With(slog.String("run_id", uuid.NewString()))
}

// ParseLevel переводит строковый уровень в slog.Level, по умолчанию info
func ParseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
