package config

import (
	"fmt"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultCompaniesFile = "companies.json"
	DefaultUsersFile     = "users.json"
	DefaultOutputFile    = "output.txt"

	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	Source   string         `mapstructure:"source" validate:"oneof=file postgres"`
	Files    FilesConfig    `mapstructure:"files"`
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"db"`
}

type FilesConfig struct {
	Companies string `mapstructure:"companies" validate:"required"`
	Users     string `mapstructure:"users" validate:"required"`
	Output    string `mapstructure:"output" validate:"required"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	File  string `mapstructure:"file"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// Load читает .env (если есть) и переменные окружения поверх значений по умолчанию.
// Без окружения используются фиксированные имена файлов.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	bindEnv(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Source = strings.ToLower(cfg.Source)
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
	)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("source", SourceFile)
	v.SetDefault("files.companies", DefaultCompaniesFile)
	v.SetDefault("files.users", DefaultUsersFile)
	v.SetDefault("files.output", DefaultOutputFile)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "topup")
	v.SetDefault("db.password", "topup")
	v.SetDefault("db.name", "token_topup")
	v.SetDefault("db.sslmode", "disable")
}

func bindEnv(v *viper.Viper) {
	bindings := map[string]string{
		"source":          "SOURCE",
		"files.companies": "COMPANIES_FILE",
		"files.users":     "USERS_FILE",
		"files.output":    "OUTPUT_FILE",
		"log.level":       "LOG_LEVEL",
		"log.file":        "LOG_FILE",
		"db.host":         "DB_HOST",
		"db.port":         "DB_PORT",
		"db.user":         "DB_USER",
		"db.password":     "DB_PASSWORD",
		"db.name":         "DB_NAME",
		"db.sslmode":      "DB_SSLMODE",
	}
	for key, env := range bindings {
		_ = v.BindEnv(key, env)
	}
}
