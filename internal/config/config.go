package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN string `env:"DATABASE_URI"`
	SQLitePath  string `env:"SQLITE_PATH"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL      string `env:"-"`
	LocalCachePath string `env:"LOCAL_CACHE_PATH"`
	PersistTimeout int    `env:"PERSIST_TIMEOUT_SECONDS"`
	AssumeYes      bool   `env:"-"` // skip confirmation prompts (flag only)
	Version        bool   `env:"-"` // show client version and exit (flag only)

	// Notification settings
	NotifyURL             string `env:"NOTIFY_URL"`
	EmailEnabled          bool   `env:"EMAIL_ENABLED"`
	SMTPHost              string `env:"SMTP_HOST"`
	SMTPPort              int    `env:"SMTP_PORT"`
	SMTPUser              string `env:"SMTP_USER"`
	SMTPPassword          string `env:"SMTP_PASSWORD"`
	SMTPFrom              string `env:"SMTP_FROM"`
	ReminderIntervalHours int    `env:"REMINDER_INTERVAL_HOURS"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к Postgres (пусто — SQLite)")
	flag.StringVar(&cfg.SQLitePath, "sqlite", cfg.SQLitePath, "путь к файлу SQLite, если Postgres не задан")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL of the LabStore server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.LocalCachePath, "cache", cfg.LocalCachePath, "path to local cache file (fallback persistence)")
	flag.IntVar(&cfg.PersistTimeout, "persist-timeout", cfg.PersistTimeout, "timeout in seconds for persistence calls")
	flag.BoolVar(&cfg.AssumeYes, "yes", cfg.AssumeYes, "assume yes for destructive confirmations")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")
	// Notification flags
	flag.StringVar(&cfg.NotifyURL, "notify-url", cfg.NotifyURL, "base URL of the notification endpoint")
	flag.BoolVar(&cfg.EmailEnabled, "email", cfg.EmailEnabled, "enable outgoing SMTP email")

	flag.Parse()

	// Defaults
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8080"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}
	if cfg.NotifyURL == "" {
		cfg.NotifyURL = cfg.ServerURL
	}

	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "inventory.db"
	}
	if cfg.PersistTimeout <= 0 {
		cfg.PersistTimeout = 5
	}
	if cfg.SMTPPort == 0 {
		cfg.SMTPPort = 587
	}
	if cfg.ReminderIntervalHours <= 0 {
		cfg.ReminderIntervalHours = 24
	}

	// Fill client defaults if empty
	if cfg.LocalCachePath == "" {
		home, _ := os.UserHomeDir()
		cfg.LocalCachePath = filepath.Join(home, ".labstore", "cache.json")
	}

	return cfg
}
