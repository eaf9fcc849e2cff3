package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Поддерживаемые backend'ы истории операций
const (
	HistoryBackendSQLite = "sqlite"
	HistoryBackendBolt   = "bolt"
)

// Config конфигурация сервера, читается из окружения
type Config struct {
	// Addr адрес HTTP сервера
	Addr string `env:"CALCAPI_ADDR,default=:8080"`

	// SQLitePath путь к файлу SQLite (учетные записи и история по умолчанию)
	SQLitePath string `env:"CALCAPI_SQLITE_PATH,default=calcapi.db"`

	// HistoryBackend хранилище истории операций: sqlite или bolt
	HistoryBackend string `env:"CALCAPI_HISTORY_BACKEND,default=sqlite"`

	// BoltPath путь к файлу BoltDB, используется при HistoryBackend=bolt
	BoltPath string `env:"CALCAPI_BOLT_PATH,default=history.db"`

	// LogLevel уровень логирования: debug, info, warn, error
	LogLevel string `env:"CALCAPI_LOG_LEVEL,default=info"`

	// ShutdownTimeout время на graceful shutdown
	ShutdownTimeout time.Duration `env:"CALCAPI_SHUTDOWN_TIMEOUT,default=10s"`
}

// Load читает конфигурацию из окружения
// Локальный .env подхватывается, если присутствует; существующие
// переменные окружения он не переопределяет
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := envdecode.StrictDecode(cfg); err != nil {
		return nil, fmt.Errorf("decode environment: %w", err)
	}

	if cfg.HistoryBackend != HistoryBackendSQLite && cfg.HistoryBackend != HistoryBackendBolt {
		return nil, fmt.Errorf("invalid CALCAPI_HISTORY_BACKEND %q: must be %q or %q",
			cfg.HistoryBackend, HistoryBackendSQLite, HistoryBackendBolt)
	}

	return cfg, nil
}
