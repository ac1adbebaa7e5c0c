package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// App modes. In single mode the site serves one barber identified by
// SingleBarberSlug; in marketplace mode barbers are listed publicly.
const (
	ModeSingle      = "single"
	ModeMarketplace = "marketplace"
)

var (
	// ErrInvalidMode возвращается при неизвестном режиме приложения
	ErrInvalidMode = errors.New("config: app.mode must be \"single\" or \"marketplace\"")
)

// Config корневая конфигурация сервиса. Загружается один раз при старте
// и передаётся компонентам явно; после загрузки не изменяется.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Auth     AuthConfig     `toml:"auth"`
	Storage  StorageConfig  `toml:"storage"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Logs     LogsConfig     `toml:"logs"`
	App      AppConfig      `toml:"app"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// DatabaseConfig настройки подключения к Postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN returns the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// AuthConfig настройки проверки токенов внешнего auth-провайдера
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	Issuer    string `toml:"issuer"`
}

// StorageConfig настройки blob-хранилища для изображений галереи
type StorageConfig struct {
	Bucket        string `toml:"bucket"`
	Region        string `toml:"region"`
	Endpoint      string `toml:"endpoint"`        // опционально, для S3-совместимых хранилищ
	PublicBaseURL string `toml:"public_base_url"` // база публичных URL загруженных файлов
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// AppConfig режим работы приложения
type AppConfig struct {
	Mode             string `toml:"mode"`               // single | marketplace
	SingleBarberSlug string `toml:"single_barber_slug"` // используется в режиме single
	Demo             bool   `toml:"demo"`               // фикстурное хранилище вместо БД
}

// IsSingleMode returns true when the service runs a single-shop site.
func (a AppConfig) IsSingleMode() bool {
	return a.Mode == ModeSingle
}

// IsMarketplaceMode returns true when the service runs a multi-shop marketplace.
func (a AppConfig) IsMarketplaceMode() bool {
	return a.Mode == ModeMarketplace
}

// Load reads the TOML config file, applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "booking-service",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		App: AppConfig{
			Mode:             ModeSingle,
			SingleBarberSlug: "luccifadez",
		},
	}
}

// applyEnv накладывает переменные окружения поверх значений из файла.
// Окружение имеет приоритет: так попадают секреты из деплоя.
func (c *Config) applyEnv() {
	setString(&c.App.Mode, "APP_MODE")
	setString(&c.App.SingleBarberSlug, "APP_SINGLE_BARBER_SLUG")
	setBool(&c.App.Demo, "APP_DEMO")

	setString(&c.Database.Host, "DB_HOST")
	setInt(&c.Database.Port, "DB_PORT")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.DBName, "DB_NAME")
	setString(&c.Database.SSLMode, "DB_SSLMODE")

	setString(&c.Auth.JWTSecret, "AUTH_JWT_SECRET")
	setString(&c.Auth.Issuer, "AUTH_ISSUER")

	setString(&c.Storage.Bucket, "STORAGE_BUCKET")
	setString(&c.Storage.Region, "STORAGE_REGION")
	setString(&c.Storage.Endpoint, "STORAGE_ENDPOINT")
	setString(&c.Storage.PublicBaseURL, "STORAGE_PUBLIC_BASE_URL")
}

func (c *Config) validate() error {
	if c.App.Mode != ModeSingle && c.App.Mode != ModeMarketplace {
		return fmt.Errorf("%w: got %q", ErrInvalidMode, c.App.Mode)
	}
	if c.App.IsSingleMode() && c.App.SingleBarberSlug == "" {
		return errors.New("config: app.single_barber_slug is required in single mode")
	}
	if !c.App.Demo && c.Database.DBName == "" {
		return errors.New("config: database.dbname is required outside demo mode")
	}
	if !c.App.Demo && c.Auth.JWTSecret == "" {
		return errors.New("config: auth.jwt_secret is required outside demo mode")
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
