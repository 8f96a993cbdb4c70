package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	AppEnv     string           `mapstructure:"app_env"`
	Port       string           `mapstructure:"port"`
	ListenAddr string           `mapstructure:"listen_addr"`
	GinMode    string           `mapstructure:"gin_mode"`
	LogLevel   string           `mapstructure:"log_level"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Pagination PaginationConfig `mapstructure:"pagination"`
	Contact    ContactConfig    `mapstructure:"contact"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Tracing    TracingConfig    `mapstructure:"tracing"`
}

// DatabaseConfig 描述存储驱动与连接参数。
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
	DSN    string `mapstructure:"dsn"`
}

// PaginationConfig 控制列表接口的分页默认值。
type PaginationConfig struct {
	DefaultPerPage int `mapstructure:"default_per_page"`
	MaxPerPage     int `mapstructure:"max_per_page"`
}

// ContactConfig toggles optional checks on contact submissions.
type ContactConfig struct {
	ValidateEmailFormat bool `mapstructure:"validate_email_format"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	Exporter     string  `mapstructure:"exporter"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	SampleRatio  float64 `mapstructure:"sample_ratio"`
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Load 依次读取 .env、config.yml 与环境变量，并为缺失项提供默认值。
func Load() (AppConfig, error) {
	// .env 不存在时忽略
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return AppConfig{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "development")
	v.SetDefault("port", "8080")
	v.SetDefault("listen_addr", "")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log_level", "info")
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", "portfolio.db")
	v.SetDefault("database.dsn", "")
	v.SetDefault("pagination.default_per_page", 10)
	v.SetDefault("pagination.max_per_page", 0)
	v.SetDefault("contact.validate_email_format", false)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.exporter", "stdout")
	v.SetDefault("tracing.otlp_endpoint", "localhost:4318")
	v.SetDefault("tracing.sample_ratio", 1.0)
}

func (c *AppConfig) normalize() {
	c.AppEnv = strings.TrimSpace(c.AppEnv)
	c.Port = strings.TrimSpace(c.Port)
	c.GinMode = strings.ToLower(strings.TrimSpace(c.GinMode))
	c.ListenAddr = strings.TrimSpace(c.ListenAddr)
	if c.ListenAddr == "" {
		c.ListenAddr = fmt.Sprintf(":%s", c.Port)
	}
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	c.Database.Path = strings.TrimSpace(c.Database.Path)
	c.Database.DSN = strings.TrimSpace(c.Database.DSN)
	c.Metrics.Path = strings.TrimSpace(c.Metrics.Path)
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

// Validate rejects configurations the server cannot start with.
func (c AppConfig) Validate() error {
	if c.Port == "" && c.ListenAddr == "" {
		return errors.New("port or listen_addr is required")
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unsupported gin_mode %q", c.GinMode)
	}

	switch c.Database.Driver {
	case DriverSQLite:
	case DriverPostgres:
		if c.Database.DSN == "" {
			return errors.New("database.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if c.Pagination.DefaultPerPage <= 0 {
		return errors.New("pagination.default_per_page must be positive")
	}
	if c.Pagination.MaxPerPage < 0 {
		return errors.New("pagination.max_per_page must not be negative")
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return errors.New("tracing.sample_ratio must be within [0, 1]")
	}

	return nil
}

// IsProduction reports whether the service runs with production defaults.
func (c AppConfig) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}
