package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Storage
	Database DatabaseConfig

	// Daily Three specifics
	Auth  AuthConfig
	SMTP  SMTPConfig
	Reset ResetConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type AuthConfig struct {
	JWTSecret          string
	TokenTTL           time.Duration
	CodeTTL            time.Duration
	MaxAttempts        int
	ResendWindow       time.Duration
	MaxResends         int
	SendCodeRatePerMin int
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	// DryRun logs codes instead of mailing them.
	DryRun bool
}

// ResetConfig drives the daily reset of every board.
type ResetConfig struct {
	DefaultTimezone string
	TickInterval    time.Duration
	StateDir        string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/daily-three/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/daily-three/")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(v.GetString("cors.allowed_origins"))

	// Storage
	cfg.Database.Driver = v.GetString("database.driver")
	cfg.Database.DSN = v.GetString("database.dsn")
	cfg.Database.MaxOpenConns = v.GetInt("database.max_open_conns")
	cfg.Database.MaxIdleConns = v.GetInt("database.max_idle_conns")
	cfg.Database.ConnMaxLifetime = v.GetDuration("database.conn_max_lifetime")

	// Auth
	cfg.Auth.JWTSecret = v.GetString("auth.jwt_secret")
	cfg.Auth.TokenTTL = v.GetDuration("auth.token_ttl")
	cfg.Auth.CodeTTL = v.GetDuration("auth.code_ttl")
	cfg.Auth.MaxAttempts = v.GetInt("auth.max_attempts")
	cfg.Auth.ResendWindow = v.GetDuration("auth.resend_window")
	cfg.Auth.MaxResends = v.GetInt("auth.max_resends")
	cfg.Auth.SendCodeRatePerMin = v.GetInt("auth.send_code_rate_per_min")

	cfg.SMTP.Host = v.GetString("smtp.host")
	cfg.SMTP.Port = v.GetInt("smtp.port")
	cfg.SMTP.User = v.GetString("smtp.user")
	cfg.SMTP.Password = v.GetString("smtp.password")
	cfg.SMTP.From = v.GetString("smtp.from")
	cfg.SMTP.DryRun = v.GetBool("smtp.dry_run")

	// Daily reset
	cfg.Reset.DefaultTimezone = v.GetString("reset.default_timezone")
	cfg.Reset.TickInterval = v.GetDuration("reset.tick_interval")
	cfg.Reset.StateDir = v.GetString("reset.state_dir")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Database.DSN == "" {
		return errors.New("database.dsn is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required")
	}
	if !cfg.SMTP.DryRun && (cfg.SMTP.Host == "" || cfg.SMTP.From == "") {
		return errors.New("smtp.host and smtp.from are required unless smtp.dry_run is set")
	}
	return nil
}

// splitList reads a comma separated value, since env vars cannot carry YAML lists.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("cors.allowed_origins", "*")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")

	v.SetDefault("auth.token_ttl", "720h")
	v.SetDefault("auth.code_ttl", "10m")
	v.SetDefault("auth.max_attempts", 5)
	v.SetDefault("auth.resend_window", "10m")
	v.SetDefault("auth.max_resends", 3)
	v.SetDefault("auth.send_code_rate_per_min", 6)

	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.dry_run", true)

	v.SetDefault("reset.default_timezone", "UTC")
	v.SetDefault("reset.tick_interval", "1m")
	v.SetDefault("reset.state_dir", "./data/device-state")
}
