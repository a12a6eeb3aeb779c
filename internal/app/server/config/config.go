package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	// localSecret используется только при явно заданном APP_ENV=local без JWT_SECRET
	localSecret = "local-dev-secret"
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Logger Logger
	Auth   Auth
	Redis  Redis
}

type DB struct {
	DatabaseURI string `mapstructure:"database_uri"`
	Migrations  string `mapstructure:"migrations_path"`
}

type Server struct {
	RunAddress      string        `mapstructure:"run_address"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
}

type Logger struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	JWTSecret         string        `mapstructure:"jwt_secret"`
	InsecureSecret    bool          `mapstructure:"-"`
	TokenTTL          time.Duration `mapstructure:"token_ttl"`
	AllowRegistration bool          `mapstructure:"allow_registration"`
}

type Redis struct {
	URL       string        `mapstructure:"redis_url"`
	SchemaTTL time.Duration `mapstructure:"schema_cache_ttl"`
}

// Load читает .env (если есть), опциональный файл конфигурации и переменные окружения.
// Переменные окружения имеют приоритет над файлом.
func Load(cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	cfg := &Config{
		Env: v.GetString("app_env"),
		DB: DB{
			DatabaseURI: v.GetString("database_uri"),
			Migrations:  v.GetString("migrations_path"),
		},
		Server: Server{
			RunAddress:      v.GetString("run_address"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
			MaxBodyBytes:    v.GetInt64("max_body_bytes"),
		},
		Logger: Logger{LogLevel: v.GetString("log_level")},
		Auth: Auth{
			JWTSecret:         v.GetString("jwt_secret"),
			TokenTTL:          v.GetDuration("token_ttl"),
			AllowRegistration: v.GetBool("allow_registration"),
		},
		Redis: Redis{
			URL:       v.GetString("redis_url"),
			SchemaTTL: v.GetDuration("schema_cache_ttl"),
		},
	}

	if cfg.Auth.JWTSecret == "" && cfg.IsLocal() {
		cfg.Auth.JWTSecret = localSecret
		cfg.Auth.InsecureSecret = true
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", EnvProd)
	v.SetDefault("run_address", ":5000")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("max_body_bytes", 2<<20)
	v.SetDefault("migrations_path", "migrations")
	v.SetDefault("token_ttl", 7*24*time.Hour)
	v.SetDefault("allow_registration", false)
	v.SetDefault("schema_cache_ttl", 5*time.Minute)
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown app_env %q", c.Env)
	}
	if c.DB.DatabaseURI == "" {
		return errors.New("DATABASE_URI is required")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return errors.New("MAX_BODY_BYTES must be positive")
	}
	return nil
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}
