package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
	DBMaxConns  int32  `env:"DB_MAX_CONNS" envDefault:"10"`
	DBMinConns  int32  `env:"DB_MIN_CONNS" envDefault:"1"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"true"`

	JWTSecret string        `env:"JWT_SECRET,required,notEmpty"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`
	// JWKSURL switches session verification to keys published by an external identity provider.
	JWKSURL string `env:"JWKS_URL"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	CustomerAccessRateLimit  int           `env:"CUSTOMER_ACCESS_RATE_LIMIT" envDefault:"30"`
	CustomerAccessRateWindow time.Duration `env:"CUSTOMER_ACCESS_RATE_WINDOW" envDefault:"1m"`

	MinioEndpoint  string        `env:"MINIO_ENDPOINT"`
	MinioAccessKey string        `env:"MINIO_ACCESS_KEY"`
	MinioSecretKey string        `env:"MINIO_SECRET_KEY"`
	MinioUseSSL    bool          `env:"MINIO_USE_SSL" envDefault:"false"`
	MinioRegion    string        `env:"MINIO_REGION" envDefault:"us-east-1"`
	QRBucket       string        `env:"QR_BUCKET" envDefault:"qr-codes"`
	QRURLTTL       time.Duration `env:"QR_URL_TTL" envDefault:"15m"`

	QRExpiryInterval time.Duration `env:"QR_EXPIRY_INTERVAL" envDefault:"1h"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.CustomerAccessRateLimit < 0 {
		return errors.New("CUSTOMER_ACCESS_RATE_LIMIT must not be negative")
	}
	if c.QRExpiryInterval <= 0 {
		return errors.New("QR_EXPIRY_INTERVAL must be positive")
	}
	if c.DBMinConns > c.DBMaxConns {
		return errors.New("DB_MIN_CONNS must not exceed DB_MAX_CONNS")
	}
	return nil
}

func (c *Config) RedisEnabled() bool { return c.RedisAddr != "" }

func (c *Config) StorageEnabled() bool { return c.MinioEndpoint != "" }
