package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Auth     AuthConfig     `mapstructure:"auth"`
	AWS      AWSConfig      `mapstructure:"aws"`
	ML       MLConfig       `mapstructure:"ml"`
	Worker   WorkerConfig   `mapstructure:"worker"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.Postgres.User == "" || c.Postgres.Password == "" || c.Postgres.DBName == "" {
		return errors.New("postgres credentials are required")
	}
	if c.Postgres.Host == "" {
		return errors.New("postgres.host is required")
	}
	if c.Auth.SecretKey == "" {
		return errors.New("auth.secret_key is required")
	}
	if c.AWS.Bucket == "" {
		return errors.New("aws.bucket is required")
	}
	if c.ML.BaseURL == "" {
		return errors.New("ml.base_url is required")
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	FrontendURL     string        `mapstructure:"frontend_url"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// AuthConfig contains token signing parameters.
type AuthConfig struct {
	SecretKey string        `mapstructure:"secret_key"`
	Algorithm string        `mapstructure:"algorithm"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// AWSConfig describes the S3 resume store.
type AWSConfig struct {
	AccessKey      string        `mapstructure:"access_key"`
	SecretKey      string        `mapstructure:"secret_key"`
	Region         string        `mapstructure:"region"`
	Bucket         string        `mapstructure:"bucket"`
	UploadURLTTL   time.Duration `mapstructure:"upload_url_ttl"`
	DownloadURLTTL time.Duration `mapstructure:"download_url_ttl"`
	MaxAttempts    int           `mapstructure:"max_attempts"`
}

// MLConfig describes the external analysis service.
type MLConfig struct {
	BaseURL       string        `mapstructure:"base_url"`
	UploadTimeout time.Duration `mapstructure:"upload_timeout"`
	DriveTimeout  time.Duration `mapstructure:"drive_timeout"`
	RetryCount    int           `mapstructure:"retry_count"`
}

// WorkerConfig sizes the background analysis pool.
type WorkerConfig struct {
	Size      int `mapstructure:"size"`
	QueueSize int `mapstructure:"queue_size"`
}

// PostgresConfig describes database connection parameters.
type PostgresConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	DBName         string        `mapstructure:"db_name"`
	SSLMode        string        `mapstructure:"ssl_mode"`
	MigrationsDir  string        `mapstructure:"migrations_dir"`
	MigrateTimeout time.Duration `mapstructure:"migrate_timeout"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout"`
	MaxConns       int32         `mapstructure:"max_conns"`
	MinConns       int32         `mapstructure:"min_conns"`
}

// DSN returns a Postgres connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}
