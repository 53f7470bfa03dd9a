package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Email  EmailConfig
	CORS   CORSConfig
	Share  ShareConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds object storage settings for element photos.
type S3Config struct {
	Region         string `mapstructure:"region"`
	Bucket         string `mapstructure:"bucket"`
	Endpoint       string `mapstructure:"endpoint"`
	AccessKey      string `mapstructure:"access_key"`
	SecretKey      string `mapstructure:"secret_key"`
	MaxImageSizeMB int64  `mapstructure:"max_image_size_mb"`
	PresignExpiry  int64  `mapstructure:"presign_expiry"`
}

// EmailConfig holds email delivery settings for access code invitations.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ShareConfig holds inventory access code settings.
type ShareConfig struct {
	CodeLength int           `mapstructure:"code_length"`
	CodeTTL    time.Duration `mapstructure:"code_ttl"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the INVENTARIO_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("INVENTARIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "inventario")
	v.SetDefault("db.password", "inventario_secret")
	v.SetDefault("db.name", "inventario_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "inventario")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "inventario-images")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_image_size_mb", 10)
	v.SetDefault("s3.presign_expiry", 3600)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@inventario.local")
	v.SetDefault("email.from_name", "Inventario")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Share defaults
	v.SetDefault("share.code_length", 8)
	v.SetDefault("share.code_ttl", "48h")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "INVENTARIO_SERVER_PORT",
		"server.read_timeout":  "INVENTARIO_SERVER_READ_TIMEOUT",
		"server.write_timeout": "INVENTARIO_SERVER_WRITE_TIMEOUT",
		"server.environment":   "INVENTARIO_SERVER_ENVIRONMENT",
		"db.host":              "INVENTARIO_DB_HOST",
		"db.port":              "INVENTARIO_DB_PORT",
		"db.user":              "INVENTARIO_DB_USER",
		"db.password":          "INVENTARIO_DB_PASSWORD",
		"db.name":              "INVENTARIO_DB_NAME",
		"db.sslmode":           "INVENTARIO_DB_SSLMODE",
		"db.max_open":          "INVENTARIO_DB_MAX_OPEN",
		"db.max_idle":          "INVENTARIO_DB_MAX_IDLE",
		"jwt.secret":           "INVENTARIO_JWT_SECRET",
		"jwt.access_expiry":    "INVENTARIO_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":   "INVENTARIO_JWT_REFRESH_EXPIRY",
		"jwt.issuer":           "INVENTARIO_JWT_ISSUER",
		"s3.region":            "INVENTARIO_S3_REGION",
		"s3.bucket":            "INVENTARIO_S3_BUCKET",
		"s3.endpoint":          "INVENTARIO_S3_ENDPOINT",
		"s3.access_key":        "INVENTARIO_S3_ACCESS_KEY",
		"s3.secret_key":        "INVENTARIO_S3_SECRET_KEY",
		"s3.max_image_size_mb": "INVENTARIO_S3_MAX_IMAGE_SIZE_MB",
		"s3.presign_expiry":    "INVENTARIO_S3_PRESIGN_EXPIRY",
		"email.provider":       "INVENTARIO_EMAIL_PROVIDER",
		"email.region":         "INVENTARIO_EMAIL_REGION",
		"email.from_address":   "INVENTARIO_EMAIL_FROM_ADDRESS",
		"email.from_name":      "INVENTARIO_EMAIL_FROM_NAME",
		"cors.allowed_origins": "INVENTARIO_CORS_ALLOWED_ORIGINS",
		"share.code_length":    "INVENTARIO_SHARE_CODE_LENGTH",
		"share.code_ttl":       "INVENTARIO_SHARE_CODE_TTL",
		"log.level":            "INVENTARIO_LOG_LEVEL",
		"log.format":           "INVENTARIO_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if INVENTARIO_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("INVENTARIO_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:         v.GetString("s3.region"),
		Bucket:         v.GetString("s3.bucket"),
		Endpoint:       v.GetString("s3.endpoint"),
		AccessKey:      v.GetString("s3.access_key"),
		SecretKey:      v.GetString("s3.secret_key"),
		MaxImageSizeMB: v.GetInt64("s3.max_image_size_mb"),
		PresignExpiry:  v.GetInt64("s3.presign_expiry"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Share = ShareConfig{
		CodeLength: v.GetInt("share.code_length"),
		CodeTTL:    v.GetDuration("share.code_ttl"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	return cfg, nil
}
