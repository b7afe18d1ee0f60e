package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	ContentDir   string
	GeneratedDir string

	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSSLMode string

	JWTSecret         string
	AdminPasswordHash string
	AccessTokenTTL    string

	Log      string
	LogLevel string
	Env      string // dev|prod
}

// LoadConfig loads .env, reads environment variables and applies defaults.
// It never logs, to avoid a dependency on the logger package.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	cfg := &Config{
		Port: def(os.Getenv("PORT"), "8080"),

		ContentDir:   def(os.Getenv("CONTENT_DIR"), "content"),
		GeneratedDir: def(os.Getenv("GENERATED_DIR"), ".generated-content"),

		DbHost:    os.Getenv("DB_HOST"),
		DbPort:    def(os.Getenv("DB_PORT"), "5432"),
		DbUser:    os.Getenv("DB_USER"),
		DbPass:    os.Getenv("DB_PASSWORD"),
		DbName:    os.Getenv("DB_NAME"),
		DbSSLMode: def(os.Getenv("DB_SSLMODE"), "disable"),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AccessTokenTTL:    def(os.Getenv("ACCESS_TOKEN_EXPIRY"), "1h"),

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),
	}

	return cfg, nil
}

// Validate returns warnings and a fatal error (when something critical is
// missing). The server can run without a database; views and
// subscriptions then degrade gracefully.
func (c *Config) Validate() (warnings []string, err error) {
	if c.GeneratedDir == "" {
		return nil, fmt.Errorf("GENERATED_DIR is empty")
	}

	if c.DbHost == "" || c.DbUser == "" || c.DbName == "" {
		warnings = append(warnings, "incomplete DB config (DB_HOST/DB_USER/DB_NAME), views and subscriptions disabled")
	}

	if strings.TrimSpace(c.JWTSecret) == "" {
		warnings = append(warnings, "JWT_SECRET is empty, admin routes will reject all tokens")
	}
	if strings.TrimSpace(c.AdminPasswordHash) == "" {
		warnings = append(warnings, "ADMIN_PASSWORD_HASH is not set, admin login disabled")
	}

	if c.Port == "" {
		warnings = append(warnings, "PORT is empty, using default 8080")
	}

	return warnings, nil
}

// GetDSN is the full DSN (with password).
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe is the DSN without the password (for logs).
func (c *Config) GetDSNSafe() string {
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}
