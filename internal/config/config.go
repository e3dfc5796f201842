package config // package config loads application configuration from environment variables

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DatabaseConfig holds the MySQL connection settings.
type DatabaseConfig struct {
	User        string
	Pass        string // may be empty
	Host        string
	Port        string
	Name        string
	AutoMigrate bool // apply pending migrations when the server starts
}

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable.
type Config struct {
	Env           string // application environment (e.g. "dev", "prod")
	Port          string // HTTP port to listen on
	Database      DatabaseConfig
	SessionSecret string // signs the session cookie
	LogLevel      string
}

// IsProd reports whether the application runs in production mode.
func (c Config) IsProd() bool { return c.Env == "prod" || c.Env == "production" }

// LoadDotEnv reads variables from the given files (default ".env") into the
// process environment. Variables already set are not overridden and missing
// files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:           must("APP_ENV"),
		Port:          must("APP_PORT"),
		Database:      LoadDatabaseConfig(),
		SessionSecret: must("SESSION_SECRET"),
		LogLevel:      envStr("LOG_LEVEL", "info"),
	}
}

// LoadDatabaseConfig reads the DB_* variables. The migrate command needs
// only this part of the configuration.
func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		User:        must("DB_USER"),
		Pass:        os.Getenv("DB_PASS"),
		Host:        must("DB_HOST"),
		Port:        strconv.Itoa(mustIntOr("DB_PORT", 3306)),
		Name:        must("DB_NAME"),
		AutoMigrate: envBool("DB_AUTO_MIGRATE", false),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustIntOr returns def when key is unset and exits when it is set but not
// an integer.
func mustIntOr(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
