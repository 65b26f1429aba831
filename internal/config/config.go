// Package config reads the configuration of the backend from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
)

type Config struct {
	// HTTP Server
	APIURL           *url.URL
	Port             string
	GinMode          string
	CORSAllowOrigins []string
	EnablePprof      bool

	// Database
	DataDir string
	DBFile  string

	// Owner of all resources
	UserID uuid.UUID

	// Formatting
	Locale language.Tag

	// Logging
	LogFormat string
	LogLevel  zerolog.Level

	// AMQP, publishing is disabled when AMQPURL is empty
	AMQPURL      string
	AMQPExchange string

	errors []string
}

// DefaultUserID is the owner when USER_ID is not set.
var DefaultUserID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// LoadDotEnv reads environment variables from the files, ".env" if none are
// given. Variables that are already set take precedence and a missing file
// is not an error.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		_ = godotenv.Load(file)
	}
}

// Load reads the configuration from the environment.
//
// Values that cannot be parsed are reported by Validate.
func Load() *Config {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		GinMode:          getEnv("GIN_MODE", "release"),
		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:      getEnv("ENABLE_PPROF", "false") == "true",

		DataDir: getEnv("DATA_DIR", "data"),
		DBFile:  getEnv("DB_FILE", "alocar.db"),

		AMQPURL:      os.Getenv("AMQP_URL"),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "alocar.changes"),
	}

	cfg.APIURL = cfg.parseURL("API_URL", "http://localhost:8080")
	cfg.UserID = cfg.parseUUID("USER_ID", DefaultUserID)
	cfg.Locale = cfg.parseLocale("LOCALE", language.BrazilianPortuguese)

	// Log format defaults to human readable for development and JSON for release
	defaultFormat := "json"
	if cfg.GinMode == "debug" {
		defaultFormat = "human"
	}
	cfg.LogFormat = getEnv("LOG_FORMAT", defaultFormat)

	defaultLevel := "info"
	if cfg.GinMode == "debug" {
		defaultLevel = "debug"
	}
	cfg.LogLevel = cfg.parseLevel("LOG_LEVEL", defaultLevel)

	return cfg
}

// Validate validates the configuration and returns an error listing all problems.
func (c *Config) Validate() error {
	errors := append([]string{}, c.errors...)

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	validModes := []string{"debug", "release", "test"}
	if !slices.Contains(validModes, c.GinMode) {
		errors = append(errors, fmt.Sprintf("invalid gin mode '%s': must be one of %v", c.GinMode, validModes))
	}

	validFormats := []string{"human", "json"}
	if !slices.Contains(validFormats, c.LogFormat) {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of %v", c.LogFormat, validFormats))
	}

	if c.APIURL != nil && c.APIURL.Scheme != "http" && c.APIURL.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid API URL scheme '%s': must be 'http' or 'https'", c.APIURL.Scheme))
	}

	if c.DBFile == "" {
		errors = append(errors, "database file name cannot be empty")
	}

	if c.UserID == uuid.Nil {
		errors = append(errors, "user ID cannot be the nil UUID")
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}

		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// DSN returns the data source name of the database file.
func (c *Config) DSN() string {
	if filepath.IsAbs(c.DBFile) {
		return c.DBFile
	}
	return filepath.Join(c.DataDir, c.DBFile)
}

func (c *Config) parseURL(key, defaultValue string) *url.URL {
	value := getEnv(key, defaultValue)

	u, err := url.Parse(strings.TrimSuffix(value, "/"))
	if err != nil {
		c.errors = append(c.errors, fmt.Sprintf("invalid %s '%s': %v", key, value, err))
		return nil
	}
	return u
}

func (c *Config) parseUUID(key string, defaultValue uuid.UUID) uuid.UUID {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultValue
	}

	id, err := uuid.Parse(value)
	if err != nil {
		c.errors = append(c.errors, fmt.Sprintf("invalid %s '%s': must be a UUID", key, value))
		return defaultValue
	}
	return id
}

func (c *Config) parseLocale(key string, defaultValue language.Tag) language.Tag {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return defaultValue
	}

	tag, err := language.Parse(value)
	if err != nil {
		c.errors = append(c.errors, fmt.Sprintf("invalid %s '%s': %v", key, value, err))
		return defaultValue
	}
	return tag
}

func (c *Config) parseLevel(key, defaultValue string) zerolog.Level {
	value := getEnv(key, defaultValue)

	level, err := zerolog.ParseLevel(value)
	if err != nil {
		c.errors = append(c.errors, fmt.Sprintf("invalid %s '%s': %v", key, value, err))
		return zerolog.InfoLevel
	}
	return level
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
