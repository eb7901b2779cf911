// Package config reads the configuration of the ledger from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Storage kinds.
const (
	StorageMemory   = "memory"
	StorageDatabase = "database"
)

// Config is the complete configuration of the backend.
type Config struct {
	GinMode          string
	LogFormat        string
	APIURL           *url.URL
	Port             string
	CORSAllowOrigins []string
	EnablePprof      bool

	Storage     Storage
	Auth        Auth
	Idempotency Idempotency
	Gemini      Gemini
	Sheets      Sheets
}

// Storage configures the record store.
type Storage struct {
	Kind   string
	Driver models.Driver
	DSN    string
}

// Auth configures department login.
type Auth struct {
	// Passwords overrides the built in password of each listed department
	Passwords map[models.Department]string
	Require   bool
	JWTSecret []byte
	JWTTTL    time.Duration
}

// Idempotency configures the cache of create tokens.
type Idempotency struct {
	TTL  time.Duration
	Size int
}

// Gemini configures the commentary service. An empty APIKey disables it.
type Gemini struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Sheets configures the read-only spreadsheet import.
type Sheets struct {
	SpreadsheetID string
}

var (
	ErrAPIURLMissing = errors.New("environment variable API_URL must be set")
	ErrJWTSecret     = errors.New("JWT_SECRET must be set when REQUIRE_AUTH is true")
)

// Load loads a .env file if there is one and reads the configuration from the environment.
func Load() (Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("could not load .env file: %w", err)
	}

	return FromEnv()
}

// FromEnv reads the configuration from the environment only.
func FromEnv() (Config, error) {
	c := Config{
		GinMode:   lookup("GIN_MODE", "release"),
		LogFormat: os.Getenv("LOG_FORMAT"),
		Port:      lookup("PORT", "8080"),
		Storage: Storage{
			Kind:   lookup("STORAGE", StorageMemory),
			Driver: models.Driver(lookup("DB_DRIVER", string(models.DriverSQLite))),
			DSN:    lookup("DB_DSN", "data/ledger.db"),
		},
		Gemini: Gemini{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  lookup("GEMINI_MODEL", "gemini-1.5-flash-latest"),
		},
		Sheets: Sheets{
			SpreadsheetID: os.Getenv("SPREADSHEET_ID"),
		},
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		return Config{}, ErrAPIURLMissing
	}

	u, err := url.Parse(apiURL)
	if err != nil {
		return Config{}, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}
	c.APIURL = u

	if origins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS"); ok {
		c.CORSAllowOrigins = strings.Fields(origins)
	}

	c.EnablePprof, err = boolean("ENABLE_PPROF", false)
	if err != nil {
		return Config{}, err
	}

	switch c.Storage.Kind {
	case StorageMemory, StorageDatabase:
	default:
		return Config{}, fmt.Errorf("STORAGE must be '%s' or '%s', not '%s'", StorageMemory, StorageDatabase, c.Storage.Kind)
	}

	c.Auth.Passwords, err = ParsePasswords(os.Getenv("DEPARTMENT_PASSWORDS"))
	if err != nil {
		return Config{}, err
	}

	c.Auth.Require, err = boolean("REQUIRE_AUTH", false)
	if err != nil {
		return Config{}, err
	}

	c.Auth.JWTSecret = []byte(os.Getenv("JWT_SECRET"))
	if c.Auth.Require && len(c.Auth.JWTSecret) == 0 {
		return Config{}, ErrJWTSecret
	}

	if c.Auth.JWTTTL, err = duration("JWT_TTL", 12*time.Hour); err != nil {
		return Config{}, err
	}

	if c.Idempotency.TTL, err = duration("IDEMPOTENCY_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}

	if c.Idempotency.Size, err = integer("IDEMPOTENCY_SIZE", 10000); err != nil {
		return Config{}, err
	}

	if c.Gemini.Timeout, err = duration("GEMINI_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}

	log.Debug().
		Str("storage", c.Storage.Kind).
		Str("driver", string(c.Storage.Driver)).
		Bool("requireAuth", c.Auth.Require).
		Bool("commentary", c.Gemini.APIKey != "").
		Bool("sheets", c.Sheets.SpreadsheetID != "").
		Msg("Config")

	return c, nil
}

// ParsePasswords parses "Department=secret;Other Department=secret".
func ParsePasswords(s string) (map[models.Department]string, error) {
	passwords := make(map[models.Department]string)
	for _, entry := range strings.Split(s, ";") {
		if strings.TrimSpace(entry) == "" {
			continue
		}

		name, secret, ok := strings.Cut(entry, "=")
		if !ok || secret == "" {
			return nil, fmt.Errorf("DEPARTMENT_PASSWORDS entry '%s' must have the format 'Department=secret'", strings.TrimSpace(entry))
		}

		department, err := models.ParseDepartment(name)
		if err != nil {
			return nil, fmt.Errorf("DEPARTMENT_PASSWORDS: %w", err)
		}

		passwords[department] = secret
	}

	return passwords, nil
}

func lookup(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

func boolean(key string, fallback bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be true or false: %w", key, err)
	}
	return b, nil
}

func duration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 12h: %w", key, err)
	}
	return d, nil
}

func integer(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	i, err := strconv.Atoi(value)
	if err != nil || i <= 0 {
		return 0, fmt.Errorf("%s must be a positive number, got '%s'", key, value)
	}
	return i, nil
}
