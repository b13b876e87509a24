package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIURL   = "https://course-vue.javascript.ru/api"
	DefaultMeetupID = 6
)

type Config struct {
	APIURL         string        `yaml:"api_url"`
	MeetupID       int           `yaml:"meetup_id"`
	HTTPAddr       string        `yaml:"http_addr"`
	Locale         string        `yaml:"locale"`
	LogLevel       string        `yaml:"log_level"`
	LogFormat      string        `yaml:"log_format"`
	CorsOrigins    []string      `yaml:"cors_origins"`
	DebugPublicKey string        `yaml:"debug_public_key"`
	FetchTimeout   time.Duration `yaml:"fetch_timeout"`
}

func Default() Config {
	return Config{
		APIURL:      DefaultAPIURL,
		MeetupID:    DefaultMeetupID,
		HTTPAddr:    ":8080",
		Locale:      "ru-RU",
		LogLevel:    "debug",
		LogFormat:   "text",
		CorsOrigins: []string{"*"},
	}
}

// Load reads an optional .env file, then an optional YAML file named by
// CONFIG_FILE, then environment variables. Later sources win.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("err loading .env: %w", err)
	}
	cfg := Default()
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.loadEnv(); err != nil {
		return Config{}, err
	}
	// Validate normalizes cfg in place, so it must run before cfg is returned.
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("err reading config file: %w", err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("err parsing config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadEnv() error {
	c.APIURL = lookupEnv("API_URL", c.APIURL)
	c.HTTPAddr = lookupEnv("HTTP_ADDR", c.HTTPAddr)
	c.Locale = lookupEnv("LOCALE", c.Locale)
	c.LogLevel = lookupEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = lookupEnv("LOG_FORMAT", c.LogFormat)
	c.DebugPublicKey = lookupEnv("DEBUG_PUBLIC_KEY", c.DebugPublicKey)

	if raw := lookupEnv("MEETUP_ID", ""); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("MEETUP_ID is not a number: %w", err)
		}
		c.MeetupID = id
	}
	if raw := lookupEnv("FETCH_TIMEOUT", ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("FETCH_TIMEOUT is not a duration: %w", err)
		}
		c.FetchTimeout = d
	}
	if raw := lookupEnv("CORS_ORIGINS", ""); raw != "" {
		c.CorsOrigins = splitList(raw)
	}
	return nil
}

func (c *Config) Validate() error {
	c.APIURL = strings.TrimRight(strings.TrimSpace(c.APIURL), "/")
	switch {
	case c.APIURL == "":
		return fmt.Errorf("API_URL is empty")
	case c.MeetupID <= 0:
		return fmt.Errorf("MEETUP_ID must be positive, got %d", c.MeetupID)
	case c.FetchTimeout < 0:
		return fmt.Errorf("FETCH_TIMEOUT must not be negative")
	}
	return nil
}

func lookupEnv(key, defaultValue string) string {
	result := strings.TrimSpace(os.Getenv(key))
	if result == "" {
		return defaultValue
	}
	return result
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
