package config

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

const (
	defaultPort          = "8081"
	defaultSessionMaxAge = 365 * 24 * time.Hour
	defaultTemplatesPath = "frontend/templates"
	defaultStaticPath    = "frontend/static"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Port          string        `yaml:"port"`
	APIBaseURL    string        `yaml:"api_base_url" validate:"required,url"`
	LogLevel      string        `yaml:"log_level"`
	LogJSON       bool          `yaml:"log_json"`
	SecureCookies bool          `yaml:"secure_cookies"`
	SessionMaxAge time.Duration `yaml:"session_max_age"` // lifetime of the session cookie, the stored session itself never expires
	TemplatesPath string        `yaml:"templates_path"`
	StaticPath    string        `yaml:"static_path"`
	TimeZone      string        `yaml:"time_zone"` // zone donors type availability dates in
	RateLimit     RateLimit     `yaml:"rate_limit"`
}

// RateLimit throttles login and registration posts per client IP. A zero
// PerMinute disables it; otherwise Burst must allow at least one post.
type RateLimit struct {
	PerMinute float64 `yaml:"per_minute" validate:"gte=0"`
	Burst     int     `yaml:"burst" validate:"gte=0"`
}

type Private struct {
	SessionSecret string `yaml:"session_secret" validate:"required,min=32"`
	// TokenSecret enables signature verification of login tokens (HS256).
	// Empty means the token body is trusted as plain JSON.
	TokenSecret string `yaml:"token_secret"`
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file: " + err.Error())
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder, applies
// environment overrides and defaults, and panics when a required value is missing.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{Public: public, Private: private}
	cfg.applyEnv()
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Public.Port = v
	}
	if v := os.Getenv("API_BASE_URL"); v != "" {
		c.Public.APIBaseURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Public.LogLevel = v
	}
	if v := os.Getenv("SECURE_COOKIES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Public.SecureCookies = b
		}
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		c.Private.SessionSecret = v
	}
	if v := os.Getenv("TOKEN_SECRET"); v != "" {
		c.Private.TokenSecret = v
	}
}

func (c *Config) applyDefaults() {
	if c.Public.Port == "" {
		c.Public.Port = defaultPort
	}
	if c.Public.LogLevel == "" {
		c.Public.LogLevel = "info"
	}
	if c.Public.SessionMaxAge == 0 {
		c.Public.SessionMaxAge = defaultSessionMaxAge
	}
	if c.Public.TemplatesPath == "" {
		c.Public.TemplatesPath = defaultTemplatesPath
	}
	if c.Public.StaticPath == "" {
		c.Public.StaticPath = defaultStaticPath
	}
	if c.Public.TimeZone == "" {
		c.Public.TimeZone = "UTC"
	}
}

func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterStructValidation(validateRateLimit, RateLimit{})
	if err := validate.Struct(c.Public); err != nil {
		return fmt.Errorf("invalid public config: %w", err)
	}
	if err := validate.Struct(c.Private); err != nil {
		return fmt.Errorf("invalid private config: %w", err)
	}
	if _, err := c.Public.Location(); err != nil {
		return fmt.Errorf("invalid public config: %w", err)
	}
	return nil
}

func validateRateLimit(sl validator.StructLevel) {
	rl := sl.Current().Interface().(RateLimit)
	if rl.PerMinute > 0 && rl.Burst < 1 {
		sl.ReportError(rl.Burst, "Burst", "burst", "burst_when_limited", "")
	}
}

// Location resolves TimeZone. An empty zone is UTC.
func (p Public) Location() (*time.Location, error) {
	return time.LoadLocation(p.TimeZone)
}
