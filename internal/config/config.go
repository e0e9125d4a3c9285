package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App         AppConfig        `yaml:"app"`
	Database    DatabaseConfig   `yaml:"database"`
	Redis       RedisConfig      `yaml:"redis"`
	Monitoring  MonitoringConfig `yaml:"monitoring"`
	Logging     LoggingConfig    `yaml:"logging"`
	API         APIConfig        `yaml:"api"`
	Auth        AuthConfig       `yaml:"auth"`
	Booking     BookingConfig    `yaml:"booking"`
	Specialties []string         `yaml:"specialties"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

type MonitoringConfig struct {
	PrometheusEnabled bool `yaml:"prometheus_enabled"`
	PrometheusPort    int  `yaml:"prometheus_port"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path"`
}

type APIConfig struct {
	Port      int                `yaml:"port"`
	RateLimit APIRateLimitConfig `yaml:"rate_limit"`
}

type APIRateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type AuthConfig struct {
	JWTSecret     string `yaml:"jwt_secret"`
	AccessTTLMin  int    `yaml:"access_ttl_min"`
	BcryptCost    int    `yaml:"bcrypt_cost"`
	SessionTTLSec int    `yaml:"session_ttl_sec"`
}

type BookingConfig struct {
	LinkWorkerEnabled bool `yaml:"link_worker_enabled"`
	RetryMaxAttempts  int  `yaml:"retry_max_attempts"`
	RetryInitialSec   int  `yaml:"retry_initial_sec"`
}

func Load(configPath string) (*Config, error) {
	// .env is optional; secrets may come from the environment directly.
	_ = godotenv.Load(".env")

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// Предварительная замена переменных окружения в YAML
	expandedData := []byte(os.ExpandEnv(string(data)))

	var config Config
	if err := yaml.Unmarshal(expandedData, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return errors.New("database path is required")
	}

	if c.Auth.JWTSecret == "" || c.Auth.JWTSecret == "YOUR_JWT_SECRET_HERE" {
		return errors.New("auth jwt secret is required")
	}

	return ValidateSpecialties(c.Specialties)
}

// ValidateSpecialties rejects duplicate or empty picklist entries.
func ValidateSpecialties(specialties []string) error {
	seen := make(map[string]bool, len(specialties))
	for _, s := range specialties {
		if s == "" {
			return errors.New("empty specialty in picklist")
		}
		if seen[s] {
			return fmt.Errorf("duplicate specialty found: %s", s)
		}
		seen[s] = true
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.API.Port == 0 {
		c.API.Port = 8080
	}
	if c.Monitoring.PrometheusEnabled && c.Monitoring.PrometheusPort == 0 {
		c.Monitoring.PrometheusPort = 9090
	}
	if c.API.RateLimit.RPS == 0 {
		c.API.RateLimit.RPS = 10
	}
	if c.API.RateLimit.Burst == 0 {
		c.API.RateLimit.Burst = 5
	}

	if c.Auth.AccessTTLMin == 0 {
		c.Auth.AccessTTLMin = 60
	}
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = 10
	}
	if c.Auth.SessionTTLSec == 0 {
		c.Auth.SessionTTLSec = 24 * 60 * 60
	}

	if c.Booking.RetryMaxAttempts == 0 {
		c.Booking.RetryMaxAttempts = 5
	}
	if c.Booking.RetryInitialSec == 0 {
		c.Booking.RetryInitialSec = 2
	}

	// Default picklist mirrors the booking form's specialty dropdown.
	if len(c.Specialties) == 0 {
		c.Specialties = []string{
			"Italian Cuisine",
			"French Cuisine",
			"Asian Fusion",
			"Mediterranean",
			"Mexican Cuisine",
			"Japanese Cuisine",
			"Indian Cuisine",
			"BBQ & Grill",
		}
	}
}
