package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultConfirmationTTL is how long the thank-you panel stays on the page.
const DefaultConfirmationTTL = 10 * time.Second

// Config holds all application configuration values
type Config struct {
	Env     string
	Server  Server
	Landing Landing
}

// Server holds the settings of the HTTP host serving the landing page
type Server struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

// Landing holds the settings the page and its wasm binding read
type Landing struct {
	StaticDir       string
	ConfirmationTTL time.Duration
}

// Default returns the configuration used when nothing is set in the environment.
func Default() *Config {
	return &Config{
		Env: "local",
		Server: Server{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Landing: Landing{
			StaticDir:       "web/static",
			ConfirmationTTL: DefaultConfirmationTTL,
		},
	}
}

// LoadConfig reads configuration from environment variables
func LoadConfig() (*Config, error) {
	def := Default()
	cfg := &Config{
		Env: getEnv("APP_ENV", def.Env),
		Server: Server{
			Port:            getInt("PORT", def.Server.Port),
			ReadTimeout:     getDuration("SERVER_READ_TIMEOUT", def.Server.ReadTimeout),
			WriteTimeout:    getDuration("SERVER_WRITE_TIMEOUT", def.Server.WriteTimeout),
			ShutdownTimeout: getDuration("SERVER_SHUTDOWN_TIMEOUT", def.Server.ShutdownTimeout),
			AllowedOrigins:  getList("CORS_ALLOWED_ORIGINS"),
		},
		Landing: Landing{
			StaticDir:       getEnv("STATIC_DIR", def.Landing.StaticDir),
			ConfirmationTTL: getDuration("CONFIRMATION_TTL", def.Landing.ConfirmationTTL),
		},
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("PORT out of range: %d", cfg.Server.Port)
	}
	if cfg.Landing.ConfirmationTTL <= 0 {
		return nil, fmt.Errorf("CONFIRMATION_TTL must be positive, got %s", cfg.Landing.ConfirmationTTL)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Server.Port)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// getList splits a comma-separated value, dropping blanks.
func getList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
