package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	SeedDemoData   bool
	ApplicantName  string
	SessionCookie  string
	SessionIdle    time.Duration
	SessionSweep   time.Duration
}

// Load reads .env (if present) and the process environment.
// Every setting has a default, so Load never fails on a bare environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env.
func FromEnv() Config {
	return Config{
		AppEnv:         getEnv("APP_ENV", "local"),
		Port:           getEnv("PORT", "3000"),
		ReadTimeout:    getEnvDuration("HTTP_READ_TIMEOUT", 5*time.Second),
		WriteTimeout:   getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:    getEnvDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 40),
		SeedDemoData:   getEnvBool("SEED_DEMO_DATA", true),
		ApplicantName:  getEnv("APPLICANT_NAME", "Liu Yihong"),
		SessionCookie:  getEnv("SESSION_COOKIE", "leave_session"),
		SessionIdle:    getEnvDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
		SessionSweep:   getEnvDuration("SESSION_SWEEP_INTERVAL", time.Minute),
	}
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getEnvBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
