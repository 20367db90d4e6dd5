package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"planner/internal/core/domain"
	"planner/pkg/clock"
)

type Config struct {
	AppPort           string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	TrustedProxies    []string
	Timezone          string
	DefaultDueTime    string
	Language          string
	AlertsEnabled     bool
	TranslationFolder string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		DbHost:            getEnv("MYSQL_HOST", "db"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "planner"),
		DbPassword:        getEnv("MYSQL_PASSWORD", "planner"),
		DbName:            getEnv("MYSQL_DATABASE", "planner"),
		DbParams:          getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		TrustedProxies:    parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
		Timezone:          getEnv("APP_TIMEZONE", "Local"),
		DefaultDueTime:    getEnv("DEFAULT_DUE_TIME", clock.EndOfDay.String()),
		Language:          getEnv("APP_LANGUAGE", "pt"),
		AlertsEnabled:     getEnvBool("ALERTS_ENABLED", true),
		TranslationFolder: os.Getenv("TRANSLATION_FOLDER"),
	}
}

// Location resolves Timezone, falling back to the process zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		zap.L().Warn("unknown timezone, using local", zap.String("timezone", c.Timezone), zap.Error(err))
		return time.Local
	}
	return loc
}

// DuePolicy is the single sentinel applied to tasks without a due time.
func (c *Config) DuePolicy() domain.DuePolicy {
	policy := domain.DuePolicy{DefaultTime: clock.EndOfDay, Location: c.Location()}
	tod, err := clock.ParseTimeOfDay(c.DefaultDueTime)
	if err != nil {
		zap.L().Warn("invalid DEFAULT_DUE_TIME, using end of day", zap.String("value", c.DefaultDueTime), zap.Error(err))
		return policy
	}
	policy.DefaultTime = tod
	return policy
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
