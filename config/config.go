package config

import (
	"os"
	"strconv"

	"notes-service/validator"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string `json:"port" validate:"required,port"`
	Env          string `json:"env" validate:"oneof=development production test"`
	LogLevel     string `json:"log_level" validate:"oneof=debug info warn error"`
	CORSOrigins  string `json:"cors_origins" validate:"required"`
	RateLimit    int    `json:"rate_limit" validate:"gte=0"`
	SearchMode   string `json:"search_mode" validate:"oneof=exact pattern glob"`
	SeedFile     string `json:"seed_file"`
	SeedDisabled bool   `json:"seed_disabled"`
}

// Load reads .env (if present) and the environment. Callers own the
// returned Config and pass it on explicitly.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:         GetEnv("PORT", "5000"),
		Env:          GetEnv("ENV", "development"),
		LogLevel:     GetEnv("LOG_LEVEL", "info"),
		CORSOrigins:  GetEnv("CORS_ORIGINS", "*"),
		RateLimit:    GetEnvInt("RATE_LIMIT", 200),
		SearchMode:   GetEnv("SEARCH_MODE", "exact"),
		SeedFile:     GetEnv("SEED_FILE", ""),
		SeedDisabled: GetEnvBool("SEED_DISABLED", false),
	}
}

func (c *Config) Validate() error {
	return validator.New().Validate(c)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return defaultValue
}

func GetEnvBool(key string, defaultValue bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return defaultValue
}
