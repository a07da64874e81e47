package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string

	AccessTokenTTL  = 60 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// LoadEnv reads .env when present and caches the secrets the app needs at
// startup. Deployed environments set real env vars and ship no .env file.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET", JWTSecret)

	if JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is not set")
	}

	if mins := GetEnvInt("ACCESS_TOKEN_MINUTES", 0); mins > 0 {
		AccessTokenTTL = time.Duration(mins) * time.Minute
	}
	if days := GetEnvInt("REFRESH_TOKEN_DAYS", 0); days > 0 {
		RefreshTokenTTL = time.Duration(days) * 24 * time.Hour
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
