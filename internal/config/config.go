package config

import "os"

type Config struct {
	Port         string
	DatabaseURL  string
	DatabaseName string
	AllowOrigins string
	LogLevel     string
	LogFormat    string
}

func Load() Config {
	return Config{
		Port:         getenv("PORT", "8000"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
		AllowOrigins: getenv("ALLOW_ORIGINS", "*"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogFormat:    getenv("LOG_FORMAT", "json"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
