package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env             string
	Port            string
	DBURL           string
	JWTSecret       string
	JWTExpiryMin    int
	ActivationURL   string
	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	MailFromAddress string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:             getEnv("ENV", "development"),
		Port:            getEnv("PORT", "8088"),
		DBURL:           mustGetEnv("DB_URL"),
		JWTSecret:       mustGetEnv("JWT_SECRET"),
		JWTExpiryMin:    getEnvAsInt("JWT_EXPIRY_MIN", 60),
		ActivationURL:   getEnv("ACTIVATION_URL", "http://localhost:4200/activate-account"),
		SMTPHost:        getEnv("SMTP_HOST", "localhost"),
		SMTPPort:        getEnvAsInt("SMTP_PORT", 1025),
		SMTPUsername:    getEnv("SMTP_USERNAME", ""),
		SMTPPassword:    getEnv("SMTP_PASSWORD", ""),
		MailFromAddress: getEnv("MAIL_FROM", "contact@booknetwork.com"),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
