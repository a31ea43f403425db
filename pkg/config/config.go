package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Admin    AdminConfig
	Calendar CalendarConfig
	Email    EmailConfig
	Storage  StorageConfig
	SeedDemo bool
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	URL string
}

type AdminConfig struct {
	// Hash bcrypt da password usada pelo /auth/login.
	PasswordHash string
	JWTSecret    string
	// Quando true, o header x-admin-request é aceite tal como chega da edge.
	TrustHeader bool
}

type CalendarConfig struct {
	WebhookURL string
}

type EmailConfig struct {
	ResendAPIKey string
	NotifyTo     string
}

type StorageConfig struct {
	Bucket string
	Region string
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Admin: AdminConfig{
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			JWTSecret:    getEnv("JWT_SECRET", "reabita-dev-secret"),
			TrustHeader:  getEnv("TRUST_ADMIN_HEADER", "true") == "true",
		},
		Calendar: CalendarConfig{
			WebhookURL: getEnv("CALENDAR_WEBHOOK_URL", ""),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			NotifyTo:     getEnv("NOTIFY_EMAIL", "geral@reabita.pt"),
		},
		Storage: StorageConfig{
			Bucket: getEnv("AWS_BUCKET_NAME", ""),
			Region: getEnv("AWS_REGION", "eu-west-1"),
		},
		SeedDemo: getEnv("SEED_DEMO", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
