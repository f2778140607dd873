package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	AppEnv            string
	Port              string
	LogLevel          string
	DatabaseURL       string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSSLMode         string
	RedisURL          string
	RedisAddr         string
	RedisPassword     string
	CacheTTL          time.Duration
	JWTSecret         string
	JWTExpiry         time.Duration
	AdminEmail        string
	AdminPasswordHash string
	OriginURL         string
	UploadDir         string
	MaxUploadSize     int64
	CloudinaryURL     string
	CloudName         string
	CloudAPIKey       string
	CloudAPISecret    string
	SeedOnStart       bool
	SMTPHost          string
	SMTPPort          int
	SMTPUser          string
	SMTPPassword      string
	SMTPFrom          string
	ContactInbox      string
}

var AppConfig *Config

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug(".env file not found, using system environment variables")
	}

	maxUploadSize, _ := strconv.ParseInt(os.Getenv("MAX_UPLOAD_SIZE"), 10, 64)
	if maxUploadSize == 0 {
		maxUploadSize = 5242880
	}

	smtpPort, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	AppConfig = &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		Port:              getEnv("APP_PORT", getEnv("PORT", "3000")),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "bike_shop"),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		RedisURL:          os.Getenv("REDIS_URL"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		CacheTTL:          getDuration("CACHE_TTL", 5*time.Minute),
		JWTSecret:         getEnv("JWT_SECRET", "secret"),
		JWTExpiry:         getDuration("JWT_EXPIRY", 24*time.Hour),
		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@bikeshop.local"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		OriginURL:         os.Getenv("ORIGIN_URL"),
		UploadDir:         getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadSize:     maxUploadSize,
		CloudinaryURL:     os.Getenv("CLOUDINARY_URL"),
		CloudName:         os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudAPIKey:       os.Getenv("CLOUDINARY_API_KEY"),
		CloudAPISecret:    os.Getenv("CLOUDINARY_API_SECRET"),
		SeedOnStart:       getBool("SEED_ON_START", true),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          smtpPort,
		SMTPUser:          os.Getenv("SMTP_USER"),
		SMTPPassword:      os.Getenv("SMTP_PASS"),
		SMTPFrom:          os.Getenv("SMTP_FROM"),
		ContactInbox:      getEnv("CONTACT_INBOX", os.Getenv("ADMIN_EMAIL")),
	}

	return AppConfig
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// DSN prefers DATABASE_URL and falls back to the individual DB_* variables.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func getBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return b
}
