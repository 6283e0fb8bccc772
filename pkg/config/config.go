package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultAdminEmail = "admin@zidesign.com"

type Config struct {
	// Server
	ServerPort string
	AuthPort   string
	WorksPort  string
	GinMode    string

	// Database
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Object storage
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	S3Endpoint         string
	S3BucketName       string
	S3PublicURL        string

	// Accounts
	AdminEmail string
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	serverPort := getEnv("SERVER_PORT", "")

	config := &Config{
		ServerPort: serverPort,
		AuthPort:   getEnv("AUTH_PORT", fallback(serverPort, "8001")),
		WorksPort:  getEnv("WORKS_PORT", fallback(serverPort, "8002")),
		GinMode:    getEnv("GIN_MODE", "release"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBName:      getEnv("DB_NAME", "zidesign"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		S3Endpoint:         getEnv("S3_ENDPOINT", "https://bucket.poehali.dev"),
		S3BucketName:       getEnv("S3_BUCKET_NAME", "files"),

		AdminEmail: getEnv("ADMIN_EMAIL", defaultAdminEmail),
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	config.RedisDB = redisDB

	// The CDN path is keyed by the access key, so the default can only be built after it is known
	config.S3PublicURL = getEnv("S3_PUBLIC_URL",
		fmt.Sprintf("https://cdn.poehali.dev/projects/%s/bucket", config.AWSAccessKeyID))

	return config, nil
}

// DSN returns DATABASE_URL when set, otherwise a keyword DSN built from the DB_* settings.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
	)
}

func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func fallback(value, defaultValue string) string {
	if value != "" {
		return value
	}
	return defaultValue
}
