package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port         int
	MaxWorkers   int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Preprocessing configuration
	ReprocessPolicy string

	// Order store configuration
	OrderTableName string
	AWSRegion      string
	AWSEndpoint    string // optional, for local stacks

	// Document storage configuration
	DocumentBucket string

	// Renderer configuration
	TemplatePath string

	// Converter configuration
	ConverterURL     string
	ConverterTimeout time.Duration

	// Audit trail configuration (optional)
	DatabaseURL string
}

// LoadConfig loads the application configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file. Using environment variables.")
	}

	// Create and populate config
	config := &Config{
		// Server configuration
		Port:         getEnvInt("PORT", 8080),
		MaxWorkers:   getEnvInt("MAX_WORKERS", 5),
		ReadTimeout:  time.Duration(getEnvInt("READ_TIMEOUT", 15)) * time.Second,
		WriteTimeout: time.Duration(getEnvInt("WRITE_TIMEOUT", 60)) * time.Second,

		// Preprocessing configuration
		ReprocessPolicy: getEnvString("REPROCESS_POLICY", "FIRST_TIME_ONLY"),

		// Order store configuration
		OrderTableName: getEnvString("DYNAMODB_TABLE_NAME", "orders"),
		AWSRegion:      getEnvString("AWS_REGION", "us-east-1"),
		AWSEndpoint:    os.Getenv("AWS_ENDPOINT"),

		// Document storage configuration
		DocumentBucket: os.Getenv("BUCKET_NAME"),

		// Renderer configuration
		TemplatePath: getEnvString("TEMPLATE_PATH", "assets/invoice-template.html"),

		// Converter configuration
		ConverterURL:     getEnvString("CONVERTER_URL", "http://localhost:3000"),
		ConverterTimeout: time.Duration(getEnvInt("CONVERTER_TIMEOUT", 60)) * time.Second,

		// Audit trail configuration
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	// Validate critical configuration
	validateConfig(config)

	return config, nil
}

// validateConfig checks if critical configuration values are set and logs warnings if they're missing
func validateConfig(config *Config) {
	if config.DocumentBucket == "" {
		log.Println("Warning: No document bucket provided. Document uploads will fail.")
	}

	if config.DatabaseURL == "" {
		log.Println("No database URL provided. Document audit trail is disabled.")
	}
}

// getEnvInt gets an integer from an environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvBool gets a boolean from an environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	valueStr = strings.ToLower(valueStr)
	return valueStr == "true" || valueStr == "1" || valueStr == "yes"
}

// getEnvString gets a string from an environment variable with a default value
func getEnvString(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
