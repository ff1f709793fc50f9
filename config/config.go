package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBName    string
	JWTKey    string
	SaltRound int

	// Bedrock-style model runtime
	BedrockApiURL     string
	BedrockApiKey     string
	AwsRegion         string
	LLMTimeoutSeconds int

	// Content vault
	VaultPath      string
	PublicPath     string
	TrashOverwrite bool
	DocsSyncCron   string // empty disables the scheduler

	// Workflow generation sessions
	SessionTTLMinutes int

	// Notifications
	SendgridApiKey string
	EmailSender    string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		DBName:    getEnv("DB_NAME", "coursegen"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		BedrockApiURL:     getEnv("BEDROCK_API_URL", ""),
		BedrockApiKey:     getEnv("BEDROCK_API_KEY", ""),
		AwsRegion:         getEnv("AWS_REGION", "eu-north-1"),
		LLMTimeoutSeconds: getEnvInt("LLM_TIMEOUT_SECONDS", 180),

		VaultPath:      getEnv("VAULT_PATH", "./vault-web"),
		PublicPath:     getEnv("PUBLIC_PATH", "./public/content"),
		TrashOverwrite: getEnvBool("TRASH_OVERWRITE", true),
		DocsSyncCron:   getEnv("DOCS_SYNC_CRON", ""),

		SessionTTLMinutes: getEnvInt("SESSION_TTL_MINUTES", 30),

		SendgridApiKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "noreply@coursegen.local"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.BedrockApiKey == "" {
		log.Println("Warning: BEDROCK_API_KEY not set. Course generation will use template fallbacks.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvBool retrieves an environment variable as a bool or returns the default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
