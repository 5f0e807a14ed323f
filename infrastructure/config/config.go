package config

import "os"

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Google Cloud configuration
	ProjectID       string
	Region          string
	StorageBucket   string
	CredentialsFile string

	// Google Workspace configuration
	SpreadsheetID string
}

// LoadConfig loads configuration from environment variables. Every field has a
// literal fallback; a missing value is not an error here - it surfaces as the
// relevant collaborator call failing downstream.
func LoadConfig() *Config {
	return &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		ProjectID:       getEnv("GOOGLE_CLOUD_PROJECT", "infinity-x-one"),
		Region:          getEnv("GOOGLE_CLOUD_REGION", "us-central1"),
		StorageBucket:   getEnv("STORAGE_BUCKET", "infinity-x-one-storage"),
		CredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),

		SpreadsheetID: getEnv("INVESTOR_SPREADSHEET_ID", "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"),
	}
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
