package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DatabaseURL     string
	OpenAIAPIKey    string
	AnthropicAPIKey string
	LLMProvider     string
	LLMModel        string
}

// Load reads configuration from a .env file (if present) and the process
// environment. The returned struct is passed explicitly into constructors;
// nothing reads the environment after startup.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[INFO] No .env file found, using environment variables")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     os.Getenv("DB_URL"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		LLMProvider:     getEnv("LLM_PROVIDER", "openai"),
		LLMModel:        os.Getenv("LLM_MODEL"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
