package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Env            string
	Port           string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	OllamaURL      string
	OllamaModel    string
	EmbeddingModel string
	OllamaTimeout  int // seconds
	LLMEnabled     bool
	LLMMaxTokens   int
	DataDir        string
	ForceRefresh   bool
	OTelLogs       bool
}

func Load() *Config {
	return &Config{
		Env:            getEnv("ENV", "development"),
		Port:           getEnv("PORT", "8000"),
		DBHost:         getEnv("DB_HOST", "lexorigin-db"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "lexorigin"),
		DBPassword:     getSecret("DB_PASSWORD", "DB_PASSWORD_FILE", "lexorigin"),
		DBName:         getEnv("DB_NAME", "lexorigin"),
		OllamaURL:      getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:    getEnv("OLLAMA_MODEL", "gpt-oss:20b-cloud"),
		EmbeddingModel: getEnv("EMBEDDING_MODEL", "all-minilm"),
		OllamaTimeout:  getEnvInt("OLLAMA_TIMEOUT", 120),
		LLMEnabled:     getEnvBool("LLM_ENABLED", true),
		LLMMaxTokens:   getEnvInt("LLM_MAX_TOKENS", 2048),
		DataDir:        getEnv("DATA_DIR", "data"),
		ForceRefresh:   getEnvBool("LEXORIGIN_FORCE_REFRESH", false),
		OTelLogs:       getEnvBool("OTEL_LOGS_ENABLED", false),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getSecret resolves a value either directly from envKey or from the file
// named by fileEnvKey, for container secret mounts.
func getSecret(envKey, fileEnvKey, fallback string) string {
	if value, ok := os.LookupEnv(envKey); ok {
		return value
	}
	if filePath, ok := os.LookupEnv(fileEnvKey); ok {
		content, err := os.ReadFile(filePath)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		return strings.EqualFold(value, "true") || value == "1"
	}
	return fallback
}
