// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## Servidor
//   - SERVER_PORT: Porta HTTP (default: 8080)
//   - APP_ENV: Ambiente de execução, development ou production (default: development)
//   - LOG_LEVEL: Nível de log debug, info, warn ou error (default: info)
//   - SHUTDOWN_TIMEOUT_SECONDS: Tempo máximo para encerramento gracioso (default: 10)
//   - CORS_ALLOWED_ORIGINS: Origens permitidas separadas por vírgula (default: *)
//
// ## Datajud
//   - DATAJUD_API_KEY: Chave enviada no header X-API-Key (opcional)
//   - DATAJUD_BASE_URL: Endereço da API pública (default: https://api-publica.datajud.cnj.jus.br)
//   - DATAJUD_TIMEOUT_SECONDS: Timeout de cada requisição (default: 30)
//   - DATAJUD_DEFAULT_COURT: Tribunal usado para texto livre (default: stf)
//
// ## Gemini
//   - GEMINI_API_KEY: Chave da API Google Gemini; sem ela o chat fica indisponível
//   - GEMINI_CHAT_MODEL: Modelo para o assistente (default: gemini-2.0-flash)
//
// ## Tracing
//   - TRACING_ENABLED: Habilita exportação OTLP (default: false)
//   - TRACING_ENDPOINT: Endpoint gRPC do coletor (default: localhost:4317)
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	LogLevel        string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string

	// Datajud configuration
	DatajudAPIKey       string
	DatajudBaseURL      string
	DatajudTimeout      time.Duration
	DatajudDefaultCourt string

	// Gemini configuration
	GeminiAPIKey    string
	GeminiChatModel string

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string
}

// LoadConfig lê o .env (se existir) e as variáveis de ambiente
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("APP_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		AllowedOrigins:  getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),

		DatajudAPIKey:       getEnv("DATAJUD_API_KEY", ""),
		DatajudBaseURL:      getEnv("DATAJUD_BASE_URL", "https://api-publica.datajud.cnj.jus.br"),
		DatajudTimeout:      time.Duration(getEnvInt("DATAJUD_TIMEOUT_SECONDS", 30)) * time.Second,
		DatajudDefaultCourt: strings.ToLower(getEnv("DATAJUD_DEFAULT_COURT", "stf")),

		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiChatModel: getEnv("GEMINI_CHAT_MODEL", "gemini-2.0-flash"),

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}
}

// IsProduction indica se a aplicação roda em produção
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil && intVal > 0 {
			return intVal
		}
	}
	return defaultValue
}

// getEnvList lê uma lista separada por vírgulas, ignorando itens vazios
func getEnvList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
