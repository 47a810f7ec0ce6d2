package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"
)

var ErrGeminiUnavailable = errors.New("cliente Gemini não inicializado")

// GeminiConfig configuração para o adapter Gemini
type GeminiConfig struct {
	ChatModel string
	Timeout   time.Duration
}

// DefaultGeminiConfig retorna configuração padrão
func DefaultGeminiConfig() GeminiConfig {
	return GeminiConfig{
		ChatModel: "gemini-2.0-flash",
		Timeout:   60 * time.Second,
	}
}

// GeminiAdapter encapsula a geração de conteúdo com a Gemini API
type GeminiAdapter struct {
	client *genai.Client
	config GeminiConfig
}

// NewGeminiClient cria o cliente da Gemini API. Sem chave retorna nil, nil.
func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente Gemini: %w", err)
	}
	return client, nil
}

// NewGeminiAdapter cria um novo adapter para Gemini
func NewGeminiAdapter(client *genai.Client, cfg GeminiConfig) *GeminiAdapter {
	if cfg.ChatModel == "" {
		cfg.ChatModel = DefaultGeminiConfig().ChatModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultGeminiConfig().Timeout
	}

	return &GeminiAdapter{
		client: client,
		config: cfg,
	}
}

// Generate envia o histórico da conversa ao modelo de chat
func (g *GeminiAdapter) Generate(ctx context.Context, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	if g.client == nil {
		return nil, ErrGeminiUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, g.config.ChatModel, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar resposta: %w", err)
	}
	return resp, nil
}

// IsAvailable verifica se o cliente está disponível
func (g *GeminiAdapter) IsAvailable() bool {
	return g.client != nil
}

// ChatModel retorna o modelo de chat configurado
func (g *GeminiAdapter) ChatModel() string {
	return g.config.ChatModel
}
