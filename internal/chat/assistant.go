// Package chat implementa o assistente conversacional sobre o Datajud.
//
// O modelo decide se chama a ferramenta de consulta. Quando chama, o texto
// informado pelo modelo passa pelo mesmo pipeline da busca (search.Engine) e o
// resultado normalizado volta ao modelo para a resposta final.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/prefeitura-rio/app-busca-processos/internal/models"
	"github.com/prefeitura-rio/app-busca-processos/internal/search"
)

// ToolName é o nome da função exposta ao modelo
const ToolName = "consultar_datajud"

const toolArgument = "texto_consulta"

const systemPrompt = `Você é um assistente especializado no sistema judiciário brasileiro.
Você ajuda a encontrar informações sobre processos judiciais, situação de casos,
partes envolvidas e movimentações, consultando a API pública do Datajud (CNJ).

Quando o usuário perguntar sobre um processo específico ou sobre informações
processuais, use a ferramenta consultar_datajud. Se a pergunta não tiver relação
com processos judiciais brasileiros, responda diretamente sem usar a ferramenta.

Responda sempre no mesmo idioma do usuário, de forma objetiva e útil.`

var ErrEmptyResponse = errors.New("modelo não retornou resposta")

// Model gera conteúdo a partir do histórico da conversa
type Model interface {
	Generate(ctx context.Context, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Resolver executa consultas ao Datajud
type Resolver interface {
	Resolve(ctx context.Context, text string) (*models.NormalizedResult, error)
}

// Reply é a resposta do assistente
type Reply struct {
	Text       string
	ToolCalled bool
}

// Assistant conduz uma troca de mensagens com chamada de ferramenta
type Assistant struct {
	model    Model
	resolver Resolver
	logger   *zap.Logger
}

// NewAssistant cria um novo assistente
func NewAssistant(model Model, resolver Resolver, logger *zap.Logger) *Assistant {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assistant{
		model:    model,
		resolver: resolver,
		logger:   logger,
	}
}

// Tool descreve a ferramenta de consulta para o modelo
func Tool() *genai.Tool {
	return &genai.Tool{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name: ToolName,
				Description: "Consulta o sistema judiciário brasileiro (API Datajud) sobre processos judiciais. " +
					"Use para perguntas sobre processos, números de processo, situação, partes ou movimentações. " +
					"Envie a pergunta completa do usuário.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						toolArgument: {
							Type: genai.TypeString,
							Description: "Pergunta em linguagem natural, podendo conter um número de processo " +
								"(ex.: '0000001-70.2020.1.00.0000') ou palavras-chave (ex.: 'habeas corpus no STF').",
						},
					},
					Required: []string{toolArgument},
				},
			},
		},
	}
}

// Reply responde a mensagem do usuário, consultando o Datajud quando o modelo pedir
func (a *Assistant) Reply(ctx context.Context, message string) (*Reply, error) {
	contents := []*genai.Content{genai.NewContentFromText(message, genai.RoleUser)}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Tools:             []*genai.Tool{Tool()},
	}

	resp, err := a.model.Generate(ctx, contents, cfg)
	if err != nil {
		return nil, err
	}

	calls := resp.FunctionCalls()
	if len(calls) == 0 {
		text := resp.Text()
		if text == "" {
			return nil, ErrEmptyResponse
		}
		a.logger.Info("resposta direta do modelo", zap.Int("chars", len(text)))
		return &Reply{Text: text}, nil
	}

	var parts []*genai.Part
	for _, call := range calls {
		part, err := a.dispatch(ctx, call, message)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}

	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		contents = append(contents, resp.Candidates[0].Content)
	}
	contents = append(contents, genai.NewContentFromParts(parts, genai.RoleUser))

	final, err := a.model.Generate(ctx, contents, &genai.GenerateContentConfig{
		SystemInstruction: cfg.SystemInstruction,
	})
	if err != nil {
		return nil, err
	}

	text := final.Text()
	if text == "" {
		return nil, ErrEmptyResponse
	}

	a.logger.Info("resposta do modelo após consulta", zap.Int("tool_calls", len(calls)))
	return &Reply{Text: text, ToolCalled: true}, nil
}

// dispatch executa uma chamada de função e monta a resposta para o modelo.
// Erros de roteamento viram conteúdo da resposta; falhas de transporte abortam.
func (a *Assistant) dispatch(ctx context.Context, call *genai.FunctionCall, message string) (*genai.Part, error) {
	respond := func(payload map[string]any) *genai.Part {
		return &genai.Part{FunctionResponse: &genai.FunctionResponse{
			ID:       call.ID,
			Name:     call.Name,
			Response: payload,
		}}
	}

	if call.Name != ToolName {
		a.logger.Warn("função desconhecida solicitada pelo modelo", zap.String("name", call.Name))
		return respond(map[string]any{"error": fmt.Sprintf("função desconhecida: %s", call.Name)}), nil
	}

	text, _ := call.Args[toolArgument].(string)
	if strings.TrimSpace(text) == "" {
		text = message
	}

	a.logger.Info("chamada de ferramenta", zap.String("tool", ToolName), zap.String("query", text))

	result, err := a.resolver.Resolve(ctx, text)
	switch {
	case err == nil:
		return respond(map[string]any{"output": result}), nil
	case errors.Is(err, search.ErrMalformedIdentifier), errors.Is(err, search.ErrUnknownCourt):
		return respond(map[string]any{"error": err.Error()}), nil
	default:
		return nil, fmt.Errorf("erro ao consultar o Datajud: %w", err)
	}
}
