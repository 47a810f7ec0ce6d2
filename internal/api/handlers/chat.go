package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prefeitura-rio/app-busca-processos/internal/chat"
	"github.com/prefeitura-rio/app-busca-processos/internal/models"
	"github.com/prefeitura-rio/app-busca-processos/internal/render"
	"github.com/prefeitura-rio/app-busca-processos/internal/search/adapter"
)

// Replier responde mensagens do chat
type Replier interface {
	Reply(ctx context.Context, message string) (*chat.Reply, error)
}

// ChatHandler expõe o assistente conversacional
type ChatHandler struct {
	assistant Replier
}

// NewChatHandler cria o handler; assistant nil deixa o chat indisponível
func NewChatHandler(assistant Replier) *ChatHandler {
	return &ChatHandler{assistant: assistant}
}

// Chat godoc
// @Summary Conversa com o assistente de processos judiciais
// @Description O modelo decide se consulta o Datajud para responder a mensagem
// @Tags chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Mensagem"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api/v1/chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if h.assistant == nil {
		respondError(c, adapter.ErrGeminiUnavailable)
		return
	}

	reply, err := h.assistant.Reply(c.Request.Context(), req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	text := reply.Text
	if req.Plain {
		text = render.PlainText(text)
	}

	c.JSON(http.StatusOK, models.ChatResponse{Response: text, ToolCalled: reply.ToolCalled})
}
