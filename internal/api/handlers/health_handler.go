package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prefeitura-rio/app-busca-processos/internal/search"
)

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct {
	engine        *search.Engine
	chatAvailable bool
}

// NewHealthHandler cria um novo handler de health check
func NewHealthHandler(engine *search.Engine, chatAvailable bool) *HealthHandler {
	return &HealthHandler{
		engine:        engine,
		chatAvailable: chatAvailable,
	}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness check endpoint
// @Description Verifica se a aplicação está viva (sem checagem de dependências externas)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Health godoc
// @Summary Health check da aplicação
// @Description Verifica a configuração local. A API do Datajud não é consultada para não consumir cota.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if n := len(h.engine.Courts()); n > 0 {
		response.Checks["tribunais"] = "ok"
	} else {
		response.Checks["tribunais"] = "vazio"
		response.Status = "unhealthy"
	}
	response.Checks["tribunal_padrao"] = h.engine.DefaultCourt().Code

	if h.chatAvailable {
		response.Checks["chat"] = "ok"
	} else {
		response.Checks["chat"] = "desabilitado"
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}
