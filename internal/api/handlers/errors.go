package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/prefeitura-rio/app-busca-processos/internal/chat"
	"github.com/prefeitura-rio/app-busca-processos/internal/logger"
	"github.com/prefeitura-rio/app-busca-processos/internal/models"
	"github.com/prefeitura-rio/app-busca-processos/internal/search"
	"github.com/prefeitura-rio/app-busca-processos/internal/search/adapter"
)

// statusFor mapeia erros do pipeline para status HTTP
func statusFor(err error) int {
	switch {
	case errors.Is(err, search.ErrMalformedIdentifier):
		return http.StatusBadRequest
	case errors.Is(err, search.ErrUnknownCourt), errors.Is(err, search.ErrCourtNotFound):
		return http.StatusNotFound
	case errors.Is(err, search.ErrTransport):
		return http.StatusBadGateway
	case errors.Is(err, adapter.ErrGeminiUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, chat.ErrEmptyResponse):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func messageFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Número de processo inválido"
	case http.StatusNotFound:
		return "Tribunal não encontrado"
	case http.StatusBadGateway:
		return "Erro ao consultar o serviço externo"
	case http.StatusServiceUnavailable:
		return "Serviço indisponível"
	}
	return "Erro interno do servidor"
}

// respondError responde com o status adequado ao erro
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	_ = c.Error(err)

	log := logger.FromContext(c.Request.Context(), nil)
	if status >= http.StatusInternalServerError {
		log.Error("erro ao processar requisição", zap.Error(err), zap.Int("status", status))
	}

	c.JSON(status, models.ErrorResponse{Error: messageFor(status), Details: err.Error()})
}

// respondBindError responde 400 com os detalhes de validação
func respondBindError(c *gin.Context, err error) {
	_ = c.Error(err).SetType(gin.ErrorTypeBind)

	details := validationDetails(err)
	if details == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Requisição inválida", Details: err.Error()})
		return
	}
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Requisição inválida", Details: details})
}
