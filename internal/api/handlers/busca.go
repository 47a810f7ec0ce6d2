package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prefeitura-rio/app-busca-processos/internal/models"
	"github.com/prefeitura-rio/app-busca-processos/internal/render"
	"github.com/prefeitura-rio/app-busca-processos/internal/search"
)

type BuscaHandler struct {
	engine *search.Engine
}

func NewBuscaHandler(engine *search.Engine) *BuscaHandler {
	return &BuscaHandler{
		engine: engine,
	}
}

// Buscar godoc
// @Summary Consulta processos judiciais
// @Description Resolve o texto (número CNJ ou termos livres) no tribunal adequado e retorna o resultado normalizado
// @Tags busca
// @Accept json
// @Produce json
// @Param request body models.BuscaRequest true "Consulta"
// @Success 200 {object} models.NormalizedResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/v1/busca [post]
func (h *BuscaHandler) Buscar(c *gin.Context) {
	var req models.BuscaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.engine.Resolve(c.Request.Context(), req.Query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// BuscarGet godoc
// @Summary Consulta processos judiciais via query string
// @Description Igual a POST /api/v1/busca, com saída em JSON, Markdown, HTML ou texto simples
// @Tags busca
// @Produce json,text/markdown,text/html,text/plain
// @Param q query string true "Número CNJ ou termos de busca"
// @Param formato query string false "Formato da resposta" Enums(json, markdown, html, texto) default(json)
// @Success 200 {object} models.NormalizedResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/v1/busca [get]
func (h *BuscaHandler) BuscarGet(c *gin.Context) {
	var req models.BuscaQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.engine.Resolve(c.Request.Context(), req.Query)
	if err != nil {
		respondError(c, err)
		return
	}

	writeResult(c, req.Formato, result)
}

// BuscarProcesso godoc
// @Summary Busca um processo pelo número CNJ
// @Description Consulta o tribunal identificado pelos segmentos J e TR do número
// @Tags processos
// @Produce json
// @Param numero path string true "Número CNJ (NNNNNNN-DD.AAAA.J.TR.OOOO)"
// @Param formato query string false "Formato da resposta" Enums(json, markdown, html, texto) default(json)
// @Success 200 {object} models.NormalizedResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/v1/processos/{numero} [get]
func (h *BuscaHandler) BuscarProcesso(c *gin.Context) {
	var uri models.ProcessoURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, err)
		return
	}

	formato := c.DefaultQuery("formato", "json")
	if !validFormat(formato) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Formato inválido", Details: formato})
		return
	}

	result, err := h.engine.LookupProcess(c.Request.Context(), uri.Numero)
	if err != nil {
		respondError(c, err)
		return
	}

	if len(result.Records) == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Processo não encontrado", Details: uri.Numero})
		return
	}

	writeResult(c, formato, result)
}

func validFormat(formato string) bool {
	switch formato {
	case "", "json", "markdown", "html", "texto":
		return true
	}
	return false
}

// writeResult escreve o resultado no formato pedido
func writeResult(c *gin.Context, formato string, result *models.NormalizedResult) {
	switch formato {
	case "markdown":
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(render.Markdown(result)))
	case "html":
		c.Data(http.StatusOK, "text/html; charset=utf-8", render.HTML(render.Markdown(result)))
	case "texto":
		c.String(http.StatusOK, render.PlainText(render.Markdown(result)))
	default:
		c.JSON(http.StatusOK, result)
	}
}
