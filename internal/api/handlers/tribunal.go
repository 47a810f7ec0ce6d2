package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prefeitura-rio/app-busca-processos/internal/models"
	"github.com/prefeitura-rio/app-busca-processos/internal/search"
	"github.com/prefeitura-rio/app-busca-processos/internal/search/court"
	"github.com/prefeitura-rio/app-busca-processos/internal/utils"
)

// TribunalHandler expõe o diretório de tribunais
type TribunalHandler struct {
	engine *search.Engine
}

// NewTribunalHandler cria um novo handler de tribunais
func NewTribunalHandler(engine *search.Engine) *TribunalHandler {
	return &TribunalHandler{
		engine: engine,
	}
}

// TribunalResponse é a lista de tribunais
type TribunalResponse struct {
	Total     int                `json:"total"`
	Tribunais []court.Descriptor `json:"tribunais"`
}

// ListarTribunais godoc
// @Summary Lista os tribunais atendidos pelo Datajud
// @Description Filtra por ramo da justiça (dígito J) e por parte do nome, sem diferenciar acentos
// @Tags tribunais
// @Produce json
// @Param nome query string false "Parte do nome do tribunal"
// @Param ramo query string false "Ramo da justiça" Enums(1, 2, 3, 4, 5, 6)
// @Success 200 {object} TribunalResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/tribunais [get]
func (h *TribunalHandler) ListarTribunais(c *gin.Context) {
	var req models.TribunalQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tribunais := make([]court.Descriptor, 0)
	for _, d := range h.engine.Courts() {
		if req.Ramo != "" && string(d.Justice) != req.Ramo {
			continue
		}
		if req.Nome != "" && !utils.ContemTermo(d.Name, req.Nome) && !utils.ContemTermo(d.Code, req.Nome) {
			continue
		}
		tribunais = append(tribunais, d)
	}

	c.JSON(http.StatusOK, TribunalResponse{Total: len(tribunais), Tribunais: tribunais})
}

// BuscarTribunal godoc
// @Summary Retorna um tribunal pelo código
// @Tags tribunais
// @Produce json
// @Param codigo path string true "Código do tribunal (ex.: tjrj)"
// @Success 200 {object} court.Descriptor
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/tribunais/{codigo} [get]
func (h *TribunalHandler) BuscarTribunal(c *gin.Context) {
	var uri models.TribunalURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, err)
		return
	}

	desc, err := h.engine.Court(uri.Codigo)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, desc)
}

// BuscarNoTribunal godoc
// @Summary Busca em um campo do índice de um tribunal
// @Description Executa uma consulta match em um único campo (ex.: classe.nome) no tribunal indicado
// @Tags tribunais
// @Produce json
// @Param codigo path string true "Código do tribunal (ex.: tjrj)"
// @Param campo query string true "Campo do índice" example(classe.nome)
// @Param q query string true "Termo de busca"
// @Success 200 {object} models.NormalizedResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/v1/tribunais/{codigo}/busca [get]
func (h *TribunalHandler) BuscarNoTribunal(c *gin.Context) {
	var uri models.TribunalURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, err)
		return
	}

	var req models.BuscaCampoRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.engine.SearchField(c.Request.Context(), uri.Codigo, req.Campo, req.Query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
