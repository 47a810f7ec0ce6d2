package models

// BuscaRequest é o corpo de POST /api/v1/busca
type BuscaRequest struct {
	// Número CNJ ou termos de busca
	Query string `json:"query" binding:"required,max=2000" example:"habeas corpus"`
}

// BuscaQuery são os parâmetros de GET /api/v1/busca
type BuscaQuery struct {
	Query   string `form:"q" binding:"required,max=2000"`
	Formato string `form:"formato" binding:"omitempty,oneof=json markdown html texto"`
}

// ProcessoURI identifica um processo pelo número CNJ na rota
type ProcessoURI struct {
	Numero string `uri:"numero" binding:"required,cnj"`
}

// TribunalURI identifica um tribunal pelo código na rota
type TribunalURI struct {
	Codigo string `uri:"codigo" binding:"required,max=20"`
}

// TribunalQuery filtra a lista de tribunais
type TribunalQuery struct {
	Nome string `form:"nome" binding:"max=200"`
	Ramo string `form:"ramo" binding:"omitempty,oneof=1 2 3 4 5 6"`
}

// BuscaCampoRequest são os parâmetros da busca em um campo de um tribunal
type BuscaCampoRequest struct {
	Campo string `form:"campo" binding:"required,max=100,campo" example:"classe.nome"`
	Query string `form:"q" binding:"required,max=2000" example:"habeas corpus"`
}

// ChatRequest é o corpo de POST /api/v1/chat
type ChatRequest struct {
	Message string `json:"message" binding:"required,max=4000" example:"Quais as movimentações do processo 0000001-70.2020.1.01.0000?"`
	// Remove a formatação markdown da resposta
	Plain bool `json:"plain" example:"false"`
}

// ChatResponse é a resposta do assistente
type ChatResponse struct {
	Response string `json:"response"`
	// Indica se a ferramenta do Datajud foi chamada
	ToolCalled bool `json:"tool_called"`
}

// ErrorResponse é o corpo padrão de erro da API
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}
