package search

import (
	"errors"

	"github.com/prefeitura-rio/app-busca-processos/internal/search/adapter"
	"github.com/prefeitura-rio/app-busca-processos/internal/search/query"
)

var (
	ErrMalformedIdentifier = query.ErrMalformedIdentifier
	ErrUnknownCourt        = query.ErrUnknownCourt
	ErrInvalidCourtCode    = adapter.ErrInvalidCourtCode
	ErrTransport           = adapter.ErrTransport
	ErrCourtNotFound       = errors.New("tribunal não encontrado")
)
