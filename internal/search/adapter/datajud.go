package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/prefeitura-rio/app-busca-processos/internal/search/court"
	"github.com/prefeitura-rio/app-busca-processos/internal/search/query"
)

const (
	// DefaultBaseURL é o endereço da API pública do Datajud (CNJ)
	DefaultBaseURL = "https://api-publica.datajud.cnj.jus.br"
	// DefaultTimeout é o tempo máximo de uma requisição, sem retentativas
	DefaultTimeout = 30 * time.Second

	apiKeyHeader = "X-API-Key"
	maxErrorBody = 4096
)

var (
	ErrInvalidCourtCode = errors.New("código de tribunal inválido")
	ErrTransport        = errors.New("falha na comunicação com o Datajud")
)

// RawResponse é o JSON da API, sem tipagem (formato Elasticsearch)
type RawResponse map[string]interface{}

// TransportError descreve uma falha de rede, timeout ou status HTTP não-2xx.
// errors.Is(err, ErrTransport) é verdadeiro para qualquer TransportError.
type TransportError struct {
	URL        string
	StatusCode int // zero quando não houve resposta
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 && e.Err == nil {
		return fmt.Sprintf("%s: status %d em %s: %s", ErrTransport, e.StatusCode, e.URL, e.Body)
	}
	return fmt.Sprintf("%s: %s: %v", ErrTransport, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// DatajudConfig configuração do adapter Datajud
type DatajudConfig struct {
	BaseURL string
	// APIKey é enviada no header X-API-Key quando não vazia
	APIKey  string
	Timeout time.Duration
}

// DatajudAdapter envia consultas ao endpoint de cada tribunal
type DatajudAdapter struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	directory  *court.Directory
	logger     *zap.Logger
}

// NewDatajudAdapter cria um novo adapter para o Datajud
func NewDatajudAdapter(directory *court.Directory, cfg DatajudConfig, logger *zap.Logger) *DatajudAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &DatajudAdapter{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		directory:  directory,
		logger:     logger,
	}
}

// Send executa a consulta no endpoint do tribunal e retorna o JSON bruto
func (a *DatajudAdapter) Send(ctx context.Context, desc court.Descriptor, q query.SearchQuery) (RawResponse, error) {
	endpoint, ok := a.directory.EndpointFor(desc.Code)
	if !ok || endpoint != desc.Endpoint {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCourtCode, desc.Code)
	}

	ctx, span := otel.Tracer("datajud").Start(ctx, "datajud.search")
	defer span.End()
	span.SetAttributes(
		attribute.String("datajud.court", desc.Code),
		attribute.String("datajud.query_kind", string(q.Kind)),
	)

	body, err := json.Marshal(q)
	if err != nil {
		span.SetStatus(codes.Error, "serialização da consulta")
		return nil, fmt.Errorf("erro ao serializar consulta: %w", err)
	}

	url := fmt.Sprintf("%s/%s/_search", a.baseURL, endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if a.apiKey != "" {
		req.Header.Set(apiKeyHeader, a.apiKey)
	}

	a.logger.Debug("enviando consulta ao Datajud",
		zap.String("url", url),
		zap.ByteString("body", body))

	start := time.Now()
	resp, err := a.httpClient.Do(req)
	if err != nil {
		a.logger.Error("erro na requisição ao Datajud", zap.String("url", url), zap.Error(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "requisição falhou")
		return nil, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	span.SetAttributes(
		attribute.Int("http.status_code", resp.StatusCode),
		attribute.Int64("datajud.duration_ms", time.Since(start).Milliseconds()),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		a.logger.Error("Datajud respondeu com erro",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode))
		span.SetStatus(codes.Error, "status não-2xx")
		return nil, &TransportError{URL: url, StatusCode: resp.StatusCode, Body: string(snippet)}
	}

	// números chegam como json.Number para não perder precisão em valorCausa
	var raw RawResponse
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "resposta inválida")
		return nil, &TransportError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("erro ao decodificar resposta: %w", err),
		}
	}

	span.SetStatus(codes.Ok, "")
	return raw, nil
}
