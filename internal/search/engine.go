package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/prefeitura-rio/app-busca-processos/internal/models"
	"github.com/prefeitura-rio/app-busca-processos/internal/search/adapter"
	"github.com/prefeitura-rio/app-busca-processos/internal/search/court"
	"github.com/prefeitura-rio/app-busca-processos/internal/search/query"
	"github.com/prefeitura-rio/app-busca-processos/internal/search/response"
)

// Searcher envia uma consulta ao endpoint de um tribunal
type Searcher interface {
	Send(ctx context.Context, desc court.Descriptor, q query.SearchQuery) (adapter.RawResponse, error)
}

// Engine é o pipeline de consulta: roteamento, consulta e normalização
type Engine struct {
	router    *query.Router
	searcher  Searcher
	directory *court.Directory
	logger    *zap.Logger
	now       func() time.Time
}

// NewEngine cria um novo motor de consulta
func NewEngine(router *query.Router, searcher Searcher, directory *court.Directory, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		router:    router,
		searcher:  searcher,
		directory: directory,
		logger:    logger,
		now:       time.Now,
	}
}

// Resolve executa uma consulta a partir de texto livre ou de um número CNJ.
// Sem número CNJ a busca é multi-campo no tribunal padrão.
func (e *Engine) Resolve(ctx context.Context, text string) (*models.NormalizedResult, error) {
	ctx, span := otel.Tracer("search").Start(ctx, "search.resolve")
	defer span.End()

	target, err := e.router.Resolve(text)
	if err != nil {
		e.fail(span, err)
		return nil, err
	}

	var q query.SearchQuery
	if target.HasIdentifier() {
		q = query.BuildExact(target.Identifier)
	} else {
		q = query.BuildMultiField(text)
	}

	return e.execute(ctx, span, text, target, q)
}

// LookupProcess busca um processo pelo número CNJ exato
func (e *Engine) LookupProcess(ctx context.Context, number string) (*models.NormalizedResult, error) {
	ctx, span := otel.Tracer("search").Start(ctx, "search.lookup_process")
	defer span.End()

	number = strings.TrimSpace(number)
	if !query.IsIdentifier(number) {
		err := fmt.Errorf("%w: %q", ErrMalformedIdentifier, number)
		e.fail(span, err)
		return nil, err
	}

	target, err := e.router.ForIdentifier(number)
	if err != nil {
		e.fail(span, err)
		return nil, err
	}

	return e.execute(ctx, span, number, target, query.BuildExact(number))
}

// SearchField busca o texto em um único campo do índice de um tribunal
func (e *Engine) SearchField(ctx context.Context, courtCode, field, text string) (*models.NormalizedResult, error) {
	ctx, span := otel.Tracer("search").Start(ctx, "search.search_field")
	defer span.End()

	desc, ok := e.directory.ByCode(strings.ToLower(strings.TrimSpace(courtCode)))
	if !ok {
		err := fmt.Errorf("%w: %q", ErrCourtNotFound, courtCode)
		e.fail(span, err)
		return nil, err
	}

	target := query.Target{Court: desc, Kind: query.KindSingleField}
	return e.execute(ctx, span, text, target, query.BuildSingleField(text, field))
}

// Courts lista os tribunais conhecidos
func (e *Engine) Courts() []court.Descriptor {
	return e.directory.All()
}

// Court retorna o tribunal pelo código
func (e *Engine) Court(code string) (court.Descriptor, error) {
	desc, ok := e.directory.ByCode(strings.ToLower(strings.TrimSpace(code)))
	if !ok {
		return court.Descriptor{}, fmt.Errorf("%w: %q", ErrCourtNotFound, code)
	}
	return desc, nil
}

// DefaultCourt é o tribunal usado para texto livre
func (e *Engine) DefaultCourt() court.Descriptor {
	return e.router.DefaultCourt()
}

func (e *Engine) execute(ctx context.Context, span trace.Span, text string, target query.Target, q query.SearchQuery) (*models.NormalizedResult, error) {
	span.SetAttributes(
		attribute.String("search.court", target.Court.Code),
		attribute.String("search.kind", string(q.Kind)),
		attribute.Bool("search.has_identifier", target.HasIdentifier()),
	)

	start := time.Now()
	raw, err := e.searcher.Send(ctx, target.Court, q)
	if err != nil {
		e.fail(span, err)
		e.logger.Warn("consulta ao Datajud falhou",
			zap.String("court", target.Court.Code),
			zap.String("kind", string(q.Kind)),
			zap.Error(err))
		return nil, err
	}

	result := response.Normalize(raw)
	result.Metadata = models.QueryMetadata{
		Query:     text,
		Court:     target.Court.Code,
		Timestamp: e.now(),
	}
	if target.HasIdentifier() {
		id := target.Identifier
		result.Metadata.ProcessNumber = &id
	}

	span.SetAttributes(attribute.Int("search.total_hits", result.TotalHits))
	span.SetStatus(codes.Ok, "")

	e.logger.Info("consulta concluída",
		zap.String("court", target.Court.Code),
		zap.String("kind", string(q.Kind)),
		zap.Int("total_hits", result.TotalHits),
		zap.Int("records", len(result.Records)),
		zap.Duration("duration", time.Since(start)))

	return &result, nil
}

func (e *Engine) fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
