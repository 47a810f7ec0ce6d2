package query

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/prefeitura-rio/app-busca-processos/internal/search/court"
)

var (
	ErrMalformedIdentifier = errors.New("número de processo mal formado")
	ErrUnknownCourt        = errors.New("não foi possível identificar o tribunal do processo")
)

// DefaultCourtCode é o tribunal usado quando a consulta não tem número CNJ.
// É uma simplificação: texto livre pode se referir a qualquer tribunal.
const DefaultCourtCode = "stf"

// Target é o destino resolvido para uma consulta
type Target struct {
	Identifier string // vazio quando não há número CNJ
	Court      court.Descriptor
	Kind       Kind
}

// HasIdentifier indica se o roteamento partiu de um número CNJ
func (t Target) HasIdentifier() bool {
	return t.Identifier != ""
}

// Router decide tribunal e variante de consulta a partir do texto
type Router struct {
	directory    *court.Directory
	defaultCourt court.Descriptor
	logger       *zap.Logger
}

// RouterOption configura o Router
type RouterOption func(*routerOptions)

type routerOptions struct {
	defaultCourt string
	logger       *zap.Logger
}

// WithDefaultCourt troca o tribunal usado para texto livre
func WithDefaultCourt(code string) RouterOption {
	return func(o *routerOptions) {
		if code != "" {
			o.defaultCourt = code
		}
	}
}

// WithLogger define o logger do Router
func WithLogger(logger *zap.Logger) RouterOption {
	return func(o *routerOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewRouter cria um Router. Falha se o tribunal padrão não existir no diretório.
func NewRouter(directory *court.Directory, opts ...RouterOption) (*Router, error) {
	o := routerOptions{
		defaultCourt: DefaultCourtCode,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	def, ok := directory.ByCode(o.defaultCourt)
	if !ok {
		return nil, fmt.Errorf("tribunal padrão desconhecido: %s", o.defaultCourt)
	}

	return &Router{
		directory:    directory,
		defaultCourt: def,
		logger:       o.logger,
	}, nil
}

// Resolve extrai o número CNJ (se houver) e escolhe tribunal e variante
func (r *Router) Resolve(text string) (Target, error) {
	identifier, found := Extract(text)
	if !found {
		r.logger.Debug("nenhum número de processo encontrado, usando tribunal padrão",
			zap.String("court", r.defaultCourt.Code))
		return Target{
			Court: r.defaultCourt,
			Kind:  KindMultiField,
		}, nil
	}

	r.logger.Debug("número de processo extraído", zap.String("identifier", identifier))
	return r.ForIdentifier(identifier)
}

// ForIdentifier roteia um número CNJ já isolado para a busca exata
func (r *Router) ForIdentifier(identifier string) (Target, error) {
	segments := Segments(identifier)
	if len(segments) != 5 {
		r.logger.Warn("formato de número de processo inválido",
			zap.String("identifier", identifier),
			zap.Int("segments", len(segments)))
		return Target{}, fmt.Errorf("%w: %s", ErrMalformedIdentifier, identifier)
	}

	justiceType, courtID := segments[2], segments[3]
	desc, ok := r.directory.Lookup(justiceType, courtID)
	if !ok {
		r.logger.Warn("tribunal não identificado",
			zap.String("identifier", identifier),
			zap.String("justice", justiceType),
			zap.String("court_id", courtID))
		return Target{}, fmt.Errorf("%w: %s", ErrUnknownCourt, identifier)
	}

	return Target{
		Identifier: identifier,
		Court:      desc,
		Kind:       KindExact,
	}, nil
}

// DefaultCourt retorna o tribunal usado para texto livre
func (r *Router) DefaultCourt() court.Descriptor {
	return r.defaultCourt
}
