package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prefeitura-rio/app-busca-processos/internal/search/court"
)

func newTestRouter(t *testing.T, opts ...RouterOption) *Router {
	t.Helper()
	r, err := NewRouter(court.Default(), opts...)
	require.NoError(t, err)
	return r
}

func TestRouterResolveIdentifier(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name      string
		input     string
		wantCourt string
	}{
		{"Justiça Federal", "0000001-70.2020.1.01.0000", "trf1"},
		{"Justiça Estadual", "consultar 0000002-80.2020.2.26.0000 por favor", "tjsp"},
		{"Justiça do Trabalho", "0000003-90.2020.3.05.0000", "trt5"},
		{"Justiça Eleitoral", "0000004-10.2020.4.11.0000", "tre-mg"},
		{"Supremo", "0000005-20.2020.6.00.0000", "stf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := r.Resolve(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCourt, target.Court.Code)
			assert.Equal(t, KindExact, target.Kind)
			assert.True(t, target.HasIdentifier())
		})
	}
}

func TestRouterResolveFreeText(t *testing.T) {
	r := newTestRouter(t)

	target, err := r.Resolve("free text with no identifier")
	require.NoError(t, err)
	assert.Equal(t, "stf", target.Court.Code)
	assert.Equal(t, KindMultiField, target.Kind)
	assert.False(t, target.HasIdentifier())
}

func TestRouterUnknownCourt(t *testing.T) {
	r := newTestRouter(t)

	tests := []string{
		"0000001-70.2020.9.00.0000",
		"0000001-70.2020.1.99.0000",
		"0000001-70.2020.5.01.0000",
	}
	for _, input := range tests {
		_, err := r.Resolve(input)
		assert.ErrorIs(t, err, ErrUnknownCourt, input)
	}
}

func TestRouterForIdentifierMalformed(t *testing.T) {
	r := newTestRouter(t)

	_, err := r.ForIdentifier("0000001-70-2020-1-01-0000")
	assert.ErrorIs(t, err, ErrMalformedIdentifier)

	_, err = r.ForIdentifier("1.2.3.4.5.6")
	assert.ErrorIs(t, err, ErrMalformedIdentifier)
}

func TestRouterDefaultCourtOverride(t *testing.T) {
	r := newTestRouter(t, WithDefaultCourt("tjrj"))

	target, err := r.Resolve("dano moral")
	require.NoError(t, err)
	assert.Equal(t, "tjrj", target.Court.Code)
	assert.Equal(t, "tjrj", r.DefaultCourt().Code)
}

func TestNewRouterRejectsUnknownDefault(t *testing.T) {
	_, err := NewRouter(court.Default(), WithDefaultCourt("stm"))
	assert.Error(t, err)
}
