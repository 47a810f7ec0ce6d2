package search

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/prefeitura-rio/app-busca-processos/internal/search/adapter"
	"github.com/prefeitura-rio/app-busca-processos/internal/search/court"
	"github.com/prefeitura-rio/app-busca-processos/internal/search/query"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type sentQuery struct {
	court string
	query query.SearchQuery
}

// fakeSearcher registra as consultas e devolve uma resposta fixa
type fakeSearcher struct {
	mu   sync.Mutex
	sent []sentQuery
	raw  adapter.RawResponse
	err  error
}

func (f *fakeSearcher) Send(_ context.Context, desc court.Descriptor, q query.SearchQuery) (adapter.RawResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentQuery{court: desc.Code, query: q})
	if f.err != nil {
		return nil, f.err
	}
	return f.raw, nil
}

func oneHit(number string) adapter.RawResponse {
	return adapter.RawResponse{
		"hits": map[string]interface{}{
			"total": map[string]interface{}{"value": float64(1)},
			"hits": []interface{}{
				map[string]interface{}{"_source": map[string]interface{}{"numeroProcesso": number}},
			},
		},
	}
}

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T, s Searcher, opts ...query.RouterOption) *Engine {
	t.Helper()
	router, err := query.NewRouter(court.Default(), opts...)
	require.NoError(t, err)
	e := NewEngine(router, s, court.Default(), nil)
	e.now = func() time.Time { return fixedNow }
	return e
}

func TestResolveWithIdentifier(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantID    string
		wantCourt string
	}{
		{"federal", "Processo 0000001-70.2020.1.01.0000", "0000001-70.2020.1.01.0000", "trf1"},
		{"estadual", "0000001-70.2020.2.26.0000", "0000001-70.2020.2.26.0000", "tjsp"},
		{"trabalho", "ver 0000001-70.2020.3.05.0000 agora", "0000001-70.2020.3.05.0000", "trt5"},
		{"eleitoral", "0000001-70.2020.4.11.0000", "0000001-70.2020.4.11.0000", "tre-mg"},
		{"superior", "0000001-70.2020.6.00.0000", "0000001-70.2020.6.00.0000", "stf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSearcher{raw: oneHit(tt.wantID)}
			e := newTestEngine(t, fake)

			result, err := e.Resolve(context.Background(), tt.text)
			require.NoError(t, err)

			require.Len(t, fake.sent, 1)
			assert.Equal(t, tt.wantCourt, fake.sent[0].court)
			assert.Equal(t, query.BuildExact(tt.wantID), fake.sent[0].query)

			assert.Equal(t, 1, result.TotalHits)
			assert.Equal(t, tt.text, result.Metadata.Query)
			require.NotNil(t, result.Metadata.ProcessNumber)
			assert.Equal(t, tt.wantID, *result.Metadata.ProcessNumber)
			assert.Equal(t, tt.wantCourt, result.Metadata.Court)
			assert.Equal(t, fixedNow, result.Metadata.Timestamp)
		})
	}
}

func TestResolveFreeText(t *testing.T) {
	fake := &fakeSearcher{raw: adapter.RawResponse{}}
	e := newTestEngine(t, fake)

	result, err := e.Resolve(context.Background(), "habeas corpus")
	require.NoError(t, err)

	require.Len(t, fake.sent, 1)
	assert.Equal(t, "stf", fake.sent[0].court)
	sent := fake.sent[0].query
	assert.Equal(t, query.KindMultiField, sent.Kind)
	assert.Equal(t, "habeas corpus", sent.Value)
	assert.Equal(t, query.DefaultFields, sent.Fields)
	assert.Equal(t, query.MaxResults, sent.Limit)

	assert.Nil(t, result.Metadata.ProcessNumber)
	assert.Equal(t, "stf", result.Metadata.Court)
	assert.Equal(t, 0, result.TotalHits)
	assert.NotNil(t, result.Records)
}

func TestResolveCustomDefaultCourt(t *testing.T) {
	fake := &fakeSearcher{raw: adapter.RawResponse{}}
	e := newTestEngine(t, fake, query.WithDefaultCourt("tjrj"))

	result, err := e.Resolve(context.Background(), "usucapião")
	require.NoError(t, err)
	assert.Equal(t, "tjrj", fake.sent[0].court)
	assert.Equal(t, "tjrj", result.Metadata.Court)
}

func TestResolveUnknownCourt(t *testing.T) {
	fake := &fakeSearcher{}
	e := newTestEngine(t, fake)

	_, err := e.Resolve(context.Background(), "0000001-70.2020.1.99.0000")
	assert.ErrorIs(t, err, ErrUnknownCourt)
	assert.Empty(t, fake.sent)
}

func TestResolveTransportError(t *testing.T) {
	fake := &fakeSearcher{err: &adapter.TransportError{URL: "http://x", StatusCode: 503}}
	e := newTestEngine(t, fake)

	result, err := e.Resolve(context.Background(), "habeas corpus")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestLookupProcess(t *testing.T) {
	fake := &fakeSearcher{raw: oneHit("0000001-70.2020.2.19.0001")}
	e := newTestEngine(t, fake)

	result, err := e.LookupProcess(context.Background(), " 0000001-70.2020.2.19.0001 ")
	require.NoError(t, err)
	assert.Equal(t, "tjrj", fake.sent[0].court)
	assert.Equal(t, query.KindExact, fake.sent[0].query.Kind)
	assert.Equal(t, "0000001-70.2020.2.19.0001", result.Records[0].Number)

	_, err = e.LookupProcess(context.Background(), "processo 123")
	assert.ErrorIs(t, err, ErrMalformedIdentifier)
	assert.Len(t, fake.sent, 1)
}

func TestSearchField(t *testing.T) {
	fake := &fakeSearcher{raw: adapter.RawResponse{}}
	e := newTestEngine(t, fake)

	result, err := e.SearchField(context.Background(), "TJRJ", "classe.nome", "Apelação")
	require.NoError(t, err)
	assert.Equal(t, "tjrj", fake.sent[0].court)
	assert.Equal(t, query.BuildSingleField("Apelação", "classe.nome"), fake.sent[0].query)
	assert.Equal(t, "tjrj", result.Metadata.Court)

	_, err = e.SearchField(context.Background(), "tjxx", "classe.nome", "Apelação")
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestCourts(t *testing.T) {
	e := newTestEngine(t, &fakeSearcher{})
	assert.Len(t, e.Courts(), court.Default().Len())

	desc, err := e.Court("STJ")
	require.NoError(t, err)
	assert.Equal(t, "api_publica_stj", desc.Endpoint)

	_, err = e.Court("nada")
	assert.True(t, errors.Is(err, ErrCourtNotFound))
	assert.Equal(t, "stf", e.DefaultCourt().Code)
}

func TestResolveConcurrent(t *testing.T) {
	fake := &fakeSearcher{raw: adapter.RawResponse{}}
	e := newTestEngine(t, fake)

	inputs := []string{
		"0000001-70.2020.1.01.0000",
		"0000001-70.2020.2.26.0000",
		"habeas corpus",
		"0000001-70.2020.3.02.0000",
	}

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(text string) {
			defer wg.Done()
			_, err := e.Resolve(context.Background(), text)
			assert.NoError(t, err)
		}(inputs[i%len(inputs)])
	}
	wg.Wait()

	assert.Len(t, fake.sent, 40)
}

func TestResolveEndToEnd(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"hits":{"total":{"value":1},"hits":[{"_source":{
			"numeroProcesso":"0000001-70.2020.1.02.0000","classe":{"nome":"Apelação Cível"}}}]}}`)
	}))
	defer server.Close()

	directory := court.Default()
	router, err := query.NewRouter(directory)
	require.NoError(t, err)
	a := adapter.NewDatajudAdapter(directory, adapter.DatajudConfig{BaseURL: server.URL}, nil)
	e := NewEngine(router, a, directory, nil)

	result, err := e.Resolve(context.Background(), "andamento do 0000001-70.2020.1.02.0000")
	require.NoError(t, err)

	assert.Equal(t, "/api_publica_trf2/_search", gotPath)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "Apelação Cível", result.Records[0].Class)
	assert.Equal(t, "N/A", result.Records[0].Subject)
	assert.Equal(t, "trf2", result.Metadata.Court)
}
