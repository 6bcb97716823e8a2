package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordpace/internal/config"
	"wordpace/internal/dataset"
	"wordpace/internal/selector"
)

type fixedSource struct{ f float64 }

func (s fixedSource) Float64() float64 { return s.f }
func (s fixedSource) IntN(n int) int   { return n - 1 }

func testWords() *dataset.Dataset {
	return dataset.New([]dataset.ScoredWord{
		{Word: "house", Difficulty: 0.1, RawScore: 2.1},
		{Word: "garden", Difficulty: 0.35, RawScore: 3.3},
		{Word: "planet", Difficulty: 0.5, RawScore: 4.4},
		{Word: "quantum", Difficulty: 0.8, RawScore: 6.9},
	})
}

func newTestServer(t *testing.T, words *dataset.Dataset, src selector.RandomSource) *httptest.Server {
	t.Helper()
	h := NewRouter(RouterDeps{
		Words:    words,
		Selector: selector.New(src),
		CORS:     config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,OPTIONS"},
		Version:  "test",
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestNextWordServesBandWord(t *testing.T) {
	srv := newTestServer(t, testWords(), fixedSource{f: 0.99})

	resp := get(t, srv.URL+"/game/next_word?mode=hard")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var sel selector.WordSelection
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sel))
	assert.Equal(t, selector.WordSelection{Word: "quantum", Difficulty: 0.8, TimeLimit: 5.0}, sel)
}

func TestNextWordMemoryTest(t *testing.T) {
	srv := newTestServer(t, testWords(), fixedSource{f: 0.0})

	resp := get(t, srv.URL+"/game/next_word?mode=easy&seen_ids=quantum,%20planet,,garden,house")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "house", body["word"])
	assert.Equal(t, true, body["is_memory_test"])
	assert.Equal(t, 3.2, body["time_limit"])
}

func TestNextWordDefaultsToMedium(t *testing.T) {
	srv := newTestServer(t, testWords(), fixedSource{f: 0.99})

	resp := get(t, srv.URL+"/game/next_word")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sel selector.WordSelection
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sel))
	assert.Equal(t, "planet", sel.Word)
	assert.False(t, sel.IsMemoryTest)
}

func TestNextWordEmptyCorpus(t *testing.T) {
	srv := newTestServer(t, dataset.New(nil), nil)

	resp := get(t, srv.URL+"/game/next_word?mode=easy")
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "EMPTY_CORPUS", body.Error.Code)
	assert.NotEmpty(t, body.Error.Message)
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t, testWords(), nil)

	assert.Equal(t, http.StatusOK, get(t, srv.URL+"/live").StatusCode)
	assert.Equal(t, http.StatusOK, get(t, srv.URL+"/ready").StatusCode)

	resp := get(t, srv.URL+"/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "test", body.Version)
	require.NotNil(t, body.Words)
	assert.Equal(t, 4, *body.Words)
	assert.False(t, body.Timestamp.IsZero())
}

func TestReadyWithoutWords(t *testing.T) {
	srv := newTestServer(t, dataset.New(nil), nil)

	assert.Equal(t, http.StatusOK, get(t, srv.URL+"/live").StatusCode)
	assert.Equal(t, http.StatusServiceUnavailable, get(t, srv.URL+"/ready").StatusCode)
	assert.Equal(t, http.StatusServiceUnavailable, get(t, srv.URL+"/health").StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, testWords(), nil)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/game/next_word", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://game.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRecovererTurnsPanicInto500(t *testing.T) {
	srv := newTestServer(t, testWords(), panickySource{})

	resp := get(t, srv.URL+"/game/next_word?mode=easy")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

type panickySource struct{}

func (panickySource) Float64() float64 { panic("boom") }
func (panickySource) IntN(int) int     { panic("boom") }
