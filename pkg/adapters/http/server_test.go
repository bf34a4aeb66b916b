package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/internal/presentation/format"
	"github.com/aretw0/arbor/pkg/adapters/memory"
	"github.com/aretw0/arbor/pkg/dom"
	"github.com/aretw0/arbor/pkg/observability"
	"github.com/aretw0/arbor/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(opts ...Option) http.Handler {
	opts = append([]Option{WithLogger(logging.NewNop())}, opts...)
	return NewHandler(arbor.New(), opts...)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestParseMarkup_Formats(t *testing.T) {
	h := newTestHandler()
	markup := `<p id="x">Hi<br></p>`

	tests := []struct {
		target      string
		contentType string
		contains    string
	}{
		{"/parse", "application/json", `"tag":"p"`},
		{"/parse?format=json", "application/json", `"attributes":[{"name":"id","value":"x"}]`},
		{"/parse?format=text", "text/plain; charset=utf-8", "*Document*\n  <p id=x>\n    \"Hi\"\n    <br>\n"},
		{"/parse?format=mermaid", "text/plain; charset=utf-8", "graph TD"},
		{"/parse?format=html", "text/html; charset=utf-8", `<p id="x">Hi<br/></p>`},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := do(t, h, "POST", tt.target, markup)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, tt.contentType, w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}

func TestParseMarkup_JSONDecodes(t *testing.T) {
	w := do(t, newTestHandler(), "POST", "/parse", "<ul><li>a</li></ul>")
	require.Equal(t, http.StatusOK, w.Code)

	tree := dom.NewTree()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), tree))
	assert.Equal(t, 4, tree.Len())
}

func TestParseMarkup_Rejections(t *testing.T) {
	h := newTestHandler(WithMaxInputSize(8))

	t.Run("unknown format", func(t *testing.T) {
		w := do(t, h, "POST", "/parse?format=yaml", "<p>")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("too large", func(t *testing.T) {
		w := do(t, h, "POST", "/parse", "<p>way too long</p>")
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
	t.Run("invalid utf8", func(t *testing.T) {
		w := do(t, h, "POST", "/parse", "<p>\xff")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

type failingParser struct{}

func (failingParser) Parse(ctx context.Context, markup string) (*dom.Tree, error) {
	return nil, errors.New("shutting down")
}

func TestParseMarkup_ParserError(t *testing.T) {
	h := NewHandler(failingParser{}, WithLogger(logging.NewNop()))
	w := do(t, h, "POST", "/parse", "<p>")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestDocuments(t *testing.T) {
	source := memory.NewSource(
		ports.Document{ID: "guide/intro", Markup: "<h1>Intro</h1>"},
		ports.Document{ID: "index", Markup: "<p>home</p>"},
	)
	h := newTestHandler(WithSource(source))

	w := do(t, h, "GET", "/documents", "")
	require.Equal(t, http.StatusOK, w.Code)
	var ids []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ids))
	assert.Equal(t, []string{"guide/intro", "index"}, ids)

	w = do(t, h, "GET", "/documents/guide%2Fintro?format=text", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*Document*\n  <h1>\n    \"Intro\"\n", w.Body.String())

	w = do(t, h, "GET", "/documents/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDocuments_NotMountedWithoutSource(t *testing.T) {
	h := newTestHandler()
	for _, target := range []string{"/documents", "/documents/index", "/events"} {
		w := do(t, h, "GET", target, "")
		assert.Equal(t, http.StatusNotFound, w.Code, target)
	}
}

func TestSubscribeEvents_RequiresWatchableSource(t *testing.T) {
	h := newTestHandler(WithSource(staticSource{memory.NewSource()}))
	w := do(t, h, "GET", "/events", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

type staticSource struct{ ports.DocumentSource }

func TestSubscribeEvents(t *testing.T) {
	source := memory.NewSource()
	h := newTestHandler(WithSource(source))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/events", nil).WithContext(ctx)
	done := make(chan struct{})
	go func() {
		h.ServeHTTP(w, req)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond) // Wait for subscription to register
	source.Put(ports.Document{ID: "changed", Markup: "<p>"})
	time.Sleep(50 * time.Millisecond)

	cancel()
	<-done

	out := w.Body.String()
	assert.Contains(t, out, "event: ping")
	assert.Contains(t, out, "data: changed")
}

func TestHealthAndInfo(t *testing.T) {
	h := newTestHandler()

	w := do(t, h, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(t, h, "GET", "/info", "")
	require.Equal(t, http.StatusOK, w.Code)
	var info map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "arbor-http", info["app"])
	assert.Equal(t, "1.0.0", info["api_version"])
	assert.Equal(t, strings.TrimSpace(arbor.Version), info["version"])
}

func TestInfo_ReportsCacheEntries(t *testing.T) {
	cache := memory.NewCache()
	parser := arbor.New(arbor.WithCache(cache))
	h := NewHandler(parser, WithCache(cache), WithLogger(logging.NewNop()))

	do(t, h, "POST", "/parse", "<p>a</p>")
	do(t, h, "POST", "/parse", "<p>b</p>")
	do(t, h, "POST", "/parse", "<p>a</p>")

	w := do(t, h, "GET", "/info", "")
	require.Equal(t, http.StatusOK, w.Code)
	var info struct {
		CacheEntries *int `json:"cache_entries"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	require.NotNil(t, info.CacheEntries)
	assert.Equal(t, 2, *info.CacheEntries)
}

func TestOpenAPISpec(t *testing.T) {
	swagger, err := GetSwagger()
	require.NoError(t, err)
	require.NoError(t, swagger.Validate(context.Background()))
	assert.NotNil(t, swagger.Paths.Find("/parse"))
	assert.NotNil(t, swagger.Paths.Find("/documents/{id}"))

	w := do(t, newTestHandler(), "GET", "/openapi.yaml", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"operationId":"parseMarkup"`)
}

func TestFormatEnumMatchesRenderers(t *testing.T) {
	declared := []Format{FormatJson, FormatText, FormatMermaid, FormatHtml}
	require.Len(t, declared, len(format.All))
	for _, f := range declared {
		_, err := format.Parse(string(f))
		assert.NoError(t, err, f)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	h := NewHandler(arbor.New(arbor.WithLifecycleHooks(m.Hooks())),
		WithMetrics(reg), WithLogger(logging.NewNop()))

	do(t, h, "POST", "/parse", "<p>x</p>")

	w := do(t, h, "GET", "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `arbor_parses_total{cache="miss"} 1`)
}

func TestCORS(t *testing.T) {
	w := do(t, newTestHandler(), "OPTIONS", "/parse", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
