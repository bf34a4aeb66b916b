package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/pkg/adapters/memory"
	"github.com/aretw0/arbor/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordsParses(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	p := arbor.New(
		arbor.WithCache(memory.NewCache()),
		arbor.WithLifecycleHooks(m.Hooks()),
	)
	ctx := context.Background()
	markup := "<p>Hello</p>"

	_, err := p.Parse(ctx, markup)
	require.NoError(t, err)
	_, err = p.Parse(ctx, markup)
	require.NoError(t, err)

	expected := `
# HELP arbor_parses_total Total number of parse calls by cache outcome
# TYPE arbor_parses_total counter
arbor_parses_total{cache="hit"} 1
arbor_parses_total{cache="miss"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "arbor_parses_total"))

	expectedBytes := `
# HELP arbor_input_bytes_total Total markup bytes received
# TYPE arbor_input_bytes_total counter
arbor_input_bytes_total 24
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expectedBytes), "arbor_input_bytes_total"))

	expectedInFlight := `
# HELP arbor_parses_in_flight Parse calls currently running
# TYPE arbor_parses_in_flight gauge
arbor_parses_in_flight 0
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expectedInFlight), "arbor_parses_in_flight"))

	count, err := testutil.GatherAndCount(reg, "arbor_document_nodes", "arbor_parse_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 3, count, "one node histogram plus duration by hit and miss")
}

func TestMetrics_NilRegisterer(t *testing.T) {
	m := observability.NewMetrics(nil)
	hooks := m.Hooks()
	assert.NotNil(t, hooks.OnParseStart)
	assert.NotNil(t, hooks.OnParseDone)
}

func TestLoggingHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := arbor.New(arbor.WithLifecycleHooks(observability.LoggingHooks(logger)))
	_, err := p.Parse(context.Background(), "<a><b></b></a>")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "msg=parse_done")
	assert.Contains(t, out, "nodes=3")
	assert.Contains(t, out, "depth=2")
	assert.Contains(t, out, "cache_hit=false")
}
