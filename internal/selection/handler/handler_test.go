package handler

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skinatlas/internal/facts"
	"skinatlas/internal/selection"
	"skinatlas/internal/selection/metrics"
	"skinatlas/pkg/testutil"
)

func newSelectionRouter(t *testing.T) (http.Handler, *metrics.Metrics) {
	t.Helper()
	store := facts.New([]facts.Entry{{
		Country: "Iceland",
		CountryRecord: facts.CountryRecord{
			AdaptationMechanisms: "Very light skin tones evolved to maximize vitamin D synthesis in low UV conditions.",
			HistoricalContext:    "Settled by Norse populations.",
			ModernChallenges:     "Long dark winters.",
			Exceptions:           "Immigrants from sunnier regions.",
			LifestyleImpact:      "Widespread vitamin D supplementation.",
		},
	}})
	m := metrics.New(prometheus.NewRegistry())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := New(selection.New(store), logger, m)
	r := chi.NewRouter()
	h.Register(r)
	return r, m
}

func TestHandleQuery(t *testing.T) {
	router, m := newSelectionRouter(t)

	t.Run("no country parameter is a null selection", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/selection"))
		testutil.AssertStatusOK(t, rr)

		resp := testutil.UnmarshalResponse[SelectionResponse](t, rr)
		assert.Equal(t, "", resp.Title)
		assert.Equal(t, "Click on a country to view adaptations.", resp.Body)
		assert.NotNil(t, resp.Sections)
		assert.Empty(t, resp.Sections)
	})

	t.Run("known country", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/selection?country=Iceland"))
		testutil.AssertStatusOK(t, rr)

		resp := testutil.UnmarshalResponse[SelectionResponse](t, rr)
		assert.Equal(t, "Adaptations in Iceland", resp.Title)
		assert.Contains(t, resp.Body,
			"Adaptation Mechanisms: Very light skin tones evolved to maximize vitamin D synthesis in low UV conditions.")
		require.Len(t, resp.Sections, 5)
		assert.Equal(t, "Impact of Lifestyle", resp.Sections[4].Label)
	})

	t.Run("unknown country is not an error", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/selection?country=Atlantis"))
		testutil.AssertStatusOK(t, rr)

		resp := testutil.UnmarshalResponse[SelectionResponse](t, rr)
		assert.Equal(t, "Adaptations in Atlantis", resp.Title)
		assert.Equal(t, 5, strings.Count(resp.Body, "No information available."))
	})

	t.Run("escaped labels are decoded", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/selection?country=Cote+d%27Ivoire"))
		resp := testutil.UnmarshalResponse[SelectionResponse](t, rr)
		assert.Equal(t, "Adaptations in Cote d'Ivoire", resp.Title)
	})

	assert.Equal(t, 1.0, promtestutil.ToFloat64(m.Selections.WithLabelValues("none")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(m.Selections.WithLabelValues("found")))
	assert.Equal(t, 2.0, promtestutil.ToFloat64(m.Selections.WithLabelValues("default")))
}

func TestHandleClick(t *testing.T) {
	router, _ := newSelectionRouter(t)

	t.Run("country body", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/selection", map[string]any{"country": "Iceland"})
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "title", "Adaptations in Iceland")
	})

	t.Run("null country", func(t *testing.T) {
		req := testutil.NewRequestWithBody(t, http.MethodPost, "/api/selection", `{"country": null}`)
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "body", "Click on a country to view adaptations.")
	})

	t.Run("empty body", func(t *testing.T) {
		req := testutil.NewRequestWithBody(t, http.MethodPost, "/api/selection", "")
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "title", "")
	})

	t.Run("plotly click event", func(t *testing.T) {
		req := testutil.NewRequestWithBody(t, http.MethodPost, "/api/selection",
			`{"points":[{"location":"ISL","hovertext":"Iceland"}]}`)
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "title", "Adaptations in Iceland")
	})

	t.Run("trailing content after the click event", func(t *testing.T) {
		req := testutil.NewRequestWithBody(t, http.MethodPost, "/api/selection", `{"country":"Iceland"} trailing`)
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
	})

	t.Run("malformed JSON", func(t *testing.T) {
		req := testutil.NewRequestWithBody(t, http.MethodPost, "/api/selection", `{"country":`)
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
	})
}

func TestHandleQuery_Idempotent(t *testing.T) {
	router, _ := newSelectionRouter(t)

	first := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/selection?country=Iceland"))
	second := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/selection?country=Iceland"))
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestHandleQuery_LogsRequestContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	store := facts.New([]facts.Entry{{Country: "Japan"}})
	h := New(selection.New(store), logger, nil)
	r := chi.NewRouter()
	h.Register(r)

	req := testutil.NewRequest(t, http.MethodGet, "/api/selection?country=Japan")
	req = testutil.WithRequestID(req, "req-42")
	req = testutil.WithRequestTime(req, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	rr := testutil.DoRequest(r, req)

	testutil.AssertStatusOK(t, rr)
	assert.Contains(t, buf.String(), "request_id=req-42")
	assert.Contains(t, buf.String(), "outcome=found")
	assert.Contains(t, buf.String(), "country=Japan")
}
