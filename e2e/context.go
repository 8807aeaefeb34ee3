// Package e2e runs the feature scenarios under features/ against the HTTP
// surface. Scenarios hit E2E_BASE_URL when set, otherwise an in-process
// server built from the bundled dataset.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"time"

	"skinatlas/internal/facts"
	"skinatlas/internal/platform/metrics"
	"skinatlas/internal/regions"
	"skinatlas/internal/selection"
	selectionhandler "skinatlas/internal/selection/handler"
	selectionmetrics "skinatlas/internal/selection/metrics"
	httptransport "skinatlas/internal/transport/http"
	"skinatlas/internal/web"
)

// TestContext holds the HTTP client and the last response of a scenario.
type TestContext struct {
	BaseURL      string
	HTTPClient   *http.Client
	LastResponse *http.Response
	LastBody     []byte

	server *httptest.Server
}

// Start resets the scenario state and targets E2E_BASE_URL or a fresh
// in-process server.
func (tc *TestContext) Start(ctx context.Context) error {
	tc.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	tc.LastResponse = nil
	tc.LastBody = nil
	if base := os.Getenv("E2E_BASE_URL"); base != "" {
		tc.BaseURL = base
		return nil
	}

	store, err := facts.Load(ctx, facts.EmbeddedSource{})
	if err != nil {
		return err
	}
	mapRegions := regions.Default()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New()
	svc := selection.New(store)

	tc.server = httptest.NewServer(httptransport.NewRouter(logger, m,
		httptransport.NewCatalogHandler(store, mapRegions),
		selectionhandler.New(svc, logger, selectionmetrics.New(m.Registry())),
		web.New(svc, mapRegions, "", logger),
	))
	tc.BaseURL = tc.server.URL
	return nil
}

// Close stops the in-process server, if any.
func (tc *TestContext) Close() {
	if tc.server != nil {
		tc.server.Close()
		tc.server = nil
	}
}

// GET issues a GET request; query values are appended to path.
func (tc *TestContext) GET(path string, query url.Values) error {
	target := tc.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	return tc.do(req)
}

// POST issues a POST request with a JSON body. A string body is sent raw.
func (tc *TestContext) POST(path string, body interface{}) error {
	var payload []byte
	switch b := body.(type) {
	case string:
		payload = []byte(b)
	default:
		var err error
		if payload, err = json.Marshal(b); err != nil {
			return err
		}
	}
	req, err := http.NewRequest(http.MethodPost, tc.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return tc.do(req)
}

func (tc *TestContext) do(req *http.Request) error {
	resp, err := tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	tc.LastResponse = resp
	tc.LastBody = body
	return nil
}

// GetLastResponseStatus returns the status code of the last response.
func (tc *TestContext) GetLastResponseStatus() int {
	if tc.LastResponse == nil {
		return 0
	}
	return tc.LastResponse.StatusCode
}

// GetLastResponseBody returns the raw body of the last response.
func (tc *TestContext) GetLastResponseBody() []byte {
	return tc.LastBody
}

// GetResponseField decodes the last body as a JSON object and returns one field.
func (tc *TestContext) GetResponseField(field string) (interface{}, error) {
	var data map[string]interface{}
	if err := json.Unmarshal(tc.LastBody, &data); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w", err)
	}
	v, ok := data[field]
	if !ok {
		return nil, fmt.Errorf("field %q not found in response", field)
	}
	return v, nil
}
