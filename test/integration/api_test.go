package integration

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/runlog/internal/api"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := zaptest.NewLogger(t)
	return api.NewRouter(api.NewHandler(), logger)
}

func performRequest(t *testing.T, handler http.Handler, method, target string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestIntegrationFlow(t *testing.T) {
	handler := newRouter(t)

	for i := 0; i < 3; i++ {
		rec := performRequest(t, handler, http.MethodGet, "/", nil, map[string]string{"X-Request-ID": "flow"})
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 from root, got %d", rec.Code)
		}
		if rec.Body.String() != "<h1>Hello FastAPI</h1>" {
			t.Fatalf("unexpected body %q", rec.Body.String())
		}
		if rec.Header().Get("X-Request-ID") != "flow" {
			t.Fatalf("expected request id to be echoed")
		}
	}

	rec := performRequest(t, handler, http.MethodGet, "/static/app.css", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for undefined route, got %d", rec.Code)
	}
}

func TestIntegrationServer(t *testing.T) {
	server := httptest.NewServer(newRouter(t))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	if buf.String() != "<h1>Hello FastAPI</h1>" {
		t.Fatalf("unexpected body %q", buf.String())
	}
}
