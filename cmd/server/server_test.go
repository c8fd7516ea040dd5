package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/codr1/qlick/internal/config"
	"github.com/codr1/qlick/internal/models"
	"github.com/codr1/qlick/internal/ratelimit"
	"github.com/codr1/qlick/internal/testutil"
	"github.com/codr1/qlick/internal/themeprovider"
)

const testConfig = `
app:
  name: qlick
  environment: test
  port: 8080
  timezone: UTC
database:
  driver: sqlite
  filename: unused.db
features:
  enable_metrics: true
`

// The handler packages keep their dependencies in package state, so the whole
// server is exercised from a single test.
func TestServerRoutes(t *testing.T) {
	cfg, err := config.Parse([]byte(testConfig))
	if err != nil {
		t.Fatalf("config.Parse() error = %v", err)
	}
	database := testutil.NewTestDB(t)
	catalog, err := models.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	provider := themeprovider.New(catalog, themeprovider.NewStoreSource(database.Queries, cfg.Location()))
	limiter := ratelimit.New(&ratelimit.Config{RequestsPerSecond: 0.001, Burst: 3})
	t.Cleanup(limiter.Close)

	server := httptest.NewServer(newServer(cfg, serverDeps{
		database: database,
		catalog:  catalog,
		provider: provider,
		limiter:  limiter,
	}).Handler)
	t.Cleanup(server.Close)

	today := models.Today(time.Now(), cfg.Location())

	t.Run("health", func(t *testing.T) {
		status, body := doRequest(t, server, http.MethodGet, "/health", "")
		if status != http.StatusOK || body != "OK" {
			t.Fatalf("GET /health = %d %q", status, body)
		}
	})

	t.Run("current_theme_defaults", func(t *testing.T) {
		status, body := doRequest(t, server, http.MethodGet, "/current-theme", "")
		if status != http.StatusOK {
			t.Fatalf("GET /current-theme status = %d", status)
		}
		if theme := decodeTheme(t, body); theme != models.DefaultThemeName {
			t.Fatalf("theme = %q, want Default", theme)
		}
	})

	t.Run("schedule_then_resolve", func(t *testing.T) {
		payload := `{"themeName":"Diwali","startDate":"` + today + `","endDate":"` + today + `"}`
		status, body := doRequest(t, server, http.MethodPost, "/schedule-theme", payload)
		if status != http.StatusCreated {
			t.Fatalf("POST /schedule-theme = %d %q", status, body)
		}

		_, body = doRequest(t, server, http.MethodGet, "/current-theme", "")
		if theme := decodeTheme(t, body); theme != "Diwali" {
			t.Fatalf("theme = %q, want Diwali", theme)
		}

		_, page := doRequest(t, server, http.MethodGet, "/", "")
		if !strings.Contains(page, `data-theme="Diwali"`) {
			t.Fatalf("storefront not rendered with Diwali theme")
		}
	})

	t.Run("foods_round_trip", func(t *testing.T) {
		status, body := doRequest(t, server, http.MethodPost, "/add-food", `{"name":"Paneer Tikka","price":11,"image":"https://example.com/p.jpg"}`)
		if status != http.StatusCreated {
			t.Fatalf("POST /add-food = %d %q", status, body)
		}
		_, body = doRequest(t, server, http.MethodGet, "/foods", "")
		if !strings.Contains(body, "Paneer Tikka") {
			t.Fatalf("GET /foods missing new item: %s", body)
		}
	})

	t.Run("order", func(t *testing.T) {
		status, body := doRequest(t, server, http.MethodPost, "/order", `{"foodId":1}`)
		if status != http.StatusOK || !strings.Contains(body, "Order Success") {
			t.Fatalf("POST /order = %d %q", status, body)
		}
	})

	t.Run("unknown_path", func(t *testing.T) {
		status, _ := doRequest(t, server, http.MethodGet, "/nope", "")
		if status != http.StatusNotFound {
			t.Fatalf("GET /nope = %d, want 404", status)
		}
	})

	t.Run("metrics", func(t *testing.T) {
		status, body := doRequest(t, server, http.MethodGet, "/metrics", "")
		if status != http.StatusOK {
			t.Fatalf("GET /metrics = %d", status)
		}
		if !strings.Contains(body, `qlick_http_requests_total{method="GET",route="GET /health",status="200"}`) {
			t.Fatalf("metrics missing health request counter")
		}
	})

	t.Run("admin_writes_rate_limited", func(t *testing.T) {
		// Two of the three tokens were spent above.
		doRequest(t, server, http.MethodPost, "/add-food", `{"name":"Lassi","price":3}`)
		status, _ := doRequest(t, server, http.MethodPost, "/add-food", `{"name":"Kulfi","price":4}`)
		if status != http.StatusTooManyRequests {
			t.Fatalf("POST /add-food over limit = %d, want 429", status)
		}
	})
}

func doRequest(t *testing.T, server *httptest.Server, method, path, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, server.URL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := server.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(data)
}

func decodeTheme(t *testing.T, body string) string {
	t.Helper()
	var resp struct {
		Theme string `json:"theme"`
	}
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("decode theme response %q: %v", body, err)
	}
	return resp.Theme
}

func TestNewLimiterHonorsTrustProxy(t *testing.T) {
	if newLimiter(config.RateLimitConfig{}) != nil {
		t.Fatal("newLimiter() with rps 0 should disable limiting")
	}

	tests := []struct {
		name       string
		trustProxy bool
		wantSecond int
	}{
		{name: "direct", trustProxy: false, wantSecond: http.StatusTooManyRequests},
		{name: "behind_proxy", trustProxy: true, wantSecond: http.StatusOK},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			limiter := newLimiter(config.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1, TrustProxy: test.trustProxy})
			t.Cleanup(limiter.Close)
			handler := limiter.Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

			var codes []int
			for _, client := range []string{"203.0.113.7", "203.0.113.8"} {
				req := httptest.NewRequest(http.MethodPost, "/schedule-theme", nil)
				req.Header.Set("X-Forwarded-For", client)
				recorder := httptest.NewRecorder()
				handler.ServeHTTP(recorder, req)
				codes = append(codes, recorder.Code)
			}
			if codes[0] != http.StatusOK || codes[1] != test.wantSecond {
				t.Fatalf("status codes = %v, want [200 %d]", codes, test.wantSecond)
			}
		})
	}
}
